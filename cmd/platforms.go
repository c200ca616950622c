package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"pricescout/internal/platform"
)

var platformsCmd = &cobra.Command{
	Use:   "platforms",
	Short: "List supported platforms",
	Run: func(cmd *cobra.Command, args []string) {
		initPlatforms()
		for _, name := range platform.List() {
			fmt.Fprintln(os.Stdout, name)
		}
	},
}

func init() {
	rootCmd.AddCommand(platformsCmd)
}
