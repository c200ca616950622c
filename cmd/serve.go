package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	mcpserver "pricescout/mcp"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start MCP stdio server",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	comparer := buildComparer()

	fmt.Fprintln(cmd.ErrOrStderr(), "Starting PriceScout MCP server on stdio...")

	return mcpserver.Serve(comparer, cfg)
}
