package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"pricescout/internal/compare"
)

var compareCmd = &cobra.Command{
	Use:   "compare [product title]",
	Short: "Compare a product's price across platforms",
	Args:  cobra.ExactArgs(1),
	RunE:  runCompare,
}

func init() {
	compareCmd.Flags().StringSlice("platforms", nil, "Platforms to search (default: all supported)")
	compareCmd.Flags().String("format", "json", "Output format: json, table")
	rootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, args []string) error {
	title := args[0]
	platforms, _ := cmd.Flags().GetStringSlice("platforms")
	format, _ := cmd.Flags().GetString("format")

	if len(platforms) == 0 {
		platforms = cfg.SupportedPlatforms
	}

	comparer := buildComparer()

	ctx := compare.WithProgress(context.Background(), func(msg string) {
		fmt.Fprintln(cmd.ErrOrStderr(), msg)
	})

	result, err := comparer.Compare(ctx, title, platforms)
	if err != nil {
		switch {
		case errors.Is(err, compare.ErrInvalidPlatform):
			return fmt.Errorf("%v (supported: %s)", err, strings.Join(cfg.SupportedPlatforms, ", "))
		case errors.Is(err, compare.ErrNoMatch):
			return err
		default:
			return fmt.Errorf("compare failed: %w", err)
		}
	}

	switch format {
	case "table":
		printComparisonTable(result)
	default:
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		enc.Encode(result)
	}

	return nil
}
