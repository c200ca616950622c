package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"pricescout/config"
	"pricescout/internal/compare"
)

func registerTools(s *server.MCPServer, comparer *compare.Comparer, cfg *config.Config) {
	// compare_prices
	compareTool := mcp.NewTool("compare_prices",
		mcp.WithDescription("Compare a product's price across e-commerce platforms"),
		mcp.WithString("product",
			mcp.Required(),
			mcp.Description("Product title to search for"),
		),
		mcp.WithString("platforms",
			mcp.Description("Comma-separated platform list (default: all supported)"),
		),
	)
	s.AddTool(compareTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleComparePrices(ctx, request, comparer, cfg)
	})

	// list_platforms
	listTool := mcp.NewTool("list_platforms",
		mcp.WithDescription("List supported e-commerce platforms"),
	)
	s.AddTool(listTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		data, _ := json.Marshal(cfg.SupportedPlatforms)
		return mcp.NewToolResultText(string(data)), nil
	})
}

func handleComparePrices(ctx context.Context, request mcp.CallToolRequest, comparer *compare.Comparer, cfg *config.Config) (*mcp.CallToolResult, error) {
	product := request.GetString("product", "")
	if product == "" {
		return mcp.NewToolResultError("product is required"), nil
	}

	platforms := cfg.SupportedPlatforms
	if raw := request.GetString("platforms", ""); raw != "" {
		platforms = nil
		for _, p := range strings.Split(raw, ",") {
			if p = strings.TrimSpace(p); p != "" {
				platforms = append(platforms, p)
			}
		}
	}

	result, err := comparer.Compare(ctx, product, platforms)
	if err != nil {
		switch {
		case errors.Is(err, compare.ErrInvalidPlatform):
			return mcp.NewToolResultError(fmt.Sprintf("invalid request: %v", err)), nil
		case errors.Is(err, compare.ErrNoMatch):
			return mcp.NewToolResultError(err.Error()), nil
		default:
			return mcp.NewToolResultError(fmt.Sprintf("internal error: %v", err)), nil
		}
	}

	data, _ := json.MarshalIndent(result, "", "  ")
	return mcp.NewToolResultText(string(data)), nil
}
