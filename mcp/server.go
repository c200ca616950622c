package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"pricescout/config"
	"pricescout/internal/compare"
)

// Serve starts the MCP stdio server with all tools registered.
func Serve(comparer *compare.Comparer, cfg *config.Config) error {
	s := server.NewMCPServer(
		"pricescout",
		"1.0.0",
		server.WithToolCapabilities(true),
	)

	registerTools(s, comparer, cfg)

	return server.ServeStdio(s)
}
