package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/aretw0/lex"
	"github.com/aretw0/lex/internal/logging"
	"github.com/aretw0/lex/pkg/adapters/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the Model Context Protocol (MCP) server",
	Long: `Starts lex as an MCP server over stdio.
This allows AI agents (like Claude Desktop) to parse and play dialogue scripts as tools.`,
	Run: func(cmd *cobra.Command, args []string) {
		// Ensure logs don't corrupt JSON-RPC on Stdout.
		log.SetOutput(os.Stderr)
		logger := logging.NewWriter(os.Stderr, slog.LevelDebug)
		slog.SetDefault(logger)

		srv := mcp.NewServer(lex.Version)

		slog.Info("Starting Lex MCP Server (Stdio)...")
		if err := srv.ServeStdio(); err != nil {
			slog.Error("MCP Server execution failed", "error", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
