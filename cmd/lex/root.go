package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/lex/internal/logging"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "lex",
	Short: "Lex is a forgiving dialogue scripting language and player",
	Long: `Lex parses line-oriented dialogue scripts into a structured document
and plays them back in the terminal, over HTTP, or as MCP tools.
Parsing never fails: unrecognized syntax degrades to plain text.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().StringP("file", "f", "", "Path to the dialogue script")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
}

func newLogger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelInfo
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		level = slog.LevelDebug
	}
	return logging.New(level)
}
