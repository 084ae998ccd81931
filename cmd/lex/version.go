package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/lex"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of lex",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("lex version %s\n", strings.TrimSpace(lex.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
