package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/aretw0/lex/internal/cli"
	"github.com/spf13/cobra"
)

// debugCmd represents the debug command
var debugCmd = &cobra.Command{
	Use:   "debug [file]",
	Short: "Parse a script and dump the resulting document",
	Long:  `Parses the script, reports timing and warnings, then prints the full document as indented JSON.`,
	Run: func(cmd *cobra.Command, args []string) {
		path, _ := cmd.Flags().GetString("file")
		if !cmd.Flags().Changed("file") && len(args) > 0 {
			path = args[0]
		}

		script, err := cli.ReadScript(path)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		doc, _ := cli.ParseScript(os.Stdout, script)

		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(string(data))
	},
}

func init() {
	rootCmd.AddCommand(debugCmd)
}
