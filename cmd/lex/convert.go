package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/aretw0/lex/internal/cli"
	"github.com/aretw0/lex/pkg/export"
	"github.com/aretw0/lex/pkg/parser"
	"github.com/spf13/cobra"
)

// convertCmd represents the convert command
var convertCmd = &cobra.Command{
	Use:   "convert [file]",
	Short: "Convert a script to a structured format",
	Long:  `Parses the script and writes the document as JSON or YAML to stdout or a file.`,
	Run: func(cmd *cobra.Command, args []string) {
		path, _ := cmd.Flags().GetString("file")
		if !cmd.Flags().Changed("file") && len(args) > 0 {
			path = args[0]
		}
		format, _ := cmd.Flags().GetString("format")
		outPath, _ := cmd.Flags().GetString("out")

		script, err := cli.ReadScript(path)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		doc, warnings := parser.Parse(script)
		for _, warning := range warnings {
			fmt.Fprintf(os.Stderr, "warning: %s\n", warning)
		}

		data, err := export.Encode(doc, export.Format(strings.ToLower(format)))
		if err != nil {
			fmt.Printf("Error: %v (supported: %s)\n", err, strings.Join(formatNames(), ", "))
			os.Exit(1)
		}

		if outPath == "" {
			fmt.Print(string(data))
			return
		}
		if err := os.WriteFile(outPath, data, 0o644); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %s\n", outPath)
	},
}

func formatNames() []string {
	formats := export.Formats()
	names := make([]string, len(formats))
	for i, f := range formats {
		names[i] = string(f)
	}
	return names
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().String("format", "json", "Output format (json or yaml)")
	convertCmd.Flags().StringP("out", "o", "", "Output file (default stdout)")
}
