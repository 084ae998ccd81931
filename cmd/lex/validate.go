package main

import (
	"fmt"
	"os"

	"github.com/aretw0/lex/internal/cli"
	"github.com/aretw0/lex/internal/validator"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Check a script for playback hazards",
	Long:  `Parses the script and reports parse warnings plus structural findings such as unresolved jump targets and duplicate section names.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runValidate(cmd, args); err != nil {
			fmt.Printf("Validation failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Script is valid! ✅")
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("file")
	if !cmd.Flags().Changed("file") && len(args) > 0 {
		path = args[0]
	}

	script, err := cli.ReadScript(path)
	if err != nil {
		return err
	}

	doc, warnings := cli.ParseScript(os.Stdout, script)

	findings := validator.Check(doc)
	if len(findings) > 0 {
		for _, finding := range findings {
			fmt.Printf("  %s\n", finding)
		}
		return fmt.Errorf("%d finding(s)", len(findings))
	}
	if len(warnings) > 0 {
		return fmt.Errorf("%d parse warning(s)", len(warnings))
	}
	return nil
}
