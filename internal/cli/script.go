// Package cli holds the shared logic behind the lex commands.
package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/aretw0/lex/pkg/dialogue"
	"github.com/aretw0/lex/pkg/parser"
)

// ReadScript loads the dialogue script from disk.
func ReadScript(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("no script file given (use --file)")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read script: %w", err)
	}
	return string(data), nil
}

// ParseScript parses the script and reports timing plus any advisory
// warnings to w.
func ParseScript(w io.Writer, script string) (*dialogue.Dialogue, []string) {
	fmt.Fprintln(w, "Parsing dialogue...")

	start := time.Now()
	doc, warnings := parser.Parse(script)
	fmt.Fprintf(w, "Parsing succeeded in: %s\n", time.Since(start))

	if len(warnings) > 0 {
		fmt.Fprintln(w, "\nWarnings:")
		for _, warning := range warnings {
			fmt.Fprintf(w, "  %s\n", warning)
		}
	}
	fmt.Fprintln(w)

	return doc, warnings
}
