// Package validator performs a static lint pass over a parsed document.
// Everything it reports is advisory at parse time; unresolved targets
// only become failures during playback, so surfacing them early keeps
// authors out of dead-end sessions.
package validator

import (
	"fmt"
	"strings"

	"github.com/aretw0/lex/pkg/dialogue"
)

// Check crawls the document and returns the issues found. An empty
// slice means the document is clean.
func Check(doc *dialogue.Dialogue) []string {
	var issues []string

	if len(doc.Sections) == 0 || len(doc.Sections[0].Steps) == 0 {
		issues = append(issues, "document has no playable steps")
	}

	seen := make(map[string]bool)
	for _, section := range doc.Sections {
		if seen[section.Name] {
			issues = append(issues, fmt.Sprintf("duplicate section name %q: navigation always resolves to the first", section.Name))
		}
		seen[section.Name] = true
	}

	for _, section := range doc.Sections {
		for i, step := range section.Steps {
			switch step.Kind {
			case dialogue.StepJump, dialogue.StepBounce:
				idx, ok := doc.SectionIndex(step.Target)
				if !ok {
					issues = append(issues, fmt.Sprintf("section %q step %d: target %q does not resolve", section.Name, i+1, step.Target))
					continue
				}
				if len(doc.Sections[idx].Steps) == 0 {
					issues = append(issues, fmt.Sprintf("section %q step %d: target %q has no steps", section.Name, i+1, step.Target))
				}
			case dialogue.StepPage:
				for _, line := range step.Lines {
					if line.Kind != dialogue.LineSpeaker {
						continue
					}
					if _, ok := doc.Actors[line.Speaker]; ok {
						continue
					}
					// Actor references are stored lowercased; a key with
					// upper case is a free speaker label, which renders
					// verbatim and needs no declaration.
					if line.Speaker == strings.ToLower(line.Speaker) {
						issues = append(issues, fmt.Sprintf("section %q step %d: speaker %q is not a declared actor", section.Name, i+1, line.Speaker))
					}
				}
			}
		}
	}

	return issues
}
