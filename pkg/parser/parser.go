// Package parser converts raw script text into a dialogue.Dialogue.
//
// Parsing is a single forward pass over trimmed physical lines with
// one-line lookahead. Each line is tried against a fixed, ordered set of
// classifiers; the first match wins. Unrecognized lines degrade to plain
// text inside a page, so parsing as a whole never fails: malformed input
// shows up as unexpected output, not as an error. Advisory problems
// (unresolved speaker references, assignments to undeclared variables)
// are collected as warnings.
package parser

import (
	"fmt"
	"strings"

	"github.com/aretw0/lex/internal/syntax"
	"github.com/aretw0/lex/pkg/dialogue"
)

// Parse builds a Dialogue from script text. It always returns a
// document; the second return value holds advisory warnings.
func Parse(input string) (*dialogue.Dialogue, []string) {
	p := &parser{
		doc:     dialogue.New(),
		current: dialogue.Section{Name: syntax.MetaSection},
		cursor:  newCursor(input),
	}
	p.run()
	return p.doc, p.warnings
}

type parser struct {
	doc      *dialogue.Dialogue
	current  dialogue.Section
	cursor   *cursor
	warnings []string
}

func (p *parser) warnf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	p.warnings = append(p.warnings, fmt.Sprintf("line %d: %s", p.cursor.lineno(), msg))
}

func (p *parser) run() {
	for {
		line, ok := p.cursor.next()
		if !ok {
			break
		}
		if line == "" {
			continue
		}

		// Section header closes the previous section.
		if name, ok := parseSection(line); ok {
			if len(p.current.Steps) > 0 {
				p.doc.Sections = append(p.doc.Sections, p.current)
			}
			p.current = dialogue.Section{Name: name}
			continue
		}

		// Actor definition sub-consumes its property block.
		if id, actor, ok := p.parseActor(line); ok {
			p.doc.Actors[id] = actor
			continue
		}

		// Log steps before the generic comment prefix.
		if step, ok := parseLog(line); ok {
			p.push(step)
			continue
		}

		if text, ok := strings.CutPrefix(line, syntax.PrefixComment); ok {
			p.push(dialogue.Step{Kind: dialogue.StepComment, Text: strings.TrimSpace(text)})
			continue
		}

		// Declarations populate the document maps directly; they are not
		// sequential steps.
		if id, fn, ok := parseFunction(line); ok {
			p.doc.Functions[id] = fn
			continue
		}

		if name, value, ok := parseVariable(line); ok {
			p.doc.Variables[name] = value
			continue
		}

		if step, ok := p.parseAssignment(line); ok {
			p.push(step)
			continue
		}

		// Bounce before jump: its prefix is a superstring of the jump's.
		if target, ok := strings.CutPrefix(line, syntax.PrefixBounce); ok {
			p.push(dialogue.Step{Kind: dialogue.StepBounce, Target: strings.TrimSpace(target)})
			continue
		}

		if step, ok := parseJump(line); ok {
			p.push(step)
			continue
		}

		// Default: start a page.
		p.push(p.parsePage(line))
	}

	// The in-progress section is always appended, even when empty, so
	// the section count stays aligned with the headers seen.
	p.doc.Sections = append(p.doc.Sections, p.current)
}

func (p *parser) push(step dialogue.Step) {
	p.current.Steps = append(p.current.Steps, step)
}

// parseSection matches `# section_name`.
func parseSection(line string) (string, bool) {
	name, ok := strings.CutPrefix(line, syntax.PrefixSection)
	if !ok {
		return "", false
	}
	return strings.TrimSpace(name), true
}

// parseLog matches `/// text`, `//? text` and `//! text`.
func parseLog(line string) (dialogue.Step, bool) {
	if text, ok := strings.CutPrefix(line, syntax.PrefixLogInfo); ok {
		return dialogue.Step{Kind: dialogue.StepLogInfo, Text: strings.TrimSpace(text)}, true
	}
	if text, ok := strings.CutPrefix(line, syntax.PrefixLogWarning); ok {
		return dialogue.Step{Kind: dialogue.StepLogWarning, Text: strings.TrimSpace(text)}, true
	}
	if text, ok := strings.CutPrefix(line, syntax.PrefixLogError); ok {
		return dialogue.Step{Kind: dialogue.StepLogError, Text: strings.TrimSpace(text)}, true
	}
	return dialogue.Step{}, false
}

// parseActor matches an actor header `@actor_name` (a bare header, not
// the spoken-line form `@id: text`) and consumes the property block that
// immediately follows it. The block ends at the first line that is
// empty, starts a recognized prefix, or fails to split as `key: value`.
func (p *parser) parseActor(line string) (string, dialogue.Actor, bool) {
	header, ok := strings.CutPrefix(line, syntax.PrefixActor)
	if !ok || strings.Contains(header, syntax.Separator) {
		return "", dialogue.Actor{}, false
	}

	name := strings.TrimSpace(header)
	properties := make(map[string]dialogue.Value)

	for {
		next, ok := p.cursor.peek()
		if !ok || syntax.IsNewStep(next) {
			break
		}

		property, _ := p.cursor.next()
		key, raw, ok := strings.Cut(property, syntax.Separator)
		if !ok {
			break
		}

		properties[strings.ToLower(strings.TrimSpace(key))] = ParseValue(strings.TrimSpace(raw))
	}

	display := name
	if override, ok := properties["name"]; ok && override.Kind == dialogue.ValueText {
		display = override.Text
	}

	return strings.ToLower(name), dialogue.Actor{Name: display, Properties: properties}, true
}

// parseFunction matches a declaration of the form
// `!name[(arg1[=default1], ...)][: defaultReturnValue]`.
// The return-value suffix is peeled off first, then the argument list.
func parseFunction(line string) (string, dialogue.Function, bool) {
	signature, ok := strings.CutPrefix(line, syntax.PrefixFunction)
	if !ok {
		return "", dialogue.Function{}, false
	}

	var fn dialogue.Function

	if rest, raw, ok := strings.Cut(signature, syntax.Separator); ok {
		result := ParseValue(strings.TrimSpace(raw))
		fn.Result = &result
		signature = rest
	}

	if rest, rawArgs, ok := strings.Cut(signature, "("); ok {
		rawArgs = strings.TrimSpace(strings.TrimRight(rawArgs, ")"))
		if rawArgs != "" {
			fn.Args = make(map[string]dialogue.Value)
			for _, arg := range strings.Split(rawArgs, ",") {
				name, raw, _ := strings.Cut(arg, syntax.Assignment)
				fn.Args[strings.TrimSpace(name)] = ParseValue(strings.TrimSpace(raw))
			}
		}
		signature = rest
	}

	return strings.ToLower(strings.TrimSpace(signature)), fn, true
}

// parseVariable matches a static declaration `$name: value`.
func parseVariable(line string) (string, dialogue.Value, bool) {
	rest, ok := strings.CutPrefix(line, syntax.PrefixVariable)
	if !ok {
		return "", dialogue.Value{}, false
	}
	name, raw, ok := strings.Cut(rest, syntax.Separator)
	if !ok {
		return "", dialogue.Value{}, false
	}
	return strings.ToLower(strings.TrimSpace(name)), ParseValue(strings.TrimSpace(raw)), true
}

// parseAssignment matches a sequential assignment `$name = value`.
// Assigning to a name with no prior declaration is allowed but flagged.
func (p *parser) parseAssignment(line string) (dialogue.Step, bool) {
	rest, ok := strings.CutPrefix(line, syntax.PrefixVariable)
	if !ok {
		return dialogue.Step{}, false
	}
	name, raw, ok := strings.Cut(rest, syntax.Assignment)
	if !ok {
		return dialogue.Step{}, false
	}

	key := strings.ToLower(strings.TrimSpace(name))
	if _, declared := p.doc.Variables[key]; !declared {
		p.warnf("assignment to undeclared variable %q", key)
	}

	return dialogue.Step{
		Kind:  dialogue.StepAssign,
		Name:  key,
		Value: ParseValue(strings.TrimSpace(raw)),
	}, true
}

// parseJump matches `=> target`, mapping the keywords `end` and
// `terminate` (case-insensitive) to their dedicated step kinds.
func parseJump(line string) (dialogue.Step, bool) {
	target, ok := strings.CutPrefix(line, syntax.PrefixJump)
	if !ok {
		return dialogue.Step{}, false
	}
	target = strings.TrimSpace(target)

	switch strings.ToLower(target) {
	case syntax.KeywordEnd:
		return dialogue.Step{Kind: dialogue.StepEnd}, true
	case syntax.KeywordTerminate:
		return dialogue.Step{Kind: dialogue.StepTerminate}, true
	}
	return dialogue.Step{Kind: dialogue.StepJump, Target: target}, true
}

// parsePage consumes the current line and every following line until
// the lookahead starts a new construct or is empty.
func (p *parser) parsePage(line string) dialogue.Step {
	lines := []dialogue.Line{p.parseLine(line)}

	for {
		next, ok := p.cursor.peek()
		if !ok || syntax.IsNewStep(next) {
			break
		}
		consumed, _ := p.cursor.next()
		lines = append(lines, p.parseLine(consumed))
	}

	return dialogue.Step{Kind: dialogue.StepPage, Lines: lines}
}

// parseLine classifies one page line as a response, spoken text, or
// plain text. Failed classification falls back to plain text so the
// problem is visible in the rendered output.
func (p *parser) parseLine(line string) dialogue.Line {
	if text, ok := strings.CutPrefix(line, syntax.PrefixResponse); ok {
		return dialogue.Line{Kind: dialogue.LineResponse, Text: strings.TrimSpace(text)}
	}

	if speaker, text, ok := strings.Cut(line, syntax.Separator); ok {
		if text = strings.TrimSpace(text); text != "" {
			speaker = strings.TrimSpace(speaker)

			if id, ok := strings.CutPrefix(speaker, syntax.PrefixActor); ok {
				id = strings.ToLower(strings.TrimSpace(id))
				if _, declared := p.doc.Actors[id]; !declared {
					p.warnf("speaker references undeclared actor %q", id)
				}
				speaker = id
			}

			return dialogue.Line{Kind: dialogue.LineSpeaker, Speaker: speaker, Text: text}
		}
	}

	return dialogue.Line{Kind: dialogue.LineText, Text: line}
}
