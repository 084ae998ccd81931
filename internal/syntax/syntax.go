// Package syntax holds the string literals that identify dialogue
// constructs during parsing.
package syntax

// Element prefixes that open a new construct.
const (
	// PrefixSection starts a section header: `# section_name`.
	PrefixSection = "#"

	// PrefixActor starts an actor definition: `@actor_name`.
	PrefixActor = "@"

	// PrefixFunction starts a function declaration: `!function_name`.
	PrefixFunction = "!"

	// PrefixVariable starts a variable declaration or assignment: `$name`.
	PrefixVariable = "$"

	// PrefixResponse marks a player response line inside a page: `- text`.
	PrefixResponse = "-"
)

// Comment and log prefixes. The log prefixes share the comment family,
// so they must be matched before the plain comment prefix.
const (
	PrefixComment    = "//"
	PrefixLogInfo    = "///"
	PrefixLogWarning = "//?"
	PrefixLogError   = "//!"
)

// Navigation prefixes. Bounce is a superstring of Jump and must be
// matched first.
const (
	// PrefixBounce is a call-with-return redirect: `=><= section_name`.
	PrefixBounce = "=><="

	// PrefixJump is a permanent redirect: `=> section_name`.
	PrefixJump = "=>"
)

// Separators and delimiters.
const (
	// Separator splits key-value pairs: `key: value`.
	Separator = ":"

	// Assignment splits variable assignments: `$name = value`.
	Assignment = "="

	// ArrayStart and ArrayEnd delimit array literals: `[a, b]`.
	ArrayStart = "["
	ArrayEnd   = "]"
)

// Jump target keywords, matched case-insensitively.
const (
	// KeywordEnd returns from the nearest bounce, or ends the session.
	KeywordEnd = "end"

	// KeywordTerminate ends the whole session unconditionally.
	KeywordTerminate = "terminate"
)

// MetaSection is the name of the synthetic section that collects steps
// appearing before the first explicit section header.
const MetaSection = "Meta"

// stepPrefixes are the prefixes that terminate multi-line consumption
// (actor property blocks and pages).
var stepPrefixes = []string{
	PrefixComment,
	PrefixLogInfo,
	PrefixLogError,
	PrefixLogWarning,
	PrefixActor,
	PrefixSection,
	PrefixFunction,
	PrefixVariable,
	PrefixBounce,
	PrefixJump,
}

// IsNewStep reports whether the line begins a new construct (or is
// empty), ending any in-progress multi-line consumption.
func IsNewStep(line string) bool {
	if line == "" {
		return true
	}
	for _, prefix := range stepPrefixes {
		if len(line) >= len(prefix) && line[:len(prefix)] == prefix {
			return true
		}
	}
	return false
}
