// Package dialogue defines the parsed document model for the Lex
// dialogue-scripting language.
//
// A Dialogue owns the declared actors, variables and functions plus an
// ordered list of sections, each holding an ordered list of steps.
// Section order is significant: it defines the default fall-through when
// no explicit navigation occurs. The document is built once by the
// parser and is immutable in shape thereafter; only a working copy of
// the variable table mutates during playback.
//
// All types are serialization-neutral: they can be losslessly encoded
// into JSON or YAML by a collaborator (see pkg/export).
package dialogue
