/*
Package lex implements a forgiving, line-oriented dialogue scripting
language and its playback engine.

A script is a plain text document made of sections, actors, variables,
functions and pages of dialogue lines. The parser never fails: anything
it does not recognize becomes plain text, and advisory warnings point at
the lines worth a second look.

# Usage

The root package exposes the two common entry points. Parse produces the
structured document, Play runs it end to end:

	package main

	import (
		"context"
		"log"

		"github.com/aretw0/lex"
	)

	func main() {
		script := `#Intro
	Narrator: Welcome to the show.
	=> Outro

	#Outro
	Goodbye!`

		doc, warnings := lex.Parse(script)
		for _, w := range warnings {
			log.Println("warning:", w)
		}
		_ = doc

		if err := lex.Play(context.Background(), script); err != nil {
			log.Fatal(err)
		}
	}

For step-wise playback with externally persisted state (HTTP sessions,
agent tools), use pkg/player.Engine directly: Start yields a fresh
State, Step advances it one step at a time, and the State round-trips
through JSON so it can live in any pkg/ports.SessionStore.

Subpackages:

  - pkg/parser: the script parser.
  - pkg/dialogue: the document model (sections, actors, values).
  - pkg/player: the traversal engine and the paced terminal player.
  - pkg/export: JSON and YAML document encoding.
  - pkg/ports: driven-port interfaces (session stores).
  - pkg/adapters: in-memory, Redis, HTTP and MCP adapters.
*/
package lex
