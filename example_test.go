package lex_test

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/aretw0/lex"
	"github.com/aretw0/lex/pkg/player"
)

// ExampleParse demonstrates parsing a script into its structured
// document. Parsing never fails; warnings are advisory.
func ExampleParse() {
	script := `@Oscar
Name: Oscar the Grouch

#Intro
@oscar: Scram!
=> end`

	doc, warnings := lex.Parse(script)

	fmt.Println("sections:", len(doc.Sections))
	fmt.Println("actor:", doc.Actors["oscar"].Name)
	fmt.Println("warnings:", len(warnings))
	// Output:
	// sections: 1
	// actor: Oscar the Grouch
	// warnings: 0
}

// ExamplePlay demonstrates end-to-end terminal playback. The delay is
// disabled so the example runs instantly.
func ExamplePlay() {
	script := `#Intro
Narrator: Welcome to the show.

#Outro
Goodbye!`

	err := lex.Play(context.Background(), script,
		player.WithOutput(os.Stdout),
		player.WithDelay(0),
	)
	if err != nil {
		log.Fatal(err)
	}
	// Output:
	// Narrator: Welcome to the show.
	// Goodbye!
	// Playback completed.
}
