package lex

// Version is the current release of the lex module. Overridden at
// build time via -ldflags for tagged releases.
var Version = "0.3.0-dev"
