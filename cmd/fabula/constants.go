package main

// Default limits for CLI commands.
const (
	DefaultLeaderboardLimit = 10
	DefaultOpeningSentence  = "In the middle of a silver desert rose a single tower, built not of sand but of ash."
	DefaultGenesisTitle     = "The Beginning of the Legend"
)

// Valid export formats.
var validFormats = []string{"json", "markdown"}
