package prompt

import (
	_ "embed"
	"strings"
)

//go:embed template/system.txt
var systemRaw string

// PromptSet holds loaded prompt content.
type PromptSet struct {
	System string
}

// Load returns the PromptSet with trimmed prompt strings. Safe to call
// concurrently; the embed is compile-time, and trimming is cheap.
func Load() PromptSet {
	return PromptSet{
		System: strings.TrimSpace(systemRaw),
	}
}
