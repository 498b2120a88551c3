// Package morse implements the final decoding stage: it maps the morse
// token string to alphanumeric text.
package morse

import (
	"context"
	"strings"

	"github.com/user/blinkdecode/pkg/pipeline"
)

// WordMarker separates words in the token string and renders as a space.
const WordMarker = "|"

// symbolTable maps each morse pattern to one character. The table is total
// for its domain: A-Z, 0-9 and the 6-symbol punctuation patterns.
var symbolTable = map[string]string{
	".-":   "A",
	"-...": "B",
	"-.-.": "C",
	"-..":  "D",
	".":    "E",
	"..-.": "F",
	"--.":  "G",
	"....": "H",
	"..":   "I",
	".---": "J",
	"-.-":  "K",
	".-..": "L",
	"--":   "M",
	"-.":   "N",
	"---":  "O",
	".--.": "P",
	"--.-": "Q",
	".-.":  "R",
	"...":  "S",
	"-":    "T",
	"..-":  "U",
	"...-": "V",
	".--":  "W",
	"-..-": "X",
	"-.--": "Y",
	"--..": "Z",

	"-----": "0",
	".----": "1",
	"..---": "2",
	"...--": "3",
	"....-": "4",
	".....": "5",
	"-....": "6",
	"--...": "7",
	"---..": "8",
	"----.": "9",

	"---...": ":",
	"-....-": "-",
	".-.-.-": ".",
}

// Stage decodes morse tokens into text.
type Stage struct{}

// NewStage creates a new morse stage.
func NewStage() *Stage {
	return &Stage{}
}

// Execute decodes the token string.
func (s *Stage) Execute(ctx context.Context, input pipeline.MorseInput) (pipeline.MorseResult, error) {
	return pipeline.MorseResult{Message: Decode(input.Morse)}, nil
}

// Decode splits the token string on spaces and maps each token through the
// symbol table. The word marker renders as a literal space; letters within
// a word concatenate without separators. A token with no table entry is
// left verbatim in the output rather than reported as an error.
func Decode(morse string) string {
	var b strings.Builder

	for _, token := range strings.Fields(morse) {
		if token == WordMarker {
			b.WriteString(" ")
			continue
		}
		if text, ok := symbolTable[token]; ok {
			b.WriteString(text)
		} else {
			b.WriteString(token)
		}
	}

	return b.String()
}

// Ensure Stage implements the pipeline stage contract
var _ pipeline.Stage[pipeline.MorseInput, pipeline.MorseResult] = (*Stage)(nil)
