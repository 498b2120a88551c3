// Package symbols implements the symbol encoding stage: it renders the run
// sequence as a morse token string using the classified timing thresholds.
package symbols

import (
	"context"
	"strings"

	"github.com/user/blinkdecode/pkg/pipeline"
)

// Separators in the working token representation. Symbols of one letter
// are concatenated; letters are split by a space and words by " | ".
const (
	Dot             = "."
	Dash            = "-"
	LetterSeparator = " "
	WordSeparator   = " | "
)

// Stage renders runs as morse tokens.
type Stage struct{}

// NewStage creates a new symbols stage.
func NewStage() *Stage {
	return &Stage{}
}

// Execute encodes the run sequence.
func (s *Stage) Execute(ctx context.Context, input pipeline.SymbolsInput) (pipeline.SymbolsResult, error) {
	return pipeline.SymbolsResult{
		Morse: Encode(input.Runs, input.OffThresholds, input.OnThresholds),
	}, nil
}

// Encode classifies each run against the thresholds. An OFF run shorter
// than the first threshold is jitter inside a single dot or dash and emits
// nothing; between the thresholds it is a letter gap; at or above the
// second it is a word gap. An ON run below the dot/dash threshold is a
// dot, otherwise a dash.
func Encode(runs []pipeline.Run, offThresholds, onThresholds []int) string {
	var b strings.Builder

	for _, run := range runs {
		if run.State == pipeline.Off {
			switch {
			case run.Duration < offThresholds[0]:
				// same symbol continues
			case run.Duration < offThresholds[1]:
				b.WriteString(LetterSeparator)
			default:
				b.WriteString(WordSeparator)
			}
		} else {
			if run.Duration < onThresholds[0] {
				b.WriteString(Dot)
			} else {
				b.WriteString(Dash)
			}
		}
	}

	return b.String()
}

// Ensure Stage implements the pipeline stage contract
var _ pipeline.Stage[pipeline.SymbolsInput, pipeline.SymbolsResult] = (*Stage)(nil)
