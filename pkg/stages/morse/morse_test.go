package morse

import (
	"context"
	"testing"

	"github.com/user/blinkdecode/pkg/pipeline"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name  string
		morse string
		want  string
	}{
		{"empty", "", ""},
		{"single letter", "...", "S"},
		{"sos", "... --- ...", "SOS"},
		{"two words", "... --- ... | ... --- ...", "SOS SOS"},
		{"digits", ".---- ..--- ...--", "123"},
		{"punctuation", "---... -....- .-.-.-", ":-."},
		{"unknown token passes through", "... .-.-.-.- ...", "S.-.-.-.-S"},
		{"word marker alone", "|", " "},
		{"surrounding whitespace ignored", "  ... --- ...  ", "SOS"},
		{"hello world", ".... . .-.. .-.. --- | .-- --- .-. .-.. -..", "HELLO WORLD"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Decode(tt.morse)
			if got != tt.want {
				t.Errorf("Decode(%q) = %q, want %q", tt.morse, got, tt.want)
			}
		})
	}
}

func TestSymbolTableCoversAlphanumerics(t *testing.T) {
	seen := make(map[string]bool)
	for pattern, text := range symbolTable {
		if seen[text] {
			t.Errorf("character %q mapped by more than one pattern", text)
		}
		seen[text] = true
		if pattern == "" {
			t.Error("empty pattern in symbol table")
		}
	}

	for c := 'A'; c <= 'Z'; c++ {
		if !seen[string(c)] {
			t.Errorf("no pattern for %q", string(c))
		}
	}
	for c := '0'; c <= '9'; c++ {
		if !seen[string(c)] {
			t.Errorf("no pattern for %q", string(c))
		}
	}
}

func TestStageExecute(t *testing.T) {
	stage := NewStage()
	result, err := stage.Execute(context.Background(), pipeline.MorseInput{Morse: "... --- ..."})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if result.Message != "SOS" {
		t.Errorf("Message = %q, want %q", result.Message, "SOS")
	}
}
