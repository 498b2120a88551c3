package videoprobe

import (
	"bytes"
	"errors"
	"testing"

	"github.com/Eyevinn/mp4ff/mp4"
)

func TestIsMP4(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"signal.mp4", true},
		{"signal.MP4", true},
		{"signal.m4v", true},
		{"signal.mov", true},
		{"signal.avi", false},
		{"signal.mkv", false},
		{"signal.webm", false},
		{"signal", false},
		{"dir.mp4/signal.avi", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := IsMP4(tt.path); got != tt.want {
				t.Errorf("IsMP4(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestProbeReaderGarbage(t *testing.T) {
	_, err := ProbeReader(bytes.NewReader([]byte("not an mp4 file at all")))
	if err == nil {
		t.Fatal("ProbeReader() succeeded on garbage input")
	}
	if errors.Is(err, ErrNoVideoTrack) {
		t.Error("garbage input reported as a valid container without video")
	}
}

func TestProbeReaderNoVideoTrack(t *testing.T) {
	init := mp4.CreateEmptyInit()
	init.AddEmptyTrack(48000, "audio", "en")

	var buf bytes.Buffer
	if err := init.Encode(&buf); err != nil {
		t.Fatal(err)
	}

	_, err := ProbeReader(bytes.NewReader(buf.Bytes()))
	if !errors.Is(err, ErrNoVideoTrack) {
		t.Errorf("ProbeReader() error = %v, want ErrNoVideoTrack", err)
	}
}

func TestProbeFileMissing(t *testing.T) {
	_, err := ProbeFile("does-not-exist.mp4")
	if err == nil {
		t.Error("ProbeFile() succeeded for a missing file")
	}
}
