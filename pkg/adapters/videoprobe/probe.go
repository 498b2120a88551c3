// Package videoprobe provides a pre-flight inspection for MP4 containers:
// it confirms a video track exists and names its codec before the decoder
// spends time on the file.
package videoprobe

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Eyevinn/mp4ff/mp4"
)

// ErrNoVideoTrack is returned when the container has no video track.
var ErrNoVideoTrack = errors.New("no video track found")

// Info describes the probed video track.
type Info struct {
	// Codec is the sample entry name, normalized ("h264", "hevc", "av1")
	// where known, otherwise the raw four-character code.
	Codec string
}

// IsMP4 reports whether the file extension indicates an MP4-family
// container this probe understands. Other containers are left to the
// decoder.
func IsMP4(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp4", ".m4v", ".mov":
		return true
	default:
		return false
	}
}

// ProbeFile inspects an MP4 file.
func ProbeFile(path string) (Info, error) {
	f, err := os.Open(path)
	if err != nil {
		return Info{}, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	return ProbeReader(f)
}

// ProbeReader inspects MP4 data from an io.ReadSeeker.
func ProbeReader(reader io.ReadSeeker) (Info, error) {
	mp4File, err := mp4.DecodeFile(reader)
	if err != nil {
		return Info{}, fmt.Errorf("decode mp4: %w", err)
	}

	// Check fragmented MP4
	if mp4File.IsFragmented() {
		if mp4File.Init != nil && mp4File.Init.Moov != nil {
			for _, trak := range mp4File.Init.Moov.Traks {
				if codec, ok := videoCodec(trak); ok {
					return Info{Codec: codec}, nil
				}
			}
		}
	}

	// Check progressive MP4
	if mp4File.Moov != nil {
		for _, trak := range mp4File.Moov.Traks {
			if codec, ok := videoCodec(trak); ok {
				return Info{Codec: codec}, nil
			}
		}
	}

	return Info{}, ErrNoVideoTrack
}

func videoCodec(trak *mp4.TrakBox) (string, bool) {
	if trak.Mdia == nil || trak.Mdia.Hdlr == nil {
		return "", false
	}
	if trak.Mdia.Hdlr.HandlerType != "vide" {
		return "", false
	}
	if trak.Mdia.Minf == nil || trak.Mdia.Minf.Stbl == nil || trak.Mdia.Minf.Stbl.Stsd == nil {
		return "", false
	}

	for _, child := range trak.Mdia.Minf.Stbl.Stsd.Children {
		switch child.Type() {
		case "avc1", "avc3":
			return "h264", true
		case "hvc1", "hev1":
			return "hevc", true
		case "av01":
			return "av1", true
		case "vp09":
			return "vp9", true
		case "mp4v":
			return "mpeg4", true
		}
	}

	// A video handler without a recognized sample entry still counts as a
	// video track; report the first entry's type verbatim.
	if len(trak.Mdia.Minf.Stbl.Stsd.Children) > 0 {
		return trak.Mdia.Minf.Stbl.Stsd.Children[0].Type(), true
	}

	return "", false
}
