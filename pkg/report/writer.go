package report

import (
	"fmt"
	"io"
	"os"

	"github.com/user/blinkdecode/pkg/ports"
)

// StdoutPath selects standard output instead of a file.
const StdoutPath = "-"

// Writer writes formatted reports to a file or standard output.
type Writer struct {
	formatter Formatter
	fs        ports.FileSystem

	// Stdout receives the report when the path is "-". Defaults to
	// os.Stdout; tests may replace it.
	Stdout io.Writer
}

// NewWriter creates a new Writer with the given Formatter.
func NewWriter(formatter Formatter, fs ports.FileSystem) *Writer {
	return &Writer{
		formatter: formatter,
		fs:        fs,
		Stdout:    os.Stdout,
	}
}

// Write formats the report and writes it to the specified path.
// The path "-" writes to standard output.
func (w *Writer) Write(path string, report *Report) error {
	data, err := w.formatter.Format(report)
	if err != nil {
		return fmt.Errorf("format report: %w", err)
	}

	if path == StdoutPath {
		if _, err := w.Stdout.Write(append(data, '\n')); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		return nil
	}

	if err := w.fs.WriteFile(path, data); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
