package sink

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ardnew/cycleprof"
	"github.com/ardnew/cycleprof/pkg"
)

// Format identifies a report rendering.
type Format string

// Report formats.
const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// String returns the string representation of the format.
func (f Format) String() string {
	return string(f)
}

// ParseFormat returns the format named by s, ignoring case and surrounding
// space.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatJSON:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", pkg.ErrInvalidFormat, s)
	}
}

// Write renders r to w in the given format.
func Write(w io.Writer, format Format, r *cycleprof.Report) error {
	switch format {
	case FormatText:
		return WriteText(w, r)
	case FormatJSON:
		return WriteJSON(w, r)
	default:
		return fmt.Errorf("%w: %q", pkg.ErrInvalidFormat, format)
	}
}

// WriteFile renders r into the file at path, creating parent directories.
func WriteFile(path string, format Format, r *cycleprof.Report) error {
	if path == "" {
		return pkg.ErrEmptyPath
	}
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create report dir: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report file: %w", err)
	}
	if err := Write(f, format, r); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// File returns a handler that writes the report to path in the given format.
func File(path string, format Format) cycleprof.ResultHandler {
	return func(r *cycleprof.Report) {
		if err := WriteFile(path, format, r); err != nil {
			pkg.LogError(pkg.ComponentSink, "failed to write report",
				"path", path, "format", format, "error", err)
			return
		}
		pkg.LogInfo(pkg.ComponentSink, "report written",
			"path", path, "format", format, "records", len(r.Records))
	}
}

// Tee returns a handler that invokes each non-nil handler in order.
func Tee(handlers ...cycleprof.ResultHandler) cycleprof.ResultHandler {
	return func(r *cycleprof.Report) {
		for _, h := range handlers {
			if h != nil {
				h(r)
			}
		}
	}
}
