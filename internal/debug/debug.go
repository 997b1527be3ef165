// Package debug writes optional diagnostic lines.
//
// Logging is off unless CARDFIT_DEBUG is set to a non-empty value. Output
// goes to stderr, or to the file named by CARDFIT_DEBUG_FILE, which is the
// only usable target while the interactive host owns the terminal.
package debug

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

var (
	mu      sync.Mutex
	out     io.Writer
	enabled bool
	closer  io.Closer
)

func init() {
	enabled = os.Getenv("CARDFIT_DEBUG") != ""
	out = os.Stderr
	if path := os.Getenv("CARDFIT_DEBUG_FILE"); path != "" {
		enabled = true
		if err := openFile(path); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: debug log %s unavailable: %v\n", path, err)
		}
	}
}

func openFile(path string) error {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}
	// #nosec G304 -- path comes from the user's own environment
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return fmt.Errorf("failed to open debug log: %w", err)
	}
	out = f
	closer = f
	return nil
}

// Enabled reports whether debug output is on.
func Enabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return enabled
}

// SetOutput enables logging to w. A nil writer disables logging.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	out = w
	enabled = w != nil
}

// Logf writes one line tagged with component.
func Logf(component, format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	if !enabled || out == nil {
		return
	}
	ts := time.Now().Format("15:04:05.000")
	fmt.Fprintf(out, "%s [DEBUG %s] %s\n", ts, component, fmt.Sprintf(format, args...))
}

// Close releases the debug log file, if one was opened.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	if closer == nil {
		return nil
	}
	err := closer.Close()
	closer = nil
	out = os.Stderr
	return err
}
