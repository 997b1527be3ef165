package magetasks

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/magefile/mage/sh"
)

// Run runs a command with its output attached to the terminal, under a
// step label.
func Run(label, cmd string, args ...string) error {
	fmt.Fprintf(Out, "→ %s\n", label)
	if err := sh.RunV(cmd, args...); err != nil {
		return fmt.Errorf("%s: %w", label, err)
	}
	return nil
}

// IsCommandNotFound checks if the error indicates the command was not found.
// This handles exec.ErrNotFound and platform-specific string fallbacks.
func IsCommandNotFound(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, exec.ErrNotFound) {
		return true
	}
	errStr := err.Error()
	if strings.Contains(errStr, "executable file not found") {
		return true
	}
	if strings.Contains(errStr, "no such file or directory") {
		return true
	}
	return false
}
