package magetasks

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/magefile/mage/sh"
)

// LDFlags returns the linker flags that stamp version information.
func LDFlags(version, commit, date string) string {
	return fmt.Sprintf("-s -w -X '%s/internal/version.Version=%s' -X '%s/internal/version.CommitHash=%s' -X '%s/internal/version.BuildDate=%s'",
		ModulePath, version, ModulePath, commit, ModulePath, date)
}

// BuildAll builds the cardfit binary.
func BuildAll() error {
	PrintH2Header("Build")

	ldflags := LDFlags(getGitVersion(), getGitCommit(), time.Now().UTC().Format(time.RFC3339))
	if err := Run("Building cardfit", "go", "build", "-ldflags", ldflags, "-o", BinPath, MainPackage); err != nil {
		PrintError("Build failed")
		return err
	}

	PrintSuccess(fmt.Sprintf("Built: %s", BinPath))
	return nil
}

// Demo builds the binary and opens the interactive gallery.
func Demo() error {
	if err := BuildAll(); err != nil {
		return err
	}
	return sh.RunV(BinPath, "demo")
}

// Clean removes build artifacts.
func Clean() error {
	PrintH2Header("Clean")

	if err := os.RemoveAll("./bin"); err != nil {
		return fmt.Errorf("removing bin: %w", err)
	}
	_ = os.Remove("coverage.out")

	PrintSuccess("Cleaned build artifacts")
	return nil
}

func getGitVersion() string {
	out, err := sh.Output("git", "describe", "--tags", "--always", "--dirty", "--match=v*")
	if err != nil {
		return "dev"
	}
	return strings.TrimSpace(out)
}

func getGitCommit() string {
	out, err := sh.Output("git", "rev-parse", "--short", "HEAD")
	if err != nil {
		return "unknown"
	}
	return strings.TrimSpace(out)
}
