package magetasks

import (
	"errors"
	"fmt"
	"strings"

	"github.com/magefile/mage/sh"
)

// ErrUnformatted is returned by LintFormat when gofmt reports files.
var ErrUnformatted = errors.New("files need gofmt")

// formatRoots are the source roots gofmt checks. The _examples tree is
// reference material and stays out.
var formatRoots = []string{"cmd", "internal", "pkg", "magefile.go"}

// lintStep is one linter invocation. Optional steps are skipped with a
// warning when their tool is not installed.
type lintStep struct {
	label    string
	cmd      string
	args     []string
	optional bool
	install  string
}

var (
	vetStep = lintStep{
		label: "go vet",
		cmd:   "go",
		args:  []string{"vet", "./cmd/...", "./internal/...", "./pkg/..."},
	}
	golangciStep = lintStep{
		label:    "golangci-lint",
		cmd:      "golangci-lint",
		args:     []string{"run", "--enable=misspell,unconvert,gocritic", "--timeout=5m", "./cmd/...", "./internal/...", "./pkg/..."},
		optional: true,
		install:  "go install github.com/golangci/golangci-lint/cmd/golangci-lint@latest",
	}
)

// LintAll runs every lint step and reports all failures together.
func LintAll() error {
	var errs []error
	for _, fn := range []func() error{LintFormat, LintVet, LintGolangci} {
		if err := fn(); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	PrintSuccess("All linters passed")
	return nil
}

// LintFormat fails when any source file is not gofmt-clean. It only lists
// files and never rewrites them.
func LintFormat() error {
	fmt.Fprintln(Out, "→ gofmt")
	out, err := sh.Output("gofmt", append([]string{"-l"}, formatRoots...)...)
	if err != nil {
		return fmt.Errorf("gofmt: %w", err)
	}
	if files := unformattedFiles(out); len(files) > 0 {
		return fmt.Errorf("%w: %s", ErrUnformatted, strings.Join(files, ", "))
	}
	return nil
}

// LintVet runs go vet over the module packages.
func LintVet() error {
	return runStep(vetStep)
}

// LintGolangci runs golangci-lint when it is installed.
func LintGolangci() error {
	return runStep(golangciStep)
}

func runStep(s lintStep) error {
	err := Run(s.label, s.cmd, s.args...)
	if err == nil {
		return nil
	}
	if s.optional && IsCommandNotFound(err) {
		PrintWarning(fmt.Sprintf("%s not installed, skipping (install: %s)", s.label, s.install))
		return nil
	}
	return err
}

// unformattedFiles parses gofmt -l output into file paths.
func unformattedFiles(out string) []string {
	var files []string
	for _, line := range strings.Split(out, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			files = append(files, line)
		}
	}
	return files
}
