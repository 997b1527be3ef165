// cardfit renders adaptive cards in the terminal. Each card measures its own
// text and picks a layout: single or multi-line, centered or top-aligned, and
// an extra line when the badge would collide with the text.
//
// Usage:
//
//	cardfit -text "Hello" -indicator 5
//	cardfit -kind all -width 48 -explain
//	echo "some text" | cardfit -text -
//	cardfit demo
//	cardfit version
//
// The demo subcommand opens an interactive gallery when stdout is a
// terminal and prints the gallery once otherwise.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"golang.org/x/term"

	"github.com/dkoosis/cardfit/internal/config"
	"github.com/dkoosis/cardfit/internal/debug"
	"github.com/dkoosis/cardfit/internal/version"
	"github.com/dkoosis/cardfit/pkg/card"
	"github.com/dkoosis/cardfit/pkg/host"
	"github.com/dkoosis/cardfit/pkg/measure"
)

func main() {
	code := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	_ = debug.Close()
	os.Exit(code)
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) > 0 {
		switch args[0] {
		case "version":
			fmt.Fprintln(stdout, version.String())
			return 0
		case "demo":
			return runDemo(args[1:], stdout, stderr)
		}
	}

	fs := flag.NewFlagSet("cardfit", flag.ContinueOnError)
	fs.SetOutput(stderr)
	textFlag := fs.String("text", "", "Card text; - reads it from stdin (default: demo text)")
	indicatorFlag := fs.String("indicator", "", "Badge value; 0 hides the badge, negative values render inactive")
	kindFlag := fs.String("kind", "text", "Card kind: text, text-image, picture, picture-reversed, all")
	widthFlag := fs.Int("width", 0, "Card width in cells")
	compactFlag := fs.Bool("compact", false, "Use the compact centering threshold for text-image cards")
	noColorFlag := fs.Bool("no-color", false, "Monochrome output")
	explainFlag := fs.Bool("explain", false, "Print the measurement and variant of each card")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(stderr, "cardfit: unexpected argument %q\n", fs.Arg(0))
		return 2
	}

	kinds, err := parseKinds(*kindFlag)
	if err != nil {
		fmt.Fprintf(stderr, "cardfit: %v\n", err)
		return 2
	}

	resolved, code := resolveConfig(fs, *widthFlag, *noColorFlag, *compactFlag, stderr)
	if code >= 0 {
		return code
	}
	app := resolved.App

	text := app.Demo.Text
	if flagSet(fs, "text") {
		text = *textFlag
	}
	if text == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			fmt.Fprintf(stderr, "cardfit: reading stdin: %v\n", err)
			return 1
		}
		text = strings.TrimRight(string(data), "\r\n")
	}

	indicator := *app.Demo.Indicator
	if flagSet(fs, "indicator") {
		indicator = card.ParseIndicator(*indicatorFlag)
	}

	env := resolved.Env()
	composer := card.NewComposer(env)
	for _, kind := range kinds {
		props := card.Props{Text: text, Indicator: card.Indicator(indicator), Compact: resolved.Compact}
		inst := card.New(kind, props, env, resolved.Width)
		out := composer.Compose(inst)
		fmt.Fprintln(stdout, out.View)
		if *explainFlag {
			writeExplain(stdout, inst)
		}
		inst.Dispose()
	}
	return 0
}

// runDemo shows the demo gallery.
func runDemo(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("cardfit demo", flag.ContinueOnError)
	fs.SetOutput(stderr)
	widthFlag := fs.Int("width", 0, "Card width in cells")
	compactFlag := fs.Bool("compact", false, "Use the compact centering threshold for text-image cards")
	noColorFlag := fs.Bool("no-color", false, "Monochrome output")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	resolved, code := resolveConfig(fs, *widthFlag, *noColorFlag, *compactFlag, stderr)
	if code >= 0 {
		return code
	}
	app := resolved.App
	spec := host.Spec{
		Text:      app.Demo.Text,
		ImageText: app.Demo.ImageText,
		Indicator: *app.Demo.Indicator,
		Compact:   resolved.Compact,
		CardCells: resolved.Width,
		Copies:    map[card.Kind]int{},
	}
	for _, k := range measure.Kinds {
		spec.Copies[k] = app.Demo.Copies.For(k)
	}
	gallery := host.NewGallery(resolved.Env(), spec)
	styles := host.DefaultStyles(resolved.NoColor)

	if !isTTYWriter(stdout) {
		defer gallery.Close()
		width, _ := termSize(stdout)
		gallery.Fit(width)
		fmt.Fprint(stdout, gallery.Render(width, styles.Header))
		return 0
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	model := host.NewModel(gallery, spec.Text, spec.Indicator, styles)
	if err := host.Run(ctx, model); err != nil {
		fmt.Fprintf(stderr, "cardfit: %v\n", err)
		return 1
	}
	return 0
}

// resolveConfig loads the config file and applies env and flags. It returns
// a non-negative exit code on failure.
func resolveConfig(fs *flag.FlagSet, width int, noColor, compact bool, stderr io.Writer) (*config.ResolvedConfig, int) {
	app, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "cardfit: warning: %v; using defaults\n", err)
	}
	resolved, err := config.Resolve(app, config.CliFlags{
		Width:      width,
		WidthSet:   flagSet(fs, "width"),
		NoColor:    noColor,
		NoColorSet: flagSet(fs, "no-color"),
		Compact:    compact,
		CompactSet: flagSet(fs, "compact"),
	})
	if err != nil {
		fmt.Fprintf(stderr, "cardfit: %v\n", err)
		return nil, 2
	}
	if resolved.Debug && !debug.Enabled() {
		debug.SetOutput(stderr)
	}
	return resolved, -1
}

// parseKinds reads the -kind flag.
func parseKinds(s string) ([]card.Kind, error) {
	if strings.EqualFold(strings.TrimSpace(s), "all") {
		return measure.Kinds, nil
	}
	k, err := measure.ParseKind(s)
	if err != nil {
		return nil, err
	}
	return []card.Kind{k}, nil
}

func writeExplain(w io.Writer, inst *card.Instance) {
	r := inst.Result()
	fmt.Fprintf(w, "kind=%s lines=%d line_height=%g height=%g overflow=%t variant=%s runs=%d shadow=%d\n",
		inst.Kind(), r.LineCount, r.LineHeight, r.Height, r.Overflow, inst.Variant(), inst.Runs(), inst.ShadowMeasurements())
}

// flagSet reports whether name was given on the command line.
func flagSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

// isTTYWriter reports whether w is a terminal.
func isTTYWriter(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// termSize returns the terminal dimensions for w, defaulting to 80x24.
func termSize(w io.Writer) (width, height int) {
	width, height = 80, 24
	if f, ok := w.(*os.File); ok {
		if tw, th, err := term.GetSize(int(f.Fd())); err == nil {
			if tw > 0 {
				width = tw
			}
			if th > 0 {
				height = th
			}
		}
	}
	return width, height
}
