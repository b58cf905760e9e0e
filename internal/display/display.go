// Package display renders per-file results, diffs and the interactive
// folder chooser for the terminal.
package display

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/mwalker/jdfile/internal/pipeline"
)

var (
	labelRenamed = color.New(color.FgGreen).SprintFunc()
	labelDryRun  = color.New(color.FgCyan).SprintFunc()
	labelSkipped = color.New(color.FgYellow).SprintFunc()
	labelError   = color.New(color.FgRed, color.Bold).SprintFunc()
	dim          = color.New(color.Faint).SprintFunc()
)

// Printer writes run output. Colors disable automatically when out is
// not a terminal.
type Printer struct {
	out io.Writer

	// Verbose also reports files that needed no change.
	Verbose bool

	renamed   int
	unchanged int
	skipped   int
	failed    int
}

// NewPrinter returns a Printer on w, disabling color when w is not a
// TTY.
func NewPrinter(w io.Writer) *Printer {
	if f, ok := w.(*os.File); ok && !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
		color.NoColor = true
	}
	return &Printer{out: w}
}

// Result reports the outcome for one committed file and counts it for
// the summary.
func (p *Printer) Result(f *pipeline.File, res pipeline.CommitResult) {
	oldName := filepath.Base(f.OriginalPath)
	switch res {
	case pipeline.NoChange:
		p.unchanged++
		if p.Verbose {
			fmt.Fprintf(p.out, "%s %s\n", dim("unchanged"), oldName)
		}
	case pipeline.Renamed:
		p.renamed++
		fmt.Fprintf(p.out, "%s %s\n", labelRenamed("renamed"), p.change(f))
	case pipeline.WouldRename:
		p.renamed++
		fmt.Fprintf(p.out, "%s %s\n", labelDryRun("dry-run"), p.change(f))
	}
	if f.Unresolved {
		p.skipped++
		fmt.Fprintf(p.out, "%s %s matched no folder\n", labelSkipped("skipped"), f.NewName())
	}
}

// change formats the old → new transition, including the destination
// directory when the file moves.
func (p *Printer) change(f *pipeline.File) string {
	oldName, newName := Diff(filepath.Base(f.OriginalPath), f.NewName())
	out := oldName + " -> " + newName
	if f.NewParent != "" {
		out += dim(fmt.Sprintf(" (%s)", f.NewParent))
	}
	return out
}

// Error reports a per-file failure and counts it.
func (p *Printer) Error(path string, err error) {
	p.failed++
	fmt.Fprintf(p.out, "%s %s: %v\n", labelError("error"), filepath.Base(path), err)
}

// Summary prints the batch totals.
func (p *Printer) Summary(dryRun bool) {
	verb := "renamed"
	if dryRun {
		verb = "would rename"
	}
	fmt.Fprintf(p.out, "\n%s %d, unchanged %d", verb, p.renamed, p.unchanged)
	if p.skipped > 0 {
		fmt.Fprintf(p.out, ", skipped %d", p.skipped)
	}
	if p.failed > 0 {
		fmt.Fprintf(p.out, ", failed %d", p.failed)
	}
	fmt.Fprintln(p.out)
}

// Failed reports whether any per-file error was printed.
func (p *Printer) Failed() bool {
	return p.failed > 0
}
