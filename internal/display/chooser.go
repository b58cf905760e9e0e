package display

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/mwalker/jdfile/internal/pipeline"
	"github.com/mwalker/jdfile/internal/project"
	"github.com/mwalker/jdfile/internal/resolve"
)

var (
	promptName   = color.New(color.Bold).SprintFunc()
	promptNumber = color.New(color.FgCyan).SprintFunc()
)

// TerminalChooser prompts on the terminal when a filename matches more
// than one folder. When stdin is not a terminal it never blocks: every
// ambiguous file is skipped.
type TerminalChooser struct {
	// scanner is shared across prompts so buffered input is not lost
	// between files.
	scanner     *bufio.Scanner
	out         io.Writer
	interactive bool
}

// NewTerminalChooser builds a chooser on stdin/stdout, detecting
// whether an interactive prompt is possible.
func NewTerminalChooser() *TerminalChooser {
	return &TerminalChooser{
		scanner:     bufio.NewScanner(os.Stdin),
		out:         os.Stdout,
		interactive: isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()),
	}
}

// newTestChooser wires arbitrary streams; used by tests.
func newTestChooser(in io.Reader, out io.Writer) *TerminalChooser {
	return &TerminalChooser{scanner: bufio.NewScanner(in), out: out, interactive: true}
}

// Choose prompts with the numbered candidate list and reads a
// selection. "s" skips the file, "a" aborts the batch.
func (c *TerminalChooser) Choose(filename string, candidates []resolve.Candidate) (*project.Folder, error) {
	if !c.interactive {
		return nil, nil
	}

	fmt.Fprintf(c.out, "\n%s matches %d folders:\n", promptName(filename), len(candidates))
	for i, cand := range candidates {
		label := cand.Folder.Name
		if cand.Folder.Number != "" {
			label = cand.Folder.Number + " " + label
		}
		fmt.Fprintf(c.out, "  %s) %s %s\n",
			promptNumber(strconv.Itoa(i+1)), label, dim("(matched: "+strings.Join(cand.Matched, ", ")+")"))
	}
	fmt.Fprintf(c.out, "Select folder [1-%d], (s)kip, (a)bort: ", len(candidates))

	for c.scanner.Scan() {
		answer := strings.ToLower(strings.TrimSpace(c.scanner.Text()))
		switch answer {
		case "s", "skip", "":
			return nil, nil
		case "a", "abort", "q":
			return nil, pipeline.ErrUserAbort
		}
		if n, err := strconv.Atoi(answer); err == nil && n >= 1 && n <= len(candidates) {
			return candidates[n-1].Folder, nil
		}
		fmt.Fprintf(c.out, "Select folder [1-%d], (s)kip, (a)bort: ", len(candidates))
	}
	if err := c.scanner.Err(); err != nil {
		return nil, fmt.Errorf("read selection: %w", err)
	}
	// EOF on stdin behaves like skip.
	return nil, nil
}

// Confirm asks a yes/no question before a batch mutates the filesystem.
// Non-interactive runs proceed without asking.
func (c *TerminalChooser) Confirm(prompt string) (bool, error) {
	if !c.interactive {
		return true, nil
	}
	fmt.Fprintf(c.out, "%s [y/N]: ", prompt)
	if !c.scanner.Scan() {
		if err := c.scanner.Err(); err != nil {
			return false, fmt.Errorf("read confirmation: %w", err)
		}
		return false, nil
	}
	answer := strings.ToLower(strings.TrimSpace(c.scanner.Text()))
	return answer == "y" || answer == "yes", nil
}
