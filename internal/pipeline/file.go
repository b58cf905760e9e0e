// Package pipeline orchestrates the per-file filename transform: date
// extraction, stem cleaning, date reinsertion, folder resolution,
// unique-name resolution and the final rename.
package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// File tracks one input path through the pipeline stages. It is created
// once per path at the start of a batch and mutated by each stage; after
// Commit it is never touched again.
type File struct {
	// OriginalPath is the absolute input path.
	OriginalPath string

	// Stem is the filename with the suffix chain removed. Dotfiles keep
	// the leading dot in the stem.
	Stem string

	// Suffixes is the ordered extension chain ([".tar", ".gz"]).
	Suffixes []string

	// IsDotfile records a leading dot in the original name.
	IsDotfile bool

	// ModTime is the reference timestamp for date insertion when the
	// name carries no recognizable date text.
	ModTime time.Time

	// NewStem, NewSuffixes and NewParent are filled by Process. NewParent
	// is empty when the file stays in its directory.
	NewStem     string
	NewSuffixes []string
	NewParent   string

	// Unresolved marks a file that matched no folder (or whose ambiguity
	// the chooser declined to settle). The file keeps its parent.
	Unresolved bool
}

// NewFile stats path and splits its name into stem and suffix chain.
func NewFile(path string) (*File, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory, not a file", path)
	}

	name := filepath.Base(abs)
	stem, suffixes := splitName(name)
	return &File{
		OriginalPath: abs,
		Stem:         stem,
		Suffixes:     suffixes,
		IsDotfile:    strings.HasPrefix(name, "."),
		ModTime:      info.ModTime(),
		NewStem:      stem,
		NewSuffixes:  suffixes,
	}, nil
}

// splitName separates the suffix chain from the stem. Trailing dot
// segments form the chain; a purely numeric segment ends it, staying in
// the stem so names like "backup.2022.tar.gz" keep their year. A leading
// dot belongs to the stem, not the chain.
func splitName(name string) (string, []string) {
	base := name
	dotfile := strings.HasPrefix(name, ".")
	if dotfile {
		base = name[1:]
	}

	parts := strings.Split(base, ".")
	end := len(parts)
	for end > 1 {
		seg := parts[end-1]
		if seg == "" || isNumeric(seg) {
			break
		}
		end--
	}

	stem := strings.Join(parts[:end], ".")
	if dotfile {
		stem = "." + stem
	}
	var suffixes []string
	for _, seg := range parts[end:] {
		suffixes = append(suffixes, "."+seg)
	}
	return stem, suffixes
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// NewName is the transformed filename without its directory.
func (f *File) NewName() string {
	return f.NewStem + strings.Join(f.NewSuffixes, "")
}

// TargetPath is the full post-transform path, accounting for a resolved
// destination folder.
func (f *File) TargetPath() string {
	dir := filepath.Dir(f.OriginalPath)
	if f.NewParent != "" {
		dir = f.NewParent
	}
	return filepath.Join(dir, f.NewName())
}

// Changed reports whether committing would move or rename the file.
func (f *File) Changed() bool {
	return f.TargetPath() != f.OriginalPath
}
