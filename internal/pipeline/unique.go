package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// UniqueName returns desired unchanged when it is free. On collision it
// appends sep plus the smallest integer from 1 that names a free path,
// either before the extension chain or after the whole name.
func UniqueName(desired, sep string, beforeExtension bool) string {
	if !exists(desired) {
		return desired
	}

	dir := filepath.Dir(desired)
	name := filepath.Base(desired)
	stem, suffixes := splitName(name)
	chain := strings.Join(suffixes, "")

	for i := 1; ; i++ {
		var candidate string
		if beforeExtension {
			candidate = fmt.Sprintf("%s%s%d%s", stem, sep, i, chain)
		} else {
			candidate = fmt.Sprintf("%s%s%d", name, sep, i)
		}
		path := filepath.Join(dir, candidate)
		if !exists(path) {
			return path
		}
	}
}

func exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}

// CommitResult reports what Commit did with one file.
type CommitResult int

const (
	// NoChange means the transform produced the original path.
	NoChange CommitResult = iota

	// Renamed means the file was moved or renamed on disk.
	Renamed

	// WouldRename means dry-run mode reported the rename without
	// performing it.
	WouldRename
)

// Commit performs the terminal rename for f, or reports it in dry-run
// mode. When the target exists and overwrite is disallowed, the name is
// made unique first. A failure here is fatal for this file only.
func (p *Pipeline) Commit(f *File, dryRun bool) (CommitResult, error) {
	target := f.TargetPath()
	if target == f.OriginalPath {
		return NoChange, nil
	}

	s := p.Opts.Settings
	if !s.Overwrite && exists(target) {
		target = UniqueName(target, s.Separator.Char(), true)
		f.NewStem, f.NewSuffixes = splitName(filepath.Base(target))
	}
	if dryRun {
		return WouldRename, nil
	}
	if err := os.Rename(f.OriginalPath, target); err != nil {
		return NoChange, fmt.Errorf("rename %s: %w", f.OriginalPath, err)
	}
	return Renamed, nil
}
