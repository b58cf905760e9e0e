package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Discover expands the command-line arguments into the batch file list.
// Plain files pass through; directories are walked down to depth levels.
// Dotfiles are skipped when ignoreDotfiles is set, and any name or
// root-relative path matching an ignore glob is dropped. The result is
// absolute paths in lexicographic order, the order later renames observe.
func Discover(args []string, depth int, ignoreDotfiles bool, ignoreGlobs []string) ([]string, error) {
	seen := map[string]bool{}
	var files []string
	add := func(path string) {
		if !seen[path] {
			seen[path] = true
			files = append(files, path)
		}
	}

	for _, arg := range args {
		abs, err := filepath.Abs(arg)
		if err != nil {
			return nil, fmt.Errorf("resolve %s: %w", arg, err)
		}
		info, err := os.Stat(abs)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", arg, err)
		}

		if !info.IsDir() {
			if !ignored(filepath.Base(abs), filepath.Base(abs), ignoreDotfiles, ignoreGlobs) {
				add(abs)
			}
			continue
		}

		err = walkFiles(abs, abs, depth, func(path string) bool {
			rel, relErr := filepath.Rel(abs, path)
			if relErr != nil {
				rel = filepath.Base(path)
			}
			return ignored(filepath.Base(path), filepath.ToSlash(rel), ignoreDotfiles, ignoreGlobs)
		}, add)
		if err != nil {
			return nil, err
		}
	}

	sort.Strings(files)
	return files, nil
}

// walkFiles recurses dir down to depth levels, calling add for every
// file the skip predicate admits. Dot-directories are never entered.
func walkFiles(root, dir string, depth int, skip func(string) bool, add func(string)) error {
	if depth == 0 {
		return nil
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("scan %s: %w", dir, err)
	}
	for _, e := range entries {
		path := filepath.Join(dir, e.Name())
		if e.IsDir() {
			if strings.HasPrefix(e.Name(), ".") {
				continue
			}
			if err := walkFiles(root, path, depth-1, skip, add); err != nil {
				return err
			}
			continue
		}
		if !skip(path) {
			add(path)
		}
	}
	return nil
}

// ignored applies the dotfile rule and the ignore globs to one file.
// Globs match against both the bare name and the root-relative path.
func ignored(name, rel string, ignoreDotfiles bool, globs []string) bool {
	if ignoreDotfiles && strings.HasPrefix(name, ".") {
		return true
	}
	for _, g := range globs {
		if ok, err := doublestar.Match(g, name); err == nil && ok {
			return true
		}
		if ok, err := doublestar.Match(g, rel); err == nil && ok {
			return true
		}
	}
	return false
}
