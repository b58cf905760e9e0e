// Package project indexes a directory tree into typed, numbered folders
// that files can be organized into.
//
// Johnny Decimal projects classify three levels: areas ("NN-NN name"),
// categories ("NN name") inside areas, and subcategories ("NN.NN name")
// inside categories. A folder is usable for filing when it has no
// numbered children at the next level, or when it carries a sidecar term
// file regardless of children. Flat projects index every directory down
// to the configured depth.
package project

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/mwalker/jdfile/internal/config"
)

// SidecarName is the per-folder term file. One term per line; lines
// starting with '#' are comments. Its presence also marks a folder as
// usable even when it has numbered children.
const SidecarName = ".jdfile"

// ErrInvalidProjectPath is returned when the project root is missing or
// not a directory. Raised before any filename processing.
var ErrInvalidProjectPath = errors.New("invalid project path")

// Level is the position of a folder in the numbered hierarchy.
type Level int

const (
	// LevelOther marks folders of flat (non-numbered) projects.
	LevelOther Level = iota
	LevelArea
	LevelCategory
	LevelSubcategory
)

func (l Level) String() string {
	switch l {
	case LevelArea:
		return "area"
	case LevelCategory:
		return "category"
	case LevelSubcategory:
		return "subcategory"
	default:
		return "other"
	}
}

var (
	reArea        = regexp.MustCompile(`^(\d{2}-\d{2})[- _]`)
	reCategory    = regexp.MustCompile(`^(\d{2})[- _]`)
	reSubcategory = regexp.MustCompile(`^(\d{2}\.\d{2})[- _]`)
)

// Folder is a directory eligible to receive filed documents.
type Folder struct {
	// Path is the absolute folder path.
	Path string

	// Level is the folder's hierarchy level.
	Level Level

	// Number is the Johnny Decimal code ("10-19", "11", "11.01"); empty
	// for flat projects.
	Number string

	// Name is the display name with the numeric prefix stripped.
	Name string

	// Terms match filename tokens against this folder: words of the name
	// plus sidecar lines, deduplicated case-insensitively.
	Terms []string

	// Area and Category are paths of the numbered ancestors, when any.
	Area     string
	Category string
}

// Project is the read-only index of usable folders for one root.
type Project struct {
	// Name is the configured project name.
	Name string

	// Path is the validated project root.
	Path string

	// Type is jd or flat.
	Type config.ProjectType

	// Folders are the usable folders in lexicographic path order.
	Folders []*Folder

	// all retains every classified folder (usable or not) for Tree.
	all []*Folder
}

// New validates the project root and builds the folder index. The index
// is built once and treated as read-only afterwards.
func New(cfg *config.ProjectConfig) (*Project, error) {
	root, err := filepath.Abs(expandHome(cfg.Path))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidProjectPath, cfg.Path)
	}
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("%w: %s does not exist", ErrInvalidProjectPath, root)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrInvalidProjectPath, root)
	}

	p := &Project{Name: cfg.Name, Path: root, Type: cfg.Type}
	if cfg.Type == config.ProjectFlat {
		err = p.indexFlat(root, cfg.Depth)
	} else {
		err = p.indexJD(root)
	}
	if err != nil {
		return nil, err
	}

	sort.Slice(p.Folders, func(i, j int) bool { return p.Folders[i].Path < p.Folders[j].Path })
	return p, nil
}

// indexJD walks the three numbered levels and collects usable folders.
func (p *Project) indexJD(root string) error {
	areas, err := matchingDirs(root, reArea)
	if err != nil {
		return err
	}
	for _, area := range areas {
		areaPath := filepath.Join(root, area.name)
		categories, err := matchingDirs(areaPath, reCategory)
		if err != nil {
			return err
		}

		af := newFolder(areaPath, LevelArea, area.number, areaPath, "")
		p.all = append(p.all, af)
		if len(categories) == 0 || hasSidecar(areaPath) {
			p.Folders = append(p.Folders, af)
		}

		for _, cat := range categories {
			catPath := filepath.Join(areaPath, cat.name)
			subs, err := matchingDirs(catPath, reSubcategory)
			if err != nil {
				return err
			}

			cf := newFolder(catPath, LevelCategory, cat.number, areaPath, catPath)
			p.all = append(p.all, cf)
			if len(subs) == 0 || hasSidecar(catPath) {
				p.Folders = append(p.Folders, cf)
			}

			for _, sub := range subs {
				subPath := filepath.Join(catPath, sub.name)
				sf := newFolder(subPath, LevelSubcategory, sub.number, areaPath, catPath)
				p.all = append(p.all, sf)
				p.Folders = append(p.Folders, sf)
			}
		}
	}
	return nil
}

// indexFlat indexes every directory down to depth as a usable folder.
func (p *Project) indexFlat(root string, depth int) error {
	var walk func(dir string, remaining int) error
	walk = func(dir string, remaining int) error {
		if remaining == 0 {
			return nil
		}
		entries, err := os.ReadDir(dir)
		if err != nil {
			return fmt.Errorf("scan %s: %w", dir, err)
		}
		for _, e := range entries {
			if !e.IsDir() || strings.HasPrefix(e.Name(), ".") {
				continue
			}
			sub := filepath.Join(dir, e.Name())
			f := newFolder(sub, LevelOther, "", "", "")
			p.all = append(p.all, f)
			p.Folders = append(p.Folders, f)
			if err := walk(sub, remaining-1); err != nil {
				return err
			}
		}
		return nil
	}
	return walk(root, depth)
}

type numberedDir struct {
	name   string
	number string
}

// matchingDirs lists child directories whose names carry the numeric
// prefix for the next hierarchy level, in name order.
func matchingDirs(dir string, re *regexp.Regexp) ([]numberedDir, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", dir, err)
	}
	var out []numberedDir
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		if m := re.FindStringSubmatch(e.Name()); m != nil {
			out = append(out, numberedDir{name: e.Name(), number: m[1]})
		}
	}
	return out, nil
}

// newFolder derives the display name and term set for a classified
// directory.
func newFolder(path string, level Level, number, area, category string) *Folder {
	name := filepath.Base(path)
	switch level {
	case LevelArea:
		name = strings.TrimSpace(reArea.ReplaceAllString(name, ""))
	case LevelCategory:
		name = strings.TrimSpace(reCategory.ReplaceAllString(name, ""))
	case LevelSubcategory:
		name = strings.TrimSpace(reSubcategory.ReplaceAllString(name, ""))
	}

	f := &Folder{
		Path:     path,
		Level:    level,
		Number:   number,
		Name:     name,
		Area:     area,
		Category: category,
	}
	f.Terms = folderTerms(path, name)
	return f
}

// folderTerms splits the display name into words and appends sidecar
// lines, skipping comments and duplicates.
func folderTerms(path, name string) []string {
	var terms []string
	seen := map[string]bool{}
	add := func(term string) {
		term = strings.TrimSpace(term)
		key := strings.ToLower(term)
		if term == "" || seen[key] {
			return
		}
		seen[key] = true
		terms = append(terms, term)
	}

	for _, word := range strings.FieldsFunc(name, func(r rune) bool {
		return r == '-' || r == '_' || r == ' '
	}) {
		add(word)
	}

	data, err := os.ReadFile(filepath.Join(path, SidecarName))
	if err != nil {
		return terms
	}
	for _, line := range strings.Split(string(data), "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "#") {
			continue
		}
		add(line)
	}
	return terms
}

func hasSidecar(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, SidecarName))
	return err == nil
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}

// Tree writes an indented listing of every classified folder, usable or
// not, for the tree subcommand.
func (p *Project) Tree(w io.Writer) {
	fmt.Fprintln(w, p.Path)
	for _, f := range p.all {
		rel, err := filepath.Rel(p.Path, f.Path)
		if err != nil {
			rel = f.Path
		}
		depth := strings.Count(rel, string(filepath.Separator))
		fmt.Fprintf(w, "%s%s\n", strings.Repeat("  ", depth+1), filepath.Base(f.Path))
	}
}
