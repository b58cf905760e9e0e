package project

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mwalker/jdfile/internal/config"
)

// buildTree creates the directory fixture under root. Paths ending in a
// separator are directories; everything else is a file with the given
// content.
func buildTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		full := filepath.Join(root, filepath.FromSlash(rel))
		if strings.HasSuffix(rel, "/") {
			if err := os.MkdirAll(full, 0o755); err != nil {
				t.Fatal(err)
			}
			continue
		}
		if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(full, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
}

func jdFixture(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	buildTree(t, root, map[string]string{
		"10-19 Finance/11 Banking/11.01 Statements/": "",
		"10-19 Finance/11 Banking/11.02 Transfers/":  "",
		"10-19 Finance/12 Taxes/":                    "",
		"20-29 Projects/":                            "",
		"unnumbered stuff/":                          "",
		"notes.txt":                                  "x",
	})
	return root
}

func TestNewJD(t *testing.T) {
	root := jdFixture(t)
	p, err := New(&config.ProjectConfig{Name: "docs", Path: root, Type: config.ProjectJD, Depth: 3})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	var got []string
	for _, f := range p.Folders {
		rel, _ := filepath.Rel(root, f.Path)
		got = append(got, filepath.ToSlash(rel))
	}
	want := []string{
		"10-19 Finance/11 Banking/11.01 Statements",
		"10-19 Finance/11 Banking/11.02 Transfers",
		"10-19 Finance/12 Taxes",
		"20-29 Projects",
	}
	if len(got) != len(want) {
		t.Fatalf("usable folders = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("folder[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestNewJDFolderFields(t *testing.T) {
	root := jdFixture(t)
	p, err := New(&config.ProjectConfig{Name: "docs", Path: root, Type: config.ProjectJD, Depth: 3})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	byNumber := map[string]*Folder{}
	for _, f := range p.Folders {
		byNumber[f.Number] = f
	}

	sub, ok := byNumber["11.01"]
	if !ok {
		t.Fatal("subcategory 11.01 not indexed")
	}
	if sub.Level != LevelSubcategory {
		t.Errorf("level = %v, want subcategory", sub.Level)
	}
	if sub.Name != "Statements" {
		t.Errorf("name = %q, want Statements", sub.Name)
	}
	if len(sub.Terms) != 1 || sub.Terms[0] != "Statements" {
		t.Errorf("terms = %v, want [Statements]", sub.Terms)
	}
	if filepath.Base(sub.Area) != "10-19 Finance" {
		t.Errorf("area = %q", sub.Area)
	}
	if filepath.Base(sub.Category) != "11 Banking" {
		t.Errorf("category = %q", sub.Category)
	}

	taxes, ok := byNumber["12"]
	if !ok {
		t.Fatal("category 12 not indexed")
	}
	if taxes.Level != LevelCategory {
		t.Errorf("level = %v, want category", taxes.Level)
	}
}

// A folder with numbered children is not usable unless it carries a
// sidecar term file.
func TestUsableFolderRule(t *testing.T) {
	root := jdFixture(t)
	p, err := New(&config.ProjectConfig{Name: "docs", Path: root, Type: config.ProjectJD, Depth: 3})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for _, f := range p.Folders {
		if f.Number == "11" || f.Number == "10-19" {
			t.Errorf("folder %q has numbered children and no sidecar; must not be usable", f.Number)
		}
	}

	// Adding a sidecar promotes the parent.
	sidecar := filepath.Join(root, "10-19 Finance", "11 Banking", SidecarName)
	if err := os.WriteFile(sidecar, []byte("bank\n# comment\nmoney\nbank\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	p, err = New(&config.ProjectConfig{Name: "docs", Path: root, Type: config.ProjectJD, Depth: 3})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	var banking *Folder
	for _, f := range p.Folders {
		if f.Number == "11" {
			banking = f
		}
	}
	if banking == nil {
		t.Fatal("folder 11 with sidecar should be usable")
	}
	want := []string{"Banking", "bank", "money"}
	if len(banking.Terms) != len(want) {
		t.Fatalf("terms = %v, want %v", banking.Terms, want)
	}
	for i := range want {
		if banking.Terms[i] != want[i] {
			t.Errorf("terms[%d] = %q, want %q", i, banking.Terms[i], want[i])
		}
	}
}

func TestNewFlat(t *testing.T) {
	root := t.TempDir()
	buildTree(t, root, map[string]string{
		"invoices/2022/": "",
		"receipts/":      "",
		".git/objects/":  "",
	})
	p, err := New(&config.ProjectConfig{Name: "files", Path: root, Type: config.ProjectFlat, Depth: 2})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	var got []string
	for _, f := range p.Folders {
		rel, _ := filepath.Rel(root, f.Path)
		got = append(got, filepath.ToSlash(rel))
		if f.Level != LevelOther {
			t.Errorf("flat folder %q level = %v, want other", rel, f.Level)
		}
		if f.Number != "" {
			t.Errorf("flat folder %q number = %q, want empty", rel, f.Number)
		}
	}
	want := []string{"invoices", "invoices/2022", "receipts"}
	if len(got) != len(want) {
		t.Fatalf("folders = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("folder[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestFlatDepthBound(t *testing.T) {
	root := t.TempDir()
	buildTree(t, root, map[string]string{"a/b/c/": ""})
	p, err := New(&config.ProjectConfig{Name: "files", Path: root, Type: config.ProjectFlat, Depth: 1})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if len(p.Folders) != 1 || filepath.Base(p.Folders[0].Path) != "a" {
		t.Errorf("depth 1 should index only the first level, got %v", p.Folders)
	}
}

func TestNewInvalidPath(t *testing.T) {
	_, err := New(&config.ProjectConfig{Name: "x", Path: filepath.Join(t.TempDir(), "missing"), Type: config.ProjectJD, Depth: 1})
	if err == nil || !strings.Contains(err.Error(), "does not exist") {
		t.Fatalf("err = %v, want invalid path", err)
	}

	file := filepath.Join(t.TempDir(), "plain.txt")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err = New(&config.ProjectConfig{Name: "x", Path: file, Type: config.ProjectJD, Depth: 1})
	if err == nil || !strings.Contains(err.Error(), "not a directory") {
		t.Fatalf("err = %v, want not-a-directory", err)
	}
}

func TestTree(t *testing.T) {
	root := jdFixture(t)
	p, err := New(&config.ProjectConfig{Name: "docs", Path: root, Type: config.ProjectJD, Depth: 3})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	var sb strings.Builder
	p.Tree(&sb)
	out := sb.String()
	for _, name := range []string{"10-19 Finance", "11 Banking", "11.01 Statements", "12 Taxes", "20-29 Projects"} {
		if !strings.Contains(out, name) {
			t.Errorf("tree output missing %q:\n%s", name, out)
		}
	}
	if strings.Contains(out, "unnumbered stuff") {
		t.Errorf("tree output should not include unnumbered directories:\n%s", out)
	}
}
