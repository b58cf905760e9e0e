package config

import (
	"fmt"
	"os"

	"github.com/mwalker/jdfile/internal/filelock"
)

// starterConfig is written by `jdfile init` as a commented starting
// point. Every key shows its default.
const starterConfig = `# jdfile configuration.
#
# Top-level keys apply to every run; project sections override them.

# strftime-style template for reformatted dates.
date_format: "%Y-%m-%d"

# Extract dates from filenames and reinsert them reformatted.
format_dates: true

# Where the formatted date goes: before or after the stem.
insert_location: before

# Separator filenames are normalized to: ignore, dash, space,
# underscore, none.
separator: ignore

# Case transformation: ignore, lower, upper, title, sentence, camelcase.
transform_case: ignore

# Split camelCase words before cleaning.
split_words: false

# Remove common English words from stems.
strip_stopwords: true

# Extra stopwords on top of the built-in list.
stopwords: []

# Phrases that keep their exact casing (e.g. macOS, GitHub).
match_case: []

# Skip dotfiles when scanning directories.
ignore_dotfiles: true

# Filenames or glob patterns to skip (doublestar syntax, e.g. "**/*.bak").
ignore: []

# Replace existing files instead of picking a unique name.
overwrite_existing: false

# Journal committed renames to a SQLite database.
history:
  enabled: false

# Projects files can be organized into.
projects: {}
#  docs:
#    path: ~/Documents
#    type: jd        # jd or flat
#    depth: 3
`

// WriteStarter writes the commented starter configuration to path. An
// existing file is never touched.
func WriteStarter(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists: %s", path)
	}
	if err := filelock.AtomicWrite(path, []byte(starterConfig)); err != nil {
		return fmt.Errorf("write starter config: %w", err)
	}
	return nil
}
