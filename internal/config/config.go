// Package config loads and validates jdfile configuration.
//
// Configuration lives in a YAML file (~/.config/jdfile/config.yaml by
// default). Top-level keys set defaults for every run; named project
// sections override them and add the project path, type and scan depth.
// All enumerated spellings and the date format template are validated
// here, before any file is touched.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/mwalker/jdfile/internal/dates"
)

// ErrProjectNotFound is returned when a named project has no section in
// the config file. This is fatal before any filename processing.
var ErrProjectNotFound = errors.New("project not found in configuration")

// Settings holds the fully parsed normalization options for a run.
// Enumerated values are typed; nothing here requires re-parsing on the
// per-file path.
type Settings struct {
	// DateFormat is a strftime-style template for reformatted dates.
	DateFormat string

	// FormatDates enables date extraction and reinsertion.
	FormatDates bool

	// InsertLocation places the formatted date before or after the stem.
	InsertLocation InsertLocation

	// Separator is the separator filenames are normalized to.
	Separator Separator

	// TransformCase is the case transformation applied to stems.
	TransformCase TransformCase

	// SplitWords splits camelCase words in stems.
	SplitWords bool

	// StripStopwords removes common English words from stems.
	StripStopwords bool

	// Stopwords are stripped in addition to the built-in list.
	Stopwords []string

	// MatchCase phrases keep their exact casing through cleaning.
	MatchCase []string

	// IgnoreDotfiles skips dotfiles during directory discovery.
	IgnoreDotfiles bool

	// Ignore lists filenames or doublestar globs to skip during
	// discovery.
	Ignore []string

	// Overwrite allows a rename to replace an existing file instead of
	// resolving a unique name.
	Overwrite bool

	// UseSynonyms expands filename tokens through the synonym collaborator
	// when organizing.
	UseSynonyms bool
}

// ProjectConfig describes one organizable directory tree.
type ProjectConfig struct {
	// Name is the key of the project section.
	Name string

	// Path is the project root.
	Path string

	// Type selects Johnny Decimal or flat folder indexing.
	Type ProjectType

	// Depth bounds directory recursion for discovery and flat indexing.
	Depth int

	// Settings are the run defaults with this project's overrides applied.
	Settings Settings
}

// HistoryConfig configures the rename journal.
type HistoryConfig struct {
	// Enabled turns journaling of committed renames on.
	Enabled bool `yaml:"enabled"`

	// DBPath is the SQLite database location.
	DBPath string `yaml:"db_path"`
}

// Config is the parsed configuration file.
type Config struct {
	// Settings are the top-level defaults.
	Settings Settings

	// Projects maps project names to their configuration.
	Projects map[string]*ProjectConfig

	// History configures the rename journal.
	History HistoryConfig
}

// DefaultSettings returns the option defaults used when the config file
// is missing or silent.
func DefaultSettings() Settings {
	return Settings{
		DateFormat:     "%Y-%m-%d",
		FormatDates:    true,
		InsertLocation: InsertBefore,
		Separator:      SeparatorIgnore,
		TransformCase:  CaseIgnore,
		SplitWords:     false,
		StripStopwords: true,
		IgnoreDotfiles: true,
		Overwrite:      false,
		UseSynonyms:    false,
	}
}

// DefaultConfig returns a Config with default settings and no projects.
func DefaultConfig() *Config {
	return &Config{
		Settings: DefaultSettings(),
		Projects: map[string]*ProjectConfig{},
		History: HistoryConfig{
			Enabled: false,
			DBPath:  filepath.Join(userDataDir(), "history.db"),
		},
	}
}

// DefaultConfigPath returns ~/.config/jdfile/config.yaml.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".jdfile", "config.yaml")
	}
	return filepath.Join(home, ".config", "jdfile", "config.yaml")
}

func userDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".jdfile"
	}
	return filepath.Join(home, ".local", "share", "jdfile")
}

// rawSettings mirrors the YAML option keys. Pointer fields distinguish
// "absent" from zero so file values merge over defaults.
type rawSettings struct {
	DateFormat     *string  `yaml:"date_format"`
	FormatDates    *bool    `yaml:"format_dates"`
	InsertLocation *string  `yaml:"insert_location"`
	Separator      *string  `yaml:"separator"`
	TransformCase  *string  `yaml:"transform_case"`
	SplitWords     *bool    `yaml:"split_words"`
	StripStopwords *bool    `yaml:"strip_stopwords"`
	Stopwords      []string `yaml:"stopwords"`
	MatchCase      []string `yaml:"match_case"`
	IgnoreDotfiles *bool    `yaml:"ignore_dotfiles"`
	Ignore         []string `yaml:"ignore"`
	Overwrite      *bool    `yaml:"overwrite_existing"`
	UseSynonyms    *bool    `yaml:"use_synonyms"`
}

type rawProject struct {
	rawSettings `yaml:",inline"`
	Path        string `yaml:"path"`
	Type        string `yaml:"type"`
	Depth       *int   `yaml:"depth"`
}

type rawConfig struct {
	rawSettings `yaml:",inline"`
	Projects    map[string]rawProject `yaml:"projects"`
	History     *HistoryConfig        `yaml:"history"`
}

// apply merges raw YAML values over base and parses enumerated
// spellings. List-valued options extend the base rather than replace it.
func (r *rawSettings) apply(base Settings) (Settings, error) {
	s := base
	var err error

	if r.DateFormat != nil {
		s.DateFormat = *r.DateFormat
	}
	if err = dates.ValidateTemplate(s.DateFormat); err != nil {
		return s, err
	}
	if r.FormatDates != nil {
		s.FormatDates = *r.FormatDates
	}
	if r.InsertLocation != nil {
		if s.InsertLocation, err = ParseInsertLocation(*r.InsertLocation); err != nil {
			return s, err
		}
	}
	if r.Separator != nil {
		if s.Separator, err = ParseSeparator(*r.Separator); err != nil {
			return s, err
		}
	}
	if r.TransformCase != nil {
		if s.TransformCase, err = ParseTransformCase(*r.TransformCase); err != nil {
			return s, err
		}
	}
	if r.SplitWords != nil {
		s.SplitWords = *r.SplitWords
	}
	if r.StripStopwords != nil {
		s.StripStopwords = *r.StripStopwords
	}
	if r.IgnoreDotfiles != nil {
		s.IgnoreDotfiles = *r.IgnoreDotfiles
	}
	if r.Overwrite != nil {
		s.Overwrite = *r.Overwrite
	}
	if r.UseSynonyms != nil {
		s.UseSynonyms = *r.UseSynonyms
	}
	s.Stopwords = appendUnique(base.Stopwords, r.Stopwords)
	s.MatchCase = appendUnique(base.MatchCase, r.MatchCase)
	s.Ignore = appendUnique(base.Ignore, r.Ignore)

	return s, nil
}

func appendUnique(base, extra []string) []string {
	out := append([]string(nil), base...)
	seen := make(map[string]bool, len(base))
	for _, v := range base {
		seen[v] = true
	}
	for _, v := range extra {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}

// LoadConfig loads configuration from path. A missing file yields the
// defaults without error; a malformed file or invalid option value is a
// configuration error.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var raw rawConfig
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}

	if cfg.Settings, err = raw.rawSettings.apply(DefaultSettings()); err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}

	for name, rp := range raw.Projects {
		pc := &ProjectConfig{Name: name, Path: rp.Path, Depth: 1}
		if pc.Settings, err = rp.rawSettings.apply(cfg.Settings); err != nil {
			return nil, fmt.Errorf("project %q: %w", name, err)
		}
		if pc.Type, err = ParseProjectType(rp.Type); err != nil {
			return nil, fmt.Errorf("project %q: %w", name, err)
		}
		if rp.Depth != nil {
			pc.Depth = *rp.Depth
		}
		cfg.Projects[name] = pc
	}

	if raw.History != nil {
		if raw.History.DBPath == "" {
			raw.History.DBPath = cfg.History.DBPath
		}
		cfg.History = *raw.History
	}

	return cfg, cfg.Validate()
}

// Project returns the named project section.
func (c *Config) Project(name string) (*ProjectConfig, error) {
	p, ok := c.Projects[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrProjectNotFound, name)
	}
	return p, nil
}

// Validate checks cross-field constraints not covered during parsing.
func (c *Config) Validate() error {
	if err := dates.ValidateTemplate(c.Settings.DateFormat); err != nil {
		return err
	}
	for name, p := range c.Projects {
		if p.Path == "" {
			return fmt.Errorf("project %q: path must be set", name)
		}
		if p.Depth < 1 {
			return fmt.Errorf("project %q: depth must be >= 1, got %d", name, p.Depth)
		}
	}
	if c.History.Enabled && c.History.DBPath == "" {
		return errors.New("history.db_path cannot be empty when history is enabled")
	}
	return nil
}
