package pipeline

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mwalker/jdfile/internal/config"
	"github.com/mwalker/jdfile/internal/dates"
	"github.com/mwalker/jdfile/internal/normalize"
	"github.com/mwalker/jdfile/internal/project"
	"github.com/mwalker/jdfile/internal/resolve"
)

// ErrUserAbort is returned when the chooser or a confirmation step
// aborts the run. Files committed earlier in the batch stay committed.
var ErrUserAbort = errors.New("aborted by user")

// Chooser settles ambiguous folder matches. A nil folder with a nil
// error means leave the file in place; ErrUserAbort stops the batch.
type Chooser interface {
	Choose(filename string, candidates []resolve.Candidate) (*project.Folder, error)
}

// Options carries the per-run knobs for Process. Settings arrive parsed
// and validated from the config layer.
type Options struct {
	Settings config.Settings

	// Now anchors relative date keywords; tests pin it.
	Now time.Time

	// UserTerms are extra match tokens supplied on the command line.
	UserTerms []string

	// Synonyms expands tokens during organizing; nil disables expansion.
	Synonyms resolve.SynonymFunc
}

// Pipeline transforms one file at a time. Resolver is nil when
// organizing is disabled; Chooser is consulted only for ambiguous
// matches.
type Pipeline struct {
	Opts     Options
	Resolver *resolve.Resolver
	Chooser  Chooser
}

// Process runs the transform stages on f: extract date text, clean the
// stem, reinsert the formatted date, clean the suffix chain, and resolve
// a destination folder when organizing. numberOverride bypasses term
// matching.
func (p *Pipeline) Process(f *File, numberOverride string) error {
	s := p.Opts.Settings
	stem := f.Stem

	var formatted string
	if s.FormatDates {
		match, found := dates.FindOrFallback(stem, p.Opts.Now, f.ModTime)
		if found {
			// A fallback match carries no Text; only a textual match is
			// removed from the stem.
			if match.Text != "" {
				stem = removeOnce(stem, match.Text)
			}
			var err error
			formatted, err = dates.Format(match.Date, s.DateFormat)
			if err != nil {
				return fmt.Errorf("format date for %s: %w", f.OriginalPath, err)
			}
		}
	}

	cleaned := normalize.Clean(stem, normalize.Options{
		SplitWords:     s.SplitWords,
		MatchCase:      s.MatchCase,
		StripStopwords: s.StripStopwords,
		Stopwords:      s.Stopwords,
		TransformCase:  s.TransformCase,
		Separator:      s.Separator,
	})

	if formatted != "" {
		cleaned = insertDate(cleaned, formatted, s.InsertLocation, s.Separator)
	}
	f.NewStem = cleaned
	f.NewSuffixes = normalize.CleanSuffixes(f.Suffixes)

	if p.Resolver != nil {
		if err := p.organize(f, numberOverride); err != nil {
			return err
		}
	}
	return nil
}

// organize resolves a destination folder for f, consulting the chooser
// on ambiguity.
func (p *Pipeline) organize(f *File, numberOverride string) error {
	tokens := resolve.Tokenize(f.NewStem, p.Opts.UserTerms, p.Opts.Synonyms)
	res, err := p.Resolver.Resolve(tokens, numberOverride)
	if err != nil {
		return err
	}

	switch res.Outcome {
	case resolve.Selected:
		f.NewParent = res.Folder.Path
	case resolve.Ambiguous:
		if p.Chooser == nil {
			f.Unresolved = true
			return nil
		}
		folder, err := p.Chooser.Choose(f.NewName(), res.Candidates)
		if err != nil {
			return err
		}
		if folder == nil {
			f.Unresolved = true
			return nil
		}
		f.NewParent = folder.Path
	case resolve.NoMatch:
		f.Unresolved = true
	}
	return nil
}

// removeOnce deletes the first occurrence of sub from s along with any
// separator characters left dangling around the hole.
func removeOnce(s, sub string) string {
	if sub == "" {
		return s
	}
	i := strings.Index(s, sub)
	if i < 0 {
		return s
	}
	left := strings.TrimRight(s[:i], " -_.")
	right := strings.TrimLeft(s[i+len(sub):], " -_.")
	switch {
	case left == "":
		return right
	case right == "":
		return left
	default:
		return left + " " + right
	}
}

// insertDate joins the formatted date to the cleaned stem with the
// separator character. A dotfile's leading dot stays ahead of an
// inserted date.
func insertDate(stem, date string, loc config.InsertLocation, sep config.Separator) string {
	if stem == "" {
		return date
	}

	prefix := ""
	if strings.HasPrefix(stem, ".") {
		prefix = "."
		stem = strings.TrimLeft(stem, ".")
	}

	var joined string
	if loc == config.InsertAfter {
		joined = stem + sep.Char() + date
	} else {
		joined = date + sep.Char() + stem
	}
	return prefix + joined
}
