// Package resolve matches filename tokens against a project's folder
// index to pick a destination folder.
package resolve

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/mwalker/jdfile/internal/normalize"
	"github.com/mwalker/jdfile/internal/project"
)

// ErrFolderNumberNotFound is returned when an explicitly requested
// folder number exists in no indexed folder.
var ErrFolderNumberNotFound = errors.New("folder number not found in project")

// SynonymFunc expands one token into related words. A nil function
// disables expansion.
type SynonymFunc func(word string) []string

// Outcome classifies a resolution attempt.
type Outcome int

const (
	// NoMatch means no folder shares a term with the filename. The file
	// stays where it is.
	NoMatch Outcome = iota

	// Selected means exactly one folder was chosen.
	Selected

	// Ambiguous means several folders matched and the caller must choose.
	Ambiguous
)

// Candidate pairs a matching folder with the terms that matched it.
type Candidate struct {
	Folder  *project.Folder
	Matched []string
}

// Resolution is the outcome of matching one filename against the index.
type Resolution struct {
	Outcome Outcome

	// Folder is set when Outcome is Selected.
	Folder *project.Folder

	// Candidates is set when Outcome is Ambiguous, in index order.
	Candidates []Candidate
}

// Resolver matches token sets against one project index.
type Resolver struct {
	// Project is the folder index to match against.
	Project *project.Project

	// Synonyms expands tokens before matching when non-nil.
	Synonyms SynonymFunc

	// Force selects the first candidate instead of reporting ambiguity.
	Force bool
}

// tokenWord accepts tokens containing at least two letters, with digits
// allowed around and between the letter groups. Pure numbers and single
// characters never match folder terms.
var tokenWord = regexp.MustCompile(`^\d*[a-zA-Z]+\d*[a-zA-Z]+\d*$`)

// jdNumber extracts Johnny Decimal codes before the stem is split, since
// splitting would destroy "11.01" and "10-19".
var jdNumber = regexp.MustCompile(`\b(\d{2}-\d{2}|\d{2}\.\d{2}|\d{2})\b`)

// Tokenize derives the match tokens for a stem: embedded Johnny Decimal
// numbers, camelCase-split words, separator-split segments that look
// like words, the user-supplied terms, and synonym expansions of all of
// the above. The result is lowercased, deduplicated and sorted.
func Tokenize(stem string, userTerms []string, synonyms SynonymFunc) []string {
	raw := jdNumber.FindAllString(stem, -1)

	split := normalize.SplitCamelWords(stem, nil)
	words := strings.FieldsFunc(split, func(r rune) bool {
		return r == '-' || r == '_' || r == ' ' || r == '.'
	})
	for _, w := range words {
		if tokenWord.MatchString(w) {
			raw = append(raw, w)
		}
	}
	raw = append(raw, userTerms...)

	seen := map[string]bool{}
	var tokens []string
	add := func(w string) {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" || seen[w] {
			return
		}
		seen[w] = true
		tokens = append(tokens, w)
	}
	for _, w := range raw {
		add(w)
		if synonyms != nil {
			for _, syn := range synonyms(w) {
				add(syn)
			}
		}
	}
	sort.Strings(tokens)
	return tokens
}

// Resolve picks a destination folder for one token set. numberOverride,
// when non-empty, bypasses term matching entirely; an unknown number is
// an error. A folder number appearing verbatim among the tokens wins
// before any term comparison.
func (r *Resolver) Resolve(tokens []string, numberOverride string) (Resolution, error) {
	if numberOverride != "" {
		for _, f := range r.Project.Folders {
			if f.Number == numberOverride {
				return Resolution{Outcome: Selected, Folder: f}, nil
			}
		}
		return Resolution{}, fmt.Errorf("%w: %q", ErrFolderNumberNotFound, numberOverride)
	}

	tokenSet := make(map[string]bool, len(tokens))
	for _, t := range tokens {
		tokenSet[t] = true
	}

	// A Johnny Decimal number in the filename is an explicit address.
	for _, f := range r.Project.Folders {
		if f.Number != "" && tokenSet[f.Number] {
			return Resolution{Outcome: Selected, Folder: f}, nil
		}
	}

	var candidates []Candidate
	for _, f := range r.Project.Folders {
		var matched []string
		for _, term := range f.Terms {
			if tokenSet[strings.ToLower(term)] {
				matched = append(matched, term)
			}
		}
		if len(matched) > 0 {
			candidates = append(candidates, Candidate{Folder: f, Matched: matched})
		}
	}

	switch {
	case len(candidates) == 0:
		return Resolution{Outcome: NoMatch}, nil
	case len(candidates) == 1 || r.Force:
		return Resolution{Outcome: Selected, Folder: candidates[0].Folder}, nil
	default:
		return Resolution{Outcome: Ambiguous, Candidates: candidates}, nil
	}
}
