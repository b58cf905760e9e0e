// Package normalize implements the filename cleaning transforms: camelCase
// splitting, stopword stripping, special-character removal, case and
// separator normalization, and suffix cleanup.
//
// Clean is a total function: degenerate inputs (all-special-character
// stems, stems reduced to nothing) fall back to the original rather than
// producing an empty name.
package normalize

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/mwalker/jdfile/internal/config"
)

// Options enumerate the cleaning knobs. All enumerated values arrive
// pre-parsed from the config layer.
type Options struct {
	// SplitWords splits camelCase words before other stages.
	SplitWords bool

	// MatchCase phrases are protected during splitting and re-applied
	// with their exact casing after the case transform.
	MatchCase []string

	// StripStopwords removes common English words plus Stopwords.
	StripStopwords bool

	// Stopwords extends the built-in stopword list.
	Stopwords []string

	// TransformCase is applied after stripping.
	TransformCase config.TransformCase

	// Separator is the target separator mode.
	Separator config.Separator
}

// Clean applies the full stage pipeline to a stem. Stages always run in
// the same order; each consumes the previous stage's output. A leading
// dot survives cleaning so dotfiles stay dotfiles.
func Clean(stem string, opts Options) string {
	out := stem
	isDotfile := strings.HasPrefix(stem, ".")

	if opts.SplitWords {
		out = SplitCamelWords(out, opts.MatchCase)
	}
	if opts.StripStopwords {
		out = StripStopwords(out, opts.Stopwords)
	}
	out = StripSpecialChars(out)
	out = TransformCase(out, opts.TransformCase)
	out = ApplyMatchCase(out, opts.MatchCase)
	out = NormalizeSeparators(out, opts.Separator)
	out = strings.Trim(out, " -_.")

	if out == "" {
		return stem
	}
	if isDotfile && !strings.HasPrefix(out, ".") {
		out = "." + out
	}
	return out
}

// SplitCamelWords inserts a space before every capital letter that starts
// a new lowercase word. Phrases in matchCase are detected in their split
// form and rejoined verbatim afterwards.
func SplitCamelWords(s string, matchCase []string) string {
	split := splitCamel(s)

	for _, phrase := range matchCase {
		splitPhrase := splitCamel(phrase)
		if splitPhrase == phrase {
			continue
		}
		re := regexp.MustCompile(`(?i)(^|[-_ 0-9])` + regexp.QuoteMeta(splitPhrase) + `([-_ 0-9]|$)`)
		split = re.ReplaceAllString(split, "${1}"+phrase+"${2}")
	}
	return split
}

// splitCamel breaks before each [upper][lower] pair: "myCoolFile" becomes
// "my Cool File". Runs of capitals ("DDYYYY") are left alone.
func splitCamel(s string) string {
	runes := []rune(s)
	var b strings.Builder
	for i, r := range runes {
		if i > 0 && unicode.IsUpper(r) && i+1 < len(runes) && unicode.IsLower(runes[i+1]) {
			b.WriteRune(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// StripStopwords removes whole-word occurrences of the built-in English
// stopword list plus extra, bounded by non-alphanumeric characters or the
// string ends. If stripping would leave the stem empty or a single
// character, the original string is returned untouched.
func StripStopwords(s string, extra []string) string {
	drop := make(map[string]bool, len(extra))
	for _, w := range extra {
		drop[strings.ToLower(w)] = true
	}

	var b strings.Builder
	for _, run := range splitRuns(s) {
		if run.word {
			lower := strings.ToLower(run.text)
			if stopwords[lower] || drop[lower] {
				continue
			}
		}
		b.WriteString(run.text)
	}

	stripped := b.String()
	if isDegenerate(stripped) {
		return s
	}
	return strings.Trim(stripped, " -_")
}

type run struct {
	text string
	word bool // alphanumeric run
}

// splitRuns partitions s into alternating alphanumeric and
// non-alphanumeric runs.
func splitRuns(s string) []run {
	var runs []run
	var cur strings.Builder
	curWord := false
	flush := func() {
		if cur.Len() > 0 {
			runs = append(runs, run{text: cur.String(), word: curWord})
			cur.Reset()
		}
	}
	for _, r := range s {
		word := unicode.IsLetter(r) || unicode.IsDigit(r)
		if cur.Len() > 0 && word != curWord {
			flush()
		}
		curWord = word
		cur.WriteRune(r)
	}
	flush()
	return runs
}

func isDegenerate(s string) bool {
	if len(s) <= 1 {
		return true
	}
	return strings.Trim(s, " -_") == ""
}

var specialChars = regexp.MustCompile(`[^\p{L}\p{N}_ -]`)

// StripSpecialChars removes every character other than letters, digits,
// dash, underscore and space.
func StripSpecialChars(s string) string {
	return specialChars.ReplaceAllString(s, "")
}

// TransformCase applies a case mode to s. Title and sentence casing treat
// any non-letter as a word boundary.
func TransformCase(s string, mode config.TransformCase) string {
	switch mode {
	case config.CaseLower:
		return strings.ToLower(s)
	case config.CaseUpper:
		return strings.ToUpper(s)
	case config.CaseTitle:
		return titleCase(s)
	case config.CaseSentence:
		return sentenceCase(s)
	case config.CaseCamel:
		return strings.NewReplacer("-", "", "_", "", " ", "").Replace(titleCase(s))
	default:
		return s
	}
}

func titleCase(s string) string {
	var b strings.Builder
	prevLetter := false
	for _, r := range s {
		switch {
		case unicode.IsLetter(r) && !prevLetter:
			b.WriteRune(unicode.ToUpper(r))
		case unicode.IsLetter(r):
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteRune(r)
		}
		prevLetter = unicode.IsLetter(r)
	}
	return b.String()
}

func sentenceCase(s string) string {
	lower := strings.ToLower(s)
	for i, r := range lower {
		if unicode.IsLetter(r) {
			return lower[:i] + string(unicode.ToUpper(r)) + lower[i+len(string(r)):]
		}
		// Only the very first character is eligible.
		break
	}
	return lower
}

// ApplyMatchCase restores the exact casing of each configured phrase
// wherever it appears bounded by separators or string ends.
func ApplyMatchCase(s string, phrases []string) string {
	for _, phrase := range phrases {
		re := regexp.MustCompile(`(?i)(^|[-_ ])` + regexp.QuoteMeta(phrase) + `([-_ ]|$)`)
		s = re.ReplaceAllString(s, "${1}"+phrase+"${2}")
	}
	return s
}

var (
	sepRun      = regexp.MustCompile(`[-_ .]+`)
	sepRunKeep  = regexp.MustCompile(`([-_ .])[-_ .]+`)
	trimCutset  = "-_ "
	sepByTarget = map[config.Separator]string{
		config.SeparatorDash:       "-",
		config.SeparatorSpace:      " ",
		config.SeparatorUnderscore: "_",
		config.SeparatorNone:       "",
	}
)

// NormalizeSeparators collapses every run of dash, underscore, space and
// dot into the chosen separator. Under the ignore mode a run collapses to
// its first character instead of converting.
func NormalizeSeparators(s string, sep config.Separator) string {
	if target, ok := sepByTarget[sep]; ok {
		return strings.Trim(sepRun.ReplaceAllString(s, target), trimCutset)
	}
	return strings.Trim(sepRunKeep.ReplaceAllString(s, "${1}"), trimCutset)
}

// CleanSuffixes lowercases every suffix in the chain and rewrites .jpeg
// to .jpg.
func CleanSuffixes(suffixes []string) []string {
	out := make([]string, len(suffixes))
	for i, ext := range suffixes {
		ext = strings.ToLower(ext)
		if ext == ".jpeg" {
			ext = ".jpg"
		}
		out[i] = ext
	}
	return out
}
