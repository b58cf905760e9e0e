// Package dates recognizes human date spellings inside filename text and
// reformats them to a canonical form.
//
// Recognition walks an ordered table of patterns (see patterns.go) and
// returns the first lexical match that also survives calendar
// construction. Structurally ambiguous inputs (e.g. "03-04") are resolved
// purely by table order; this is deliberate policy, not locale inference.
package dates

import (
	"strconv"
	"strings"
	"time"
)

// Match is a date recognized in a piece of text.
type Match struct {
	// Date is the reconstructed calendar date (midnight UTC).
	Date time.Time

	// Text is the exact substring that matched. Empty when the date came
	// from a reference-date fallback rather than the text itself; nothing
	// may be removed from the input in that case.
	Text string
}

// Find scans text for the first date spelling in the pattern table.
// now supplies the current date for relative keywords ("today",
// "last week") and for patterns with an implied year.
func Find(text string, now time.Time) (Match, bool) {
	for _, p := range patternTable {
		m := p.re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		groups := subexpMap(p.re, m)
		d, ok := p.build(groups, now)
		if !ok {
			// Lexically plausible but not a real calendar date
			// (e.g. 2022-02-30). The whole match is discarded and the
			// next pattern gets a chance.
			continue
		}
		return Match{Date: d, Text: groups["found"]}, true
	}
	return Match{}, false
}

// FindOrFallback is Find, falling back to the reference date (typically
// the file's creation time) when the text contains no date. The fallback
// match carries no Text: it can be inserted but never removed.
func FindOrFallback(text string, now, ref time.Time) (Match, bool) {
	if m, ok := Find(text, now); ok {
		return m, true
	}
	if ref.IsZero() {
		return Match{}, false
	}
	return Match{Date: midnight(ref)}, true
}

// monthNames is ordered January..December so that prefix lookup follows
// calendar order: "ma" resolves to March, "ju" to June.
var monthNames = []string{
	"january", "february", "march", "april", "may", "june",
	"july", "august", "september", "october", "november", "december",
}

// monthFromName resolves a month name or any unambiguous-enough prefix of
// one ("jan", "ja") to its number. Returns 0 when nothing matches.
func monthFromName(name string) int {
	name = strings.ToLower(name)
	for i, full := range monthNames {
		if strings.HasPrefix(full, name) {
			return i + 1
		}
	}
	return 0
}

// makeDate builds a calendar date, rejecting combinations that time.Date
// would silently normalize (day 30 in February and the like).
func makeDate(year, month, day int) (time.Time, bool) {
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != time.Month(month) || t.Day() != day {
		return time.Time{}, false
	}
	return t, true
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
