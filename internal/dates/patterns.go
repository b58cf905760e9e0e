package dates

import (
	"regexp"
	"time"
)

// Regex fragments shared by the pattern table. Years are constrained to
// 2000-2029, matching the original tool's window; separators between
// date components are optional.
const (
	reYear     = `20[0-2][0-9]`
	reMonth    = `0[1-9]|1[012]`
	reDayTwo   = `0[1-9]|[12][0-9]|3[01]`  // two-digit day
	reDayLoose = `0?[1-9]|[12][0-9]|3[01]` // tolerates a missing leading zero
	reSep      = `[-./_, :]*?`
	reOrdinal  = `(?:nd|rd|th|st)?`
	reMonths   = `january|jan?|february|feb?|march|mar?|april|apr?|may|june?|july?|august|aug?|september|sep?t?|october|oct?|november|nov?|december|dec?`
)

type pattern struct {
	name  string
	re    *regexp.Regexp
	build func(g map[string]string, now time.Time) (time.Time, bool)
}

func ymd(g map[string]string, _ time.Time) (time.Time, bool) {
	return makeDate(atoi(g["year"]), atoi(g["month"]), atoi(g["day"]))
}

func namedMonthYMD(g map[string]string, _ time.Time) (time.Time, bool) {
	month := monthFromName(g["month"])
	if month == 0 {
		return time.Time{}, false
	}
	return makeDate(atoi(g["year"]), month, atoi(g["day"]))
}

// patternTable is tried strictly in order; the first entry that matches
// lexically and survives calendar construction wins. The order is the
// precedence contract for ambiguous inputs, so keep it stable.
var patternTable = []pattern{
	{
		name: "yyyy-mm-dd",
		re: regexp.MustCompile(
			`(?P<found>(?P<year>` + reYear + `)` + reSep + `(?P<month>` + reMonth + `)` + reSep + `(?P<day>` + reDayTwo + `))`),
		build: ymd,
	},
	{
		name: "yyyy-dd-mm",
		re: regexp.MustCompile(
			`(?P<found>(?P<year>` + reYear + `)` + reSep + `(?P<day>` + reDayTwo + `)` + reSep + `(?P<month>` + reMonth + `))`),
		build: ymd,
	},
	{
		name: "month-dd-yyyy",
		re: regexp.MustCompile(
			`(?i)(?P<found>(?P<month>` + reMonths + `)` + reSep + `(?P<day>` + reDayLoose + `)` + reOrdinal + reSep + `(?P<year>` + reYear + `))(?:[^0-9].*|$)`),
		build: namedMonthYMD,
	},
	{
		name: "dd-month-yyyy",
		re: regexp.MustCompile(
			`(?i)(?:.*[^0-9]|^)(?P<found>(?P<day>` + reDayLoose + `)` + reOrdinal + reSep + `(?P<month>` + reMonths + `)` + reSep + `(?P<year>` + reYear + `))(?:[^0-9].*|$)`),
		build: namedMonthYMD,
	},
	{
		name: "month-dd",
		re: regexp.MustCompile(
			`(?i)(?P<found>(?P<month>` + reMonths + `)` + reSep + `(?P<day>` + reDayLoose + `)` + reOrdinal + `)(?:[^0-9].*|$)`),
		build: func(g map[string]string, now time.Time) (time.Time, bool) {
			month := monthFromName(g["month"])
			if month == 0 {
				return time.Time{}, false
			}
			return makeDate(now.Year(), month, atoi(g["day"]))
		},
	},
	{
		name: "month-yyyy",
		re: regexp.MustCompile(
			`(?i)(?P<found>(?P<month>` + reMonths + `)` + reSep + `(?P<year>` + reYear + `))(?:[^0-9].*|$)`),
		build: func(g map[string]string, _ time.Time) (time.Time, bool) {
			month := monthFromName(g["month"])
			if month == 0 {
				return time.Time{}, false
			}
			return makeDate(atoi(g["year"]), month, 1)
		},
	},
	{
		name: "yyyy-month",
		re: regexp.MustCompile(
			`(?i)(?P<found>(?P<year>` + reYear + `)` + reSep + `(?P<month>` + reMonths + `))(?:[^0-9].*|$)`),
		build: func(g map[string]string, _ time.Time) (time.Time, bool) {
			month := monthFromName(g["month"])
			if month == 0 {
				return time.Time{}, false
			}
			return makeDate(atoi(g["year"]), month, 1)
		},
	},
	{
		name: "mmddyyyy",
		re: regexp.MustCompile(
			`(?P<found>(?P<month>` + reMonth + `)` + reSep + `(?P<day>` + reDayTwo + `)` + reSep + `(?P<year>` + reYear + `))(?:[^0-9].*|$)`),
		build: ymd,
	},
	{
		name: "ddmmyyyy",
		re: regexp.MustCompile(
			`(?P<found>(?P<day>` + reDayTwo + `)` + reSep + `(?P<month>` + reMonth + `)` + reSep + `(?P<year>` + reYear + `))(?:[^0-9].*|$)`),
		build: ymd,
	},
	{
		name: "mm-dd",
		re: regexp.MustCompile(
			`(?:^|[^0-9])(?P<found>(?P<month>` + reMonth + `)` + reSep + `(?P<day>` + reDayTwo + `))(?:[^0-9]|$)`),
		build: func(g map[string]string, now time.Time) (time.Time, bool) {
			return makeDate(now.Year(), atoi(g["month"]), atoi(g["day"]))
		},
	},
	{
		name: "dd-mm",
		re: regexp.MustCompile(
			`(?:^|[^0-9])(?P<found>(?P<day>` + reDayTwo + `)` + reSep + `(?P<month>` + reMonth + `))(?:[^0-9]|$)`),
		build: func(g map[string]string, now time.Time) (time.Time, bool) {
			return makeDate(now.Year(), atoi(g["month"]), atoi(g["day"]))
		},
	},
	{
		name: "today",
		re:   regexp.MustCompile(`(?i)(?:^|[^0-9])(?P<found>today'?s?)(?:[^0-9]|$)`),
		build: func(_ map[string]string, now time.Time) (time.Time, bool) {
			return midnight(now), true
		},
	},
	{
		name: "yesterday",
		re:   regexp.MustCompile(`(?i)(?:^|[^0-9])(?P<found>yesterday'?s?)(?:[^0-9]|$)`),
		build: func(_ map[string]string, now time.Time) (time.Time, bool) {
			return midnight(now).AddDate(0, 0, -1), true
		},
	},
	{
		name: "tomorrow",
		re:   regexp.MustCompile(`(?i)(?:^|[^0-9])(?P<found>tomorrow'?s?)(?:[^0-9]|$)`),
		build: func(_ map[string]string, now time.Time) (time.Time, bool) {
			return midnight(now).AddDate(0, 0, 1), true
		},
	},
	{
		name: "last-week",
		re:   regexp.MustCompile(`(?i)(?:^|[^0-9])(?P<found>last[- _.]?week'?s?)(?:[^0-9]|$)`),
		build: func(_ map[string]string, now time.Time) (time.Time, bool) {
			return midnight(now).AddDate(0, 0, -7), true
		},
	},
	{
		name: "last-month",
		re:   regexp.MustCompile(`(?i)(?:^|[^0-9])(?P<found>last[- _.]?month'?s?)(?:[^0-9]|$)`),
		build: func(_ map[string]string, now time.Time) (time.Time, bool) {
			// First day of the previous month, crossing year boundaries.
			first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
			return first.AddDate(0, -1, 0), true
		},
	},
}

// subexpMap extracts named groups from a submatch slice.
func subexpMap(re *regexp.Regexp, m []string) map[string]string {
	g := make(map[string]string)
	for i, name := range re.SubexpNames() {
		if name != "" && i < len(m) {
			g[name] = m[i]
		}
	}
	return g
}
