package normalize

import (
	"testing"

	"github.com/mwalker/jdfile/internal/config"
)

func TestClean(t *testing.T) {
	tests := []struct {
		name string
		stem string
		opts Options
		want string
	}{
		{
			name: "title case with underscores",
			stem: "month-DD-YYYY file ",
			opts: Options{
				StripStopwords: true,
				TransformCase:  config.CaseTitle,
				Separator:      config.SeparatorUnderscore,
			},
			want: "Month_Dd_Yyyy_File",
		},
		{
			name: "camel split with lower case and dashes",
			stem: "myCoolFile",
			opts: Options{
				SplitWords:    true,
				TransformCase: config.CaseLower,
				Separator:     config.SeparatorDash,
			},
			want: "my-cool-file",
		},
		{
			name: "stopwords removed",
			stem: "a report for the team",
			opts: Options{
				StripStopwords: true,
				Separator:      config.SeparatorSpace,
			},
			want: "report team",
		},
		{
			name: "extra project stopwords",
			stem: "quarterly report draft",
			opts: Options{
				StripStopwords: true,
				Stopwords:      []string{"draft"},
				Separator:      config.SeparatorSpace,
			},
			want: "quarterly report",
		},
		{
			name: "stopword-only stem reverts",
			stem: "the",
			opts: Options{StripStopwords: true},
			want: "the",
		},
		{
			name: "special characters stripped",
			stem: "in&voice #42 (final)",
			opts: Options{Separator: config.SeparatorIgnore},
			want: "invoice 42 final",
		},
		{
			name: "all-special stem falls back to original",
			stem: "!!!",
			opts: Options{},
			want: "!!!",
		},
		{
			name: "ignore separator collapses runs",
			stem: "foo--bar__baz  qux",
			opts: Options{Separator: config.SeparatorIgnore},
			want: "foo-bar_baz qux",
		},
		{
			name: "mixed separator run keeps first character",
			stem: "foo-_ bar",
			opts: Options{Separator: config.SeparatorIgnore},
			want: "foo-bar",
		},
		{
			name: "separator none joins words",
			stem: "foo-bar baz",
			opts: Options{Separator: config.SeparatorNone},
			want: "foobarbaz",
		},
		{
			name: "camelcase mode",
			stem: "some file-name",
			opts: Options{TransformCase: config.CaseCamel},
			want: "SomeFileName",
		},
		{
			name: "sentence mode",
			stem: "SOME FILE",
			opts: Options{TransformCase: config.CaseSentence, Separator: config.SeparatorSpace},
			want: "Some file",
		},
		{
			name: "match case phrase survives title casing",
			stem: "report for macOS team",
			opts: Options{
				MatchCase:     []string{"macOS"},
				TransformCase: config.CaseTitle,
				Separator:     config.SeparatorSpace,
			},
			want: "Report For macOS Team",
		},
		{
			name: "dotfile keeps leading dot",
			stem: ".bashrc",
			opts: Options{TransformCase: config.CaseLower},
			want: ".bashrc",
		},
		{
			name: "trailing dots trimmed",
			stem: "file...",
			opts: Options{},
			want: "file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Clean(tt.stem, tt.opts)
			if got != tt.want {
				t.Errorf("Clean(%q) = %q, want %q", tt.stem, got, tt.want)
			}
		})
	}
}

// Cleaning is idempotent: a cleaned stem passes through unchanged.
func TestCleanIdempotent(t *testing.T) {
	optSets := []Options{
		{StripStopwords: true, TransformCase: config.CaseTitle, Separator: config.SeparatorUnderscore},
		{SplitWords: true, TransformCase: config.CaseLower, Separator: config.SeparatorDash},
		{Separator: config.SeparatorIgnore},
		// Camel joining is only stable when splitting re-derives the
		// word boundaries on the next pass.
		{SplitWords: true, TransformCase: config.CaseCamel, Separator: config.SeparatorNone},
	}
	stems := []string{
		"month-DD-YYYY file",
		"myCoolFile",
		"a report for the team",
		"foo--bar__baz",
		".bashrc",
		"!!!",
	}
	for _, opts := range optSets {
		for _, stem := range stems {
			once := Clean(stem, opts)
			twice := Clean(once, opts)
			if once != twice {
				t.Errorf("Clean not idempotent for %q with %+v: %q != %q", stem, opts, once, twice)
			}
		}
	}
}

func TestSplitCamelWords(t *testing.T) {
	tests := []struct {
		in        string
		matchCase []string
		want      string
	}{
		{"myCoolFile", nil, "my Cool File"},
		{"WithInitialCap", nil, "With Initial Cap"},
		{"ALLCAPS", nil, "ALLCAPS"},
		{"no camel here", nil, "no camel here"},
		{"EatMacOSApple", nil, "Eat MacOS Apple"},
		{"useMacOS daily", []string{"MacOS"}, "use MacOS daily"},
	}
	for _, tt := range tests {
		if got := SplitCamelWords(tt.in, tt.matchCase); got != tt.want {
			t.Errorf("SplitCamelWords(%q, %v) = %q, want %q", tt.in, tt.matchCase, got, tt.want)
		}
	}
}

func TestStripStopwordsRevertsOnDegenerate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"the and of", "the and of"},   // everything is a stopword
		{"a-b", "a-b"},                 // single letters only
		{"the report", "report"},       // normal strip
		// Leftover double separator is collapsed later by
		// NormalizeSeparators, not here.
		{"report_the_plan", "report__plan"},
	}
	for _, tt := range tests {
		if got := StripStopwords(tt.in, nil); got != tt.want {
			t.Errorf("StripStopwords(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCleanSuffixes(t *testing.T) {
	got := CleanSuffixes([]string{".TAR", ".JPEG", ".Txt"})
	want := []string{".tar", ".jpg", ".txt"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("CleanSuffixes[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
