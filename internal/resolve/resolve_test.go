package resolve

import (
	"errors"
	"testing"

	"github.com/mwalker/jdfile/internal/project"
)

func testProject() *project.Project {
	return &project.Project{
		Name: "docs",
		Path: "/docs",
		Folders: []*project.Folder{
			{
				Path:   "/docs/10-19 Finance/11 Banking/11.01 Statements",
				Level:  project.LevelSubcategory,
				Number: "11.01",
				Name:   "Statements",
				Terms:  []string{"Statements", "bank"},
			},
			{
				Path:   "/docs/10-19 Finance/11 Banking/11.02 Transfers",
				Level:  project.LevelSubcategory,
				Number: "11.02",
				Name:   "Transfers",
				Terms:  []string{"Transfers", "bank"},
			},
			{
				Path:   "/docs/10-19 Finance/12 Taxes",
				Level:  project.LevelCategory,
				Number: "12",
				Name:   "Taxes",
				Terms:  []string{"Taxes", "irs"},
			},
		},
	}
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name      string
		stem      string
		userTerms []string
		synonyms  SynonymFunc
		want      []string
	}{
		{
			name: "separator split with numerics dropped",
			stem: "bank statement 2022 x",
			want: []string{"bank", "statement"},
		},
		{
			name: "camel case split",
			stem: "bankStatement",
			want: []string{"bank", "statement"},
		},
		{
			name:      "user terms join unfiltered",
			stem:      "scan001",
			userTerms: []string{"Taxes"},
			want:      []string{"scan001", "taxes"},
		},
		{
			name: "jd number survives splitting",
			stem: "11.01 bank statement",
			want: []string{"11.01", "bank", "statement"},
		},
		{
			name: "synonyms expand tokens",
			stem: "invoice",
			synonyms: func(w string) []string {
				if w == "invoice" {
					return []string{"bill", "Invoice"}
				}
				return nil
			},
			want: []string{"bill", "invoice"},
		},
		{
			name: "duplicates collapse case-insensitively",
			stem: "Bank bank BANK",
			want: []string{"bank"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.stem, tt.userTerms, tt.synonyms)
			if len(got) != len(tt.want) {
				t.Fatalf("Tokenize(%q) = %v, want %v", tt.stem, got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("token[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestResolveSelected(t *testing.T) {
	r := &Resolver{Project: testProject()}
	res, err := r.Resolve([]string{"irs", "letter"}, "")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if res.Outcome != Selected {
		t.Fatalf("outcome = %v, want Selected", res.Outcome)
	}
	if res.Folder.Number != "12" {
		t.Errorf("folder = %q, want 12", res.Folder.Number)
	}
}

func TestResolveNoMatch(t *testing.T) {
	r := &Resolver{Project: testProject()}
	res, err := r.Resolve([]string{"recipe", "pasta"}, "")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if res.Outcome != NoMatch {
		t.Errorf("outcome = %v, want NoMatch", res.Outcome)
	}
}

func TestResolveAmbiguous(t *testing.T) {
	r := &Resolver{Project: testProject()}
	res, err := r.Resolve([]string{"bank"}, "")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if res.Outcome != Ambiguous {
		t.Fatalf("outcome = %v, want Ambiguous", res.Outcome)
	}
	if len(res.Candidates) != 2 {
		t.Fatalf("candidates = %d, want 2", len(res.Candidates))
	}
	for _, c := range res.Candidates {
		if len(c.Matched) != 1 || c.Matched[0] != "bank" {
			t.Errorf("candidate %q matched %v, want [bank]", c.Folder.Number, c.Matched)
		}
	}
}

// Force turns an ambiguous match into selecting the first candidate.
func TestResolveForce(t *testing.T) {
	r := &Resolver{Project: testProject(), Force: true}
	res, err := r.Resolve([]string{"bank"}, "")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if res.Outcome != Selected || res.Folder.Number != "11.01" {
		t.Errorf("got %v / %v, want first candidate 11.01", res.Outcome, res.Folder)
	}
}

// A folder number among the tokens wins before any term comparison.
func TestResolveNumberToken(t *testing.T) {
	r := &Resolver{Project: testProject()}
	res, err := r.Resolve([]string{"11.02", "bank"}, "")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if res.Outcome != Selected || res.Folder.Number != "11.02" {
		t.Errorf("got %v, want folder 11.02", res.Folder)
	}
}

func TestResolveNumberOverride(t *testing.T) {
	r := &Resolver{Project: testProject()}
	res, err := r.Resolve([]string{"bank"}, "12")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if res.Outcome != Selected || res.Folder.Number != "12" {
		t.Errorf("got %v, want folder 12", res.Folder)
	}

	_, err = r.Resolve(nil, "99.99")
	if !errors.Is(err, ErrFolderNumberNotFound) {
		t.Fatalf("err = %v, want ErrFolderNumberNotFound", err)
	}
}

// Matching against folder terms is case-insensitive on both sides.
func TestResolveCaseInsensitiveTerms(t *testing.T) {
	r := &Resolver{Project: testProject()}
	res, err := r.Resolve(Tokenize("My STATEMENTS March", nil, nil), "")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if res.Outcome != Selected || res.Folder.Number != "11.01" {
		t.Errorf("got %v, want folder 11.01", res.Folder)
	}
}
