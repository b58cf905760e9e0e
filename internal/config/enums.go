package config

import "fmt"

// Separator is the character filenames are normalized to. SeparatorIgnore
// leaves existing separators in place, collapsing runs to their first
// character.
type Separator int

const (
	SeparatorIgnore Separator = iota
	SeparatorDash
	SeparatorSpace
	SeparatorUnderscore
	SeparatorNone
)

// ParseSeparator parses the config spelling of a separator mode. The
// empty string means ignore.
func ParseSeparator(s string) (Separator, error) {
	switch s {
	case "", "ignore":
		return SeparatorIgnore, nil
	case "dash":
		return SeparatorDash, nil
	case "space":
		return SeparatorSpace, nil
	case "underscore":
		return SeparatorUnderscore, nil
	case "none":
		return SeparatorNone, nil
	default:
		return SeparatorIgnore, fmt.Errorf("invalid separator %q (ignore, dash, space, underscore, none)", s)
	}
}

// Char returns the literal separator character. Ignore mode has no
// target character for normalization but still needs one when a
// formatted date is joined to the stem, so it yields an underscore.
func (s Separator) Char() string {
	switch s {
	case SeparatorDash:
		return "-"
	case SeparatorSpace:
		return " "
	case SeparatorNone:
		return ""
	default:
		return "_"
	}
}

func (s Separator) String() string {
	switch s {
	case SeparatorDash:
		return "dash"
	case SeparatorSpace:
		return "space"
	case SeparatorUnderscore:
		return "underscore"
	case SeparatorNone:
		return "none"
	default:
		return "ignore"
	}
}

// TransformCase is the case transformation applied to cleaned stems.
type TransformCase int

const (
	CaseIgnore TransformCase = iota
	CaseLower
	CaseUpper
	CaseTitle
	CaseSentence
	CaseCamel
)

// ParseTransformCase parses the config spelling of a case mode. The
// empty string means ignore.
func ParseTransformCase(s string) (TransformCase, error) {
	switch s {
	case "", "ignore":
		return CaseIgnore, nil
	case "lower":
		return CaseLower, nil
	case "upper":
		return CaseUpper, nil
	case "title":
		return CaseTitle, nil
	case "sentence":
		return CaseSentence, nil
	case "camelcase":
		return CaseCamel, nil
	default:
		return CaseIgnore, fmt.Errorf("invalid transform case %q (ignore, lower, upper, title, sentence, camelcase)", s)
	}
}

func (c TransformCase) String() string {
	switch c {
	case CaseLower:
		return "lower"
	case CaseUpper:
		return "upper"
	case CaseTitle:
		return "title"
	case CaseSentence:
		return "sentence"
	case CaseCamel:
		return "camelcase"
	default:
		return "ignore"
	}
}

// InsertLocation places the reformatted date relative to the stem.
type InsertLocation int

const (
	InsertBefore InsertLocation = iota
	InsertAfter
)

// ParseInsertLocation parses the config spelling of an insert location.
// The empty string means before.
func ParseInsertLocation(s string) (InsertLocation, error) {
	switch s {
	case "", "before":
		return InsertBefore, nil
	case "after":
		return InsertAfter, nil
	default:
		return InsertBefore, fmt.Errorf("invalid insert location %q (before, after)", s)
	}
}

func (l InsertLocation) String() string {
	if l == InsertAfter {
		return "after"
	}
	return "before"
}

// ProjectType selects the folder indexing scheme.
type ProjectType int

const (
	ProjectJD ProjectType = iota
	ProjectFlat
)

// ParseProjectType parses the config spelling of a project type. The
// empty string means jd.
func ParseProjectType(s string) (ProjectType, error) {
	switch s {
	case "", "jd":
		return ProjectJD, nil
	case "flat":
		return ProjectFlat, nil
	default:
		return ProjectJD, fmt.Errorf("invalid project type %q (jd, flat)", s)
	}
}

func (p ProjectType) String() string {
	if p == ProjectFlat {
		return "flat"
	}
	return "jd"
}
