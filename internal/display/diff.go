package display

import (
	"strings"

	"github.com/fatih/color"
)

var (
	diffDel = color.New(color.FgRed, color.CrossedOut).SprintFunc()
	diffAdd = color.New(color.FgGreen).SprintFunc()
)

// Diff renders a character-level comparison of two names: characters
// removed from old are struck through in red, characters added to new
// are green, common characters pass through unstyled.
func Diff(old, new string) (string, string) {
	a := []rune(old)
	b := []rune(new)
	common := lcs(a, b)

	return markup(a, common, diffDel), markup(b, common, diffAdd)
}

// markup styles every rune of s not consumed by the common subsequence.
func markup(s, common []rune, style func(...interface{}) string) string {
	var out strings.Builder
	var pending strings.Builder
	flush := func() {
		if pending.Len() > 0 {
			out.WriteString(style(pending.String()))
			pending.Reset()
		}
	}

	ci := 0
	for _, r := range s {
		if ci < len(common) && r == common[ci] {
			flush()
			out.WriteRune(r)
			ci++
			continue
		}
		pending.WriteRune(r)
	}
	flush()
	return out.String()
}

// lcs computes the longest common subsequence of two rune slices with
// the standard dynamic program. Filenames are short; the quadratic
// table is fine.
func lcs(a, b []rune) []rune {
	n, m := len(a), len(b)
	table := make([][]int, n+1)
	for i := range table {
		table[i] = make([]int, m+1)
	}
	for i := n - 1; i >= 0; i-- {
		for j := m - 1; j >= 0; j-- {
			if a[i] == b[j] {
				table[i][j] = table[i+1][j+1] + 1
			} else if table[i+1][j] >= table[i][j+1] {
				table[i][j] = table[i+1][j]
			} else {
				table[i][j] = table[i][j+1]
			}
		}
	}

	var seq []rune
	for i, j := 0, 0; i < n && j < m; {
		switch {
		case a[i] == b[j]:
			seq = append(seq, a[i])
			i++
			j++
		case table[i+1][j] >= table[i][j+1]:
			i++
		default:
			j++
		}
	}
	return seq
}
