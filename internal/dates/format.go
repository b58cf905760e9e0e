package dates

import (
	"fmt"
	"strings"
	"time"
)

// strftime-style codes supported by Format. Anything else after a '%' is
// an invalid template.
var formatCodes = map[byte]func(t time.Time) string{
	'Y': func(t time.Time) string { return fmt.Sprintf("%04d", t.Year()) },
	'y': func(t time.Time) string { return fmt.Sprintf("%02d", t.Year()%100) },
	'm': func(t time.Time) string { return fmt.Sprintf("%02d", int(t.Month())) },
	'd': func(t time.Time) string { return fmt.Sprintf("%02d", t.Day()) },
	'j': func(t time.Time) string { return fmt.Sprintf("%03d", t.YearDay()) },
	'B': func(t time.Time) string { return t.Month().String() },
	'b': func(t time.Time) string { return t.Month().String()[:3] },
	'A': func(t time.Time) string { return t.Weekday().String() },
	'a': func(t time.Time) string { return t.Weekday().String()[:3] },
	'%': func(time.Time) string { return "%" },
}

// ValidateTemplate reports whether tmpl only uses supported format codes.
// Callers validate once at configuration time so the per-file path never
// sees a bad template.
func ValidateTemplate(tmpl string) error {
	for i := 0; i < len(tmpl); i++ {
		if tmpl[i] != '%' {
			continue
		}
		if i+1 >= len(tmpl) {
			return fmt.Errorf("date format %q: dangling %% at end of template", tmpl)
		}
		i++
		if _, ok := formatCodes[tmpl[i]]; !ok {
			return fmt.Errorf("date format %q: unsupported code %%%c", tmpl, tmpl[i])
		}
	}
	return nil
}

// Format renders t using a strftime-style template. The template must
// have passed ValidateTemplate; unknown codes are an error here too so a
// bad template can never silently leak into a filename.
func Format(t time.Time, tmpl string) (string, error) {
	if err := ValidateTemplate(tmpl); err != nil {
		return "", err
	}
	var b strings.Builder
	for i := 0; i < len(tmpl); i++ {
		if tmpl[i] != '%' {
			b.WriteByte(tmpl[i])
			continue
		}
		i++
		b.WriteString(formatCodes[tmpl[i]](t))
	}
	return b.String(), nil
}
