package report

import (
	"strings"

	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Diff renders a line diff between a and b under the given name, in
// the unified style with -/+ prefixes.  Identical inputs give "".
// Deletions and insertions are colored when the color package has
// colors enabled.
func Diff(name, a, b string) string {
	if a == b {
		return ""
	}
	dmp := diffpatch.New()
	ca, cb, lines := dmp.DiffLinesToChars(a, b)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(ca, cb, false), lines)

	bold := color.New(color.Bold)
	del := color.New(color.FgRed)
	ins := color.New(color.FgGreen)

	var sb strings.Builder
	sb.WriteString(bold.Sprintf("--- a/%s", name))
	sb.WriteByte('\n')
	sb.WriteString(bold.Sprintf("+++ b/%s", name))
	sb.WriteByte('\n')
	for _, d := range diffs {
		prefix, paint := " ", (*color.Color)(nil)
		switch d.Type {
		case diffpatch.DiffDelete:
			prefix, paint = "-", del
		case diffpatch.DiffInsert:
			prefix, paint = "+", ins
		}
		text := strings.TrimSuffix(d.Text, "\n")
		for _, ln := range strings.Split(text, "\n") {
			if paint != nil {
				sb.WriteString(paint.Sprint(prefix + ln))
			} else {
				sb.WriteString(prefix + ln)
			}
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
