// Package report renders human-facing diagnostics: leveled messages
// with source snippets, and line diffs for round-trip checks.
//
// Messages print in the compiler style, a severity label, a summary,
// then indented notes and snippet arrows:
//
//	error: malformed assignment
//	       note: the line was kept verbatim
//	       --> core/zlib/spec:4: =broken
//
// Styling uses ANSI colors only when the writer is a terminal, and
// follows the color package's global switches (NO_COLOR) otherwise.
//
// # Usage
//
//	msgs := report.FromParse(path, src, diags)
//	for i := range msgs {
//		report.Render(os.Stderr, &msgs[i])
//	}
//	if d := report.Diff("spec", string(src), string(out)); d != "" {
//		fmt.Print(d)
//	}
//
// # Related Packages
//
//   - github.com/aosc-dev/go-apml/parse - the diagnostics FromParse converts
package report
