// Package latex is the document generation engine: it renders questions,
// sections and layout furniture into LaTeX fragments and composes them with
// a raw template into a complete source document. The package is pure: it
// performs no I/O, keeps no mutable state between calls, and is safe for
// concurrent use.
package latex

import "strings"

// escaper rewrites every LaTeX-reserved character in a single simultaneous
// pass, so replacement output is never rescanned and re-escaped.
var escaper = strings.NewReplacer(
	`\`, `\textbackslash{}`,
	`{`, `\{`,
	`}`, `\}`,
	`#`, `\#`,
	`$`, `\$`,
	`%`, `\%`,
	`&`, `\&`,
	`_`, `\_`,
	`^`, `\textasciicircum{}`,
	`~`, `\textasciitilde{}`,
	`<`, `$<$`,
	`>`, `$>$`,
)

// Escape returns text safe to embed in LaTeX source. Empty or
// whitespace-only input yields the empty string. Escape is total: it never
// fails, and escaping already-escaped text escapes the introduced
// backslashes again rather than pretending to be idempotent.
func Escape(s string) string {
	if strings.TrimSpace(s) == "" {
		return ""
	}
	return escaper.Replace(s)
}
