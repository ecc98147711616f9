package latex

import (
	"fmt"
	"strings"

	"github.com/moderras/quizforge/internal/exam"
)

// RenderSection emits the section heading, and an instructions line only
// when the section carries instructions text.
func RenderSection(sec *exam.TemplateSection) (string, error) {
	if sec == nil {
		return "", exam.ErrNilSection
	}
	var b strings.Builder
	fmt.Fprintf(&b, "\\section*{%s}\n", Escape(sec.Title))
	if strings.TrimSpace(sec.Instructions) != "" {
		fmt.Fprintf(&b, "\\textbf{【说明】}%s\\\\\n", Escape(sec.Instructions))
	}
	return b.String(), nil
}
