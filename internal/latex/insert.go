package latex

import (
	"strings"

	"github.com/moderras/quizforge/internal/exam"
)

// Blocks are the pre-rendered fragments the inserter places verbatim: they
// were escaped piecewise at generation time and must not be escaped again.
type Blocks struct {
	Content     string
	AnswerSheet string
	Layout      string
}

// TotalPoints sums the point values of the supplied questions.
func TotalPoints(qs []exam.Question) float64 {
	var sum float64
	for i := range qs {
		sum += qs[i].Points
	}
	return sum
}

// Insert substitutes the named placeholder tokens in a raw template text.
// Replacement is a single simultaneous pass over the raw text; inserted
// fragments are never rescanned, and a token missing from the raw text is
// simply left out of the result. A token present in the raw text but listed
// here stays in place only if it is misspelled — unmatched tokens are
// deliberately left untouched rather than treated as an error.
func Insert(raw string, t *exam.ExamTemplate, questions []exam.Question, blocks Blocks) (string, error) {
	if t == nil {
		return "", exam.ErrNilTemplate
	}
	return strings.NewReplacer(
		"{ExamTitle}", Escape(t.Name),
		"{Subject}", Escape(t.Description),
		"{ExamTime}", DefaultExamTime,
		"{TotalPoints}", FormatPoints(TotalPoints(questions)),
		"{HeaderContent}", Escape(t.HeaderText),
		"{FooterContent}", Escape(t.FooterText),
		"{Content}", blocks.Content,
		"{AnswerSheet}", blocks.AnswerSheet,
		"{LayoutElements}", blocks.Layout,
	).Replace(raw), nil
}
