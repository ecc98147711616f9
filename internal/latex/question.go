package latex

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/moderras/quizforge/internal/exam"
)

// Blank widths and answer spacing. Body blanks are narrower than
// answer-sheet blanks so the sheet leaves room to actually write.
const (
	fillBlank         = `\underline{\hspace{3cm}}`
	fillAnswerBlank   = `\underline{\hspace{6cm}}`
	choiceAnswerBlank = `\underline{\hspace{2cm}}`
	essaySpace        = `\vspace{6cm}`
	essayAnswerSpace  = `\vspace{4cm}`
)

// blankRun matches the first blank-token sequence inside fill-in content.
var blankRun = regexp.MustCompile(`_{2,}`)

// FormatPoints renders a point value with no forced decimal places and no
// locale formatting: 5 -> "5", 2.5 -> "2.5".
func FormatPoints(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64)
}

// questionLabel emits the bold index label, point suffix and the optional
// difficulty/category tags shared by every question rendering.
func questionLabel(q *exam.Question, idx int) string {
	var b strings.Builder
	fmt.Fprintf(&b, `\textbf{第%d题}（%s分）`, idx, FormatPoints(q.Points))
	if q.Difficulty != "" {
		fmt.Fprintf(&b, `【难度：%s】`, Escape(q.Difficulty))
	}
	if q.Category != "" {
		fmt.Fprintf(&b, `【类型：%s】`, Escape(q.Category))
	}
	return b.String()
}

// RenderChoice renders a multiple-choice question with an enumerated option
// list in original option order.
func RenderChoice(q *exam.Question, idx int) (string, error) {
	if q == nil {
		return "", exam.ErrNilQuestion
	}
	var b strings.Builder
	b.WriteString(questionLabel(q, idx))
	b.WriteString(" ")
	b.WriteString(Escape(q.Content))
	b.WriteString("\n\\begin{enumerate}\n")
	for _, opt := range q.Options {
		fmt.Fprintf(&b, "  \\item %s. %s\n", Escape(opt.Key), Escape(opt.Text))
	}
	b.WriteString("\\end{enumerate}\n")
	return b.String(), nil
}

// RenderFill renders a fill-in-blank question. The first blank-token run in
// the content becomes an underscored blank; prefix and suffix are escaped
// separately so the blank command survives escaping. Content without a
// blank token gets the blank appended.
func RenderFill(q *exam.Question, idx int) (string, error) {
	if q == nil {
		return "", exam.ErrNilQuestion
	}
	var b strings.Builder
	b.WriteString(questionLabel(q, idx))
	b.WriteString(" ")
	if loc := blankRun.FindStringIndex(q.Content); loc != nil {
		b.WriteString(Escape(q.Content[:loc[0]]))
		b.WriteString(fillBlank)
		b.WriteString(Escape(q.Content[loc[1]:]))
	} else {
		b.WriteString(Escape(q.Content))
		b.WriteString(fillBlank)
	}
	b.WriteString("\n")
	return b.String(), nil
}

// RenderEssay renders an essay question followed by fixed vertical space
// for the written answer.
func RenderEssay(q *exam.Question, idx int) (string, error) {
	if q == nil {
		return "", exam.ErrNilQuestion
	}
	var b strings.Builder
	b.WriteString(questionLabel(q, idx))
	b.WriteString(" ")
	b.WriteString(Escape(q.Content))
	b.WriteString("\n\n")
	b.WriteString(essaySpace)
	b.WriteString("\n")
	return b.String(), nil
}

// RenderTrueFalse renders a true/false question with the fixed two-item
// 正确/错误 list.
func RenderTrueFalse(q *exam.Question, idx int) (string, error) {
	if q == nil {
		return "", exam.ErrNilQuestion
	}
	var b strings.Builder
	b.WriteString(questionLabel(q, idx))
	b.WriteString(" ")
	b.WriteString(Escape(q.Content))
	b.WriteString("\n\\begin{enumerate}\n  \\item 正确\n  \\item 错误\n\\end{enumerate}\n")
	return b.String(), nil
}

// RenderQuestion dispatches on the question type. Unrecognized types render
// as an enumerated option list when options are present, otherwise as an
// essay-style blank, so forward-compatible types degrade visibly instead of
// silently misrendering.
func RenderQuestion(q *exam.Question, idx int) (string, error) {
	if q == nil {
		return "", exam.ErrNilQuestion
	}
	switch q.Type {
	case exam.TypeChoice:
		return RenderChoice(q, idx)
	case exam.TypeFill:
		return RenderFill(q, idx)
	case exam.TypeEssay:
		return RenderEssay(q, idx)
	case exam.TypeTrueFalse:
		return RenderTrueFalse(q, idx)
	default:
		if len(q.Options) > 0 {
			return RenderChoice(q, idx)
		}
		return RenderEssay(q, idx)
	}
}

// RenderAnswerEntry renders the answer-sheet counterpart of a question:
// label and points only, plus a blank sized by question type.
func RenderAnswerEntry(q *exam.Question, idx int) (string, error) {
	if q == nil {
		return "", exam.ErrNilQuestion
	}
	var b strings.Builder
	fmt.Fprintf(&b, `\textbf{第%d题}（%s分）`, idx, FormatPoints(q.Points))
	switch q.Type {
	case exam.TypeFill:
		b.WriteString(fillAnswerBlank)
	case exam.TypeEssay:
		b.WriteString("\n\n")
		b.WriteString(essayAnswerSpace)
	default:
		// choice, true/false and unknown types answer with a key
		b.WriteString(choiceAnswerBlank)
	}
	b.WriteString("\n\n")
	return b.String(), nil
}
