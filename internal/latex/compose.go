package latex

import (
	"fmt"
	"strings"

	"github.com/moderras/quizforge/internal/exam"
)

// DefaultQuestionsPerPage is the page capacity used when the caller does
// not configure one.
const DefaultQuestionsPerPage = 5

// pageBreak separates pages in the body stream; the layout stream uses a
// comment marker so the final document breaks each page exactly once.
const (
	pageBreak       = "\\newpage\n"
	layoutPageBreak = "%% --- 第%d页 ---\n"
)

// ComposeSinglePage renders one document from the template's sections.
// Question numbering restarts at 1 inside every section; a section whose
// referenced IDs match nothing still contributes its heading and
// instructions, just no body.
func ComposeSinglePage(t *exam.ExamTemplate, questions []exam.Question, raw string, cfg *exam.HeaderConfig) (exam.GeneratedDocument, error) {
	if t == nil {
		return exam.GeneratedDocument{}, exam.ErrNilTemplate
	}
	if cfg == nil {
		return exam.GeneratedDocument{}, exam.ErrNilConfig
	}

	var body, answers strings.Builder
	var rendered []exam.Question
	for s := range t.Sections {
		sec, err := RenderSection(&t.Sections[s])
		if err != nil {
			return exam.GeneratedDocument{}, err
		}
		body.WriteString(sec)

		wanted := make(map[string]bool, len(t.Sections[s].QuestionIDs))
		for _, id := range t.Sections[s].QuestionIDs {
			wanted[id] = true
		}
		idx := 0
		for i := range questions {
			if !wanted[questions[i].ID] {
				continue
			}
			idx++
			frag, err := RenderQuestion(&questions[i], idx)
			if err != nil {
				return exam.GeneratedDocument{}, err
			}
			body.WriteString(frag)
			body.WriteString("\n")
			entry, err := RenderAnswerEntry(&questions[i], idx)
			if err != nil {
				return exam.GeneratedDocument{}, err
			}
			answers.WriteString(entry)
			rendered = append(rendered, questions[i])
		}
	}

	layout, err := singlePageLayout(t, cfg, TotalPoints(rendered))
	if err != nil {
		return exam.GeneratedDocument{}, err
	}

	doc, err := Insert(raw, t, rendered, Blocks{
		Content:     body.String(),
		AnswerSheet: answers.String(),
		Layout:      layout,
	})
	if err != nil {
		return exam.GeneratedDocument{}, err
	}
	return exam.GeneratedDocument{
		Body:        doc,
		AnswerSheet: answers.String(),
		TotalPoints: TotalPoints(rendered),
		PageCount:   1,
		PageRanges:  [][2]int{{1, len(rendered)}},
	}, nil
}

func singlePageLayout(t *exam.ExamTemplate, cfg *exam.HeaderConfig, totalPoints float64) (string, error) {
	var b strings.Builder
	b.WriteString(SealLineDefs())
	if cfg.ShowSealLine {
		p, err := SealLinePlacement(1, 1, t.SealLine)
		if err != nil {
			return "", err
		}
		b.WriteString(p)
	}
	hf, err := RenderHeaderFooter(t, 1, 1)
	if err != nil {
		return "", err
	}
	b.WriteString(hf)
	hdr, err := RenderHeader(t, cfg, totalPoints)
	if err != nil {
		return "", err
	}
	b.WriteString(hdr)
	return b.String(), nil
}

// ComposeMultiPage renders one document by bucketing a flattened question
// list into pages of the given capacity. The question index runs globally
// across the whole document; total points are computed once from the full
// list. Totals: pages = ceil(n/capacity), minimum 1; the body stream gains
// exactly pages-1 page-break markers.
func ComposeMultiPage(t *exam.ExamTemplate, questions []exam.Question, raw string, capacity int, cfg *exam.HeaderConfig) (exam.GeneratedDocument, error) {
	if t == nil {
		return exam.GeneratedDocument{}, exam.ErrNilTemplate
	}
	if cfg == nil {
		return exam.GeneratedDocument{}, exam.ErrNilConfig
	}
	if capacity <= 0 {
		capacity = DefaultQuestionsPerPage
	}

	n := len(questions)
	pages := (n + capacity - 1) / capacity
	if pages < 1 {
		pages = 1
	}
	total := TotalPoints(questions)

	var body, answers, layout strings.Builder
	layout.WriteString(SealLineDefs())

	ranges := make([][2]int, 0, pages)
	for page := 1; page <= pages; page++ {
		if page > 1 {
			body.WriteString(pageBreak)
			fmt.Fprintf(&layout, layoutPageBreak, page)
		}
		if cfg.ShowSealLine {
			p, err := SealLinePlacement(page, pages, t.SealLine)
			if err != nil {
				return exam.GeneratedDocument{}, err
			}
			layout.WriteString(p)
		}
		hf, err := RenderHeaderFooter(t, page, pages)
		if err != nil {
			return exam.GeneratedDocument{}, err
		}
		layout.WriteString(hf)
		if page == 1 || !cfg.ShowOnFirstPageOnly {
			hdr, err := RenderHeader(t, cfg, total)
			if err != nil {
				return exam.GeneratedDocument{}, err
			}
			layout.WriteString(hdr)
		}

		lo := (page - 1) * capacity
		hi := page * capacity
		if hi > n {
			hi = n
		}
		ranges = append(ranges, [2]int{lo + 1, hi})
		for i := lo; i < hi; i++ {
			frag, err := RenderQuestion(&questions[i], i+1)
			if err != nil {
				return exam.GeneratedDocument{}, err
			}
			body.WriteString(frag)
			body.WriteString("\n")
			entry, err := RenderAnswerEntry(&questions[i], i+1)
			if err != nil {
				return exam.GeneratedDocument{}, err
			}
			answers.WriteString(entry)
		}
	}

	doc, err := Insert(raw, t, questions, Blocks{
		Content:     body.String(),
		AnswerSheet: answers.String(),
		Layout:      layout.String(),
	})
	if err != nil {
		return exam.GeneratedDocument{}, err
	}
	return exam.GeneratedDocument{
		Body:        doc,
		AnswerSheet: answers.String(),
		TotalPoints: total,
		PageCount:   pages,
		PageRanges:  ranges,
	}, nil
}
