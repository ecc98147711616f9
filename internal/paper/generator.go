// Package paper orchestrates exam paper generation: it resolves a template
// and a question bank from their stores, runs the question processor, and
// hands the result to the LaTeX compositor.
package paper

import (
	"context"

	"github.com/moderras/quizforge/internal/exam"
	"github.com/moderras/quizforge/internal/latex"
)

// RawSource maps a template style to raw LaTeX text.
type RawSource interface {
	Raw(style exam.TemplateStyle) (string, error)
}

type Generator struct {
	templates exam.TemplateStore
	banks     exam.BankStore
	processor exam.Processor
	source    RawSource
}

func NewGenerator(templates exam.TemplateStore, banks exam.BankStore, processor exam.Processor, source RawSource) *Generator {
	return &Generator{templates: templates, banks: banks, processor: processor, source: source}
}

// Generate produces one exam paper. Generation is all-or-nothing: any
// resolve, validation or rendering failure aborts the call with no partial
// output.
func (g *Generator) Generate(ctx context.Context, templateID, bankID string, opts exam.GenerateOptions) (exam.GenerateResult, error) {
	t, err := g.templates.GetTemplate(ctx, templateID)
	if err != nil {
		return exam.GenerateResult{}, err
	}
	bank, err := g.banks.GetBank(ctx, bankID)
	if err != nil {
		return exam.GenerateResult{}, err
	}
	if err := g.processor.Validate(bank.Questions); err != nil {
		return exam.GenerateResult{}, err
	}
	raw, err := g.source.Raw(t.Style)
	if err != nil {
		return exam.GenerateResult{}, err
	}

	cfg := opts.Header
	if cfg == nil {
		def := exam.DefaultHeaderConfig()
		cfg = &def
	}

	var doc exam.GeneratedDocument
	if opts.Paginate {
		qs := exam.SectionOrder(&t, bank.Questions)
		if len(qs) == 0 {
			qs = bank.Questions
		}
		if opts.Randomize {
			qs = g.processor.Randomize(qs, opts.QuestionCount)
		}
		doc, err = latex.ComposeMultiPage(&t, qs, raw, opts.QuestionsPerPage, cfg)
		if err != nil {
			return exam.GenerateResult{}, err
		}
		return exam.GenerateResult{Document: doc, QuestionCount: len(qs)}, nil
	}

	qs := bank.Questions
	if opts.Randomize {
		qs = g.processor.Randomize(qs, opts.QuestionCount)
	}
	doc, err = latex.ComposeSinglePage(&t, qs, raw, cfg)
	if err != nil {
		return exam.GenerateResult{}, err
	}
	count := 0
	for _, r := range doc.PageRanges {
		if r[1] >= r[0] {
			count += r[1] - r[0] + 1
		}
	}
	return exam.GenerateResult{Document: doc, QuestionCount: count}, nil
}
