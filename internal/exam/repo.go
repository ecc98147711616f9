package exam

import "context"

// TemplateStore resolves exam templates for generation. Implementations
// return ErrTemplateNotFound when the id does not resolve.
type TemplateStore interface {
	PutTemplate(ctx context.Context, t ExamTemplate) error
	GetTemplate(ctx context.Context, id string) (ExamTemplate, error)
	ListTemplates(ctx context.Context, limit, offset int) ([]ExamTemplate, error)
}

// BankStore resolves question banks for generation. Implementations return
// ErrBankNotFound when the id does not resolve.
type BankStore interface {
	PutBank(ctx context.Context, b QuestionBank) error
	GetBank(ctx context.Context, id string) (QuestionBank, error)
	ListBanks(ctx context.Context, limit, offset int) ([]QuestionBank, error)
}

// Store is the combined surface backed by one storage engine.
type Store interface {
	TemplateStore
	BankStore
}
