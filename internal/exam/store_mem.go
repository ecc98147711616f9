package exam

import (
	"context"
	"sort"
	"sync"
)

// memoryStore backs both store interfaces for tests and offline use.
type memoryStore struct {
	mu        sync.RWMutex
	templates map[string]ExamTemplate
	banks     map[string]QuestionBank
}

// NewInMemoryStore returns a store satisfying TemplateStore and BankStore.
func NewInMemoryStore() Store {
	return &memoryStore{
		templates: map[string]ExamTemplate{},
		banks:     map[string]QuestionBank{},
	}
}

func (m *memoryStore) PutTemplate(_ context.Context, t ExamTemplate) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.templates[t.ID] = t
	return nil
}

func (m *memoryStore) GetTemplate(_ context.Context, id string) (ExamTemplate, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	t, ok := m.templates[id]
	if !ok {
		return ExamTemplate{}, ErrTemplateNotFound
	}
	return t, nil
}

func (m *memoryStore) ListTemplates(_ context.Context, limit, offset int) ([]ExamTemplate, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ids := make([]string, 0, len(m.templates))
	for id := range m.templates {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	out := make([]ExamTemplate, 0, len(ids))
	for _, id := range ids {
		out = append(out, m.templates[id])
	}
	return window(out, limit, offset), nil
}

func (m *memoryStore) PutBank(_ context.Context, b QuestionBank) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.banks[b.ID] = b
	return nil
}

func (m *memoryStore) GetBank(_ context.Context, id string) (QuestionBank, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	b, ok := m.banks[id]
	if !ok {
		return QuestionBank{}, ErrBankNotFound
	}
	return b, nil
}

func (m *memoryStore) ListBanks(_ context.Context, limit, offset int) ([]QuestionBank, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ids := make([]string, 0, len(m.banks))
	for id := range m.banks {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	out := make([]QuestionBank, 0, len(ids))
	for _, id := range ids {
		out = append(out, m.banks[id])
	}
	return window(out, limit, offset), nil
}

func window[T any](in []T, limit, offset int) []T {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(in) {
		return nil
	}
	in = in[offset:]
	if limit > 0 && limit < len(in) {
		in = in[:limit]
	}
	return in
}
