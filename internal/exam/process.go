package exam

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"
)

// Processor validates a question bank and selects questions from it.
// It is an input collaborator of the paper generator, not part of the
// rendering engine.
type Processor interface {
	Validate(qs []Question) error
	Randomize(qs []Question, n int) []Question
}

type processor struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewProcessor returns a Processor whose randomization is driven by the
// given seed, so variant generation can be reproduced.
func NewProcessor(seed int64) Processor {
	return &processor{rng: rand.New(rand.NewSource(seed))}
}

// Validate checks every question for the invariants rendering relies on:
// non-empty id and content, non-negative points, and at least two options
// for the option-list types.
func (p *processor) Validate(qs []Question) error {
	for i := range qs {
		q := &qs[i]
		if q.ID == "" {
			return fmt.Errorf("question %d: empty id", i)
		}
		if strings.TrimSpace(q.Content) == "" {
			return fmt.Errorf("question %q: empty content", q.ID)
		}
		if q.Points < 0 {
			return fmt.Errorf("question %q: negative points", q.ID)
		}
		// true/false renders a fixed 正确/错误 item list and never reads
		// q.Options, so only choice carries the option-count requirement
		if q.Type == TypeChoice && len(q.Options) < 2 {
			return fmt.Errorf("question %q: choice needs at least 2 options", q.ID)
		}
	}
	return nil
}

// Randomize returns a shuffled copy of qs truncated to n when 0 < n <
// len(qs). The input slice is never mutated.
func (p *processor) Randomize(qs []Question, n int) []Question {
	out := make([]Question, len(qs))
	copy(out, qs)
	p.mu.Lock()
	p.rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	p.mu.Unlock()
	if n > 0 && n < len(out) {
		out = out[:n]
	}
	return out
}

// SectionOrder flattens a bank's questions into template-section order,
// following each section's referenced IDs and skipping IDs absent from the
// bank.
func SectionOrder(t *ExamTemplate, qs []Question) []Question {
	byID := make(map[string]int, len(qs))
	for i := range qs {
		byID[qs[i].ID] = i
	}
	var out []Question
	for s := range t.Sections {
		for _, id := range t.Sections[s].QuestionIDs {
			if i, ok := byID[id]; ok {
				out = append(out, qs[i])
			}
		}
	}
	return out
}
