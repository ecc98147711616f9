package exam

import (
	"strings"
	"testing"
)

func validBank() []Question {
	return []Question{
		{ID: "q1", Type: TypeChoice, Content: "a", Points: 5,
			Options: []Option{{Key: "A", Text: "x"}, {Key: "B", Text: "y"}}},
		{ID: "q2", Type: TypeFill, Content: "b____", Points: 3},
		{ID: "q3", Type: TypeEssay, Content: "c", Points: 10},
		{ID: "q4", Type: TypeTrueFalse, Content: "d", Points: 2},
	}
}

func TestValidateOK(t *testing.T) {
	if err := NewProcessor(1).Validate(validBank()); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestValidateRejects(t *testing.T) {
	cases := []struct {
		name string
		q    Question
		want string
	}{
		{"empty id", Question{Type: TypeEssay, Content: "x", Points: 1}, "empty id"},
		{"empty content", Question{ID: "q", Type: TypeEssay, Content: "  ", Points: 1}, "empty content"},
		{"negative points", Question{ID: "q", Type: TypeEssay, Content: "x", Points: -1}, "negative points"},
		{"choice one option", Question{ID: "q", Type: TypeChoice, Content: "x", Points: 1,
			Options: []Option{{Key: "A", Text: "a"}}}, "at least 2 options"},
	}
	p := NewProcessor(1)
	for _, c := range cases {
		err := p.Validate([]Question{c.q})
		if err == nil || !strings.Contains(err.Error(), c.want) {
			t.Errorf("%s: err = %v, want containing %q", c.name, err, c.want)
		}
	}
}

// The 正确/错误 items are fixed in the renderer, so a true/false question
// without options is valid.
func TestValidateTrueFalseNeedsNoOptions(t *testing.T) {
	q := Question{ID: "tf", Type: TypeTrueFalse, Content: "判断对错", Points: 2}
	if err := NewProcessor(1).Validate([]Question{q}); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestRandomizeBoundsAndCopy(t *testing.T) {
	in := validBank()
	p := NewProcessor(42)

	out := p.Randomize(in, 2)
	if len(out) != 2 {
		t.Fatalf("len = %d, want 2", len(out))
	}
	// no duplicates
	seen := map[string]bool{}
	for _, q := range out {
		if seen[q.ID] {
			t.Fatalf("duplicate %s", q.ID)
		}
		seen[q.ID] = true
	}
	// input order untouched
	for i, id := range []string{"q1", "q2", "q3", "q4"} {
		if in[i].ID != id {
			t.Fatal("Randomize mutated its input")
		}
	}

	if got := p.Randomize(in, 0); len(got) != len(in) {
		t.Errorf("n=0 should keep all questions, got %d", len(got))
	}
	if got := p.Randomize(in, 99); len(got) != len(in) {
		t.Errorf("n beyond len should keep all questions, got %d", len(got))
	}
}

func TestRandomizeSeedReproducible(t *testing.T) {
	a := NewProcessor(7).Randomize(validBank(), 0)
	b := NewProcessor(7).Randomize(validBank(), 0)
	for i := range a {
		if a[i].ID != b[i].ID {
			t.Fatal("same seed must give the same order")
		}
	}
}

func TestSectionOrder(t *testing.T) {
	tmpl := &ExamTemplate{Sections: []TemplateSection{
		{Title: "二", QuestionIDs: []string{"q3", "missing", "q1"}},
		{Title: "一", QuestionIDs: []string{"q4"}},
	}}
	got := SectionOrder(tmpl, validBank())
	want := []string{"q3", "q1", "q4"}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].ID != want[i] {
			t.Errorf("pos %d = %s, want %s", i, got[i].ID, want[i])
		}
	}
}
