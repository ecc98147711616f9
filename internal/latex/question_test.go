package latex

import (
	"errors"
	"strings"
	"testing"

	"github.com/moderras/quizforge/internal/exam"
)

func choiceQuestion() *exam.Question {
	return &exam.Question{
		ID:      "q1",
		Type:    exam.TypeChoice,
		Content: "下列哪个是中国的首都？",
		Points:  5,
		Options: []exam.Option{
			{Key: "A", Text: "北京", Correct: true},
			{Key: "B", Text: "上海"},
			{Key: "C", Text: "广州"},
			{Key: "D", Text: "深圳"},
		},
	}
}

func TestRenderChoice(t *testing.T) {
	got, err := RenderChoice(choiceQuestion(), 3)
	if err != nil {
		t.Fatalf("RenderChoice: %v", err)
	}
	if !strings.Contains(got, `\textbf{第3题}（5分）`) {
		t.Errorf("missing label/points: %q", got)
	}
	if n := strings.Count(got, `\item`); n != 4 {
		t.Errorf("item count = %d, want 4", n)
	}
	// options keep their original order
	if strings.Index(got, "北京") > strings.Index(got, "上海") {
		t.Error("options out of order")
	}
}

func TestRenderChoiceTags(t *testing.T) {
	q := choiceQuestion()
	q.Difficulty = "中等"
	q.Category = "地理"
	got, _ := RenderChoice(q, 1)
	if !strings.Contains(got, "【难度：中等】") || !strings.Contains(got, "【类型：地理】") {
		t.Errorf("missing tags: %q", got)
	}

	q.Difficulty = ""
	got, _ = RenderChoice(q, 1)
	if strings.Contains(got, "【难度") {
		t.Errorf("empty difficulty should omit tag: %q", got)
	}
}

func TestRenderChoicePointFormat(t *testing.T) {
	q := choiceQuestion()
	q.Points = 2.5
	got, _ := RenderChoice(q, 1)
	if !strings.Contains(got, "（2.5分）") {
		t.Errorf("fractional points: %q", got)
	}
	q.Points = 10
	got, _ = RenderChoice(q, 1)
	if !strings.Contains(got, "（10分）") {
		t.Errorf("integer points must not carry decimals: %q", got)
	}
}

func TestRenderFill(t *testing.T) {
	q := &exam.Question{ID: "q2", Type: exam.TypeFill, Content: "中国的首都是____。", Points: 3}
	got, err := RenderFill(q, 1)
	if err != nil {
		t.Fatalf("RenderFill: %v", err)
	}
	if strings.Contains(got, "____") {
		t.Errorf("raw blank marker left in output: %q", got)
	}
	if n := strings.Count(got, `\underline{\hspace{3cm}}`); n != 1 {
		t.Errorf("blank count = %d, want 1", n)
	}
	if !strings.Contains(got, "中国的首都是") || !strings.Contains(got, "。") {
		t.Errorf("prefix/suffix lost: %q", got)
	}

	again, _ := RenderFill(q, 1)
	if got != again {
		t.Error("RenderFill not deterministic")
	}
}

func TestRenderFillOnlyFirstBlank(t *testing.T) {
	q := &exam.Question{ID: "q2", Type: exam.TypeFill, Content: "____在前，____在后", Points: 1}
	got, _ := RenderFill(q, 1)
	if n := strings.Count(got, `\underline{\hspace{3cm}}`); n != 1 {
		t.Errorf("blank count = %d, want 1 (first marker only)", n)
	}
	// the second marker is escaped like ordinary content
	if !strings.Contains(got, `\_\_\_\_`) {
		t.Errorf("second marker should stay as escaped text: %q", got)
	}
}

func TestRenderFillNoMarker(t *testing.T) {
	q := &exam.Question{ID: "q2", Type: exam.TypeFill, Content: "写出圆周率的前三位", Points: 1}
	got, _ := RenderFill(q, 1)
	if n := strings.Count(got, `\underline{\hspace{3cm}}`); n != 1 {
		t.Errorf("blank should be appended when content has no marker: %q", got)
	}
}

func TestRenderEssay(t *testing.T) {
	q := &exam.Question{ID: "q3", Type: exam.TypeEssay, Content: "论述题干", Points: 20}
	got, err := RenderEssay(q, 5)
	if err != nil {
		t.Fatalf("RenderEssay: %v", err)
	}
	if !strings.Contains(got, `\vspace{6cm}`) {
		t.Errorf("missing answer space: %q", got)
	}
	if !strings.Contains(got, `\textbf{第5题}（20分）`) {
		t.Errorf("missing label: %q", got)
	}
}

func TestRenderTrueFalse(t *testing.T) {
	q := &exam.Question{ID: "q4", Type: exam.TypeTrueFalse, Content: "地球是平的。", Points: 2}
	got, err := RenderTrueFalse(q, 1)
	if err != nil {
		t.Fatalf("RenderTrueFalse: %v", err)
	}
	if n := strings.Count(got, `\item`); n != 2 {
		t.Errorf("item count = %d, want 2", n)
	}
	if !strings.Contains(got, "正确") || !strings.Contains(got, "错误") {
		t.Errorf("missing fixed items: %q", got)
	}
}

func TestRenderQuestionDispatch(t *testing.T) {
	for _, q := range []*exam.Question{
		choiceQuestion(),
		{ID: "f", Type: exam.TypeFill, Content: "a____b", Points: 1},
		{ID: "e", Type: exam.TypeEssay, Content: "c", Points: 1},
		{ID: "t", Type: exam.TypeTrueFalse, Content: "d", Points: 1},
	} {
		if _, err := RenderQuestion(q, 1); err != nil {
			t.Errorf("RenderQuestion(%s): %v", q.Type, err)
		}
	}
}

func TestRenderQuestionUnknownType(t *testing.T) {
	withOpts := &exam.Question{
		ID: "x", Type: "matching", Content: "配对", Points: 4,
		Options: []exam.Option{{Key: "1", Text: "甲"}, {Key: "2", Text: "乙"}},
	}
	got, err := RenderQuestion(withOpts, 1)
	if err != nil {
		t.Fatalf("unknown type with options: %v", err)
	}
	if !strings.Contains(got, `\begin{enumerate}`) {
		t.Errorf("unknown type with options should enumerate: %q", got)
	}

	noOpts := &exam.Question{ID: "y", Type: "mystery", Content: "题干", Points: 4}
	got, err = RenderQuestion(noOpts, 1)
	if err != nil {
		t.Fatalf("unknown type without options: %v", err)
	}
	if !strings.Contains(got, `\vspace{6cm}`) {
		t.Errorf("unknown type without options should leave essay space: %q", got)
	}
}

func TestRenderNilQuestion(t *testing.T) {
	funcs := map[string]func(*exam.Question, int) (string, error){
		"RenderChoice":      RenderChoice,
		"RenderFill":        RenderFill,
		"RenderEssay":       RenderEssay,
		"RenderTrueFalse":   RenderTrueFalse,
		"RenderQuestion":    RenderQuestion,
		"RenderAnswerEntry": RenderAnswerEntry,
	}
	for name, f := range funcs {
		if _, err := f(nil, 1); !errors.Is(err, exam.ErrNilQuestion) {
			t.Errorf("%s(nil) error = %v, want ErrNilQuestion", name, err)
		}
	}
}

func TestRenderAnswerEntryWidths(t *testing.T) {
	cases := []struct {
		typ  exam.QuestionType
		want string
	}{
		{exam.TypeChoice, `\underline{\hspace{2cm}}`},
		{exam.TypeTrueFalse, `\underline{\hspace{2cm}}`},
		{exam.TypeFill, `\underline{\hspace{6cm}}`},
		{exam.TypeEssay, `\vspace{4cm}`},
		{"mystery", `\underline{\hspace{2cm}}`},
	}
	for _, c := range cases {
		q := &exam.Question{ID: "q", Type: c.typ, Content: "题干", Points: 5}
		got, err := RenderAnswerEntry(q, 2)
		if err != nil {
			t.Fatalf("RenderAnswerEntry(%s): %v", c.typ, err)
		}
		if !strings.Contains(got, c.want) {
			t.Errorf("type %s: got %q, want it to contain %q", c.typ, got, c.want)
		}
		if !strings.Contains(got, `\textbf{第2题}（5分）`) {
			t.Errorf("type %s: missing label/points: %q", c.typ, got)
		}
		if strings.Contains(got, "题干") {
			t.Errorf("type %s: answer entry must not carry question content: %q", c.typ, got)
		}
	}
}
