package exam

// QuestionType identifies how a question is rendered. Unknown values fall
// back to a generic rendering instead of failing.
type QuestionType string

const (
	TypeChoice    QuestionType = "choice"    // 选择题
	TypeFill      QuestionType = "fill"      // 填空题
	TypeEssay     QuestionType = "essay"     // 简答题
	TypeTrueFalse QuestionType = "truefalse" // 判断题
)

type Option struct {
	Key     string `json:"key"`
	Text    string `json:"text"`
	Correct bool   `json:"correct,omitempty"`
}

// Question is an immutable input to the generation engine; the engine never
// mutates it and never persists it.
type Question struct {
	ID         string       `json:"id"`
	Type       QuestionType `json:"type"`
	Content    string       `json:"content"`
	Points     float64      `json:"points"`
	Difficulty string       `json:"difficulty,omitempty"`
	Category   string       `json:"category,omitempty"`
	Options    []Option     `json:"options,omitempty"`
	Answer     string       `json:"answer,omitempty"` // option key, or comma-joined keys
}

type TemplateSection struct {
	Title         string   `json:"title"`
	Instructions  string   `json:"instructions,omitempty"`
	QuestionIDs   []string `json:"question_ids"`
	QuestionCount int      `json:"question_count,omitempty"`
	TotalPoints   float64  `json:"total_points,omitempty"`
}

type SealLineSide string

const (
	SealLeft  SealLineSide = "left"
	SealRight SealLineSide = "right"
	SealNone  SealLineSide = "none"
)

// TemplateStyle selects which raw LaTeX template text the compositor feeds
// to the content inserter.
type TemplateStyle string

const (
	StyleBasic    TemplateStyle = "basic"
	StyleAdvanced TemplateStyle = "advanced"
)

type ExamTemplate struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description,omitempty"`
	Sections    []TemplateSection `json:"sections"`
	HeaderText  string            `json:"header_text,omitempty"`
	FooterText  string            `json:"footer_text,omitempty"`
	Style       TemplateStyle     `json:"style"`
	SealLine    SealLineSide      `json:"seal_line,omitempty"`
	PaperSize   string            `json:"paper_size,omitempty"`
}

type QuestionBank struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Questions []Question `json:"questions"`
}

type HeaderStyle string

const (
	HeaderStandard HeaderStyle = "standard"
	HeaderSimple   HeaderStyle = "simple"
	HeaderDetailed HeaderStyle = "detailed"
	HeaderCustom   HeaderStyle = "custom"
)

type StudentInfoLayout string

const (
	LayoutHorizontal StudentInfoLayout = "horizontal"
	LayoutVertical   StudentInfoLayout = "vertical"
	LayoutGrid       StudentInfoLayout = "grid"
)

// StudentInfoConfig picks which identification blanks appear on the first
// page and how they are arranged. UnderlineLength is in centimeters.
type StudentInfoConfig struct {
	Layout          StudentInfoLayout `json:"layout"`
	ShowName        bool              `json:"show_name"`
	ShowStudentID   bool              `json:"show_student_id"`
	ShowClass       bool              `json:"show_class"`
	ShowDate        bool              `json:"show_date"`
	ShowSchool      bool              `json:"show_school"`
	ShowSubject     bool              `json:"show_subject"`
	Custom1         string            `json:"custom1,omitempty"`
	Custom2         string            `json:"custom2,omitempty"`
	UnderlineLength float64           `json:"underline_length,omitempty"`
}

// HeaderConfig is a pure generation parameter; it is never persisted.
// For HeaderCustom the CustomTemplate text carries its own placeholder
// tokens and the student-info block is ignored.
type HeaderConfig struct {
	Style               HeaderStyle       `json:"style"`
	ShowStudentInfo     bool              `json:"show_student_info"`
	ShowSealLine        bool              `json:"show_seal_line"`
	ShowOnFirstPageOnly bool              `json:"show_on_first_page_only"`
	CustomTemplate      string            `json:"custom_template,omitempty"`
	ExamLocation        string            `json:"exam_location,omitempty"`
	SchoolName          string            `json:"school_name,omitempty"`
	ExamDate            string            `json:"exam_date,omitempty"`
	StudentInfo         StudentInfoConfig `json:"student_info"`
}

// DefaultHeaderConfig is what generation uses when the caller supplies no
// header configuration.
func DefaultHeaderConfig() HeaderConfig {
	return HeaderConfig{
		Style:               HeaderStandard,
		ShowStudentInfo:     true,
		ShowSealLine:        true,
		ShowOnFirstPageOnly: true,
		StudentInfo: StudentInfoConfig{
			Layout:        LayoutHorizontal,
			ShowName:      true,
			ShowStudentID: true,
			ShowClass:     true,
		},
	}
}

// GeneratedDocument is created once per generation call and not mutated
// afterward. PageRanges[i] is the 1-based inclusive span of global question
// indices rendered on page i+1; an empty page carries {1, 0}.
type GeneratedDocument struct {
	Body        string   `json:"body"`
	AnswerSheet string   `json:"answer_sheet"`
	TotalPoints float64  `json:"total_points"`
	PageCount   int      `json:"page_count"`
	PageRanges  [][2]int `json:"page_ranges,omitempty"`
}

type GenerateOptions struct {
	Paginate         bool          `json:"paginate"`
	QuestionsPerPage int           `json:"questions_per_page,omitempty"`
	Randomize        bool          `json:"randomize"`
	QuestionCount    int           `json:"question_count,omitempty"`
	Header           *HeaderConfig `json:"header,omitempty"`
}

type GenerateResult struct {
	Document      GeneratedDocument `json:"document"`
	QuestionCount int               `json:"question_count"`
}
