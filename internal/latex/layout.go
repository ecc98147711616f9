package latex

import (
	"fmt"
	"strings"

	"github.com/moderras/quizforge/internal/exam"
)

// DefaultExamTime fills the exam-time token; the engine has no scheduling
// knowledge, so the value is fixed.
const DefaultExamTime = "120分钟"

// SealLineDefs returns the \seallineleft / \seallineright command
// definitions. Emit once per document; placement commands reference them on
// every page.
func SealLineDefs() string {
	return `\newcommand{\seallineleft}[2]{%
  \begin{tikzpicture}[remember picture, overlay]
    \draw[dashed, thick] ([xshift=1.8cm]current page.south west) -- ([xshift=1.8cm]current page.north west);
    \node[rotate=90] at ([xshift=1.2cm]current page.west) {密\quad 封\quad 线\quad 内\quad 不\quad 得\quad 答\quad 题\quad （第#1页，共#2页）};
  \end{tikzpicture}}
\newcommand{\seallineright}[2]{%
  \begin{tikzpicture}[remember picture, overlay]
    \draw[dashed, thick] ([xshift=-1.8cm]current page.south east) -- ([xshift=-1.8cm]current page.north east);
    \node[rotate=-90] at ([xshift=-1.2cm]current page.east) {密\quad 封\quad 线\quad 内\quad 不\quad 得\quad 答\quad 题\quad （第#1页，共#2页）};
  \end{tikzpicture}}
`
}

// SealLinePlacement emits the per-page seal-line placement for the
// configured side. SealNone (and any unknown side) yields no output.
func SealLinePlacement(page, total int, side exam.SealLineSide) (string, error) {
	if page < 1 || total < 1 {
		return "", exam.ErrPageOutOfRange
	}
	switch side {
	case exam.SealLeft:
		return fmt.Sprintf("\\seallineleft{%d}{%d}\n", page, total), nil
	case exam.SealRight:
		return fmt.Sprintf("\\seallineright{%d}{%d}\n", page, total), nil
	default:
		return "", nil
	}
}

// RenderHeader builds the title block for the active header style, plus the
// student-info blanks when enabled. The generator is stateless: when
// ShowOnFirstPageOnly is set the caller must invoke it for page 1 only.
func RenderHeader(t *exam.ExamTemplate, cfg *exam.HeaderConfig, totalPoints float64) (string, error) {
	if t == nil {
		return "", exam.ErrNilTemplate
	}
	if cfg == nil {
		return "", exam.ErrNilConfig
	}
	if cfg.Style == exam.HeaderCustom {
		return customHeader(t, cfg, totalPoints), nil
	}

	var b strings.Builder
	b.WriteString("\\begin{center}\n")
	fmt.Fprintf(&b, "  {\\LARGE \\textbf{%s}}\\\\[0.4em]\n", Escape(t.Name))
	switch cfg.Style {
	case exam.HeaderSimple:
		// title only
	case exam.HeaderDetailed:
		if t.Description != "" {
			fmt.Fprintf(&b, "  {\\large %s}\\\\[0.3em]\n", Escape(t.Description))
		}
		var meta []string
		if cfg.SchoolName != "" {
			meta = append(meta, "学校："+Escape(cfg.SchoolName))
		}
		if cfg.ExamLocation != "" {
			meta = append(meta, "考场："+Escape(cfg.ExamLocation))
		}
		if cfg.ExamDate != "" {
			meta = append(meta, "日期："+Escape(cfg.ExamDate))
		}
		if len(meta) > 0 {
			fmt.Fprintf(&b, "  %s\\\\[0.3em]\n", strings.Join(meta, " \\quad "))
		}
		fmt.Fprintf(&b, "  考试时间：%s \\quad 总分：%s分\\\\[0.3em]\n", DefaultExamTime, FormatPoints(totalPoints))
	default: // standard
		if t.Description != "" {
			fmt.Fprintf(&b, "  {\\large %s}\\\\[0.3em]\n", Escape(t.Description))
		}
		fmt.Fprintf(&b, "  考试时间：%s \\quad 总分：%s分\\\\[0.3em]\n", DefaultExamTime, FormatPoints(totalPoints))
	}
	b.WriteString("\\end{center}\n")

	if cfg.ShowStudentInfo {
		b.WriteString(studentInfoBlock(&cfg.StudentInfo))
	}
	return b.String(), nil
}

// customHeader substitutes the custom template's own placeholder tokens and
// ignores the built-in student-info block.
func customHeader(t *exam.ExamTemplate, cfg *exam.HeaderConfig, totalPoints float64) string {
	return strings.NewReplacer(
		"{ExamTitle}", Escape(t.Name),
		"{Subject}", Escape(t.Description),
		"{ExamTime}", DefaultExamTime,
		"{TotalPoints}", FormatPoints(totalPoints),
		"{ExamLocation}", Escape(cfg.ExamLocation),
		"{SchoolName}", Escape(cfg.SchoolName),
		"{ExamDate}", Escape(cfg.ExamDate),
	).Replace(cfg.CustomTemplate)
}

type infoField struct{ label string }

func enabledFields(si *exam.StudentInfoConfig) []infoField {
	var fields []infoField
	if si.ShowName {
		fields = append(fields, infoField{"姓名"})
	}
	if si.ShowStudentID {
		fields = append(fields, infoField{"学号"})
	}
	if si.ShowClass {
		fields = append(fields, infoField{"班级"})
	}
	if si.ShowDate {
		fields = append(fields, infoField{"日期"})
	}
	if si.ShowSchool {
		fields = append(fields, infoField{"学校"})
	}
	if si.ShowSubject {
		fields = append(fields, infoField{"科目"})
	}
	if si.Custom1 != "" {
		fields = append(fields, infoField{Escape(si.Custom1)})
	}
	if si.Custom2 != "" {
		fields = append(fields, infoField{Escape(si.Custom2)})
	}
	return fields
}

func studentInfoBlock(si *exam.StudentInfoConfig) string {
	fields := enabledFields(si)
	if len(fields) == 0 {
		return ""
	}
	length := si.UnderlineLength
	if length <= 0 {
		length = 3
	}
	blank := fmt.Sprintf(`\underline{\hspace{%scm}}`, FormatPoints(length))

	cells := make([]string, len(fields))
	for i, f := range fields {
		cells[i] = f.label + "：" + blank
	}

	var b strings.Builder
	switch si.Layout {
	case exam.LayoutVertical:
		for _, c := range cells {
			b.WriteString(c)
			b.WriteString("\\\\[0.5em]\n")
		}
	case exam.LayoutGrid:
		b.WriteString("\\begin{tabular}{ll}\n")
		for i := 0; i < len(cells); i += 2 {
			b.WriteString("  ")
			b.WriteString(cells[i])
			if i+1 < len(cells) {
				b.WriteString(" & ")
				b.WriteString(cells[i+1])
			} else {
				b.WriteString(" & ")
			}
			b.WriteString(" \\\\\n")
		}
		b.WriteString("\\end{tabular}\n")
	default: // horizontal
		b.WriteString(strings.Join(cells, " \\quad "))
		b.WriteString("\n")
	}
	return b.String()
}

// RenderHeaderFooter emits the running header/footer directives for one
// page; unlike RenderHeader it is meant to be invoked per page.
func RenderHeaderFooter(t *exam.ExamTemplate, page, total int) (string, error) {
	if t == nil {
		return "", exam.ErrNilTemplate
	}
	if page < 1 || total < 1 {
		return "", exam.ErrPageOutOfRange
	}
	var b strings.Builder
	b.WriteString("\\pagestyle{fancy}\n")
	fmt.Fprintf(&b, "\\fancyhead[L]{%s}\n", Escape(t.Name))
	fmt.Fprintf(&b, "\\fancyhead[R]{%s}\n", Escape(t.Description))
	fmt.Fprintf(&b, "\\fancyfoot[C]{第 %d 页，共 %d 页}\n", page, total)
	return b.String(), nil
}
