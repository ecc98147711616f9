// Package templates holds the raw LaTeX template texts, embedded in the
// binary and optionally overridden from a directory at startup.
package templates

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/moderras/quizforge/internal/exam"
)

//go:embed latex/basic.tex latex/advanced.tex
var builtin embed.FS

var builtinFiles = map[exam.TemplateStyle]string{
	exam.StyleBasic:    "latex/basic.tex",
	exam.StyleAdvanced: "latex/advanced.tex",
}

// Source maps a template style to its raw LaTeX text. The map is read-only
// after construction, so a single Source is safe to share across concurrent
// generation calls.
type Source struct {
	byStyle map[exam.TemplateStyle]string
}

// NewSource loads the embedded templates.
func NewSource() (*Source, error) {
	s := &Source{byStyle: make(map[exam.TemplateStyle]string, len(builtinFiles))}
	for style, name := range builtinFiles {
		b, err := builtin.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", exam.ErrTemplateContentUnavailable, name, err)
		}
		s.byStyle[style] = string(b)
	}
	return s, nil
}

// NewSourceFromDir loads the embedded templates and then overrides any
// style for which <dir>/<style>.tex exists. A present but unreadable or
// empty override is an error rather than a silent fallback.
func NewSourceFromDir(dir string) (*Source, error) {
	s, err := NewSource()
	if err != nil {
		return nil, err
	}
	for style := range s.byStyle {
		path := filepath.Join(dir, string(style)+".tex")
		b, err := os.ReadFile(path)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", exam.ErrTemplateContentUnavailable, path, err)
		}
		if len(bytes.TrimSpace(b)) == 0 {
			return nil, fmt.Errorf("%w: %s is empty", exam.ErrTemplateContentUnavailable, path)
		}
		s.byStyle[style] = string(b)
	}
	return s, nil
}

// Register adds or replaces the raw text for a style. Call before serving;
// the map is not guarded for concurrent mutation.
func (s *Source) Register(style exam.TemplateStyle, raw string) {
	s.byStyle[style] = raw
}

// Raw returns the template text for a style.
func (s *Source) Raw(style exam.TemplateStyle) (string, error) {
	t, ok := s.byStyle[style]
	if !ok {
		return "", fmt.Errorf("%w: %q", exam.ErrUnsupportedStyle, style)
	}
	return t, nil
}
