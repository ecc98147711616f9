package exam

import "errors"

// Failure conditions surfaced by the generation engine and its stores.
// Generation is all-or-nothing per call: these are raised at the point of
// detection and never retried internally.
var (
	ErrNilQuestion = errors.New("exam: nil question")
	ErrNilSection  = errors.New("exam: nil section")
	ErrNilTemplate = errors.New("exam: nil template")
	ErrNilConfig   = errors.New("exam: nil header config")

	ErrPageOutOfRange = errors.New("exam: page number out of range")

	ErrUnsupportedStyle           = errors.New("exam: unsupported template style")
	ErrTemplateContentUnavailable = errors.New("exam: template content unavailable")

	ErrTemplateNotFound = errors.New("exam: template not found")
	ErrBankNotFound     = errors.New("exam: question bank not found")
)
