package md2latex

import "errors"

// Sentinel errors for library operations.
var (
	ErrEmptyMarkdown    = errors.New("markdown content cannot be empty")
	ErrInvalidMacroPath = errors.New("invalid macro table path")
)
