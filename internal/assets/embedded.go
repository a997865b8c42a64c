package assets

import (
	"embed"
	"fmt"
)

//go:embed tables/*
var tables embed.FS

// EmbeddedLoader loads macro tables from the embedded filesystem.
// Implements TableLoader.
type EmbeddedLoader struct{}

// NewEmbeddedLoader creates an EmbeddedLoader.
func NewEmbeddedLoader() *EmbeddedLoader {
	return &EmbeddedLoader{}
}

// LoadTable loads a macro table from embedded assets by name.
// The name should not include the .csv extension.
func (e *EmbeddedLoader) LoadTable(name string) ([]byte, error) {
	if err := ValidateTableName(name); err != nil {
		return nil, err
	}

	content, err := tables.ReadFile("tables/" + name + ".csv")
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrTableNotFound, name)
	}

	return content, nil
}

// Compile-time interface check.
var _ TableLoader = (*EmbeddedLoader)(nil)
