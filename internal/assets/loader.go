package assets

import (
	"fmt"
	"strings"
)

// TableLoader defines the contract for loading raw macro table bytes.
// Implementations may load from embedded assets, the filesystem, etc.
// It satisfies macro.TableLoader.
type TableLoader interface {
	// LoadTable loads a macro table by name (without the .csv extension).
	// Returns ErrTableNotFound if the table doesn't exist.
	// Returns ErrInvalidTableName if the name contains invalid characters.
	LoadTable(name string) ([]byte, error)
}

// ValidateTableName checks that a table name is safe for use as a filename.
// Returns ErrInvalidTableName if the name is empty or contains path
// separators, dots, or traversal characters.
func ValidateTableName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidTableName)
	}
	if strings.ContainsAny(name, "/\\.") {
		return fmt.Errorf("%w: %q", ErrInvalidTableName, name)
	}
	return nil
}
