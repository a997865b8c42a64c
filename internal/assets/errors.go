package assets

import "errors"

// Sentinel errors for asset operations.
var (
	// ErrTableNotFound indicates the requested macro table does not exist.
	ErrTableNotFound = errors.New("macro table not found")

	// ErrInvalidTableName indicates the table name contains invalid
	// characters such as path separators or traversal sequences.
	ErrInvalidTableName = errors.New("invalid macro table name")

	// ErrInvalidBasePath indicates the configured base path is not a valid directory.
	ErrInvalidBasePath = errors.New("invalid base path")

	// ErrAssetRead indicates an I/O error occurred while reading a table file.
	ErrAssetRead = errors.New("failed to read macro table")

	// ErrPathTraversal indicates an attempt to access files outside the base path.
	ErrPathTraversal = errors.New("path traversal detected")
)
