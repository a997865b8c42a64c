// Package fileutil provides file and path utility functions.
package fileutil

import (
	"os"
	"path/filepath"
	"strings"
)

// Markdown file extensions accepted as conversion input.
var markdownExts = []string{".md", ".markdown"}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// IsFilePath returns true if the string looks like a file path rather than a name.
// A string containing path separators (/, \) is treated as a path.
//
// Examples:
//   - "notes" -> false (name)
//   - "./notes.md" -> true (relative path)
//   - "../shared/notes.md" -> true (parent path)
//   - "/absolute/notes.md" -> true (absolute)
//   - "C:\windows\notes.md" -> true (Windows)
//   - "my-notes" -> false (hyphenated name)
//   - "sub/dir" -> true (contains separator)
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// IsMarkdown returns true if the path has a Markdown file extension.
// The comparison is case insensitive.
func IsMarkdown(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, m := range markdownExts {
		if ext == m {
			return true
		}
	}
	return false
}

// ReplaceExt returns path with its extension replaced by newExt. The new
// extension must include the leading dot. A path without an extension
// gets newExt appended.
func ReplaceExt(path, newExt string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + newExt
}

// IntermediatePath returns the path used to persist the preprocessed
// Markdown next to outputPath, so the intermediate pipeline stage can be
// inspected after a conversion.
func IntermediatePath(outputPath string) string {
	return ReplaceExt(outputPath, ".pre.md")
}
