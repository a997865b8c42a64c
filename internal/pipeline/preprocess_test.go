package pipeline

import (
	"context"
	"testing"
)

func TestNormalizeLineEndings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "LF unchanged",
			input:    "line1\nline2",
			expected: "line1\nline2",
		},
		{
			name:     "CRLF to LF",
			input:    "line1\r\nline2",
			expected: "line1\nline2",
		},
		{
			name:     "CR to LF",
			input:    "line1\rline2",
			expected: "line1\nline2",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := normalizeLineEndings(tt.input)
			if got != tt.expected {
				t.Errorf("normalizeLineEndings() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestStripComments(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "leading comment line removed entirely",
			input:    "-- note\nkeep",
			expected: "keep",
		},
		{
			name:     "indented comment line removed",
			input:    "  -- note\nkeep",
			expected: "keep",
		},
		{
			name:     "inline dashes preserved verbatim",
			input:    "x -- y",
			expected: "x -- y",
		},
		{
			name:     "dashes without trailing space preserved",
			input:    "--note",
			expected: "--note",
		},
		{
			name:     "whitespace-only line blanked",
			input:    "a\n   \t\nb",
			expected: "a\n\nb",
		},
		{
			name:     "mixed document",
			input:    "  -- header\ntext\n   \n-- footer\nmore",
			expected: "text\n\nmore",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := stripComments(tt.input)
			if got != tt.expected {
				t.Errorf("stripComments(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestAddPars(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "marker inserted between two paragraphs",
			input:    "a\n\nb",
			expected: "a\n\n<!-- -->\n\\par\n<!-- -->\n\nb",
		},
		{
			name:     "no marker without a blank line",
			input:    "a\nb",
			expected: "a\nb",
		},
		{
			name:     "blank run collapses to one marker",
			input:    "a\n\n\n\nb",
			expected: "a\n\n<!-- -->\n\\par\n<!-- -->\n\nb",
		},
		{
			name:     "three paragraphs get two markers",
			input:    "a\n\nb\n\nc",
			expected: "a\n\n<!-- -->\n\\par\n<!-- -->\n\nb\n\n<!-- -->\n\\par\n<!-- -->\n\nc",
		},
		{
			name:     "leading and trailing blanks dropped",
			input:    "\n\na\n\n",
			expected: "a",
		},
		{
			name:     "multi-line paragraph kept intact",
			input:    "a\nb\n\nc",
			expected: "a\nb\n\n<!-- -->\n\\par\n<!-- -->\n\nc",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := addPars(tt.input)
			if got != tt.expected {
				t.Errorf("addPars(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestPreprocessComposition(t *testing.T) {
	t.Parallel()

	p := &NotesPreprocessor{}
	input := "-- comment\r\nfirst\r\n\r\nsecond"
	expected := "first\n\n<!-- -->\n\\par\n<!-- -->\n\nsecond"

	got := p.Preprocess(context.Background(), input)
	if got != expected {
		t.Errorf("Preprocess() = %q, want %q", got, expected)
	}
}

func TestPreprocessCanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := &NotesPreprocessor{}
	input := "-- comment\ntext"
	if got := p.Preprocess(ctx, input); got != input {
		t.Errorf("Preprocess() with canceled context = %q, want input unchanged", got)
	}
}
