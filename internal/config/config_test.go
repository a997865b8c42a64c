package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "notes.yaml")
	content := `input:
  defaultDir: ./notes
output:
  defaultDir: ./out
  skipIntermediate: true
macros:
  basePath: ./tables
  wrap: operatorname
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}

	if cfg.Input.DefaultDir != "./notes" {
		t.Errorf("Input.DefaultDir = %q, want %q", cfg.Input.DefaultDir, "./notes")
	}
	if !cfg.Output.SkipIntermediate {
		t.Error("Output.SkipIntermediate = false, want true")
	}
	if cfg.Macros.BasePath != "./tables" {
		t.Errorf("Macros.BasePath = %q, want %q", cfg.Macros.BasePath, "./tables")
	}
	if cfg.Macros.Wrap != "operatorname" {
		t.Errorf("Macros.Wrap = %q, want %q", cfg.Macros.Wrap, "operatorname")
	}
}

func TestLoadConfigErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		setup   func(t *testing.T) string
		wantErr error
	}{
		{
			name:    "empty name",
			setup:   func(t *testing.T) string { return "" },
			wantErr: ErrEmptyConfigName,
		},
		{
			name: "missing file",
			setup: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "absent.yaml")
			},
			wantErr: ErrConfigNotFound,
		},
		{
			name: "unknown field rejected",
			setup: func(t *testing.T) string {
				p := filepath.Join(t.TempDir(), "bad.yaml")
				if err := os.WriteFile(p, []byte("unknown: field\n"), 0o644); err != nil {
					t.Fatal(err)
				}
				return p
			},
			wantErr: ErrConfigParse,
		},
		{
			name: "invalid wrap command",
			setup: func(t *testing.T) string {
				p := filepath.Join(t.TempDir(), "wrap.yaml")
				if err := os.WriteFile(p, []byte("macros:\n  wrap: \"bad{name}\"\n"), 0o644); err != nil {
					t.Fatal(err)
				}
				return p
			},
			wantErr: ErrInvalidWrapCommand,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := LoadConfig(tt.setup(t))
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("LoadConfig() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateWrapCommand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		wrap    string
		wantErr bool
	}{
		{name: "empty allowed", wrap: "", wantErr: false},
		{name: "letters allowed", wrap: "operatorname", wantErr: false},
		{name: "mixed case allowed", wrap: "MathOp", wantErr: false},
		{name: "digits rejected", wrap: "op2", wantErr: true},
		{name: "braces rejected", wrap: "op{x}", wantErr: true},
		{name: "backslash rejected", wrap: `\op`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := DefaultConfig()
			cfg.Macros.Wrap = tt.wrap
			err := cfg.Validate()
			if tt.wantErr && !errors.Is(err, ErrInvalidWrapCommand) {
				t.Errorf("Validate() = %v, want ErrInvalidWrapCommand", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
		})
	}
}
