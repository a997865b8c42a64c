package macro

import (
	"errors"
	"fmt"
	"testing"
)

// mapLoader serves tables from memory for tests.
type mapLoader map[string]string

func (m mapLoader) LoadTable(name string) ([]byte, error) {
	data, ok := m[name]
	if !ok {
		return nil, fmt.Errorf("no such table %q", name)
	}
	return []byte(data), nil
}

func TestLoadSingleTable(t *testing.T) {
	t.Parallel()

	loader := mapLoader{
		"macros": "Search For,Replace With,Match Mode\n" +
			`alpha,\alpha,Word` + "\n" +
			`->,\rightarrow,Anywhere` + "\n",
	}

	list, err := Load(loader, []Source{{Name: "macros"}})
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if len(list) != 2 {
		t.Fatalf("Load() returned %d rules, want 2", len(list))
	}
	if list[0].Search != "alpha" || list[0].Replace != `\alpha` || list[0].Mode != ModeWord {
		t.Errorf("rule 0 = %+v, want alpha/\\alpha/Word", list[0])
	}
	if list[1].Search != "->" || list[1].Mode != ModeAnywhere {
		t.Errorf("rule 1 = %+v, want ->/Anywhere", list[1])
	}
}

func TestLoadSelfReplaceAndWrap(t *testing.T) {
	t.Parallel()

	loader := mapLoader{
		"operators": "Search For,Replace With,Match Mode\n" +
			"lcm,_,Word\n" +
			"argmax,arg max,Word\n",
	}

	list, err := Load(loader, []Source{{Name: "operators", Wrap: "operatorname"}})
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if got := list[0].Replace; got != `\operatorname{lcm}` {
		t.Errorf("self-replace rule Replace = %q, want %q", got, `\operatorname{lcm}`)
	}
	if got := list[1].Replace; got != `\operatorname{arg max}` {
		t.Errorf("wrapped rule Replace = %q, want %q", got, `\operatorname{arg max}`)
	}
}

// Sources concatenate in the given order; order is the only conflict
// resolution mechanism.
func TestLoadSourceOrder(t *testing.T) {
	t.Parallel()

	loader := mapLoader{
		"base":    "Search For,Replace With,Match Mode\na,b,Anywhere\n",
		"overlay": "Search For,Replace With,Match Mode\nb,c,Anywhere\n",
	}

	list, err := Load(loader, []Source{{Name: "base"}, {Name: "overlay"}})
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if len(list) != 2 || list[0].Search != "a" || list[1].Search != "b" {
		t.Fatalf("Load() order = %v, want base then overlay", list)
	}
	if got := list.Apply("a"); got != "  c  " {
		t.Errorf("Apply(%q) = %q, want %q", "a", got, "  c  ")
	}
}

func TestLoadErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		table   string
		wantErr error
	}{
		{
			name:    "missing search column",
			table:   "Replace With,Match Mode\nx,Word\n",
			wantErr: ErrMissingColumn,
		},
		{
			name:    "missing replace column",
			table:   "Search For,Match Mode\nx,Word\n",
			wantErr: ErrMissingColumn,
		},
		{
			name:    "missing mode column",
			table:   "Search For,Replace With\nx,y\n",
			wantErr: ErrMissingColumn,
		},
		{
			name:    "undecodable match mode",
			table:   "Search For,Replace With,Match Mode\nx,y,Everywhere\n",
			wantErr: ErrUnknownMatchMode,
		},
		{
			name:    "empty table",
			table:   "",
			wantErr: ErrEmptyTable,
		},
		{
			name:    "ragged record",
			table:   "Search For,Replace With,Match Mode\nx,y\n",
			wantErr: ErrTableParse,
		},
		{
			name:    "empty search text",
			table:   "Search For,Replace With,Match Mode\n\"\",y,Word\n",
			wantErr: ErrEmptySearch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			loader := mapLoader{"bad": tt.table}
			_, err := Load(loader, []Source{{Name: "bad"}})
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Load() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

// A load failure anywhere aborts the whole load: no partial list.
func TestLoadMissingSourceIsFatal(t *testing.T) {
	t.Parallel()

	loader := mapLoader{
		"good": "Search For,Replace With,Match Mode\na,b,Word\n",
	}

	list, err := Load(loader, []Source{{Name: "good"}, {Name: "absent"}})
	if !errors.Is(err, ErrTableRead) {
		t.Errorf("Load() error = %v, want ErrTableRead", err)
	}
	if list != nil {
		t.Errorf("Load() returned partial list %v, want nil", list)
	}
}
