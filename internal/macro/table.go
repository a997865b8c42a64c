package macro

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for table loading.
var (
	ErrTableRead     = errors.New("failed to read macro table")
	ErrTableParse    = errors.New("failed to parse macro table")
	ErrMissingColumn = errors.New("macro table missing required column")
	ErrEmptyTable    = errors.New("macro table has no header row")
)

// SelfReplace is the replacement column value meaning "same as the search
// text". It exists so operator tables can wrap every entry uniformly.
const SelfReplace = "_"

// Required column names in every macro table.
const (
	colSearch  = "Search For"
	colReplace = "Replace With"
	colMode    = "Match Mode"
)

// Source names one tabular macro resource. Wrap, when non-empty, rewrites
// every replacement loaded from this source into the invocation
// \<Wrap>{<replacement>} of a shared LaTeX command.
type Source struct {
	Name string
	Wrap string
}

// TableLoader resolves a source name to raw table bytes.
// Implementations may load from embedded assets or the filesystem.
type TableLoader interface {
	LoadTable(name string) ([]byte, error)
}

// Load reads every source in order and returns the concatenated macro list.
// Any missing column, undecodable match mode, or unreadable source is fatal:
// no partial list is ever returned.
func Load(loader TableLoader, sources []Source) (List, error) {
	var list List
	for _, src := range sources {
		data, err := loader.LoadTable(src.Name)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrTableRead, src.Name, err)
		}
		rules, err := parseTable(src.Name, data, src.Wrap)
		if err != nil {
			return nil, err
		}
		list = append(list, rules...)
	}
	return list, nil
}

// parseTable decodes one table: a header row naming the required columns,
// then one rule per record.
func parseTable(name string, data []byte, wrap string) ([]Rule, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.TrimLeadingSpace = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrTableParse, name, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrEmptyTable, name)
	}

	cols, err := columnIndexes(name, records[0])
	if err != nil {
		return nil, err
	}

	rules := make([]Rule, 0, len(records)-1)
	for i, record := range records[1:] {
		search := record[cols.search]
		replace := record[cols.replace]
		if replace == SelfReplace {
			replace = search
		}
		if wrap != "" {
			replace = `\` + wrap + `{` + replace + `}`
		}

		mode, err := ParseMatchMode(strings.TrimSpace(record[cols.mode]))
		if err != nil {
			return nil, fmt.Errorf("table %q row %d: %w", name, i+2, err)
		}

		rule, err := NewRule(search, replace, mode)
		if err != nil {
			return nil, fmt.Errorf("table %q row %d: %w", name, i+2, err)
		}
		rules = append(rules, rule)
	}
	return rules, nil
}

// columnIndexes locates the three required columns in the header row.
type columns struct {
	search, replace, mode int
}

func columnIndexes(name string, header []string) (columns, error) {
	cols := columns{search: -1, replace: -1, mode: -1}
	for i, h := range header {
		switch strings.TrimSpace(h) {
		case colSearch:
			cols.search = i
		case colReplace:
			cols.replace = i
		case colMode:
			cols.mode = i
		}
	}
	if cols.search == -1 {
		return cols, fmt.Errorf("%w: %q missing %q", ErrMissingColumn, name, colSearch)
	}
	if cols.replace == -1 {
		return cols, fmt.Errorf("%w: %q missing %q", ErrMissingColumn, name, colReplace)
	}
	if cols.mode == -1 {
		return cols, fmt.Errorf("%w: %q missing %q", ErrMissingColumn, name, colMode)
	}
	return cols, nil
}
