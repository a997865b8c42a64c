package md2latex

import (
	"context"
	"fmt"

	"github.com/alnah/go-md2latex/internal/assets"
	"github.com/alnah/go-md2latex/internal/macro"
	"github.com/alnah/go-md2latex/internal/pipeline"
)

// Compile-time interface implementation checks.
var (
	_ pipeline.SourcePreprocessor = (*pipeline.NotesPreprocessor)(nil)
	_ pipeline.LatexConverter     = (*pipeline.GoldmarkConverter)(nil)
	_ TableLoader                 = (*assets.EmbeddedLoader)(nil)
	_ TableLoader                 = (*assets.FilesystemLoader)(nil)
)

// Macro table names, applied in this order. Later tables can override
// substitutions introduced by earlier ones.
const (
	TableMacros    = "macros"
	TableOperators = "operators"
	TableFunctions = "functions"
	TableOverrides = "overrides"
)

func tableSources(wrap string) []macro.Source {
	return []macro.Source{
		{Name: TableMacros},
		{Name: TableOperators, Wrap: wrap},
		{Name: TableFunctions, Wrap: wrap},
		{Name: TableOverrides},
	}
}

// Converter converts annotated Markdown notes to LaTeX. It is safe for
// concurrent use once constructed.
type Converter struct {
	cfg            converterConfig
	tableLoader    macro.TableLoader
	macros         macro.List
	preprocessor   pipeline.SourcePreprocessor
	latexConverter pipeline.LatexConverter
}

// NewConverter creates a Converter with the given options. The macro
// tables are loaded and compiled here: any unreadable, malformed, or
// empty table fails construction before any document is touched.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		cfg: converterConfig{wrap: DefaultWrapCommand},
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.preprocessor == nil {
		c.preprocessor = &pipeline.NotesPreprocessor{}
	}

	if c.tableLoader == nil {
		if c.cfg.macroPath != "" {
			loader, err := assets.NewFilesystemLoader(c.cfg.macroPath)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrInvalidMacroPath, err)
			}
			c.tableLoader = loader
		} else {
			c.tableLoader = assets.NewEmbeddedLoader()
		}
	}

	macros, err := macro.Load(c.tableLoader, tableSources(c.cfg.wrap))
	if err != nil {
		return nil, fmt.Errorf("loading macro tables: %w", err)
	}
	c.macros = macros

	if c.latexConverter == nil {
		c.latexConverter = pipeline.NewGoldmarkConverter(macros)
	}

	return c, nil
}

// Convert runs the full pipeline on input: preprocess the source, parse
// it as Markdown, apply the macro engine to math and align regions, and
// serialize the document as LaTeX.
func (c *Converter) Convert(ctx context.Context, input Input) (result *ConvertResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if input.Markdown == "" {
		return nil, ErrEmptyMarkdown
	}

	preprocessed := c.preprocessor.Preprocess(ctx, input.Markdown)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	result = &ConvertResult{Preprocessed: []byte(preprocessed)}
	if input.PreprocessOnly {
		return result, nil
	}

	fragment, err := c.latexConverter.ToLaTeX(ctx, preprocessed)
	if err != nil {
		return nil, fmt.Errorf("converting to LaTeX: %w", err)
	}

	if input.Fragment {
		result.LaTeX = []byte(fragment)
	} else {
		result.LaTeX = []byte(pipeline.Document(fragment))
	}

	return result, nil
}
