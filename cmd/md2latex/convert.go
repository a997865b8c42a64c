package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"

	md2latex "github.com/alnah/go-md2latex"
	"github.com/alnah/go-md2latex/internal/config"
	"github.com/alnah/go-md2latex/internal/fileutil"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput            = errors.New("no input specified")
	ErrReadMarkdown       = errors.New("failed to read markdown file")
	ErrWriteLatex         = errors.New("failed to write LaTeX file")
	ErrInvalidExtension   = errors.New("file must have .md or .markdown extension")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// maxWorkers caps the parallel worker count.
const maxWorkers = 32

// CLIConverter is the interface for the conversion library.
type CLIConverter interface {
	Convert(ctx context.Context, input md2latex.Input) (*md2latex.ConvertResult, error)
}

// Compile-time interface implementation check.
var _ CLIConverter = (*md2latex.Converter)(nil)

// FileToConvert represents a single file to process.
type FileToConvert struct {
	InputPath  string
	OutputPath string
}

// ConversionResult holds the outcome of a single conversion.
type ConversionResult struct {
	InputPath  string
	OutputPath string
	Err        error
	Duration   time.Duration
}

// conversionParams groups per-run output settings shared across files.
type conversionParams struct {
	fragment         bool
	preprocessOnly   bool
	skipIntermediate bool
}

// runConvert orchestrates the conversion process.
func runConvert(ctx context.Context, positionalArgs []string, flags *convertFlags, env *Environment) error {
	if err := validateWorkers(flags.workers); err != nil {
		return err
	}

	cfg := config.DefaultConfig()
	var err error
	if flags.common.config != "" {
		cfg, err = config.LoadConfig(flags.common.config)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
	}

	// CLI flags override config values.
	mergeFlags(flags, cfg)

	inputPath, err := resolveInputPath(positionalArgs, cfg)
	if err != nil {
		return err
	}

	outputDir := resolveOutputDir(flags.output, cfg)

	files, err := discoverFiles(inputPath, outputDir)
	if err != nil {
		return fmt.Errorf("discovering files: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("no markdown files found in %s", inputPath)
	}

	var opts []md2latex.Option
	if cfg.Macros.BasePath != "" {
		opts = append(opts, md2latex.WithMacroPath(cfg.Macros.BasePath))
	}
	if cfg.Macros.Wrap != "" {
		opts = append(opts, md2latex.WithWrapCommand(cfg.Macros.Wrap))
	}

	conv, err := md2latex.NewConverter(opts...)
	if err != nil {
		return err
	}

	params := &conversionParams{
		fragment:         flags.modes.fragment,
		preprocessOnly:   flags.modes.preprocessOnly,
		skipIntermediate: cfg.Output.SkipIntermediate,
	}

	workers := resolveWorkers(flags.workers)
	results := convertBatch(ctx, conv, files, workers, params, env)

	failedCount := printResults(results, flags.common.quiet, flags.common.verbose, env)
	if failedCount > 0 {
		return fmt.Errorf("%d conversion(s) failed", failedCount)
	}
	return nil
}

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(flags *convertFlags, cfg *config.Config) {
	if flags.macros.basePath != "" {
		cfg.Macros.BasePath = flags.macros.basePath
	}
	if flags.macros.wrap != "" {
		cfg.Macros.Wrap = flags.macros.wrap
	}
	if flags.modes.noIntermediate {
		cfg.Output.SkipIntermediate = true
	}
}

// resolveInputPath determines the input path from args or config.
func resolveInputPath(args []string, cfg *config.Config) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if cfg.Input.DefaultDir != "" {
		return cfg.Input.DefaultDir, nil
	}
	return "", ErrNoInput
}

// resolveOutputDir determines the output directory from flag or config.
func resolveOutputDir(flagOutput string, cfg *config.Config) string {
	if flagOutput != "" {
		return flagOutput
	}
	return cfg.Output.DefaultDir
}

// resolveWorkers resolves the worker count, 0 meaning one per CPU.
func resolveWorkers(n int) int {
	if n == 0 {
		n = runtime.GOMAXPROCS(0)
	}
	if n > maxWorkers {
		n = maxWorkers
	}
	return n
}

// validateWorkers checks that the worker count is within valid bounds.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrInvalidWorkerCount, n)
	}
	if n > maxWorkers {
		return fmt.Errorf("%w: %d (maximum is %d)", ErrInvalidWorkerCount, n, maxWorkers)
	}
	return nil
}

// discoverFiles finds all markdown files to convert.
func discoverFiles(inputPath, outputDir string) ([]FileToConvert, error) {
	info, err := os.Stat(inputPath)
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		if !fileutil.IsMarkdown(inputPath) {
			return nil, fmt.Errorf("%w: got %q", ErrInvalidExtension, filepath.Ext(inputPath))
		}
		outPath := resolveOutputPath(inputPath, outputDir, "")
		return []FileToConvert{{InputPath: inputPath, OutputPath: outPath}}, nil
	}

	var files []FileToConvert
	err = filepath.WalkDir(inputPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}
		if d.IsDir() || !fileutil.IsMarkdown(path) {
			return nil
		}
		outPath := resolveOutputPath(path, outputDir, inputPath)
		files = append(files, FileToConvert{InputPath: path, OutputPath: outPath})
		return nil
	})

	return files, err
}

// resolveOutputPath determines the LaTeX output path for a markdown file.
func resolveOutputPath(inputPath, outputDir, baseInputDir string) string {
	base := fileutil.ReplaceExt(filepath.Base(inputPath), ".tex")

	if outputDir == "" {
		return filepath.Join(filepath.Dir(inputPath), base)
	}

	if strings.HasSuffix(outputDir, ".tex") {
		return outputDir
	}

	if baseInputDir != "" {
		relPath, err := filepath.Rel(baseInputDir, inputPath)
		if err == nil {
			return filepath.Join(outputDir, filepath.Dir(relPath), base)
		}
	}

	return filepath.Join(outputDir, base)
}

// convertBatch processes files concurrently with a bounded worker set.
func convertBatch(ctx context.Context, conv CLIConverter, files []FileToConvert, workers int, params *conversionParams, env *Environment) []ConversionResult {
	if workers > len(files) {
		workers = len(files)
	}

	results := make([]ConversionResult, len(files))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = convertFile(ctx, conv, files[i], params, env)
			}
		}()
	}

	for i := range files {
		select {
		case <-ctx.Done():
			results[i] = ConversionResult{
				InputPath:  files[i].InputPath,
				OutputPath: files[i].OutputPath,
				Err:        ctx.Err(),
			}
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()

	return results
}

// convertFile converts a single markdown file and writes its outputs.
func convertFile(ctx context.Context, conv CLIConverter, f FileToConvert, params *conversionParams, env *Environment) ConversionResult {
	start := env.Now()
	result := ConversionResult{InputPath: f.InputPath, OutputPath: f.OutputPath}

	content, err := os.ReadFile(f.InputPath) // #nosec G304 -- user-provided path
	if err != nil {
		result.Err = fmt.Errorf("%w: %v", ErrReadMarkdown, err)
		return result
	}

	out, err := conv.Convert(ctx, md2latex.Input{
		Markdown:       string(content),
		Fragment:       params.fragment,
		PreprocessOnly: params.preprocessOnly,
	})
	if err != nil {
		result.Err = fmt.Errorf("converting %s: %w", f.InputPath, err)
		return result
	}

	if err := os.MkdirAll(filepath.Dir(f.OutputPath), dirPermissions); err != nil {
		result.Err = fmt.Errorf("%w: %v", ErrWriteLatex, err)
		return result
	}

	if params.preprocessOnly || !params.skipIntermediate {
		interPath := fileutil.IntermediatePath(f.OutputPath)
		if err := os.WriteFile(interPath, out.Preprocessed, filePermissions); err != nil {
			result.Err = fmt.Errorf("%w: %v", ErrWriteLatex, err)
			return result
		}
	}

	if !params.preprocessOnly {
		if err := os.WriteFile(f.OutputPath, out.LaTeX, filePermissions); err != nil {
			result.Err = fmt.Errorf("%w: %v", ErrWriteLatex, err)
			return result
		}
	}

	result.Duration = env.Now().Sub(start)
	return result
}

// printResults reports conversion outcomes and returns the failure count.
func printResults(results []ConversionResult, quiet, verbose bool, env *Environment) int {
	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			fmt.Fprintf(env.Stderr, "FAIL %s: %v\n", r.InputPath, r.Err)
			continue
		}
		if quiet {
			continue
		}
		if verbose {
			fmt.Fprintf(env.Stdout, "ok %s -> %s (%s)\n", r.InputPath, r.OutputPath, r.Duration.Round(time.Millisecond))
		} else {
			fmt.Fprintf(env.Stdout, "ok %s -> %s\n", r.InputPath, r.OutputPath)
		}
	}
	return failed
}
