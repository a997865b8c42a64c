package md2latex_test

import (
	"context"
	"fmt"
	"strings"

	md2latex "github.com/alnah/go-md2latex"
)

// Example demonstrates basic markdown to LaTeX conversion.
func Example() {
	conv, err := md2latex.NewConverter()
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	result, err := conv.Convert(context.Background(), md2latex.Input{
		Markdown: "# Analysis Notes\n\nLet `epsilon` be arbitrary.",
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	if strings.Contains(string(result.LaTeX), "\\varepsilon") {
		fmt.Println("LaTeX generated successfully")
	}
	// Output: LaTeX generated successfully
}

// Example_preprocessOnly demonstrates inspecting the intermediate text
// the parser will see, with explicit paragraph break markers inserted.
func Example_preprocessOnly() {
	conv, err := md2latex.NewConverter()
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	result, err := conv.Convert(context.Background(), md2latex.Input{
		Markdown:       "first paragraph\n\nsecond paragraph",
		PreprocessOnly: true,
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(string(result.Preprocessed))
	// Output:
	// first paragraph
	//
	// <!-- -->
	// \par
	// <!-- -->
	//
	// second paragraph
}

// Example_fragment demonstrates emitting a LaTeX body without the
// standalone document preamble, for inclusion in a larger document.
func Example_fragment() {
	conv, err := md2latex.NewConverter()
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	result, err := conv.Convert(context.Background(), md2latex.Input{
		Markdown: "The map `f : X -> Y` is continuous.",
		Fragment: true,
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	latex := string(result.LaTeX)
	if !strings.Contains(latex, "\\documentclass") && strings.Contains(latex, "\\rightarrow") {
		fmt.Println("fragment generated without preamble")
	}
	// Output: fragment generated without preamble
}
