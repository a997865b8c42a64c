package main

import (
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func testEnv() (*Environment, *strings.Builder, *strings.Builder) {
	var stdout, stderr strings.Builder
	return &Environment{
		Now:    time.Now,
		Stdout: &stdout,
		Stderr: &stderr,
	}, &stdout, &stderr
}

func TestRun_NoArgs(t *testing.T) {
	t.Parallel()

	env, _, stderr := testEnv()
	if code := run(nil, env); code != ExitUsage {
		t.Errorf("run() = %d, want ExitUsage", code)
	}
	if !strings.Contains(stderr.String(), "Usage: md2latex") {
		t.Errorf("stderr = %q, want usage message", stderr.String())
	}
}

func TestRun_Version(t *testing.T) {
	t.Parallel()

	env, stdout, _ := testEnv()
	if code := run([]string{"version"}, env); code != ExitSuccess {
		t.Errorf("run(version) = %d, want ExitSuccess", code)
	}
	if !strings.Contains(stdout.String(), "md2latex") {
		t.Errorf("stdout = %q, want version line", stdout.String())
	}
}

func TestRun_Help(t *testing.T) {
	t.Parallel()

	env, stdout, _ := testEnv()
	if code := run([]string{"help", "convert"}, env); code != ExitSuccess {
		t.Errorf("run(help convert) = %d, want ExitSuccess", code)
	}
	if !strings.Contains(stdout.String(), "--macro-path") {
		t.Errorf("stdout = %q, want convert flags help", stdout.String())
	}
}

func TestRun_InvalidFlag(t *testing.T) {
	t.Parallel()

	env, _, _ := testEnv()
	if code := run([]string{"convert", "--bogus"}, env); code != ExitUsage {
		t.Errorf("run(--bogus) = %d, want ExitUsage", code)
	}
}

func TestRun_MissingInputFile(t *testing.T) {
	t.Parallel()

	env, _, stderr := testEnv()
	missing := filepath.Join(t.TempDir(), "missing.md")

	if code := run([]string{"convert", missing}, env); code != ExitIO {
		t.Errorf("run(missing input) = %d, want ExitIO\nstderr: %s", code, stderr.String())
	}
}

func TestRun_ImplicitConvert(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := writeMarkdown(t, dir, "notes.md", "# Notes")

	env, stdout, stderr := testEnv()
	if code := run([]string{input, "-o", filepath.Join(dir, "out")}, env); code != ExitSuccess {
		t.Fatalf("run(input) = %d, want ExitSuccess\nstderr: %s", code, stderr.String())
	}
	if !strings.Contains(stdout.String(), "ok ") {
		t.Errorf("stdout = %q, want success line", stdout.String())
	}
}
