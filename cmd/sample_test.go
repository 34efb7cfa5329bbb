package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

// fakeSampleRunner records the directory it was asked to populate.
type fakeSampleRunner struct {
	paths   []string
	err     error
	lastDir string
}

func (f *fakeSampleRunner) Write(_ context.Context, dir string) ([]string, error) {
	f.lastDir = dir
	return f.paths, f.err
}

func TestSampleCmd_DefaultsToCurrentDirectory(t *testing.T) {
	runner := &fakeSampleRunner{paths: []string{"test_memo_valid.docx", "test_memo_invalid.docx"}}
	var stdout, stderr strings.Builder

	code := RunCLI(NewSampleCmd(runner), nil, &stdout, &stderr)

	if code != 0 {
		t.Fatalf("exit code = %d; stderr: %s", code, stderr.String())
	}
	if runner.lastDir != "." {
		t.Errorf("dir = %q, want .", runner.lastDir)
	}
	if !strings.Contains(stdout.String(), "Wrote test_memo_valid.docx") {
		t.Errorf("stdout = %q", stdout.String())
	}
}

func TestSampleCmd_ExplicitDirectory(t *testing.T) {
	runner := &fakeSampleRunner{paths: []string{"out/test_memo_valid.docx", "out/test_memo_invalid.docx"}}
	var stdout, stderr strings.Builder

	code := RunCLI(NewSampleCmd(runner), []string{"out"}, &stdout, &stderr)

	if code != 0 {
		t.Fatalf("exit code = %d; stderr: %s", code, stderr.String())
	}
	if runner.lastDir != "out" {
		t.Errorf("dir = %q, want out", runner.lastDir)
	}
}

func TestSampleCmd_JSONOutput(t *testing.T) {
	runner := &fakeSampleRunner{paths: []string{"a.docx", "b.docx"}}
	var stdout strings.Builder

	code := RunCLI(NewSampleCmd(runner), []string{"--json"}, &stdout, &strings.Builder{})

	if code != 0 {
		t.Fatalf("exit code = %d", code)
	}
	var resp struct {
		Files []string `json:"files"`
	}
	if err := json.Unmarshal([]byte(stdout.String()), &resp); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, stdout.String())
	}
	if len(resp.Files) != 2 {
		t.Errorf("files = %v", resp.Files)
	}
}

func TestSampleCmd_WriteErrorExitsOne(t *testing.T) {
	runner := &fakeSampleRunner{err: errors.New("disk full")}
	var stdout, stderr strings.Builder

	code := RunCLI(NewSampleCmd(runner), []string{"out"}, &stdout, &stderr)

	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if !strings.Contains(stderr.String(), "writing samples: out: disk full") {
		t.Errorf("stderr = %q", stderr.String())
	}
}
