package cmd

import (
	"errors"
	"fmt"
	"testing"
)

func TestContextError_Error(t *testing.T) {
	cause := errors.New("cause")

	tests := []struct {
		name string
		err  *ContextError
		want string
	}{
		{"op and path", &ContextError{Op: "loading rules", Path: "r.yaml", Err: cause}, "loading rules: r.yaml: cause"},
		{"op only", &ContextError{Op: "loading rules", Err: cause}, "loading rules: cause"},
		{"path only", &ContextError{Path: "r.yaml", Err: cause}, "r.yaml: cause"},
		{"bare", &ContextError{Err: cause}, "cause"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestContextError_Unwrap(t *testing.T) {
	cause := errors.New("cause")
	err := &ContextError{Op: "op", Err: cause}

	if !errors.Is(err, cause) {
		t.Error("errors.Is should reach the cause")
	}
}

func TestExitCodeFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, 0},
		{"plain error", errors.New("x"), 1},
		{"validation failure", &ValidationFailedError{Critical: 1}, 2},
		{"wrapped validation failure", fmt.Errorf("outer: %w", &ValidationFailedError{Critical: 1}), 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExitCodeFromError(tt.err); got != tt.want {
				t.Errorf("ExitCodeFromError() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestFormatError(t *testing.T) {
	got := FormatError(errors.New("something broke"))
	if got != "memocheck: something broke\n" {
		t.Errorf("FormatError() = %q", got)
	}
}
