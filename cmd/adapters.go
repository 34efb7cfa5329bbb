package cmd

import (
	"context"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/memotools/memocheck/internal/docx"
	"github.com/memotools/memocheck/internal/domain"
	"github.com/memotools/memocheck/internal/fixture"
	"github.com/memotools/memocheck/internal/lock"
	"github.com/memotools/memocheck/internal/memo"
	"github.com/memotools/memocheck/internal/rules"
)

// --- engineAdapter ---

// engineAdapter adapts memo.Engine to the ValidateRunner interface.
type engineAdapter struct {
	engine *memo.Engine
}

func (a *engineAdapter) Validate(ctx context.Context, path string) (*domain.Result, error) {
	return a.engine.ValidateFile(ctx, path)
}

// wireEngine builds the production validator: the docx reader behind the
// rule engine, with rule overrides from rulesPath when given.
func wireEngine(rulesPath string) (ValidateRunner, error) {
	r := rules.Default()
	if rulesPath != "" {
		var err error
		r, err = rules.Load(rulesPath)
		if err != nil {
			return nil, &ContextError{Op: "loading rules", Path: rulesPath, Err: err}
		}
	}

	log := newLogger()
	return &engineAdapter{engine: memo.New(docx.NewReader(log), r, log)}, nil
}

// wireSampleGenerator builds the production fixture generator, locked on
// a file inside the target directory.
func wireSampleGenerator(dir string) SampleRunner {
	guard := lock.NewFromPath(filepath.Join(dir, ".memocheck.lock"))
	return fixture.New(&docx.Writer{}, guard)
}

// newLogger returns a development logger to stderr when --verbose is set,
// otherwise a nop logger.
func newLogger() *zap.Logger {
	if !GetVerbose() {
		return zap.NewNop()
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{"stderr"}
	log, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return log
}
