// Package memo implements the memorandum rule engine: a fixed sequence of
// independent structural checks over a parsed document, aggregated into a
// pass/fail verdict. The engine knows nothing about document file formats;
// it consumes the paragraph-sequence model produced by a DocumentReader.
package memo

import (
	"context"
	"errors"
	"io/fs"
	"strings"

	"go.uber.org/zap"

	"github.com/memotools/memocheck/internal/domain"
	"github.com/memotools/memocheck/internal/rules"
)

// DocumentReader projects a document file onto the paragraph-sequence model.
type DocumentReader interface {
	Read(ctx context.Context, path string) (domain.Document, error)
}

// Engine runs the check sequence over parsed documents. It carries no
// state between runs; every run is a pure function of its input document.
type Engine struct {
	reader DocumentReader
	rules  rules.Rules
	pats   rules.Patterns
	log    *zap.Logger
}

// New creates an Engine with the given reader and rule tables. A nil
// logger disables debug output.
func New(reader DocumentReader, r rules.Rules, log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{reader: reader, rules: r, pats: r.Compile(), log: log}
}

// ValidateFile parses the document at path and validates it. File-level
// failures (wrong extension, missing or unreadable file) produce a single
// CRITICAL issue under the File section and skip the structural checks.
func (e *Engine) ValidateFile(ctx context.Context, path string) (*domain.Result, error) {
	if !strings.HasSuffix(path, ".docx") {
		return domain.NewResult([]domain.Issue{{
			Severity: domain.SeverityCritical,
			Section:  domain.SectionFile,
			Message:  "File must be a .docx document",
		}}), nil
	}

	doc, err := e.reader.Read(ctx, path)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		msg := "Error reading file: " + err.Error()
		if errors.Is(err, fs.ErrNotExist) {
			msg = "File not found: " + path
		}
		return domain.NewResult([]domain.Issue{{
			Severity: domain.SeverityCritical,
			Section:  domain.SectionFile,
			Message:  msg,
		}}), nil
	}

	return e.Validate(doc), nil
}

// Validate runs every check in its fixed order and derives the verdict.
// Later checks locate their own anchors rather than sharing state, so a
// check whose precondition is missing simply contributes no issues; it
// never aborts the rest of the run.
func (e *Engine) Validate(doc domain.Document) *domain.Result {
	var issues []domain.Issue
	for _, check := range []func(domain.Document) []domain.Issue{
		e.checkDate,
		e.checkMemorandumFor,
		e.checkFrom,
		e.checkSubject,
		e.checkBodyNumbering,
		e.checkSignature,
		e.checkAttachments,
		e.checkMargins,
	} {
		issues = append(issues, check(doc)...)
	}

	result := domain.NewResult(issues)
	e.log.Debug("validation run complete",
		zap.Int("paragraphs", len(doc.Paragraphs)),
		zap.Int("issues", len(result.Issues)),
		zap.Bool("passed", result.Passed))
	return result
}
