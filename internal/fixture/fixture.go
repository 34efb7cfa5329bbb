// Package fixture generates sample memoranda for manually exercising the
// validator: one that satisfies every check and one that trips most of
// them.
package fixture

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/memotools/memocheck/internal/domain"
)

// Output filenames within the target directory.
const (
	ValidName   = "test_memo_valid.docx"
	InvalidName = "test_memo_invalid.docx"
)

// DocWriter serializes a document to a .docx file.
type DocWriter interface {
	Write(ctx context.Context, path string, doc domain.Document) error
}

// Locker serializes fixture writes across processes.
type Locker interface {
	Do(ctx context.Context, fn func() error) error
}

// Generator writes the sample memoranda.
type Generator struct {
	writer DocWriter
	guard  Locker
}

// New creates a Generator.
func New(writer DocWriter, guard Locker) *Generator {
	return &Generator{writer: writer, guard: guard}
}

// Valid returns a memorandum that passes validation cleanly.
func Valid() domain.Document {
	return domain.Document{
		Paragraphs: []string{
			"12 March 2025",
			"",
			"MEMORANDUM FOR RECORD",
			"",
			"FROM: AFROTC/CC",
			"",
			"SUBJECT: Put Subject Here",
			"",
			"1. This memorandum provides guidance for formatting official correspondence.",
			"",
			"2. For questions regarding this memo, please use the training and questions channel.",
			"",
			"3. Additional information can be found in the attachments.",
			"",
			"//SIGNED//",
			"",
			"Snuff A. Brown, Colonel, USAF",
			"",
			"Commander",
			"",
			"Attachments:",
			"",
			"Tab 1",
			"",
			"Tab 2",
		},
		Margins: &domain.Margins{Top: 1.0, Bottom: 1.0, Left: 1.0, Right: 1.0},
	}
}

// Invalid returns a memorandum that trips the date, header, body,
// signature, attachments, and margin checks at once.
func Invalid() domain.Document {
	return domain.Document{
		Paragraphs: []string{
			"March 12, 2025", // US-style date, wrong format
			"",
			"MEMO FOR RECORD", // truncated header
			"",
			"FROM AFROTC/CC", // missing colon
			"",
			"SUBJECT: Testing",
			"",
			"This is paragraph one but not numbered.",
			"",
			"This is paragraph two but not numbered.",
			"",
			"//SIGNED//",
			"",
			"Snuff Brown", // missing rank and branch
			"",
			"Attachments:", // no tabs listed
		},
		Margins: &domain.Margins{Top: 1.5, Bottom: 1.0, Left: 0.75, Right: 1.0},
	}
}

// Write writes both sample memos into dir under the advisory lock and
// returns the paths written, valid first.
func (g *Generator) Write(ctx context.Context, dir string) ([]string, error) {
	outputs := []struct {
		name string
		doc  domain.Document
	}{
		{ValidName, Valid()},
		{InvalidName, Invalid()},
	}

	paths := make([]string, 0, len(outputs))
	err := g.guard.Do(ctx, func() error {
		for _, out := range outputs {
			path := filepath.Join(dir, out.name)
			if err := g.writer.Write(ctx, path, out.doc); err != nil {
				return fmt.Errorf("writing sample %s: %w", out.name, err)
			}
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return paths, nil
}
