// Package docx projects .docx files onto the engine's document model:
// an ordered paragraph sequence plus first-section page margins. The
// engine itself never sees this package; it only sees the model.
package docx

import (
	"archive/zip"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/text/unicode/norm"

	"github.com/memotools/memocheck/internal/domain"
)

// twipsPerInch converts the twentieths-of-a-point units used by
// wordprocessingml page metrics.
const twipsPerInch = 1440

const documentPart = "word/document.xml"

// Reader parses .docx files. The checks only need paragraph text and the
// w:pgMar margins, so it reads word/document.xml with a streaming token
// scan instead of going through a full document library.
type Reader struct {
	log *zap.Logger
}

// NewReader creates a Reader. A nil logger disables debug output.
func NewReader(log *zap.Logger) *Reader {
	if log == nil {
		log = zap.NewNop()
	}
	return &Reader{log: log}
}

// Read opens the file at path as a .docx archive and extracts its
// paragraph sequence and first-section margins.
func (r *Reader) Read(ctx context.Context, path string) (domain.Document, error) {
	if err := ctx.Err(); err != nil {
		return domain.Document{}, err
	}

	zr, err := zip.OpenReader(path)
	if err != nil {
		return domain.Document{}, fmt.Errorf("opening %s: %w", path, err)
	}
	defer zr.Close()

	for _, f := range zr.File {
		if f.Name != documentPart {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return domain.Document{}, fmt.Errorf("opening %s in %s: %w", documentPart, path, err)
		}
		defer rc.Close()

		doc, err := parseDocumentXML(rc)
		if err != nil {
			return domain.Document{}, fmt.Errorf("%s: %w", path, err)
		}
		r.log.Debug("parsed document",
			zap.String("path", path),
			zap.Int("paragraphs", len(doc.Paragraphs)),
			zap.Bool("margins", doc.Margins != nil))
		return doc, nil
	}

	return domain.Document{}, fmt.Errorf("%s: missing %s", path, documentPart)
}

// parseDocumentXML scans a wordprocessingml body in one pass, collecting
// run text per paragraph and the first page-margin element encountered.
func parseDocumentXML(r io.Reader) (domain.Document, error) {
	dec := xml.NewDecoder(r)

	var (
		doc    domain.Document
		para   strings.Builder
		depth  int // nesting of w:p elements; tables nest paragraphs
		inText bool
	)

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return domain.Document{}, fmt.Errorf("parsing %s: %w", documentPart, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "p":
				if depth == 0 {
					para.Reset()
				}
				depth++
			case "t":
				inText = depth > 0
			case "tab":
				if depth > 0 {
					para.WriteByte('\t')
				}
			case "pgMar":
				if doc.Margins == nil {
					doc.Margins = marginsFromAttrs(t.Attr)
				}
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "p":
				if depth > 0 {
					depth--
					if depth == 0 {
						// NFC-normalize so anchor matching is stable across
						// producers that emit decomposed runes.
						doc.Paragraphs = append(doc.Paragraphs, norm.NFC.String(para.String()))
					}
				}
			case "t":
				inText = false
			}
		case xml.CharData:
			if inText {
				para.Write(t)
			}
		}
	}

	return doc, nil
}

// marginsFromAttrs converts a w:pgMar attribute list from twips to inches.
// Unparseable or absent values stay zero.
func marginsFromAttrs(attrs []xml.Attr) *domain.Margins {
	m := &domain.Margins{}
	for _, a := range attrs {
		v, err := strconv.ParseFloat(a.Value, 64)
		if err != nil {
			continue
		}
		inches := v / twipsPerInch
		switch a.Name.Local {
		case "top":
			m.Top = inches
		case "bottom":
			m.Bottom = inches
		case "left":
			m.Left = inches
		case "right":
			m.Right = inches
		}
	}
	return m
}
