package docx

import (
	"archive/zip"
	"context"
	"encoding/xml"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/memotools/memocheck/internal/domain"
)

// Required package parts for a minimal valid .docx archive.
const (
	contentTypesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types"><Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/><Default Extension="xml" ContentType="application/xml"/><Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/></Types>`

	relsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"><Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/></Relationships>`
)

// Writer builds minimal .docx files from the document model. It exists
// for the sample generator and for round-trip tests of the Reader.
type Writer struct{}

// Write serializes doc as a .docx archive at path.
func (w *Writer) Write(ctx context.Context, path string, doc domain.Document) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	zw := zip.NewWriter(f)
	parts := []struct {
		name    string
		content string
	}{
		{"[Content_Types].xml", contentTypesXML},
		{"_rels/.rels", relsXML},
		{documentPart, documentXML(doc)},
	}
	for _, part := range parts {
		pw, err := zw.Create(part.name)
		if err != nil {
			f.Close()
			return fmt.Errorf("adding %s to %s: %w", part.name, path, err)
		}
		if _, err := pw.Write([]byte(part.content)); err != nil {
			f.Close()
			return fmt.Errorf("writing %s to %s: %w", part.name, path, err)
		}
	}
	if err := zw.Close(); err != nil {
		f.Close()
		return fmt.Errorf("finalizing %s: %w", path, err)
	}
	return f.Close()
}

// documentXML renders the document body: one w:p per paragraph, followed
// by a sectPr carrying the page margins when present.
func documentXML(doc domain.Document) string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`)
	b.WriteString("\n")
	b.WriteString(`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`)

	for _, text := range doc.Paragraphs {
		if text == "" {
			b.WriteString(`<w:p/>`)
			continue
		}
		b.WriteString(`<w:p><w:r><w:t xml:space="preserve">`)
		_ = xml.EscapeText(&b, []byte(text))
		b.WriteString(`</w:t></w:r></w:p>`)
	}

	if m := doc.Margins; m != nil {
		b.WriteString(`<w:sectPr><w:pgMar`)
		for _, attr := range []struct {
			name  string
			value float64
		}{
			{"top", m.Top},
			{"right", m.Right},
			{"bottom", m.Bottom},
			{"left", m.Left},
		} {
			b.WriteString(` w:`)
			b.WriteString(attr.name)
			b.WriteString(`="`)
			b.WriteString(strconv.Itoa(int(math.Round(attr.value * twipsPerInch))))
			b.WriteString(`"`)
		}
		b.WriteString(`/></w:sectPr>`)
	}

	b.WriteString(`</w:body></w:document>`)
	return b.String()
}
