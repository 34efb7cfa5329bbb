package domain

// Document is a memorandum projected onto the model the checks consume:
// an ordered paragraph sequence plus optional first-section page margins.
// It is read-only input, produced fresh for each validation run.
type Document struct {
	// Paragraphs holds one entry per paragraph in document order. Entries
	// may be empty strings for blank paragraphs. Indexes are 0-based;
	// issues surface them as 1-based paragraph numbers.
	Paragraphs []string
	// Margins is nil when the source carries no section metadata.
	Margins *Margins
}

// Margins holds the first section's page margins in inches.
type Margins struct {
	Top    float64
	Bottom float64
	Left   float64
	Right  float64
}
