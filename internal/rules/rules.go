// Package rules holds the closed-set tables and thresholds the checks
// match against. Adding a rank, branch, or month is a data change here,
// never a logic change in the engine.
package rules

import (
	"bytes"
	"fmt"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// Rules is the data side of the validator: token tables for the
// pattern-matching checks plus the numeric thresholds they apply.
type Rules struct {
	Months          []string `yaml:"months"`
	Ranks           []string `yaml:"ranks"`
	Branches        []string `yaml:"branches"`
	MarginInches    float64  `yaml:"margin_inches"`
	MarginTolerance float64  `yaml:"margin_tolerance"`
	DateWindow      int      `yaml:"date_window"`
	SignatureWindow int      `yaml:"signature_window"`
}

// Default returns the built-in rule tables.
func Default() Rules {
	return Rules{
		Months: []string{
			"January", "February", "March", "April", "May", "June",
			"July", "August", "September", "October", "November", "December",
		},
		// Longer spellings come before their abbreviations so the
		// alternation matches "Lt Col" rather than stopping at "Lt".
		Ranks: []string{
			"Colonel", "Lt Col", "Major", "Captain", "Lieutenant", "General",
			"Brig Gen", "Maj Gen", "Lt Gen", "Col", "Capt", "Lt", "Gen",
		},
		Branches:        []string{"USAF", "USSF"},
		MarginInches:    1.0,
		MarginTolerance: 0.1,
		DateWindow:      5,
		SignatureWindow: 4,
	}
}

// Load reads a YAML rules file and overlays any populated fields onto the
// defaults, so an override file only needs to name what it changes.
// Unknown fields are rejected.
func Load(path string) (Rules, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Rules{}, fmt.Errorf("reading rules file: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var overlay Rules
	if err := dec.Decode(&overlay); err != nil {
		return Rules{}, fmt.Errorf("parsing rules file %s: %w", path, err)
	}

	base := Default()
	if len(overlay.Months) > 0 {
		base.Months = overlay.Months
	}
	if len(overlay.Ranks) > 0 {
		base.Ranks = overlay.Ranks
	}
	if len(overlay.Branches) > 0 {
		base.Branches = overlay.Branches
	}
	if overlay.MarginInches != 0 {
		base.MarginInches = overlay.MarginInches
	}
	if overlay.MarginTolerance != 0 {
		base.MarginTolerance = overlay.MarginTolerance
	}
	if overlay.DateWindow != 0 {
		base.DateWindow = overlay.DateWindow
	}
	if overlay.SignatureWindow != 0 {
		base.SignatureWindow = overlay.SignatureWindow
	}
	return base, nil
}

// Patterns is the compiled form of Rules consumed by the checks.
type Patterns struct {
	// Date fully matches a trimmed "DD Month YYYY" line.
	Date *regexp.Regexp
	// Numbered captures the leading integer of a "N. " body paragraph.
	Numbered *regexp.Regexp
	// Signature matches a "Name, Rank, Branch" line anywhere in its text.
	Signature *regexp.Regexp
	// Tab matches a "Tab N" attachment entry at the start of a line.
	Tab *regexp.Regexp

	// Anchor locators, all case-insensitive and unanchored.
	MemorandumFor *regexp.Regexp
	From          *regexp.Regexp
	Subject       *regexp.Regexp
	Signed        *regexp.Regexp
	Attachments   *regexp.Regexp

	// Prefix-and-content checks applied after an anchor is located.
	// These are deliberately case-sensitive: locating tolerates case
	// drift, the format itself does not.
	FromContent    *regexp.Regexp
	SubjectContent *regexp.Regexp
}

// Compile builds the pattern set from the rule tables. Table tokens are
// quoted, so user-supplied rules cannot inject pattern syntax.
func (r Rules) Compile() Patterns {
	return Patterns{
		Date:      regexp.MustCompile(`^\d{1,2}\s+(?:` + alternation(r.Months) + `)\s+\d{4}$`),
		Numbered:  regexp.MustCompile(`^(\d+)\.\s+`),
		Signature: regexp.MustCompile(`.+,\s*(?:` + alternation(r.Ranks) + `),\s*(?:` + alternation(r.Branches) + `)`),
		Tab:       regexp.MustCompile(`^Tab\s+\d+`),

		MemorandumFor: regexp.MustCompile(`(?i)MEMORANDUM FOR`),
		From:          regexp.MustCompile(`(?i)FROM:`),
		Subject:       regexp.MustCompile(`(?i)SUBJECT:`),
		Signed:        regexp.MustCompile(`(?i)//SIGNED//`),
		Attachments:   regexp.MustCompile(`(?i)Attachments?:`),

		FromContent:    regexp.MustCompile(`^FROM:\s+.+`),
		SubjectContent: regexp.MustCompile(`^SUBJECT:\s+.+`),
	}
}

// alternation joins tokens into a quoted regexp alternation, preserving
// table order.
func alternation(tokens []string) string {
	quoted := make([]string, len(tokens))
	for i, tok := range tokens {
		quoted[i] = regexp.QuoteMeta(tok)
	}
	return strings.Join(quoted, "|")
}
