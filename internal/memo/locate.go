package memo

import (
	"regexp"
	"strings"
)

// findParagraph returns the index of the first paragraph at or after start
// whose text matches re, or -1 when no paragraph matches. The scan is
// strictly forward; the first match always wins.
func findParagraph(paras []string, re *regexp.Regexp, start int) int {
	for i := start; i < len(paras); i++ {
		if re.MatchString(paras[i]) {
			return i
		}
	}
	return -1
}

// textAt returns the trimmed paragraph text at index, or "" when the
// index is out of range.
func textAt(paras []string, index int) string {
	if index < 0 || index >= len(paras) {
		return ""
	}
	return strings.TrimSpace(paras[index])
}
