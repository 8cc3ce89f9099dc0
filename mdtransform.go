package tex2gfm

import "regexp"

// Line ending normalization
var crlfOrCR = regexp.MustCompile(`\r\n?`)

// normalizeLineEndings converts \r\n and \r to \n. Every downstream
// pattern assumes \n line endings.
func normalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}
