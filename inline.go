package tex2gfm

import "regexp"

// Inline math span. Runs only after display math has been rewritten, so
// every remaining $...$ pair is unambiguous.
var inlineMath = regexp.MustCompile(`(?s)\$(.*?)\$`)

// rewriteInlineMath converts $body$ spans to GitHub's $`body`$ syntax.
// No label or reference processing happens on inline spans.
func rewriteInlineMath(content string) string {
	return inlineMath.ReplaceAllString(content, "$$`${1}`$$")
}
