package tex2gfm

import (
	"fmt"
	"regexp"
	"strconv"
)

// Precompiled regex patterns for performance.
var (
	// Raw \ref{...} or \eqref{...} that survived Pandoc
	texRef = regexp.MustCompile(`\\(?:eq)?ref\{([^}]+)\}`)

	// Pandoc cross-reference anchor, optionally wrapped in literal
	// parentheses:
	//   (<a href="#eq:x" data-reference-type="ref" data-reference="eq:x">[eq:x]</a>)
	// The label is taken from data-reference; the visible text is ignored.
	pandocRef = regexp.MustCompile(`(?i)(\()?<a\s+href="#[^"]*"\s+data-reference-type="(?:eq)?ref"\s+data-reference="([^"]+)"[^>]*>[^<]*</a>(\))?`)

	// Bare label mention in prose, word-boundary safe
	bareLabel = regexp.MustCompile(`\beq:[A-Za-z0-9_.-]+\b`)
)

// rewriteReferences converts every recognized cross-reference into a
// numeric Markdown link using the collected numbering. Shapes that do
// not resolve pass through untouched.
func rewriteReferences(content string, labels *LabelMap, opts *RefOptions) string {
	content = texRef.ReplaceAllStringFunc(content, func(ref string) string {
		name := texRef.FindStringSubmatch(ref)[1]
		number, ok := labels.Number(name)
		if !ok {
			return ref
		}
		return numericLink(number, opts.KeepLinkBrackets)
	})

	content = pandocRef.ReplaceAllStringFunc(content, func(ref string) string {
		match := pandocRef.FindStringSubmatch(ref)
		open, name, cls := match[1], match[2], match[3]
		number, ok := labels.Number(name)
		if !ok {
			return ref
		}
		link := numericLink(number, opts.KeepLinkBrackets)
		if opts.RemoveParens && open == "(" && cls == ")" {
			return link
		}
		// Parentheses that were matched but not removed stay as-is;
		// none are ever added.
		return open + link + cls
	})

	content = bareLabel.ReplaceAllStringFunc(content, func(name string) string {
		number, ok := labels.Number(name)
		if !ok {
			return name
		}
		return strconv.Itoa(number)
	})

	return content
}

// numericLink renders the Markdown link for an equation number:
// [[N](#N)] by default, [N](#N) when single brackets are requested.
func numericLink(number int, keepLinkBrackets bool) string {
	link := fmt.Sprintf("[%d](#%d)", number, number)
	if keepLinkBrackets {
		return link
	}
	return "[" + link + "]"
}
