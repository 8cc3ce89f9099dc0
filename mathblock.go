package tex2gfm

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
)

// Precompiled regex patterns for performance.
var (
	// Display math span, delimiters and surrounding whitespace excluded
	// from the captured body
	displayMath = regexp.MustCompile(`(?s)\$\$\s*(.*?)\s*\$\$`)

	// \label{...} command inside a math body
	labelCommand = regexp.MustCompile(`\\label\{([^}]+)\}`)
)

// rewriteMathBlocks replaces every $$...$$ span with a fenced ```math
// block. A labeled span additionally gets an <a id="N"></a> anchor line
// and a rendered equation number per opts. Blank lines are inserted
// around the fence so it stays block-level even when the $$ appeared
// mid-paragraph.
func rewriteMathBlocks(content string, labels *LabelMap, opts *LabelOptions) string {
	return displayMath.ReplaceAllStringFunc(content, func(span string) string {
		body := strings.TrimSpace(displayMath.FindStringSubmatch(span)[1])

		var name string
		if m := labelCommand.FindStringSubmatch(body); m != nil {
			name = m[1]
		}
		body = strings.TrimSpace(labelCommand.ReplaceAllString(body, ""))

		number, labeled := 0, false
		if name != "" {
			number, labeled = labels.Number(name)
		}

		var inject, pLine string
		if labeled {
			switch opts.Style {
			case LabelStyleTag:
				inject = fmt.Sprintf(`\tag{%d}`, number)
			case LabelStyleQuad:
				inject = strings.Repeat(`\qquad`, opts.QuadCount) + fmt.Sprintf(`\text{(%d)}`, number)
			case LabelStyleP:
				pLine = fmt.Sprintf(`<p align="right">(%d)</p>`, number) + "\n"
			}
		}
		if inject != "" {
			body = injectBeforeEnd(body, inject)
		}

		parts := []string{""}
		if labeled {
			parts = append(parts, fmt.Sprintf(`<a id="%d"></a>`, number))
		}
		if pLine != "" {
			parts = append(parts, pLine)
		}
		parts = append(parts, "```math", body, "```", "")
		return strings.Join(parts, "\n")
	})
}

// injectBeforeEnd inserts line into body just above the last \end{...}
// line (so \tag and \qquad land inside aligned/gathered environments),
// or appends it as the final line when no environment is present.
func injectBeforeEnd(body, line string) string {
	lines := strings.Split(body, "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if strings.Contains(lines[i], `\end{`) {
			lines = slices.Insert(lines, i, line)
			return strings.Join(lines, "\n")
		}
	}
	return body + "\n" + line
}
