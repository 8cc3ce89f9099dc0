// Package tex2gfm rewrites Pandoc-generated Markdown (from LaTeX sources)
// into Markdown that renders correctly on GitHub.
//
// # Quick Start
//
// Create a service and convert a document:
//
//	svc := tex2gfm.New()
//	result, err := svc.Convert(ctx, tex2gfm.Input{
//	    Markdown: content,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.Stdout.WriteString(result.Markdown)
//
// The result holds the rewritten document (result.Markdown) and the
// equation numbering that was applied (result.Labels).
//
// # Rewriting Pipeline
//
// Conversion runs a fixed sequence of whole-document passes:
//
//  1. Line-ending normalization (CRLF/CR to LF)
//  2. Label collection: every equation label is assigned a sequential
//     number in order of first appearance
//  3. Display math: $$...$$ becomes a fenced ```math block with an HTML
//     anchor and a rendered equation number
//  4. Inline math: $...$ becomes GitHub's $`...`$ syntax
//  5. Cross-references: Pandoc HTML anchors, raw \ref/\eqref commands,
//     and bare label mentions become numeric Markdown links
//
// Label numbering needs the whole document (a reference may precede its
// declaration), so input is buffered in memory rather than streamed.
//
// # Configuration
//
// Per-conversion options are passed via Input:
//
//	result, err := svc.Convert(ctx, tex2gfm.Input{
//	    Markdown: content,
//	    Labels:   &tex2gfm.LabelOptions{Style: tex2gfm.LabelStyleP},
//	    Refs:     &tex2gfm.RefOptions{RemoveParens: true},
//	})
//
// Use ParseLabelStyle to parse CLI-style specs such as "tag", "p", or
// "quadd:2".
//
// # Input Contract
//
// Input is expected to be the output of
// "pandoc --from=latex --to=gfm+tex_math_dollars". Text that matches no
// recognized pattern passes through unchanged; the pipeline degrades
// gracefully on arbitrary Markdown rather than failing.
package tex2gfm
