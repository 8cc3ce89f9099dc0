package main

import (
	"fmt"
	"io"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: tex2gfm [flags] [input_file]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Rewrite Pandoc-generated Markdown (from LaTeX) so math, equation")
	fmt.Fprintln(w, "labels, and cross-references render on GitHub.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input_file    Markdown file produced by:")
	fmt.Fprintln(w, "                pandoc --from=latex --to=gfm+tex_math_dollars")
	fmt.Fprintln(w, "                Omit to read from standard input.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  --label-type <style>      How \\label{...} renders (default: tag)")
	fmt.Fprintln(w, "                              tag       \\tag{N} inside the math")
	fmt.Fprintln(w, "                              quadd:<n> n \\qquad then \\text{(N)} inside the math")
	fmt.Fprintln(w, "                              p         <p align=\"right\">(N)</p> above the block")
	fmt.Fprintln(w, "  --remove-parens           Remove parentheses around reference links")
	fmt.Fprintln(w, "  --keep-link-brackets      Use [N](#N) instead of [[N](#N)]")
	fmt.Fprintln(w, "  -c, --config <path>       Config file (or TEX2GFM_CONFIG env var)")
	fmt.Fprintln(w, "  -o, --output <path>       Write to file instead of stdout")
	fmt.Fprintln(w, "      --version             Show version information")
	fmt.Fprintln(w, "  -h, --help                Show this help")
}
