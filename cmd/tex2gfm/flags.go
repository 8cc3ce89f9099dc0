package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// ErrInvalidFlag wraps pflag parse failures so they map to a usage exit.
var ErrInvalidFlag = errors.New("invalid flag")

// cliFlags holds all flags for the CLI.
type cliFlags struct {
	labelType        string
	removeParens     bool
	keepLinkBrackets bool
	config           string
	output           string
	version          bool
}

// parseFlags parses CLI arguments (excluding the program name).
// It returns the parsed flags, the positional arguments, and the FlagSet
// so callers can distinguish explicitly-set flags from defaults.
func parseFlags(args []string) (*cliFlags, []string, *flag.FlagSet, error) {
	f := &cliFlags{}
	fs := flag.NewFlagSet("tex2gfm", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&f.labelType, "label-type", "tag",
		`how \label{...} renders: tag, quadd:<n>, or p`)
	fs.BoolVar(&f.removeParens, "remove-parens", false,
		"remove parentheses around reference links")
	fs.BoolVar(&f.keepLinkBrackets, "keep-link-brackets", false,
		"use [N](#N) instead of [[N](#N)] in references")
	fs.StringVarP(&f.config, "config", "c", "", "config file path")
	fs.StringVarP(&f.output, "output", "o", "", "output file (default stdout)")
	fs.BoolVar(&f.version, "version", false, "show version information")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, nil, nil, err
		}
		return nil, nil, nil, fmt.Errorf("%w: %v", ErrInvalidFlag, err)
	}

	return f, fs.Args(), fs, nil
}
