package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	flag "github.com/spf13/pflag"

	tex2gfm "github.com/alnah/go-tex2gfm"
	"github.com/alnah/go-tex2gfm/internal/config"
	"github.com/alnah/go-tex2gfm/internal/fileutil"
)

// Sentinel errors for CLI operations.
var (
	ErrReadInput   = errors.New("failed to read input")
	ErrWriteOutput = errors.New("failed to write output")
	ErrTooManyArgs = errors.New("expected at most one input file")
)

// outputFilePermissions is rw-r--r--: owner read+write, others read.
const outputFilePermissions = 0o644

// envConfigPath names the environment variable that supplies a config
// file path when --config is not given.
const envConfigPath = "TEX2GFM_CONFIG"

// Converter is the interface for the rewriting service.
type Converter interface {
	Convert(ctx context.Context, input tex2gfm.Input) (*tex2gfm.ConvertResult, error)
}

// run parses arguments, reads the input document, and delegates to the
// rewriting service. The transformed document is written in full only
// after the whole pipeline succeeds; a failed run produces no output.
func run(ctx context.Context, args []string, env *Environment, svc Converter) error {
	flags, positional, fs, err := parseFlags(args)
	if errors.Is(err, flag.ErrHelp) {
		printUsage(env.Stdout)
		return nil
	}
	if err != nil {
		return err
	}

	if flags.version {
		fmt.Fprintln(env.Stdout, "tex2gfm "+Version)
		return nil
	}

	cfg, err := resolveConfig(flags, env)
	if err != nil {
		return err
	}

	labelOpts, refOpts, err := buildOptions(flags, fs, cfg)
	if err != nil {
		return err
	}

	markdown, err := readInput(positional, cfg, env)
	if err != nil {
		return err
	}

	result, err := svc.Convert(ctx, tex2gfm.Input{
		Markdown: markdown,
		Labels:   labelOpts,
		Refs:     refOpts,
	})
	if err != nil {
		return err
	}

	return writeOutput(flags.output, result.Markdown, env)
}

// resolveConfig loads the config file named by --config or the
// TEX2GFM_CONFIG environment variable, falling back to defaults.
func resolveConfig(flags *cliFlags, env *Environment) (*config.Config, error) {
	path := flags.config
	if path == "" {
		path = env.Getenv(envConfigPath)
	}
	if path == "" {
		return config.DefaultConfig(), nil
	}
	return config.LoadConfig(path)
}

// buildOptions merges config defaults with explicitly-set flags.
// Flags set on the command line win; config fills the rest.
func buildOptions(flags *cliFlags, fs *flag.FlagSet, cfg *config.Config) (*tex2gfm.LabelOptions, *tex2gfm.RefOptions, error) {
	styleSpec := cfg.Labels.Style
	if styleSpec == "" || fs.Changed("label-type") {
		styleSpec = flags.labelType
	}
	labelOpts, err := tex2gfm.ParseLabelStyle(styleSpec)
	if err != nil {
		return nil, nil, err
	}

	refOpts := &tex2gfm.RefOptions{
		RemoveParens:     cfg.Refs.RemoveParens,
		KeepLinkBrackets: cfg.Refs.KeepLinkBrackets,
	}
	if fs.Changed("remove-parens") {
		refOpts.RemoveParens = flags.removeParens
	}
	if fs.Changed("keep-link-brackets") {
		refOpts.KeepLinkBrackets = flags.keepLinkBrackets
	}

	return labelOpts, refOpts, nil
}

// readInput reads the whole document from the positional file argument,
// the config's default path, or standard input.
func readInput(positional []string, cfg *config.Config, env *Environment) (string, error) {
	if len(positional) > 1 {
		return "", fmt.Errorf("%w: got %d", ErrTooManyArgs, len(positional))
	}

	path := cfg.Input.DefaultPath
	if len(positional) == 1 {
		path = positional[0]
	}

	if path == "" {
		content, err := io.ReadAll(env.Stdin)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrReadInput, err)
		}
		return string(content), nil
	}

	if err := fileutil.ValidateMarkdownExtension(path); err != nil {
		return "", err
	}

	content, err := os.ReadFile(path) // #nosec G304 -- path comes from the user's own argument
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrReadInput, err)
	}
	return string(content), nil
}

// writeOutput emits the transformed document verbatim, to stdout or to
// the -o path.
func writeOutput(path, markdown string, env *Environment) error {
	if path == "" {
		if _, err := io.WriteString(env.Stdout, markdown); err != nil {
			return fmt.Errorf("%w: %v", ErrWriteOutput, err)
		}
		return nil
	}
	if err := os.WriteFile(path, []byte(markdown), outputFilePermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	return nil
}
