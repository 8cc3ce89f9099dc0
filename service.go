package tex2gfm

import (
	"context"
	"fmt"
)

// Service orchestrates the Markdown rewriting pipeline.
type Service struct {
	cfg serviceConfig
}

// New creates a Service with default configuration.
// Use options to customize behavior (e.g., WithMaxInputSize).
func New(opts ...Option) *Service {
	s := &Service{
		cfg: serviceConfig{maxInputSize: defaultMaxInputSize},
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Convert runs the full pipeline and returns the rewritten document.
// The result is a pure function of the input and options: repeated runs
// over the same input produce byte-identical output. The context is
// checked between stages; the work itself is synchronous and in-memory.
func (s *Service) Convert(ctx context.Context, input Input) (*ConvertResult, error) {
	if err := s.validateInput(input); err != nil {
		return nil, err
	}

	labelOpts := input.Labels
	if labelOpts == nil {
		labelOpts = DefaultLabelOptions()
	}
	refOpts := input.Refs
	if refOpts == nil {
		refOpts = &RefOptions{}
	}

	content := normalizeLineEndings(input.Markdown)

	// Read-only pass: number every label at its first textual occurrence.
	// All rewriting stages consume this mapping.
	labels := collectLabels(content)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	content = rewriteMathBlocks(content, labels, labelOpts)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	// Display math is gone; remaining lone $...$ spans are unambiguous.
	content = rewriteInlineMath(content)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	content = rewriteReferences(content, labels, refOpts)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	return &ConvertResult{Markdown: content, Labels: labels}, nil
}

// validateInput checks size limits and option validity before any
// transformation begins. Empty input is valid: a filter emits an empty
// document.
func (s *Service) validateInput(input Input) error {
	if len(input.Markdown) > s.cfg.maxInputSize {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLarge, len(input.Markdown), s.cfg.maxInputSize)
	}
	return input.Labels.Validate()
}
