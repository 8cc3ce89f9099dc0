package tex2gfm

import (
	"fmt"
	"strconv"
	"strings"
)

// Label style constants.
const (
	LabelStyleTag  = "tag"   // \tag{N} inside the math body
	LabelStyleQuad = "quadd" // \qquad... \text{(N)} inside the math body
	LabelStyleP    = "p"     // <p align="right">(N)</p> above the block
)

// LabelOptions configures how equation labels are rendered.
type LabelOptions struct {
	Style     string // "tag", "quadd", "p"
	QuadCount int    // number of \qquad repetitions, only used by "quadd"
}

// DefaultLabelOptions returns label options with default values.
func DefaultLabelOptions() *LabelOptions {
	return &LabelOptions{Style: LabelStyleTag}
}

// Validate checks that label options are valid.
// Returns nil if o is nil (nil means use defaults).
func (o *LabelOptions) Validate() error {
	if o == nil {
		return nil
	}
	switch o.Style {
	case LabelStyleTag, LabelStyleQuad, LabelStyleP:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLabelStyle, o.Style)
	}
	if o.QuadCount < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidQuadCount, o.QuadCount)
	}
	return nil
}

// ParseLabelStyle parses a CLI-style label spec: "tag", "p", or "quadd:<n>"
// where n is a non-negative integer.
func ParseLabelStyle(spec string) (*LabelOptions, error) {
	switch spec {
	case LabelStyleTag:
		return &LabelOptions{Style: LabelStyleTag}, nil
	case LabelStyleP:
		return &LabelOptions{Style: LabelStyleP}, nil
	}

	if suffix, ok := strings.CutPrefix(spec, LabelStyleQuad+":"); ok {
		n, err := strconv.Atoi(suffix)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("%w: %q", ErrInvalidQuadCount, suffix)
		}
		return &LabelOptions{Style: LabelStyleQuad, QuadCount: n}, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrInvalidLabelStyle, spec)
}

// RefOptions configures how cross-references are rendered.
type RefOptions struct {
	RemoveParens     bool // delete parentheses immediately enclosing a reference
	KeepLinkBrackets bool // render [N](#N) instead of [[N](#N)]
}

// Input contains conversion parameters.
type Input struct {
	Markdown string        // Pandoc-generated Markdown content
	Labels   *LabelOptions // Label rendering (optional, nil = tag style)
	Refs     *RefOptions   // Reference rendering (optional, nil = defaults)
}

// ConvertResult holds the output of a conversion.
type ConvertResult struct {
	Markdown string    // Rewritten document
	Labels   *LabelMap // Equation numbering applied to the document
}

// Option configures a Service.
type Option func(*Service)

// serviceConfig holds internal configuration for Service.
type serviceConfig struct {
	maxInputSize int
}

// defaultMaxInputSize caps input documents (default 16MB). Pandoc output
// for even book-length LaTeX stays well under this.
const defaultMaxInputSize = 16 << 20

// WithMaxInputSize sets the maximum accepted input size in bytes.
// Panics if n <= 0 (programmer error, similar to time.NewTicker).
func WithMaxInputSize(n int) Option {
	if n <= 0 {
		panic("tex2gfm: WithMaxInputSize must be positive")
	}
	return func(s *Service) {
		s.cfg.maxInputSize = n
	}
}
