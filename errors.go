package tex2gfm

import "errors"

// Sentinel errors for library operations.
var (
	ErrInvalidLabelStyle = errors.New("invalid label style")
	ErrInvalidQuadCount  = errors.New("quadd label style requires a non-negative integer count")
	ErrInputTooLarge     = errors.New("input exceeds maximum size")
)
