package api

import (
	"errors"
	"fmt"
)

// Sentinel kinds for API errors.
var (
	ErrValidation     = errors.New("request validation failed")
	ErrAuthentication = errors.New("authentication failed")
)

// NewKind wraps err under a sentinel kind with the operation attached, so
// callers can branch with errors.Is while logs keep the full chain.
func NewKind(op string, kind, err error) error {
	if err == nil {
		return fmt.Errorf("%s: %w", op, kind)
	}
	return fmt.Errorf("%s: %w: %w", op, kind, err)
}
