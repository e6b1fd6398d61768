package usecase

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrInternal     = errors.New("internal error")
)

// wrapInternal marks err as ErrInternal and keeps its text for the error log.
// The cause is not part of the chain, so storage sentinels do not leak past
// the usecase layer.
func wrapInternal(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrInternal, op, err)
}
