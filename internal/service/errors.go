package service

import (
	"errors"
	"fmt"

	"github.com/lshigami/studytrack/internal/repository"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrInvalidInput  = errors.New("invalid input")
	ErrAlreadyExists = errors.New("already exists")
	ErrStaleWrite    = errors.New("modified concurrently, retry the request")
	ErrUnavailable   = errors.New("service unavailable")

	// ErrMergeNotFound is returned when neither plan of a merge exists.
	ErrMergeNotFound = fmt.Errorf("%w: neither source nor target plan exists", ErrNotFound)
)

func invalidInput(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

// storeError converts repository sentinels into service sentinels and
// wraps anything else with what was being accessed.
func storeError(err error, what string) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return fmt.Errorf("%w: %s", ErrNotFound, what)
	case errors.Is(err, repository.ErrStaleWrite):
		return fmt.Errorf("%w: %s", ErrStaleWrite, what)
	case errors.Is(err, repository.ErrDuplicate):
		return fmt.Errorf("%w: %s", ErrAlreadyExists, what)
	}
	return fmt.Errorf("%s: %w", what, err)
}
