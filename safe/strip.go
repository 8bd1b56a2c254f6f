package safe

import (
	"errors"

	"github.com/arowM/rio"
)

// ErrPrefixMismatch is returned when a slice does not begin with the required prefix.
var ErrPrefixMismatch = errors.New("prefix mismatch")

// ErrSuffixMismatch is returned when a slice does not end with the required suffix.
var ErrSuffixMismatch = errors.New("suffix mismatch")

// StripPrefix returns slice without the leading prefix, as a subslice of
// the input. Returns ErrPrefixMismatch if slice does not begin with prefix.
//
// Use rio.DropPrefix when a mismatch should return the slice unchanged
// instead of failing.
//
// Example:
//
//	rest, err := safe.StripPrefix(key, []byte("user:"))
//	if err != nil {
//	    return fmt.Errorf("parse user key: %w", err)
//	}
func StripPrefix[T comparable](slice, prefix []T) ([]T, error) {
	if !rio.HasPrefix(slice, prefix) {
		return nil, ErrPrefixMismatch
	}

	return slice[len(prefix):], nil
}

// StripSuffix returns slice without the trailing suffix.
// Returns ErrSuffixMismatch if slice does not end with suffix.
//
// StripSuffix is a prefix strip on the reversed inputs, so unlike
// StripPrefix the result is a fresh slice rather than a subslice of the
// input.
//
// Example:
//
//	stem, err := safe.StripSuffix([]byte("running"), []byte("ing"))
//	if err != nil {
//	    return fmt.Errorf("strip gerund: %w", err)
//	}
func StripSuffix[T comparable](slice, suffix []T) ([]T, error) {
	rest, err := StripPrefix(rio.Reverse(slice), rio.Reverse(suffix))
	if err != nil {
		return nil, ErrSuffixMismatch
	}

	return rio.Reverse(rest), nil
}
