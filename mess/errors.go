// SPDX-License-Identifier: MIT

package mess

import (
	"errors"
	"fmt"
)

// Sentinel errors for list operations. Match them with errors.Is.
var (
	// ErrInvalidCapacity is returned by Allocate for a capacity below 1.
	ErrInvalidCapacity = errors.New("mess: capacity must be >= 1")

	// ErrOutOfMemory is returned by Allocate when the backing storage cannot
	// be obtained. The list is left Null.
	ErrOutOfMemory = errors.New("mess: allocation error")

	// ErrNull is returned by mutations on a Null list. Nothing is changed.
	ErrNull = errors.New("mess: list is not allocated")

	// ErrTruncated matches every *TruncatedError.
	ErrTruncated = errors.New("mess: message truncated")
)

// TruncatedError reports a payload clipped to the list capacity.
// It is a warning: the list holds the clipped content.
type TruncatedError struct {
	// From is the requested length, lead tag included.
	From int

	// To is the stored length.
	To int
}

// Error implements error.
func (e *TruncatedError) Error() string {
	return fmt.Sprintf("mess: message truncated from length %d to %d", e.From, e.To)
}

// Unwrap lets errors.Is(err, ErrTruncated) succeed.
func (e *TruncatedError) Unwrap() error { return ErrTruncated }
