package host

import "errors"

var (
	// ErrUnknownKind is returned by New for an unregistered object kind.
	ErrUnknownKind = errors.New("host: unknown object kind")

	// ErrNoSuchInlet is returned when a message targets a missing inlet.
	ErrNoSuchInlet = errors.New("host: no such inlet")

	// ErrNoSuchOutlet is returned when connecting a missing outlet.
	ErrNoSuchOutlet = errors.New("host: no such outlet")

	// ErrNotAllocated is returned for data messages after a failed
	// allocation, until maxlen is set again successfully.
	ErrNotAllocated = errors.New("host: previous allocation error")

	// ErrBadAttribute is returned for unknown attributes or missing values.
	ErrBadAttribute = errors.New("host: bad attribute")
)
