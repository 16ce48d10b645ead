package oasdown

import "errors"

// Sentinel errors for use with errors.Is(). These allow callers to
// distinguish the pipeline's failure categories without type assertions.
var (
	// ErrSourceNotFound indicates the source path does not exist or cannot
	// be read. No conversion is attempted.
	ErrSourceNotFound = errors.New("source not found")

	// ErrMalformedSource indicates the source text does not parse as a
	// document tree.
	ErrMalformedSource = errors.New("malformed source")

	// ErrNotDocument indicates the parsed root is not an object. The
	// converter requires an object root and fails fast rather than proceed.
	ErrNotDocument = errors.New("document root is not an object")

	// ErrDestinationWrite indicates the destination cannot be created or
	// written. The converted in-memory document is unaffected; the
	// destination may hold a partial write.
	ErrDestinationWrite = errors.New("destination not writable")
)
