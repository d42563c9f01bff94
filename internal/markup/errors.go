package markup

import "errors"

var (
	// ErrMalformedInput reports a region of markup that cannot be read as
	// written, like an unterminated paragraph tag. Parse recovers from it by
	// keeping the region as plain text.
	ErrMalformedInput = errors.New("malformed markup")

	// ErrUnsupportedElement reports a standalone tag the dialect does not
	// define. The element is skipped, never fatal.
	ErrUnsupportedElement = errors.New("unsupported element")

	// ErrInvalidDocument reports a hand-built tree that violates a document
	// invariant. See Validate.
	ErrInvalidDocument = errors.New("invalid document")
)
