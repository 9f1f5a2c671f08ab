package services

import "errors"

// Extraction failures. Unsupported formats and empty uploads are rejected
// before any decode attempt; decode and unreadable are distinct so callers
// can tell a corrupt container from a scanned image with no text layer.
var (
	ErrUnsupportedFormat  = errors.New("unsupported file format")
	ErrEmptyDocument      = errors.New("document is empty")
	ErrDocumentDecode     = errors.New("failed to decode document")
	ErrUnreadableDocument = errors.New("could not extract text from document")
)

// Completion API failures.
var (
	ErrNotConfigured = errors.New("completion API credential is not configured")
	ErrUpstream      = errors.New("completion API request failed")
)

// Normalizer failures. ErrResponseNotJSON means the model violated its
// output contract even after fence stripping; ErrMalformedResponse means
// the JSON decoded but is not an object.
var (
	ErrResponseNotJSON   = errors.New("response not parseable as JSON")
	ErrMalformedResponse = errors.New("malformed response structure")
)
