package reconcile

import "errors"

var (
	// ErrParse reports a vendor quantity that is neither a known sentinel
	// nor a base-10 integer.
	ErrParse = errors.New("unparsable vendor quantity")

	// ErrFormat reports a vendor price that does not follow the feed format.
	ErrFormat = errors.New("malformed vendor price")

	ErrBatchSize = errors.New("batch size must be positive")
)
