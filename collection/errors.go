// SPDX-License-Identifier: MIT

package collection

import "errors"

// Sentinel errors for collection construction, access and CSV I/O.
// Callers branch with errors.Is; context is attached by wrapping with %w.
var (
	// ErrRagged indicates rows of differing lengths.
	ErrRagged = errors.New("collection: all rows must have the same length")

	// ErrEmptyVector indicates a non-empty collection whose rows have no features.
	ErrEmptyVector = errors.New("collection: feature vectors must have at least one feature")

	// ErrNaNInf indicates a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("collection: NaN or Inf encountered")

	// ErrLabelCount indicates that the number of labels differs from the number of rows.
	ErrLabelCount = errors.New("collection: label count does not match row count")

	// ErrIndexOutOfRange indicates a row index outside [0, Len()).
	ErrIndexOutOfRange = errors.New("collection: index out of range")

	// ErrMalformedCSV indicates delimited input that cannot be read as a collection.
	ErrMalformedCSV = errors.New("collection: malformed csv input")
)
