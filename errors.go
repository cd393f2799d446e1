// Copyright 2026 The Lencode Authors
// SPDX-License-Identifier: Apache-2.0

package lencode

import (
	"errors"
	"fmt"
)

// Kind classifies a lencode failure into the closed error taxonomy
// exposed at the package boundary.
type Kind int

const (
	// KindWriterOutOfSpace means a [Sink] refused a write. Partial
	// output may already have been emitted; it is not rewound.
	KindWriterOutOfSpace Kind = iota + 1

	// KindReaderOutOfData means a [Source] was exhausted before the
	// expected number of bytes arrived.
	KindReaderOutOfData

	// KindInvalidData means the wire format was violated: a malformed
	// varint, invalid UTF-8, a bad option tag, an unknown dedup ID, a
	// zstd frame error, a width overflow, or a missing required dedup
	// handle.
	KindInvalidData

	// KindOther is the implementation-defined escape hatch for
	// environment-specific failures that don't fit the other kinds.
	KindOther
)

// String returns the human-readable name of a Kind.
func (k Kind) String() string {
	switch k {
	case KindWriterOutOfSpace:
		return "WriterOutOfSpace"
	case KindReaderOutOfData:
		return "ReaderOutOfData"
	case KindInvalidData:
		return "InvalidData"
	case KindOther:
		return "Other"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// Error is the concrete error type returned by every lencode operation.
// Callers that need to distinguish failure categories should use
// [errors.As] to recover the *Error and inspect its Kind:
//
//	var lerr *lencode.Error
//	if errors.As(err, &lerr) && lerr.Kind == lencode.KindInvalidData {
//	    ...
//	}
type Error struct {
	// Kind classifies the failure.
	Kind Kind
	// Context is a short description of where the failure occurred
	// (e.g. "varint: too many bytes", "dedup: unknown id").
	Context string
	// Err is the underlying cause, if any. May be nil.
	Err error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("lencode: %s: %s: %v", e.Kind, e.Context, e.Err)
	}
	return fmt.Sprintf("lencode: %s: %s", e.Kind, e.Context)
}

// Unwrap returns the underlying cause so that [errors.Is] and
// [errors.As] see through to it.
func (e *Error) Unwrap() error {
	return e.Err
}

// newError constructs an *Error with the given kind and context,
// optionally wrapping a lower-level cause.
func newError(kind Kind, context string, cause error) *Error {
	return &Error{Kind: kind, Context: context, Err: cause}
}

// IsKind reports whether err is a *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var lerr *Error
	return errors.As(err, &lerr) && lerr.Kind == kind
}
