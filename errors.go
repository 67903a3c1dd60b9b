// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package respkit

import (
	"errors"
	"fmt"

	pkgerrors "github.com/pkg/errors"
)

// ErrorKind is the closed taxonomy of failures this package can return.
// Incomplete is an internal-only signal and must never be observed outside
// the parser/connection read loop.
type ErrorKind uint8

const (
	// KindIO means the underlying stream failed (reset, EOF mid-frame, write failure).
	KindIO ErrorKind = iota
	// KindIncompleteFrame is the parser's "need more bytes" signal. Internal only.
	KindIncompleteFrame
	// KindInvalidFrame means the bytes at the current position cannot be a valid frame.
	KindInvalidFrame
	// KindServerError means the server returned SimpleError or BulkError.
	KindServerError
	// KindUnexpectedResponseType means a well-formed frame of the wrong shape for the issued command.
	KindUnexpectedResponseType
	// KindEncodingError means a downstream coercion failed.
	KindEncodingError
	// KindUnknown is a catch-all for unreachable branches; seeing it in production is a bug.
	KindUnknown
)

func (k ErrorKind) String() string {
	switch k {
	case KindIO:
		return "io"
	case KindIncompleteFrame:
		return "incomplete-frame"
	case KindInvalidFrame:
		return "invalid-frame"
	case KindServerError:
		return "server-error"
	case KindUnexpectedResponseType:
		return "unexpected-response-type"
	case KindEncodingError:
		return "encoding-error"
	default:
		return "unknown"
	}
}

// Error is the one error type respkit returns across its public API. Kind
// lets callers match by category (errors.Is against a bare &Error{Kind: ...}
// value); Cause, when present, is the wrapped underlying error.
type Error struct {
	Kind    ErrorKind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("respkit: %s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("respkit: %s: %s", e.Kind, e.Message)
}

// Unwrap exposes Cause to errors.Is/errors.As.
func (e *Error) Unwrap() error { return e.Cause }

// Is reports whether target is an *Error with the same Kind and no message
// or cause of its own — the pattern used to build category sentinels, e.g.
//
//	if errors.Is(err, &respkit.Error{Kind: respkit.KindServerError}) { ... }
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Message != "" || t.Cause != nil {
		return false
	}
	return e.Kind == t.Kind
}

// errIncomplete is the parser's internal "need more bytes" sentinel. It is
// never wrapped in *Error. ParseFrame returns it as is; Connection.ReadFrame
// consumes it and loops, so it never reaches Client callers.
var errIncomplete = errors.New("respkit: incomplete frame")

func invalidFrame(message string) error {
	return &Error{Kind: KindInvalidFrame, Message: message}
}

func ioError(message string, cause error) error {
	return &Error{Kind: KindIO, Message: message, Cause: pkgerrors.WithStack(cause)}
}

func serverError(message string) error {
	return &Error{Kind: KindServerError, Message: message}
}

func unexpectedResponseType(message string) error {
	return &Error{Kind: KindUnexpectedResponseType, Message: message}
}

func encodingError(message string, cause error) error {
	if cause != nil {
		return &Error{Kind: KindEncodingError, Message: message, Cause: cause}
	}
	return &Error{Kind: KindEncodingError, Message: message}
}
