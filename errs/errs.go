// Copyright 2011 The Walk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errs

import (
	"errors"
	"fmt"
	"log"
	"runtime/debug"
)

var (
	logErrors    bool
	panicOnError bool
)

// Kind classifies the failures of the icon pipeline.
type Kind int

const (
	KindUnknown Kind = iota

	// KindResolutionFailed means the shell lookup produced no icon for
	// the requested path and size class.
	KindResolutionFailed

	// KindResourceInfoUnavailable means the icon info query failed.
	KindResourceInfoUnavailable

	// KindInvalidDimensions means the derived icon width or height is
	// zero or otherwise unusable.
	KindInvalidDimensions

	// KindPixelReadbackFailed means the device context pixel transfer
	// reported failure.
	KindPixelReadbackFailed

	// KindUnsupportedPixelFormat means the source bitmap is not 32 bits
	// per pixel.
	KindUnsupportedPixelFormat

	// KindBufferSizeMismatch means declared dimensions and buffer length
	// disagree. This is an internal invariant violation.
	KindBufferSizeMismatch

	// KindResourceCleanupFailed means releasing a transient handle
	// failed. Cleanup failures are reported but never displace the
	// outcome that was already determined.
	KindResourceCleanupFailed
)

func (k Kind) String() string {
	switch k {
	case KindResolutionFailed:
		return "icon resolution failed"
	case KindResourceInfoUnavailable:
		return "icon info unavailable"
	case KindInvalidDimensions:
		return "invalid icon dimensions"
	case KindPixelReadbackFailed:
		return "pixel readback failed"
	case KindUnsupportedPixelFormat:
		return "unsupported pixel format"
	case KindBufferSizeMismatch:
		return "buffer size mismatch"
	case KindResourceCleanupFailed:
		return "resource cleanup failed"
	}

	return "unknown error"
}

type Error struct {
	kind    Kind
	inner   error
	message string
	stack   []byte
}

func LogErrors() bool {
	return logErrors
}

func SetLogErrors(v bool) {
	logErrors = v
}

func PanicOnError() bool {
	return panicOnError
}

func SetPanicOnError(v bool) {
	panicOnError = v
}

func (err *Error) Kind() Kind {
	return err.kind
}

func (err *Error) Inner() error {
	return err.inner
}

func (err *Error) Message() string {
	if err.message != "" {
		return err.message
	}

	if err.inner != nil {
		if inner, ok := err.inner.(*Error); ok {
			return inner.Message()
		} else {
			return err.inner.Error()
		}
	}

	return ""
}

func (err *Error) Stack() []byte {
	return err.stack
}

func (err *Error) Unwrap() error {
	return err.inner
}

func (err *Error) Error() string {
	if err.kind == KindUnknown {
		return fmt.Sprintf("%s\n\nStack:\n%s", err.Message(), err.stack)
	}

	return fmt.Sprintf("%s: %s\n\nStack:\n%s", err.kind, err.Message(), err.stack)
}

// KindOf returns the kind of the outermost *Error in err's chain, or
// KindUnknown if there is none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.kind
	}

	return KindUnknown
}

func processErrorNoPanic(err error) error {
	if logErrors {
		if e, ok := err.(*Error); ok {
			log.Print(e.Error())
		} else {
			log.Printf("%s\n\nStack:\n%s", err, debug.Stack())
		}
	}

	return err
}

func processError(err error) error {
	processErrorNoPanic(err)

	if panicOnError {
		panic(err)
	}

	return err
}

func newErr(kind Kind, message string) error {
	return &Error{kind: kind, message: message, stack: debug.Stack()}
}

func NewError(kind Kind, message string) error {
	return processError(newErr(kind, message))
}

func NewErrorNoPanic(kind Kind, message string) error {
	return processErrorNoPanic(newErr(kind, message))
}

func wrapErr(kind Kind, err error) error {
	if e, ok := err.(*Error); ok {
		if e.kind != KindUnknown || kind == KindUnknown {
			return e
		}

		return &Error{kind: kind, inner: e, stack: e.stack}
	}

	return &Error{kind: kind, inner: err, stack: debug.Stack()}
}

func WrapErrorNoPanic(kind Kind, err error) error {
	return processErrorNoPanic(wrapErr(kind, err))
}

func WrapError(kind Kind, err error) error {
	return processError(wrapErr(kind, err))
}
