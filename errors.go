package fcgo

import (
	"errors"
	"fmt"

	"github.com/obinnaokechukwu/fcgo/internal/bindings"
)

var (
	// ErrLibraryNotFound indicates the fontconfig shared library could not
	// be located (runtime-loading strategy only).
	ErrLibraryNotFound = bindings.ErrLibraryNotFound

	// ErrSymbolNotFound indicates a required entry point is missing from
	// the loaded library (runtime-loading strategy only).
	ErrSymbolNotFound = bindings.ErrSymbolNotFound

	// ErrNotLoaded indicates fontconfig functions were used before a
	// successful Init or New.
	ErrNotLoaded = bindings.ErrNotLoaded

	// ErrInitFailed indicates the native configuration failed to
	// initialize; a fresh FontConfig must be created to retry.
	ErrInitFailed = errors.New("fcgo: fontconfig initialization failed")

	// ErrConfigClosed indicates the FontConfig has been closed.
	ErrConfigClosed = errors.New("fcgo: config already closed")

	// ErrNullHandle indicates a native call that should always succeed
	// returned a null handle.
	ErrNullHandle = errors.New("fcgo: native call returned a null handle")

	// ErrHandleReleased indicates a wrapper was used after its handle was
	// released.
	ErrHandleReleased = errors.New("fcgo: handle already released")

	// ErrOutOfMemory indicates a native allocation failed.
	ErrOutOfMemory = errors.New("fcgo: out of memory")

	// ErrOperationFailed indicates a native mutating call reported failure.
	ErrOperationFailed = errors.New("fcgo: native operation failed")

	// ErrInvalidName indicates an empty property name was supplied.
	ErrInvalidName = errors.New("fcgo: empty property name")

	// ErrPropertyMissing indicates the requested property does not exist
	// in the pattern.
	ErrPropertyMissing = errors.New("fcgo: property not present in pattern")

	// ErrTypeMismatch indicates the property exists but its type does not
	// match the requested one.
	ErrTypeMismatch = errors.New("fcgo: property exists but type does not match")

	// ErrNoID indicates the property exists but has fewer values than the
	// requested index.
	ErrNoID = errors.New("fcgo: property has fewer values than requested")
)

// Error wraps an underlying error with the operation that produced it.
type Error struct {
	Op  string // Operation that failed
	Err error  // Underlying error
}

func (e *Error) Error() string {
	return fmt.Sprintf("fcgo.%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func opErr(op string, err error) error {
	return &Error{Op: op, Err: err}
}

// resultError translates a native FcResult into the package taxonomy.
// No raw result codes cross this boundary.
func resultError(r int32) error {
	switch r {
	case bindings.FcResultMatch:
		return nil
	case bindings.FcResultNoMatch:
		return ErrPropertyMissing
	case bindings.FcResultTypeMismatch:
		return ErrTypeMismatch
	case bindings.FcResultNoId:
		return ErrNoID
	case bindings.FcResultOutOfMemory:
		return ErrOutOfMemory
	default:
		return fmt.Errorf("fcgo: unexpected result code %d", r)
	}
}
