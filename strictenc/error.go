// Copyright (c) 2024-2026 The RGB Working Group developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package strictenc

// ErrorKind identifies a kind of error.  It has full support for errors.Is and
// errors.As, so the caller can directly check against an error kind when
// determining the reason for an error.
type ErrorKind string

// These constants are used to identify a specific Error.
const (
	// ErrInvalidDiscriminant is returned when a decoded enum discriminant
	// does not belong to the set of discriminants declared by the type.
	ErrInvalidDiscriminant = ErrorKind("ErrInvalidDiscriminant")

	// ErrStringTooShort is returned when a confined string has fewer
	// characters than the minimum declared by its type.
	ErrStringTooShort = ErrorKind("ErrStringTooShort")

	// ErrStringTooLong is returned when a confined string exceeds the
	// maximum length declared by its type.
	ErrStringTooLong = ErrorKind("ErrStringTooLong")

	// ErrIllegalCharacter is returned when a restricted character string
	// contains a character outside of its declared character set.
	ErrIllegalCharacter = ErrorKind("ErrIllegalCharacter")

	// ErrBlobTooLong is returned when a confined byte blob exceeds the
	// maximum length declared by its type.
	ErrBlobTooLong = ErrorKind("ErrBlobTooLong")

	// ErrInvalidOptionTag is returned when an optional field tag byte is
	// neither 0 (absent) nor 1 (present).
	ErrInvalidOptionTag = ErrorKind("ErrInvalidOptionTag")

	// ErrTooManyItems is returned when a confined collection exceeds the
	// maximum number of elements declared by its type.
	ErrTooManyItems = ErrorKind("ErrTooManyItems")

	// ErrUnsortedCollection is returned when the elements of an ordered
	// collection are not in strictly ascending order.
	ErrUnsortedCollection = ErrorKind("ErrUnsortedCollection")

	// ErrValueOutOfRange is returned when a decoded numeric value lies
	// outside of the range permitted by its type.
	ErrValueOutOfRange = ErrorKind("ErrValueOutOfRange")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// CodecError identifies an error related to the strict encoding of a data
// type.  It has full support for errors.Is and errors.As, so the caller can
// ascertain the specific reason for the error by checking the underlying
// error.
type CodecError struct {
	Func        string
	Err         error
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e CodecError) Error() string {
	return e.Description
}

// Unwrap returns the underlying wrapped error.
func (e CodecError) Unwrap() error {
	return e.Err
}

// codecError creates a CodecError given a set of arguments.
func codecError(fn string, kind ErrorKind, desc string) CodecError {
	return CodecError{Func: fn, Err: kind, Description: desc}
}

// Error is the exported form of codecError for use by the packages declaring
// strict types on top of the primitives in this package.
func Error(fn string, kind ErrorKind, desc string) CodecError {
	return codecError(fn, kind, desc)
}
