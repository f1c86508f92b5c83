// Copyright (c) 2024-2026 The RGB Working Group developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rgb21

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/RGB-WG/rgb-interfaces/strictenc"
)

// ErrorKind identifies a kind of error.  It has full support for errors.Is
// and errors.As, so the caller can directly check against an error kind when
// determining the reason for an error.
type ErrorKind string

// These constants are used to identify a specific Error.
const (
	// ErrWrongAllocationFormat is returned when an allocation string does
	// not have the form "fraction@index".
	ErrWrongAllocationFormat = ErrorKind("ErrWrongAllocationFormat")

	// ErrInvalidTokenIndex is returned when the token index part of an
	// allocation string is not a valid 32-bit unsigned integer.
	ErrInvalidTokenIndex = ErrorKind("ErrInvalidTokenIndex")

	// ErrInvalidFraction is returned when the fraction part of an
	// allocation string is not a valid 64-bit unsigned integer.
	ErrInvalidFraction = ErrorKind("ErrInvalidFraction")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// ParseError identifies an error related to parsing the textual form of a
// token allocation.  It has full support for errors.Is and errors.As, so the
// caller can ascertain the specific reason for the error by checking the
// underlying error.
type ParseError struct {
	Err         error
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e ParseError) Error() string {
	return e.Description
}

// Unwrap returns the underlying wrapped error.
func (e ParseError) Unwrap() error {
	return e.Err
}

// parseError creates a ParseError given a set of arguments.
func parseError(kind ErrorKind, desc string) ParseError {
	return ParseError{Err: kind, Description: desc}
}

// TokenIndex is the sequential number of a token inside a non-fungible
// contract.
type TokenIndex uint32

// String returns the index in base 10.
func (i TokenIndex) String() string {
	return strconv.FormatUint(uint64(i), 10)
}

// StrictEncode serializes the index as a bare little endian uint32.
func (i TokenIndex) StrictEncode(w io.Writer) error {
	return strictenc.WriteUint32(w, uint32(i))
}

// StrictDecode deserializes the index from a bare little endian uint32.
func (i *TokenIndex) StrictDecode(r io.Reader) error {
	return strictenc.ReadUint32(r, (*uint32)(i))
}

// OwnedFraction is the owned share of a single token, counted in the
// fraction units fixed at issuance.  Like contract.Amount it never wraps in
// the public API: callers choose checked or saturating semantics.
type OwnedFraction uint64

// OwnedFractionZero is the additive identity.
const OwnedFractionZero OwnedFraction = 0

// Value returns the raw fraction integer.
func (f OwnedFraction) Value() uint64 {
	return uint64(f)
}

// String returns the fraction in base 10.
func (f OwnedFraction) String() string {
	return strconv.FormatUint(uint64(f), 10)
}

// SaturatingAdd returns the sum of two fractions, clamping to the maximum
// representable value instead of overflowing.
func (f OwnedFraction) SaturatingAdd(other OwnedFraction) OwnedFraction {
	if sum := f + other; sum >= f {
		return sum
	}
	return OwnedFraction(1<<64 - 1)
}

// SaturatingSub returns the difference of two fractions, clamping to zero
// instead of underflowing.
func (f OwnedFraction) SaturatingSub(other OwnedFraction) OwnedFraction {
	if other > f {
		return 0
	}
	return f - other
}

// CheckedAdd returns the sum of two fractions, reporting failure on
// overflow.
func (f OwnedFraction) CheckedAdd(other OwnedFraction) (OwnedFraction, bool) {
	sum := f + other
	if sum < f {
		return 0, false
	}
	return sum, true
}

// CheckedSub returns the difference of two fractions, reporting failure on
// underflow.
func (f OwnedFraction) CheckedSub(other OwnedFraction) (OwnedFraction, bool) {
	if other > f {
		return 0, false
	}
	return f - other, true
}

// SaturatingAddAssign adds other to the fraction in place with saturating
// semantics.
func (f *OwnedFraction) SaturatingAddAssign(other OwnedFraction) {
	*f = f.SaturatingAdd(other)
}

// SaturatingSubAssign subtracts other from the fraction in place with
// saturating semantics.
func (f *OwnedFraction) SaturatingSubAssign(other OwnedFraction) {
	*f = f.SaturatingSub(other)
}

// CheckedAddAssign adds other to the fraction in place, leaving it unchanged
// and reporting failure on overflow.
func (f *OwnedFraction) CheckedAddAssign(other OwnedFraction) bool {
	sum, ok := f.CheckedAdd(other)
	if !ok {
		return false
	}
	*f = sum
	return true
}

// CheckedSubAssign subtracts other from the fraction in place, leaving it
// unchanged and reporting failure on underflow.
func (f *OwnedFraction) CheckedSubAssign(other OwnedFraction) bool {
	diff, ok := f.CheckedSub(other)
	if !ok {
		return false
	}
	*f = diff
	return true
}

// StrictEncode serializes the fraction as a bare little endian uint64.
func (f OwnedFraction) StrictEncode(w io.Writer) error {
	return strictenc.WriteUint64(w, uint64(f))
}

// StrictDecode deserializes the fraction from a bare little endian uint64.
func (f *OwnedFraction) StrictDecode(r io.Reader) error {
	return strictenc.ReadUint64(r, (*uint64)(f))
}

// Nft is the owned state of a non-fungible token allocation: a token index
// and the owned fraction of that token.  The serialized form interleaves a
// Fe256Align32 padding block between the two fields so that the index and
// the fraction are read into different 256-bit field elements by downstream
// commitment layers.
type Nft struct {
	Index    TokenIndex
	Fraction OwnedFraction
}

// NewNft returns an allocation of the given fraction of the indexed token.
func NewNft(index TokenIndex, fraction OwnedFraction) Nft {
	return Nft{Index: index, Fraction: fraction}
}

// ParseNft parses the "fraction@index" textual form of an allocation.
func ParseNft(s string) (Nft, error) {
	fraction, index, found := strings.Cut(s, "@")
	if !found {
		msg := fmt.Sprintf("allocation %q must have format "+
			"<fraction>@<token_index>", s)
		return Nft{}, parseError(ErrWrongAllocationFormat, msg)
	}
	idx, err := strconv.ParseUint(index, 10, 32)
	if err != nil {
		msg := fmt.Sprintf("invalid token index %q", index)
		return Nft{}, parseError(ErrInvalidTokenIndex, msg)
	}
	frac, err := strconv.ParseUint(fraction, 10, 64)
	if err != nil {
		msg := fmt.Sprintf("invalid fraction %q", fraction)
		return Nft{}, parseError(ErrInvalidFraction, msg)
	}
	return Nft{Index: TokenIndex(idx), Fraction: OwnedFraction(frac)}, nil
}

// String returns the "fraction@index" textual form of the allocation.
func (n Nft) String() string {
	return fmt.Sprintf("%s@%s", n.Fraction, n.Index)
}

// StrictEncode serializes the allocation with its alignment padding.
func (n Nft) StrictEncode(w io.Writer) error {
	if err := n.Index.StrictEncode(w); err != nil {
		return err
	}
	if err := (Fe256Align32{}).StrictEncode(w); err != nil {
		return err
	}
	return n.Fraction.StrictEncode(w)
}

// StrictDecode deserializes the allocation, consuming the alignment padding
// between the fields.
func (n *Nft) StrictDecode(r io.Reader) error {
	if err := n.Index.StrictDecode(r); err != nil {
		return err
	}
	if err := (Fe256Align32{}).StrictDecode(r); err != nil {
		return err
	}
	return n.Fraction.StrictDecode(r)
}
