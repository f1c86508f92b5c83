// Copyright (c) 2024-2026 The RGB Working Group developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rgb21

import (
	"io"

	"github.com/RGB-WG/rgb-interfaces/strictenc"
)

// Serialized contract data may be consumed downstream as consecutive 256-bit
// field elements, for example by an algebraic commitment layer reading the
// stream in fixed 32-byte chunks.  A field narrower than a chunk would leave
// follow-on data straddling a chunk boundary, so a reserved padding block is
// serialized right after it to push the next field to the following 32-byte
// offset.
//
// The padding lengths assume the padding immediately follows only the tagged
// field, so that for every variant the field width in bytes plus the padding
// length equals exactly 32.  This is the single fixed convention of the
// encoding; the blocks carry no payload and their content is ignored on
// read, but the cursor must advance by exactly the declared length or the
// stream desyncs.
const (
	fe256Align8Len   = 31
	fe256Align16Len  = 30
	fe256Align32Len  = 28
	fe256Align64Len  = 24
	fe256Align128Len = 16
)

// Fe256Align8 aligns the field following an 8-bit field to the boundary of
// the next 256-bit field element.
type Fe256Align8 struct{}

// Len returns the serialized length of the padding block in bytes.
func (Fe256Align8) Len() int { return fe256Align8Len }

// StrictEncode emits the reserved padding bytes.
func (Fe256Align8) StrictEncode(w io.Writer) error {
	return strictenc.WritePadding(w, fe256Align8Len)
}

// StrictDecode consumes and discards the reserved padding bytes.
func (Fe256Align8) StrictDecode(r io.Reader) error {
	return strictenc.ReadPadding(r, fe256Align8Len)
}

// Fe256Align16 aligns the field following a 16-bit field to the boundary of
// the next 256-bit field element.
type Fe256Align16 struct{}

// Len returns the serialized length of the padding block in bytes.
func (Fe256Align16) Len() int { return fe256Align16Len }

// StrictEncode emits the reserved padding bytes.
func (Fe256Align16) StrictEncode(w io.Writer) error {
	return strictenc.WritePadding(w, fe256Align16Len)
}

// StrictDecode consumes and discards the reserved padding bytes.
func (Fe256Align16) StrictDecode(r io.Reader) error {
	return strictenc.ReadPadding(r, fe256Align16Len)
}

// Fe256Align32 aligns the field following a 32-bit field to the boundary of
// the next 256-bit field element.
type Fe256Align32 struct{}

// Len returns the serialized length of the padding block in bytes.
func (Fe256Align32) Len() int { return fe256Align32Len }

// StrictEncode emits the reserved padding bytes.
func (Fe256Align32) StrictEncode(w io.Writer) error {
	return strictenc.WritePadding(w, fe256Align32Len)
}

// StrictDecode consumes and discards the reserved padding bytes.
func (Fe256Align32) StrictDecode(r io.Reader) error {
	return strictenc.ReadPadding(r, fe256Align32Len)
}

// Fe256Align64 aligns the field following a 64-bit field to the boundary of
// the next 256-bit field element.
type Fe256Align64 struct{}

// Len returns the serialized length of the padding block in bytes.
func (Fe256Align64) Len() int { return fe256Align64Len }

// StrictEncode emits the reserved padding bytes.
func (Fe256Align64) StrictEncode(w io.Writer) error {
	return strictenc.WritePadding(w, fe256Align64Len)
}

// StrictDecode consumes and discards the reserved padding bytes.
func (Fe256Align64) StrictDecode(r io.Reader) error {
	return strictenc.ReadPadding(r, fe256Align64Len)
}

// Fe256Align128 aligns the field following a 128-bit field to the boundary
// of the next 256-bit field element.
type Fe256Align128 struct{}

// Len returns the serialized length of the padding block in bytes.
func (Fe256Align128) Len() int { return fe256Align128Len }

// StrictEncode emits the reserved padding bytes.
func (Fe256Align128) StrictEncode(w io.Writer) error {
	return strictenc.WritePadding(w, fe256Align128Len)
}

// StrictDecode consumes and discards the reserved padding bytes.
func (Fe256Align128) StrictDecode(r io.Reader) error {
	return strictenc.ReadPadding(r, fe256Align128Len)
}
