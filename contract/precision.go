// Copyright (c) 2024-2026 The RGB Working Group developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package contract

import (
	"fmt"
	"io"

	"github.com/RGB-WG/rgb-interfaces/strictenc"
)

// Precision is a closed enumeration of the number of fractional decimal
// digits used to convert between minor units and human-readable whole-unit
// quantities.  The numeric value of each variant equals its digit count, and
// the declaration order coincides with increasing digit count, so precisions
// are totally ordered by their plain integer comparison.
type Precision uint8

// These constants enumerate all supported decimal precisions, from an
// indivisible asset (no fractional digits) to 18 fractional digits.
const (
	PrecisionIndivisible Precision = 0
	PrecisionDeci        Precision = 1
	PrecisionCenti       Precision = 2
	PrecisionMilli       Precision = 3
	PrecisionDeciMilli   Precision = 4
	PrecisionCentiMilli  Precision = 5
	PrecisionMicro       Precision = 6
	PrecisionDeciMicro   Precision = 7
	PrecisionCentiMicro  Precision = 8
	PrecisionNano        Precision = 9
	PrecisionDeciNano    Precision = 10
	PrecisionCentiNano   Precision = 11
	PrecisionPico        Precision = 12
	PrecisionDeciPico    Precision = 13
	PrecisionCentiPico   Precision = 14
	PrecisionFemto       Precision = 15
	PrecisionDeciFemto   Precision = 16
	PrecisionCentiFemto  Precision = 17
	PrecisionAtto        Precision = 18
)

// PrecisionDefault is the precision assumed when none is specified at
// contract issuance.  Eight decimal digits match the common convention for
// both fiat-pegged and bitcoin-denominated assets.
const PrecisionDefault = PrecisionCentiMicro

// maxPrecision is the largest valid precision discriminant.
const maxPrecision = PrecisionAtto

// multipliers maps each precision to its power-of-ten multiplier.  A fixed
// table is used instead of runtime exponentiation so the values are exact by
// construction.  The largest entry, 10^18, is below 2^63 and therefore
// representable without overflow.
var multipliers = [19]uint64{
	1,
	10,
	100,
	1_000,
	10_000,
	100_000,
	1_000_000,
	10_000_000,
	100_000_000,
	1_000_000_000,
	10_000_000_000,
	100_000_000_000,
	1_000_000_000_000,
	10_000_000_000_000,
	100_000_000_000_000,
	1_000_000_000_000_000,
	10_000_000_000_000_000,
	100_000_000_000_000_000,
	1_000_000_000_000_000_000,
}

// precisionNames maps each precision to its canonical camel-case name.
var precisionNames = [19]string{
	"indivisible",
	"deci",
	"centi",
	"milli",
	"deciMilli",
	"centiMilli",
	"micro",
	"deciMicro",
	"centiMicro",
	"nano",
	"deciNano",
	"centiNano",
	"pico",
	"deciPico",
	"centiPico",
	"femto",
	"deciFemto",
	"centiFemto",
	"atto",
}

// NewPrecision returns the precision for the given number of fractional
// decimal digits.  Digit counts above 18 are rejected.
func NewPrecision(decimals uint8) (Precision, error) {
	const op = "NewPrecision"
	if decimals > uint8(maxPrecision) {
		msg := fmt.Sprintf("precision of %d decimal digits exceeds "+
			"maximum of %d", decimals, maxPrecision)
		return 0, strictenc.Error(op, strictenc.ErrValueOutOfRange, msg)
	}
	return Precision(decimals), nil
}

// Valid reports whether the precision is one of the declared variants.
func (p Precision) Valid() bool {
	return p <= maxPrecision
}

// Decimals returns the number of fractional decimal digits represented by
// the precision.
func (p Precision) Decimals() uint8 {
	return uint8(p)
}

// Multiplier returns 10 raised to the power of the precision's digit count.
// It panics if the precision is not one of the declared variants, which can
// only happen when a raw integer is cast to the type without validation.
func (p Precision) Multiplier() uint64 {
	return multipliers[p]
}

// String returns the canonical name of the precision.
func (p Precision) String() string {
	if !p.Valid() {
		return fmt.Sprintf("invalidPrecision(%d)", uint8(p))
	}
	return precisionNames[p]
}

// UncheckedConvert multiplies a whole-unit count by the precision's
// multiplier with wrapping semantics.  It must only be used when overflow is
// impossible by construction, such as when restoring previously validated
// data.
func (p Precision) UncheckedConvert(whole uint64) Amount {
	return Amount(whole * p.Multiplier())
}

// CheckedConvert multiplies a whole-unit count by the precision's
// multiplier.  It returns false when the multiplication overflows a uint64.
func (p Precision) CheckedConvert(whole uint64) (Amount, bool) {
	mul := p.Multiplier()
	if whole != 0 && mul > maxUint64/whole {
		return 0, false
	}
	return Amount(whole * mul), true
}

// SaturatingConvert multiplies a whole-unit count by the precision's
// multiplier, clamping to the maximum representable amount on overflow.
func (p Precision) SaturatingConvert(whole uint64) Amount {
	amt, ok := p.CheckedConvert(whole)
	if !ok {
		return Amount(maxUint64)
	}
	return amt
}

// StrictEncode serializes the precision as its single discriminant byte.
func (p Precision) StrictEncode(w io.Writer) error {
	const op = "Precision.StrictEncode"
	if !p.Valid() {
		msg := fmt.Sprintf("invalid precision discriminant %d", uint8(p))
		return strictenc.Error(op, strictenc.ErrInvalidDiscriminant, msg)
	}
	return strictenc.WriteUint8(w, uint8(p))
}

// StrictDecode deserializes the precision from its single discriminant byte,
// rejecting discriminants outside of [0, 18].
func (p *Precision) StrictDecode(r io.Reader) error {
	const op = "Precision.StrictDecode"
	var discriminant uint8
	if err := strictenc.ReadUint8(r, &discriminant); err != nil {
		return err
	}
	if discriminant > uint8(maxPrecision) {
		msg := fmt.Sprintf("invalid precision discriminant %d",
			discriminant)
		return strictenc.Error(op, strictenc.ErrInvalidDiscriminant, msg)
	}
	*p = Precision(discriminant)
	return nil
}
