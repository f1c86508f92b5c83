// Copyright (c) 2024-2026 The RGB Working Group developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package contract

import (
	"io"
	"math"
	"strconv"

	"github.com/RGB-WG/rgb-interfaces/strictenc"
)

// maxUint64 is a convenience constant since math.MaxUint64 is quite long.
const maxUint64 = math.MaxUint64

// Amount is a quantity of an asset counted in its minor units, the smallest
// indivisible unit defined at issuance, analogous to satoshis or cents.  The
// type carries no intrinsic decimal point; the decimal position is supplied
// externally by a Precision at the point of formatting or conversion.
//
// Arithmetic never silently wraps in the public API: callers choose between
// the checked methods, which report overflow, and the saturating methods,
// which clamp to the representable range.  Plain Go operators on the
// underlying integer remain available for contexts where overflow is already
// excluded by validation, but are out of contract for untrusted quantities.
type Amount uint64

// AmountZero is the additive identity.
const AmountZero Amount = 0

// AmountWithPrecision multiplies a whole-unit count by the precision's
// multiplier with wrapping semantics.  Use only when overflow is impossible
// by construction, such as when restoring previously validated data.
func AmountWithPrecision(whole uint64, precision Precision) Amount {
	return precision.UncheckedConvert(whole)
}

// AmountWithPrecisionChecked multiplies a whole-unit count by the
// precision's multiplier, reporting failure when the result overflows.
func AmountWithPrecisionChecked(whole uint64, precision Precision) (Amount, bool) {
	return precision.CheckedConvert(whole)
}

// ParseAmount parses a decimal string of whole units, scaling the result by
// the given precision with checked semantics.
func ParseAmount(s string, precision Precision) (Amount, error) {
	const op = "ParseAmount"
	whole, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, err
	}
	amt, ok := precision.CheckedConvert(whole)
	if !ok {
		msg := "amount " + s + " overflows at precision " +
			precision.String()
		return 0, strictenc.Error(op, strictenc.ErrValueOutOfRange, msg)
	}
	return amt, nil
}

// Value returns the raw minor-unit integer.
func (a Amount) Value() uint64 {
	return uint64(a)
}

// String returns the minor-unit integer in base 10.
func (a Amount) String() string {
	return strconv.FormatUint(uint64(a), 10)
}

// Split decomposes the amount into its whole-unit and fractional parts under
// the given precision.
func (a Amount) Split(precision Precision) (whole, fractional uint64) {
	return a.Floor(precision), a.Rem(precision)
}

// Floor returns the amount truncated toward zero to a count of whole units
// under the given precision.
func (a Amount) Floor(precision Precision) uint64 {
	if a == 0 {
		return 0
	}
	return uint64(a) / precision.Multiplier()
}

// Ceil returns the smallest count of whole units no less than the amount
// under the given precision.
func (a Amount) Ceil(precision Precision) uint64 {
	if a == 0 {
		return 0
	}
	var inc uint64
	if a.Rem(precision) > 0 {
		inc = 1
	}
	return uint64(a)/precision.Multiplier() + inc
}

// Round returns the amount rounded to the nearest count of whole units under
// the given precision.  A fractional remainder of at least half the
// multiplier rounds up.
func (a Amount) Round(precision Precision) uint64 {
	if a == 0 {
		return 0
	}
	mul := precision.Multiplier()
	inc := 2 * a.Rem(precision) / mul
	return uint64(a)/mul + inc
}

// Rem returns the fractional remainder of the amount under the given
// precision.
func (a Amount) Rem(precision Precision) uint64 {
	return uint64(a) % precision.Multiplier()
}

// SaturatingAdd returns the sum of two amounts, clamping to the maximum
// representable value instead of overflowing.
func (a Amount) SaturatingAdd(other Amount) Amount {
	if sum := a + other; sum >= a {
		return sum
	}
	return Amount(maxUint64)
}

// SaturatingSub returns the difference of two amounts, clamping to zero
// instead of underflowing.
func (a Amount) SaturatingSub(other Amount) Amount {
	if other > a {
		return 0
	}
	return a - other
}

// CheckedAdd returns the sum of two amounts, reporting failure on overflow.
func (a Amount) CheckedAdd(other Amount) (Amount, bool) {
	sum := a + other
	if sum < a {
		return 0, false
	}
	return sum, true
}

// CheckedSub returns the difference of two amounts, reporting failure on
// underflow.
func (a Amount) CheckedSub(other Amount) (Amount, bool) {
	if other > a {
		return 0, false
	}
	return a - other, true
}

// SaturatingAddAssign adds other to the amount in place with saturating
// semantics.
func (a *Amount) SaturatingAddAssign(other Amount) {
	*a = a.SaturatingAdd(other)
}

// SaturatingSubAssign subtracts other from the amount in place with
// saturating semantics.
func (a *Amount) SaturatingSubAssign(other Amount) {
	*a = a.SaturatingSub(other)
}

// CheckedAddAssign adds other to the amount in place, leaving the amount
// unchanged and reporting failure on overflow.
func (a *Amount) CheckedAddAssign(other Amount) bool {
	sum, ok := a.CheckedAdd(other)
	if !ok {
		return false
	}
	*a = sum
	return true
}

// CheckedSubAssign subtracts other from the amount in place, leaving the
// amount unchanged and reporting failure on underflow.
func (a *Amount) CheckedSubAssign(other Amount) bool {
	diff, ok := a.CheckedSub(other)
	if !ok {
		return false
	}
	*a = diff
	return true
}

// Sum folds a sequence of amounts with saturating addition, starting from
// zero.  Bulk aggregation over a contract's outputs must not fail the whole
// operation due to a single pathological value, so the fold silently clamps
// at the maximum representable amount instead of overflowing.
func Sum(amounts []Amount) Amount {
	sum := AmountZero
	for _, amt := range amounts {
		sum = sum.SaturatingAdd(amt)
	}
	return sum
}

// SumValues folds a sequence of raw minor-unit integers with saturating
// addition, starting from zero.
func SumValues(values []uint64) Amount {
	sum := AmountZero
	for _, value := range values {
		sum = sum.SaturatingAdd(Amount(value))
	}
	return sum
}

// StrictEncode serializes the amount as a bare little endian uint64.
func (a Amount) StrictEncode(w io.Writer) error {
	return strictenc.WriteUint64(w, uint64(a))
}

// StrictDecode deserializes the amount from a bare little endian uint64.
func (a *Amount) StrictDecode(r io.Reader) error {
	return strictenc.ReadUint64(r, (*uint64)(a))
}
