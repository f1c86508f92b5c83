// Copyright (c) 2024-2026 The RGB Working Group developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package contract provides the strict-typed data structures shared by all
standard RGB contract interfaces.

The numeric heart of the package is the fixed-point decimal model formed by
the Amount and Precision types.  An Amount is a bare 64-bit count of minor
units with explicitly checked or saturating arithmetic; a Precision names
the number of fractional decimal digits and carries the exact power-of-ten
multiplier used to convert between minor units and whole units.  Pairing an
amount with the precision fixed at issuance is a caller contract: the types
do not enforce it.

The remaining types are the declarative vocabulary of asset issuance:
restricted naming strings (Ticker, AssetName, Details, Article), asset and
contract specifications, ricardian contract terms, media types and
attachments, and proofs of reserve.  Every type carries its canonical strict
encoding via the StrictEncode and StrictDecode methods.

Contract validation, state transitions and consensus commitments are the
responsibility of the external validation engine, reached through the
StateReader interface.
*/
package contract
