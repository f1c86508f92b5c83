// Copyright (c) 2024-2026 The RGB Working Group developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package rgb21 implements the non-fungible token standard. It provides the
token data types with their strict encoding, including the field-element
alignment padding, assembles the RGB21 interface declaration from its
building blocks and builds token issues with deterministic contract
identifiers.
*/
package rgb21
