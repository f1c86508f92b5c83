// Copyright (c) 2024-2026 The RGB Working Group developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package contract

import (
	"fmt"

	"github.com/decred/base58"
	"github.com/decred/dcrd/bech32"
)

// IDSize is the byte size of all contract-system identifiers.
const IDSize = 32

// These constants define the human-readable prefixes used when displaying
// identifiers in bech32 form.
const (
	contractIDHrp = "rgb"
	schemaIDHrp   = "sch"
)

// base58IDVersion is the two-byte version prefix used by the short base58
// check form of contract identifiers.
var base58IDVersion = [2]byte{0x52, 0x47} // "RG"

// encodeID returns the bech32 form of a 32-byte identifier under the given
// human-readable prefix.  Identifiers are constructed from hashes which are
// always convertible, so failures cannot occur for well-formed input and are
// surfaced as a panic to catch programming errors early.
func encodeID(hrp string, id [IDSize]byte) string {
	converted, err := bech32.ConvertBits(id[:], 8, 5, true)
	if err != nil {
		panic(fmt.Sprintf("id bit conversion failed: %v", err))
	}
	encoded, err := bech32.Encode(hrp, converted)
	if err != nil {
		panic(fmt.Sprintf("id encoding failed: %v", err))
	}
	return encoded
}

// decodeID parses the bech32 form of a 32-byte identifier, enforcing the
// expected human-readable prefix.
func decodeID(wantHrp, s string) ([IDSize]byte, error) {
	var id [IDSize]byte
	hrp, converted, err := bech32.Decode(s)
	if err != nil {
		return id, err
	}
	if hrp != wantHrp {
		return id, fmt.Errorf("identifier prefix %q, expected %q", hrp,
			wantHrp)
	}
	data, err := bech32.ConvertBits(converted, 5, 8, false)
	if err != nil {
		return id, err
	}
	if len(data) != IDSize {
		return id, fmt.Errorf("identifier payload of %d bytes, "+
			"expected %d", len(data), IDSize)
	}
	copy(id[:], data)
	return id, nil
}

// ContractID uniquely identifies an issued contract.  It is assigned by the
// external validation engine from the contract genesis commitment.
type ContractID [IDSize]byte

// String returns the bech32 form of the identifier.
func (id ContractID) String() string {
	return encodeID(contractIDHrp, id)
}

// ShortString returns the base58 check form of the identifier, which is more
// compact for command line use.
func (id ContractID) ShortString() string {
	return base58.CheckEncode(id[:], base58IDVersion)
}

// ParseContractID parses the bech32 form of a contract identifier.
func ParseContractID(s string) (ContractID, error) {
	id, err := decodeID(contractIDHrp, s)
	return ContractID(id), err
}

// SchemaID uniquely identifies a contract schema compiled by the external
// validation engine.
type SchemaID [IDSize]byte

// String returns the bech32 form of the identifier.
func (id SchemaID) String() string {
	return encodeID(schemaIDHrp, id)
}

// ParseSchemaID parses the bech32 form of a schema identifier.
func ParseSchemaID(s string) (SchemaID, error) {
	id, err := decodeID(schemaIDHrp, s)
	return SchemaID(id), err
}
