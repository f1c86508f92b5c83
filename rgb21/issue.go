// Copyright (c) 2024-2026 The RGB Working Group developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rgb21

import (
	"bytes"
	"encoding/binary"
	"errors"
	"sort"
	"time"

	"lukechampine.com/blake3"

	"github.com/RGB-WG/rgb-interfaces/contract"
)

var (
	// ErrUnknownToken is returned when allocating a token the issue does
	// not define.
	ErrUnknownToken = errors.New("allocation of unknown token ID")

	// ErrFractionOverflow is returned when the allocated fractions of a
	// token exceed the 64-bit range.
	ErrFractionOverflow = errors.New("allocated token fractions overflow")

	// ErrDuplicateToken is returned when defining two tokens with the
	// same index.
	ErrDuplicateToken = errors.New("duplicate token index")

	// ErrNoTokens is returned when issuing a contract which defines no
	// tokens.
	ErrNoTokens = errors.New("token issue defines no tokens")
)

// contractIDTag is the domain-separation prefix hashed ahead of the genesis
// serialization when deriving contract identifiers.
const contractIDTag = "rgb:genesis"

// TokenIssue builds the genesis of a non-fungible token contract step by
// step.
type TokenIssue struct {
	spec        contract.AssetSpec
	terms       contract.ContractTerms
	tokens      []NftSpec
	allocations []NftAllocation
	fractions   map[TokenIndex]OwnedFraction
}

// NewTokenIssue starts a token issue with the given asset specification.
// Details may be empty.
func NewTokenIssue(ticker, name, details string, precision contract.Precision) (*TokenIssue, error) {
	spec, err := contract.NewAssetSpec(ticker, name, precision, details)
	if err != nil {
		return nil, err
	}
	return &TokenIssue{
		spec:      spec,
		fractions: make(map[TokenIndex]OwnedFraction),
	}, nil
}

// SetTerms attaches the ricardian contract text and optional media to the
// issue.
func (ti *TokenIssue) SetTerms(text string, media *contract.Attachment) error {
	terms, err := contract.NewRicardianContract(text)
	if err != nil {
		return err
	}
	ti.terms = contract.ContractTerms{Text: terms, Media: media}
	return nil
}

// DefineToken adds a token definition to the issue.
func (ti *TokenIssue) DefineToken(token NftSpec) error {
	for _, existing := range ti.tokens {
		if existing.Index == token.Index {
			return ErrDuplicateToken
		}
	}
	ti.tokens = append(ti.tokens, token)
	return nil
}

// Allocate assigns a token fraction to a genesis seal.  The token must
// have been defined first.
func (ti *TokenIssue) Allocate(seal contract.Outpoint, nft Nft) error {
	defined := false
	for _, token := range ti.tokens {
		if token.Index == nft.Index {
			defined = true
			break
		}
	}
	if !defined {
		return ErrUnknownToken
	}
	total := ti.fractions[nft.Index]
	if !total.CheckedAddAssign(nft.Fraction) {
		return ErrFractionOverflow
	}
	ti.fractions[nft.Index] = total
	ti.allocations = append(ti.allocations, NftAllocation{
		Seal: seal,
		Nft:  nft,
	})
	return nil
}

// Issue finalizes the genesis with the current time.
func (ti *TokenIssue) Issue() (*Issuance, error) {
	return ti.IssueAt(time.Now().Unix())
}

// IssueAt finalizes the genesis with an explicit timestamp, producing a
// deterministic contract identifier.
func (ti *TokenIssue) IssueAt(timestamp int64) (*Issuance, error) {
	if len(ti.tokens) == 0 {
		return nil, ErrNoTokens
	}
	tokens := append([]NftSpec(nil), ti.tokens...)
	sort.Slice(tokens, func(i, j int) bool {
		return tokens[i].Index < tokens[j].Index
	})
	allocations := append([]NftAllocation(nil), ti.allocations...)
	sort.Slice(allocations, func(i, j int) bool {
		a, b := allocations[i], allocations[j]
		if a.Seal.Txid != b.Seal.Txid {
			return bytes.Compare(a.Seal.Txid[:], b.Seal.Txid[:]) < 0
		}
		return a.Seal.Vout < b.Seal.Vout
	})
	issuance := &Issuance{
		Spec:        ti.spec,
		Terms:       ti.terms,
		Tokens:      tokens,
		Allocations: allocations,
		Timestamp:   timestamp,
	}
	id, err := issuance.contractID()
	if err != nil {
		return nil, err
	}
	issuance.ContractID = id
	return issuance, nil
}

// Issuance is a finalized token issue: the genesis state of a non-fungible
// token contract together with its derived identifier.
type Issuance struct {
	ContractID  contract.ContractID
	Spec        contract.AssetSpec
	Terms       contract.ContractTerms
	Tokens      []NftSpec
	Allocations []NftAllocation
	Timestamp   int64
}

// contractID hashes the canonical genesis serialization.
func (iss *Issuance) contractID() (contract.ContractID, error) {
	var buf bytes.Buffer
	buf.WriteString(contractIDTag)
	buf.WriteByte(0)

	var ts [8]byte
	binary.LittleEndian.PutUint64(ts[:], uint64(iss.Timestamp))
	buf.Write(ts[:])

	if err := iss.Spec.StrictEncode(&buf); err != nil {
		return contract.ContractID{}, err
	}
	if err := iss.Terms.StrictEncode(&buf); err != nil {
		return contract.ContractID{}, err
	}
	for _, token := range iss.Tokens {
		if err := token.StrictEncode(&buf); err != nil {
			return contract.ContractID{}, err
		}
	}
	for _, allocation := range iss.Allocations {
		if err := allocation.Seal.StrictEncode(&buf); err != nil {
			return contract.ContractID{}, err
		}
		if err := allocation.Nft.StrictEncode(&buf); err != nil {
			return contract.ContractID{}, err
		}
	}
	return contract.ContractID(blake3.Sum256(buf.Bytes())), nil
}
