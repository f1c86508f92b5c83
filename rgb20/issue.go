// Copyright (c) 2024-2026 The RGB Working Group developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rgb20

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
	// ErrAmountOverflow is returned when the total issued amount would
	// exceed the 64-bit range.
	ErrAmountOverflow = errors.New("issued amount exceeds 2^64")

	// ErrNoAllocations is returned when issuing without allocating any
	// supply.
	ErrNoAllocations = errors.New("primary issue has no allocations")
)

// contractIDTag is the domain-separation prefix hashed ahead of the genesis
// serialization when deriving contract identifiers.
const contractIDTag = "rgb:genesis"

// PrimaryIssue builds the genesis of a fungible asset contract step by
// step.
type PrimaryIssue struct {
	spec        contract.AssetSpec
	terms       contract.ContractTerms
	allocations []AmountAllocation
	issued      contract.Amount
}

// NewPrimaryIssue starts a primary issue with the given asset
// specification.  Details may be empty.
func NewPrimaryIssue(ticker, name, details string, precision contract.Precision) (*PrimaryIssue, error) {
	spec, err := contract.NewAssetSpec(ticker, name, precision, details)
	if err != nil {
		return nil, err
	}
	return &PrimaryIssue{spec: spec}, nil
}

// SetTerms attaches the ricardian contract text and optional media to the
// issue.
func (pi *PrimaryIssue) SetTerms(text string, media *contract.Attachment) error {
	terms, err := contract.NewRicardianContract(text)
	if err != nil {
		return err
	}
	pi.terms = contract.ContractTerms{Text: terms, Media: media}
	return nil
}

// Allocate assigns an amount of the issued supply to a genesis seal.
func (pi *PrimaryIssue) Allocate(seal contract.Outpoint, amount contract.Amount) error {
	if !pi.issued.CheckedAddAssign(amount) {
		return ErrAmountOverflow
	}
	pi.allocations = append(pi.allocations, AmountAllocation{
		Seal:   seal,
		Amount: amount,
	})
	return nil
}

// AllocateAll assigns a batch of allocations, failing on the first
// overflow.
func (pi *PrimaryIssue) AllocateAll(allocations []AmountAllocation) error {
	for _, allocation := range allocations {
		err := pi.Allocate(allocation.Seal, allocation.Amount)
		if err != nil {
			return err
		}
	}
	return nil
}

// Issued returns the total amount allocated so far.
func (pi *PrimaryIssue) Issued() contract.Amount {
	return pi.issued
}

// Issue finalizes the genesis with the current time.
func (pi *PrimaryIssue) Issue() (*Issuance, error) {
	return pi.IssueAt(time.Now().Unix())
}

// IssueAt finalizes the genesis with an explicit timestamp, producing a
// deterministic contract identifier.
func (pi *PrimaryIssue) IssueAt(timestamp int64) (*Issuance, error) {
	if len(pi.allocations) == 0 {
		return nil, ErrNoAllocations
	}
	allocations := append([]AmountAllocation(nil), pi.allocations...)
	sort.Slice(allocations, func(i, j int) bool {
		a, b := allocations[i], allocations[j]
		if a.Seal.Txid != b.Seal.Txid {
			return bytes.Compare(a.Seal.Txid[:], b.Seal.Txid[:]) < 0
		}
		return a.Seal.Vout < b.Seal.Vout
	})
	issuance := &Issuance{
		Spec:         pi.spec,
		Terms:        pi.terms,
		Allocations:  allocations,
		IssuedSupply: pi.issued,
		Timestamp:    timestamp,
	}
	id, err := issuance.contractID()
	if err != nil {
		return nil, err
	}
	issuance.ContractID = id
	return issuance, nil
}

// Issuance is a finalized primary issue: the genesis state of a fungible
// asset contract together with its derived identifier.
type Issuance struct {
	ContractID   contract.ContractID
	Spec         contract.AssetSpec
	Terms        contract.ContractTerms
	Allocations  []AmountAllocation
	IssuedSupply contract.Amount
	Timestamp    int64
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
	if err := iss.IssuedSupply.StrictEncode(&buf); err != nil {
		return contract.ContractID{}, err
	}
	for _, allocation := range iss.Allocations {
		if err := allocation.Seal.StrictEncode(&buf); err != nil {
			return contract.ContractID{}, err
		}
		if err := allocation.Amount.StrictEncode(&buf); err != nil {
			return contract.ContractID{}, err
		}
	}
	return contract.ContractID(blake3.Sum256(buf.Bytes())), nil
}
