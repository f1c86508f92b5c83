// Copyright (c) 2024-2026 The RGB Working Group developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rgb25

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
	ErrNoAllocations = errors.New("issue has no allocations")
)

// contractIDTag is the domain-separation prefix hashed ahead of the genesis
// serialization when deriving contract identifiers.
const contractIDTag = "rgb:genesis"

// Issue builds the genesis of a collectible asset contract step by step.
type Issue struct {
	spec        contract.ContractSpec
	terms       contract.ContractTerms
	allocations []AmountAllocation
	issued      contract.Amount
}

// NewIssue starts an issue with the given contract specification.  Article
// and details may be empty.
func NewIssue(article, name, details string, precision contract.Precision) (*Issue, error) {
	spec, err := contract.NewContractSpec(article, name, precision, details)
	if err != nil {
		return nil, err
	}
	return &Issue{spec: spec}, nil
}

// SetTerms attaches the ricardian contract text and optional media to the
// issue.
func (is *Issue) SetTerms(text string, media *contract.Attachment) error {
	terms, err := contract.NewRicardianContract(text)
	if err != nil {
		return err
	}
	is.terms = contract.ContractTerms{Text: terms, Media: media}
	return nil
}

// Allocate assigns an amount of the issued supply to a genesis seal.
func (is *Issue) Allocate(seal contract.Outpoint, amount contract.Amount) error {
	if !is.issued.CheckedAddAssign(amount) {
		return ErrAmountOverflow
	}
	is.allocations = append(is.allocations, AmountAllocation{
		Seal:   seal,
		Amount: amount,
	})
	return nil
}

// Issued returns the total amount allocated so far.
func (is *Issue) Issued() contract.Amount {
	return is.issued
}

// Finalize completes the genesis with the current time.
func (is *Issue) Finalize() (*Issuance, error) {
	return is.FinalizeAt(time.Now().Unix())
}

// FinalizeAt completes the genesis with an explicit timestamp, producing a
// deterministic contract identifier.
func (is *Issue) FinalizeAt(timestamp int64) (*Issuance, error) {
	if len(is.allocations) == 0 {
		return nil, ErrNoAllocations
	}
	allocations := append([]AmountAllocation(nil), is.allocations...)
	sort.Slice(allocations, func(i, j int) bool {
		a, b := allocations[i], allocations[j]
		if a.Seal.Txid != b.Seal.Txid {
			return bytes.Compare(a.Seal.Txid[:], b.Seal.Txid[:]) < 0
		}
		return a.Seal.Vout < b.Seal.Vout
	})
	issuance := &Issuance{
		Spec:         is.spec,
		Terms:        is.terms,
		Allocations:  allocations,
		IssuedSupply: is.issued,
		Timestamp:    timestamp,
	}
	id, err := issuance.contractID()
	if err != nil {
		return nil, err
	}
	issuance.ContractID = id
	return issuance, nil
}

// Issuance is a finalized issue: the genesis state of a collectible asset
// contract together with its derived identifier.
type Issuance struct {
	ContractID   contract.ContractID
	Spec         contract.ContractSpec
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
