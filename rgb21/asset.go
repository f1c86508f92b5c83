// Copyright (c) 2024-2026 The RGB Working Group developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rgb21

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/RGB-WG/rgb-interfaces/contract"
)

// ErrNoState is returned when a contract lacks state the standard
// requires.
var ErrNoState = errors.New("contract lacks state required by RGB21")

// Asset gives typed read access to the state of a non-fungible token
// contract.
type Asset struct {
	state    contract.StateReader
	features Features
}

// New wraps contract state as a token contract with the given feature
// selection.
func New(state contract.StateReader, features Features) *Asset {
	return &Asset{state: state, features: features}
}

// ContractID returns the wrapped contract identifier.
func (a *Asset) ContractID() contract.ContractID {
	return a.state.ContractID()
}

// SchemaID returns the identifier of the schema implementing the contract.
func (a *Asset) SchemaID() contract.SchemaID {
	return a.state.SchemaID()
}

// Features returns the feature selection of the contract.
func (a *Asset) Features() Features {
	return a.features
}

// Spec returns the asset specification from the contract global state.
func (a *Asset) Spec() (contract.AssetSpec, error) {
	var spec contract.AssetSpec
	items, err := a.state.GlobalState("spec")
	if err != nil {
		return spec, err
	}
	if len(items) == 0 {
		return spec, fmt.Errorf("%w: global state %q", ErrNoState, "spec")
	}
	if err := spec.StrictDecode(bytes.NewReader(items[0])); err != nil {
		return spec, fmt.Errorf("malformed spec state: %w", err)
	}
	return spec, nil
}

// Terms returns the ricardian contract terms from the contract global
// state.
func (a *Asset) Terms() (contract.ContractTerms, error) {
	var terms contract.ContractTerms
	items, err := a.state.GlobalState("terms")
	if err != nil {
		return terms, err
	}
	if len(items) == 0 {
		return terms, fmt.Errorf("%w: global state %q", ErrNoState, "terms")
	}
	if err := terms.StrictDecode(bytes.NewReader(items[0])); err != nil {
		return terms, fmt.Errorf("malformed terms state: %w", err)
	}
	return terms, nil
}

// Tokens returns every token definition from the contract global state.
func (a *Asset) Tokens() ([]NftSpec, error) {
	items, err := a.state.GlobalState("tokens")
	if err != nil {
		return nil, err
	}
	tokens := make([]NftSpec, 0, len(items))
	for _, item := range items {
		var token NftSpec
		if err := token.StrictDecode(bytes.NewReader(item)); err != nil {
			return nil, fmt.Errorf("malformed token state: %w", err)
		}
		tokens = append(tokens, token)
	}
	return tokens, nil
}

// Token returns the definition of the only token of a unique contract.
func (a *Asset) Token() (NftSpec, error) {
	tokens, err := a.Tokens()
	if err != nil {
		return NftSpec{}, err
	}
	if len(tokens) == 0 {
		return NftSpec{}, fmt.Errorf("%w: global state %q", ErrNoState, "tokens")
	}
	return tokens[0], nil
}

// AttachmentTypes returns the attachment types permitted for the contract
// tokens.
func (a *Asset) AttachmentTypes() ([]AttachmentType, error) {
	items, err := a.state.GlobalState("attachmentTypes")
	if err != nil {
		return nil, err
	}
	types := make([]AttachmentType, 0, len(items))
	for _, item := range items {
		var at AttachmentType
		if err := at.StrictDecode(bytes.NewReader(item)); err != nil {
			return nil, fmt.Errorf("malformed attachmentTypes state: %w", err)
		}
		types = append(types, at)
	}
	return types, nil
}

// Engravings returns every engraving recorded by the contract.  Contracts
// without the engraving ability return an empty list.
func (a *Asset) Engravings() ([]Engraving, error) {
	items, err := a.state.GlobalState("engravings")
	if err != nil {
		return nil, err
	}
	engravings := make([]Engraving, 0, len(items))
	for _, item := range items {
		var engraving Engraving
		if err := engraving.StrictDecode(bytes.NewReader(item)); err != nil {
			return nil, fmt.Errorf("malformed engravings state: %w", err)
		}
		engravings = append(engravings, engraving)
	}
	return engravings, nil
}

// Allocations returns every known token allocation with its decoded token
// index and fraction.
func (a *Asset) Allocations() ([]NftAllocation, error) {
	allocations, err := a.state.Allocations("assetOwner")
	if err != nil {
		return nil, err
	}
	typed := make([]NftAllocation, 0, len(allocations))
	for _, allocation := range allocations {
		var nft Nft
		if err := nft.StrictDecode(bytes.NewReader(allocation.State)); err != nil {
			return nil, fmt.Errorf("malformed assetOwner state: %w", err)
		}
		typed = append(typed, NftAllocation{
			Seal: allocation.Seal,
			Nft:  nft,
		})
	}
	return typed, nil
}

// TokenFractions returns the saturating sum of the known owned fractions
// of a single token.
func (a *Asset) TokenFractions(index TokenIndex) (OwnedFraction, error) {
	allocations, err := a.Allocations()
	if err != nil {
		return OwnedFractionZero, err
	}
	total := OwnedFractionZero
	for _, allocation := range allocations {
		if allocation.Nft.Index == index {
			total.SaturatingAddAssign(allocation.Nft.Fraction)
		}
	}
	return total, nil
}

// NftAllocation is a single token allocation with its decoded state.
type NftAllocation struct {
	Seal contract.Outpoint
	Nft  Nft
}
