// Copyright (c) 2024-2026 The RGB Working Group developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rgb20

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/RGB-WG/rgb-interfaces/contract"
)

var (
	// ErrInvalidIface is returned when an interface declaration does not
	// describe a valid fungible asset.
	ErrInvalidIface = errors.New("interface is not a valid RGB20 declaration")

	// ErrNoState is returned when a contract lacks state the standard
	// requires.
	ErrNoState = errors.New("contract lacks state required by RGB20")
)

// Asset gives typed read access to the state of a fungible asset contract.
type Asset struct {
	state    contract.StateReader
	features Features
}

// New wraps contract state as a fungible asset with the given feature
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

// Features returns the feature selection of the asset.
func (a *Asset) Features() Features {
	return a.features
}

// Spec returns the asset specification from the contract global state.
func (a *Asset) Spec() (contract.AssetSpec, error) {
	var spec contract.AssetSpec
	item, err := a.globalItem("spec")
	if err != nil {
		return spec, err
	}
	if err := spec.StrictDecode(bytes.NewReader(item)); err != nil {
		return spec, fmt.Errorf("malformed spec state: %w", err)
	}
	return spec, nil
}

// Terms returns the ricardian contract terms from the contract global
// state.
func (a *Asset) Terms() (contract.ContractTerms, error) {
	var terms contract.ContractTerms
	item, err := a.globalItem("terms")
	if err != nil {
		return terms, err
	}
	if err := terms.StrictDecode(bytes.NewReader(item)); err != nil {
		return terms, fmt.Errorf("malformed terms state: %w", err)
	}
	return terms, nil
}

// globalItem returns the first item of a required global field.
func (a *Asset) globalItem(name string) ([]byte, error) {
	items, err := a.state.GlobalState(name)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: global state %q", ErrNoState, name)
	}
	return items[0], nil
}

// sumItems saturating-sums strict-encoded amounts.  A malformed item is a
// contract consistency violation and surfaces as an error.
func sumItems(name string, items [][]byte) (contract.Amount, error) {
	total := contract.AmountZero
	for _, item := range items {
		var amount contract.Amount
		if err := amount.StrictDecode(bytes.NewReader(item)); err != nil {
			return contract.AmountZero,
				fmt.Errorf("malformed %s state: %w", name, err)
		}
		total.SaturatingAddAssign(amount)
	}
	return total, nil
}

// sumGlobal saturating-sums every item of an amount-valued global field.
// A missing field counts as zero.
func (a *Asset) sumGlobal(name string) (contract.Amount, error) {
	items, err := a.state.GlobalState(name)
	if err != nil {
		return contract.AmountZero, err
	}
	return sumItems(name, items)
}

// sumAllocations saturating-sums the amounts of every allocation under an
// owned state field.
func (a *Asset) sumAllocations(name string) (contract.Amount, error) {
	allocations, err := a.state.Allocations(name)
	if err != nil {
		return contract.AmountZero, err
	}
	total := contract.AmountZero
	for _, allocation := range allocations {
		var amount contract.Amount
		if err := amount.StrictDecode(bytes.NewReader(allocation.State)); err != nil {
			return contract.AmountZero,
				fmt.Errorf("malformed %s state: %w", name, err)
		}
		total.SaturatingAddAssign(amount)
	}
	return total, nil
}

// Allocations returns every known owner allocation with its decoded amount.
func (a *Asset) Allocations() ([]AmountAllocation, error) {
	allocations, err := a.state.Allocations("assetOwner")
	if err != nil {
		return nil, err
	}
	typed := make([]AmountAllocation, 0, len(allocations))
	for _, allocation := range allocations {
		var amount contract.Amount
		err := amount.StrictDecode(bytes.NewReader(allocation.State))
		if err != nil {
			return nil, fmt.Errorf("malformed assetOwner state: %w", err)
		}
		typed = append(typed, AmountAllocation{
			Seal:   allocation.Seal,
			Amount: amount,
		})
	}
	return typed, nil
}

// Balance returns the saturating sum of every known owner allocation.
func (a *Asset) Balance() (contract.Amount, error) {
	return a.sumAllocations("assetOwner")
}

// InflationAllowance returns the saturating sum of the remaining inflation
// allowances.
func (a *Asset) InflationAllowance() (contract.Amount, error) {
	return a.sumAllocations("inflationAllowance")
}

// TotalIssuedSupply returns the saturating sum of all issue events.
func (a *Asset) TotalIssuedSupply() (contract.Amount, error) {
	return a.sumGlobal("issuedSupply")
}

// MaxSupply returns the declared maximum supply, falling back to the
// issued supply for assets which do not declare one.
func (a *Asset) MaxSupply() (contract.Amount, error) {
	items, err := a.state.GlobalState("maxSupply")
	if err != nil {
		return contract.AmountZero, err
	}
	if len(items) == 0 {
		return a.TotalIssuedSupply()
	}
	return sumItems("maxSupply", items)
}

// TotalBurnedSupply returns the saturating sum of all burn events.
func (a *Asset) TotalBurnedSupply() (contract.Amount, error) {
	return a.sumGlobal("burnedSupply")
}

// TotalReplacedSupply returns the saturating sum of all replace events.
func (a *Asset) TotalReplacedSupply() (contract.Amount, error) {
	return a.sumGlobal("replacedSupply")
}

// TotalSupply returns the circulating supply: issued minus burned.
func (a *Asset) TotalSupply() (contract.Amount, error) {
	issued, err := a.TotalIssuedSupply()
	if err != nil {
		return contract.AmountZero, err
	}
	burned, err := a.TotalBurnedSupply()
	if err != nil {
		return contract.AmountZero, err
	}
	return issued.SaturatingSub(burned), nil
}

// AmountAllocation is a single owner allocation with its decoded amount.
type AmountAllocation struct {
	Seal   contract.Outpoint
	Amount contract.Amount
}
