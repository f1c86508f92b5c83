// Copyright (c) 2024-2026 The RGB Working Group developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rgb25

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/RGB-WG/rgb-interfaces/contract"
)

// ErrNoState is returned when a contract lacks state the standard
// requires.
var ErrNoState = errors.New("contract lacks state required by RGB25")

// Asset gives typed read access to the state of a collectible asset
// contract.  Collectibles carry their name, article and precision as
// separate global fields instead of a ticker-based specification.
type Asset struct {
	state    contract.StateReader
	features Features
}

// New wraps contract state as a collectible asset with the given feature
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

// globalItem returns the first item of a global field, or nil when the
// field has no items.
func (a *Asset) globalItem(name string) ([]byte, error) {
	items, err := a.state.GlobalState(name)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, nil
	}
	return items[0], nil
}

// Name returns the asset name from the contract global state.
func (a *Asset) Name() (contract.AssetName, error) {
	item, err := a.globalItem("name")
	if err != nil {
		return "", err
	}
	if item == nil {
		return "", fmt.Errorf("%w: global state %q", ErrNoState, "name")
	}
	var name contract.AssetName
	if err := name.StrictDecode(bytes.NewReader(item)); err != nil {
		return "", fmt.Errorf("malformed name state: %w", err)
	}
	return name, nil
}

// Article returns the optional article from the contract global state.
// It is empty when the contract does not declare one.
func (a *Asset) Article() (contract.Article, error) {
	item, err := a.globalItem("art")
	if err != nil || item == nil {
		return "", err
	}
	var article contract.Article
	if err := article.StrictDecode(bytes.NewReader(item)); err != nil {
		return "", fmt.Errorf("malformed art state: %w", err)
	}
	return article, nil
}

// Details returns the optional asset details from the contract global
// state.  They are empty when the contract does not declare any.
func (a *Asset) Details() (contract.Details, error) {
	item, err := a.globalItem("details")
	if err != nil || item == nil {
		return "", err
	}
	var details contract.Details
	if err := details.StrictDecode(bytes.NewReader(item)); err != nil {
		return "", fmt.Errorf("malformed details state: %w", err)
	}
	return details, nil
}

// Precision returns the decimal precision from the contract global state.
func (a *Asset) Precision() (contract.Precision, error) {
	item, err := a.globalItem("precision")
	if err != nil {
		return 0, err
	}
	if item == nil {
		return 0, fmt.Errorf("%w: global state %q", ErrNoState, "precision")
	}
	var precision contract.Precision
	if err := precision.StrictDecode(bytes.NewReader(item)); err != nil {
		return 0, fmt.Errorf("malformed precision state: %w", err)
	}
	return precision, nil
}

// Terms returns the ricardian contract terms from the contract global
// state.
func (a *Asset) Terms() (contract.ContractTerms, error) {
	var terms contract.ContractTerms
	item, err := a.globalItem("terms")
	if err != nil {
		return terms, err
	}
	if item == nil {
		return terms, fmt.Errorf("%w: global state %q", ErrNoState, "terms")
	}
	if err := terms.StrictDecode(bytes.NewReader(item)); err != nil {
		return terms, fmt.Errorf("malformed terms state: %w", err)
	}
	return terms, nil
}

// sumGlobal saturating-sums every item of an amount-valued global field.
// A missing field counts as zero and a malformed item is a contract
// consistency violation.
func (a *Asset) sumGlobal(name string) (contract.Amount, error) {
	items, err := a.state.GlobalState(name)
	if err != nil {
		return contract.AmountZero, err
	}
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

// TotalIssuedSupply returns the saturating sum of all issue events.
func (a *Asset) TotalIssuedSupply() (contract.Amount, error) {
	return a.sumGlobal("issuedSupply")
}

// TotalBurnedSupply returns the saturating sum of all burn events.
func (a *Asset) TotalBurnedSupply() (contract.Amount, error) {
	return a.sumGlobal("burnedSupply")
}

// Allocations returns every known owner allocation with its decoded
// amount.
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
	allocations, err := a.Allocations()
	if err != nil {
		return contract.AmountZero, err
	}
	total := contract.AmountZero
	for _, allocation := range allocations {
		total.SaturatingAddAssign(allocation.Amount)
	}
	return total, nil
}

// AmountAllocation is a single owner allocation with its decoded amount.
type AmountAllocation struct {
	Seal   contract.Outpoint
	Amount contract.Amount
}

// Info is the summary of a collectible asset contract presented to wallet
// users.
type Info struct {
	ContractID contract.ContractID
	Article    string
	Name       string
	Details    string
	Terms      string
	Attach     *contract.Attachment
	Precision  contract.Precision
	Features   Features

	Issued contract.Amount
	Burned contract.Amount
}

// Info collects the asset summary from the contract state.
func (a *Asset) Info() (Info, error) {
	name, err := a.Name()
	if err != nil {
		return Info{}, err
	}
	article, err := a.Article()
	if err != nil {
		return Info{}, err
	}
	details, err := a.Details()
	if err != nil {
		return Info{}, err
	}
	precision, err := a.Precision()
	if err != nil {
		return Info{}, err
	}
	terms, err := a.Terms()
	if err != nil {
		return Info{}, err
	}
	issued, err := a.TotalIssuedSupply()
	if err != nil {
		return Info{}, err
	}
	burned, err := a.TotalBurnedSupply()
	if err != nil {
		return Info{}, err
	}
	return Info{
		ContractID: a.ContractID(),
		Article:    article.String(),
		Name:       name.String(),
		Details:    details.String(),
		Terms:      terms.Text.String(),
		Attach:     terms.Media,
		Precision:  precision,
		Features:   a.features,
		Issued:     issued,
		Burned:     burned,
	}, nil
}
