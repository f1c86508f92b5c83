// Copyright (c) 2024-2026 The RGB Working Group developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rgb20

import (
	"github.com/RGB-WG/rgb-interfaces/contract"
)

// SupplyInfo summarizes one side of the asset supply.
type SupplyInfo struct {
	// Known is the sum of the events known to the wallet.
	Known contract.Amount

	// Max is the upper bound the contract permits.
	Max contract.Amount

	// Finalized reports whether no further events of this kind can
	// happen.
	Finalized bool
}

// Info is the summary of a fungible asset contract presented to wallet
// users.
type Info struct {
	ContractID contract.ContractID
	Ticker     string
	Name       string
	Details    string
	Terms      string
	Attach     *contract.Attachment
	Precision  contract.Precision
	Features   Features

	Issued   SupplyInfo
	Burned   SupplyInfo
	Replaced SupplyInfo
}

// Info collects the asset summary from the contract state.
func (a *Asset) Info() (Info, error) {
	spec, err := a.Spec()
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
	replaced, err := a.TotalReplacedSupply()
	if err != nil {
		return Info{}, err
	}
	max, err := a.MaxSupply()
	if err != nil {
		return Info{}, err
	}
	return Info{
		ContractID: a.ContractID(),
		Ticker:     spec.Ticker.String(),
		Name:       spec.Name.String(),
		Details:    spec.Details.String(),
		Terms:      terms.Text.String(),
		Attach:     terms.Media,
		Precision:  spec.Precision,
		Features:   a.features,
		Issued: SupplyInfo{
			Known:     issued,
			Max:       max,
			Finalized: a.features.Inflation.IsFixed(),
		},
		Burned: SupplyInfo{
			Known:     burned,
			Max:       max,
			Finalized: !a.features.Inflation.IsBurnable(),
		},
		Replaced: SupplyInfo{
			Known:     replaced,
			Max:       max,
			Finalized: !a.features.Inflation.IsReplaceable(),
		},
	}, nil
}
