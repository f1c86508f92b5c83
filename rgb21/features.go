// Copyright (c) 2024-2026 The RGB Working Group developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rgb21

import (
	"github.com/RGB-WG/rgb-interfaces/iface"
)

// Issues describes how many tokens a contract may define.
type Issues uint8

const (
	// IssuesUnique restricts the contract to a single token.
	IssuesUnique Issues = 0

	// IssuesLimited fixes the token collection at genesis.
	IssuesLimited Issues = 1

	// IssuesMulti allows adding tokens after genesis.
	IssuesMulti Issues = 2
)

// String returns the issue model name.
func (i Issues) String() string {
	switch i {
	case IssuesUnique:
		return "unique"
	case IssuesLimited:
		return "limited"
	case IssuesMulti:
		return "multiIssue"
	}
	return "unknown"
}

// Features selects the optional abilities of a non-fungible token
// contract.
type Features struct {
	Renaming  bool
	Reserves  bool
	Engraving bool
	Issues    Issues
}

// FeaturesNone is a single unique token with no extra abilities.
var FeaturesNone = Features{}

// FeaturesAll enables every ability.
var FeaturesAll = Features{
	Renaming:  true,
	Reserves:  true,
	Engraving: true,
	Issues:    IssuesMulti,
}

// EnumerateFeatures returns the feature combinations published as standard
// interface variants.
func EnumerateFeatures() []Features {
	return []Features{FeaturesNone, FeaturesAll}
}

// IfaceOf assembles the RGB21 interface declaration for the selected
// features from the standard building blocks.
func IfaceOf(f Features) iface.Iface {
	parts := []iface.Iface{iface.NamedAsset(), iface.NonFungibleToken()}
	if f.Renaming {
		parts = append(parts, iface.RenameableAsset())
	}
	if f.Engraving {
		parts = append(parts, iface.EngravableNft())
	}
	switch f.Issues {
	case IssuesUnique:
		parts = append(parts, iface.UniqueNft())
	case IssuesLimited:
		parts = append(parts, iface.LimitedNft())
	case IssuesMulti:
		parts = append(parts, iface.IssuableNft())
	}
	if f.Reserves {
		// Merged last so its issue override refines the issuable issue
		// operation and dissolves on single-issue variants.
		parts = append(parts, iface.ReservableAsset())
	}
	return iface.Merge(ifaceName(f), parts...)
}

// ifaceName derives the published interface name for a feature selection.
// The full feature set keeps the bare standard name.
func ifaceName(f Features) string {
	if f == FeaturesAll {
		return "RGB21"
	}
	name := "RGB21"
	if f.Renaming {
		name += "Renameable"
	}
	if f.Engraving {
		name += "Engravable"
	}
	switch f.Issues {
	case IssuesUnique:
		name += "Unique"
	case IssuesLimited:
		name += "Limited"
	case IssuesMulti:
		name += "Issuable"
	}
	return name
}
