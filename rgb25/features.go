// Copyright (c) 2024-2026 The RGB Working Group developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rgb25

import (
	"github.com/RGB-WG/rgb-interfaces/iface"
)

// Features selects the optional abilities of a collectible asset contract.
type Features struct {
	Renaming bool
	Reserves bool
	Burnable bool
}

// FeaturesNone is a plain collectible asset with no extra abilities.
var FeaturesNone = Features{}

// FeaturesAll enables every ability.
var FeaturesAll = Features{Renaming: true, Reserves: true, Burnable: true}

// EnumerateFeatures returns the feature combinations published as standard
// interface variants.
func EnumerateFeatures() []Features {
	return []Features{FeaturesNone, FeaturesAll}
}

// IfaceOf assembles the RGB25 interface declaration for the selected
// features from the standard building blocks.
func IfaceOf(f Features) iface.Iface {
	parts := []iface.Iface{iface.NamedContract(), iface.FungibleAsset()}
	if f.Renaming {
		parts = append(parts, iface.RenameableAsset())
	}
	if f.Burnable {
		parts = append(parts, iface.BurnableAsset())
	}
	if f.Reserves {
		// Merged last so its issue override never materializes an issue
		// operation the contract does not declare.
		parts = append(parts, iface.ReservableAsset())
	}
	return iface.Merge(ifaceName(f), parts...)
}

// ifaceName derives the published interface name for a feature selection.
// The full feature set keeps the bare standard name.
func ifaceName(f Features) string {
	if f == FeaturesAll {
		return "RGB25"
	}
	name := "RGB25"
	if f.Renaming {
		name += "Renameable"
	}
	if f.Burnable {
		name += "Burnable"
	}
	if name == "RGB25" {
		name += "Base"
	}
	return name
}
