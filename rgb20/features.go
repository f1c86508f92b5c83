// Copyright (c) 2024-2026 The RGB Working Group developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rgb20

import (
	"github.com/RGB-WG/rgb-interfaces/iface"
)

// Inflation describes the supply model of a fungible asset.
type Inflation uint8

const (
	// InflationFixed allocates the whole supply at genesis.
	InflationFixed Inflation = 0

	// InflationBurnable fixes the supply but allows burning.
	InflationBurnable Inflation = 1

	// InflationInflatable allows secondary issues bounded by inflation
	// allowances.
	InflationInflatable Inflation = 2

	// InflationInflatableBurnable allows both secondary issues and burns.
	InflationInflatableBurnable Inflation = 3

	// InflationReplaceable additionally allows replacing burned
	// allocations under proof of burn.
	InflationReplaceable Inflation = 4
)

// IsFixed reports whether the supply can never change after genesis.
func (i Inflation) IsFixed() bool {
	return i == InflationFixed
}

// IsInflatable reports whether secondary issues are possible.
func (i Inflation) IsInflatable() bool {
	return i == InflationInflatable || i == InflationInflatableBurnable ||
		i == InflationReplaceable
}

// IsBurnable reports whether the supply can be reduced by burning.
func (i Inflation) IsBurnable() bool {
	return i == InflationBurnable || i == InflationInflatableBurnable ||
		i == InflationReplaceable
}

// IsReplaceable reports whether burned allocations can be reissued.
func (i Inflation) IsReplaceable() bool {
	return i == InflationReplaceable
}

// String returns the inflation model name.
func (i Inflation) String() string {
	switch i {
	case InflationFixed:
		return "fixed"
	case InflationBurnable:
		return "burnable"
	case InflationInflatable:
		return "inflatable"
	case InflationInflatableBurnable:
		return "inflatableBurnable"
	case InflationReplaceable:
		return "replaceable"
	}
	return "unknown"
}

// Features selects the optional abilities of a fungible asset contract.
type Features struct {
	Renaming  bool
	Inflation Inflation
}

// FeaturesNone is a plain fixed-supply asset.
var FeaturesNone = Features{}

// FeaturesAll enables every ability.
var FeaturesAll = Features{Renaming: true, Inflation: InflationReplaceable}

// EnumerateFeatures returns the feature combinations published as standard
// interface variants.
func EnumerateFeatures() []Features {
	return []Features{FeaturesNone, FeaturesAll}
}

// IfaceOf assembles the RGB20 interface declaration for the selected
// features from the standard building blocks.
func IfaceOf(f Features) iface.Iface {
	parts := []iface.Iface{iface.NamedAsset(), iface.FungibleAsset()}
	if f.Renaming {
		parts = append(parts, iface.RenameableAsset())
	}
	if f.Inflation.IsFixed() {
		parts = append(parts, iface.FixedAsset())
	}
	if f.Inflation.IsInflatable() {
		parts = append(parts, iface.InflatableAsset())
	}
	if f.Inflation.IsBurnable() {
		parts = append(parts, iface.BurnableAsset())
	}
	if f.Inflation.IsReplaceable() {
		parts = append(parts, iface.ReplaceableAsset())
	}
	// Merged last so its issue override refines the inflatable issue
	// operation and dissolves on fixed-supply variants.
	parts = append(parts, iface.ReservableAsset())
	return iface.Merge(ifaceName(f), parts...)
}

// ifaceName derives the published interface name for a feature selection.
// The full feature set keeps the bare standard name.
func ifaceName(f Features) string {
	if f == FeaturesAll {
		return "RGB20"
	}
	name := "RGB20"
	if f.Renaming {
		name += "Renameable"
	}
	switch f.Inflation {
	case InflationFixed:
		name += "Fixed"
	case InflationBurnable:
		name += "Burnable"
	case InflationInflatable:
		name += "Inflatable"
	case InflationInflatableBurnable:
		name += "InflatableBurnable"
	case InflationReplaceable:
		name += "Replaceable"
	}
	return name
}

// FeaturesOf recovers the feature selection from an interface declaration
// by inspecting which operations it carries.
func FeaturesOf(i iface.Iface) (Features, error) {
	_, renaming := i.Transitions["rename"]
	_, inflatable := i.Transitions["issue"]
	_, burnable := i.Transitions["burn"]
	_, replaceable := i.Transitions["replace"]

	if replaceable && !(inflatable && burnable) {
		return Features{}, ErrInvalidIface
	}

	var inflation Inflation
	switch {
	case replaceable:
		inflation = InflationReplaceable
	case inflatable && burnable:
		inflation = InflationInflatableBurnable
	case burnable:
		inflation = InflationBurnable
	case inflatable:
		inflation = InflationInflatable
	default:
		inflation = InflationFixed
	}
	return Features{Renaming: renaming, Inflation: inflation}, nil
}
