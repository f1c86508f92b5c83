// Copyright (c) 2024-2026 The RGB Working Group developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package iface

import (
	"github.com/RGB-WG/rgb-interfaces/stl"
)

// NamedContract declares the naming surface of collectible assets, which
// carry their name, optional article and details as separate global fields
// instead of a ticker-based specification.
func NamedContract() Iface {
	types := stl.CommonTypes()
	return Iface{
		Version:   VersionV1,
		Name:      "NamedContract",
		Timestamp: declaredAt,
		GlobalState: map[string]GlobalIface{
			"art":       GlobalOptional(types.Get("RGBContract.Article")),
			"name":      GlobalRequired(types.Get("RGBContract.AssetName")),
			"details":   GlobalOptional(types.Get("RGBContract.Details")),
			"precision": GlobalRequired(types.Get("RGBContract.Precision")),
			"terms":     GlobalRequired(types.Get("RGBContract.ContractTerms")),
		},
		Genesis: GenesisIface{
			Modifier: ModifierAbstract,
			Globals: map[string]Occurrences{
				"art":       NoneOrOnce,
				"name":      Once,
				"details":   NoneOrOnce,
				"precision": Once,
				"terms":     Once,
			},
		},
	}
}
