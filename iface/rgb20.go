// Copyright (c) 2024-2026 The RGB Working Group developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package iface

import (
	"github.com/RGB-WG/rgb-interfaces/stl"
)

// declaredAt is the publication timestamp shared by the standard interface
// declarations.
const declaredAt = 1711405444

// NamedAsset declares the naming surface every asset interface inherits:
// the asset specification and the ricardian contract terms.
func NamedAsset() Iface {
	types := stl.CommonTypes()
	return Iface{
		Version:   VersionV1,
		Name:      "NamedAsset",
		Timestamp: declaredAt,
		GlobalState: map[string]GlobalIface{
			"spec":  GlobalRequired(types.Get("RGBContract.AssetSpec")),
			"terms": GlobalRequired(types.Get("RGBContract.ContractTerms")),
		},
		Genesis: GenesisIface{
			Modifier: ModifierAbstract,
			Globals: map[string]Occurrences{
				"spec":  Once,
				"terms": Once,
			},
		},
	}
}

// RenameableAsset declares an update right which allows replacing the asset
// specification through a rename transition.
func RenameableAsset() Iface {
	return Iface{
		Version:   VersionV1,
		Name:      "RenameableAsset",
		Timestamp: declaredAt,
		Assignments: map[string]AssignIface{
			"updateRight": AssignPublic(OwnedIface{Kind: OwnedRights}, ReqRequired),
		},
		Genesis: GenesisIface{
			Modifier: ModifierOverride,
			Assignments: map[string]Occurrences{
				"updateRight": Once,
			},
		},
		Transitions: map[string]TransitionIface{
			"rename": {
				Modifier: ModifierFinal,
				Globals: map[string]Occurrences{
					"spec": Once,
				},
				Inputs: map[string]Occurrences{
					"updateRight": Once,
				},
				Assignments: map[string]Occurrences{
					"updateRight": NoneOrOnce,
				},
				DefaultAssignment: "updateRight",
			},
		},
	}
}

// FungibleAsset declares the fungible supply surface: an issued supply
// global, confidential owner amounts and a transfer transition.
func FungibleAsset() Iface {
	types := stl.CommonTypes()
	return Iface{
		Version:   VersionV1,
		Name:      "FungibleAsset",
		Timestamp: declaredAt,
		GlobalState: map[string]GlobalIface{
			"issuedSupply": GlobalRequired(types.Get("RGBContract.Amount")),
		},
		Assignments: map[string]AssignIface{
			"assetOwner": AssignPrivate(OwnedIface{Kind: OwnedAmount}, ReqNoneOrMore),
		},
		Genesis: GenesisIface{
			Modifier: ModifierOverride,
			Globals: map[string]Occurrences{
				"issuedSupply": Once,
			},
			Assignments: map[string]Occurrences{
				"assetOwner": NoneOrMore,
			},
			Errors: []string{
				"insufficientReserves",
				"invalidProof",
				"supplyMismatch",
			},
		},
		Transitions: map[string]TransitionIface{
			"transfer": {
				Modifier: ModifierAbstract,
				Inputs: map[string]Occurrences{
					"assetOwner": OnceOrMore,
				},
				Assignments: map[string]Occurrences{
					"assetOwner": OnceOrMore,
				},
				Errors:            []string{"nonEqualAmounts"},
				DefaultAssignment: "assetOwner",
			},
		},
		Errors: map[string]string{
			"supplyMismatch": "supply specified as a global parameter " +
				"doesn't match the issued supply allocated to the asset " +
				"owners",
			"nonEqualAmounts": "the sum of spent assets doesn't equal to " +
				"the sum of assets in outputs",
		},
		DefaultOperation: "transfer",
	}
}

// ReservableAsset declares proof-of-reserves metadata on genesis and issue
// operations.
func ReservableAsset() Iface {
	types := stl.CommonTypes()
	issueMeta := types.Get("RGBContract.IssueMeta")
	return Iface{
		Version:   VersionV1,
		Name:      "ReservableAsset",
		Timestamp: declaredAt,
		Genesis: GenesisIface{
			Modifier: ModifierOverride,
			Metadata: &issueMeta,
			Errors: []string{
				"insufficientReserves",
				"invalidProof",
			},
		},
		Transitions: map[string]TransitionIface{
			"issue": {
				Modifier: ModifierOverride,
				Optional: true,
				Metadata: &issueMeta,
				Errors: []string{
					"insufficientReserves",
					"invalidProof",
				},
				DefaultAssignment: "assetOwner",
			},
		},
		Errors: map[string]string{
			"invalidProof": "the provided proof is invalid",
			"insufficientReserves": "reserve is insufficient to cover " +
				"the issued assets",
		},
	}
}

// FixedAsset requires the whole supply to be allocated at genesis with no
// way to inflate it later.
func FixedAsset() Iface {
	return Iface{
		Version:   VersionV1,
		Name:      "FixedAsset",
		Timestamp: declaredAt,
		Assignments: map[string]AssignIface{
			"assetOwner": AssignPrivate(OwnedIface{Kind: OwnedAmount}, ReqOneOrMore),
		},
		Genesis: GenesisIface{
			Modifier: ModifierOverride,
			Assignments: map[string]Occurrences{
				"assetOwner": OnceOrMore,
			},
			Errors: []string{
				"insufficientReserves",
				"invalidProof",
				"supplyMismatch",
			},
		},
	}
}

// InflatableAsset declares public inflation allowances and a secondary
// issue transition bounded by them.
func InflatableAsset() Iface {
	types := stl.CommonTypes()
	return Iface{
		Version:   VersionV1,
		Name:      "InflatableAsset",
		Timestamp: declaredAt,
		GlobalState: map[string]GlobalIface{
			"issuedSupply": GlobalOneOrMany(types.Get("RGBContract.Amount")),
		},
		Assignments: map[string]AssignIface{
			"inflationAllowance": AssignPublic(OwnedIface{Kind: OwnedAmount}, ReqNoneOrMore),
		},
		Genesis: GenesisIface{
			Modifier: ModifierOverride,
			Assignments: map[string]Occurrences{
				"inflationAllowance": OnceOrMore,
			},
		},
		Transitions: map[string]TransitionIface{
			"issue": {
				Modifier: ModifierAbstract,
				Globals: map[string]Occurrences{
					"issuedSupply": Once,
				},
				Inputs: map[string]Occurrences{
					"inflationAllowance": OnceOrMore,
				},
				Assignments: map[string]Occurrences{
					"assetOwner":         NoneOrMore,
					"inflationAllowance": NoneOrMore,
				},
				Errors: []string{
					"issueExceedsAllowance",
					"supplyMismatch",
				},
				DefaultAssignment: "assetOwner",
			},
		},
		Errors: map[string]string{
			"issueExceedsAllowance": "you try to issue more assets than " +
				"allowed by the contract terms",
		},
	}
}

// BurnableAsset declares burn rights and a burn transition proven by
// proof-of-burn metadata.
func BurnableAsset() Iface {
	types := stl.CommonTypes()
	burnMeta := types.Get("RGBContract.BurnMeta")
	return Iface{
		Version:   VersionV1,
		Name:      "BurnableAsset",
		Timestamp: declaredAt,
		GlobalState: map[string]GlobalIface{
			"burnedSupply": GlobalNoneOrMany(types.Get("RGBContract.Amount")),
		},
		Assignments: map[string]AssignIface{
			"burnRight": AssignPublic(OwnedIface{Kind: OwnedRights}, ReqOneOrMore),
		},
		Genesis: GenesisIface{
			Modifier: ModifierOverride,
			Assignments: map[string]Occurrences{
				"burnRight": OnceOrMore,
			},
		},
		Transitions: map[string]TransitionIface{
			"burn": {
				Modifier: ModifierFinal,
				Metadata: &burnMeta,
				Globals: map[string]Occurrences{
					"burnedSupply": Once,
				},
				Inputs: map[string]Occurrences{
					"burnRight": Once,
				},
				Assignments: map[string]Occurrences{
					"burnRight": NoneOrMore,
				},
				Errors: []string{
					"insufficientCoverage",
					"invalidProof",
					"supplyMismatch",
				},
			},
		},
		Errors: map[string]string{
			"insufficientCoverage": "the claimed amount of burned assets " +
				"is not covered by the assets in the operation inputs",
		},
	}
}

// ReplaceableAsset declares burn epochs with burn and replace transitions,
// allowing lost allocations to be reissued under proof of burn.
func ReplaceableAsset() Iface {
	types := stl.CommonTypes()
	burnMeta := types.Get("RGBContract.BurnMeta")
	return Iface{
		Version:   VersionV1,
		Name:      "ReplaceableAsset",
		Timestamp: declaredAt,
		GlobalState: map[string]GlobalIface{
			"burnedSupply":   GlobalNoneOrMany(types.Get("RGBContract.Amount")),
			"replacedSupply": GlobalNoneOrMany(types.Get("RGBContract.Amount")),
		},
		Assignments: map[string]AssignIface{
			"burnEpoch": AssignPublic(OwnedIface{Kind: OwnedRights}, ReqOneOrMore),
			"burnRight": AssignPublic(OwnedIface{Kind: OwnedRights}, ReqNoneOrMore),
		},
		Genesis: GenesisIface{
			Modifier: ModifierOverride,
			Assignments: map[string]Occurrences{
				"burnEpoch": Once,
			},
		},
		Transitions: map[string]TransitionIface{
			"openEpoch": {
				Modifier: ModifierFinal,
				Inputs: map[string]Occurrences{
					"burnEpoch": Once,
				},
				Assignments: map[string]Occurrences{
					"burnEpoch": NoneOrOnce,
					"burnRight": Once,
				},
				DefaultAssignment: "burnRight",
			},
			"burn": {
				Modifier: ModifierFinal,
				Metadata: &burnMeta,
				Globals: map[string]Occurrences{
					"burnedSupply": Once,
				},
				Inputs: map[string]Occurrences{
					"burnRight": Once,
				},
				Assignments: map[string]Occurrences{
					"burnRight": NoneOrOnce,
				},
				Errors: []string{
					"insufficientCoverage",
					"invalidProof",
					"supplyMismatch",
				},
			},
			"replace": {
				Modifier: ModifierFinal,
				Metadata: &burnMeta,
				Globals: map[string]Occurrences{
					"replacedSupply": Once,
				},
				Inputs: map[string]Occurrences{
					"burnRight": Once,
				},
				Assignments: map[string]Occurrences{
					"assetOwner": NoneOrMore,
					"burnRight":  NoneOrOnce,
				},
				Errors: []string{
					"insufficientCoverage",
					"invalidProof",
					"nonEqualAmounts",
					"supplyMismatch",
				},
				DefaultAssignment: "assetOwner",
			},
		},
		Errors: map[string]string{
			"insufficientCoverage": "the claimed amount of burned assets " +
				"is not covered by the assets in the operation inputs",
		},
	}
}
