// Copyright (c) 2024-2026 The RGB Working Group developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package iface

import (
	"github.com/RGB-WG/rgb-interfaces/stl"
)

// NonFungibleToken declares the unique token surface: token definitions and
// permitted attachment types in global state, owned token allocations and a
// transfer transition.
func NonFungibleToken() Iface {
	types := stl.Rgb21Types()
	return Iface{
		Version:   VersionV1,
		Name:      "NonFungibleToken",
		Timestamp: declaredAt,
		GlobalState: map[string]GlobalIface{
			"tokens":          GlobalNoneOrMany(types.Get("RGB21.TokenData")),
			"attachmentTypes": GlobalNoneOrMany(types.Get("RGB21.AttachmentType")),
		},
		Assignments: map[string]AssignIface{
			"assetOwner": AssignPrivate(OwnedDataOf(types.Get("RGB21.Allocation")), ReqNoneOrMore),
		},
		Genesis: GenesisIface{
			Modifier: ModifierOverride,
			Globals: map[string]Occurrences{
				"tokens":          NoneOrMore,
				"attachmentTypes": NoneOrMore,
			},
			Assignments: map[string]Occurrences{
				"assetOwner": NoneOrMore,
			},
			Errors: []string{
				"fractionOverflow",
				"invalidAttachmentType",
				"unknownToken",
			},
		},
		Transitions: map[string]TransitionIface{
			"transfer": {
				Modifier: ModifierFinal,
				Inputs: map[string]Occurrences{
					"assetOwner": OnceOrMore,
				},
				Assignments: map[string]Occurrences{
					"assetOwner": OnceOrMore,
				},
				Errors: []string{
					"fractionOverflow",
					"nonEqualValues",
					"nonFractionalToken",
					"unknownToken",
				},
				DefaultAssignment: "assetOwner",
			},
		},
		Errors: map[string]string{
			"fractionOverflow": "the amount of token fractions in outputs " +
				"exceeds 1",
			"unknownToken": "allocation of unknown token ID",
			"nonEqualValues": "the sum of spent token fractions doesn't " +
				"equal to the sum of token fractions in outputs",
			"nonFractionalToken": "attempt to transfer a fraction of " +
				"non-fractionable token",
			"invalidAttachmentType": "attachment has a type which is not " +
				"allowed for the token",
		},
		DefaultOperation: "transfer",
	}
}

// UniqueNft restricts the contract to a single token defined at genesis.
func UniqueNft() Iface {
	types := stl.Rgb21Types()
	return Iface{
		Version:   VersionV1,
		Name:      "UniqueNft",
		Timestamp: declaredAt,
		GlobalState: map[string]GlobalIface{
			"tokens":          GlobalRequired(types.Get("RGB21.TokenData")),
			"attachmentTypes": GlobalRequired(types.Get("RGB21.AttachmentType")),
		},
		Assignments: map[string]AssignIface{
			"assetOwner": AssignPrivate(OwnedDataOf(types.Get("RGB21.Allocation")), ReqOneOrMore),
		},
		Genesis: GenesisIface{
			Modifier: ModifierOverride,
			Globals: map[string]Occurrences{
				"tokens":          Once,
				"attachmentTypes": Once,
			},
			Assignments: map[string]Occurrences{
				"assetOwner": OnceOrMore,
			},
		},
	}
}

// LimitedNft requires the full token collection to be defined at genesis.
func LimitedNft() Iface {
	types := stl.Rgb21Types()
	return Iface{
		Version:   VersionV1,
		Name:      "LimitedNft",
		Timestamp: declaredAt,
		GlobalState: map[string]GlobalIface{
			"tokens":          GlobalOneOrMany(types.Get("RGB21.TokenData")),
			"attachmentTypes": GlobalOneOrMany(types.Get("RGB21.AttachmentType")),
		},
		Assignments: map[string]AssignIface{
			"assetOwner": AssignPrivate(OwnedDataOf(types.Get("RGB21.Allocation")), ReqOneOrMore),
		},
		Genesis: GenesisIface{
			Modifier: ModifierOverride,
			Globals: map[string]Occurrences{
				"tokens":          OnceOrMore,
				"attachmentTypes": OnceOrMore,
			},
			Assignments: map[string]Occurrences{
				"assetOwner": OnceOrMore,
			},
		},
	}
}

// EngravableNft declares an engrave transition which permanently attaches
// owner-provided media to a token.
func EngravableNft() Iface {
	types := stl.Rgb21Types()
	return Iface{
		Version:   VersionV1,
		Name:      "EngravableNft",
		Timestamp: declaredAt,
		GlobalState: map[string]GlobalIface{
			"engravings": GlobalNoneOrMany(types.Get("RGB21.Engraving")),
		},
		Genesis: GenesisIface{
			Modifier: ModifierOverride,
		},
		Transitions: map[string]TransitionIface{
			"engrave": {
				Modifier: ModifierFinal,
				Globals: map[string]Occurrences{
					"engravings": Once,
				},
				Inputs: map[string]Occurrences{
					"assetOwner": OnceOrMore,
				},
				Assignments: map[string]Occurrences{
					"assetOwner": OnceOrMore,
				},
				Errors: []string{
					"fractionOverflow",
					"nonEngravableToken",
					"nonEqualValues",
					"nonFractionalToken",
					"unknownToken",
				},
				DefaultAssignment: "assetOwner",
			},
		},
		Errors: map[string]string{
			"nonEngravableToken": "attempt to engrave on a token which " +
				"prohibit engraving",
		},
	}
}

// IssuableNft declares public inflation allowances measured in token counts
// and an issue transition bounded by them.
func IssuableNft() Iface {
	types := stl.Rgb21Types()
	return Iface{
		Version:   VersionV1,
		Name:      "IssuableNft",
		Timestamp: declaredAt,
		Assignments: map[string]AssignIface{
			"inflationAllowance": AssignPublic(OwnedDataOf(types.Get("RGB21.ItemsCount")), ReqOneOrMore),
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
					"tokens":          NoneOrMore,
					"attachmentTypes": NoneOrMore,
				},
				Inputs: map[string]Occurrences{
					"inflationAllowance": OnceOrMore,
				},
				Assignments: map[string]Occurrences{
					"assetOwner":         NoneOrMore,
					"inflationAllowance": NoneOrMore,
				},
				Errors: []string{
					"fractionOverflow",
					"invalidAttachmentType",
					"issueExceedsAllowance",
					"unknownToken",
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
