// Copyright (c) 2024-2026 The RGB Working Group developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package iface

import (
	"reflect"
	"testing"

	"github.com/RGB-WG/rgb-interfaces/stl"
)

// TestOccurrencesString ensures the listing form of occurrence bounds.
func TestOccurrencesString(t *testing.T) {
	tests := []struct {
		occ  Occurrences
		want string
	}{
		{NoneOrOnce, "?"},
		{Once, "1"},
		{NoneOrMore, "*"},
		{OnceOrMore, "+"},
		{Occurrences(99), "unknown"},
	}
	for _, test := range tests {
		if got := test.occ.String(); got != test.want {
			t.Errorf("Occurrences(%d).String() = %q, want %q",
				test.occ, got, test.want)
		}
	}
}

// TestModifierString ensures the listing form of operation modifiers.
func TestModifierString(t *testing.T) {
	tests := []struct {
		mod  Modifier
		want string
	}{
		{ModifierAbstract, "abstract"},
		{ModifierOverride, "override"},
		{ModifierFinal, "final"},
		{Modifier(99), "unknown"},
	}
	for _, test := range tests {
		if got := test.mod.String(); got != test.want {
			t.Errorf("Modifier(%d).String() = %q, want %q",
				test.mod, got, test.want)
		}
	}
}

// TestMergeOverride ensures later parts replace same-name declarations of
// earlier ones while independent declarations accumulate.
func TestMergeOverride(t *testing.T) {
	amountID := stl.CommonTypes().Get("RGBContract.Amount")

	base := Iface{
		Version:   VersionV1,
		Name:      "Base",
		Timestamp: 100,
		GlobalState: map[string]GlobalIface{
			"shared": GlobalOptional(amountID),
			"first":  GlobalRequired(amountID),
		},
		Transitions: map[string]TransitionIface{
			"transfer": {Modifier: ModifierAbstract},
		},
		Errors: map[string]string{"err1": "first error"},
		Genesis: GenesisIface{
			Modifier: ModifierAbstract,
			Globals:  map[string]Occurrences{"first": Once},
			Errors:   []string{"err1"},
		},
	}
	ext := Iface{
		Version:   VersionV1,
		Name:      "Ext",
		Timestamp: 50,
		GlobalState: map[string]GlobalIface{
			"shared": GlobalOneOrMany(amountID),
			"second": GlobalOptional(amountID),
		},
		Transitions: map[string]TransitionIface{
			"transfer": {Modifier: ModifierFinal},
			"burn":     {Modifier: ModifierFinal},
		},
		Errors: map[string]string{"err2": "second error"},
		Genesis: GenesisIface{
			Modifier: ModifierOverride,
			Globals:  map[string]Occurrences{"second": NoneOrOnce},
			Errors:   []string{"err2", "err1"},
		},
		DefaultOperation: "transfer",
	}

	merged := Merge("Merged", base, ext)
	if merged.Name != "Merged" {
		t.Errorf("name = %q", merged.Name)
	}
	if merged.Version != VersionV1 {
		t.Errorf("version = %d", merged.Version)
	}
	// The timestamp is the maximum across the parts.
	if merged.Timestamp != 100 {
		t.Errorf("timestamp = %d, want 100", merged.Timestamp)
	}
	if len(merged.GlobalState) != 3 {
		t.Errorf("global state count = %d, want 3", len(merged.GlobalState))
	}
	// The later part wins conflicting declarations.
	if !merged.GlobalState["shared"].Multiple {
		t.Error("shared global not overridden by later part")
	}
	if merged.Transitions["transfer"].Modifier != ModifierFinal {
		t.Error("transfer transition not overridden by later part")
	}
	if len(merged.Transitions) != 2 {
		t.Errorf("transition count = %d, want 2", len(merged.Transitions))
	}
	if len(merged.Errors) != 2 {
		t.Errorf("error count = %d, want 2", len(merged.Errors))
	}
	// Genesis modifier follows the last part, requirements accumulate and
	// the error set deduplicates in sorted order.
	if merged.Genesis.Modifier != ModifierOverride {
		t.Errorf("genesis modifier = %v", merged.Genesis.Modifier)
	}
	if len(merged.Genesis.Globals) != 2 {
		t.Errorf("genesis globals = %d, want 2", len(merged.Genesis.Globals))
	}
	wantErrs := []string{"err1", "err2"}
	if !reflect.DeepEqual(merged.Genesis.Errors, wantErrs) {
		t.Errorf("genesis errors = %v, want %v", merged.Genesis.Errors,
			wantErrs)
	}
	if merged.DefaultOperation != "transfer" {
		t.Errorf("default operation = %q", merged.DefaultOperation)
	}
}

// TestMergeTransitionOverride ensures an overriding transition refines the
// declaration of an earlier part and resolves to nothing when no earlier
// part declares the operation.
func TestMergeTransitionOverride(t *testing.T) {
	metaID := stl.CommonTypes().Get("RGBContract.IssueMeta")

	base := Iface{
		Version: VersionV1,
		Name:    "Base",
		Transitions: map[string]TransitionIface{
			"issue": {
				Modifier: ModifierAbstract,
				Globals:  map[string]Occurrences{"issuedSupply": Once},
				Inputs:   map[string]Occurrences{"inflationAllowance": OnceOrMore},
				Errors:   []string{"issueExceedsAllowance"},
			},
		},
	}
	override := Iface{
		Version: VersionV1,
		Name:    "Override",
		Transitions: map[string]TransitionIface{
			"issue": {
				Modifier:          ModifierOverride,
				Optional:          true,
				Metadata:          &metaID,
				Errors:            []string{"invalidProof", "issueExceedsAllowance"},
				DefaultAssignment: "assetOwner",
			},
		},
	}

	// With no base declared the override must not materialize.
	alone := Merge("Alone", override)
	if _, ok := alone.Transitions["issue"]; ok {
		t.Fatal("override without a base materialized a transition")
	}

	merged := Merge("Merged", base, override)
	issue, ok := merged.Transitions["issue"]
	if !ok {
		t.Fatal("refined transition missing")
	}
	if issue.Modifier != ModifierAbstract {
		t.Errorf("modifier = %v, want %v", issue.Modifier, ModifierAbstract)
	}
	if !issue.Optional {
		t.Error("optional flag not taken from the override")
	}
	if issue.Metadata == nil || *issue.Metadata != metaID {
		t.Error("metadata not taken from the override")
	}
	if issue.DefaultAssignment != "assetOwner" {
		t.Errorf("default assignment = %q", issue.DefaultAssignment)
	}
	// Base requirements survive the refinement.
	if issue.Globals["issuedSupply"] != Once {
		t.Error("base global requirement lost")
	}
	if issue.Inputs["inflationAllowance"] != OnceOrMore {
		t.Error("base input requirement lost")
	}
	wantErrs := []string{"invalidProof", "issueExceedsAllowance"}
	if !reflect.DeepEqual(issue.Errors, wantErrs) {
		t.Errorf("errors = %v, want %v", issue.Errors, wantErrs)
	}
	// The refinement must not write through to the base part's maps.
	if _, ok := base.Transitions["issue"].Assignments["assetOwner"]; ok {
		t.Error("refinement mutated the base declaration")
	}
}

// TestIfaceIDDeterminism ensures the identifier is stable across repeated
// construction and sensitive to content changes.
func TestIfaceIDDeterminism(t *testing.T) {
	first := NamedAsset()
	second := NamedAsset()
	if first.ID() != second.ID() {
		t.Fatal("identical declarations derive different identifiers")
	}

	renamed := NamedAsset()
	renamed.Name = "SomethingElse"
	if renamed.ID() == first.ID() {
		t.Fatal("renamed declaration keeps the identifier")
	}

	shifted := NamedAsset()
	shifted.Timestamp++
	if shifted.ID() == first.ID() {
		t.Fatal("shifted timestamp keeps the identifier")
	}
}

// TestIfaceIDDistinct ensures every standard building block has a distinct
// identifier and the string form carries the expected prefix.
func TestIfaceIDDistinct(t *testing.T) {
	blocks := []Iface{
		NamedAsset(), RenameableAsset(), FungibleAsset(), ReservableAsset(),
		FixedAsset(), InflatableAsset(), BurnableAsset(), ReplaceableAsset(),
		NonFungibleToken(), UniqueNft(), LimitedNft(), EngravableNft(),
		IssuableNft(), NamedContract(),
	}
	seen := make(map[IfaceID]string)
	for _, block := range blocks {
		id := block.ID()
		if prev, ok := seen[id]; ok {
			t.Errorf("%s and %s share an identifier", prev, block.Name)
		}
		seen[id] = block.Name
		if s := id.String(); len(s) < 4 || s[:3] != "if1" {
			t.Errorf("%s: identifier string %q lacks if1 prefix",
				block.Name, s)
		}
	}
}
