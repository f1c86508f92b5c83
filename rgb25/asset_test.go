// Copyright (c) 2024-2026 The RGB Working Group developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rgb25

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/RGB-WG/rgb-interfaces/contract"
)

// fakeState is an in-memory StateReader for wrapper tests.
type fakeState struct {
	contractID  contract.ContractID
	schemaID    contract.SchemaID
	global      map[string][][]byte
	allocations map[string][]contract.Allocation
}

func (s *fakeState) ContractID() contract.ContractID { return s.contractID }
func (s *fakeState) SchemaID() contract.SchemaID     { return s.schemaID }

func (s *fakeState) GlobalState(name string) ([][]byte, error) {
	return s.global[name], nil
}

func (s *fakeState) Allocations(name string) ([]contract.Allocation, error) {
	return s.allocations[name], nil
}

// encode strict-encodes a codec value for a fake state entry.
func encode(t *testing.T, enc interface{ StrictEncode(w io.Writer) error }) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := enc.StrictEncode(&buf); err != nil {
		t.Fatalf("StrictEncode: %v", err)
	}
	return buf.Bytes()
}

// testOutpoint returns a deterministic seal for tests.
func testOutpoint(fill byte, vout uint32) contract.Outpoint {
	var txid [32]byte
	for i := range txid {
		txid[i] = fill
	}
	return contract.Outpoint{Txid: txid, Vout: vout}
}

// collectibleState builds a fake contract with the separate naming fields a
// collectible carries.
func collectibleState(t *testing.T) *fakeState {
	t.Helper()
	name, err := contract.NewAssetName("Art Collection")
	if err != nil {
		t.Fatalf("NewAssetName: %v", err)
	}
	article, err := contract.NewArticle("piece")
	if err != nil {
		t.Fatalf("NewArticle: %v", err)
	}
	details, err := contract.NewDetails("limited series")
	if err != nil {
		t.Fatalf("NewDetails: %v", err)
	}
	terms, err := contract.NewRicardianContract("collection terms")
	if err != nil {
		t.Fatalf("NewRicardianContract: %v", err)
	}

	return &fakeState{
		global: map[string][][]byte{
			"name":      {encode(t, name)},
			"art":       {encode(t, article)},
			"details":   {encode(t, details)},
			"precision": {encode(t, contract.PrecisionCenti)},
			"terms":     {encode(t, contract.ContractTerms{Text: terms})},
			"issuedSupply": {
				encode(t, contract.Amount(500)),
				encode(t, contract.Amount(100)),
			},
			"burnedSupply": {encode(t, contract.Amount(50))},
		},
		allocations: map[string][]contract.Allocation{
			"assetOwner": {
				{Seal: testOutpoint(1, 0), State: encode(t, contract.Amount(550))},
			},
		},
	}
}

// TestAssetReads ensures the wrapper decodes the collectible naming fields
// and sums supply events.
func TestAssetReads(t *testing.T) {
	asset := New(collectibleState(t), Features{Burnable: true})

	name, err := asset.Name()
	if err != nil {
		t.Fatalf("Name: %v", err)
	}
	if name.String() != "Art Collection" {
		t.Errorf("name = %q", name)
	}
	article, err := asset.Article()
	if err != nil {
		t.Fatalf("Article: %v", err)
	}
	if article.String() != "piece" {
		t.Errorf("article = %q", article)
	}
	details, err := asset.Details()
	if err != nil {
		t.Fatalf("Details: %v", err)
	}
	if details.String() != "limited series" {
		t.Errorf("details = %q", details)
	}
	precision, err := asset.Precision()
	if err != nil {
		t.Fatalf("Precision: %v", err)
	}
	if precision != contract.PrecisionCenti {
		t.Errorf("precision = %v", precision)
	}

	issued, err := asset.TotalIssuedSupply()
	if err != nil {
		t.Fatalf("TotalIssuedSupply: %v", err)
	}
	if issued != 600 {
		t.Errorf("TotalIssuedSupply = %v, want 600", issued)
	}
	burned, err := asset.TotalBurnedSupply()
	if err != nil {
		t.Fatalf("TotalBurnedSupply: %v", err)
	}
	if burned != 50 {
		t.Errorf("TotalBurnedSupply = %v, want 50", burned)
	}
	balance, err := asset.Balance()
	if err != nil {
		t.Fatalf("Balance: %v", err)
	}
	if balance != 550 {
		t.Errorf("Balance = %v, want 550", balance)
	}

	info, err := asset.Info()
	if err != nil {
		t.Fatalf("Info: %v", err)
	}
	if info.Name != "Art Collection" || info.Article != "piece" {
		t.Errorf("info naming = %q, %q", info.Name, info.Article)
	}
	if info.Issued != 600 || info.Burned != 50 {
		t.Errorf("info supply = %v, %v", info.Issued, info.Burned)
	}
}

// TestAssetOptionalFields ensures absent optional fields read as empty while
// absent required fields report ErrNoState.
func TestAssetOptionalFields(t *testing.T) {
	state := collectibleState(t)
	delete(state.global, "art")
	delete(state.global, "details")
	asset := New(state, FeaturesNone)

	article, err := asset.Article()
	if err != nil || article != "" {
		t.Errorf("Article without state = %q, %v", article, err)
	}
	details, err := asset.Details()
	if err != nil || details != "" {
		t.Errorf("Details without state = %q, %v", details, err)
	}

	empty := New(&fakeState{global: map[string][][]byte{}}, FeaturesNone)
	if _, err := empty.Name(); !errors.Is(err, ErrNoState) {
		t.Errorf("Name on empty state: %v, want %v", err, ErrNoState)
	}
	if _, err := empty.Precision(); !errors.Is(err, ErrNoState) {
		t.Errorf("Precision on empty state: %v, want %v", err, ErrNoState)
	}
	if _, err := empty.Terms(); !errors.Is(err, ErrNoState) {
		t.Errorf("Terms on empty state: %v, want %v", err, ErrNoState)
	}
}

// TestAssetMalformedState ensures supply sums and balances report malformed
// state instead of silently skipping it.
func TestAssetMalformedState(t *testing.T) {
	state := collectibleState(t)
	state.global["issuedSupply"] = append(state.global["issuedSupply"],
		[]byte{0x01})
	state.allocations["assetOwner"] = append(state.allocations["assetOwner"],
		contract.Allocation{Seal: testOutpoint(9, 0), State: []byte{0x02}})
	asset := New(state, Features{Burnable: true})

	if _, err := asset.TotalIssuedSupply(); err == nil {
		t.Error("TotalIssuedSupply accepted a malformed supply item")
	}
	if _, err := asset.Balance(); err == nil {
		t.Error("Balance accepted a malformed allocation")
	}
	if _, err := asset.Info(); err == nil {
		t.Error("Info accepted malformed supply state")
	}
}

// TestIfaceNames ensures feature selections derive the published interface
// names.
func TestIfaceNames(t *testing.T) {
	tests := []struct {
		features Features
		want     string
	}{
		{FeaturesAll, "RGB25"},
		{FeaturesNone, "RGB25Base"},
		{Features{Burnable: true}, "RGB25Burnable"},
		{Features{Renaming: true}, "RGB25Renameable"},
		{Features{Renaming: true, Burnable: true}, "RGB25RenameableBurnable"},
	}

	for _, test := range tests {
		got := IfaceOf(test.features)
		if got.Name != test.want {
			t.Errorf("IfaceOf(%+v).Name = %q, want %q", test.features,
				got.Name, test.want)
		}
	}
}
