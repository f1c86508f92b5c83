// Copyright (c) 2024-2026 The RGB Working Group developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rgb21

import (
	"errors"
	"testing"

	"github.com/RGB-WG/rgb-interfaces/contract"
)

// issueOutpoint returns a deterministic genesis seal for tests.
func issueOutpoint(fill byte, vout uint32) contract.Outpoint {
	var txid [32]byte
	for i := range txid {
		txid[i] = fill
	}
	return contract.Outpoint{Txid: txid, Vout: vout}
}

// TestTokenIssueErrors ensures the issue builder rejects invalid token
// definitions and allocations.
func TestTokenIssueErrors(t *testing.T) {
	ti, err := NewTokenIssue("NFT", "Test Collection", "",
		contract.PrecisionIndivisible)
	if err != nil {
		t.Fatalf("NewTokenIssue: %v", err)
	}

	// Issuing before any token is defined must fail.
	if _, err := ti.IssueAt(1711405444); !errors.Is(err, ErrNoTokens) {
		t.Fatalf("IssueAt with no tokens: %v, want %v", err, ErrNoTokens)
	}

	// Allocating an undefined token must fail.
	err = ti.Allocate(issueOutpoint(1, 0), NewNft(0, 1))
	if !errors.Is(err, ErrUnknownToken) {
		t.Fatalf("Allocate undefined: %v, want %v", err, ErrUnknownToken)
	}

	if err := ti.DefineToken(NftSpec{Index: 0}); err != nil {
		t.Fatalf("DefineToken: %v", err)
	}
	if err := ti.DefineToken(NftSpec{Index: 0}); !errors.Is(err, ErrDuplicateToken) {
		t.Fatalf("duplicate DefineToken: %v, want %v", err,
			ErrDuplicateToken)
	}

	// Per-token fraction totals must not overflow.
	if err := ti.Allocate(issueOutpoint(1, 0), NewNft(0, 1<<64-1)); err != nil {
		t.Fatalf("Allocate max: %v", err)
	}
	err = ti.Allocate(issueOutpoint(1, 1), NewNft(0, 1))
	if !errors.Is(err, ErrFractionOverflow) {
		t.Fatalf("Allocate overflow: %v, want %v", err, ErrFractionOverflow)
	}
}

// TestTokenIssueDeterministicID ensures the contract identifier depends only
// on the canonical genesis content, not on the order tokens and allocations
// were added in.
func TestTokenIssueDeterministicID(t *testing.T) {
	build := func(reversed bool) *Issuance {
		t.Helper()
		ti, err := NewTokenIssue("NFT", "Test Collection", "",
			contract.PrecisionIndivisible)
		if err != nil {
			t.Fatalf("NewTokenIssue: %v", err)
		}
		if err := ti.SetTerms("collection terms", nil); err != nil {
			t.Fatalf("SetTerms: %v", err)
		}
		tokens := []NftSpec{{Index: 0}, {Index: 1}}
		seals := []struct {
			seal contract.Outpoint
			nft  Nft
		}{
			{issueOutpoint(1, 0), NewNft(0, 1)},
			{issueOutpoint(2, 0), NewNft(1, 100)},
		}
		if reversed {
			tokens[0], tokens[1] = tokens[1], tokens[0]
			seals[0], seals[1] = seals[1], seals[0]
		}
		for _, token := range tokens {
			if err := ti.DefineToken(token); err != nil {
				t.Fatalf("DefineToken: %v", err)
			}
		}
		for _, s := range seals {
			if err := ti.Allocate(s.seal, s.nft); err != nil {
				t.Fatalf("Allocate: %v", err)
			}
		}
		iss, err := ti.IssueAt(1711405444)
		if err != nil {
			t.Fatalf("IssueAt: %v", err)
		}
		return iss
	}

	first := build(false)
	second := build(true)
	if first.ContractID != second.ContractID {
		t.Fatalf("contract ID depends on insertion order: %v != %v",
			first.ContractID, second.ContractID)
	}
	if first.ContractID == (contract.ContractID{}) {
		t.Fatal("contract ID is zero")
	}

	// A different timestamp must change the identifier.
	ti, err := NewTokenIssue("NFT", "Test Collection", "",
		contract.PrecisionIndivisible)
	if err != nil {
		t.Fatalf("NewTokenIssue: %v", err)
	}
	if err := ti.SetTerms("collection terms", nil); err != nil {
		t.Fatalf("SetTerms: %v", err)
	}
	if err := ti.DefineToken(NftSpec{Index: 0}); err != nil {
		t.Fatalf("DefineToken: %v", err)
	}
	other, err := ti.IssueAt(1711405445)
	if err != nil {
		t.Fatalf("IssueAt: %v", err)
	}
	if other.ContractID == first.ContractID {
		t.Fatal("contract ID ignores timestamp")
	}
}
