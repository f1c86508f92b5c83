// Copyright (c) 2024-2026 The RGB Working Group developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package contract

import (
	"bytes"
	"errors"
	"reflect"
	"testing"

	"github.com/davecgh/go-spew/spew"

	"github.com/RGB-WG/rgb-interfaces/strictenc"
)

// testOutpoint returns an outpoint with a txid filled with the given byte.
func testOutpoint(fill byte, vout uint32) Outpoint {
	var op Outpoint
	for i := range op.Txid {
		op.Txid[i] = fill
	}
	op.Vout = vout
	return op
}

// TestOutpointRoundTrip ensures outpoints survive a strict round trip.
func TestOutpointRoundTrip(t *testing.T) {
	in := testOutpoint(0xab, 7)
	var buf bytes.Buffer
	if err := in.StrictEncode(&buf); err != nil {
		t.Fatalf("StrictEncode: %v", err)
	}
	// 32 txid bytes plus a 4 byte output index.
	if buf.Len() != 36 {
		t.Fatalf("encoded length = %d, want 36", buf.Len())
	}
	var out Outpoint
	if err := out.StrictDecode(&buf); err != nil {
		t.Fatalf("StrictDecode: %v", err)
	}
	if out != in {
		t.Fatalf("round trip mismatch: got %s want %s", spew.Sdump(out),
			spew.Sdump(in))
	}
}

// TestProofSetOrdering ensures proof sets serialize in canonical ascending
// order regardless of input order and reject duplicates.
func TestProofSetOrdering(t *testing.T) {
	proofA := ProofOfReserves{Utxo: testOutpoint(0x01, 0), Proof: []byte{1}}
	proofB := ProofOfReserves{Utxo: testOutpoint(0x01, 1), Proof: []byte{2}}
	proofC := ProofOfReserves{Utxo: testOutpoint(0x02, 0), Proof: []byte{3}}

	sorted := IssueMeta{Reserves: []ProofOfReserves{proofA, proofB, proofC}}
	shuffled := IssueMeta{Reserves: []ProofOfReserves{proofC, proofA, proofB}}

	var bufSorted, bufShuffled bytes.Buffer
	if err := sorted.StrictEncode(&bufSorted); err != nil {
		t.Fatalf("StrictEncode(sorted): %v", err)
	}
	if err := shuffled.StrictEncode(&bufShuffled); err != nil {
		t.Fatalf("StrictEncode(shuffled): %v", err)
	}
	if !bytes.Equal(bufSorted.Bytes(), bufShuffled.Bytes()) {
		t.Fatal("serialization depends on input order")
	}

	var out IssueMeta
	if err := out.StrictDecode(&bufSorted); err != nil {
		t.Fatalf("StrictDecode: %v", err)
	}
	want := []ProofOfReserves{proofA, proofB, proofC}
	if !reflect.DeepEqual(out.Reserves, want) {
		t.Fatalf("decoded set mismatch: got %s want %s",
			spew.Sdump(out.Reserves), spew.Sdump(want))
	}

	dup := BurnMeta{BurnProofs: []ProofOfReserves{proofA, proofA}}
	var buf bytes.Buffer
	err := dup.StrictEncode(&buf)
	if !errors.Is(err, strictenc.ErrUnsortedCollection) {
		t.Fatalf("StrictEncode(duplicates) error = %v, want %v", err,
			strictenc.ErrUnsortedCollection)
	}
}

// TestProofSetRejectsUnsortedWire ensures an unsorted wire stream is
// rejected on decode.
func TestProofSetRejectsUnsortedWire(t *testing.T) {
	proofA := ProofOfReserves{Utxo: testOutpoint(0x01, 0), Proof: []byte{1}}
	proofB := ProofOfReserves{Utxo: testOutpoint(0x02, 0), Proof: []byte{2}}

	// Hand-build a stream with the proofs in descending order.
	var buf bytes.Buffer
	if err := strictenc.WriteUint16(&buf, 2); err != nil {
		t.Fatalf("WriteUint16: %v", err)
	}
	if err := proofB.StrictEncode(&buf); err != nil {
		t.Fatalf("StrictEncode: %v", err)
	}
	if err := proofA.StrictEncode(&buf); err != nil {
		t.Fatalf("StrictEncode: %v", err)
	}

	var out IssueMeta
	err := out.StrictDecode(&buf)
	if !errors.Is(err, strictenc.ErrUnsortedCollection) {
		t.Fatalf("StrictDecode(unsorted) error = %v, want %v", err,
			strictenc.ErrUnsortedCollection)
	}
}

// TestOutpointString ensures the textual form is "txid:vout".
func TestOutpointString(t *testing.T) {
	op := testOutpoint(0x00, 5)
	want := op.Txid.String() + ":5"
	if got := op.String(); got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}
