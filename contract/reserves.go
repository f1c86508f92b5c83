// Copyright (c) 2024-2026 The RGB Working Group developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package contract

import (
	"bytes"
	"fmt"
	"io"
	"sort"

	"github.com/decred/dcrd/chaincfg/chainhash"

	"github.com/RGB-WG/rgb-interfaces/strictenc"
)

// These constants declare the bounds of proof-of-reserves collections.
const (
	// maxProofLen is the maximum byte length of a single reserve proof.
	maxProofLen = 0xFFFF

	// maxProofs is the maximum number of proofs carried by the issue and
	// burn metadata.
	maxProofs = 0xFFFF
)

// Outpoint references a transaction output on the committing layer 1.
type Outpoint struct {
	Txid chainhash.Hash
	Vout uint32
}

// String returns the outpoint in the usual "txid:vout" form.
func (o Outpoint) String() string {
	return fmt.Sprintf("%s:%d", o.Txid, o.Vout)
}

// StrictEncode serializes the outpoint as the raw txid followed by the
// little endian output index.
func (o Outpoint) StrictEncode(w io.Writer) error {
	if _, err := w.Write(o.Txid[:]); err != nil {
		return err
	}
	return strictenc.WriteUint32(w, o.Vout)
}

// StrictDecode deserializes the outpoint.
func (o *Outpoint) StrictDecode(r io.Reader) error {
	if _, err := io.ReadFull(r, o.Txid[:]); err != nil {
		return err
	}
	return strictenc.ReadUint32(r, &o.Vout)
}

// ProofOfReserves commits to single-use layer 1 funds backing an issuance,
// pairing the controlled output with an opaque proof validated by the
// external engine.
type ProofOfReserves struct {
	Utxo  Outpoint
	Proof []byte
}

// String returns a human-readable summary of the proof.
func (p ProofOfReserves) String() string {
	return fmt.Sprintf("utxo %s, proof %d bytes", p.Utxo, len(p.Proof))
}

// StrictEncode serializes the proof.
func (p ProofOfReserves) StrictEncode(w io.Writer) error {
	if err := p.Utxo.StrictEncode(w); err != nil {
		return err
	}
	return strictenc.WriteBlob16(w, p.Proof, maxProofLen)
}

// StrictDecode deserializes the proof.
func (p *ProofOfReserves) StrictDecode(r io.Reader) error {
	if err := p.Utxo.StrictDecode(r); err != nil {
		return err
	}
	proof, err := strictenc.ReadBlob16(r, maxProofLen)
	if err != nil {
		return err
	}
	p.Proof = proof
	return nil
}

// compare orders proofs by txid, then output index, then proof bytes.  The
// ordering defines the canonical encoding of proof sets.
func (p ProofOfReserves) compare(other ProofOfReserves) int {
	if c := bytes.Compare(p.Utxo.Txid[:], other.Utxo.Txid[:]); c != 0 {
		return c
	}
	switch {
	case p.Utxo.Vout < other.Utxo.Vout:
		return -1
	case p.Utxo.Vout > other.Utxo.Vout:
		return 1
	}
	return bytes.Compare(p.Proof, other.Proof)
}

// writeProofSet serializes a set of proofs with a two-byte count prefix in
// strictly ascending canonical order regardless of the order of the slice.
func writeProofSet(w io.Writer, proofs []ProofOfReserves) error {
	const op = "writeProofSet"
	if len(proofs) > maxProofs {
		msg := fmt.Sprintf("%d reserve proofs exceed maximum of %d",
			len(proofs), maxProofs)
		return strictenc.Error(op, strictenc.ErrTooManyItems, msg)
	}
	sorted := make([]ProofOfReserves, len(proofs))
	copy(sorted, proofs)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].compare(sorted[j]) < 0
	})
	if err := strictenc.WriteUint16(w, uint16(len(sorted))); err != nil {
		return err
	}
	for i, proof := range sorted {
		if i > 0 && sorted[i-1].compare(proof) == 0 {
			msg := "duplicate reserve proof " + proof.String()
			return strictenc.Error(op, strictenc.ErrUnsortedCollection, msg)
		}
		if err := proof.StrictEncode(w); err != nil {
			return err
		}
	}
	return nil
}

// readProofSet deserializes a set of proofs, rejecting out-of-order or
// duplicate entries.
func readProofSet(r io.Reader) ([]ProofOfReserves, error) {
	const op = "readProofSet"
	var count uint16
	if err := strictenc.ReadUint16(r, &count); err != nil {
		return nil, err
	}
	proofs := make([]ProofOfReserves, count)
	for i := range proofs {
		if err := proofs[i].StrictDecode(r); err != nil {
			return nil, err
		}
		if i > 0 && proofs[i-1].compare(proofs[i]) >= 0 {
			msg := "reserve proofs are not in strictly ascending order"
			return nil, strictenc.Error(op,
				strictenc.ErrUnsortedCollection, msg)
		}
	}
	return proofs, nil
}

// IssueMeta is the operation metadata committing to the reserves backing an
// issuance.
type IssueMeta struct {
	Reserves []ProofOfReserves
}

// StrictEncode serializes the metadata.
func (m IssueMeta) StrictEncode(w io.Writer) error {
	return writeProofSet(w, m.Reserves)
}

// StrictDecode deserializes the metadata.
func (m *IssueMeta) StrictDecode(r io.Reader) error {
	reserves, err := readProofSet(r)
	if err != nil {
		return err
	}
	m.Reserves = reserves
	return nil
}

// BurnMeta is the operation metadata committing to the proofs of a supply
// burn.
type BurnMeta struct {
	BurnProofs []ProofOfReserves
}

// StrictEncode serializes the metadata.
func (m BurnMeta) StrictEncode(w io.Writer) error {
	return writeProofSet(w, m.BurnProofs)
}

// StrictDecode deserializes the metadata.
func (m *BurnMeta) StrictDecode(r io.Reader) error {
	proofs, err := readProofSet(r)
	if err != nil {
		return err
	}
	m.BurnProofs = proofs
	return nil
}
