// Copyright (c) 2024-2026 The RGB Working Group developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package iface

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"sort"

	"github.com/decred/dcrd/bech32"
	"lukechampine.com/blake3"

	"github.com/RGB-WG/rgb-interfaces/stl"
)

// IDSize is the byte size of an interface identifier.
const IDSize = 32

// ifaceIDHrp is the human-readable prefix of interface identifiers in
// bech32 form.
const ifaceIDHrp = "if"

// ifaceIDTag is the domain-separation prefix hashed ahead of the canonical
// interface serialization.
const ifaceIDTag = "rgb:iface"

// IfaceID is the identifier of an interface declaration: a hash over its
// canonical serialization.  Two declarations share an identifier exactly
// when every field, operation and error of them coincides.
type IfaceID [IDSize]byte

// String returns the bech32 form of the identifier.
func (id IfaceID) String() string {
	converted, err := bech32.ConvertBits(id[:], 8, 5, true)
	if err != nil {
		panic(fmt.Sprintf("interface id bit conversion failed: %v", err))
	}
	encoded, err := bech32.Encode(ifaceIDHrp, converted)
	if err != nil {
		panic(fmt.Sprintf("interface id encoding failed: %v", err))
	}
	return encoded
}

// ID computes the interface identifier.  Map entries are serialized in
// lexicographic key order so the identifier does not depend on construction
// order.
func (i Iface) ID() IfaceID {
	var buf bytes.Buffer
	buf.WriteString(ifaceIDTag)
	buf.WriteByte(0)

	buf.WriteByte(i.Version)
	writeName(&buf, i.Name)
	var ts [8]byte
	binary.LittleEndian.PutUint64(ts[:], uint64(i.Timestamp))
	buf.Write(ts[:])

	for _, fname := range sortedKeys(i.GlobalState) {
		global := i.GlobalState[fname]
		writeName(&buf, fname)
		buf.Write(global.Type[:])
		buf.WriteByte(boolByte(global.Required))
		buf.WriteByte(boolByte(global.Multiple))
	}
	buf.WriteByte(0xff)

	for _, fname := range sortedKeys(i.Assignments) {
		assign := i.Assignments[fname]
		writeName(&buf, fname)
		buf.WriteByte(boolByte(assign.Public))
		buf.WriteByte(byte(assign.Owned.Kind))
		buf.Write(assign.Owned.Type[:])
		buf.WriteByte(byte(assign.Req))
	}
	buf.WriteByte(0xff)

	writeGenesis(&buf, i.Genesis)

	for _, opName := range sortedKeys(i.Transitions) {
		transition := i.Transitions[opName]
		writeName(&buf, opName)
		writeTransition(&buf, transition)
	}
	buf.WriteByte(0xff)

	for _, errName := range sortedKeys(i.Errors) {
		writeName(&buf, errName)
		writeName(&buf, i.Errors[errName])
	}
	buf.WriteByte(0xff)

	writeName(&buf, i.DefaultOperation)

	return IfaceID(blake3.Sum256(buf.Bytes()))
}

func writeGenesis(buf *bytes.Buffer, genesis GenesisIface) {
	buf.WriteByte(byte(genesis.Modifier))
	writeMetadata(buf, genesis.Metadata)
	writeOccurrenceMap(buf, genesis.Globals)
	writeOccurrenceMap(buf, genesis.Assignments)
	writeErrorSet(buf, genesis.Errors)
}

func writeTransition(buf *bytes.Buffer, transition TransitionIface) {
	buf.WriteByte(byte(transition.Modifier))
	buf.WriteByte(boolByte(transition.Optional))
	writeMetadata(buf, transition.Metadata)
	writeOccurrenceMap(buf, transition.Globals)
	writeOccurrenceMap(buf, transition.Inputs)
	writeOccurrenceMap(buf, transition.Assignments)
	writeErrorSet(buf, transition.Errors)
	writeName(buf, transition.DefaultAssignment)
}

func writeMetadata(buf *bytes.Buffer, metadata *stl.SemID) {
	if metadata == nil {
		buf.WriteByte(0x00)
		return
	}
	buf.WriteByte(0x01)
	buf.Write(metadata[:])
}

func writeOccurrenceMap(buf *bytes.Buffer, entries map[string]Occurrences) {
	for _, fname := range sortedKeys(entries) {
		writeName(buf, fname)
		buf.WriteByte(byte(entries[fname]))
	}
	buf.WriteByte(0xff)
}

func writeErrorSet(buf *bytes.Buffer, errNames []string) {
	sorted := append([]string(nil), errNames...)
	sort.Strings(sorted)
	for _, errName := range sorted {
		writeName(buf, errName)
	}
	buf.WriteByte(0xff)
}

func writeName(buf *bytes.Buffer, name string) {
	var size [2]byte
	binary.LittleEndian.PutUint16(size[:], uint16(len(name)))
	buf.Write(size[:])
	buf.WriteString(name)
}

func boolByte(v bool) byte {
	if v {
		return 0x01
	}
	return 0x00
}

func sortedKeys[V any](entries map[string]V) []string {
	keys := make([]string, 0, len(entries))
	for key := range entries {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
