// Copyright (c) 2024-2026 The RGB Working Group developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package stl

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/decred/dcrd/bech32"
	"lukechampine.com/blake3"
)

// IDSize is the byte size of all type-system identifiers.
const IDSize = 32

// These constants define the human-readable prefixes used when displaying
// identifiers in bech32 form.
const (
	libIDHrp = "stl"
	semIDHrp = "sem"
)

// These constants are the domain-separation prefixes hashed ahead of the
// identified content so that a library identifier can never collide with a
// semantic type identifier.
const (
	libIDTag = "rgb:stl:lib"
	semIDTag = "rgb:stl:sem"
)

// encodeID returns the bech32 form of a 32-byte identifier under the given
// human-readable prefix.  Identifiers come from hashes and are always
// convertible, so a failure is a programming error and panics.
func encodeID(hrp string, id [IDSize]byte) string {
	converted, err := bech32.ConvertBits(id[:], 8, 5, true)
	if err != nil {
		panic(fmt.Sprintf("id bit conversion failed: %v", err))
	}
	encoded, err := bech32.Encode(hrp, converted)
	if err != nil {
		panic(fmt.Sprintf("id encoding failed: %v", err))
	}
	return encoded
}

// SemID is the semantic identifier of a single data type: a hash over the
// fully qualified type name and its structural signature.  Two types share a
// semantic id exactly when their names and memory layouts coincide.
type SemID [IDSize]byte

// String returns the bech32 form of the identifier.
func (id SemID) String() string {
	return encodeID(semIDHrp, id)
}

// LibID is the identifier of a whole type library: a hash over the library
// name, its dependencies and every type it declares.
type LibID [IDSize]byte

// String returns the bech32 form of the identifier.
func (id LibID) String() string {
	return encodeID(libIDHrp, id)
}

// TypeDef declares a single type of a library by its name inside the library
// and its structural signature string.  The signature is a stable textual
// description of the strict-encoded layout; it participates in the semantic
// id so that layout changes produce new identifiers.
type TypeDef struct {
	Name string
	Sig  string
}

// TypeLib is an immutable strict type library: a named set of type
// declarations together with the names of the libraries it depends on.
type TypeLib struct {
	name string
	deps []string
	defs []TypeDef
}

// NewTypeLib constructs a type library.  Definitions are kept in their
// declaration order; identifiers are computed over a sorted view so the ids
// do not depend on declaration order.
func NewTypeLib(name string, deps []string, defs ...TypeDef) TypeLib {
	lib := TypeLib{
		name: name,
		deps: append([]string(nil), deps...),
		defs: append([]TypeDef(nil), defs...),
	}
	return lib
}

// Name returns the library name.
func (l TypeLib) Name() string {
	return l.name
}

// Dependencies returns the names of the libraries this library depends on.
func (l TypeLib) Dependencies() []string {
	return append([]string(nil), l.deps...)
}

// Types returns the type definitions in declaration order.
func (l TypeLib) Types() []TypeDef {
	return append([]TypeDef(nil), l.defs...)
}

// SemID returns the semantic identifier of the named type and reports
// whether the library declares it.
func (l TypeLib) SemID(name string) (SemID, bool) {
	for _, def := range l.defs {
		if def.Name == name {
			return semID(l.name, def), true
		}
	}
	return SemID{}, false
}

// semID hashes the fully qualified name and signature of a type definition.
func semID(libName string, def TypeDef) SemID {
	var buf bytes.Buffer
	buf.WriteString(semIDTag)
	buf.WriteByte(0)
	buf.WriteString(libName)
	buf.WriteByte('.')
	buf.WriteString(def.Name)
	buf.WriteByte(0)
	buf.WriteString(def.Sig)
	return SemID(blake3.Sum256(buf.Bytes()))
}

// ID returns the library identifier.  It is deterministic across runs and
// declaration orderings.
func (l TypeLib) ID() LibID {
	var buf bytes.Buffer
	buf.WriteString(libIDTag)
	buf.WriteByte(0)
	buf.WriteString(l.name)
	buf.WriteByte(0)

	deps := append([]string(nil), l.deps...)
	sort.Strings(deps)
	for _, dep := range deps {
		buf.WriteString(dep)
		buf.WriteByte(0)
	}

	defs := append([]TypeDef(nil), l.defs...)
	sort.Slice(defs, func(i, j int) bool {
		return defs[i].Name < defs[j].Name
	})
	for _, def := range defs {
		id := semID(l.name, def)
		buf.WriteString(def.Name)
		buf.WriteByte(0)
		buf.Write(id[:])
	}
	return LibID(blake3.Sum256(buf.Bytes()))
}

// Types is a read-only lookup of semantic identifiers across one or more
// libraries, keyed by the fully qualified "Library.Type" name.
type Types struct {
	byName map[string]SemID
}

// newTypes indexes the given libraries.
func newTypes(libs ...TypeLib) *Types {
	byName := make(map[string]SemID)
	for _, lib := range libs {
		for _, def := range lib.defs {
			byName[lib.name+"."+def.Name] = semID(lib.name, def)
		}
	}
	return &Types{byName: byName}
}

// Get returns the semantic identifier of the fully qualified type name.  It
// panics when the name is absent, which means a programming error in the
// interface declarations rather than a runtime condition.
func (t *Types) Get(name string) SemID {
	id, ok := t.byName[name]
	if !ok {
		panic(fmt.Sprintf("type %q is absent in the type library", name))
	}
	return id
}

// Contains reports whether the fully qualified type name is known.
func (t *Types) Contains(name string) bool {
	_, ok := t.byName[name]
	return ok
}

// Names returns every known fully qualified type name in sorted order.
func (t *Types) Names() []string {
	names := make([]string, 0, len(t.byName))
	for name := range t.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
