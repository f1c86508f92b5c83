// Copyright (c) 2024-2026 The RGB Working Group developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package iface

import (
	"sort"
)

// registry indexes the standard interface declarations by name and by
// identifier.  It is built once at startup and read-only afterwards.
var registry = newRegistry(
	NamedAsset(),
	RenameableAsset(),
	FungibleAsset(),
	ReservableAsset(),
	FixedAsset(),
	InflatableAsset(),
	BurnableAsset(),
	ReplaceableAsset(),
	NonFungibleToken(),
	UniqueNft(),
	LimitedNft(),
	EngravableNft(),
	IssuableNft(),
	NamedContract(),
)

type registryIndex struct {
	byName map[string]Iface
	byID   map[IfaceID]Iface
}

func newRegistry(ifaces ...Iface) *registryIndex {
	index := &registryIndex{
		byName: make(map[string]Iface, len(ifaces)),
		byID:   make(map[IfaceID]Iface, len(ifaces)),
	}
	for _, i := range ifaces {
		index.byName[i.Name] = i
		index.byID[i.ID()] = i
	}
	return index
}

// ByName returns the standard interface declaration with the given name and
// reports whether it is known.
func ByName(name string) (Iface, bool) {
	i, ok := registry.byName[name]
	return i, ok
}

// ByID returns the standard interface declaration with the given identifier
// and reports whether it is known.
func ByID(id IfaceID) (Iface, bool) {
	i, ok := registry.byID[id]
	return i, ok
}

// Names returns the names of all standard interface declarations in sorted
// order.
func Names() []string {
	names := make([]string, 0, len(registry.byName))
	for name := range registry.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
