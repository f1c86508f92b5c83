// Copyright (c) 2024-2026 The RGB Working Group developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package iface

import (
	"sort"

	"github.com/RGB-WG/rgb-interfaces/stl"
)

// VersionV1 is the only interface declaration version currently defined.
const VersionV1 = 1

// Modifier defines how an operation declaration relates to the declarations
// of interfaces it is merged with.
type Modifier uint8

const (
	// ModifierAbstract marks a declaration which must be refined before
	// use.
	ModifierAbstract Modifier = 0

	// ModifierOverride marks a declaration which replaces an earlier
	// declaration with the same name.
	ModifierOverride Modifier = 1

	// ModifierFinal marks a declaration which can not be overridden.
	ModifierFinal Modifier = 2
)

// String returns the modifier name used in interface listings.
func (m Modifier) String() string {
	switch m {
	case ModifierAbstract:
		return "abstract"
	case ModifierOverride:
		return "override"
	case ModifierFinal:
		return "final"
	}
	return "unknown"
}

// Occurrences bounds how many state items of a kind an operation may
// declare.
type Occurrences uint8

const (
	// NoneOrOnce allows zero or one item.
	NoneOrOnce Occurrences = 0

	// Once requires exactly one item.
	Once Occurrences = 1

	// NoneOrMore allows any number of items.
	NoneOrMore Occurrences = 2

	// OnceOrMore requires at least one item.
	OnceOrMore Occurrences = 3
)

// String returns the occurrence bound in interface listing form.
func (o Occurrences) String() string {
	switch o {
	case NoneOrOnce:
		return "?"
	case Once:
		return "1"
	case NoneOrMore:
		return "*"
	case OnceOrMore:
		return "+"
	}
	return "unknown"
}

// Requirement bounds how many items of an owned state kind a contract must
// carry overall.
type Requirement uint8

const (
	// ReqOptional allows the state to be absent.
	ReqOptional Requirement = 0

	// ReqRequired requires exactly one item.
	ReqRequired Requirement = 1

	// ReqNoneOrMore allows any number of items.
	ReqNoneOrMore Requirement = 2

	// ReqOneOrMore requires at least one item.
	ReqOneOrMore Requirement = 3
)

// OwnedKind distinguishes the value carried by an owned state item.
type OwnedKind uint8

const (
	// OwnedRights is a bare right with no attached value.
	OwnedRights OwnedKind = 0

	// OwnedAmount is a confidential 64-bit fungible amount.
	OwnedAmount OwnedKind = 1

	// OwnedData is structured state of the declared semantic type.
	OwnedData OwnedKind = 2
)

// OwnedIface declares the value kind of an owned state, together with the
// semantic type for structured state.
type OwnedIface struct {
	Kind OwnedKind
	Type stl.SemID
}

// OwnedDataOf declares structured owned state of the given semantic type.
func OwnedDataOf(id stl.SemID) OwnedIface {
	return OwnedIface{Kind: OwnedData, Type: id}
}

// GlobalIface declares a single global state field of an interface.
type GlobalIface struct {
	Type     stl.SemID
	Required bool
	Multiple bool
}

// GlobalRequired declares a global field with exactly one item.
func GlobalRequired(id stl.SemID) GlobalIface {
	return GlobalIface{Type: id, Required: true}
}

// GlobalOptional declares a global field with zero or one item.
func GlobalOptional(id stl.SemID) GlobalIface {
	return GlobalIface{Type: id}
}

// GlobalOneOrMany declares a global field with at least one item.
func GlobalOneOrMany(id stl.SemID) GlobalIface {
	return GlobalIface{Type: id, Required: true, Multiple: true}
}

// GlobalNoneOrMany declares a global field with any number of items.
func GlobalNoneOrMany(id stl.SemID) GlobalIface {
	return GlobalIface{Type: id, Multiple: true}
}

// AssignIface declares a single owned state field of an interface.
type AssignIface struct {
	Public bool
	Owned  OwnedIface
	Req    Requirement
}

// AssignPrivate declares owned state whose values stay confidential.
func AssignPrivate(owned OwnedIface, req Requirement) AssignIface {
	return AssignIface{Owned: owned, Req: req}
}

// AssignPublic declares owned state whose values are published.
func AssignPublic(owned OwnedIface, req Requirement) AssignIface {
	return AssignIface{Public: true, Owned: owned, Req: req}
}

// GenesisIface declares the state a contract genesis must provide.
type GenesisIface struct {
	Modifier    Modifier
	Metadata    *stl.SemID
	Globals     map[string]Occurrences
	Assignments map[string]Occurrences
	Errors      []string
}

// TransitionIface declares a state transition operation.
type TransitionIface struct {
	Modifier          Modifier
	Optional          bool
	Metadata          *stl.SemID
	Globals           map[string]Occurrences
	Inputs            map[string]Occurrences
	Assignments       map[string]Occurrences
	Errors            []string
	DefaultAssignment string
}

// Iface is a declarative contract interface: the global and owned state a
// conforming contract exposes, the operations it accepts and the validation
// errors those operations may report.
type Iface struct {
	Version          uint8
	Name             string
	Timestamp        int64
	GlobalState      map[string]GlobalIface
	Assignments      map[string]AssignIface
	Genesis          GenesisIface
	Transitions      map[string]TransitionIface
	Errors           map[string]string
	DefaultOperation string
}

// Merge combines interface declarations in order under a new name.  Later
// parts replace same-name fields and operations of earlier ones, with one
// exception: a transition declared with ModifierOverride refines the
// transition of the same name declared by an earlier part, and resolves to
// nothing when no earlier part declares one.  Genesis requirements and
// error vocabularies accumulate.  The standard asset interfaces are
// assembled this way from their building blocks.
func Merge(name string, parts ...Iface) Iface {
	merged := Iface{
		Version:     VersionV1,
		Name:        name,
		GlobalState: make(map[string]GlobalIface),
		Assignments: make(map[string]AssignIface),
		Genesis: GenesisIface{
			Globals:     make(map[string]Occurrences),
			Assignments: make(map[string]Occurrences),
		},
		Transitions: make(map[string]TransitionIface),
		Errors:      make(map[string]string),
	}
	genesisErrors := make(map[string]struct{})
	for _, part := range parts {
		if part.Timestamp > merged.Timestamp {
			merged.Timestamp = part.Timestamp
		}
		for fname, global := range part.GlobalState {
			merged.GlobalState[fname] = global
		}
		for fname, assign := range part.Assignments {
			merged.Assignments[fname] = assign
		}
		merged.Genesis.Modifier = part.Genesis.Modifier
		if part.Genesis.Metadata != nil {
			id := *part.Genesis.Metadata
			merged.Genesis.Metadata = &id
		}
		for fname, occ := range part.Genesis.Globals {
			merged.Genesis.Globals[fname] = occ
		}
		for fname, occ := range part.Genesis.Assignments {
			merged.Genesis.Assignments[fname] = occ
		}
		for _, errName := range part.Genesis.Errors {
			genesisErrors[errName] = struct{}{}
		}
		for opName, transition := range part.Transitions {
			if transition.Modifier == ModifierOverride {
				base, ok := merged.Transitions[opName]
				if !ok {
					// An override with no declared base resolves
					// to nothing.
					continue
				}
				merged.Transitions[opName] = refineTransition(base, transition)
				continue
			}
			merged.Transitions[opName] = transition
		}
		for errName, details := range part.Errors {
			merged.Errors[errName] = details
		}
		if part.DefaultOperation != "" {
			merged.DefaultOperation = part.DefaultOperation
		}
	}
	merged.Genesis.Errors = sortedNames(genesisErrors)
	return merged
}

// refineTransition layers an overriding transition declaration on top of the
// base one: state and input requirements accumulate with the override winning
// per name, error vocabularies union, and the metadata, optional flag and
// default assignment follow the override when it sets them.  The base maps
// are never mutated since parts may share them with the caller.
func refineTransition(base, override TransitionIface) TransitionIface {
	refined := base
	refined.Globals = mergeOccurrences(base.Globals, override.Globals)
	refined.Inputs = mergeOccurrences(base.Inputs, override.Inputs)
	refined.Assignments = mergeOccurrences(base.Assignments, override.Assignments)
	errs := make(map[string]struct{}, len(base.Errors)+len(override.Errors))
	for _, errName := range base.Errors {
		errs[errName] = struct{}{}
	}
	for _, errName := range override.Errors {
		errs[errName] = struct{}{}
	}
	refined.Errors = sortedNames(errs)
	if override.Optional {
		refined.Optional = true
	}
	if override.Metadata != nil {
		id := *override.Metadata
		refined.Metadata = &id
	}
	if override.DefaultAssignment != "" {
		refined.DefaultAssignment = override.DefaultAssignment
	}
	return refined
}

func mergeOccurrences(base, override map[string]Occurrences) map[string]Occurrences {
	if len(base) == 0 && len(override) == 0 {
		return nil
	}
	merged := make(map[string]Occurrences, len(base)+len(override))
	for name, occ := range base {
		merged[name] = occ
	}
	for name, occ := range override {
		merged[name] = occ
	}
	return merged
}

func sortedNames(set map[string]struct{}) []string {
	if len(set) == 0 {
		return nil
	}
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
