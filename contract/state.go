// Copyright (c) 2024-2026 The RGB Working Group developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package contract

// Allocation is a single piece of owned state assigned to a layer 1 output.
// The state value is kept in its strict-encoded form; the standard wrappers
// decode it into the typed representation the interface declares for the
// assignment.
type Allocation struct {
	Seal  Outpoint
	State []byte
}

// StateReader provides read access to the validated global and owned state
// of a contract.  Implementations are supplied by the external validation
// engine; this library only consumes the interface to decode typed values
// out of the raw strict-encoded state.
//
// Global state entries and allocations are returned in their validated
// consensus ordering.
type StateReader interface {
	// ContractID returns the identifier of the contract.
	ContractID() ContractID

	// SchemaID returns the identifier of the schema the contract is
	// issued under.
	SchemaID() SchemaID

	// GlobalState returns every known value of the named global state,
	// each in strict-encoded form.
	GlobalState(name string) ([][]byte, error)

	// Allocations returns every known allocation of the named owned
	// state.
	Allocations(name string) ([]Allocation, error)
}
