// Copyright (c) 2024-2026 The RGB Working Group developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package rgb20 implements the fungible asset standard. It assembles the
RGB20 interface declaration from its building blocks, wraps contract state
with typed accessors for the asset specification, terms and supply, and
builds primary issues with deterministic contract identifiers.
*/
package rgb20
