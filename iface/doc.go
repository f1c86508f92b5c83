// Copyright (c) 2024-2026 The RGB Working Group developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package iface declares contract interfaces. An interface describes the
state a conforming contract exposes and the operations it accepts without
fixing how the contract implements them, in the way a code interface
declares methods without bodies.

The package ships the standard building blocks behind the RGB20, RGB21 and
RGB25 asset standards. Complete standards are assembled from the blocks
with Merge, and every declaration carries a deterministic identifier
computed over its canonical serialization.
*/
package iface
