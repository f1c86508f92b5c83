// Copyright (c) 2024-2026 The RGB Working Group developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package strictenc implements the binary primitives of the strict encoding
used by the RGB contract data types.

The encoding is deliberately minimal and fully deterministic:

  - Multi-byte integers are little endian with no tag.
  - Enumerations are a single discriminant byte validated against the closed
    set of variants declared by the type.
  - Confined strings and blobs carry a one- or two-byte length prefix
    depending on the maximum length declared by the type, followed by the
    raw bytes.  Length bounds are enforced on both encode and decode.
  - Optional values carry a single tag byte (0x00 absent, 0x01 present)
    followed by the payload when present.
  - Ordered collections carry a count prefix followed by their elements in
    strictly ascending order.
  - Reserved alignment blocks are bare fixed-length byte runs with no tag
    and no payload semantics.

Truncated input is always an unrecoverable framing error: a read of zero
bytes reports io.EOF and a partial read reports io.ErrUnexpectedEOF.  All
other malformed input is reported through CodecError values which fully
support the errors.Is and errors.As interfaces.
*/
package strictenc
