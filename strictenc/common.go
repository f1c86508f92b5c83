// Copyright (c) 2024-2026 The RGB Working Group developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package strictenc

import (
	"encoding/binary"
	"fmt"
	"io"
)

const (
	// printableAsciiRangeLower is the lower limit of the printable ASCII
	// range permitted by restricted strings.
	printableAsciiRangeLower = 0x20

	// printableAsciiRangeUpper is the upper limit of the printable ASCII
	// range permitted by restricted strings.
	printableAsciiRangeUpper = 0x7e
)

// littleEndian is a convenience variable since binary.LittleEndian is quite
// long.  All multi-byte integers of the encoding are little endian.
var littleEndian = binary.LittleEndian

// readFull reads exactly len(buf) bytes from r.  A read of zero bytes reports
// io.EOF and a partial read reports io.ErrUnexpectedEOF so that truncated
// input always surfaces as an unrecoverable framing error.
func readFull(r io.Reader, buf []byte) error {
	_, err := io.ReadFull(r, buf)
	return err
}

// ReadUint8 reads a byte and stores it to *value.
func ReadUint8(r io.Reader, value *uint8) error {
	var buf [1]byte
	if err := readFull(r, buf[:]); err != nil {
		return err
	}
	*value = buf[0]
	return nil
}

// ReadUint16 reads the little endian encoding of a uint16 and stores it to
// *value.
func ReadUint16(r io.Reader, value *uint16) error {
	var buf [2]byte
	if err := readFull(r, buf[:]); err != nil {
		return err
	}
	*value = littleEndian.Uint16(buf[:])
	return nil
}

// ReadUint32 reads the little endian encoding of a uint32 and stores it to
// *value.
func ReadUint32(r io.Reader, value *uint32) error {
	var buf [4]byte
	if err := readFull(r, buf[:]); err != nil {
		return err
	}
	*value = littleEndian.Uint32(buf[:])
	return nil
}

// ReadUint64 reads the little endian encoding of a uint64 and stores it to
// *value.
func ReadUint64(r io.Reader, value *uint64) error {
	var buf [8]byte
	if err := readFull(r, buf[:]); err != nil {
		return err
	}
	*value = littleEndian.Uint64(buf[:])
	return nil
}

// WriteUint8 writes a single byte to w.
func WriteUint8(w io.Writer, value uint8) error {
	buf := [1]byte{value}
	_, err := w.Write(buf[:])
	return err
}

// WriteUint16 writes the little endian encoding of a uint16 to w.
func WriteUint16(w io.Writer, value uint16) error {
	var buf [2]byte
	littleEndian.PutUint16(buf[:], value)
	_, err := w.Write(buf[:])
	return err
}

// WriteUint32 writes the little endian encoding of a uint32 to w.
func WriteUint32(w io.Writer, value uint32) error {
	var buf [4]byte
	littleEndian.PutUint32(buf[:], value)
	_, err := w.Write(buf[:])
	return err
}

// WriteUint64 writes the little endian encoding of a uint64 to w.
func WriteUint64(w io.Writer, value uint64) error {
	var buf [8]byte
	littleEndian.PutUint64(buf[:], value)
	_, err := w.Write(buf[:])
	return err
}

// WriteOptionTag writes the single tag byte of an optional field: 0x01 when
// the value is present and 0x00 when it is absent.  The payload of a present
// value follows the tag and must be written by the caller.
func WriteOptionTag(w io.Writer, present bool) error {
	tag := uint8(0x00)
	if present {
		tag = 0x01
	}
	return WriteUint8(w, tag)
}

// ReadOptionTag reads the tag byte of an optional field and reports whether
// the payload is present.  Any tag other than 0x00 or 0x01 is an error.
func ReadOptionTag(r io.Reader) (bool, error) {
	const op = "ReadOptionTag"
	var tag uint8
	if err := ReadUint8(r, &tag); err != nil {
		return false, err
	}
	switch tag {
	case 0x00:
		return false, nil
	case 0x01:
		return true, nil
	}
	msg := fmt.Sprintf("invalid option tag 0x%02x", tag)
	return false, codecError(op, ErrInvalidOptionTag, msg)
}

// WriteBlob8 writes a byte blob confined to at most maxLen bytes using a
// single length-prefix byte.  maxLen must not exceed 255.
func WriteBlob8(w io.Writer, blob []byte, maxLen int) error {
	const op = "WriteBlob8"
	if len(blob) > maxLen {
		msg := fmt.Sprintf("blob of %d bytes exceeds maximum of %d",
			len(blob), maxLen)
		return codecError(op, ErrBlobTooLong, msg)
	}
	if err := WriteUint8(w, uint8(len(blob))); err != nil {
		return err
	}
	_, err := w.Write(blob)
	return err
}

// ReadBlob8 reads a byte blob with a single length-prefix byte, rejecting
// lengths above maxLen.
func ReadBlob8(r io.Reader, maxLen int) ([]byte, error) {
	const op = "ReadBlob8"
	var length uint8
	if err := ReadUint8(r, &length); err != nil {
		return nil, err
	}
	if int(length) > maxLen {
		msg := fmt.Sprintf("blob of %d bytes exceeds maximum of %d",
			length, maxLen)
		return nil, codecError(op, ErrBlobTooLong, msg)
	}
	blob := make([]byte, length)
	if err := readFull(r, blob); err != nil {
		return nil, err
	}
	return blob, nil
}

// WriteBlob16 writes a byte blob confined to at most maxLen bytes using a
// two-byte little endian length prefix.  maxLen must not exceed 65535.
func WriteBlob16(w io.Writer, blob []byte, maxLen int) error {
	const op = "WriteBlob16"
	if len(blob) > maxLen {
		msg := fmt.Sprintf("blob of %d bytes exceeds maximum of %d",
			len(blob), maxLen)
		return codecError(op, ErrBlobTooLong, msg)
	}
	if err := WriteUint16(w, uint16(len(blob))); err != nil {
		return err
	}
	_, err := w.Write(blob)
	return err
}

// ReadBlob16 reads a byte blob with a two-byte little endian length prefix,
// rejecting lengths above maxLen.
func ReadBlob16(r io.Reader, maxLen int) ([]byte, error) {
	const op = "ReadBlob16"
	var length uint16
	if err := ReadUint16(r, &length); err != nil {
		return nil, err
	}
	if int(length) > maxLen {
		msg := fmt.Sprintf("blob of %d bytes exceeds maximum of %d",
			length, maxLen)
		return nil, codecError(op, ErrBlobTooLong, msg)
	}
	blob := make([]byte, length)
	if err := readFull(r, blob); err != nil {
		return nil, err
	}
	return blob, nil
}

// IsPrintableAscii reports whether every byte of s lies within the printable
// ASCII range [0x20, 0x7e].
func IsPrintableAscii(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < printableAsciiRangeLower || s[i] > printableAsciiRangeUpper {
			return false
		}
	}
	return true
}

// WritePadding writes size zero bytes to w.  It is used to emit the reserved
// field-alignment blocks which carry no payload.
func WritePadding(w io.Writer, size int) error {
	_, err := w.Write(make([]byte, size))
	return err
}

// ReadPadding consumes exactly size bytes from r and discards their content.
// The bytes are reserved and not required to be zero on read, but the cursor
// must advance by exactly the declared length or the stream desyncs, so
// truncated input propagates as an unrecoverable framing error.
func ReadPadding(r io.Reader, size int) error {
	return readFull(r, make([]byte, size))
}
