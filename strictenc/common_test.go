// Copyright (c) 2024-2026 The RGB Working Group developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package strictenc

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

// TestUintCodecs ensures the fixed-width integer codecs are little-endian
// and round-trip.
func TestUintCodecs(t *testing.T) {
	var buf bytes.Buffer

	if err := WriteUint16(&buf, 0x0102); err != nil {
		t.Fatalf("WriteUint16: %v", err)
	}
	if !bytes.Equal(buf.Bytes(), []byte{0x02, 0x01}) {
		t.Fatalf("WriteUint16 = %x, want 0201", buf.Bytes())
	}
	var v16 uint16
	if err := ReadUint16(&buf, &v16); err != nil || v16 != 0x0102 {
		t.Fatalf("ReadUint16 = %x, %v", v16, err)
	}

	if err := WriteUint32(&buf, 0x01020304); err != nil {
		t.Fatalf("WriteUint32: %v", err)
	}
	if !bytes.Equal(buf.Bytes(), []byte{0x04, 0x03, 0x02, 0x01}) {
		t.Fatalf("WriteUint32 = %x, want 04030201", buf.Bytes())
	}
	var v32 uint32
	if err := ReadUint32(&buf, &v32); err != nil || v32 != 0x01020304 {
		t.Fatalf("ReadUint32 = %x, %v", v32, err)
	}

	if err := WriteUint64(&buf, 0x0102030405060708); err != nil {
		t.Fatalf("WriteUint64: %v", err)
	}
	var v64 uint64
	if err := ReadUint64(&buf, &v64); err != nil || v64 != 0x0102030405060708 {
		t.Fatalf("ReadUint64 = %x, %v", v64, err)
	}
}

// TestUintTruncation ensures short reads surface the io sentinel errors.
func TestUintTruncation(t *testing.T) {
	var v32 uint32
	err := ReadUint32(bytes.NewReader(nil), &v32)
	if !errors.Is(err, io.EOF) {
		t.Fatalf("empty read error = %v, want %v", err, io.EOF)
	}
	err = ReadUint32(bytes.NewReader([]byte{0x01, 0x02}), &v32)
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Fatalf("partial read error = %v, want %v", err,
			io.ErrUnexpectedEOF)
	}
}

// TestOptionTag ensures only 0x00 and 0x01 are accepted as option tags.
func TestOptionTag(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteOptionTag(&buf, true); err != nil {
		t.Fatalf("WriteOptionTag: %v", err)
	}
	if err := WriteOptionTag(&buf, false); err != nil {
		t.Fatalf("WriteOptionTag: %v", err)
	}
	if !bytes.Equal(buf.Bytes(), []byte{0x01, 0x00}) {
		t.Fatalf("option tags = %x, want 0100", buf.Bytes())
	}

	present, err := ReadOptionTag(&buf)
	if err != nil || !present {
		t.Fatalf("ReadOptionTag = %v, %v", present, err)
	}
	present, err = ReadOptionTag(&buf)
	if err != nil || present {
		t.Fatalf("ReadOptionTag = %v, %v", present, err)
	}

	_, err = ReadOptionTag(bytes.NewReader([]byte{0x02}))
	if !errors.Is(err, ErrInvalidOptionTag) {
		t.Fatalf("invalid tag error = %v, want %v", err,
			ErrInvalidOptionTag)
	}
}

// TestBlob8 ensures the single-byte length prefix bounds are enforced on
// both paths.
func TestBlob8(t *testing.T) {
	payload := []byte("hello")
	var buf bytes.Buffer
	if err := WriteBlob8(&buf, payload, 8); err != nil {
		t.Fatalf("WriteBlob8: %v", err)
	}
	if buf.Len() != len(payload)+1 {
		t.Fatalf("encoded length = %d, want %d", buf.Len(), len(payload)+1)
	}
	got, err := ReadBlob8(&buf, 8)
	if err != nil {
		t.Fatalf("ReadBlob8: %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Fatalf("ReadBlob8 = %q, want %q", got, payload)
	}

	err = WriteBlob8(&buf, payload, 3)
	if !errors.Is(err, ErrBlobTooLong) {
		t.Fatalf("oversize write error = %v, want %v", err, ErrBlobTooLong)
	}

	// A wire length above the field bound must be rejected.
	_, err = ReadBlob8(bytes.NewReader([]byte{0x05, 'h', 'e', 'l', 'l', 'o'}), 3)
	if !errors.Is(err, ErrBlobTooLong) {
		t.Fatalf("oversize read error = %v, want %v", err, ErrBlobTooLong)
	}

	// A wire length pointing past the end of the stream must error.
	_, err = ReadBlob8(bytes.NewReader([]byte{0x05, 'h', 'i'}), 8)
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Fatalf("truncated read error = %v, want %v", err,
			io.ErrUnexpectedEOF)
	}
}

// TestBlob16 ensures the two-byte length prefix codec round-trips and
// bounds are enforced.
func TestBlob16(t *testing.T) {
	payload := bytes.Repeat([]byte{0xaa}, 300)
	var buf bytes.Buffer
	if err := WriteBlob16(&buf, payload, 1000); err != nil {
		t.Fatalf("WriteBlob16: %v", err)
	}
	if buf.Len() != len(payload)+2 {
		t.Fatalf("encoded length = %d, want %d", buf.Len(), len(payload)+2)
	}
	got, err := ReadBlob16(&buf, 1000)
	if err != nil {
		t.Fatalf("ReadBlob16: %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Fatalf("ReadBlob16 mismatch")
	}

	err = WriteBlob16(&buf, payload, 100)
	if !errors.Is(err, ErrBlobTooLong) {
		t.Fatalf("oversize write error = %v, want %v", err, ErrBlobTooLong)
	}
}

// TestPadding ensures padding writes zero bytes, tolerates arbitrary
// content on read and errors on truncation.
func TestPadding(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePadding(&buf, 28); err != nil {
		t.Fatalf("WritePadding: %v", err)
	}
	if !bytes.Equal(buf.Bytes(), make([]byte, 28)) {
		t.Fatalf("WritePadding wrote non-zero bytes: %x", buf.Bytes())
	}

	// Non-zero padding content is not validated, only consumed.
	junk := bytes.Repeat([]byte{0x5a}, 28)
	if err := ReadPadding(bytes.NewReader(junk), 28); err != nil {
		t.Fatalf("ReadPadding(junk): %v", err)
	}

	err := ReadPadding(bytes.NewReader(junk[:10]), 28)
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Fatalf("truncated padding error = %v, want %v", err,
			io.ErrUnexpectedEOF)
	}
}

// TestIsPrintableAscii spot checks the printable range boundaries.
func TestIsPrintableAscii(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"", true},
		{" ~", true},
		{"plain text!", true},
		{"tab\t", false},
		{"newline\n", false},
		{"\x7f", false},
		{"é", false},
	}
	for _, test := range tests {
		if got := IsPrintableAscii(test.in); got != test.want {
			t.Errorf("IsPrintableAscii(%q) = %v, want %v", test.in, got,
				test.want)
		}
	}
}

// TestCodecErrorUnwrap ensures wrapped codec errors match their kind via
// errors.Is.
func TestCodecErrorUnwrap(t *testing.T) {
	err := Error("TestFunc", ErrStringTooShort, "too short")
	if !errors.Is(err, ErrStringTooShort) {
		t.Fatalf("errors.Is failed for %v", err)
	}
	var codecErr CodecError
	if !errors.As(err, &codecErr) {
		t.Fatalf("errors.As failed for %v", err)
	}
	if codecErr.Func != "TestFunc" {
		t.Fatalf("Func = %q, want TestFunc", codecErr.Func)
	}
}
