// Copyright (c) 2024-2026 The RGB Working Group developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package contract

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/RGB-WG/rgb-interfaces/strictenc"
)

// TestNewTicker ensures ticker validation enforces the character set and
// length bounds.
func TestNewTicker(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		wantErr strictenc.ErrorKind
	}{
		{"minimal", "BT", ""},
		{"typical", "USDT", ""},
		{"max length", "ABCDEFGH", ""},
		{"digits after first", "A1234567", ""},
		{"underscore allowed", "A_B", ""},
		{"too short", "A", strictenc.ErrStringTooShort},
		{"too long", "ABCDEFGHI", strictenc.ErrStringTooLong},
		{"empty", "", strictenc.ErrStringTooShort},
		{"leading digit", "1ABC", strictenc.ErrIllegalCharacter},
		{"lowercase fine", "btc", ""},
		{"space", "BT C", strictenc.ErrIllegalCharacter},
		{"unicode", "BTÇ", strictenc.ErrIllegalCharacter},
	}

	for _, test := range tests {
		ticker, err := NewTicker(test.in)
		if test.wantErr == "" {
			if err != nil {
				t.Errorf("%s: NewTicker(%q): %v", test.name, test.in, err)
			} else if ticker.String() != test.in {
				t.Errorf("%s: NewTicker(%q) = %q", test.name, test.in,
					ticker)
			}
			continue
		}
		if !errors.Is(err, test.wantErr) {
			t.Errorf("%s: NewTicker(%q) error = %v, want %v", test.name,
				test.in, err, test.wantErr)
		}
	}
}

// TestTickerEqual ensures ticker comparison ignores case.
func TestTickerEqual(t *testing.T) {
	if !Ticker("USDT").Equal(Ticker("usdt")) {
		t.Error("USDT != usdt")
	}
	if Ticker("USDT").Equal(Ticker("USDC")) {
		t.Error("USDT == USDC")
	}
}

// TestNewAssetName ensures name validation enforces the bounds.
func TestNewAssetName(t *testing.T) {
	tests := []struct {
		in      string
		wantErr strictenc.ErrorKind
	}{
		{"T", ""},
		{"Tether_USD", ""},
		{strings.Repeat("a", 40), ""},
		{strings.Repeat("a", 41), strictenc.ErrStringTooLong},
		{"", strictenc.ErrStringTooShort},
		{"1Token", ""},
		{"Token #1", ""},
		{"line\nbreak", strictenc.ErrIllegalCharacter},
	}

	for _, test := range tests {
		_, err := NewAssetName(test.in)
		if test.wantErr == "" {
			if err != nil {
				t.Errorf("NewAssetName(%q): %v", test.in, err)
			}
			continue
		}
		if !errors.Is(err, test.wantErr) {
			t.Errorf("NewAssetName(%q) error = %v, want %v", test.in, err,
				test.wantErr)
		}
	}
}

// TestNewDetails ensures details accept any printable ascii within bounds.
func TestNewDetails(t *testing.T) {
	tests := []struct {
		in      string
		wantErr strictenc.ErrorKind
	}{
		{"x", ""},
		{"Printable details, with punctuation!", ""},
		{strings.Repeat("d", 255), ""},
		{strings.Repeat("d", 256), strictenc.ErrStringTooLong},
		{"", strictenc.ErrStringTooShort},
		{"tab\tseparated", strictenc.ErrIllegalCharacter},
	}

	for _, test := range tests {
		_, err := NewDetails(test.in)
		if test.wantErr == "" {
			if err != nil {
				t.Errorf("NewDetails(%q): %v", test.in, err)
			}
			continue
		}
		if !errors.Is(err, test.wantErr) {
			t.Errorf("NewDetails(%q) error = %v, want %v", test.in, err,
				test.wantErr)
		}
	}
}

// TestNameStrictCodec ensures the name codecs round-trip and re-validate on
// decode.
func TestNameStrictCodec(t *testing.T) {
	var buf bytes.Buffer
	in := Ticker("USDT")
	if err := in.StrictEncode(&buf); err != nil {
		t.Fatalf("StrictEncode: %v", err)
	}
	// One length byte plus the four ticker characters.
	if buf.Len() != 5 {
		t.Fatalf("encoded length = %d, want 5", buf.Len())
	}
	var out Ticker
	if err := out.StrictDecode(&buf); err != nil {
		t.Fatalf("StrictDecode: %v", err)
	}
	if out != in {
		t.Fatalf("round trip = %q, want %q", out, in)
	}

	// A wire blob carrying an invalid ticker must be rejected.
	invalid := []byte{0x04, '1', 'A', 'B', 'C'}
	err := out.StrictDecode(bytes.NewReader(invalid))
	if !errors.Is(err, strictenc.ErrIllegalCharacter) {
		t.Fatalf("StrictDecode(invalid) error = %v, want %v", err,
			strictenc.ErrIllegalCharacter)
	}
}
