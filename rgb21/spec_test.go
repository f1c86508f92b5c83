// Copyright (c) 2024-2026 The RGB Working Group developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rgb21

import (
	"bytes"
	"errors"
	"testing"

	"github.com/davecgh/go-spew/spew"

	"github.com/RGB-WG/rgb-interfaces/contract"
	"github.com/RGB-WG/rgb-interfaces/strictenc"
)

// TestAttachmentNameBounds ensures attachment name validation enforces the
// documented length and character set limits.
func TestAttachmentNameBounds(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		err     error
		wantErr bool
	}{
		{name: "single char", in: "a"},
		{name: "max length", in: "aaaaaaaaaaaaaaaaaaaa"},
		{name: "empty", in: "", wantErr: true,
			err: strictenc.ErrStringTooShort},
		{name: "too long", in: "aaaaaaaaaaaaaaaaaaaaa", wantErr: true,
			err: strictenc.ErrStringTooLong},
		{name: "non printable", in: "a\tb", wantErr: true,
			err: strictenc.ErrIllegalCharacter},
	}

	for _, test := range tests {
		_, err := NewAttachmentName(test.in)
		if test.wantErr != (err != nil) {
			t.Errorf("%s: error = %v, wantErr %v", test.name, err,
				test.wantErr)
			continue
		}
		if test.wantErr && !errors.Is(err, test.err) {
			t.Errorf("%s: error = %v, want %v", test.name, err, test.err)
		}
	}
}

// TestNftSpecRoundTrip ensures token specifications survive a serialization
// round trip with every optional field combination exercised.
func TestNftSpecRoundTrip(t *testing.T) {
	ticker, err := contract.NewTicker("TCKR")
	if err != nil {
		t.Fatalf("NewTicker: %v", err)
	}
	name, err := contract.NewAssetName("Collectible #1")
	if err != nil {
		t.Fatalf("NewAssetName: %v", err)
	}
	mime, err := contract.NewMediaType("image/png")
	if err != nil {
		t.Fatalf("NewMediaType: %v", err)
	}
	var digest [32]byte
	for i := range digest {
		digest[i] = byte(i)
	}
	attachment := contract.Attachment{Type: mime, Digest: digest}

	tests := []struct {
		name string
		spec NftSpec
	}{
		{name: "bare", spec: NftSpec{Index: 0}},
		{name: "named", spec: NftSpec{
			Index:  1,
			Ticker: ticker,
			Name:   name,
		}},
		{name: "with media", spec: NftSpec{
			Index: 2,
			Preview: &EmbeddedMedia{
				Type: mime,
				Data: []byte{0x89, 0x50, 0x4e, 0x47},
			},
			Media: &attachment,
		}},
		{name: "with attachments", spec: NftSpec{
			Index: 3,
			Attachments: []TokenAttachment{
				{ID: 0, Attachment: attachment},
				{ID: 1, Attachment: attachment},
				{ID: 5, Attachment: attachment},
			},
		}},
	}

	for _, test := range tests {
		var buf bytes.Buffer
		if err := test.spec.StrictEncode(&buf); err != nil {
			t.Errorf("%s: StrictEncode: %v", test.name, err)
			continue
		}
		var got NftSpec
		if err := got.StrictDecode(&buf); err != nil {
			t.Errorf("%s: StrictDecode: %v", test.name, err)
			continue
		}
		if buf.Len() != 0 {
			t.Errorf("%s: %d trailing bytes after decode", test.name,
				buf.Len())
		}
		if !specEqual(got, test.spec) {
			t.Errorf("%s: round trip mismatch\ngot: %swant: %s",
				test.name, spew.Sdump(got), spew.Sdump(test.spec))
		}
	}
}

// specEqual compares token specifications, treating nil and empty attachment
// slices as equal.
func specEqual(a, b NftSpec) bool {
	if a.Index != b.Index || a.Ticker != b.Ticker || a.Name != b.Name ||
		a.Details != b.Details {
		return false
	}
	if (a.Preview == nil) != (b.Preview == nil) {
		return false
	}
	if a.Preview != nil && (a.Preview.Type != b.Preview.Type ||
		!bytes.Equal(a.Preview.Data, b.Preview.Data)) {
		return false
	}
	if (a.Media == nil) != (b.Media == nil) {
		return false
	}
	if a.Media != nil && *a.Media != *b.Media {
		return false
	}
	if len(a.Attachments) != len(b.Attachments) {
		return false
	}
	for i := range a.Attachments {
		if a.Attachments[i] != b.Attachments[i] {
			return false
		}
	}
	if (a.Reserves == nil) != (b.Reserves == nil) {
		return false
	}
	return true
}

// TestNftSpecAttachmentOrdering ensures the codec rejects attachment slots
// that are not in strictly ascending identifier order.
func TestNftSpecAttachmentOrdering(t *testing.T) {
	mime, err := contract.NewMediaType("image/png")
	if err != nil {
		t.Fatalf("NewMediaType: %v", err)
	}
	attachment := contract.Attachment{Type: mime}

	tests := []struct {
		name string
		ids  []uint8
	}{
		{name: "descending", ids: []uint8{2, 1}},
		{name: "duplicate", ids: []uint8{3, 3}},
	}

	for _, test := range tests {
		spec := NftSpec{Index: 0}
		for _, id := range test.ids {
			spec.Attachments = append(spec.Attachments,
				TokenAttachment{ID: id, Attachment: attachment})
		}
		var buf bytes.Buffer
		err := spec.StrictEncode(&buf)
		if !errors.Is(err, strictenc.ErrUnsortedCollection) {
			t.Errorf("%s: error = %v, want %v", test.name, err,
				strictenc.ErrUnsortedCollection)
		}
	}
}

// TestEngravingRoundTrip ensures engravings serialize and parse back.
func TestEngravingRoundTrip(t *testing.T) {
	mime, err := contract.NewMediaType("text/plain")
	if err != nil {
		t.Fatalf("NewMediaType: %v", err)
	}
	in := Engraving{
		AppliedTo: 9,
		Content:   EmbeddedMedia{Type: mime, Data: []byte("for Alice")},
	}
	var buf bytes.Buffer
	if err := in.StrictEncode(&buf); err != nil {
		t.Fatalf("StrictEncode: %v", err)
	}
	var out Engraving
	if err := out.StrictDecode(&buf); err != nil {
		t.Fatalf("StrictDecode: %v", err)
	}
	if out.AppliedTo != in.AppliedTo || out.Content.Type != in.Content.Type ||
		!bytes.Equal(out.Content.Data, in.Content.Data) {
		t.Fatalf("round trip mismatch\ngot: %swant: %s", spew.Sdump(out),
			spew.Sdump(in))
	}
}
