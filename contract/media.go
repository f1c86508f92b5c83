// Copyright (c) 2024-2026 The RGB Working Group developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package contract

import (
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"github.com/RGB-WG/rgb-interfaces/strictenc"
)

// These constants declare the length bounds of MIME registered names.
const (
	minMediaRegNameLen = 1
	maxMediaRegNameLen = 64
)

// isMimeChar reports whether c belongs to the restricted character set of
// MIME registered names: lowercase letters, digits and the punctuation
// characters permitted by RFC 6838.
func isMimeChar(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z':
		return true
	case c >= '0' && c <= '9':
		return true
	}
	switch c {
	case '!', '#', '$', '&', '+', '-', '.', '^', '_':
		return true
	}
	return false
}

// MediaRegName is a MIME registered name such as "image" or "svg+xml".  It
// starts with a lowercase letter and continues with characters from the
// restricted MIME character set, up to 64 characters in total.
type MediaRegName string

// NewMediaRegName constructs a registered name, validating its length and
// character set.
func NewMediaRegName(s string) (MediaRegName, error) {
	const op = "NewMediaRegName"
	return newMediaRegName(op, s)
}

func newMediaRegName(op, s string) (MediaRegName, error) {
	if len(s) < minMediaRegNameLen {
		msg := "media registered name is empty"
		return "", strictenc.Error(op, strictenc.ErrStringTooShort, msg)
	}
	if len(s) > maxMediaRegNameLen {
		msg := fmt.Sprintf("media registered name %q is longer than "+
			"%d characters", s, maxMediaRegNameLen)
		return "", strictenc.Error(op, strictenc.ErrStringTooLong, msg)
	}
	if s[0] < 'a' || s[0] > 'z' {
		msg := fmt.Sprintf("media registered name %q must start with "+
			"a lowercase letter", s)
		return "", strictenc.Error(op, strictenc.ErrIllegalCharacter, msg)
	}
	for i := 1; i < len(s); i++ {
		if !isMimeChar(s[i]) {
			msg := fmt.Sprintf("media registered name %q contains "+
				"illegal character %q", s, s[i])
			return "", strictenc.Error(op, strictenc.ErrIllegalCharacter, msg)
		}
	}
	return MediaRegName(s), nil
}

// String returns the registered name.
func (n MediaRegName) String() string {
	return string(n)
}

// StrictEncode serializes the registered name with a one-byte length prefix.
func (n MediaRegName) StrictEncode(w io.Writer) error {
	const op = "MediaRegName.StrictEncode"
	if _, err := newMediaRegName(op, string(n)); err != nil {
		return err
	}
	return strictenc.WriteBlob8(w, []byte(n), maxMediaRegNameLen)
}

// StrictDecode deserializes and validates the registered name.
func (n *MediaRegName) StrictDecode(r io.Reader) error {
	const op = "MediaRegName.StrictDecode"
	blob, err := strictenc.ReadBlob8(r, maxMediaRegNameLen)
	if err != nil {
		return err
	}
	name, err := newMediaRegName(op, string(blob))
	if err != nil {
		return err
	}
	*n = name
	return nil
}

// MediaType is a MIME media type.  An absent subtype stands for the "*"
// wildcard of the textual form.
type MediaType struct {
	Type    MediaRegName
	Subtype MediaRegName // empty means any subtype
	Charset MediaRegName // empty means unspecified
}

// NewMediaType parses a "type/subtype" media type string.  A subtype of "*"
// maps to an absent subtype.
func NewMediaType(s string) (MediaType, error) {
	const op = "NewMediaType"
	ty, subty, found := strings.Cut(s, "/")
	if !found {
		msg := fmt.Sprintf("media type %q is missing the \"/\" "+
			"separator", s)
		return MediaType{}, strictenc.Error(op,
			strictenc.ErrIllegalCharacter, msg)
	}
	tyName, err := newMediaRegName(op, ty)
	if err != nil {
		return MediaType{}, err
	}
	var subtyName MediaRegName
	if subty != "*" {
		subtyName, err = newMediaRegName(op, subty)
		if err != nil {
			return MediaType{}, err
		}
	}
	return MediaType{Type: tyName, Subtype: subtyName}, nil
}

// String returns the "type/subtype" form, with "*" standing for an absent
// subtype.
func (mt MediaType) String() string {
	subty := "*"
	if mt.Subtype != "" {
		subty = string(mt.Subtype)
	}
	return string(mt.Type) + "/" + subty
}

// StrictEncode serializes the media type as its name followed by the
// optional subtype and charset.
func (mt MediaType) StrictEncode(w io.Writer) error {
	if err := mt.Type.StrictEncode(w); err != nil {
		return err
	}
	if err := strictenc.WriteOptionTag(w, mt.Subtype != ""); err != nil {
		return err
	}
	if mt.Subtype != "" {
		if err := mt.Subtype.StrictEncode(w); err != nil {
			return err
		}
	}
	if err := strictenc.WriteOptionTag(w, mt.Charset != ""); err != nil {
		return err
	}
	if mt.Charset != "" {
		if err := mt.Charset.StrictEncode(w); err != nil {
			return err
		}
	}
	return nil
}

// StrictDecode deserializes the media type.
func (mt *MediaType) StrictDecode(r io.Reader) error {
	if err := mt.Type.StrictDecode(r); err != nil {
		return err
	}
	present, err := strictenc.ReadOptionTag(r)
	if err != nil {
		return err
	}
	mt.Subtype = ""
	if present {
		if err := mt.Subtype.StrictDecode(r); err != nil {
			return err
		}
	}
	present, err = strictenc.ReadOptionTag(r)
	if err != nil {
		return err
	}
	mt.Charset = ""
	if present {
		if err := mt.Charset.StrictDecode(r); err != nil {
			return err
		}
	}
	return nil
}

// AttachmentDigestSize is the byte size of an attachment content digest.
const AttachmentDigestSize = 32

// Attachment references external media content by the digest of its bytes.
type Attachment struct {
	Type   MediaType
	Digest [AttachmentDigestSize]byte
}

// String returns a human-readable form of the attachment reference.
func (a Attachment) String() string {
	return fmt.Sprintf("type %s, digest 0x%s", a.Type,
		hex.EncodeToString(a.Digest[:]))
}

// StrictEncode serializes the attachment as its media type followed by the
// raw 32-byte digest.
func (a Attachment) StrictEncode(w io.Writer) error {
	if err := a.Type.StrictEncode(w); err != nil {
		return err
	}
	_, err := w.Write(a.Digest[:])
	return err
}

// StrictDecode deserializes the attachment.
func (a *Attachment) StrictDecode(r io.Reader) error {
	if err := a.Type.StrictDecode(r); err != nil {
		return err
	}
	_, err := io.ReadFull(r, a.Digest[:])
	return err
}
