// Copyright (c) 2024-2026 The RGB Working Group developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rgb21

import (
	"fmt"
	"io"

	"github.com/RGB-WG/rgb-interfaces/contract"
	"github.com/RGB-WG/rgb-interfaces/strictenc"
)

// These constants declare the bounds of the token media containers.
const (
	// maxEmbeddedMediaLen is the maximum byte length of media embedded
	// directly into contract state.
	maxEmbeddedMediaLen = 0xFFFF

	// minAttachmentNameLen and maxAttachmentNameLen bound the length of
	// an attachment name.
	minAttachmentNameLen = 1
	maxAttachmentNameLen = 20

	// maxAttachments is the maximum number of auxiliary attachments a
	// token may declare.
	maxAttachments = 20
)

// EmbeddedMedia is small media content carried directly inside contract
// state rather than referenced by digest.
type EmbeddedMedia struct {
	Type contract.MediaType
	Data []byte
}

// StrictEncode serializes the media.
func (m EmbeddedMedia) StrictEncode(w io.Writer) error {
	if err := m.Type.StrictEncode(w); err != nil {
		return err
	}
	return strictenc.WriteBlob16(w, m.Data, maxEmbeddedMediaLen)
}

// StrictDecode deserializes the media.
func (m *EmbeddedMedia) StrictDecode(r io.Reader) error {
	if err := m.Type.StrictDecode(r); err != nil {
		return err
	}
	data, err := strictenc.ReadBlob16(r, maxEmbeddedMediaLen)
	if err != nil {
		return err
	}
	m.Data = data
	return nil
}

// Engraving is owner-supplied media content permanently applied to a token
// after issuance.
type Engraving struct {
	AppliedTo TokenIndex
	Content   EmbeddedMedia
}

// StrictEncode serializes the engraving.
func (e Engraving) StrictEncode(w io.Writer) error {
	if err := e.AppliedTo.StrictEncode(w); err != nil {
		return err
	}
	return e.Content.StrictEncode(w)
}

// StrictDecode deserializes the engraving.
func (e *Engraving) StrictDecode(r io.Reader) error {
	if err := e.AppliedTo.StrictDecode(r); err != nil {
		return err
	}
	return e.Content.StrictDecode(r)
}

// AttachmentName names an auxiliary attachment of a token.  It is between 1
// and 20 printable ASCII characters.
type AttachmentName string

// NewAttachmentName constructs an attachment name, validating its length and
// character set.
func NewAttachmentName(s string) (AttachmentName, error) {
	const op = "NewAttachmentName"
	return newAttachmentName(op, s)
}

func newAttachmentName(op, s string) (AttachmentName, error) {
	if len(s) < minAttachmentNameLen {
		msg := "attachment name is empty"
		return "", strictenc.Error(op, strictenc.ErrStringTooShort, msg)
	}
	if len(s) > maxAttachmentNameLen {
		msg := fmt.Sprintf("attachment name %q is longer than %d "+
			"characters", s, maxAttachmentNameLen)
		return "", strictenc.Error(op, strictenc.ErrStringTooLong, msg)
	}
	if !strictenc.IsPrintableAscii(s) {
		msg := fmt.Sprintf("attachment name %q contains non-printable "+
			"characters", s)
		return "", strictenc.Error(op, strictenc.ErrIllegalCharacter, msg)
	}
	return AttachmentName(s), nil
}

// String returns the attachment name.
func (n AttachmentName) String() string {
	return string(n)
}

// StrictEncode serializes the name with a one-byte length prefix.
func (n AttachmentName) StrictEncode(w io.Writer) error {
	const op = "AttachmentName.StrictEncode"
	if _, err := newAttachmentName(op, string(n)); err != nil {
		return err
	}
	return strictenc.WriteBlob8(w, []byte(n), maxAttachmentNameLen)
}

// StrictDecode deserializes and validates the name.
func (n *AttachmentName) StrictDecode(r io.Reader) error {
	const op = "AttachmentName.StrictDecode"
	blob, err := strictenc.ReadBlob8(r, maxAttachmentNameLen)
	if err != nil {
		return err
	}
	name, err := newAttachmentName(op, string(blob))
	if err != nil {
		return err
	}
	*n = name
	return nil
}

// AttachmentType registers a named attachment slot a token may populate.
type AttachmentType struct {
	ID   uint8
	Name AttachmentName
}

// StrictEncode serializes the attachment type.
func (t AttachmentType) StrictEncode(w io.Writer) error {
	if err := strictenc.WriteUint8(w, t.ID); err != nil {
		return err
	}
	return t.Name.StrictEncode(w)
}

// StrictDecode deserializes the attachment type.
func (t *AttachmentType) StrictDecode(r io.Reader) error {
	if err := strictenc.ReadUint8(r, &t.ID); err != nil {
		return err
	}
	return t.Name.StrictDecode(r)
}

// TokenAttachment pairs an attachment slot identifier with its content
// reference.  NftSpec keeps attachments as a slice ordered by strictly
// ascending identifier, which is also the canonical encoding order.
type TokenAttachment struct {
	ID         uint8
	Attachment contract.Attachment
}

// NftSpec is the global state describing a single issued token.
type NftSpec struct {
	Index       TokenIndex
	Ticker      contract.Ticker    // empty means no ticker
	Name        contract.AssetName // empty means no name
	Details     contract.Details   // empty means no details
	Preview     *EmbeddedMedia
	Media       *contract.Attachment
	Attachments []TokenAttachment
	Reserves    *contract.ProofOfReserves
}

// StrictEncode serializes the token specification field by field.
func (s NftSpec) StrictEncode(w io.Writer) error {
	const op = "NftSpec.StrictEncode"
	if err := s.Index.StrictEncode(w); err != nil {
		return err
	}
	if err := strictenc.WriteOptionTag(w, s.Ticker != ""); err != nil {
		return err
	}
	if s.Ticker != "" {
		if err := s.Ticker.StrictEncode(w); err != nil {
			return err
		}
	}
	if err := strictenc.WriteOptionTag(w, s.Name != ""); err != nil {
		return err
	}
	if s.Name != "" {
		if err := s.Name.StrictEncode(w); err != nil {
			return err
		}
	}
	if err := strictenc.WriteOptionTag(w, s.Details != ""); err != nil {
		return err
	}
	if s.Details != "" {
		if err := s.Details.StrictEncode(w); err != nil {
			return err
		}
	}
	if err := strictenc.WriteOptionTag(w, s.Preview != nil); err != nil {
		return err
	}
	if s.Preview != nil {
		if err := s.Preview.StrictEncode(w); err != nil {
			return err
		}
	}
	if err := strictenc.WriteOptionTag(w, s.Media != nil); err != nil {
		return err
	}
	if s.Media != nil {
		if err := s.Media.StrictEncode(w); err != nil {
			return err
		}
	}
	if len(s.Attachments) > maxAttachments {
		msg := fmt.Sprintf("%d attachments exceed maximum of %d",
			len(s.Attachments), maxAttachments)
		return strictenc.Error(op, strictenc.ErrTooManyItems, msg)
	}
	if err := strictenc.WriteUint8(w, uint8(len(s.Attachments))); err != nil {
		return err
	}
	for i, att := range s.Attachments {
		if i > 0 && s.Attachments[i-1].ID >= att.ID {
			msg := "attachment identifiers are not in strictly " +
				"ascending order"
			return strictenc.Error(op, strictenc.ErrUnsortedCollection, msg)
		}
		if err := strictenc.WriteUint8(w, att.ID); err != nil {
			return err
		}
		if err := att.Attachment.StrictEncode(w); err != nil {
			return err
		}
	}
	if err := strictenc.WriteOptionTag(w, s.Reserves != nil); err != nil {
		return err
	}
	if s.Reserves != nil {
		return s.Reserves.StrictEncode(w)
	}
	return nil
}

// StrictDecode deserializes the token specification.
func (s *NftSpec) StrictDecode(r io.Reader) error {
	const op = "NftSpec.StrictDecode"
	if err := s.Index.StrictDecode(r); err != nil {
		return err
	}
	present, err := strictenc.ReadOptionTag(r)
	if err != nil {
		return err
	}
	s.Ticker = ""
	if present {
		if err := s.Ticker.StrictDecode(r); err != nil {
			return err
		}
	}
	present, err = strictenc.ReadOptionTag(r)
	if err != nil {
		return err
	}
	s.Name = ""
	if present {
		if err := s.Name.StrictDecode(r); err != nil {
			return err
		}
	}
	present, err = strictenc.ReadOptionTag(r)
	if err != nil {
		return err
	}
	s.Details = ""
	if present {
		if err := s.Details.StrictDecode(r); err != nil {
			return err
		}
	}
	present, err = strictenc.ReadOptionTag(r)
	if err != nil {
		return err
	}
	s.Preview = nil
	if present {
		s.Preview = new(EmbeddedMedia)
		if err := s.Preview.StrictDecode(r); err != nil {
			return err
		}
	}
	present, err = strictenc.ReadOptionTag(r)
	if err != nil {
		return err
	}
	s.Media = nil
	if present {
		s.Media = new(contract.Attachment)
		if err := s.Media.StrictDecode(r); err != nil {
			return err
		}
	}
	var count uint8
	if err := strictenc.ReadUint8(r, &count); err != nil {
		return err
	}
	if int(count) > maxAttachments {
		msg := fmt.Sprintf("%d attachments exceed maximum of %d",
			count, maxAttachments)
		return strictenc.Error(op, strictenc.ErrTooManyItems, msg)
	}
	s.Attachments = make([]TokenAttachment, count)
	for i := range s.Attachments {
		if err := strictenc.ReadUint8(r, &s.Attachments[i].ID); err != nil {
			return err
		}
		if i > 0 && s.Attachments[i-1].ID >= s.Attachments[i].ID {
			msg := "attachment identifiers are not in strictly " +
				"ascending order"
			return strictenc.Error(op, strictenc.ErrUnsortedCollection, msg)
		}
		if err := s.Attachments[i].Attachment.StrictDecode(r); err != nil {
			return err
		}
	}
	present, err = strictenc.ReadOptionTag(r)
	if err != nil {
		return err
	}
	s.Reserves = nil
	if present {
		s.Reserves = new(contract.ProofOfReserves)
		return s.Reserves.StrictDecode(r)
	}
	return nil
}
