// Copyright (c) 2024-2026 The RGB Working Group developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package contract

import (
	"fmt"
	"io"

	"github.com/RGB-WG/rgb-interfaces/strictenc"
)

// maxRicardianContractLen is the maximum byte length of a ricardian contract
// text.
const maxRicardianContractLen = 0xFFFF

// RicardianContract is the legally binding prose of a contract.  It may be
// empty and is confined to printable ASCII of up to 65535 bytes.
type RicardianContract string

// NewRicardianContract constructs a ricardian contract, validating its
// length and character set.
func NewRicardianContract(s string) (RicardianContract, error) {
	const op = "NewRicardianContract"
	if len(s) > maxRicardianContractLen {
		msg := fmt.Sprintf("contract text of %d bytes exceeds maximum "+
			"of %d", len(s), maxRicardianContractLen)
		return "", strictenc.Error(op, strictenc.ErrStringTooLong, msg)
	}
	if !strictenc.IsPrintableAscii(s) {
		msg := "contract text contains non-printable characters"
		return "", strictenc.Error(op, strictenc.ErrIllegalCharacter, msg)
	}
	return RicardianContract(s), nil
}

// String returns the contract text.
func (c RicardianContract) String() string {
	return string(c)
}

// StrictEncode serializes the contract text with a two-byte length prefix.
func (c RicardianContract) StrictEncode(w io.Writer) error {
	return strictenc.WriteBlob16(w, []byte(c), maxRicardianContractLen)
}

// StrictDecode deserializes the contract text.
func (c *RicardianContract) StrictDecode(r io.Reader) error {
	const op = "RicardianContract.StrictDecode"
	blob, err := strictenc.ReadBlob16(r, maxRicardianContractLen)
	if err != nil {
		return err
	}
	if !strictenc.IsPrintableAscii(string(blob)) {
		msg := "contract text contains non-printable characters"
		return strictenc.Error(op, strictenc.ErrIllegalCharacter, msg)
	}
	*c = RicardianContract(blob)
	return nil
}

// AssetSpec is the naming specification of a fungible or non-fungible asset
// fixed at issuance.
type AssetSpec struct {
	Ticker    Ticker
	Name      AssetName
	Details   Details // empty means no details
	Precision Precision
}

// NewAssetSpec constructs an asset specification, validating every naming
// component.  An empty details string stands for no details.
func NewAssetSpec(ticker, name string, precision Precision, details string) (AssetSpec, error) {
	t, err := NewTicker(ticker)
	if err != nil {
		return AssetSpec{}, err
	}
	n, err := NewAssetName(name)
	if err != nil {
		return AssetSpec{}, err
	}
	spec := AssetSpec{Ticker: t, Name: n, Precision: precision}
	if details != "" {
		spec.Details, err = NewDetails(details)
		if err != nil {
			return AssetSpec{}, err
		}
	}
	return spec, nil
}

// String returns a human-readable summary of the specification.
func (s AssetSpec) String() string {
	details := "~"
	if s.Details != "" {
		details = string(s.Details)
	}
	return fmt.Sprintf("ticker %s, name %s, details %s, precision %s",
		s.Ticker, s.Name, details, s.Precision)
}

// StrictEncode serializes the specification field by field.
func (s AssetSpec) StrictEncode(w io.Writer) error {
	if err := s.Ticker.StrictEncode(w); err != nil {
		return err
	}
	if err := s.Name.StrictEncode(w); err != nil {
		return err
	}
	if err := strictenc.WriteOptionTag(w, s.Details != ""); err != nil {
		return err
	}
	if s.Details != "" {
		if err := s.Details.StrictEncode(w); err != nil {
			return err
		}
	}
	return s.Precision.StrictEncode(w)
}

// StrictDecode deserializes the specification.
func (s *AssetSpec) StrictDecode(r io.Reader) error {
	if err := s.Ticker.StrictDecode(r); err != nil {
		return err
	}
	if err := s.Name.StrictDecode(r); err != nil {
		return err
	}
	present, err := strictenc.ReadOptionTag(r)
	if err != nil {
		return err
	}
	s.Details = ""
	if present {
		if err := s.Details.StrictDecode(r); err != nil {
			return err
		}
	}
	return s.Precision.StrictDecode(r)
}

// ContractSpec is the naming specification of a named collectible contract.
// Unlike AssetSpec it has no ticker and instead carries an optional legal
// article.
type ContractSpec struct {
	Article   Article // empty means no article
	Name      AssetName
	Details   Details // empty means no details
	Precision Precision
}

// NewContractSpec constructs a contract specification, validating every
// naming component.  Empty article and details strings stand for absent
// values.
func NewContractSpec(article, name string, precision Precision, details string) (ContractSpec, error) {
	n, err := NewAssetName(name)
	if err != nil {
		return ContractSpec{}, err
	}
	spec := ContractSpec{Name: n, Precision: precision}
	if article != "" {
		spec.Article, err = NewArticle(article)
		if err != nil {
			return ContractSpec{}, err
		}
	}
	if details != "" {
		spec.Details, err = NewDetails(details)
		if err != nil {
			return ContractSpec{}, err
		}
	}
	return spec, nil
}

// String returns a human-readable summary of the specification.
func (s ContractSpec) String() string {
	article := "~"
	if s.Article != "" {
		article = string(s.Article)
	}
	details := "~"
	if s.Details != "" {
		details = string(s.Details)
	}
	return fmt.Sprintf("article %s, name %s, details %s, precision %s",
		article, s.Name, details, s.Precision)
}

// StrictEncode serializes the specification field by field.
func (s ContractSpec) StrictEncode(w io.Writer) error {
	if err := strictenc.WriteOptionTag(w, s.Article != ""); err != nil {
		return err
	}
	if s.Article != "" {
		if err := s.Article.StrictEncode(w); err != nil {
			return err
		}
	}
	if err := s.Name.StrictEncode(w); err != nil {
		return err
	}
	if err := strictenc.WriteOptionTag(w, s.Details != ""); err != nil {
		return err
	}
	if s.Details != "" {
		if err := s.Details.StrictEncode(w); err != nil {
			return err
		}
	}
	return s.Precision.StrictEncode(w)
}

// StrictDecode deserializes the specification.
func (s *ContractSpec) StrictDecode(r io.Reader) error {
	present, err := strictenc.ReadOptionTag(r)
	if err != nil {
		return err
	}
	s.Article = ""
	if present {
		if err := s.Article.StrictDecode(r); err != nil {
			return err
		}
	}
	if err := s.Name.StrictDecode(r); err != nil {
		return err
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
	return s.Precision.StrictDecode(r)
}

// ContractTerms pairs the ricardian contract text with an optional media
// attachment carrying its full rendering.
type ContractTerms struct {
	Text  RicardianContract
	Media *Attachment // nil means no attachment
}

// String returns a human-readable summary of the terms.
func (t ContractTerms) String() string {
	media := "~"
	if t.Media != nil {
		media = t.Media.String()
	}
	return fmt.Sprintf("text %s, media %s", t.Text, media)
}

// StrictEncode serializes the terms.
func (t ContractTerms) StrictEncode(w io.Writer) error {
	if err := t.Text.StrictEncode(w); err != nil {
		return err
	}
	if err := strictenc.WriteOptionTag(w, t.Media != nil); err != nil {
		return err
	}
	if t.Media != nil {
		return t.Media.StrictEncode(w)
	}
	return nil
}

// StrictDecode deserializes the terms.
func (t *ContractTerms) StrictDecode(r io.Reader) error {
	if err := t.Text.StrictDecode(r); err != nil {
		return err
	}
	present, err := strictenc.ReadOptionTag(r)
	if err != nil {
		return err
	}
	t.Media = nil
	if present {
		t.Media = new(Attachment)
		return t.Media.StrictDecode(r)
	}
	return nil
}
