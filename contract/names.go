// Copyright (c) 2024-2026 The RGB Working Group developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package contract

import (
	"fmt"
	"io"
	"strings"

	"github.com/RGB-WG/rgb-interfaces/strictenc"
)

// These constants declare the length bounds of the restricted naming
// strings.
const (
	minTickerLen  = 2
	maxTickerLen  = 8
	minNameLen    = 1
	maxNameLen    = 40
	minDetailsLen = 1
	maxDetailsLen = 255
	minArticleLen = 1
	maxArticleLen = 32
)

// isAlpha reports whether c is an ASCII letter.
func isAlpha(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

// isAlphaNum reports whether c is an ASCII letter, digit or underscore.
func isAlphaNum(c byte) bool {
	return isAlpha(c) || (c >= '0' && c <= '9') || c == '_'
}

// checkIdent validates an identifier string which must start with a letter
// and continue with letters, digits or underscores, within the given length
// bounds.
func checkIdent(op, kind, s string, minLen, maxLen int) error {
	if len(s) < minLen {
		msg := fmt.Sprintf("%s %q is shorter than %d characters",
			kind, s, minLen)
		return strictenc.Error(op, strictenc.ErrStringTooShort, msg)
	}
	if len(s) > maxLen {
		msg := fmt.Sprintf("%s %q is longer than %d characters",
			kind, s, maxLen)
		return strictenc.Error(op, strictenc.ErrStringTooLong, msg)
	}
	if !isAlpha(s[0]) {
		msg := fmt.Sprintf("%s %q must start with a letter", kind, s)
		return strictenc.Error(op, strictenc.ErrIllegalCharacter, msg)
	}
	for i := 1; i < len(s); i++ {
		if !isAlphaNum(s[i]) {
			msg := fmt.Sprintf("%s %q contains illegal character "+
				"%q", kind, s, s[i])
			return strictenc.Error(op, strictenc.ErrIllegalCharacter, msg)
		}
	}
	return nil
}

// checkPrintable validates a free-form string confined to printable ASCII
// within the given length bounds.
func checkPrintable(op, kind, s string, minLen, maxLen int) error {
	if len(s) < minLen {
		msg := fmt.Sprintf("%s is shorter than %d characters", kind,
			minLen)
		return strictenc.Error(op, strictenc.ErrStringTooShort, msg)
	}
	if len(s) > maxLen {
		msg := fmt.Sprintf("%s is longer than %d characters", kind,
			maxLen)
		return strictenc.Error(op, strictenc.ErrStringTooLong, msg)
	}
	if !strictenc.IsPrintableAscii(s) {
		msg := fmt.Sprintf("%s contains non-printable characters", kind)
		return strictenc.Error(op, strictenc.ErrIllegalCharacter, msg)
	}
	return nil
}

// Ticker is a short identifier of an asset, such as "USDT".  It is between 2
// and 8 characters, starts with a letter and continues with letters, digits
// or underscores.  Tickers compare case-insensitively.
type Ticker string

// NewTicker constructs a ticker, validating its length and character set.
func NewTicker(s string) (Ticker, error) {
	const op = "NewTicker"
	if err := checkIdent(op, "ticker", s, minTickerLen, maxTickerLen); err != nil {
		return "", err
	}
	return Ticker(s), nil
}

// Equal reports whether two tickers are equal under the case-insensitive
// comparison the type requires.
func (t Ticker) Equal(other Ticker) bool {
	return strings.EqualFold(string(t), string(other))
}

// String returns the ticker as entered at construction.
func (t Ticker) String() string {
	return string(t)
}

// StrictEncode serializes the ticker with a one-byte length prefix.
func (t Ticker) StrictEncode(w io.Writer) error {
	const op = "Ticker.StrictEncode"
	if err := checkIdent(op, "ticker", string(t), minTickerLen,
		maxTickerLen); err != nil {
		return err
	}
	return strictenc.WriteBlob8(w, []byte(t), maxTickerLen)
}

// StrictDecode deserializes and validates the ticker.
func (t *Ticker) StrictDecode(r io.Reader) error {
	const op = "Ticker.StrictDecode"
	blob, err := strictenc.ReadBlob8(r, maxTickerLen)
	if err != nil {
		return err
	}
	if err := checkIdent(op, "ticker", string(blob), minTickerLen,
		maxTickerLen); err != nil {
		return err
	}
	*t = Ticker(blob)
	return nil
}

// AssetName is a human-readable name of an asset of up to 40 printable ASCII
// characters.
type AssetName string

// NewAssetName constructs an asset name, validating its length and character
// set.
func NewAssetName(s string) (AssetName, error) {
	const op = "NewAssetName"
	if err := checkPrintable(op, "asset name", s, minNameLen, maxNameLen); err != nil {
		return "", err
	}
	return AssetName(s), nil
}

// String returns the name as entered at construction.
func (n AssetName) String() string {
	return string(n)
}

// StrictEncode serializes the name with a one-byte length prefix.
func (n AssetName) StrictEncode(w io.Writer) error {
	const op = "AssetName.StrictEncode"
	if err := checkPrintable(op, "asset name", string(n), minNameLen,
		maxNameLen); err != nil {
		return err
	}
	return strictenc.WriteBlob8(w, []byte(n), maxNameLen)
}

// StrictDecode deserializes and validates the name.
func (n *AssetName) StrictDecode(r io.Reader) error {
	const op = "AssetName.StrictDecode"
	blob, err := strictenc.ReadBlob8(r, maxNameLen)
	if err != nil {
		return err
	}
	if err := checkPrintable(op, "asset name", string(blob), minNameLen,
		maxNameLen); err != nil {
		return err
	}
	*n = AssetName(blob)
	return nil
}

// Details is a free-form description of an asset or contract of up to 255
// printable ASCII characters.
type Details string

// NewDetails constructs a details string, validating its length and
// character set.
func NewDetails(s string) (Details, error) {
	const op = "NewDetails"
	if err := checkPrintable(op, "details", s, minDetailsLen,
		maxDetailsLen); err != nil {
		return "", err
	}
	return Details(s), nil
}

// String returns the details text.
func (d Details) String() string {
	return string(d)
}

// StrictEncode serializes the details with a one-byte length prefix.
func (d Details) StrictEncode(w io.Writer) error {
	const op = "Details.StrictEncode"
	if err := checkPrintable(op, "details", string(d), minDetailsLen,
		maxDetailsLen); err != nil {
		return err
	}
	return strictenc.WriteBlob8(w, []byte(d), maxDetailsLen)
}

// StrictDecode deserializes and validates the details.
func (d *Details) StrictDecode(r io.Reader) error {
	const op = "Details.StrictDecode"
	blob, err := strictenc.ReadBlob8(r, maxDetailsLen)
	if err != nil {
		return err
	}
	if err := checkPrintable(op, "details", string(blob), minDetailsLen,
		maxDetailsLen); err != nil {
		return err
	}
	*d = Details(blob)
	return nil
}

// Article is a legal article name used by named collectible contracts.  It
// is between 1 and 32 characters, starts with a letter and continues with
// letters, digits or underscores.
type Article string

// NewArticle constructs an article, validating its length and character set.
func NewArticle(s string) (Article, error) {
	const op = "NewArticle"
	if err := checkIdent(op, "article", s, minArticleLen, maxArticleLen); err != nil {
		return "", err
	}
	return Article(s), nil
}

// String returns the article as entered at construction.
func (a Article) String() string {
	return string(a)
}

// StrictEncode serializes the article with a one-byte length prefix.
func (a Article) StrictEncode(w io.Writer) error {
	const op = "Article.StrictEncode"
	if err := checkIdent(op, "article", string(a), minArticleLen,
		maxArticleLen); err != nil {
		return err
	}
	return strictenc.WriteBlob8(w, []byte(a), maxArticleLen)
}

// StrictDecode deserializes and validates the article.
func (a *Article) StrictDecode(r io.Reader) error {
	const op = "Article.StrictDecode"
	blob, err := strictenc.ReadBlob8(r, maxArticleLen)
	if err != nil {
		return err
	}
	if err := checkIdent(op, "article", string(blob), minArticleLen,
		maxArticleLen); err != nil {
		return err
	}
	*a = Article(blob)
	return nil
}
