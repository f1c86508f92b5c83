// Copyright (c) 2024-2026 The RGB Working Group developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package stl

// These constants name the type libraries shipped with this module.
const (
	LibNameRGBContract = "RGBContract"
	LibNameRGB21       = "RGB21"
)

// rgbContractLib declares the types shared by every asset interface.  The
// signature strings describe the strict-encoded layout of each type and feed
// the semantic identifiers, so they must only change together with the
// layout itself.
var rgbContractLib = NewTypeLib(LibNameRGBContract, nil,
	TypeDef{Name: "Amount", Sig: "u64"},
	TypeDef{Name: "Precision", Sig: "enum(indivisible=0..atto=18)"},
	TypeDef{Name: "Ticker", Sig: "ascii(first=Alpha, rest=AlphaNum, len=2..8)"},
	TypeDef{Name: "AssetName", Sig: "ascii(printable, len=1..40)"},
	TypeDef{Name: "Details", Sig: "ascii(printable, len=1..255)"},
	TypeDef{Name: "Article", Sig: "ascii(first=Alpha, rest=AlphaNum, len=1..32)"},
	TypeDef{Name: "AssetSpec", Sig: "struct(ticker=Ticker, name=AssetName, details=option(Details), precision=Precision)"},
	TypeDef{Name: "ContractSpec", Sig: "struct(article=option(Article), name=AssetName, details=option(Details), precision=Precision)"},
	TypeDef{Name: "RicardianContract", Sig: "ascii(printable, len=0..65535)"},
	TypeDef{Name: "ContractTerms", Sig: "struct(text=RicardianContract, media=option(Attachment))"},
	TypeDef{Name: "MediaRegName", Sig: "ascii(first=mime, rest=mime, len=1..64)"},
	TypeDef{Name: "MediaType", Sig: "struct(type=MediaRegName, subtype=option(MediaRegName), charset=option(MediaRegName))"},
	TypeDef{Name: "Attachment", Sig: "struct(type=MediaType, digest=bytes32)"},
	TypeDef{Name: "Outpoint", Sig: "struct(txid=bytes32, vout=u32)"},
	TypeDef{Name: "ProofOfReserves", Sig: "struct(utxo=Outpoint, proof=bytes(len=0..65535))"},
	TypeDef{Name: "IssueMeta", Sig: "set(ProofOfReserves, len=0..65535)"},
	TypeDef{Name: "BurnMeta", Sig: "set(ProofOfReserves, len=0..65535)"},
)

// rgb21Lib declares the non-fungible token types.
var rgb21Lib = NewTypeLib(LibNameRGB21, []string{LibNameRGBContract},
	TypeDef{Name: "TokenIndex", Sig: "u32"},
	TypeDef{Name: "OwnedFraction", Sig: "u64"},
	TypeDef{Name: "Allocation", Sig: "struct(index=TokenIndex, pad=bytes28, fraction=OwnedFraction)"},
	TypeDef{Name: "EmbeddedMedia", Sig: "struct(type=MediaType, data=bytes(len=0..65535))"},
	TypeDef{Name: "Engraving", Sig: "struct(appliedTo=TokenIndex, content=EmbeddedMedia)"},
	TypeDef{Name: "AttachmentName", Sig: "ascii(printable, len=1..20)"},
	TypeDef{Name: "AttachmentType", Sig: "struct(id=u8, name=AttachmentName)"},
	TypeDef{Name: "TokenData", Sig: "struct(index=TokenIndex, ticker=option(Ticker), name=option(AssetName), details=option(Details), preview=option(EmbeddedMedia), media=option(Attachment), attachments=map(u8, Attachment, len=0..20), reserves=option(ProofOfReserves))"},
	TypeDef{Name: "ItemsCount", Sig: "u32"},
	TypeDef{Name: "Fe256Align8", Sig: "bytes31"},
	TypeDef{Name: "Fe256Align16", Sig: "bytes30"},
	TypeDef{Name: "Fe256Align32", Sig: "bytes28"},
	TypeDef{Name: "Fe256Align64", Sig: "bytes24"},
	TypeDef{Name: "Fe256Align128", Sig: "bytes16"},
)

// commonTypes and rgb21Types are indexed once at startup and shared
// read-only afterwards.
var (
	commonTypes = newTypes(rgbContractLib)
	rgb21Types  = newTypes(rgbContractLib, rgb21Lib)
)

// RGBContractLib returns the library of types shared by every asset
// interface.
func RGBContractLib() TypeLib {
	return rgbContractLib
}

// RGB21Lib returns the library of non-fungible token types.
func RGB21Lib() TypeLib {
	return rgb21Lib
}

// CommonTypes returns the read-only semantic id lookup over the RGBContract
// library.
func CommonTypes() *Types {
	return commonTypes
}

// Rgb21Types returns the read-only semantic id lookup over the RGBContract
// and RGB21 libraries.
func Rgb21Types() *Types {
	return rgb21Types
}
