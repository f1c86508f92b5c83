// Copyright (c) 2024-2026 The RGB Working Group developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package rgb25 implements the collectible asset standard, a middle ground
between fungible assets and non-fungible tokens. Collectibles are fungible
but carry no ticker, identifying themselves by name and optional article
instead.
*/
package rgb25
