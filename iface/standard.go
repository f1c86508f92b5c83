// Copyright (c) 2024-2026 The RGB Working Group developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package iface

import (
	"fmt"
	"strings"
)

// Standard identifies one of the interface standards defined by this
// module.
type Standard uint8

const (
	// Rgb20 is the fungible asset standard.
	Rgb20 Standard = 20

	// Rgb21 is the non-fungible token standard.
	Rgb21 Standard = 21

	// Rgb25 is the collectible asset standard.
	Rgb25 Standard = 25
)

// String returns the standard name in its canonical "RGB20" form.
func (s Standard) String() string {
	switch s {
	case Rgb20:
		return "RGB20"
	case Rgb21:
		return "RGB21"
	case Rgb25:
		return "RGB25"
	}
	return fmt.Sprintf("RGB%d", uint8(s))
}

// ParseStandard parses a standard name such as "RGB20".  The match is
// case-insensitive and a missing "RGB" prefix is accepted.
func ParseStandard(s string) (Standard, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	name = strings.TrimPrefix(name, "RGB")
	switch name {
	case "20":
		return Rgb20, nil
	case "21":
		return Rgb21, nil
	case "25":
		return Rgb25, nil
	}
	return 0, fmt.Errorf("unknown interface standard %q", s)
}
