// Copyright (c) 2024-2026 The RGB Working Group developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// rgb-stl dumps the strict type libraries and the standard interface
// declarations shipped with the library to disk, so that wallets and other
// consumers can pin the exact identifiers they were built against.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/decred/slog"
	flags "github.com/jessevdk/go-flags"

	"github.com/RGB-WG/rgb-interfaces/iface"
	"github.com/RGB-WG/rgb-interfaces/internal/version"
	"github.com/RGB-WG/rgb-interfaces/rgb20"
	"github.com/RGB-WG/rgb-interfaces/rgb21"
	"github.com/RGB-WG/rgb-interfaces/rgb25"
	"github.com/RGB-WG/rgb-interfaces/stl"
)

var log = slog.Disabled

type config struct {
	Output  string `short:"o" long:"output" description:"directory to write the listings to"`
	Verbose bool   `short:"v" long:"verbose" description:"log every file as it is written"`
	Version bool   `short:"V" long:"version" description:"print version information and exit"`
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

func main() {
	cfg := config{
		Output: "interfaces",
	}
	parser := flags.NewParser(&cfg, flags.Default)
	_, err := parser.Parse()
	if err != nil {
		var e *flags.Error
		if errors.As(err, &e) && e.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if cfg.Version {
		fmt.Printf("rgb-stl version %s\n", version.String())
		os.Exit(0)
	}

	backend := slog.NewBackend(os.Stderr)
	log = backend.Logger("MAIN")
	if cfg.Verbose {
		log.SetLevel(slog.LevelDebug)
	} else {
		log.SetLevel(slog.LevelInfo)
	}

	if err := os.MkdirAll(cfg.Output, 0o755); err != nil {
		fatalf("unable to create output directory: %v", err)
	}

	libs := []stl.TypeLib{stl.RGBContractLib(), stl.RGB21Lib()}
	for _, lib := range libs {
		name := filepath.Join(cfg.Output, lib.Name()+".stl.txt")
		if err := os.WriteFile(name, []byte(libListing(lib)), 0o644); err != nil {
			fatalf("unable to write %s: %v", name, err)
		}
		log.Debugf("Wrote type library %s to %s", lib.Name(), name)
	}

	standards := map[string][]iface.Iface{
		"RGBStd": allBuildingBlocks(),
		"RGB20":  featureVariants20(),
		"RGB21":  featureVariants21(),
		"RGB25":  featureVariants25(),
	}
	names := make([]string, 0, len(standards))
	for name := range standards {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		path := filepath.Join(cfg.Output, name+".txt")
		var sb strings.Builder
		for _, i := range standards[name] {
			sb.WriteString(ifaceListing(i))
			sb.WriteByte('\n')
		}
		if err := os.WriteFile(path, []byte(sb.String()), 0o644); err != nil {
			fatalf("unable to write %s: %v", path, err)
		}
		log.Debugf("Wrote %d interface declarations to %s",
			len(standards[name]), path)
	}

	log.Infof("Wrote %d type libraries and %d interface files to %s",
		len(libs), len(names), cfg.Output)
}

// allBuildingBlocks returns every standard interface building block in
// registry order.
func allBuildingBlocks() []iface.Iface {
	ifaces := make([]iface.Iface, 0, len(iface.Names()))
	for _, name := range iface.Names() {
		i, _ := iface.ByName(name)
		ifaces = append(ifaces, i)
	}
	return ifaces
}

func featureVariants20() []iface.Iface {
	var ifaces []iface.Iface
	for _, features := range rgb20.EnumerateFeatures() {
		ifaces = append(ifaces, rgb20.IfaceOf(features))
	}
	return ifaces
}

func featureVariants21() []iface.Iface {
	var ifaces []iface.Iface
	for _, features := range rgb21.EnumerateFeatures() {
		ifaces = append(ifaces, rgb21.IfaceOf(features))
	}
	return ifaces
}

func featureVariants25() []iface.Iface {
	var ifaces []iface.Iface
	for _, features := range rgb25.EnumerateFeatures() {
		ifaces = append(ifaces, rgb25.IfaceOf(features))
	}
	return ifaces
}

// libListing renders a readable listing of a type library.
func libListing(lib stl.TypeLib) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "typelib %s\n", lib.Name())
	fmt.Fprintf(&sb, "  id %s\n", lib.ID())
	for _, dep := range lib.Dependencies() {
		fmt.Fprintf(&sb, "  import %s\n", dep)
	}
	for _, def := range lib.Types() {
		id, _ := lib.SemID(def.Name)
		fmt.Fprintf(&sb, "  data %s := %s\n    -- %s\n", def.Name, def.Sig, id)
	}
	return sb.String()
}

// ifaceListing renders a readable listing of an interface declaration.
func ifaceListing(i iface.Iface) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "interface %s\n", i.Name)
	fmt.Fprintf(&sb, "  id %s\n", i.ID())
	for _, fname := range sortedKeys(i.GlobalState) {
		global := i.GlobalState[fname]
		bound := "?"
		switch {
		case global.Required && global.Multiple:
			bound = "+"
		case global.Required:
			bound = "1"
		case global.Multiple:
			bound = "*"
		}
		fmt.Fprintf(&sb, "  global %s(%s): %s\n", fname, bound, global.Type)
	}
	for _, fname := range sortedKeys(i.Assignments) {
		assign := i.Assignments[fname]
		visibility := "private"
		if assign.Public {
			visibility = "public"
		}
		fmt.Fprintf(&sb, "  owned %s: %s kind=%d req=%d\n", fname,
			visibility, assign.Owned.Kind, assign.Req)
	}
	fmt.Fprintf(&sb, "  genesis: %s\n", i.Genesis.Modifier)
	for _, opName := range sortedKeys(i.Transitions) {
		transition := i.Transitions[opName]
		fmt.Fprintf(&sb, "  transition %s: %s\n", opName, transition.Modifier)
	}
	for _, errName := range sortedKeys(i.Errors) {
		fmt.Fprintf(&sb, "  error %s: %s\n", errName, i.Errors[errName])
	}
	if i.DefaultOperation != "" {
		fmt.Fprintf(&sb, "  default %s\n", i.DefaultOperation)
	}
	return sb.String()
}

func sortedKeys[V any](entries map[string]V) []string {
	keys := make([]string, 0, len(entries))
	for key := range entries {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
