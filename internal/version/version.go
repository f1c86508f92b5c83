// Copyright (c) 2024-2026 The RGB Working Group developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package version houses the version information for the library and the
// tools provided in the same repository.
package version

import (
	"fmt"
	"regexp"
	"runtime/debug"
	"strconv"
)

// semverRE is a regular expression used to parse a semantic version string
// into its constituent parts.
var semverRE = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)` +
	`(?:-((?:0|[1-9]\d*|\d*[a-zA-Z-][0-9a-zA-Z-]*)(?:\.(?:0|[1-9]\d*|\d*` +
	`[a-zA-Z-][0-9a-zA-Z-]*))*))?(?:\+([0-9a-zA-Z-]+(?:\.[0-9a-zA-Z-]+)*))?$`)

// These variables define the application version and follow the semantic
// versioning 2.0.0 spec (https://semver.org/).
var (
	// Version is the application version.  It is defined as a variable so
	// it can be overridden during the build process with
	// '-ldflags "-X github.com/RGB-WG/rgb-interfaces/internal/version.Version=fullsemver"'
	// if needed.  It MUST be a full semantic version per the semantic
	// versioning spec or the package will panic at runtime.
	Version = "0.11.0-beta"

	// NOTE: The following values are set via init by parsing the above
	// Version string.

	// These fields are the individual semantic version components that
	// define the application version.
	Major      uint
	Minor      uint
	Patch      uint
	PreRelease string
)

// parseSemVer parses the semver components from the provided string.
func parseSemVer(s string) (uint, uint, uint, string, error) {
	m := semverRE.FindStringSubmatch(s)
	if m == nil {
		return 0, 0, 0, "", fmt.Errorf("malformed version string %q: does "+
			"not conform to semver specification", s)
	}
	major, err := strconv.ParseUint(m[1], 10, 0)
	if err != nil {
		return 0, 0, 0, "", fmt.Errorf("malformed semver major: %w", err)
	}
	minor, err := strconv.ParseUint(m[2], 10, 0)
	if err != nil {
		return 0, 0, 0, "", fmt.Errorf("malformed semver minor: %w", err)
	}
	patch, err := strconv.ParseUint(m[3], 10, 0)
	if err != nil {
		return 0, 0, 0, "", fmt.Errorf("malformed semver patch: %w", err)
	}
	return uint(major), uint(minor), uint(patch), m[4], nil
}

func init() {
	var err error
	Major, Minor, Patch, PreRelease, err = parseSemVer(Version)
	if err != nil {
		panic(err)
	}
}

// String returns the application version as a properly formed string per
// the semantic versioning 2.0.0 spec, with the short commit hash appended
// as build metadata when it is available from the build info.
func String() string {
	version := Version
	if commit := vcsCommitID(); commit != "" {
		version += "+" + commit
	}
	return version
}

// vcsCommitID returns the short version control system commit hash embedded
// in the binary, or an empty string when it is unavailable.
func vcsCommitID() string {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	var vcs, revision string
	for _, bs := range bi.Settings {
		switch bs.Key {
		case "vcs":
			vcs = bs.Value
		case "vcs.revision":
			revision = bs.Value
		}
	}
	if vcs != "git" {
		return ""
	}
	if len(revision) > 9 {
		revision = revision[:9]
	}
	return revision
}
