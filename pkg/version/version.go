// Package version provides the module version, callback layout version
// parsing and comparison, and layout tag helpers.
package version

import (
	"fmt"
	"strconv"
	"strings"
)

// Module is the release of this module.
const Module = "0.4.0"

// Current is the host callback layout implemented by this library.
const Current = "1.0"

// LayoutVersion represents a parsed "major.minor" layout version.
type LayoutVersion struct {
	Major uint16
	Minor uint16
}

// Parse parses a "major.minor" version string.
func Parse(s string) (LayoutVersion, error) {
	parts := strings.Split(s, ".")
	if len(parts) != 2 {
		return LayoutVersion{}, fmt.Errorf("invalid version %q: expected major.minor", s)
	}

	major, err := strconv.ParseUint(parts[0], 10, 16)
	if err != nil || parts[0] == "" {
		return LayoutVersion{}, fmt.Errorf("invalid version %q: bad major component", s)
	}

	minor, err := strconv.ParseUint(parts[1], 10, 16)
	if err != nil || parts[1] == "" {
		return LayoutVersion{}, fmt.Errorf("invalid version %q: bad minor component", s)
	}

	return LayoutVersion{Major: uint16(major), Minor: uint16(minor)}, nil
}

// String returns the version as "major.minor".
func (v LayoutVersion) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// Compatible returns true if the other version has the same major version.
// Minor versions only add optional callbacks.
func (v LayoutVersion) Compatible(other LayoutVersion) bool {
	return v.Major == other.Major
}

// LayoutTag returns the tag a host announces for a major layout version:
// "uwb-callbacks/N".
func LayoutTag(major uint16) string {
	return fmt.Sprintf("uwb-callbacks/%d", major)
}

// MajorFromLayoutTag extracts the major version from a layout tag.
func MajorFromLayoutTag(tag string) (uint16, error) {
	if !strings.HasPrefix(tag, "uwb-callbacks/") {
		return 0, fmt.Errorf("not a callback layout tag: %q", tag)
	}

	suffix := tag[len("uwb-callbacks/"):]
	if suffix == "" {
		return 0, fmt.Errorf("empty major version in layout tag: %q", tag)
	}

	major, err := strconv.ParseUint(suffix, 10, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid major version in layout tag %q: %w", tag, err)
	}

	return uint16(major), nil
}

// SupportedLayoutTags returns the tags of all supported major layout
// versions. Currently only major version 1.
func SupportedLayoutTags() []string {
	current, _ := Parse(Current)
	return []string{LayoutTag(current.Major)}
}
