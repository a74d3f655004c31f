package resolver

import (
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/Masterminds/semver/v3"
)

// ErrInvalidRange indicates a manifest entry whose version range does not parse.
var ErrInvalidRange = errors.New("invalid version range")

// DependencyManifest is the resolved mapping of bower package names to
// version ranges. The zero value is an empty manifest.
type DependencyManifest struct {
	entries map[string]string
}

// Get returns the version range for a package name.
func (m DependencyManifest) Get(name string) (string, bool) {
	r, ok := m.entries[name]
	return r, ok
}

// Len returns the number of packages in the manifest.
func (m DependencyManifest) Len() int {
	return len(m.entries)
}

// Names returns the package names in sorted order.
func (m DependencyManifest) Names() []string {
	return slices.Sorted(maps.Keys(m.entries))
}

// Entries returns a copy of the package-to-range mapping.
func (m DependencyManifest) Entries() map[string]string {
	out := make(map[string]string, len(m.entries))
	maps.Copy(out, m.entries)
	return out
}

// MarshalJSON encodes the manifest as a JSON object with sorted keys.
func (m DependencyManifest) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.Entries())
}

// Validate checks that every version range is a parseable semver constraint.
func (m DependencyManifest) Validate() error {
	for _, name := range m.Names() {
		r := m.entries[name]
		if _, err := semver.NewConstraint(r); err != nil {
			return fmt.Errorf("%w: %s@%s: %v", ErrInvalidRange, name, r, err)
		}
	}
	return nil
}
