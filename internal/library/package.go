// Package library holds component package (footprint) definitions.
// Packages are opaque to the placement registry: it stores references
// for the front and back side of each component but never inspects them.
package library

import (
	"errors"
	"sort"
)

var ErrPackageNotFound = errors.New("package not found in library")

// Package describes a component footprint.
type Package struct {
	Name     string  `yaml:"name" json:"name"`
	PinCount int     `yaml:"pin_count" json:"pin_count"`
	Width    float64 `yaml:"width" json:"width"`   // mm
	Height   float64 `yaml:"height" json:"height"` // mm
}

// Library is a named collection of packages.
type Library struct {
	packages map[string]*Package
}

// NewLibrary creates an empty library.
func NewLibrary() *Library {
	return &Library{packages: make(map[string]*Package)}
}

// Add inserts or replaces a package definition.
func (l *Library) Add(p *Package) {
	l.packages[p.Name] = p
}

// Get returns the package with the given name.
func (l *Library) Get(name string) (*Package, error) {
	p, ok := l.packages[name]
	if !ok {
		return nil, ErrPackageNotFound
	}
	return p, nil
}

// Names returns all package names, sorted.
func (l *Library) Names() []string {
	names := make([]string, 0, len(l.packages))
	for name := range l.packages {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Count returns the number of packages in the library.
func (l *Library) Count() int {
	return len(l.packages)
}

// Standard returns a library preloaded with common DIP packages.
func Standard() *Library {
	lib := NewLibrary()
	for _, p := range []*Package{
		{Name: "DIP-8", PinCount: 8, Width: 6.35, Height: 9.65},
		{Name: "DIP-14", PinCount: 14, Width: 6.35, Height: 19.05},
		{Name: "DIP-16", PinCount: 16, Width: 6.35, Height: 20.32},
		{Name: "DIP-18", PinCount: 18, Width: 6.35, Height: 22.86},
		{Name: "DIP-20", PinCount: 20, Width: 6.35, Height: 25.40},
		{Name: "DIP-24", PinCount: 24, Width: 6.35, Height: 31.75},
		{Name: "DIP-28", PinCount: 28, Width: 6.35, Height: 35.56},
		{Name: "DIP-40", PinCount: 40, Width: 15.24, Height: 52.58},
	} {
		lib.Add(p)
	}
	return lib
}
