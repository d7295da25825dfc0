package scene

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownCatalog is returned by Lookup for unregistered names.
var ErrUnknownCatalog = errors.New("unknown catalog")

// Factory returns the declarative scene table of a catalog.
type Factory func() []Spec

var catalogs = map[string]Factory{}

// Register adds a catalog factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	catalogs[name] = f
}

// Catalogs exposes the registry of available catalog factories.
func Catalogs() map[string]Factory {
	return catalogs
}

// Lookup returns the factory registered under name.
func Lookup(name string) (Factory, error) {
	f, ok := catalogs[name]
	if !ok {
		return nil, fmt.Errorf("%w %q (have %v)", ErrUnknownCatalog, name, Names())
	}
	return f, nil
}

// Names lists registered catalogs in sorted order.
func Names() []string {
	names := make([]string, 0, len(catalogs))
	for name := range catalogs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
