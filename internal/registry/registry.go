// Package registry provides the global content ID namespace.
// Lessons, courses and interview question banks share one flat namespace:
// an ID may be registered once, whatever its kind. The registry is the
// resolver for foreign keys such as course lesson references and gating
// requirements.
package registry

import (
	"fmt"
	"sort"

	"github.com/leapstack-labs/contentlint/pkg/content"
)

// Entry is what the registry remembers about a registered ID.
type Entry struct {
	ID       string
	Kind     content.Kind
	Location string
}

// CollisionError is returned when an ID is registered a second time.
type CollisionError struct {
	ID     string
	First  Entry
	Second Entry
}

func (e *CollisionError) Error() string {
	return fmt.Sprintf("duplicate id %q: %s %s and %s %s",
		e.ID, e.First.Kind, e.First.Location, e.Second.Kind, e.Second.Location)
}

// Registry maps content IDs to their kind and source location.
// It is scoped to one validation run and is not safe for concurrent use.
type Registry struct {
	// byID maps an ID to its first registration
	byID map[string]Entry
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{byID: make(map[string]Entry)}
}

// Register records id as belonging to a record of the given kind at location.
// The first registration wins; any later one returns a *CollisionError
// naming both locations and leaves the registry unchanged.
func (r *Registry) Register(id string, kind content.Kind, location string) error {
	entry := Entry{ID: id, Kind: kind, Location: location}
	if first, ok := r.byID[id]; ok {
		return &CollisionError{ID: id, First: first, Second: entry}
	}
	r.byID[id] = entry
	return nil
}

// Exists reports whether id has been registered.
func (r *Registry) Exists(id string) bool {
	_, ok := r.byID[id]
	return ok
}

// Lookup returns the entry registered for id.
func (r *Registry) Lookup(id string) (Entry, bool) {
	e, ok := r.byID[id]
	return e, ok
}

// ExistsAs reports whether id has been registered as the given kind.
func (r *Registry) ExistsAs(id string, kind content.Kind) bool {
	e, ok := r.byID[id]
	return ok && e.Kind == kind
}

// Count returns the number of registered IDs.
func (r *Registry) Count() int {
	return len(r.byID)
}

// Entries returns every entry sorted by ID.
func (r *Registry) Entries() []Entry {
	entries := make([]Entry, 0, len(r.byID))
	for _, e := range r.byID {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].ID < entries[j].ID })
	return entries
}
