// Package idmap implements the process-wide (but explicitly threaded,
// never global) identifier map the block parser populates and the
// validator DSL later queries. It is a direct descendant of the teacher's
// append-only attribute-list pattern: entries are never overwritten, only
// appended, so a colliding id keeps every prior definition around for the
// validator to report on.
package idmap

import "github.com/rez-lang/rez/token"

// Entry describes one block that registered an identifier.
type Entry struct {
	Kind string
	Pos  token.Pos
}

// Map is keyed by identifier. A single definition maps to one Entry; two or
// more definitions of the same id map to a list with the most recently
// parsed block first.
type Map struct {
	entries map[string][]Entry
}

// New creates an empty Map.
func New() *Map {
	return &Map{entries: map[string][]Entry{}}
}

// Register adds a definition for id. If id was already registered, the new
// entry is prepended (newest first) rather than replacing the old one:
// collisions are recorded, not rejected.
func (m *Map) Register(id string, kind string, pos token.Pos) {
	m.entries[id] = append([]Entry{{Kind: kind, Pos: pos}}, m.entries[id]...)
}

// Lookup returns every entry registered for id, newest first, and whether
// any exist at all.
func (m *Map) Lookup(id string) ([]Entry, bool) {
	entries, ok := m.entries[id]
	return entries, ok
}

// Resolve returns the most recently registered entry for id - the one a
// reference to id should resolve against - and whether id is registered at
// all.
func (m *Map) Resolve(id string) (Entry, bool) {
	entries, ok := m.entries[id]
	if !ok || len(entries) == 0 {
		return Entry{}, false
	}

	return entries[0], true
}

// Collisions returns every id that was registered more than once.
func (m *Map) Collisions() []string {
	var ids []string

	for id, entries := range m.entries {
		if len(entries) > 1 {
			ids = append(ids, id)
		}
	}

	return ids
}

// IsKind reports whether id is registered and its most recent entry has the
// given kind label.
func (m *Map) IsKind(id, kind string) bool {
	e, ok := m.Resolve(id)
	return ok && e.Kind == kind
}
