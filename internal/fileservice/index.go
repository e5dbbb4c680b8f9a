package fileservice

import "github.com/google/uuid"

// IdentityIndex maps old identifiers to newly minted ones for the
// duration of one duplication call graph. It is owned by a single
// operation's call stack and never shared across requests.
//
// Two remap policies are kept as separately named operations:
// RemapOrGenerate for primary keys (miss mints a fresh id) and
// RemapIfPresent for embedded ids and edges (miss leaves the id
// unchanged).
type IdentityIndex struct {
	ids   map[uuid.UUID]uuid.UUID
	newID func() uuid.UUID
}

// NewIdentityIndex creates an empty index backed by the default
// identity generator.
func NewIdentityIndex() *IdentityIndex {
	return &IdentityIndex{ids: make(map[uuid.UUID]uuid.UUID), newID: uuid.New}
}

// Set pre-seeds a known old -> new pair. An id already present is never
// reassigned.
func (x *IdentityIndex) Set(old, fresh uuid.UUID) {
	if _, ok := x.ids[old]; ok {
		return
	}
	x.ids[old] = fresh
}

// RemapOrGenerate returns the new id for old, minting one on first use.
// Repeated calls with the same old id return the same new id.
func (x *IdentityIndex) RemapOrGenerate(old uuid.UUID) uuid.UUID {
	if fresh, ok := x.ids[old]; ok {
		return fresh
	}
	fresh := x.newID()
	x.ids[old] = fresh
	return fresh
}

// RemapIfPresent returns the new id for old, or old itself when no
// mapping exists.
func (x *IdentityIndex) RemapIfPresent(old uuid.UUID) uuid.UUID {
	if fresh, ok := x.ids[old]; ok {
		return fresh
	}
	return old
}

// Has reports whether old already has a mapping.
func (x *IdentityIndex) Has(old uuid.UUID) bool {
	_, ok := x.ids[old]
	return ok
}

// remapString applies RemapIfPresent to an id in string form. Values
// that do not parse as identifiers pass through untouched.
func (x *IdentityIndex) remapString(s string) string {
	old, err := uuid.Parse(s)
	if err != nil {
		return s
	}
	if fresh, ok := x.ids[old]; ok {
		return fresh.String()
	}
	return s
}
