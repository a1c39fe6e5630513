package term

import (
	"fmt"
	"sort"

	"fortio.org/safecast"
)

// DefID is an opaque handle for one top-level definition. It is only
// meaningful relative to the DefNames table of its own Book; a DefID
// that does not resolve there indicates a bug in an earlier stage, not
// bad user input.
type DefID uint32

// DefNames is a bijection between definition handles and their display
// names, kept as two synchronized indices. Bijectivity is enforced at
// every insertion: no two definitions share a name and no definition
// carries two names.
type DefNames struct {
	byID   map[DefID]Name
	byName map[Name]DefID
	next   DefID
}

// NewDefNames returns an empty table.
func NewDefNames() *DefNames {
	return &DefNames{
		byID:   make(map[DefID]Name),
		byName: make(map[Name]DefID),
	}
}

// Insert registers an explicit id/name pairing. It fails if either side
// is already present with a different partner.
func (d *DefNames) Insert(id DefID, name Name) error {
	if have, ok := d.byID[id]; ok {
		return fmt.Errorf("def %d already named %q", id, have)
	}
	if have, ok := d.byName[name]; ok {
		return fmt.Errorf("name %q already bound to def %d", name, have)
	}
	d.byID[id] = name
	d.byName[name] = id
	if id >= d.next {
		next, err := safecast.Conv[uint32](uint64(id) + 1)
		if err != nil {
			panic(fmt.Errorf("def id space exhausted: %w", err))
		}
		d.next = DefID(next)
	}
	return nil
}

// Intern allocates a fresh DefID for name, or returns the existing one
// when the name is already registered.
func (d *DefNames) Intern(name Name) DefID {
	if id, ok := d.byName[name]; ok {
		return id
	}
	id := d.next
	d.next++
	d.byID[id] = name
	d.byName[name] = id
	return id
}

// Name resolves a handle to its display name.
func (d *DefNames) Name(id DefID) (Name, bool) {
	n, ok := d.byID[id]
	return n, ok
}

// MustName resolves a handle and panics when it dangles. A dangling
// DefID is an upstream bug; processing must not continue on it.
func (d *DefNames) MustName(id DefID) Name {
	n, ok := d.byID[id]
	if !ok {
		panic(fmt.Sprintf("term: dangling DefID %d", id))
	}
	return n
}

// ID resolves a display name to its handle.
func (d *DefNames) ID(name Name) (DefID, bool) {
	id, ok := d.byName[name]
	return id, ok
}

// Has reports whether the handle is registered.
func (d *DefNames) Has(id DefID) bool {
	_, ok := d.byID[id]
	return ok
}

// Len returns the number of registered definitions.
func (d *DefNames) Len() int {
	return len(d.byID)
}

// IDs returns all registered handles in ascending order, for
// deterministic iteration (snapshots, dumps).
func (d *DefNames) IDs() []DefID {
	ids := make([]DefID, 0, len(d.byID))
	for id := range d.byID {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
