// Package manifest loads constructor declarations from loom.toml
// files. The term layer only ever sees the resulting name set; which
// collaborator produced it (parser declaration sweep, manifest, test
// fixture) is invisible to the resolution pass.
package manifest

import (
	"fmt"
	"io"

	"github.com/BurntSushi/toml"

	"loom/internal/term"
)

// Manifest mirrors the on-disk layout:
//
//	schema = 1
//
//	[[adt]]
//	name = "List"
//	ctrs = ["Cons", "Nil"]
type Manifest struct {
	Schema int   `toml:"schema"`
	ADTs   []ADT `toml:"adt"`
}

// ADT is one declared algebraic data type.
type ADT struct {
	Name string   `toml:"name"`
	Ctrs []string `toml:"ctrs"`
}

// Schema is the manifest layout version this package reads.
const Schema = 1

// Load reads a manifest file and builds the global constructor set.
// Constructor names are global, so declaring one name under two ADTs
// is an error, not a merge.
func Load(path string) (term.CtrSet, error) {
	var m Manifest
	if _, err := toml.DecodeFile(path, &m); err != nil {
		return nil, fmt.Errorf("manifest %s: %w", path, err)
	}
	return m.CtrSet()
}

// Read decodes a manifest from a stream.
func Read(r io.Reader) (term.CtrSet, error) {
	var m Manifest
	if _, err := toml.NewDecoder(r).Decode(&m); err != nil {
		return nil, err
	}
	return m.CtrSet()
}

// CtrSet validates the manifest and flattens it into the oracle set.
func (m *Manifest) CtrSet() (term.CtrSet, error) {
	if m.Schema != Schema {
		return nil, fmt.Errorf("manifest schema %d, want %d", m.Schema, Schema)
	}
	owner := make(map[term.Name]string)
	set := term.NewCtrSet()
	for _, adt := range m.ADTs {
		if adt.Name == "" {
			return nil, fmt.Errorf("adt with empty name")
		}
		for _, c := range adt.Ctrs {
			name := term.Name(c)
			if !name.IsSet() {
				return nil, fmt.Errorf("adt %s declares an empty constructor name", adt.Name)
			}
			if prev, dup := owner[name]; dup {
				return nil, fmt.Errorf("constructor %s declared by both %s and %s", c, prev, adt.Name)
			}
			owner[name] = adt.Name
			set.Add(name)
		}
	}
	return set, nil
}
