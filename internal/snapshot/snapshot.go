// Package snapshot persists whole books between pipeline stages. The
// pretty-printed surface form is display-only, so tools that hand a
// book to a later invocation use this schema-versioned msgpack format
// instead.
package snapshot

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/vmihailenco/msgpack/v5"

	"loom/internal/term"
)

// SchemaVersion is bumped whenever the payload layout changes; decoding
// any other version fails rather than guessing.
const SchemaVersion uint16 = 1

var (
	// ErrSchema reports a snapshot written under a different schema.
	ErrSchema = errors.New("snapshot schema mismatch")
	// ErrMalformed reports a structurally invalid payload.
	ErrMalformed = errors.New("malformed snapshot")
)

type bookPayload struct {
	Schema uint16
	Names  []namePayload
	Defs   []defPayload
}

type namePayload struct {
	ID   uint32
	Name string
}

type defPayload struct {
	ID    uint32
	Rules []rulePayload
}

type rulePayload struct {
	Pats []patPayload
	Body *termPayload
}

// patPayload is a kind-tagged pattern node. Unused fields stay at their
// zero values and cost nothing on the wire.
type patPayload struct {
	Kind uint8
	Name string
	Args []patPayload
	U32  uint32
	I32  int32
	Fst  *patPayload
	Snd  *patPayload
}

// termPayload is a kind-tagged term node. A carries body/fun/val/fst,
// B carries arg/nxt/snd, Name2 carries the second Dup binder.
type termPayload struct {
	Kind  uint8
	Name  string
	Name2 string
	Def   uint32
	U32   uint32
	I32   int32
	Op    uint8
	A     *termPayload
	B     *termPayload
}

// Encode writes the book to w.
func Encode(w io.Writer, b *term.Book) error {
	payload := bookPayload{Schema: SchemaVersion}
	for _, id := range b.Names.IDs() {
		payload.Names = append(payload.Names, namePayload{
			ID:   uint32(id),
			Name: string(b.Names.MustName(id)),
		})
	}
	for _, def := range b.Defs {
		dp := defPayload{ID: uint32(def.Def)}
		for i := range def.Rules {
			r := &def.Rules[i]
			rp := rulePayload{Body: encodeTerm(r.Body)}
			for _, p := range r.Pats {
				rp.Pats = append(rp.Pats, encodePattern(p))
			}
			dp.Rules = append(dp.Rules, rp)
		}
		payload.Defs = append(payload.Defs, dp)
	}
	return msgpack.NewEncoder(w).Encode(&payload)
}

// Decode reads a book from r, refusing foreign schemas and unknown
// node kinds outright; it never returns a partially-decoded book.
func Decode(r io.Reader) (*term.Book, error) {
	var payload bookPayload
	if err := msgpack.NewDecoder(r).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if payload.Schema != SchemaVersion {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrSchema, payload.Schema, SchemaVersion)
	}

	book := term.NewBook()
	for _, np := range payload.Names {
		if err := book.Names.Insert(term.DefID(np.ID), term.Name(np.Name)); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
	}
	for _, dp := range payload.Defs {
		def := &term.Definition{Def: term.DefID(dp.ID)}
		for _, rp := range dp.Rules {
			rule := term.Rule{Def: def.Def}
			for _, pp := range rp.Pats {
				pat, err := decodePattern(&pp)
				if err != nil {
					return nil, err
				}
				rule.Pats = append(rule.Pats, pat)
			}
			body, err := decodeTerm(rp.Body)
			if err != nil {
				return nil, err
			}
			rule.Body = body
			def.Rules = append(def.Rules, rule)
		}
		book.Defs = append(book.Defs, def)
	}
	return book, nil
}

// Write persists the book at path via a temp file and atomic rename.
func Write(path string, b *term.Book) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(dir, "tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(f.Name())

	if err := Encode(f, b); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), path)
}

// Read loads the book persisted at path.
func Read(path string) (*term.Book, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Decode(f)
}
