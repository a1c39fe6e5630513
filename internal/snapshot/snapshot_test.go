package snapshot

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	"github.com/vmihailenco/msgpack/v5"

	"loom/internal/term"
)

func sampleBook(t *testing.T) *term.Book {
	t.Helper()
	book := term.NewBook()
	length, err := book.AddDef("Length",
		term.Rule{
			Pats: []term.Pattern{term.PatCtrOf("Nil")},
			Body: term.U32(0),
		},
	)
	if err != nil {
		t.Fatal(err)
	}
	length.Rules = append(length.Rules, term.Rule{
		Def: length.Def,
		Pats: []term.Pattern{
			term.PatCtrOf("Cons", term.PatWild(), term.PatVarOf("xs")),
		},
		Body: term.Opx(term.OprAdd, term.U32(1), term.App(term.Ref(length.Def), term.Var("xs"))),
	})
	if _, err := book.AddDef("Main", term.Rule{
		Pats: []term.Pattern{term.PatTupOf(term.PatVarOf("a"), term.PatI32Of(-2))},
		Body: term.Chn("c", term.Dup("x", term.NoName,
			term.Sup(term.Lnk("c"), term.Era()),
			term.Lam(term.NoName, term.I32(-7)))),
	}); err != nil {
		t.Fatal(err)
	}
	return book
}

func TestRoundTrip(t *testing.T) {
	book := sampleBook(t)

	var buf bytes.Buffer
	if err := Encode(&buf, book); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	got, err := Decode(&buf)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	if got.Display() != book.Display() {
		t.Errorf("round trip changed the book:\nbefore: %s\nafter:  %s", book.Display(), got.Display())
	}
	if got.Names.Len() != book.Names.Len() {
		t.Errorf("name table size changed: %d -> %d", book.Names.Len(), got.Names.Len())
	}
}

func TestWriteRead(t *testing.T) {
	book := sampleBook(t)
	path := filepath.Join(t.TempDir(), "book.mp")

	if err := Write(path, book); err != nil {
		t.Fatalf("Write: %v", err)
	}
	got, err := Read(path)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if got.Display() != book.Display() {
		t.Error("disk round trip changed the book")
	}
}

func TestDecodeSchemaMismatch(t *testing.T) {
	var buf bytes.Buffer
	payload := bookPayload{Schema: SchemaVersion + 1}
	if err := msgpack.NewEncoder(&buf).Encode(&payload); err != nil {
		t.Fatal(err)
	}

	if _, err := Decode(&buf); !errors.Is(err, ErrSchema) {
		t.Errorf("want ErrSchema, got %v", err)
	}
}

func TestDecodeUnknownKinds(t *testing.T) {
	cases := []struct {
		name    string
		payload bookPayload
	}{
		{
			"pattern kind",
			bookPayload{
				Schema: SchemaVersion,
				Defs: []defPayload{{Rules: []rulePayload{{
					Pats: []patPayload{{Kind: 200}},
					Body: &termPayload{Kind: uint8(term.TermEra)},
				}}}},
			},
		},
		{
			"term kind",
			bookPayload{
				Schema: SchemaVersion,
				Defs: []defPayload{{Rules: []rulePayload{{
					Body: &termPayload{Kind: 200},
				}}}},
			},
		},
		{
			"operator code",
			bookPayload{
				Schema: SchemaVersion,
				Defs: []defPayload{{Rules: []rulePayload{{
					Body: &termPayload{
						Kind: uint8(term.TermOpx),
						Op:   99,
						A:    &termPayload{Kind: uint8(term.TermU32)},
						B:    &termPayload{Kind: uint8(term.TermU32)},
					},
				}}}},
			},
		},
		{
			"missing body",
			bookPayload{
				Schema: SchemaVersion,
				Defs:   []defPayload{{Rules: []rulePayload{{}}}},
			},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := msgpack.NewEncoder(&buf).Encode(&tc.payload); err != nil {
				t.Fatal(err)
			}
			if _, err := Decode(&buf); !errors.Is(err, ErrMalformed) {
				t.Errorf("want ErrMalformed, got %v", err)
			}
		})
	}
}

func TestDecodeGarbage(t *testing.T) {
	if _, err := Decode(bytes.NewReader([]byte{0xc1, 0x00, 0xff})); !errors.Is(err, ErrMalformed) {
		t.Errorf("want ErrMalformed, got %v", err)
	}
}
