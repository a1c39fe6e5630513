package snapshot

import (
	"fmt"

	"loom/internal/term"
)

func encodePattern(p term.Pattern) patPayload {
	switch d := p.Data.(type) {
	case term.CtrData:
		pp := patPayload{Kind: uint8(term.PatCtr), Name: string(d.Name)}
		for _, a := range d.Args {
			pp.Args = append(pp.Args, encodePattern(a))
		}
		return pp
	case term.U32Data:
		return patPayload{Kind: uint8(term.PatU32), U32: d.Val}
	case term.I32Data:
		return patPayload{Kind: uint8(term.PatI32), I32: d.Val}
	case term.VarData:
		return patPayload{Kind: uint8(term.PatVar), Name: string(d.Name)}
	case term.TupData:
		fst := encodePattern(*d.Fst)
		snd := encodePattern(*d.Snd)
		return patPayload{Kind: uint8(term.PatTup), Fst: &fst, Snd: &snd}
	default:
		panic(fmt.Sprintf("snapshot: unencodable pattern kind %s", p.Kind))
	}
}

func decodePattern(pp *patPayload) (term.Pattern, error) {
	switch term.PatternKind(pp.Kind) {
	case term.PatCtr:
		args := make([]term.Pattern, 0, len(pp.Args))
		for i := range pp.Args {
			a, err := decodePattern(&pp.Args[i])
			if err != nil {
				return term.Pattern{}, err
			}
			args = append(args, a)
		}
		return term.PatCtrOf(term.Name(pp.Name), args...), nil
	case term.PatU32:
		return term.PatU32Of(pp.U32), nil
	case term.PatI32:
		return term.PatI32Of(pp.I32), nil
	case term.PatVar:
		return term.PatVarOf(term.Name(pp.Name)), nil
	case term.PatTup:
		if pp.Fst == nil || pp.Snd == nil {
			return term.Pattern{}, fmt.Errorf("%w: tuple pattern missing a side", ErrMalformed)
		}
		fst, err := decodePattern(pp.Fst)
		if err != nil {
			return term.Pattern{}, err
		}
		snd, err := decodePattern(pp.Snd)
		if err != nil {
			return term.Pattern{}, err
		}
		return term.PatTupOf(fst, snd), nil
	default:
		return term.Pattern{}, fmt.Errorf("%w: unknown pattern kind %d", ErrMalformed, pp.Kind)
	}
}

func encodeTerm(t *term.Term) *termPayload {
	switch d := t.Data.(type) {
	case term.LamData:
		return &termPayload{Kind: uint8(term.TermLam), Name: string(d.Name), A: encodeTerm(d.Body)}
	case term.VarTermData:
		return &termPayload{Kind: uint8(term.TermVar), Name: string(d.Name)}
	case term.ChnData:
		return &termPayload{Kind: uint8(term.TermChn), Name: string(d.Name), A: encodeTerm(d.Body)}
	case term.LnkData:
		return &termPayload{Kind: uint8(term.TermLnk), Name: string(d.Name)}
	case term.RefData:
		return &termPayload{Kind: uint8(term.TermRef), Def: uint32(d.Def)}
	case term.AppData:
		return &termPayload{Kind: uint8(term.TermApp), A: encodeTerm(d.Fun), B: encodeTerm(d.Arg)}
	case term.DupData:
		return &termPayload{
			Kind:  uint8(term.TermDup),
			Name:  string(d.Fst),
			Name2: string(d.Snd),
			A:     encodeTerm(d.Val),
			B:     encodeTerm(d.Nxt),
		}
	case term.U32TermData:
		return &termPayload{Kind: uint8(term.TermU32), U32: d.Val}
	case term.I32TermData:
		return &termPayload{Kind: uint8(term.TermI32), I32: d.Val}
	case term.OpxData:
		return &termPayload{Kind: uint8(term.TermOpx), Op: uint8(d.Op), A: encodeTerm(d.Fst), B: encodeTerm(d.Snd)}
	case term.SupData:
		return &termPayload{Kind: uint8(term.TermSup), A: encodeTerm(d.Fst), B: encodeTerm(d.Snd)}
	case term.EraData:
		return &termPayload{Kind: uint8(term.TermEra)}
	default:
		panic(fmt.Sprintf("snapshot: unencodable term kind %s", t.Kind))
	}
}

func decodeTerm(tp *termPayload) (*term.Term, error) {
	if tp == nil {
		return nil, fmt.Errorf("%w: missing term node", ErrMalformed)
	}
	// Child decoding is grouped by how many sub-terms each kind owns.
	two := func() (*term.Term, *term.Term, error) {
		a, err := decodeTerm(tp.A)
		if err != nil {
			return nil, nil, err
		}
		b, err := decodeTerm(tp.B)
		if err != nil {
			return nil, nil, err
		}
		return a, b, nil
	}
	switch term.TermKind(tp.Kind) {
	case term.TermLam:
		body, err := decodeTerm(tp.A)
		if err != nil {
			return nil, err
		}
		return term.Lam(term.Name(tp.Name), body), nil
	case term.TermVar:
		return term.Var(term.Name(tp.Name)), nil
	case term.TermChn:
		body, err := decodeTerm(tp.A)
		if err != nil {
			return nil, err
		}
		return term.Chn(term.Name(tp.Name), body), nil
	case term.TermLnk:
		return term.Lnk(term.Name(tp.Name)), nil
	case term.TermRef:
		return term.Ref(term.DefID(tp.Def)), nil
	case term.TermApp:
		fun, arg, err := two()
		if err != nil {
			return nil, err
		}
		return term.App(fun, arg), nil
	case term.TermDup:
		val, nxt, err := two()
		if err != nil {
			return nil, err
		}
		return term.Dup(term.Name(tp.Name), term.Name(tp.Name2), val, nxt), nil
	case term.TermU32:
		return term.U32(tp.U32), nil
	case term.TermI32:
		return term.I32(tp.I32), nil
	case term.TermOpx:
		if tp.Op > uint8(term.OprNeq) {
			return nil, fmt.Errorf("%w: unknown operator %d", ErrMalformed, tp.Op)
		}
		fst, snd, err := two()
		if err != nil {
			return nil, err
		}
		return term.Opx(term.Opr(tp.Op), fst, snd), nil
	case term.TermSup:
		fst, snd, err := two()
		if err != nil {
			return nil, err
		}
		return term.Sup(fst, snd), nil
	case term.TermEra:
		return term.Era(), nil
	default:
		return nil, fmt.Errorf("%w: unknown term kind %d", ErrMalformed, tp.Kind)
	}
}
