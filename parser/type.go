package parser

import (
	"rvccgo/ctype"
	"rvccgo/token"
)

// declspec = "int" | "char"
func (p *Parser) declspec() (*ctype.Type, error) {
	switch {
	case p.consume("int"):
		return ctype.Int, nil
	case p.consume("char"):
		return ctype.Char, nil
	default:
		return nil, p.syntaxErrorAt(p.cur, "expected a type")
	}
}

// declarator = "*"* IDENT type_suffix
//
// The resulting Type's Name field is set to the declared identifier so
// callers can recover the name without threading it separately.
func (p *Parser) declarator(base *ctype.Type) (*ctype.Type, error) {
	typ := base
	for p.consume("*") {
		typ = ctype.PointerTo(typ)
	}

	name, err := p.expectIdent()
	if err != nil {
		return nil, err
	}

	typ, err = p.typeSuffix(typ)
	if err != nil {
		return nil, err
	}
	typ.Name = name
	return typ, nil
}

// type_suffix = "(" func_params
//
//	| "[" NUM "]" type_suffix
//	| ε
func (p *Parser) typeSuffix(base *ctype.Type) (*ctype.Type, error) {
	if p.consume("(") {
		return p.funcParams(base)
	}
	if p.consume("[") {
		if p.cur.Kind != token.NUM {
			return nil, p.syntaxErrorAt(p.cur, "expected an array length")
		}
		length := int(p.advance().Val)
		if err := p.expect("]"); err != nil {
			return nil, err
		}
		base, err := p.typeSuffix(base)
		if err != nil {
			return nil, err
		}
		return ctype.ArrayOf(base, length), nil
	}
	return base, nil
}

// func_params = (param ("," param)*)? ")"
// param       = declspec declarator
func (p *Parser) funcParams(ret *ctype.Type) (*ctype.Type, error) {
	var head ctype.Type
	cur := &head

	for !p.is(")") {
		if cur != &head {
			if err := p.expect(","); err != nil {
				return nil, err
			}
		}
		base, err := p.declspec()
		if err != nil {
			return nil, err
		}
		paramType, err := p.declarator(base)
		if err != nil {
			return nil, err
		}
		cur.Next = ctype.Copy(paramType)
		cur = cur.Next
	}
	if err := p.expect(")"); err != nil {
		return nil, err
	}

	fn := ctype.FuncType(ret)
	fn.Params = head.Next
	return fn, nil
}

// declaratorLooksLikeFunction implements the top-level function-vs-global
// disambiguation: parse a declarator against a dummy base type without
// consuming tokens for real, then check whether it turned out to be a
// function. The cursor is restored regardless of the outcome; the real
// declarator is reparsed by the caller against the actual base type.
func (p *Parser) declaratorLooksLikeFunction() bool {
	saved := p.cur
	typ, err := p.declarator(ctype.Int)
	p.cur = saved
	return err == nil && typ.Kind == ctype.FUNC
}

// objectName extracts the declared identifier's text from a declarator's
// resulting type.
func (p *Parser) objectName(typ *ctype.Type) string {
	return p.text(typ.Name)
}
