package parser

import (
	"strconv"

	"rvccgo/ast"
	"rvccgo/ctype"
)

// function = declspec declarator "{" compound_stmt
//
// Having already consumed declspec, this consumes the declarator (known by
// the caller to resolve to a FUNC type) and the body.
func (p *Parser) function(base *ctype.Type) error {
	typ, err := p.declarator(base)
	if err != nil {
		return err
	}

	fn := p.newGlobalVar(p.objectName(typ), typ, true)
	fn.IsFunction = true

	p.pushScope()
	p.locals = nil

	createParamLvars(p, typ.Params)
	fn.Params = p.locals

	if err := p.expect("{"); err != nil {
		return err
	}
	body, err := p.compoundStmt()
	if err != nil {
		return err
	}
	fn.Body = body
	fn.Locals = p.locals

	p.popScope()
	return nil
}

// createParamLvars recurses to the last parameter first, then creates local
// variables on the way back up, so that the head-inserted p.locals list ends
// up holding parameters in left-to-right source order:
// the first parameter created is the last one inserted, landing closest to
// the list head.
func createParamLvars(p *Parser, params *ctype.Type) {
	if params == nil {
		return
	}
	createParamLvars(p, params.Next)
	p.newLocalVar(p.text(params.Name), params)
}

// global_var = declspec (declarator ("," declarator)*)? ";"
func (p *Parser) globalVarDecl(base *ctype.Type) error {
	first := true
	for !p.consume(";") {
		if !first {
			if err := p.expect(","); err != nil {
				return err
			}
		}
		first = false

		typ, err := p.declarator(base)
		if err != nil {
			return err
		}
		p.newGlobalVar(p.objectName(typ), typ, true)
	}
	return nil
}

// newStringLiteral creates an anonymous global Object of type char[n] for a
// STR token, named ".L..<n>" with a monotonically increasing counter. It is
// never bound in scope since nothing refers to it by name.
func (p *Parser) newStringLiteral(data []byte) *ast.Object {
	name := p.anonLabel()
	typ := ctype.ArrayOf(ctype.Char, len(data)+1)
	obj := p.newGlobalVar(name, typ, false)
	obj.InitData = data
	return obj
}

func (p *Parser) anonLabel() string {
	n := p.anonCounter
	p.anonCounter++
	return ".L.." + strconv.Itoa(n)
}
