package parser

import (
	"rvccgo/ast"
	"rvccgo/ctype"
)

// scope is one lexical region's name -> Object bindings. A new scope is pushed on "{" and popped at its matching "}"; name
// resolution searches from innermost outward.
type scope struct {
	vars map[string]*ast.Object
}

func newScope() *scope {
	return &scope{vars: make(map[string]*ast.Object)}
}

func (p *Parser) pushScope() {
	p.scopes = append(p.scopes, newScope())
}

func (p *Parser) popScope() {
	p.scopes = p.scopes[:len(p.scopes)-1]
}

// findVar searches the scope stack from innermost outward; first match
// wins.
func (p *Parser) findVar(name string) *ast.Object {
	for i := len(p.scopes) - 1; i >= 0; i-- {
		if obj, ok := p.scopes[i].vars[name]; ok {
			return obj
		}
	}
	return nil
}

// declareInScope binds name to obj in the current (innermost) scope.
func (p *Parser) declareInScope(name string, obj *ast.Object) {
	p.scopes[len(p.scopes)-1].vars[name] = obj
}

// newLocalVar creates a local Object, head-inserts it into p.locals (so the
// most-recently-declared local is always first — this is intentional: it's
// what makes frame-offset assignment in codegen run parse-order-reversed,
// deterministically), and binds it in the current scope.
func (p *Parser) newLocalVar(name string, typ *ctype.Type) *ast.Object {
	obj := &ast.Object{Name: name, Type: typ, IsLocal: true}
	obj.Next = p.locals
	p.locals = obj
	p.declareInScope(name, obj)
	return obj
}

// newGlobalVar creates a program-wide Object (global variable, string
// literal, or function), head-inserts it into p.globals, and — unless
// anonymous — binds it in the outermost scope.
func (p *Parser) newGlobalVar(name string, typ *ctype.Type, bindInScope bool) *ast.Object {
	obj := &ast.Object{Name: name, Type: typ}
	obj.Next = p.globals
	p.globals = obj
	if bindInScope {
		p.declareInScope(name, obj)
	}
	return obj
}
