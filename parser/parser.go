// Package parser implements the recursive-descent parser and semantic
// elaborator: declarator/declspec disambiguation, scope
// management, operator overloading by operand type, and statement-
// expression support.
package parser

import (
	"rvccgo/ast"
	"rvccgo/source"
	"rvccgo/token"
)

// Parser holds all process-wide mutable state for a single compilation:
// the token cursor, the scope stack, the current function's
// LOCALS list, and the program-wide GLOBALS list. There is no hidden
// package-level state — everything lives on this struct so a rewrite could
// run two compilations concurrently without interference, even though this
// compiler itself only ever runs one.
type Parser struct {
	buf *source.Buffer
	cur *token.Token

	scopes  []*scope
	locals  *ast.Object // reset at the start of each function
	globals *ast.Object // program-wide: vars, string literals, functions

	anonCounter int // anonymous global (string literal) label counter
}

// New builds a Parser over the given token stream.
func New(buf *source.Buffer, tokens *token.Token) *Parser {
	return &Parser{buf: buf, cur: tokens}
}

// Parse consumes the entire token stream and returns the program's global
// object list (functions and global variables, in declaration order) or the
// first error encountered — there is no error recovery.
func (p *Parser) Parse() (*ast.Object, error) {
	p.pushScope()
	for p.cur.Kind != token.EOF {
		baseType, err := p.declspec()
		if err != nil {
			return nil, err
		}

		if p.declaratorLooksLikeFunction() {
			if err := p.function(baseType); err != nil {
				return nil, err
			}
		} else {
			if err := p.globalVarDecl(baseType); err != nil {
				return nil, err
			}
		}
	}
	p.popScope()
	return reverse(p.globals), nil
}

// reverse flips a head-inserted Object list back into declaration order, so
// that GLOBALS emission order matches source order despite every insertion happening at the head.
func reverse(head *ast.Object) *ast.Object {
	var prev *ast.Object
	for cur := head; cur != nil; {
		next := cur.Next
		cur.Next = prev
		prev = cur
		cur = next
	}
	return prev
}

// --- token cursor -----------------------------------------------------

// advance consumes and returns the current token.
func (p *Parser) advance() *token.Token {
	t := p.cur
	if t.Kind != token.EOF {
		p.cur = t.Next
	}
	return t
}

// is reports whether the current token's raw text equals s, regardless of
// kind — punctuators and keywords are both matched by spelling.
func (p *Parser) is(s string) bool {
	return p.cur.Kind != token.EOF && p.cur.Is(p.buf.Bytes, s)
}

// consume advances past the current token if it equals s, reporting
// whether it did.
func (p *Parser) consume(s string) bool {
	if p.is(s) {
		p.advance()
		return true
	}
	return false
}

// expect consumes a token equal to s or fails with a syntax error. Unlike
// rvcc's `consume`, which leaves *rest pointing at the mismatched token
// either way, this never advances on mismatch — there is no aliased
// out-parameter for a caller to misuse.
func (p *Parser) expect(s string) error {
	if !p.consume(s) {
		return p.syntaxErrorAt(p.cur, "expected '%s'", s)
	}
	return nil
}

// expectIdent consumes an IDENT token or fails.
func (p *Parser) expectIdent() (*token.Token, error) {
	if p.cur.Kind != token.IDENT {
		return nil, p.syntaxErrorAt(p.cur, "expected an identifier")
	}
	return p.advance(), nil
}

func (p *Parser) text(tok *token.Token) string {
	return tok.Text(p.buf.Bytes)
}
