package parser

import (
	"fmt"

	"rvccgo/ast"
	"rvccgo/diag"
	"rvccgo/source"
	"rvccgo/token"
)

// SyntaxError reports a grammar violation: an expected punctuator,
// identifier or number that wasn't there.
type SyntaxError struct {
	Loc diag.Location
	Msg string
}

func (e *SyntaxError) Error() string { return e.Loc.Format(e.Msg) }

// SemanticError reports a violation discovered during elaboration: an
// undefined variable, invalid operand to +/-, not-an-lvalue in &/=, a
// dereference of a non-pointer, or assignment to an array.
type SemanticError struct {
	Loc diag.Location
	Msg string
}

func (e *SemanticError) Error() string { return e.Loc.Format(e.Msg) }

func locationAt(buf *source.Buffer, tok *token.Token) diag.Location {
	line, text := buf.LineAt(tok.Loc)
	return diag.Location{File: buf.Name, Pos: tok.Loc, Line: line, Col: buf.Column(tok.Loc), LineText: text}
}

func (p *Parser) syntaxErrorAt(tok *token.Token, format string, args ...any) *SyntaxError {
	return &SyntaxError{Loc: locationAt(p.buf, tok), Msg: fmt.Sprintf(format, args...)}
}

func (p *Parser) semanticErrorAt(tok *token.Token, format string, args ...any) *SemanticError {
	return &SemanticError{Loc: locationAt(p.buf, tok), Msg: fmt.Sprintf(format, args...)}
}

// typeErrorToSemantic converts an ast.TypeError (which only knows the AST)
// into a located SemanticError using this parser's source buffer.
func (p *Parser) typeErrorToSemantic(err error) error {
	te, ok := err.(*ast.TypeError)
	if !ok {
		return err
	}
	return p.semanticErrorAt(te.Node.Token, "%s", te.Message)
}
