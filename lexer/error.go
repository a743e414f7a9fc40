package lexer

import (
	"rvccgo/diag"
	"rvccgo/source"
)

// Error is a lexical diagnostic. It carries enough of diag.Location to render
// identically to parser and codegen errors.
type Error struct {
	Loc diag.Location
	Msg string
}

func (e *Error) Error() string { return e.Loc.Format(e.Msg) }

func newError(buf *source.Buffer, pos int, msg string) *Error {
	line, text := buf.LineAt(pos)
	return &Error{
		Loc: diag.Location{File: buf.Name, Pos: pos, Line: line, Col: buf.Column(pos), LineText: text},
		Msg: msg,
	}
}
