package ast

import "rvccgo/ctype"

// Object represents a named entity: a local variable, parameter, global
// variable, string literal, or function. It lives in the
// same package as Node because a function Object owns an AST Body and an
// AST VAR node refers back to its Object — in rvcc these are defined in the
// same translation unit for exactly this reason.
type Object struct {
	Name string
	Type *ctype.Type
	Next *Object // threads Object into LOCALS/GLOBALS

	IsLocal    bool
	IsFunction bool

	// Variables.
	Offset   int    // frame offset, locals only; always <= 0
	InitData []byte // string-literal / initialized-global bytes, or nil

	// Functions.
	Params    *Object // linked list of parameter Objects, in source order
	Locals    *Object // linked list of this function's local Objects
	Body      *Node   // BLOCK node
	StackSize int     // computed by codegen, 16-byte aligned
}
