// Package diag renders the "file:line, source line, caret" diagnostic shared
// by the tokenizer and parser. Each stage keeps its own named error type
// (lexer.Error, parser.SyntaxError, parser.SemanticError) so callers can
// distinguish the failing stage with errors.As, and all of them format
// through Location so the rendered message is identical across stages.
// codegen.InternalError carries no Location and prints only its message.
package diag

import "fmt"

// Location pins a diagnostic to a byte offset in a named source buffer.
type Location struct {
	File string
	Pos  int
	Line int
	Col  int

	// LineText is the full text of the offending line, captured at the
	// time the error was raised so the buffer doesn't need to be threaded
	// through every error value.
	LineText string
}

// Format renders the located message in the form every stage uses:
//
//	file.c:3
//	  int main() { return *; }
//	                       ^ expected an expression
func (l Location) Format(message string) string {
	caret := make([]byte, l.Col)
	for i := range caret {
		caret[i] = ' '
	}
	return fmt.Sprintf("%s:%d\n  %s\n  %s^ %s", l.File, l.Line, l.LineText, caret, message)
}
