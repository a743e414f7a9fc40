// Package token defines the lexical token representation shared by the
// tokenizer, parser and diagnostics.
package token

import "fmt"

// Kind classifies a Token. The set is closed: every token produced by the
// tokenizer is one of these six kinds, and identifiers are retagged to
// KEYWORD once the full stream is known.
type Kind int

const (
	EOF Kind = iota
	IDENT
	PUNCT
	KEYWORD
	STR
	NUM
)

func (k Kind) String() string {
	switch k {
	case EOF:
		return "EOF"
	case IDENT:
		return "IDENT"
	case PUNCT:
		return "PUNCT"
	case KEYWORD:
		return "KEYWORD"
	case STR:
		return "STR"
	case NUM:
		return "NUM"
	default:
		return "UNKNOWN"
	}
}

// Keywords is the closed keyword set. An IDENT whose text matches
// an entry here is retagged KEYWORD after the full token stream has been
// built.
var Keywords = map[string]bool{
	"return": true,
	"if":     true,
	"else":   true,
	"for":    true,
	"while":  true,
	"sizeof": true,
	"int":    true,
	"char":   true,
}

// Token is one lexical unit. Tokens form an immutable singly-linked
// sequence terminated by an EOF token; Next is nil only past
// EOF.
//
// Loc and Len describe the token's span into the source buffer (start
// offset, byte length) rather than holding a copy of the text, so that
// identifier/keyword comparisons and diagnostics can slice the original
// buffer instead of allocating.
type Token struct {
	Kind Kind
	Next *Token

	Loc int // byte offset into the source buffer
	Len int // span length in bytes
	Line int // 1-based line number

	// NUM payload.
	Val int64

	// STR payload: the decoded byte string (escapes resolved, no
	// terminating NUL — the parser counts it when sizing the backing
	// array type and codegen emits it).
	StrVal []byte
}

// Text returns the token's raw source span, taken from buf.
func (t *Token) Text(buf []byte) string {
	return string(buf[t.Loc : t.Loc+t.Len])
}

// Is reports whether the token's raw text equals s. Used throughout the
// parser in place of comparing Kind directly, since punctuators and
// keywords are both matched by their literal spelling.
func (t *Token) Is(buf []byte, s string) bool {
	return t.Len == len(s) && t.Text(buf) == s
}

func (t *Token) String(buf []byte) string {
	return fmt.Sprintf("Token{%s %q}", t.Kind, t.Text(buf))
}
