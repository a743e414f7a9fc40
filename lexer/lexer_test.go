package lexer

import (
	"testing"

	"github.com/stretchr/testify/require"

	"rvccgo/source"
	"rvccgo/token"
)

func tokenize(t *testing.T, src string) *token.Token {
	t.Helper()
	toks, _ := tokenizeBuf(t, src)
	return toks
}

func tokenizeBuf(t *testing.T, src string) (*token.Token, *source.Buffer) {
	t.Helper()
	buf := &source.Buffer{Name: "t.c", Bytes: append([]byte(src+"\n"), 0)}
	toks, err := Tokenize(buf)
	require.NoError(t, err)
	return toks, buf
}

func kinds(toks *token.Token) []token.Kind {
	var out []token.Kind
	for t := toks; t != nil; t = t.Next {
		out = append(out, t.Kind)
		if t.Kind == token.EOF {
			break
		}
	}
	return out
}

func TestTokenize_Punctuators(t *testing.T) {
	toks, buf := tokenizeBuf(t, "==!=<=>=+-*/(){}[],;<>=&")
	require.Equal(t, token.PUNCT, toks.Kind)
	require.Equal(t, "==", toks.Text(buf.Bytes))
}

func TestTokenize_NumberAndIdent(t *testing.T) {
	toks := tokenize(t, "123 foo_1")
	require.Equal(t, token.NUM, toks.Kind)
	require.EqualValues(t, 123, toks.Val)
	require.Equal(t, token.IDENT, toks.Next.Kind)
}

func TestTokenize_KeywordRetagging(t *testing.T) {
	toks := tokenize(t, "int return x")
	require.Equal(t, token.KEYWORD, toks.Kind)
	require.Equal(t, token.KEYWORD, toks.Next.Kind)
	require.Equal(t, token.IDENT, toks.Next.Next.Kind)
}

func TestTokenize_Comments(t *testing.T) {
	toks := tokenize(t, "1 // comment\n/* block\ncomment */2")
	require.Equal(t, []token.Kind{token.NUM, token.NUM, token.EOF}, kinds(toks))
}

func TestTokenize_StringEscapes(t *testing.T) {
	toks := tokenize(t, `"a\nb\x41\101"`)
	require.Equal(t, token.STR, toks.Kind)
	require.Equal(t, []byte{'a', '\n', 'b', 'A', 'A'}, toks.StrVal)
}

func TestTokenize_UnterminatedString(t *testing.T) {
	buf := &source.Buffer{Name: "t.c", Bytes: []byte("\"abc\n\x00")}
	_, err := Tokenize(buf)
	require.Error(t, err)
}

func TestTokenize_UnterminatedBlockComment(t *testing.T) {
	buf := &source.Buffer{Name: "t.c", Bytes: []byte("/* never closes\n\x00")}
	_, err := Tokenize(buf)
	require.Error(t, err)
}

func TestTokenize_InvalidToken(t *testing.T) {
	buf := &source.Buffer{Name: "t.c", Bytes: []byte("$\n\x00")}
	_, err := Tokenize(buf)
	require.Error(t, err)
}

func TestTokenize_EOFLocationAndLine(t *testing.T) {
	buf := &source.Buffer{Name: "t.c", Bytes: []byte("a\nb\n\x00")}
	toks, err := Tokenize(buf)
	require.NoError(t, err)

	var last *token.Token
	for t := toks; t != nil; t = t.Next {
		last = t
	}
	require.Equal(t, token.EOF, last.Kind)
	require.Equal(t, len(buf.Bytes)-1, last.Loc)
	require.Equal(t, 3, last.Line)
}
