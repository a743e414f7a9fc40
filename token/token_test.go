package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToken_TextAndIs(t *testing.T) {
	buf := []byte("int x = 1;\x00")
	tok := &Token{Kind: KEYWORD, Loc: 0, Len: 3}

	assert.Equal(t, "int", tok.Text(buf))
	assert.True(t, tok.Is(buf, "int"))
	assert.False(t, tok.Is(buf, "return"))
}

func TestToken_String(t *testing.T) {
	buf := []byte("42\x00")
	tok := &Token{Kind: NUM, Loc: 0, Len: 2, Val: 42}
	assert.Equal(t, `Token{NUM "42"}`, tok.String(buf))
}

func TestKeywords_ClosedSet(t *testing.T) {
	for _, kw := range []string{"return", "if", "else", "for", "while", "sizeof", "int", "char"} {
		assert.True(t, Keywords[kw], "expected %q to be a keyword", kw)
	}
	assert.False(t, Keywords["foo"])
}

func TestKind_String(t *testing.T) {
	require.Equal(t, "IDENT", IDENT.String())
	require.Equal(t, "EOF", EOF.String())
}
