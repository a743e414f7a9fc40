package lexer

import (
	"rvccgo/source"
	"rvccgo/token"
)

// scanString decodes a double-quoted string literal starting at
// buf.Bytes[start] (the opening quote). It returns a STR token whose Loc/Len
// cover both quotes and whose StrVal holds the decoded bytes (no trailing
// NUL — the parser sizes the backing char array as len(StrVal)+1 and codegen
// emits the trailing zero byte).
func scanString(buf *source.Buffer, start int) (*token.Token, int, error) {
	src := buf.Bytes
	pos := start + 1
	decoded := make([]byte, 0, 16)

	for {
		c := src[pos]
		if c == nul || c == '\n' {
			return nil, 0, newError(buf, start, "unclosed string literal")
		}
		if c == '"' {
			pos++
			break
		}
		if c != '\\' {
			decoded = append(decoded, c)
			pos++
			continue
		}

		// escape sequence
		pos++
		b, newPos, err := decodeEscape(buf, pos)
		if err != nil {
			return nil, 0, err
		}
		decoded = append(decoded, b)
		pos = newPos
	}

	tok := &token.Token{Kind: token.STR, Loc: start, Len: pos - start, StrVal: decoded}
	return tok, pos, nil
}

func decodeEscape(buf *source.Buffer, pos int) (byte, int, error) {
	src := buf.Bytes
	c := src[pos]

	switch c {
	case 'a':
		return '\a', pos + 1, nil
	case 'b':
		return '\b', pos + 1, nil
	case 't':
		return '\t', pos + 1, nil
	case 'n':
		return '\n', pos + 1, nil
	case 'v':
		return '\v', pos + 1, nil
	case 'f':
		return '\f', pos + 1, nil
	case 'r':
		return '\r', pos + 1, nil
	case 'e':
		return 27, pos + 1, nil
	case 'x':
		pos++
		if !isHex(src[pos]) {
			return 0, 0, newError(buf, pos, "invalid hex escape sequence")
		}
		var val int
		for isHex(src[pos]) {
			val = val*16 + hexVal(src[pos])
			pos++
		}
		return byte(val), pos, nil
	default:
		if c >= '0' && c <= '7' {
			val := 0
			n := 0
			for n < 3 && src[pos] >= '0' && src[pos] <= '7' {
				val = val*8 + int(src[pos]-'0')
				pos++
				n++
			}
			return byte(val), pos, nil
		}
		// any other escaped byte stands for itself
		return c, pos + 1, nil
	}
}

func isHex(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func hexVal(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	default:
		return int(c-'A') + 10
	}
}
