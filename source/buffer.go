// Package source loads compiler input into a single contiguous byte buffer
// and provides the line/column lookups that diagnostics are rendered from.
//
// All token and AST locations are offsets into the Buffer it produces, and
// the Buffer outlives tokenization, parsing and codegen.
package source

import (
	"fmt"
	"io"
	"os"
)

// Buffer is the program's input: the raw source bytes, always ending in a
// newline followed by a NUL sentinel so the tokenizer can scan one byte past
// the last real character without a bounds check.
type Buffer struct {
	Name  string // filename for diagnostics, "<stdin>" when read from stdin
	Bytes []byte
}

// Load reads path into a Buffer. path == "-" reads from stdin instead of
// opening a file.
func Load(path string) (*Buffer, error) {
	var data []byte
	var name string
	var err error

	if path == "-" {
		name = "<stdin>"
		data, err = io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
	} else {
		name = path
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
	}

	return &Buffer{Name: name, Bytes: normalize(data)}, nil
}

// normalize appends a trailing newline (if missing) and a NUL sentinel.
func normalize(data []byte) []byte {
	out := make([]byte, 0, len(data)+2)
	out = append(out, data...)
	if len(out) == 0 || out[len(out)-1] != '\n' {
		out = append(out, '\n')
	}
	out = append(out, 0)
	return out
}

// LineAt returns the 1-based line number and the full text of the line
// (without its trailing newline) that contains byte offset pos.
func (b *Buffer) LineAt(pos int) (line int, text string) {
	line = 1
	lineStart := 0
	for i := 0; i < pos && i < len(b.Bytes); i++ {
		if b.Bytes[i] == '\n' {
			line++
			lineStart = i + 1
		}
	}

	lineEnd := lineStart
	for lineEnd < len(b.Bytes) && b.Bytes[lineEnd] != '\n' && b.Bytes[lineEnd] != 0 {
		lineEnd++
	}
	return line, string(b.Bytes[lineStart:lineEnd])
}

// Column returns the 0-based column of pos within its line.
func (b *Buffer) Column(pos int) int {
	lineStart := pos
	for lineStart > 0 && b.Bytes[lineStart-1] != '\n' {
		lineStart--
	}
	return pos - lineStart
}
