package source

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_AppendsNewlineAndNUL(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "in.c")
	require.NoError(t, os.WriteFile(path, []byte("int main(){return 0;}"), 0o644))

	buf, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, path, buf.Name)
	require.Equal(t, byte('\n'), buf.Bytes[len(buf.Bytes)-2])
	require.Equal(t, byte(0), buf.Bytes[len(buf.Bytes)-1])
}

func TestLoad_PreservesExistingTrailingNewline(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "in.c")
	require.NoError(t, os.WriteFile(path, []byte("int x;\n"), 0o644))

	buf, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "int x;\n\x00", string(buf.Bytes))
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.c"))
	require.Error(t, err)
}

func TestLineAtAndColumn(t *testing.T) {
	buf := &Buffer{Name: "t.c", Bytes: []byte("int x;\nint y;\n\x00")}

	line, text := buf.LineAt(8) // 'n' of second "int"
	require.Equal(t, 2, line)
	require.Equal(t, "int y;", text)
	require.Equal(t, 1, buf.Column(8))

	line, text = buf.LineAt(0)
	require.Equal(t, 1, line)
	require.Equal(t, "int x;", text)
	require.Equal(t, 0, buf.Column(0))
}
