package codegen

import (
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/stretchr/testify/require"

	"rvccgo/ast"
	"rvccgo/lexer"
	"rvccgo/parser"
	"rvccgo/source"
)

func compile(t *testing.T, src string) string {
	t.Helper()
	buf := &source.Buffer{Name: "t.c", Bytes: append([]byte(src+"\n"), 0)}
	toks, err := lexer.Tokenize(buf)
	require.NoError(t, err)
	globals, err := parser.New(buf, toks).Parse()
	require.NoError(t, err)
	asm, err := Generate(globals)
	require.NoError(t, err)
	return asm
}

// End-to-end scenarios from the compiler's required-behavior table: each
// source either exercises a specific runtime effect (verified structurally,
// since this package never invokes an assembler) or a specific emitted
// shape.

func TestGenerate_ArithmeticPrecedence(t *testing.T) {
	asm := compile(t, "int main(){ return 1+2*3; }")
	snaps.MatchSnapshot(t, asm)
}

func TestGenerate_LocalsAndLoop(t *testing.T) {
	asm := compile(t, "int main(){ int i=0; int s=0; for(i=1;i<=10;i=i+1) s=s+i; return s; }")
	snaps.MatchSnapshot(t, asm)
}

func TestGenerate_ArrayAndPointerArithmetic(t *testing.T) {
	asm := compile(t, "int main(){ int a[3]; a[0]=1; a[1]=2; a[2]=4; int *p=a; return *(p+2)+a[1]; }")
	require.Contains(t, asm, "mul a0, a0, a1")
}

func TestGenerate_GlobalVariableZeroInitialized(t *testing.T) {
	asm := compile(t, "int g; int main(){ g=42; return g; }")
	require.Contains(t, asm, "g:")
	require.Contains(t, asm, ".zero 8")
}

func TestGenerate_FunctionCallEmitsCall(t *testing.T) {
	asm := compile(t, "int add(int x,int y){return x+y;} int main(){return add(3,4);}")
	require.Contains(t, asm, "call add")
}

func TestGenerate_StringLiteralByteEmission(t *testing.T) {
	asm := compile(t, `int main(){ char *s; s = "hi"; return 0; }`)
	require.Contains(t, asm, ".byte 104")
	require.Contains(t, asm, ".byte 105")
	require.Contains(t, asm, ".byte 0")
}

// TestGenerate_PushPopBalances exercises the depth invariant directly:
// emitFunction returns an InternalError if depth != 0 at function exit, so
// any successful Generate call on a function with nested expressions is
// itself evidence the push/pop counter balanced.
func TestGenerate_PushPopBalances(t *testing.T) {
	asm := compile(t, "int main(){ return (1+2)*(3-4)/((5)); }")
	require.NotEmpty(t, asm)
}

func TestAssignLocalOffsets_SixteenByteAligned(t *testing.T) {
	asm := compile(t, "int main(){ char a; char b; char c; return 0; }")
	// stack_size must be a multiple of 16 even though the locals only sum
	// to 3 bytes; the frame reservation follows "mv fp, sp".
	require.True(t, strings.Contains(asm, "mv fp, sp\n  addi sp, sp, -16\n"))
}

func TestGenerate_InvalidLvalueIsInternalErrorFromCodegen(t *testing.T) {
	// Hand-build a tree codegen cannot reach through the parser: an ADDR
	// whose child is neither VAR nor DEREF, kept past ast.AddType's own
	// lvalue check by never running type propagation on it.
	badChild := ast.NewNum(1, nil)
	badChild.Type = nil
	node := ast.NewUnary(ast.ADDR, badChild, nil)

	g := &generator{}
	err := g.genExpr(node)
	require.Error(t, err)

	var internalErr *InternalError
	require.ErrorAs(t, err, &internalErr)
}
