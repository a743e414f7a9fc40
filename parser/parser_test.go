package parser

import (
	"testing"

	"github.com/stretchr/testify/require"

	"rvccgo/ast"
	"rvccgo/ctype"
	"rvccgo/lexer"
	"rvccgo/source"
)

func parseSource(t *testing.T, src string) (*ast.Object, error) {
	t.Helper()
	buf := &source.Buffer{Name: "t.c", Bytes: append([]byte(src+"\n"), 0)}
	toks, err := lexer.Tokenize(buf)
	require.NoError(t, err)
	return New(buf, toks).Parse()
}

func findObject(globals *ast.Object, name string) *ast.Object {
	for o := globals; o != nil; o = o.Next {
		if o.Name == name {
			return o
		}
	}
	return nil
}

func TestParse_GlobalVariableDeclaration(t *testing.T) {
	globals, err := parseSource(t, "int g;")
	require.NoError(t, err)

	g := findObject(globals, "g")
	require.NotNil(t, g)
	require.False(t, g.IsFunction)
	require.Equal(t, ctype.Int, g.Type)
}

func TestParse_FunctionVsGlobalDisambiguation(t *testing.T) {
	globals, err := parseSource(t, "int g; int f(int x) { return x; }")
	require.NoError(t, err)

	g := findObject(globals, "g")
	require.NotNil(t, g)
	require.False(t, g.IsFunction)

	f := findObject(globals, "f")
	require.NotNil(t, f)
	require.True(t, f.IsFunction)
	require.NotNil(t, f.Params)
	require.Equal(t, "x", f.Params.Name)
}

func TestParse_DeclarationOrderPreservedInGlobals(t *testing.T) {
	globals, err := parseSource(t, "int a; int b; int c;")
	require.NoError(t, err)

	var names []string
	for o := globals; o != nil; o = o.Next {
		names = append(names, o.Name)
	}
	require.Equal(t, []string{"a", "b", "c"}, names)
}

func TestParse_ParametersInSourceOrder(t *testing.T) {
	globals, err := parseSource(t, "int add(int x, int y, int z) { return x; }")
	require.NoError(t, err)

	fn := findObject(globals, "add")
	require.NotNil(t, fn)

	var names []string
	for p := fn.Params; p != nil; p = p.Next {
		names = append(names, p.Name)
	}
	require.Equal(t, []string{"x", "y", "z"}, names)
}

func TestParse_PointerArithmeticCommutes(t *testing.T) {
	globals, err := parseSource(t, `
int main() {
  int a[3];
  int *p;
  p = a;
  return *(p + 1) + *(1 + p);
}`)
	require.NoError(t, err)
	fn := findObject(globals, "main")
	require.NotNil(t, fn)

	var ret *ast.Node
	for s := fn.Body.Body; s != nil; s = s.Next {
		ret = s
	}
	require.Equal(t, ast.RETURN, ret.Kind)
	require.Equal(t, ast.ADD, ret.Lhs.Kind)
	require.Equal(t, astShape(ret.Lhs.Lhs), astShape(ret.Lhs.Rhs))
}

func TestParse_SubscriptDesugarsToDerefOfAdd(t *testing.T) {
	globalsA, errA := parseSource(t, "int main() { int a[3]; return a[1]; }")
	require.NoError(t, errA)
	globalsB, errB := parseSource(t, "int main() { int a[3]; return *(a+1); }")
	require.NoError(t, errB)

	fnA := findObject(globalsA, "main")
	fnB := findObject(globalsB, "main")
	require.Equal(t, astShape(fnA.Body), astShape(fnB.Body))
}

// astShape renders just the Kind sequence of a tree, deep enough to compare
// subscript desugaring without tying the test to token identity.
func astShape(n *ast.Node) []ast.Kind {
	if n == nil {
		return nil
	}
	var out []ast.Kind
	var walk func(*ast.Node)
	walk = func(n *ast.Node) {
		if n == nil {
			return
		}
		out = append(out, n.Kind)
		walk(n.Lhs)
		walk(n.Rhs)
		walk(n.Cond)
		walk(n.Then)
		walk(n.Els)
		walk(n.Init)
		walk(n.Inc)
		for c := n.Body; c != nil; c = c.Next {
			walk(c)
		}
		for c := n.Args; c != nil; c = c.Next {
			walk(c)
		}
	}
	walk(n)
	return out
}

func TestParse_SizeofYieldsConstant(t *testing.T) {
	globals, err := parseSource(t, "int main() { int x; return sizeof(x); }")
	require.NoError(t, err)
	fn := findObject(globals, "main")
	require.NotNil(t, fn)

	var ret *ast.Node
	for s := fn.Body.Body; s != nil; s = s.Next {
		ret = s
	}
	require.Equal(t, ast.RETURN, ret.Kind)
	require.Equal(t, ast.NUM, ret.Lhs.Kind)
	require.EqualValues(t, 8, ret.Lhs.Val)
}

func TestParse_StatementExpression(t *testing.T) {
	globals, err := parseSource(t, "int main() { return ({ int x; x = 3; x; }); }")
	require.NoError(t, err)
	require.NotNil(t, findObject(globals, "main"))
}

func TestParse_UndefinedVariableIsSemanticError(t *testing.T) {
	_, err := parseSource(t, "int main() { return x; }")
	require.Error(t, err)
	var semErr *SemanticError
	require.ErrorAs(t, err, &semErr)
}

func TestParse_AddressOfNonLvalueIsError(t *testing.T) {
	_, err := parseSource(t, "int main() { return &1; }")
	require.Error(t, err)
}

func TestParse_SyntaxErrorNearStray(t *testing.T) {
	_, err := parseSource(t, "int main() { int *p; return *p + *; }")
	require.Error(t, err)
	var synErr *SyntaxError
	require.ErrorAs(t, err, &synErr)
}

func TestParse_PointerPlusPointerIsError(t *testing.T) {
	_, err := parseSource(t, "int main() { int *p; int *q; return p + q; }")
	require.Error(t, err)
}

func TestParse_FunctionCallWithArguments(t *testing.T) {
	globals, err := parseSource(t, "int add(int x, int y) { return x + y; } int main() { return add(3, 4); }")
	require.NoError(t, err)
	require.NotNil(t, findObject(globals, "add"))
	require.NotNil(t, findObject(globals, "main"))
}
