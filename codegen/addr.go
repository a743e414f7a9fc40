package codegen

import "rvccgo/ast"

// genAddr computes the address of an lvalue into a0:
// VAR resolves to a frame-relative offset (locals) or a symbol (globals);
// DEREF re-evaluates its child expression, whose value already is an
// address. Any other kind is not an lvalue.
func (g *generator) genAddr(node *ast.Node) error {
	switch node.Kind {
	case ast.VAR:
		if node.Var.IsLocal {
			g.printf("  addi a0, fp, %d\n", node.Var.Offset)
		} else {
			g.printf("  la a0, %s\n", node.Var.Name)
		}
		return nil
	case ast.DEREF:
		return g.genExpr(node.Lhs)
	default:
		return &InternalError{Message: "not an lvalue"}
	}
}
