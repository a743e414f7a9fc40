package codegen

import "rvccgo/ast"

// genStmt emits a statement. An EXPR_STMT leaves its expression's value in
// a0, which is what gives a STMT_EXPR its value; other statements leave no
// meaningful value there.
func (g *generator) genStmt(node *ast.Node) error {
	switch node.Kind {
	case ast.EXPR_STMT:
		return g.genExpr(node.Lhs)

	case ast.BLOCK:
		for n := node.Body; n != nil; n = n.Next {
			if err := g.genStmt(n); err != nil {
				return err
			}
		}
		return nil

	case ast.RETURN:
		if err := g.genExpr(node.Lhs); err != nil {
			return err
		}
		g.printf("  j .L.return.%s\n", g.curFunc.Name)
		return nil

	case ast.IF:
		c := g.label()
		if err := g.genExpr(node.Cond); err != nil {
			return err
		}
		g.printf("  beqz a0, .L.else.%d\n", c)
		if err := g.genStmt(node.Then); err != nil {
			return err
		}
		g.printf("  j .L.end.%d\n", c)
		g.printf(".L.else.%d:\n", c)
		if node.Els != nil {
			if err := g.genStmt(node.Els); err != nil {
				return err
			}
		}
		g.printf(".L.end.%d:\n", c)
		return nil

	case ast.FOR:
		c := g.label()
		if node.Init != nil {
			if err := g.genStmt(node.Init); err != nil {
				return err
			}
		}
		g.printf(".L.begin.%d:\n", c)
		if node.Cond != nil {
			if err := g.genExpr(node.Cond); err != nil {
				return err
			}
			g.printf("  beqz a0, .L.end.%d\n", c)
		}
		if err := g.genStmt(node.Then); err != nil {
			return err
		}
		if node.Inc != nil {
			if err := g.genExpr(node.Inc); err != nil {
				return err
			}
		}
		g.printf("  j .L.begin.%d\n", c)
		g.printf(".L.end.%d:\n", c)
		return nil

	default:
		return &InternalError{Message: "unreachable statement kind"}
	}
}
