package codegen

import (
	"rvccgo/ast"
	"rvccgo/ctype"
)

// load emits the instruction that reads typ-sized data from the address
// currently in a0 into a0, respecting width: byte for char, doubleword
// otherwise. Array-typed values decay to their address instead (no load).
func (g *generator) load(typ *ctype.Type) {
	if typ.Kind == ctype.ARRAY {
		return
	}
	if typ.Size == 1 {
		g.printf("  lb a0, 0(a0)\n")
	} else {
		g.printf("  ld a0, 0(a0)\n")
	}
}

// store emits the instruction that writes a0 to the address in a1,
// respecting width.
func (g *generator) store(typ *ctype.Type) {
	if typ.Size == 1 {
		g.printf("  sb a0, 0(a1)\n")
	} else {
		g.printf("  sd a0, 0(a1)\n")
	}
}

// genExpr emits code that evaluates node and leaves its value in a0.
func (g *generator) genExpr(node *ast.Node) error {
	switch node.Kind {
	case ast.NUM:
		g.printf("  li a0, %d\n", node.Val)
		return nil

	case ast.VAR:
		if err := g.genAddr(node); err != nil {
			return err
		}
		g.load(node.Type)
		return nil

	case ast.DEREF:
		if err := g.genExpr(node.Lhs); err != nil {
			return err
		}
		g.load(node.Type)
		return nil

	case ast.ADDR:
		return g.genAddr(node.Lhs)

	case ast.NEG:
		if err := g.genExpr(node.Lhs); err != nil {
			return err
		}
		g.printf("  neg a0, a0\n")
		return nil

	case ast.ASSIGN:
		if err := g.genAddr(node.Lhs); err != nil {
			return err
		}
		g.push()
		if err := g.genExpr(node.Rhs); err != nil {
			return err
		}
		g.pop("a1")
		g.store(node.Lhs.Type)
		return nil

	case ast.ADD, ast.SUB, ast.MUL, ast.DIV, ast.EQ, ast.NE, ast.LT, ast.LE:
		return g.genBinary(node)

	case ast.FNCALL:
		return g.genCall(node)

	case ast.STMT_EXPR:
		for n := node.Body; n != nil; n = n.Next {
			if err := g.genStmt(n); err != nil {
				return err
			}
		}
		return nil

	default:
		return &InternalError{Message: "unreachable expression kind"}
	}
}

// genBinary evaluates the right operand, pushes it, evaluates the left into
// a0, pops the right into a1, then emits the operator.
func (g *generator) genBinary(node *ast.Node) error {
	if err := g.genExpr(node.Rhs); err != nil {
		return err
	}
	g.push()
	if err := g.genExpr(node.Lhs); err != nil {
		return err
	}
	g.pop("a1")

	switch node.Kind {
	case ast.ADD:
		g.printf("  add a0, a0, a1\n")
	case ast.SUB:
		g.printf("  sub a0, a0, a1\n")
	case ast.MUL:
		g.printf("  mul a0, a0, a1\n")
	case ast.DIV:
		g.printf("  div a0, a0, a1\n")
	case ast.EQ:
		g.printf("  xor a0, a0, a1\n")
		g.printf("  seqz a0, a0\n")
	case ast.NE:
		g.printf("  xor a0, a0, a1\n")
		g.printf("  snez a0, a0\n")
	case ast.LT:
		g.printf("  slt a0, a0, a1\n")
	case ast.LE:
		g.printf("  slt a0, a1, a0\n")
		g.printf("  xori a0, a0, 1\n")
	}
	return nil
}

// genCall evaluates each argument left-to-right, pushing each onto the
// software stack, then pops them off in reverse into a0..a5 before emitting
// the call. At most six arguments are supported.
func (g *generator) genCall(node *ast.Node) error {
	n := 0
	for arg := node.Args; arg != nil; arg = arg.Next {
		if err := g.genExpr(arg); err != nil {
			return err
		}
		g.push()
		n++
	}
	for i := n - 1; i >= 0; i-- {
		g.pop(argRegs[i])
	}
	g.printf("  call %s\n", node.FuncName)
	return nil
}
