package codegen

import "rvccgo/ast"

// emitText emits the .text section: one prologue/body/epilogue per
// function.
func (g *generator) emitText(globals *ast.Object) error {
	g.printf(".text\n")
	for fn := globals; fn != nil; fn = fn.Next {
		if !fn.IsFunction {
			continue
		}
		if err := g.emitFunction(fn); err != nil {
			return err
		}
	}
	return nil
}

func (g *generator) emitFunction(fn *ast.Object) error {
	g.curFunc = fn
	g.depth = 0

	g.printf(".globl %s\n", fn.Name)
	g.printf("%s:\n", fn.Name)

	// Prologue.
	g.printf("  addi sp, sp, -16\n")
	g.printf("  sd ra, 8(sp)\n")
	g.printf("  sd fp, 0(sp)\n")
	g.printf("  mv fp, sp\n")
	g.printf("  addi sp, sp, -%d\n", fn.StackSize)

	// Spill incoming arguments into their frame slots.
	i := 0
	for p := fn.Params; p != nil; p = p.Next {
		if p.Type.Size == 1 {
			g.printf("  sb %s, %d(fp)\n", argRegs[i], p.Offset)
		} else {
			g.printf("  sd %s, %d(fp)\n", argRegs[i], p.Offset)
		}
		i++
	}

	if err := g.genStmt(fn.Body); err != nil {
		return err
	}
	if g.depth != 0 {
		return &InternalError{Message: "push/pop depth imbalance at function exit"}
	}

	// Epilogue.
	g.printf(".L.return.%s:\n", fn.Name)
	g.printf("  mv sp, fp\n")
	g.printf("  ld fp, 0(sp)\n")
	g.printf("  ld ra, 8(sp)\n")
	g.printf("  addi sp, sp, 16\n")
	g.printf("  ret\n")
	return nil
}
