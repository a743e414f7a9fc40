// Package codegen walks a typed AST and emits RISC-V RV64I
// assembly text targeting the System V integer calling convention.
package codegen

import (
	"fmt"
	"strings"

	"rvccgo/ast"
)

// InternalError reports an AST shape codegen cannot reach if the parser did
// its job — e.g. gen_addr called on a node that isn't an lvalue.
type InternalError struct {
	Message string
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("🤖 internal error: %s", e.Message)
}

// argRegs are the integer argument/return registers used both for FNCALL
// argument passing and for spilling parameters into their frame slots.
var argRegs = [6]string{"a0", "a1", "a2", "a3", "a4", "a5"}

// generator holds all process-wide mutable codegen state for one
// compilation: the output buffer, the push/pop depth counter, the
// if/for label counter, and the function currently being emitted.
type generator struct {
	out strings.Builder

	depth int
	count int

	curFunc *ast.Object
}

// Generate emits a complete assembly unit for prog: a .data section for non-function globals, then a .text
// section with one prologue/body/epilogue per function.
func Generate(prog *ast.Object) (string, error) {
	g := &generator{}
	assignLocalOffsets(prog)

	g.emitData(prog)
	if err := g.emitText(prog); err != nil {
		return "", err
	}
	return g.out.String(), nil
}

func (g *generator) printf(format string, args ...any) {
	fmt.Fprintf(&g.out, format, args...)
}

func (g *generator) push() {
	g.printf("  addi sp, sp, -8\n")
	g.printf("  sd a0, 0(sp)\n")
	g.depth++
}

func (g *generator) pop(reg string) {
	g.printf("  ld %s, 0(sp)\n", reg)
	g.printf("  addi sp, sp, 8\n")
	g.depth--
}

func (g *generator) label() int {
	g.count++
	return g.count
}

// assignLocalOffsets walks each function's LOCALS list (head-inserted,
// parse-order-reversed) subtracting each local's size cumulatively, so the
// list head — the most recently declared local — lands closest to fp.
func assignLocalOffsets(globals *ast.Object) {
	for fn := globals; fn != nil; fn = fn.Next {
		if !fn.IsFunction {
			continue
		}
		offset := 0
		for v := fn.Locals; v != nil; v = v.Next {
			offset -= v.Type.Size
			v.Offset = offset
		}
		fn.StackSize = alignTo(-offset, 16)
	}
}

func alignTo(n, align int) int {
	return (n + align - 1) / align * align
}
