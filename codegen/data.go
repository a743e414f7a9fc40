package codegen

import (
	"unicode"

	"rvccgo/ast"
)

// emitData emits the .data section: every non-function global with an
// initializer gets its bytes spelled out as .byte directives; every
// zero-initialized global gets a .globl directive and a .zero reservation
//.
func (g *generator) emitData(globals *ast.Object) {
	g.printf(".data\n")
	for v := globals; v != nil; v = v.Next {
		if v.IsFunction {
			continue
		}
		if v.InitData != nil {
			g.printf("%s:\n", v.Name)
			for _, b := range v.InitData {
				g.printf("  .byte %d", b)
				if unicode.IsPrint(rune(b)) {
					g.printf(" # '%c'", b)
				}
				g.printf("\n")
			}
			g.printf("  .byte 0\n")
			continue
		}
		g.printf(".globl %s\n", v.Name)
		g.printf("%s:\n", v.Name)
		g.printf("  .zero %d\n", v.Type.Size)
	}
}
