package ast

import (
	"fmt"

	"rvccgo/ctype"
)

// TypeError reports a semantic error discovered while propagating types,
// e.g. dereferencing a non-pointer. It carries the offending Node so the
// caller (the parser, which holds the source buffer) can render a located
// diagnostic.
type TypeError struct {
	Node    *Node
	Message string
}

func (e *TypeError) Error() string { return e.Message }

// AddType propagates types bottom-up over node and its descendants. It is
// idempotent: a node whose Type is already set, along with a nil node, is a
// no-op, so calling it twice — once per parsed statement as the parser
// does, and once more defensively — yields identical assignments.
func AddType(node *Node) error {
	if node == nil || node.Type != nil {
		return nil
	}

	for _, child := range []*Node{node.Lhs, node.Rhs, node.Cond, node.Then, node.Els, node.Init, node.Inc} {
		if err := AddType(child); err != nil {
			return err
		}
	}
	for n := node.Body; n != nil; n = n.Next {
		if err := AddType(n); err != nil {
			return err
		}
	}
	for n := node.Args; n != nil; n = n.Next {
		if err := AddType(n); err != nil {
			return err
		}
	}

	switch node.Kind {
	case ASSIGN:
		if !isLvalue(node.Lhs) {
			return &TypeError{Node: node, Message: "not an lvalue"}
		}
		if node.Lhs.Type.Kind == ctype.ARRAY {
			return &TypeError{Node: node, Message: "cannot assign to an array"}
		}
		node.Type = node.Lhs.Type
	case ADD, SUB, MUL, DIV, NEG:
		node.Type = node.Lhs.Type
	case EQ, NE, LT, LE, NUM, FNCALL:
		// FNCALL is always typed INT: codegen never inspects the callee's
		// declared return type —
		// kept intentionally, the conservative option.
		node.Type = ctype.Int
	case VAR:
		node.Type = node.Var.Type
	case ADDR:
		if !isLvalue(node.Lhs) {
			return &TypeError{Node: node, Message: "not an lvalue"}
		}
		if node.Lhs.Type.Kind == ctype.ARRAY {
			node.Type = ctype.PointerTo(node.Lhs.Type.Base)
		} else {
			node.Type = ctype.PointerTo(node.Lhs.Type)
		}
	case DEREF:
		if node.Lhs.Type.Base == nil {
			return &TypeError{Node: node, Message: fmt.Sprintf("invalid pointer dereference of %s", node.Lhs.Type.Kind)}
		}
		node.Type = node.Lhs.Type.Base
	default:
		// statements (BLOCK, IF, FOR, RETURN, EXPR_STMT, STMT_EXPR) carry
		// no value and are never typed.
	}
	return nil
}

// isLvalue reports whether node designates a storage location and
// therefore has an address — the two lvalue kinds are VAR and DEREF.
func isLvalue(node *Node) bool {
	return node.Kind == VAR || node.Kind == DEREF
}
