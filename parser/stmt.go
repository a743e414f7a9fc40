package parser

import (
	"rvccgo/ast"
	"rvccgo/ctype"
)

// isTypeName reports whether the current token starts a declspec — used to
// distinguish a declaration from a statement at the head of compound_stmt.
func (p *Parser) isTypeName() bool {
	return p.is("int") || p.is("char")
}

// typeNode runs type propagation over a freshly built node and converts any
// resulting ast.TypeError into a located SemanticError.
func (p *Parser) typeNode(node *ast.Node) (*ast.Node, error) {
	if err := ast.AddType(node); err != nil {
		return nil, p.typeErrorToSemantic(err)
	}
	return node, nil
}

// compound_stmt = (declaration | stmt)* "}"
//
// The opening "{" is consumed by the caller (function body, block
// statement); this consumes statements until the matching "}".
func (p *Parser) compoundStmt() (*ast.Node, error) {
	p.pushScope()

	var head ast.Node
	cur := &head
	for !p.is("}") {
		var (
			n   *ast.Node
			err error
		)
		if p.isTypeName() {
			base, derr := p.declspec()
			if derr != nil {
				p.popScope()
				return nil, derr
			}
			n, err = p.declaration(base)
		} else {
			n, err = p.stmt()
		}
		if err != nil {
			p.popScope()
			return nil, err
		}
		cur.Next = n
		for cur.Next != nil {
			cur = cur.Next
		}
	}
	if err := p.expect("}"); err != nil {
		p.popScope()
		return nil, err
	}
	p.popScope()

	node := ast.New(ast.BLOCK, nil)
	node.Body = head.Next
	return node, nil
}

// declaration = declspec (declarator ("=" assign)?
//
//	("," declarator ("=" assign)?)*)? ";"
//
// Each declarator with an initializer becomes an EXPR_STMT wrapping an
// ASSIGN; declarators without one just introduce the variable. The
// resulting statements are threaded together via Next.
func (p *Parser) declaration(base *ctype.Type) (*ast.Node, error) {
	var head ast.Node
	cur := &head

	first := true
	for !p.consume(";") {
		if !first {
			if err := p.expect(","); err != nil {
				return nil, err
			}
		}
		first = false

		typ, err := p.declarator(base)
		if err != nil {
			return nil, err
		}
		tok := typ.Name
		obj := p.newLocalVar(p.text(tok), typ)

		if !p.consume("=") {
			continue
		}
		lhs := ast.NewVar(obj, tok)
		rhs, err := p.assign()
		if err != nil {
			return nil, err
		}
		assignNode, err := p.typeNode(ast.NewBinary(ast.ASSIGN, lhs, rhs, tok))
		if err != nil {
			return nil, err
		}
		stmtNode, err := p.typeNode(ast.NewUnary(ast.EXPR_STMT, assignNode, tok))
		if err != nil {
			return nil, err
		}
		cur.Next = stmtNode
		cur = cur.Next
	}

	node := ast.New(ast.BLOCK, nil)
	node.Body = head.Next
	return node, nil
}

// stmt = "return" expr ";"
//
//	| "if" "(" expr ")" stmt ("else" stmt)?
//	| "for" "(" expr_stmt expr? ";" expr? ")" stmt
//	| "while" "(" expr ")" stmt
//	| "{" compound_stmt
//	| expr_stmt
func (p *Parser) stmt() (*ast.Node, error) {
	switch {
	case p.is("return"):
		tok := p.advance()
		e, err := p.expr()
		if err != nil {
			return nil, err
		}
		if err := p.expect(";"); err != nil {
			return nil, err
		}
		return p.typeNode(ast.NewUnary(ast.RETURN, e, tok))

	case p.is("if"):
		tok := p.advance()
		if err := p.expect("("); err != nil {
			return nil, err
		}
		cond, err := p.expr()
		if err != nil {
			return nil, err
		}
		if err := p.expect(")"); err != nil {
			return nil, err
		}
		then, err := p.stmt()
		if err != nil {
			return nil, err
		}
		node := &ast.Node{Kind: ast.IF, Token: tok, Cond: cond, Then: then}
		if p.consume("else") {
			els, err := p.stmt()
			if err != nil {
				return nil, err
			}
			node.Els = els
		}
		return p.typeNode(node)

	case p.is("for"):
		tok := p.advance()
		if err := p.expect("("); err != nil {
			return nil, err
		}
		init, err := p.exprStmt()
		if err != nil {
			return nil, err
		}
		node := &ast.Node{Kind: ast.FOR, Token: tok, Init: init}

		if !p.is(";") {
			cond, err := p.expr()
			if err != nil {
				return nil, err
			}
			node.Cond = cond
		}
		if err := p.expect(";"); err != nil {
			return nil, err
		}

		if !p.is(")") {
			inc, err := p.expr()
			if err != nil {
				return nil, err
			}
			node.Inc = inc
		}
		if err := p.expect(")"); err != nil {
			return nil, err
		}

		then, err := p.stmt()
		if err != nil {
			return nil, err
		}
		node.Then = then
		return p.typeNode(node)

	case p.is("while"):
		tok := p.advance()
		if err := p.expect("("); err != nil {
			return nil, err
		}
		cond, err := p.expr()
		if err != nil {
			return nil, err
		}
		if err := p.expect(")"); err != nil {
			return nil, err
		}
		then, err := p.stmt()
		if err != nil {
			return nil, err
		}
		// while(C) S is represented as FOR with only Cond and Then set
		//.
		node := &ast.Node{Kind: ast.FOR, Token: tok, Cond: cond, Then: then}
		return p.typeNode(node)

	case p.is("{"):
		p.advance()
		return p.compoundStmt()

	default:
		return p.exprStmt()
	}
}

// expr_stmt = expr? ";"
func (p *Parser) exprStmt() (*ast.Node, error) {
	if p.consume(";") {
		return ast.New(ast.BLOCK, nil), nil
	}
	tok := p.cur
	e, err := p.expr()
	if err != nil {
		return nil, err
	}
	if err := p.expect(";"); err != nil {
		return nil, err
	}
	return p.typeNode(ast.NewUnary(ast.EXPR_STMT, e, tok))
}
