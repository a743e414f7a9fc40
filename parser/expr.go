package parser

import (
	"rvccgo/ast"
	"rvccgo/ctype"
	"rvccgo/token"
)

// expr = assign
func (p *Parser) expr() (*ast.Node, error) {
	return p.assign()
}

// assign = equality ("=" assign)?   -- right-associative
func (p *Parser) assign() (*ast.Node, error) {
	lhs, err := p.equality()
	if err != nil {
		return nil, err
	}
	if tok := p.cur; p.consume("=") {
		rhs, err := p.assign()
		if err != nil {
			return nil, err
		}
		return ast.NewBinary(ast.ASSIGN, lhs, rhs, tok), nil
	}
	return lhs, nil
}

// equality = relational (("==" | "!=") relational)*
func (p *Parser) equality() (*ast.Node, error) {
	lhs, err := p.relational()
	if err != nil {
		return nil, err
	}
	for {
		tok := p.cur
		switch {
		case p.consume("=="):
			rhs, err := p.relational()
			if err != nil {
				return nil, err
			}
			lhs = ast.NewBinary(ast.EQ, lhs, rhs, tok)
		case p.consume("!="):
			rhs, err := p.relational()
			if err != nil {
				return nil, err
			}
			lhs = ast.NewBinary(ast.NE, lhs, rhs, tok)
		default:
			return lhs, nil
		}
	}
}

// relational = add (("<"|"<="|">"|">=") add)*
//
// ">" and ">=" are desugared by swapping operands onto "<"/"<=".
func (p *Parser) relational() (*ast.Node, error) {
	lhs, err := p.add()
	if err != nil {
		return nil, err
	}
	for {
		tok := p.cur
		switch {
		case p.consume("<"):
			rhs, err := p.add()
			if err != nil {
				return nil, err
			}
			lhs = ast.NewBinary(ast.LT, lhs, rhs, tok)
		case p.consume("<="):
			rhs, err := p.add()
			if err != nil {
				return nil, err
			}
			lhs = ast.NewBinary(ast.LE, lhs, rhs, tok)
		case p.consume(">"):
			rhs, err := p.add()
			if err != nil {
				return nil, err
			}
			lhs = ast.NewBinary(ast.LT, rhs, lhs, tok)
		case p.consume(">="):
			rhs, err := p.add()
			if err != nil {
				return nil, err
			}
			lhs = ast.NewBinary(ast.LE, rhs, lhs, tok)
		default:
			return lhs, nil
		}
	}
}

// add = mul (("+"|"-") mul)*
func (p *Parser) add() (*ast.Node, error) {
	lhs, err := p.mul()
	if err != nil {
		return nil, err
	}
	for {
		tok := p.cur
		switch {
		case p.consume("+"):
			rhs, err := p.mul()
			if err != nil {
				return nil, err
			}
			lhs, err = p.newAdd(lhs, rhs, tok)
			if err != nil {
				return nil, err
			}
		case p.consume("-"):
			rhs, err := p.mul()
			if err != nil {
				return nil, err
			}
			lhs, err = p.newSub(lhs, rhs, tok)
			if err != nil {
				return nil, err
			}
		default:
			return lhs, nil
		}
	}
}

// newAdd implements pointer-aware "+": num+num is plain ADD; ptr+num
// (normalized so the pointer is always lhs) scales the integer operand by
// the referent size; ptr+ptr is a hard error.
func (p *Parser) newAdd(lhs, rhs *ast.Node, tok *token.Token) (*ast.Node, error) {
	if err := ast.AddType(lhs); err != nil {
		return nil, p.typeErrorToSemantic(err)
	}
	if err := ast.AddType(rhs); err != nil {
		return nil, p.typeErrorToSemantic(err)
	}

	if ctype.IsInteger(lhs.Type) && ctype.IsInteger(rhs.Type) {
		return ast.NewBinary(ast.ADD, lhs, rhs, tok), nil
	}
	if lhs.Type.Base != nil && rhs.Type.Base != nil {
		return nil, p.semanticErrorAt(tok, "invalid operands: pointer + pointer")
	}
	if lhs.Type.Base == nil && rhs.Type.Base != nil {
		lhs, rhs = rhs, lhs
	}
	scaled := ast.NewBinary(ast.MUL, rhs, ast.NewNum(int64(lhs.Type.Base.Size), tok), tok)
	if err := ast.AddType(scaled); err != nil {
		return nil, p.typeErrorToSemantic(err)
	}
	return ast.NewBinary(ast.ADD, lhs, scaled, tok), nil
}

// newSub implements the pointer-aware "-": num-num is plain SUB; ptr-num
// scales the subtrahend; ptr-ptr yields an element count (byte difference
// divided by referent size); num-ptr is a hard error.
func (p *Parser) newSub(lhs, rhs *ast.Node, tok *token.Token) (*ast.Node, error) {
	if err := ast.AddType(lhs); err != nil {
		return nil, p.typeErrorToSemantic(err)
	}
	if err := ast.AddType(rhs); err != nil {
		return nil, p.typeErrorToSemantic(err)
	}

	if ctype.IsInteger(lhs.Type) && ctype.IsInteger(rhs.Type) {
		return ast.NewBinary(ast.SUB, lhs, rhs, tok), nil
	}
	if lhs.Type.Base != nil && ctype.IsInteger(rhs.Type) {
		scaled := ast.NewBinary(ast.MUL, rhs, ast.NewNum(int64(lhs.Type.Base.Size), tok), tok)
		if err := ast.AddType(scaled); err != nil {
			return nil, p.typeErrorToSemantic(err)
		}
		sub := ast.NewBinary(ast.SUB, lhs, scaled, tok)
		if err := ast.AddType(sub); err != nil {
			return nil, p.typeErrorToSemantic(err)
		}
		return sub, nil
	}
	if lhs.Type.Base != nil && rhs.Type.Base != nil {
		sub := ast.NewBinary(ast.SUB, lhs, rhs, tok)
		size := ast.NewNum(int64(lhs.Type.Base.Size), tok)
		div := ast.NewBinary(ast.DIV, sub, size, tok)
		if err := ast.AddType(div); err != nil {
			return nil, p.typeErrorToSemantic(err)
		}
		div.Type = ctype.Int
		return div, nil
	}
	return nil, p.semanticErrorAt(tok, "invalid operands: number - pointer")
}

// mul = unary (("*"|"/") unary)*
func (p *Parser) mul() (*ast.Node, error) {
	lhs, err := p.unary()
	if err != nil {
		return nil, err
	}
	for {
		tok := p.cur
		switch {
		case p.consume("*"):
			rhs, err := p.unary()
			if err != nil {
				return nil, err
			}
			lhs = ast.NewBinary(ast.MUL, lhs, rhs, tok)
		case p.consume("/"):
			rhs, err := p.unary()
			if err != nil {
				return nil, err
			}
			lhs = ast.NewBinary(ast.DIV, lhs, rhs, tok)
		default:
			return lhs, nil
		}
	}
}

// unary = ("+"|"-"|"*"|"&") unary | postfix
func (p *Parser) unary() (*ast.Node, error) {
	tok := p.cur
	switch {
	case p.consume("+"):
		return p.unary()
	case p.consume("-"):
		child, err := p.unary()
		if err != nil {
			return nil, err
		}
		return ast.NewUnary(ast.NEG, child, tok), nil
	case p.consume("*"):
		child, err := p.unary()
		if err != nil {
			return nil, err
		}
		return ast.NewUnary(ast.DEREF, child, tok), nil
	case p.consume("&"):
		child, err := p.unary()
		if err != nil {
			return nil, err
		}
		return ast.NewUnary(ast.ADDR, child, tok), nil
	default:
		return p.postfix()
	}
}

// postfix = primary ("[" expr "]")*
//
// a[i] desugars to *(a + i) using the pointer-aware "+".
func (p *Parser) postfix() (*ast.Node, error) {
	node, err := p.primary()
	if err != nil {
		return nil, err
	}
	for p.is("[") {
		tok := p.advance()
		idx, err := p.expr()
		if err != nil {
			return nil, err
		}
		if err := p.expect("]"); err != nil {
			return nil, err
		}
		sum, err := p.newAdd(node, idx, tok)
		if err != nil {
			return nil, err
		}
		node = ast.NewUnary(ast.DEREF, sum, tok)
	}
	return node, nil
}

// primary = "(" "{" stmt+ "}" ")"   -- statement expression
//
//	| "(" expr ")"
//	| "sizeof" unary
//	| IDENT ( "(" (assign ("," assign)*)? ")" )?
//	| STR
//	| NUM
func (p *Parser) primary() (*ast.Node, error) {
	tok := p.cur

	if p.is("(") && p.peekIsBraceAfterParen() {
		p.advance() // "("
		p.advance() // "{"
		body, err := p.stmtExprBody()
		if err != nil {
			return nil, err
		}
		if err := p.expect(")"); err != nil {
			return nil, err
		}
		node := ast.New(ast.STMT_EXPR, tok)
		node.Body = body
		return node, nil
	}

	if p.consume("(") {
		e, err := p.expr()
		if err != nil {
			return nil, err
		}
		if err := p.expect(")"); err != nil {
			return nil, err
		}
		return e, nil
	}

	if p.consume("sizeof") {
		child, err := p.unary()
		if err != nil {
			return nil, err
		}
		if err := ast.AddType(child); err != nil {
			return nil, p.typeErrorToSemantic(err)
		}
		return ast.NewNum(int64(child.Type.Size), tok), nil
	}

	if tok.Kind == token.IDENT {
		p.advance()
		if p.is("(") {
			return p.fncall(tok)
		}
		obj := p.findVar(p.text(tok))
		if obj == nil {
			return nil, p.semanticErrorAt(tok, "undefined variable: %s", p.text(tok))
		}
		return ast.NewVar(obj, tok), nil
	}

	if tok.Kind == token.STR {
		p.advance()
		obj := p.newStringLiteral(tok.StrVal)
		return ast.NewVar(obj, tok), nil
	}

	if tok.Kind == token.NUM {
		p.advance()
		return ast.NewNum(tok.Val, tok), nil
	}

	return nil, p.syntaxErrorAt(tok, "expected an expression")
}

// peekIsBraceAfterParen reports whether the token after the current "("
// is "{", the lookahead that distinguishes a statement expression from a
// parenthesized expression.
func (p *Parser) peekIsBraceAfterParen() bool {
	return p.cur.Next != nil && p.cur.Next.Kind != token.EOF && p.cur.Next.Is(p.buf.Bytes, "{")
}

// stmtExprBody parses the one-or-more statements of a "({ ... })"
// statement expression; the trailing expression statement supplies the
// expression's value at codegen time.
func (p *Parser) stmtExprBody() (*ast.Node, error) {
	p.pushScope()
	if p.is("}") {
		p.popScope()
		return nil, p.syntaxErrorAt(p.cur, "expected a statement")
	}
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
	return head.Next, nil
}

// fncall = IDENT "(" (assign ("," assign)*)? ")"
//
// ident has already been consumed; tok is its token.
func (p *Parser) fncall(tok *token.Token) (*ast.Node, error) {
	if err := p.expect("("); err != nil {
		return nil, err
	}

	var head ast.Node
	cur := &head
	for !p.is(")") {
		if cur != &head {
			if err := p.expect(","); err != nil {
				return nil, err
			}
		}
		arg, err := p.assign()
		if err != nil {
			return nil, err
		}
		cur.Next = arg
		cur = cur.Next
	}
	if err := p.expect(")"); err != nil {
		return nil, err
	}

	node := ast.New(ast.FNCALL, tok)
	node.FuncName = p.text(tok)
	node.Args = head.Next
	return node, nil
}
