package parser

import (
	"fmt"

	"github.com/funvibe/minijava/internal/ast"
	"github.com/funvibe/minijava/internal/diagnostics"
	"github.com/funvibe/minijava/internal/token"
)

func (p *Parser) parseExpression(precedence int) ast.Expression {
	p.depth++
	defer func() { p.depth-- }()

	if p.depth > MaxRecursionDepth {
		p.fatalf(diagnostics.ErrP002, "expression too complex: recursion depth limit exceeded")
		return nil
	}

	prefix := p.prefixParseFns[p.curToken.Type]
	if prefix == nil {
		p.syntaxErrorf("unexpected token %q in expression", p.curToken.Lexeme)
		return nil
	}
	left := prefix()
	if left == nil {
		return nil
	}

	left = p.parsePostfix(left)
	if left == nil {
		return nil
	}

	for p.fatal == nil && precedence < p.curPrecedence() {
		infix := p.infixParseFns[p.curToken.Type]
		if infix == nil {
			return left
		}
		left = infix(left)
		if left == nil {
			return nil
		}
	}

	return left
}

// parsePostfix attaches member access, call and ++/-- suffixes, which bind
// tighter than any infix operator.
func (p *Parser) parsePostfix(left ast.Expression) ast.Expression {
	for p.fatal == nil {
		switch p.curToken.Type {
		case token.DOT:
			dotTok := p.curToken
			p.nextToken()
			memberTok := p.expect(token.IDENT)
			if p.fatal != nil {
				return nil
			}
			left = &ast.MemberAccess{Token: dotTok, Target: left, Member: memberTok.Lexeme}
		case token.LPAREN:
			call := p.parseCall(left)
			if call == nil {
				return nil
			}
			left = call
		case token.INCR, token.DECR:
			opTok := p.curToken
			p.nextToken()
			left = &ast.UnaryOp{Token: opTok, Operator: opTok.Lexeme, Operand: left}
		default:
			return left
		}
	}
	return nil
}

// parseCall converts the callee into a MethodCall. An unqualified call
// keeps just the name; a qualified one keeps its target chain.
func (p *Parser) parseCall(callee ast.Expression) ast.Expression {
	lparenTok := p.expect(token.LPAREN)

	call := &ast.MethodCall{Token: lparenTok}
	switch c := callee.(type) {
	case *ast.Identifier:
		call.Name = c.Name
	case *ast.MemberAccess:
		call.Name = c.Member
		call.Target = c.Target
	default:
		p.syntaxErrorf("cannot call %s", callee.TokenLiteral())
		return nil
	}

	for !p.curTokenIs(token.RPAREN) && !p.curTokenIs(token.EOF) && p.fatal == nil {
		arg := p.parseExpression(LOWEST)
		if arg == nil {
			return nil
		}
		call.Arguments = append(call.Arguments, arg)
		if p.curTokenIs(token.COMMA) {
			p.nextToken()
		}
	}
	p.expect(token.RPAREN)
	if p.fatal != nil {
		return nil
	}
	return call
}

// parseIdentifier resolves a plain variable reference against the open
// frames: the reference is marked used and its declared type is stamped on
// the node. Names that head a call or a member chain (method names,
// "System.out" style qualifiers) are not variable references and are left
// unresolved.
func (p *Parser) parseIdentifier() ast.Expression {
	tok := p.curToken
	p.nextToken()

	ident := &ast.Identifier{Token: tok, Name: tok.Lexeme}

	if p.curTokenIs(token.DOT) || p.curTokenIs(token.LPAREN) {
		return ident
	}

	if err := p.symbolTable.MarkUsed(ident.Name); err != nil {
		p.fatal = fmt.Errorf("Line %d: %w", tok.Line, err)
		return nil
	}
	if info, ok := p.symbolTable.Lookup(ident.Name); ok {
		ident.ResolvedType = info.Type
	}
	return ident
}

// parseObjectCreation parses "new ClassName(args)". The class name is not
// a variable reference and stays unresolved, like a call target.
func (p *Parser) parseObjectCreation() ast.Expression {
	newTok := p.expect(token.NEW)
	nameTok := p.expect(token.IDENT)
	if p.fatal != nil {
		return nil
	}

	obj := &ast.ObjectCreation{Token: newTok, ClassName: nameTok.Lexeme}

	p.expect(token.LPAREN)
	for !p.curTokenIs(token.RPAREN) && !p.curTokenIs(token.EOF) && p.fatal == nil {
		arg := p.parseExpression(LOWEST)
		if arg == nil {
			return nil
		}
		obj.Arguments = append(obj.Arguments, arg)
		if p.curTokenIs(token.COMMA) {
			p.nextToken()
		}
	}
	p.expect(token.RPAREN)
	if p.fatal != nil {
		return nil
	}
	return obj
}

var literalTypes = map[token.Type]string{
	token.INT_LIT:    "int",
	token.LONG_LIT:   "long",
	token.FLOAT_LIT:  "float",
	token.DOUBLE_LIT: "double",
	token.CHAR_LIT:   "char",
	token.STRING_LIT: "String",
	token.TRUE:       "boolean",
	token.FALSE:      "boolean",
}

func (p *Parser) parseLiteral() ast.Expression {
	tok := p.curToken
	p.nextToken()
	return &ast.Literal{Token: tok, Type: literalTypes[tok.Type], Value: tok.Literal}
}

func (p *Parser) parsePrefixExpression() ast.Expression {
	opTok := p.curToken
	p.nextToken()
	operand := p.parseExpression(PREFIX)
	if operand == nil {
		return nil
	}
	return &ast.UnaryOp{Token: opTok, Operator: opTok.Lexeme, Operand: operand}
}

func (p *Parser) parseGroupedExpression() ast.Expression {
	p.expect(token.LPAREN)
	expr := p.parseExpression(LOWEST)
	if expr == nil {
		return nil
	}
	p.expect(token.RPAREN)
	if p.fatal != nil {
		return nil
	}
	return expr
}

func (p *Parser) parseBinaryOp(left ast.Expression) ast.Expression {
	opTok := p.curToken
	precedence := p.curPrecedence()
	p.nextToken()
	right := p.parseExpression(precedence)
	if right == nil {
		return nil
	}
	return &ast.BinaryOp{Token: opTok, Operator: opTok.Lexeme, Left: left, Right: right}
}
