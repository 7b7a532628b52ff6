package parser

import (
	"github.com/funvibe/minijava/internal/ast"
	"github.com/funvibe/minijava/internal/token"
)

// ParseProgram parses one compilation unit: a sequence of class
// declarations.
func (p *Parser) ParseProgram() *ast.Program {
	program := &ast.Program{}

	for !p.curTokenIs(token.EOF) && p.fatal == nil {
		class := p.parseClass()
		if class == nil {
			break
		}
		program.Classes = append(program.Classes, class)
	}

	return program
}

func (p *Parser) parseClass() *ast.Class {
	p.skipModifiers()
	classTok := p.expect(token.CLASS)
	nameTok := p.expect(token.IDENT)
	p.expect(token.LBRACE)

	class := &ast.Class{Token: classTok, Name: nameTok.Lexeme}

	for !p.curTokenIs(token.RBRACE) && !p.curTokenIs(token.EOF) && p.fatal == nil {
		member := p.parseClassMember()
		if member == nil {
			break
		}
		class.Members = append(class.Members, member)
	}

	p.expect(token.RBRACE)
	if p.fatal != nil {
		return nil
	}
	return class
}

func (p *Parser) skipModifiers() {
	for p.curTokenIs(token.PUBLIC) || p.curTokenIs(token.PRIVATE) || p.curTokenIs(token.STATIC) {
		p.nextToken()
	}
}

// parseClassMember parses either a field declaration or a method. Both
// start with modifiers and a type (or void); a '(' after the name decides.
func (p *Parser) parseClassMember() ast.Node {
	p.skipModifiers()

	typeTok := p.curToken
	var typeName string
	if p.curTokenIs(token.VOID) {
		typeName = "void"
		p.nextToken()
	} else if name, ok := token.TypeName(p.curToken.Type); ok {
		typeName = name
		p.nextToken()
	} else if p.curTokenIs(token.IDENT) {
		// Class-typed member (e.g. "Scanner sc") - treated as its lexeme.
		typeName = p.curToken.Lexeme
		p.nextToken()
	} else {
		p.syntaxErrorf("expected member declaration, got %q", p.curToken.Lexeme)
		return nil
	}

	nameTok := p.expect(token.IDENT)
	if p.fatal != nil {
		return nil
	}

	if p.curTokenIs(token.LPAREN) {
		return p.parseMethod(typeTok, typeName, nameTok)
	}
	return p.parseFieldDeclaration(typeTok, typeName, nameTok)
}

// parseFieldDeclaration finishes "type name [= expr];". Fields live in the
// global frame, which stays open for the whole analysis.
func (p *Parser) parseFieldDeclaration(typeTok token.Token, typeName string, nameTok token.Token) ast.Node {
	decl := p.finishVariableDeclaration(typeTok, typeName, nameTok)
	if decl == nil {
		return nil
	}
	return decl
}

func (p *Parser) parseMethod(typeTok token.Token, returnType string, nameTok token.Token) ast.Node {
	method := &ast.Method{Token: typeTok, Name: nameTok.Lexeme, ReturnType: returnType}

	p.expect(token.LPAREN)

	// The method's frame opens before the parameters are declared and
	// closes after the last body statement, so parameters and locals
	// share one frame and never leak outward.
	p.symbolTable.EnterScope()
	defer p.symbolTable.ExitScope()

	for !p.curTokenIs(token.RPAREN) && !p.curTokenIs(token.EOF) && p.fatal == nil {
		param := p.parseParameter()
		if param == nil {
			return nil
		}
		method.Params = append(method.Params, param)
		if p.curTokenIs(token.COMMA) {
			p.nextToken()
		}
	}
	p.expect(token.RPAREN)
	p.expect(token.LBRACE)

	for !p.curTokenIs(token.RBRACE) && !p.curTokenIs(token.EOF) && p.fatal == nil {
		stmt := p.parseStatement()
		if stmt == nil {
			return nil
		}
		method.Statements = append(method.Statements, stmt)
	}
	p.expect(token.RBRACE)

	if p.fatal != nil {
		return nil
	}
	return method
}

func (p *Parser) parseParameter() *ast.Parameter {
	typeTok := p.curToken
	typeName, ok := token.TypeName(p.curToken.Type)
	if !ok {
		p.syntaxErrorf("expected parameter type, got %q", p.curToken.Lexeme)
		return nil
	}
	p.nextToken()
	nameTok := p.expect(token.IDENT)
	if p.fatal != nil {
		return nil
	}

	if err := p.symbolTable.Declare(nameTok.Lexeme, typeName, nameTok.Line); err != nil {
		p.fatal = err
		return nil
	}

	return &ast.Parameter{Token: typeTok, Name: nameTok.Lexeme, Type: typeName}
}

func (p *Parser) parseStatement() ast.Statement {
	switch p.curToken.Type {
	case token.LBRACE:
		return p.parseBlock()
	case token.IF:
		return p.parseIf()
	case token.WHILE:
		return p.parseWhile()
	case token.DO:
		return p.parseDoWhile()
	case token.FOR:
		return p.parseFor()
	case token.RETURN:
		return p.parseReturn()
	case token.IDENT:
		if p.peekTokenIs(token.ASSIGN) {
			return p.parseAssignment()
		}
		return p.parseExpressionStatement()
	default:
		if token.IsTypeKeyword(p.curToken.Type) {
			return p.parseVariableDeclaration()
		}
		return p.parseExpressionStatement()
	}
}

// parseBlock parses "{ ... }" and opens a frame for the statements inside.
func (p *Parser) parseBlock() ast.Statement {
	braceTok := p.expect(token.LBRACE)
	block := &ast.Block{Token: braceTok}

	p.symbolTable.EnterScope()
	defer p.symbolTable.ExitScope()

	for !p.curTokenIs(token.RBRACE) && !p.curTokenIs(token.EOF) && p.fatal == nil {
		stmt := p.parseStatement()
		if stmt == nil {
			return nil
		}
		block.Statements = append(block.Statements, stmt)
	}
	p.expect(token.RBRACE)
	if p.fatal != nil {
		return nil
	}
	return block
}

func (p *Parser) parseVariableDeclaration() ast.Statement {
	typeTok := p.curToken
	typeName, _ := token.TypeName(p.curToken.Type)
	p.nextToken()
	nameTok := p.expect(token.IDENT)
	if p.fatal != nil {
		return nil
	}
	decl := p.finishVariableDeclaration(typeTok, typeName, nameTok)
	if decl == nil {
		return nil
	}
	return decl
}

// finishVariableDeclaration declares the name in the current frame and
// parses the optional initializer. The declared type is stamped on the
// node so the type checker can resolve it after this frame has closed.
func (p *Parser) finishVariableDeclaration(typeTok token.Token, typeName string, nameTok token.Token) *ast.VariableDeclaration {
	decl := &ast.VariableDeclaration{
		Token:        typeTok,
		Name:         nameTok.Lexeme,
		Type:         typeName,
		ResolvedType: typeName,
	}

	if err := p.symbolTable.Declare(nameTok.Lexeme, typeName, nameTok.Line); err != nil {
		p.fatal = err
		return nil
	}

	if p.curTokenIs(token.ASSIGN) {
		p.nextToken()
		decl.Initializer = p.parseExpression(LOWEST)
		if p.fatal != nil {
			return nil
		}
	}
	p.expect(token.SEMICOLON)
	if p.fatal != nil {
		return nil
	}
	return decl
}

func (p *Parser) parseAssignment() ast.Statement {
	nameTok := p.expect(token.IDENT)
	p.expect(token.ASSIGN)
	assign := p.newAssignment(nameTok)
	assign.Expression = p.parseExpression(LOWEST)
	p.expect(token.SEMICOLON)
	if p.fatal != nil {
		return nil
	}
	return assign
}

// newAssignment builds the assignment node with the target's declared type
// stamped from the live scope stack, like parseIdentifier does for reads.
// The target is not marked used and an undeclared target is not fatal:
// writing is not a use, and the type checker reports it.
func (p *Parser) newAssignment(nameTok token.Token) *ast.Assignment {
	assign := &ast.Assignment{Token: nameTok, VariableName: nameTok.Lexeme}
	if info, ok := p.symbolTable.Lookup(nameTok.Lexeme); ok {
		assign.ResolvedType = info.Type
	}
	return assign
}

func (p *Parser) parseIf() ast.Statement {
	ifTok := p.expect(token.IF)
	p.expect(token.LPAREN)
	stmt := &ast.If{Token: ifTok}
	stmt.Condition = p.parseExpression(LOWEST)
	p.expect(token.RPAREN)
	stmt.Then = p.parseStatement()
	if p.curTokenIs(token.ELSE) {
		p.nextToken()
		stmt.Else = p.parseStatement()
	}
	if p.fatal != nil {
		return nil
	}
	return stmt
}

func (p *Parser) parseWhile() ast.Statement {
	whileTok := p.expect(token.WHILE)
	p.expect(token.LPAREN)
	stmt := &ast.While{Token: whileTok}
	stmt.Condition = p.parseExpression(LOWEST)
	p.expect(token.RPAREN)
	stmt.Body = p.parseStatement()
	if p.fatal != nil {
		return nil
	}
	return stmt
}

func (p *Parser) parseDoWhile() ast.Statement {
	doTok := p.expect(token.DO)
	stmt := &ast.DoWhile{Token: doTok}
	stmt.Body = p.parseStatement()
	p.expect(token.WHILE)
	p.expect(token.LPAREN)
	stmt.Condition = p.parseExpression(LOWEST)
	p.expect(token.RPAREN)
	p.expect(token.SEMICOLON)
	if p.fatal != nil {
		return nil
	}
	return stmt
}

// parseFor opens a frame around the whole loop so the init declaration
// stays local to it; a braced body nests its own frame inside.
func (p *Parser) parseFor() ast.Statement {
	forTok := p.expect(token.FOR)
	p.expect(token.LPAREN)
	stmt := &ast.For{Token: forTok}

	p.symbolTable.EnterScope()
	defer p.symbolTable.ExitScope()

	if !p.curTokenIs(token.SEMICOLON) {
		if token.IsTypeKeyword(p.curToken.Type) {
			stmt.Init = p.parseVariableDeclaration()
		} else {
			stmt.Init = p.parseSimpleStatement()
			p.expect(token.SEMICOLON)
		}
	} else {
		p.nextToken()
	}

	if !p.curTokenIs(token.SEMICOLON) {
		stmt.Condition = p.parseExpression(LOWEST)
	}
	p.expect(token.SEMICOLON)

	if !p.curTokenIs(token.RPAREN) {
		stmt.Update = p.parseSimpleStatement()
	}
	p.expect(token.RPAREN)

	stmt.Body = p.parseStatement()
	if p.fatal != nil {
		return nil
	}
	return stmt
}

// parseSimpleStatement parses an assignment or expression without a
// trailing semicolon, as used in for-loop init and update clauses.
func (p *Parser) parseSimpleStatement() ast.Statement {
	if p.curTokenIs(token.IDENT) && p.peekTokenIs(token.ASSIGN) {
		nameTok := p.expect(token.IDENT)
		p.expect(token.ASSIGN)
		assign := p.newAssignment(nameTok)
		assign.Expression = p.parseExpression(LOWEST)
		if p.fatal != nil {
			return nil
		}
		return assign
	}

	exprTok := p.curToken
	expr := p.parseExpression(LOWEST)
	if p.fatal != nil {
		return nil
	}
	return &ast.ExpressionStatement{Token: exprTok, Expression: expr}
}

func (p *Parser) parseReturn() ast.Statement {
	retTok := p.expect(token.RETURN)
	stmt := &ast.Return{Token: retTok}
	if !p.curTokenIs(token.SEMICOLON) {
		stmt.Value = p.parseExpression(LOWEST)
	}
	p.expect(token.SEMICOLON)
	if p.fatal != nil {
		return nil
	}
	return stmt
}

func (p *Parser) parseExpressionStatement() ast.Statement {
	exprTok := p.curToken
	expr := p.parseExpression(LOWEST)
	if expr == nil {
		if p.fatal == nil {
			p.syntaxErrorf("unexpected token %q", p.curToken.Lexeme)
		}
		return nil
	}
	p.expect(token.SEMICOLON)
	if p.fatal != nil {
		return nil
	}
	return &ast.ExpressionStatement{Token: exprTok, Expression: expr}
}
