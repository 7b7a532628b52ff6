package parser

import (
	"fmt"

	"github.com/funvibe/minijava/internal/ast"
	"github.com/funvibe/minijava/internal/diagnostics"
	"github.com/funvibe/minijava/internal/symbols"
	"github.com/funvibe/minijava/internal/token"
)

// MaxRecursionDepth bounds expression nesting before the parser gives up.
const MaxRecursionDepth = 500

// Operator precedence levels, lowest first.
const (
	LOWEST = iota
	LOGIC_OR
	LOGIC_AND
	EQUALS
	LESSGREATER
	SUM
	PRODUCT
	PREFIX
	POSTFIX
)

var precedences = map[token.Type]int{
	token.OR:       LOGIC_OR,
	token.AND:      LOGIC_AND,
	token.EQ:       EQUALS,
	token.NOT_EQ:   EQUALS,
	token.LT:       LESSGREATER,
	token.GT:       LESSGREATER,
	token.LT_EQ:    LESSGREATER,
	token.GT_EQ:    LESSGREATER,
	token.PLUS:     SUM,
	token.MINUS:    SUM,
	token.ASTERISK: PRODUCT,
	token.SLASH:    PRODUCT,
	token.PERCENT:  PRODUCT,
}

type (
	prefixParseFn func() ast.Expression
	infixParseFn  func(ast.Expression) ast.Expression
)

// Parser builds the AST bottom-up and mutates the symbol table as
// constructs are recognized: scope boundaries, declarations and identifier
// references land in the table in source order, while the matching frames
// are still open. Syntax errors and the symbol table's two fatal errors
// abort the build immediately.
type Parser struct {
	tokens   []token.Token
	pos      int
	curToken token.Token

	symbolTable *symbols.SymbolTable

	prefixParseFns map[token.Type]prefixParseFn
	infixParseFns  map[token.Type]infixParseFn

	depth int
	fatal error
}

func New(tokens []token.Token, symbolTable *symbols.SymbolTable) *Parser {
	p := &Parser{
		tokens:      tokens,
		symbolTable: symbolTable,
	}

	p.prefixParseFns = map[token.Type]prefixParseFn{
		token.IDENT:      p.parseIdentifier,
		token.INT_LIT:    p.parseLiteral,
		token.LONG_LIT:   p.parseLiteral,
		token.FLOAT_LIT:  p.parseLiteral,
		token.DOUBLE_LIT: p.parseLiteral,
		token.CHAR_LIT:   p.parseLiteral,
		token.STRING_LIT: p.parseLiteral,
		token.TRUE:       p.parseLiteral,
		token.FALSE:      p.parseLiteral,
		token.BANG:       p.parsePrefixExpression,
		token.MINUS:      p.parsePrefixExpression,
		token.INCR:       p.parsePrefixExpression,
		token.DECR:       p.parsePrefixExpression,
		token.LPAREN:     p.parseGroupedExpression,
		token.NEW:        p.parseObjectCreation,
	}

	p.infixParseFns = map[token.Type]infixParseFn{}
	for tt := range precedences {
		p.infixParseFns[tt] = p.parseBinaryOp
	}

	if len(p.tokens) > 0 {
		p.curToken = p.tokens[0]
	} else {
		p.curToken = token.Token{Type: token.EOF}
	}
	return p
}

func (p *Parser) nextToken() {
	if p.pos+1 < len(p.tokens) {
		p.pos++
		p.curToken = p.tokens[p.pos]
		return
	}
	p.curToken = token.Token{Type: token.EOF, Line: p.curToken.Line, Column: p.curToken.Column}
}

func (p *Parser) peekToken() token.Token {
	if p.pos+1 < len(p.tokens) {
		return p.tokens[p.pos+1]
	}
	return token.Token{Type: token.EOF}
}

func (p *Parser) curTokenIs(tt token.Type) bool  { return p.curToken.Type == tt }
func (p *Parser) peekTokenIs(tt token.Type) bool { return p.peekToken().Type == tt }

func (p *Parser) curPrecedence() int {
	if prec, ok := precedences[p.curToken.Type]; ok {
		return prec
	}
	return LOWEST
}

// expect consumes the current token if it matches, otherwise records a
// fatal syntax error.
func (p *Parser) expect(tt token.Type) token.Token {
	tok := p.curToken
	if tok.Type != tt {
		p.syntaxErrorf("expected %q, got %q", string(tt), tok.Lexeme)
		return tok
	}
	p.nextToken()
	return tok
}

func (p *Parser) syntaxErrorf(format string, args ...interface{}) {
	p.fatalf(diagnostics.ErrP001, "syntax error: "+format, args...)
}

// fatalf records the first fatal diagnostic and ignores the rest.
func (p *Parser) fatalf(code string, format string, args ...interface{}) {
	if p.fatal != nil {
		return
	}
	p.fatal = diagnostics.NewError(code, p.curToken, fmt.Sprintf(format, args...))
}

// Err returns the fatal error that aborted the build, if any.
func (p *Parser) Err() error {
	return p.fatal
}
