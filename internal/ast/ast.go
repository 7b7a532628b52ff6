package ast

import (
	"github.com/funvibe/minijava/internal/token"
)

// Node is the base interface for all AST nodes.
type Node interface {
	TokenLiteral() string
	GetToken() token.Token
}

// Statement is a Node that represents a statement.
type Statement interface {
	Node
	statementNode()
}

// Expression is a Node that represents an expression.
type Expression interface {
	Node
	expressionNode()
}

// Program is the root node: one compilation unit holding class declarations.
type Program struct {
	File    string // Source file path
	Classes []*Class
}

func (p *Program) GetToken() token.Token {
	if len(p.Classes) > 0 {
		return p.Classes[0].GetToken()
	}
	return token.Token{}
}

func (p *Program) TokenLiteral() string {
	if len(p.Classes) > 0 {
		return p.Classes[0].TokenLiteral()
	}
	return ""
}

// Class represents a class declaration and its members (methods and fields).
type Class struct {
	Token   token.Token // The 'class' token
	Name    string
	Members []Node
}

func (c *Class) TokenLiteral() string { return c.Token.Lexeme }
func (c *Class) GetToken() token.Token {
	if c == nil {
		return token.Token{}
	}
	return c.Token
}

// Parameter is a single formal parameter of a method.
type Parameter struct {
	Token token.Token // The type keyword token
	Name  string
	Type  string
}

// Method represents a method declaration.
type Method struct {
	Token      token.Token // The return type or 'void' token
	Name       string
	ReturnType string // "void" when no value is returned
	Params     []*Parameter
	Statements []Statement
}

func (m *Method) TokenLiteral() string { return m.Token.Lexeme }
func (m *Method) GetToken() token.Token {
	if m == nil {
		return token.Token{}
	}
	return m.Token
}

// Block represents a list of statements within curly braces.
type Block struct {
	Token      token.Token // the '{' token
	Statements []Statement
}

func (b *Block) statementNode()       {}
func (b *Block) TokenLiteral() string { return b.Token.Lexeme }
func (b *Block) GetToken() token.Token {
	if b == nil {
		return token.Token{}
	}
	return b.Token
}

// VariableDeclaration represents "int x;" or "int x = expr;".
// ResolvedType is stamped by the parser from the live scope stack so the
// type checker does not depend on frames that close before it runs.
type VariableDeclaration struct {
	Token        token.Token // The type keyword token
	Name         string
	Type         string
	Initializer  Expression // may be nil
	ResolvedType string
}

func (vd *VariableDeclaration) statementNode()       {}
func (vd *VariableDeclaration) TokenLiteral() string { return vd.Token.Lexeme }
func (vd *VariableDeclaration) GetToken() token.Token {
	if vd == nil {
		return token.Token{}
	}
	return vd.Token
}

// Assignment represents "x = expr;". ResolvedType carries the target's
// declared type, stamped by the parser from the live scope stack (empty
// when the target is undeclared).
type Assignment struct {
	Token        token.Token // The identifier token
	VariableName string
	Expression   Expression
	ResolvedType string
}

func (a *Assignment) statementNode()       {}
func (a *Assignment) TokenLiteral() string { return a.Token.Lexeme }
func (a *Assignment) GetToken() token.Token {
	if a == nil {
		return token.Token{}
	}
	return a.Token
}

// If represents a conditional with an optional else branch.
type If struct {
	Token     token.Token // The 'if' token
	Condition Expression
	Then      Statement
	Else      Statement // may be nil
}

func (i *If) statementNode()       {}
func (i *If) TokenLiteral() string { return i.Token.Lexeme }
func (i *If) GetToken() token.Token {
	if i == nil {
		return token.Token{}
	}
	return i.Token
}

// While represents a pre-test loop.
type While struct {
	Token     token.Token // The 'while' token
	Condition Expression
	Body      Statement
}

func (w *While) statementNode()       {}
func (w *While) TokenLiteral() string { return w.Token.Lexeme }
func (w *While) GetToken() token.Token {
	if w == nil {
		return token.Token{}
	}
	return w.Token
}

// DoWhile represents a post-test loop.
type DoWhile struct {
	Token     token.Token // The 'do' token
	Condition Expression
	Body      Statement
}

func (dw *DoWhile) statementNode()       {}
func (dw *DoWhile) TokenLiteral() string { return dw.Token.Lexeme }
func (dw *DoWhile) GetToken() token.Token {
	if dw == nil {
		return token.Token{}
	}
	return dw.Token
}

// For represents a C-style for loop. Init, Condition and Update are all
// optional.
type For struct {
	Token     token.Token // The 'for' token
	Init      Statement
	Condition Expression
	Update    Statement
	Body      Statement
}

func (f *For) statementNode()       {}
func (f *For) TokenLiteral() string { return f.Token.Lexeme }
func (f *For) GetToken() token.Token {
	if f == nil {
		return token.Token{}
	}
	return f.Token
}

// Return represents "return;" or "return expr;".
type Return struct {
	Token token.Token // The 'return' token
	Value Expression  // may be nil
}

func (r *Return) statementNode()       {}
func (r *Return) TokenLiteral() string { return r.Token.Lexeme }
func (r *Return) GetToken() token.Token {
	if r == nil {
		return token.Token{}
	}
	return r.Token
}

// ExpressionStatement is a statement that consists of a single expression,
// e.g. a bare method call.
type ExpressionStatement struct {
	Token      token.Token // the first token of the expression
	Expression Expression
}

func (es *ExpressionStatement) statementNode()        {}
func (es *ExpressionStatement) TokenLiteral() string  { return es.Token.Lexeme }
func (es *ExpressionStatement) GetToken() token.Token { return es.Token }
