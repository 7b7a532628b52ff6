package ast

import (
	"github.com/funvibe/minijava/internal/token"
)

// BinaryOp represents an infix expression, e.g. a + b.
type BinaryOp struct {
	Token    token.Token // The operator token
	Operator string
	Left     Expression
	Right    Expression
}

func (bo *BinaryOp) expressionNode()      {}
func (bo *BinaryOp) TokenLiteral() string { return bo.Token.Lexeme }
func (bo *BinaryOp) GetToken() token.Token {
	if bo == nil {
		return token.Token{}
	}
	return bo.Token
}

// UnaryOp represents a prefix or postfix operator applied to one operand,
// e.g. !flag, -x, i++.
type UnaryOp struct {
	Token    token.Token // The operator token
	Operator string
	Operand  Expression
}

func (uo *UnaryOp) expressionNode()      {}
func (uo *UnaryOp) TokenLiteral() string { return uo.Token.Lexeme }
func (uo *UnaryOp) GetToken() token.Token {
	if uo == nil {
		return token.Token{}
	}
	return uo.Token
}

// Literal represents a literal value with its source-level type
// ("int", "double", "String", ...).
type Literal struct {
	Token token.Token
	Type  string
	Value string
}

func (l *Literal) expressionNode()      {}
func (l *Literal) TokenLiteral() string { return l.Token.Lexeme }
func (l *Literal) GetToken() token.Token {
	if l == nil {
		return token.Token{}
	}
	return l.Token
}

// Identifier represents a variable reference. ResolvedType is stamped by
// the parser from the live scope stack (empty when unresolved).
type Identifier struct {
	Token        token.Token
	Name         string
	ResolvedType string
}

func (id *Identifier) expressionNode()      {}
func (id *Identifier) TokenLiteral() string { return id.Token.Lexeme }
func (id *Identifier) GetToken() token.Token {
	if id == nil {
		return token.Token{}
	}
	return id.Token
}

// MethodCall represents a call expression, e.g. foo(a, b) or
// System.out.println(x). Target is nil for unqualified calls.
type MethodCall struct {
	Token     token.Token // The '(' token
	Target    Expression  // may be nil
	Name      string
	Arguments []Expression
}

func (mc *MethodCall) expressionNode()      {}
func (mc *MethodCall) TokenLiteral() string { return mc.Token.Lexeme }
func (mc *MethodCall) GetToken() token.Token {
	if mc == nil {
		return token.Token{}
	}
	return mc.Token
}

// ObjectCreation represents "new ClassName(args)". No class information is
// tracked, so the created value resolves to unknown like a method call.
type ObjectCreation struct {
	Token     token.Token // The 'new' token
	ClassName string
	Arguments []Expression
}

func (oc *ObjectCreation) expressionNode()      {}
func (oc *ObjectCreation) TokenLiteral() string { return oc.Token.Lexeme }
func (oc *ObjectCreation) GetToken() token.Token {
	if oc == nil {
		return token.Token{}
	}
	return oc.Token
}

// MemberAccess represents dot access, e.g. obj.field.
type MemberAccess struct {
	Token  token.Token // The '.' token
	Target Expression
	Member string
}

func (ma *MemberAccess) expressionNode()      {}
func (ma *MemberAccess) TokenLiteral() string { return ma.Token.Lexeme }
func (ma *MemberAccess) GetToken() token.Token {
	if ma == nil {
		return token.Token{}
	}
	return ma.Token
}
