package analyzer

import (
	"fmt"

	"github.com/funvibe/minijava/internal/ast"
	"github.com/funvibe/minijava/internal/diagnostics"
	"github.com/funvibe/minijava/internal/symbols"
	"github.com/funvibe/minijava/internal/token"
)

// TypeChecker walks a completed AST and validates declarations,
// assignments, conditions and operators against the type-compatibility
// matrix. Diagnostics are accumulated, never raised: the walk is
// best-effort and continues past every violation.
type TypeChecker struct {
	symbolTable *symbols.SymbolTable
	errors      []*diagnostics.Diagnostic
	warnings    []*diagnostics.Diagnostic
}

// New creates a TypeChecker reading the given (already populated) symbol
// table.
func New(symbolTable *symbols.SymbolTable) *TypeChecker {
	return &TypeChecker{symbolTable: symbolTable}
}

// Analyze runs the full pre-order walk over the tree.
func (tc *TypeChecker) Analyze(root ast.Node) {
	tc.analyzeNode(root)
}

func (tc *TypeChecker) Errors() []*diagnostics.Diagnostic { return tc.errors }

func (tc *TypeChecker) Warnings() []*diagnostics.Diagnostic { return tc.warnings }

func (tc *TypeChecker) HasErrors() bool { return len(tc.errors) > 0 }

func (tc *TypeChecker) addError(d *diagnostics.Diagnostic) {
	tc.errors = append(tc.errors, d)
}

func (tc *TypeChecker) addWarning(d *diagnostics.Diagnostic) {
	tc.warnings = append(tc.warnings, d)
}

func lineToken(line int) token.Token {
	return token.Token{Line: line}
}

// analyzeNode dispatches on the node variant. A panic while inspecting a
// single node is downgraded to a warning so one malformed subtree never
// aborts the whole pass.
func (tc *TypeChecker) analyzeNode(node ast.Node) {
	if node == nil {
		return
	}

	defer func() {
		if r := recover(); r != nil {
			tc.addWarning(diagnostics.NewWarning(
				diagnostics.WarnA103,
				node.GetToken(),
				fmt.Sprintf("Error analyzing node: %v", r),
			))
		}
	}()

	switch n := node.(type) {
	case *ast.Program:
		for _, class := range n.Classes {
			tc.analyzeNode(class)
		}
	case *ast.Class:
		for _, member := range n.Members {
			tc.analyzeNode(member)
		}
	case *ast.Method:
		for _, stmt := range n.Statements {
			tc.analyzeNode(stmt)
		}
	case *ast.Block:
		for _, stmt := range n.Statements {
			tc.analyzeNode(stmt)
		}
	case *ast.VariableDeclaration:
		tc.analyzeVariableDeclaration(n)
	case *ast.Assignment:
		tc.checkAssignmentNode(n)
		tc.analyzeNode(n.Expression)
	case *ast.If:
		tc.CheckCondition(n.Condition, "if", n.Token.Line)
		tc.analyzeNode(n.Condition)
		tc.analyzeNode(n.Then)
		if n.Else != nil {
			tc.analyzeNode(n.Else)
		}
	case *ast.While:
		tc.CheckCondition(n.Condition, "while", n.Token.Line)
		tc.analyzeNode(n.Condition)
		tc.analyzeNode(n.Body)
	case *ast.DoWhile:
		tc.CheckCondition(n.Condition, "do-while", n.Token.Line)
		tc.analyzeNode(n.Condition)
		tc.analyzeNode(n.Body)
	case *ast.For:
		tc.analyzeNode(n.Init)
		if n.Condition != nil {
			tc.CheckCondition(n.Condition, "for", n.Token.Line)
			tc.analyzeNode(n.Condition)
		}
		tc.analyzeNode(n.Update)
		tc.analyzeNode(n.Body)
	case *ast.Return:
		tc.analyzeNode(n.Value)
	case *ast.ExpressionStatement:
		tc.analyzeNode(n.Expression)
	case *ast.BinaryOp:
		tc.CheckBinaryOperation(n.Operator, n.Left, n.Right, n.Token.Line)
		tc.analyzeNode(n.Left)
		tc.analyzeNode(n.Right)
	case *ast.UnaryOp:
		tc.analyzeNode(n.Operand)
	case *ast.MethodCall:
		if n.Target != nil {
			tc.analyzeNode(n.Target)
		}
		for _, arg := range n.Arguments {
			tc.analyzeNode(arg)
		}
	case *ast.MemberAccess:
		tc.analyzeNode(n.Target)
	case *ast.ObjectCreation:
		for _, arg := range n.Arguments {
			tc.analyzeNode(arg)
		}
	}
}

func (tc *TypeChecker) analyzeVariableDeclaration(n *ast.VariableDeclaration) {
	if n.Initializer == nil {
		return
	}
	initType := tc.ExpressionType(n.Initializer)
	if initType != TypeUnknown && !IsAssignmentCompatible(initType, n.Type) {
		tc.addError(diagnostics.NewError(
			diagnostics.ErrA002,
			n.GetToken(),
			fmt.Sprintf("Type mismatch in initialization of '%s': cannot assign %s to %s", n.Name, initType, n.Type),
		))
	}
	tc.analyzeNode(n.Initializer)
}
