package analyzer

import (
	"github.com/funvibe/minijava/internal/ast"
	"github.com/funvibe/minijava/internal/typesystem"
)

// Re-exported so callers checking analyzer results do not need to import
// typesystem just for the sentinel.
const TypeUnknown = typesystem.TypeUnknown

// IsAssignmentCompatible reports whether fromType may be assigned to
// toType. See typesystem for the matrix.
func IsAssignmentCompatible(fromType, toType string) bool {
	return typesystem.IsAssignmentCompatible(fromType, toType)
}

// ExpressionType infers the type of an expression node. Method calls and
// member access resolve to unknown: no signature or member information is
// tracked.
func (tc *TypeChecker) ExpressionType(node ast.Expression) string {
	switch n := node.(type) {
	case nil:
		return TypeUnknown
	case *ast.Literal:
		return n.Type
	case *ast.Identifier:
		return tc.identifierType(n)
	case *ast.BinaryOp:
		return tc.binaryOpType(n)
	case *ast.UnaryOp:
		if n.Operator == "!" {
			return "boolean"
		}
		return tc.ExpressionType(n.Operand)
	case *ast.MethodCall:
		return TypeUnknown
	case *ast.MemberAccess:
		return TypeUnknown
	case *ast.ObjectCreation:
		return TypeUnknown
	}
	return TypeUnknown
}

// identifierType prefers the type the parser stamped on the node while the
// declaring scope was still open; the live lookup only resolves names in
// frames that remain open after construction (in practice, globals).
func (tc *TypeChecker) identifierType(n *ast.Identifier) string {
	if n.ResolvedType != "" {
		return n.ResolvedType
	}
	if info, ok := tc.symbolTable.Lookup(n.Name); ok {
		return info.Type
	}
	return TypeUnknown
}

func (tc *TypeChecker) binaryOpType(n *ast.BinaryOp) string {
	switch n.Operator {
	case "==", "!=", "<", ">", "<=", ">=", "&&", "||":
		return "boolean"
	}

	leftType := tc.ExpressionType(n.Left)
	rightType := tc.ExpressionType(n.Right)
	return typesystem.WiderType(leftType, rightType)
}
