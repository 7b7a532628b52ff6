package analyzer

import (
	"fmt"

	"github.com/funvibe/minijava/internal/ast"
	"github.com/funvibe/minijava/internal/diagnostics"
	"github.com/funvibe/minijava/internal/typesystem"
)

// CheckAssignment validates "varName = expression" against the declared
// type of varName, resolved against the open frames. An unknown expression
// type downgrades to a warning and skips the compatibility check.
func (tc *TypeChecker) CheckAssignment(varName string, expression ast.Expression, line int) {
	var targetType string
	if info, ok := tc.symbolTable.Lookup(varName); ok {
		targetType = info.Type
	}
	tc.checkAssignment(varName, targetType, expression, line)
}

// checkAssignmentNode prefers the target type the parser stamped while the
// declaring frame was open, mirroring identifierType; the live lookup only
// covers frames still open after construction (in practice, globals).
func (tc *TypeChecker) checkAssignmentNode(n *ast.Assignment) {
	targetType := n.ResolvedType
	if targetType == "" {
		if info, ok := tc.symbolTable.Lookup(n.VariableName); ok {
			targetType = info.Type
		}
	}
	tc.checkAssignment(n.VariableName, targetType, n.Expression, n.Token.Line)
}

func (tc *TypeChecker) checkAssignment(varName, targetType string, expression ast.Expression, line int) {
	if targetType == "" {
		tc.addError(diagnostics.NewError(
			diagnostics.ErrA001,
			lineToken(line),
			fmt.Sprintf("Variable '%s' not declared", varName),
		))
		return
	}

	exprType := tc.ExpressionType(expression)
	if exprType == TypeUnknown {
		tc.addWarning(diagnostics.NewWarning(
			diagnostics.WarnA101,
			lineToken(line),
			fmt.Sprintf("Cannot determine type of expression in assignment to '%s'", varName),
		))
		return
	}

	if !IsAssignmentCompatible(exprType, targetType) {
		tc.addError(diagnostics.NewError(
			diagnostics.ErrA002,
			lineToken(line),
			fmt.Sprintf("Type mismatch: cannot assign %s to %s in variable '%s'", exprType, targetType, varName),
		))
	}
}

// CheckBinaryOperation validates the operands of one binary operator. The
// checks are per-operator-class and independent of the result-type
// inference done by ExpressionType. Arithmetic operators exempt String for
// all five operators, not just +: "a" - "b" passes this check unflagged.
// That permissiveness is intentional and load-bearing for output parity.
func (tc *TypeChecker) CheckBinaryOperation(operator string, left, right ast.Expression, line int) {
	leftType := tc.ExpressionType(left)
	rightType := tc.ExpressionType(right)

	if leftType == TypeUnknown || rightType == TypeUnknown {
		return
	}

	switch operator {
	case "<", ">", "<=", ">=":
		if !typesystem.IsNumeric(leftType) || !typesystem.IsNumeric(rightType) {
			tc.addError(diagnostics.NewError(
				diagnostics.ErrA004,
				lineToken(line),
				fmt.Sprintf("Relational operator '%s' requires numeric operands, got %s and %s", operator, leftType, rightType),
			))
		}
	case "==", "!=":
		if leftType != rightType &&
			!IsAssignmentCompatible(leftType, rightType) &&
			!IsAssignmentCompatible(rightType, leftType) {
			tc.addWarning(diagnostics.NewWarning(
				diagnostics.WarnA102,
				lineToken(line),
				fmt.Sprintf("Comparing incompatible types: %s and %s", leftType, rightType),
			))
		}
	case "&&", "||":
		if leftType != "boolean" {
			tc.addError(diagnostics.NewError(
				diagnostics.ErrA004,
				lineToken(line),
				fmt.Sprintf("Logical operator '%s' requires boolean operands, left operand is %s", operator, leftType),
			))
		}
		if rightType != "boolean" {
			tc.addError(diagnostics.NewError(
				diagnostics.ErrA004,
				lineToken(line),
				fmt.Sprintf("Logical operator '%s' requires boolean operands, right operand is %s", operator, rightType),
			))
		}
	case "+", "-", "*", "/", "%":
		if !typesystem.IsNumeric(leftType) && leftType != "String" {
			tc.addError(diagnostics.NewError(
				diagnostics.ErrA004,
				lineToken(line),
				fmt.Sprintf("Arithmetic operator '%s' requires numeric operands, left operand is %s", operator, leftType),
			))
		}
		if !typesystem.IsNumeric(rightType) && rightType != "String" {
			tc.addError(diagnostics.NewError(
				diagnostics.ErrA004,
				lineToken(line),
				fmt.Sprintf("Arithmetic operator '%s' requires numeric operands, right operand is %s", operator, rightType),
			))
		}
	}
}

// CheckCondition validates the condition of an if/while/do-while/for
// statement: a warning when the type is unknown, an error when it resolves
// to anything but boolean.
func (tc *TypeChecker) CheckCondition(condition ast.Expression, statementType string, line int) {
	condType := tc.ExpressionType(condition)

	if condType == TypeUnknown {
		tc.addWarning(diagnostics.NewWarning(
			diagnostics.WarnA101,
			lineToken(line),
			fmt.Sprintf("Cannot determine type of %s condition", statementType),
		))
		return
	}

	if condType != "boolean" {
		tc.addError(diagnostics.NewError(
			diagnostics.ErrA003,
			lineToken(line),
			fmt.Sprintf("%s condition must be boolean, got %s", statementType, condType),
		))
	}
}
