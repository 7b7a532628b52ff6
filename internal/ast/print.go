package ast

import (
	"fmt"
	"strings"
)

// Dump renders the tree with box-drawing branches, one node per line.
func Dump(node Node) string {
	if node == nil {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(label(node))
	sb.WriteByte('\n')
	children := childNodes(node)
	for i, child := range children {
		writeNode(&sb, child, "", i == len(children)-1)
	}
	return sb.String()
}

func writeNode(sb *strings.Builder, node Node, prefix string, isLast bool) {
	if node == nil {
		return
	}

	branch := "├── "
	childPrefix := prefix + "│   "
	if isLast {
		branch = "└── "
		childPrefix = prefix + "    "
	}

	fmt.Fprintf(sb, "%s%s%s\n", prefix, branch, label(node))

	children := childNodes(node)
	for i, child := range children {
		writeNode(sb, child, childPrefix, i == len(children)-1)
	}
}

func label(node Node) string {
	switch n := node.(type) {
	case *Program:
		return "Program"
	case *Class:
		return fmt.Sprintf("Class %s", n.Name)
	case *Method:
		params := make([]string, len(n.Params))
		for i, p := range n.Params {
			params[i] = p.Type + " " + p.Name
		}
		return fmt.Sprintf("Method %s %s(%s)", n.ReturnType, n.Name, strings.Join(params, ", "))
	case *Block:
		return "Block"
	case *VariableDeclaration:
		return fmt.Sprintf("VarDecl %s %s (line %d)", n.Type, n.Name, n.Token.Line)
	case *Assignment:
		return fmt.Sprintf("Assign %s (line %d)", n.VariableName, n.Token.Line)
	case *If:
		return "If"
	case *While:
		return "While"
	case *DoWhile:
		return "DoWhile"
	case *For:
		return "For"
	case *Return:
		return "Return"
	case *ExpressionStatement:
		return "ExprStmt"
	case *BinaryOp:
		return fmt.Sprintf("BinaryOp %q", n.Operator)
	case *UnaryOp:
		return fmt.Sprintf("UnaryOp %q", n.Operator)
	case *Literal:
		return fmt.Sprintf("Literal %s %q", n.Type, n.Value)
	case *Identifier:
		return fmt.Sprintf("Identifier %s", n.Name)
	case *MethodCall:
		return fmt.Sprintf("MethodCall %s", n.Name)
	case *MemberAccess:
		return fmt.Sprintf("MemberAccess .%s", n.Member)
	case *ObjectCreation:
		return fmt.Sprintf("New %s", n.ClassName)
	default:
		return fmt.Sprintf("%T", node)
	}
}

func childNodes(node Node) []Node {
	var children []Node
	add := func(n Node) {
		if n == nil {
			return
		}
		children = append(children, n)
	}

	switch n := node.(type) {
	case *Program:
		for _, c := range n.Classes {
			add(c)
		}
	case *Class:
		for _, m := range n.Members {
			add(m)
		}
	case *Method:
		for _, s := range n.Statements {
			add(s)
		}
	case *Block:
		for _, s := range n.Statements {
			add(s)
		}
	case *VariableDeclaration:
		add(n.Initializer)
	case *Assignment:
		add(n.Expression)
	case *If:
		add(n.Condition)
		add(n.Then)
		add(n.Else)
	case *While:
		add(n.Condition)
		add(n.Body)
	case *DoWhile:
		add(n.Body)
		add(n.Condition)
	case *For:
		add(n.Init)
		add(n.Condition)
		add(n.Update)
		add(n.Body)
	case *Return:
		add(n.Value)
	case *ExpressionStatement:
		add(n.Expression)
	case *BinaryOp:
		add(n.Left)
		add(n.Right)
	case *UnaryOp:
		add(n.Operand)
	case *MethodCall:
		add(n.Target)
		for _, a := range n.Arguments {
			add(a)
		}
	case *MemberAccess:
		add(n.Target)
	case *ObjectCreation:
		for _, a := range n.Arguments {
			add(a)
		}
	}
	return children
}
