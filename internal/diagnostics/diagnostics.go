package diagnostics

import (
	"fmt"

	"github.com/funvibe/minijava/internal/token"
)

type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
)

// Stable diagnostic codes. L = lexical, P = parse, A = analysis.
const (
	ErrL001  = "L001" // illegal token
	ErrP001  = "P001" // unexpected token
	ErrP002  = "P002" // expression too complex
	ErrA001  = "A001" // undeclared variable
	ErrA002  = "A002" // type mismatch
	ErrA003  = "A003" // condition not boolean
	ErrA004  = "A004" // operator operand type violation
	WarnA101 = "A101" // expression type unknown
	WarnA102 = "A102" // suspicious comparison
	WarnA103 = "A103" // node analysis failure
)

// Diagnostic is a single analysis message tied to a source position.
// Diagnostics are values: they are accumulated and reported, never used
// for control flow.
type Diagnostic struct {
	Severity Severity
	Code     string
	Line     int
	Column   int
	Message  string
}

func NewError(code string, tok token.Token, message string) *Diagnostic {
	return &Diagnostic{
		Severity: SeverityError,
		Code:     code,
		Line:     tok.Line,
		Column:   tok.Column,
		Message:  message,
	}
}

func NewWarning(code string, tok token.Token, message string) *Diagnostic {
	return &Diagnostic{
		Severity: SeverityWarning,
		Code:     code,
		Line:     tok.Line,
		Column:   tok.Column,
		Message:  message,
	}
}

func (d *Diagnostic) Error() string { return d.String() }

func (d *Diagnostic) String() string {
	if d.Line == 0 {
		return fmt.Sprintf("[%s] %s", d.Code, d.Message)
	}
	return fmt.Sprintf("[%s] Line %d: %s", d.Code, d.Line, d.Message)
}
