package pipeline

import (
	"github.com/funvibe/minijava/internal/ast"
	"github.com/funvibe/minijava/internal/diagnostics"
	"github.com/funvibe/minijava/internal/symbols"
	"github.com/funvibe/minijava/internal/token"
)

// Processor is one pipeline stage.
type Processor interface {
	Process(ctx *PipelineContext) *PipelineContext
}

// PipelineContext carries the state of one compilation unit through the
// stages: source in, token stream, symbol table, AST and diagnostics out.
type PipelineContext struct {
	FilePath   string
	SourceCode string

	TokenStream []token.Token
	SymbolTable *symbols.SymbolTable
	AstRoot     *ast.Program

	// Fatal holds the unrecoverable failure that aborted the run: a
	// lexical error, a syntax error, or one of the symbol table's
	// fail-fast errors raised during construction.
	Fatal error

	// Errors and Warnings accumulate the type checker's non-fatal
	// diagnostics.
	Errors   []*diagnostics.Diagnostic
	Warnings []*diagnostics.Diagnostic
}

// NewContext prepares a context with an empty symbol table (global frame
// only).
func NewContext(filePath, sourceCode string) *PipelineContext {
	return &PipelineContext{
		FilePath:    filePath,
		SourceCode:  sourceCode,
		SymbolTable: symbols.NewSymbolTable(),
	}
}
