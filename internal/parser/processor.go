package parser

import (
	"errors"

	"github.com/funvibe/minijava/internal/pipeline"
)

// ParserProcessor builds the AST and drives the symbol table as constructs
// are recognized. Its fatal errors (syntax errors and the symbol table's
// fail-fast errors) abort the pipeline.
type ParserProcessor struct{}

func (pp *ParserProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if len(ctx.TokenStream) == 0 {
		ctx.Fatal = errors.New("parser: token stream is empty")
		return ctx
	}

	p := New(ctx.TokenStream, ctx.SymbolTable)
	ctx.AstRoot = p.ParseProgram()
	if ctx.AstRoot != nil {
		ctx.AstRoot.File = ctx.FilePath
	}

	if err := p.Err(); err != nil {
		ctx.Fatal = err
	}
	return ctx
}
