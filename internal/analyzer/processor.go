package analyzer

import (
	"errors"

	"github.com/funvibe/minijava/internal/pipeline"
)

// AnalyzerProcessor runs the type checker over the completed AST and moves
// its accumulated diagnostics into the pipeline context.
type AnalyzerProcessor struct{}

func (ap *AnalyzerProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.AstRoot == nil {
		ctx.Fatal = errors.New("analyzer: AST root is nil")
		return ctx
	}

	tc := New(ctx.SymbolTable)
	tc.Analyze(ctx.AstRoot)

	ctx.Errors = append(ctx.Errors, tc.Errors()...)
	ctx.Warnings = append(ctx.Warnings, tc.Warnings()...)
	return ctx
}
