package lexer

import (
	"fmt"

	"github.com/funvibe/minijava/internal/diagnostics"
	"github.com/funvibe/minijava/internal/pipeline"
	"github.com/funvibe/minijava/internal/token"
)

// LexerProcessor tokenizes the source and feeds every recognized token to
// the symbol table's token log, in recognition order.
type LexerProcessor struct{}

func (lp *LexerProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	l := New(ctx.SourceCode)

	for {
		tok := l.NextToken()
		if tok.Type == token.ILLEGAL {
			ctx.Fatal = diagnostics.NewError(diagnostics.ErrL001, tok,
				fmt.Sprintf("illegal token %q", tok.Lexeme))
			return ctx
		}
		if tok.Type == token.EOF {
			ctx.TokenStream = append(ctx.TokenStream, tok)
			break
		}
		ctx.TokenStream = append(ctx.TokenStream, tok)
		if ctx.SymbolTable != nil {
			ctx.SymbolTable.AddToken(tok)
		}
	}

	return ctx
}
