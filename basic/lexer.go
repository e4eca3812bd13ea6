package basic

import (
	"github.com/pattyshack/towhee/lexer"
)

// NewLexer assembles the Tiny BASIC lexical pipeline.  Module order is
// significant: string literals before symbols, keywords before variables.
// Whitespace has no module and is skipped by the pipeline itself.
func NewLexer() *lexer.Lexer[Token] {
	return lexer.NewBuilder[Token]().
		AddModules(
			StringModule{},
			KeywordModule{},
			NumberModule{},
			VariableModule{},
			SymbolModule{},
			NewlineModule{},
		).
		Build()
}
