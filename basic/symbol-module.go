package basic

import (
	"github.com/pattyshack/towhee/lexer"
)

// SymbolModule lexes the single-character operator and separator symbols.
type SymbolModule struct{}

func (SymbolModule) Lex(stream string) lexer.Result[Token] {
	symbol, ok := ParseSymbol(stream[0])
	if !ok {
		return lexer.Ignored[Token]()
	}

	return lexer.Success(
		Token{
			Kind:   SymbolToken,
			Symbol: symbol,
		},
		stream[1:])
}
