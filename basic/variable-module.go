package basic

import (
	"github.com/pattyshack/towhee/lexer"
)

// VariableModule lexes single-letter variables (A-Z, either case).
type VariableModule struct{}

func (VariableModule) Lex(stream string) lexer.Result[Token] {
	variable, ok := NewVariable(stream[0])
	if !ok {
		return lexer.Ignored[Token]()
	}

	return lexer.Success(
		Token{
			Kind:     VariableToken,
			Variable: variable,
		},
		stream[1:])
}
