package basic

import (
	"github.com/pattyshack/towhee/lexer"
)

// NewlineModule lexes line terminators.  Carriage returns are left
// unclaimed and skipped by the pipeline.
type NewlineModule struct{}

func (NewlineModule) Lex(stream string) lexer.Result[Token] {
	if stream[0] != '\n' {
		return lexer.Ignored[Token]()
	}

	return lexer.Success(
		Token{
			Kind: NewlineToken,
		},
		stream[1:])
}
