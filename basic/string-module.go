package basic

import (
	"strings"

	"github.com/pattyshack/towhee/lexer"
)

// StringModule lexes double-quoted string literals.  It must run before
// SymbolModule so quoted content is not picked apart character by
// character.
type StringModule struct{}

func (StringModule) Lex(stream string) lexer.Result[Token] {
	if stream[0] != '"' {
		return lexer.Ignored[Token]()
	}

	end := strings.IndexByte(stream[1:], '"')
	if end < 0 {
		// The module claims anything starting with a quote; a missing
		// closing quote is malformed input, not someone else's token.
		return lexer.Failed[Token]("unterminated string literal")
	}

	return lexer.Success(
		Token{
			Kind: StringToken,
			Text: stream[1 : 1+end],
		},
		stream[end+2:])
}
