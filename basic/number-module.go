package basic

import (
	"strconv"

	"github.com/pattyshack/towhee/lexer"
)

// NumberModule lexes unsigned decimal numbers.  Signs are separate symbol
// tokens; the expression grammar attaches them.
type NumberModule struct{}

func (NumberModule) Lex(stream string) lexer.Result[Token] {
	idx := 0
	for idx < len(stream) && '0' <= stream[idx] && stream[idx] <= '9' {
		idx++
	}
	if idx == 0 {
		return lexer.Ignored[Token]()
	}

	number, err := strconv.Atoi(stream[:idx])
	if err != nil {
		// Out-of-range digit runs fall through unclaimed.
		return lexer.Ignored[Token]()
	}

	return lexer.Success(
		Token{
			Kind:   NumberToken,
			Number: number,
		},
		stream[idx:])
}
