package basic

import (
	"github.com/pattyshack/towhee/lexer"
)

// KeywordModule lexes the closed keyword set.  It must run before
// VariableModule, which would otherwise consume the keyword's first letter
// as a variable.
type KeywordModule struct{}

func (KeywordModule) Lex(stream string) lexer.Result[Token] {
	word := leadingLetters(stream)
	if word == "" {
		return lexer.Ignored[Token]()
	}

	keyword, ok := ParseKeyword(word)
	if !ok {
		return lexer.Ignored[Token]()
	}

	return lexer.Success(
		Token{
			Kind:    KeywordToken,
			Keyword: keyword,
		},
		stream[len(word):])
}

// leadingLetters returns the maximal run of ASCII letters at the start of
// the stream.
func leadingLetters(stream string) string {
	idx := 0
	for idx < len(stream) {
		char := stream[idx]
		if ('a' <= char && char <= 'z') || ('A' <= char && char <= 'Z') {
			idx++
		} else {
			break
		}
	}
	return stream[:idx]
}
