// Package basic defines the Tiny BASIC language layer: the token model,
// the recognizer modules fed into the lexical pipeline, the relational
// operator grammar fed into the shift-reduce engine, and the program tree
// built from the resulting token stream.
package basic

import (
	"fmt"
	"strings"

	"github.com/pattyshack/towhee/grammar"
)

type TokenKind int

const (
	KeywordToken = TokenKind(iota + 1)
	NumberToken
	StringToken
	VariableToken
	SymbolToken
	NewlineToken
)

func (kind TokenKind) String() string {
	switch kind {
	case KeywordToken:
		return "keyword"
	case NumberToken:
		return "number"
	case StringToken:
		return "string"
	case VariableToken:
		return "variable"
	case SymbolToken:
		return "symbol"
	case NewlineToken:
		return "newline"
	}
	return fmt.Sprintf("TokenKind(%d)", int(kind))
}

// Token is a single lexed Tiny BASIC token.  Kind selects which of the
// payload fields is meaningful.
type Token struct {
	Kind TokenKind

	Keyword  Keyword  // KeywordToken
	Number   int      // NumberToken
	Text     string   // StringToken, without the quotes
	Variable Variable // VariableToken
	Symbol   Symbol   // SymbolToken
}

func (token Token) String() string {
	switch token.Kind {
	case KeywordToken:
		return fmt.Sprintf("keyword %s", token.Keyword)
	case NumberToken:
		return fmt.Sprintf("number %d", token.Number)
	case StringToken:
		return fmt.Sprintf("string %q", token.Text)
	case VariableToken:
		return fmt.Sprintf("variable %s", token.Variable)
	case SymbolToken:
		return fmt.Sprintf("symbol %s", token.Symbol)
	case NewlineToken:
		return "newline"
	}
	return fmt.Sprintf("Token(%d)", int(token.Kind))
}

type Keyword int

const (
	KeywordPrint = Keyword(iota + 1)
	KeywordIf
	KeywordThen
	KeywordGoto
	KeywordInput
	KeywordLet
	KeywordGosub
	KeywordReturn
	KeywordClear
	KeywordList
	KeywordRun
	KeywordEnd
)

var keywords = map[string]Keyword{
	"print":  KeywordPrint,
	"if":     KeywordIf,
	"then":   KeywordThen,
	"goto":   KeywordGoto,
	"input":  KeywordInput,
	"let":    KeywordLet,
	"gosub":  KeywordGosub,
	"return": KeywordReturn,
	"clear":  KeywordClear,
	"list":   KeywordList,
	"run":    KeywordRun,
	"end":    KeywordEnd,
}

var keywordNames = map[Keyword]string{
	KeywordPrint:  "PRINT",
	KeywordIf:     "IF",
	KeywordThen:   "THEN",
	KeywordGoto:   "GOTO",
	KeywordInput:  "INPUT",
	KeywordLet:    "LET",
	KeywordGosub:  "GOSUB",
	KeywordReturn: "RETURN",
	KeywordClear:  "CLEAR",
	KeywordList:   "LIST",
	KeywordRun:    "RUN",
	KeywordEnd:    "END",
}

// ParseKeyword is case-insensitive.
func ParseKeyword(word string) (Keyword, bool) {
	keyword, ok := keywords[strings.ToLower(word)]
	return keyword, ok
}

func (keyword Keyword) String() string {
	name, ok := keywordNames[keyword]
	if !ok {
		return fmt.Sprintf("Keyword(%d)", int(keyword))
	}
	return name
}

// Variable is one of the 26 single-letter variables, stored as 0-25.
type Variable uint8

// NewVariable accepts a single ASCII letter, either case.
func NewVariable(char byte) (Variable, bool) {
	switch {
	case 'A' <= char && char <= 'Z':
		return Variable(char - 'A'), true
	case 'a' <= char && char <= 'z':
		return Variable(char - 'a'), true
	}
	return 0, false
}

func (variable Variable) String() string {
	return string(rune('A' + variable))
}

type Symbol int

const (
	SymbolLess = Symbol(iota + 1)
	SymbolGreater
	SymbolEqual
	SymbolPlus
	SymbolMinus
	SymbolTimes
	SymbolDivide
	SymbolComma
)

var symbolChars = map[byte]Symbol{
	'<': SymbolLess,
	'>': SymbolGreater,
	'=': SymbolEqual,
	'+': SymbolPlus,
	'-': SymbolMinus,
	'*': SymbolTimes,
	'/': SymbolDivide,
	',': SymbolComma,
}

func ParseSymbol(char byte) (Symbol, bool) {
	symbol, ok := symbolChars[char]
	return symbol, ok
}

func (symbol Symbol) String() string {
	for char, sym := range symbolChars {
		if sym == symbol {
			return string(rune(char))
		}
	}
	return fmt.Sprintf("Symbol(%d)", int(symbol))
}

// IsSymbol returns a predicate matching exactly one symbol token, for use
// as a terminal schema entry in grammar rules.
func IsSymbol(symbol Symbol) grammar.TokenPredicate[Token] {
	return func(token Token) bool {
		return token.Kind == SymbolToken && token.Symbol == symbol
	}
}

func IsKeyword(keyword Keyword) grammar.TokenPredicate[Token] {
	return func(token Token) bool {
		return token.Kind == KeywordToken && token.Keyword == keyword
	}
}

// IsRelationalSymbol matches <, > and =.
func IsRelationalSymbol(token Token) bool {
	if token.Kind != SymbolToken {
		return false
	}
	switch token.Symbol {
	case SymbolLess, SymbolGreater, SymbolEqual:
		return true
	}
	return false
}
