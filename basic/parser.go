package basic

import (
	"io"

	"github.com/pattyshack/gt/parseutil"
)

// TokenSource is what the parser pulls from; *lexer.TokenStream[Token]
// satisfies it.
type TokenSource interface {
	Next() (Token, error)
	CurrentLocation() parseutil.Location
}

// Parse builds a Program from the token source.  Errors (lexical and
// syntactic) are reported through the emitter; the parser recovers at line
// boundaries, so a single bad statement does not abort the file.
func Parse(source TokenSource, emitter *parseutil.Emitter) *Program {
	parser := &parser{
		source:  source,
		emitter: emitter,
		relop:   NewRelopGrammar(),
	}
	return parser.parseProgram()
}

// ParseString lexes and parses in one step.
func ParseString(
	fileName string,
	content string,
	emitter *parseutil.Emitter,
) *Program {
	return Parse(NewLexer().LexString(fileName, content), emitter)
}

type parser struct {
	source  TokenSource
	emitter *parseutil.Emitter
	relop   RelopGrammar

	peeked    *Token
	exhausted bool
}

func (parser *parser) peek() (Token, bool) {
	if parser.peeked != nil {
		return *parser.peeked, true
	}
	if parser.exhausted {
		return Token{}, false
	}

	token, err := parser.source.Next()
	if err != nil {
		if err != io.EOF {
			parser.emitter.EmitErrors(err)
		}
		parser.exhausted = true
		return Token{}, false
	}

	parser.peeked = &token
	return token, true
}

func (parser *parser) next() (Token, bool) {
	token, ok := parser.peek()
	parser.peeked = nil
	return token, ok
}

func (parser *parser) loc() parseutil.Location {
	return parser.source.CurrentLocation()
}

// skipLine drops tokens through the next newline (or end of input).
func (parser *parser) skipLine() {
	for {
		token, ok := parser.next()
		if !ok || token.Kind == NewlineToken {
			return
		}
	}
}

func (parser *parser) parseProgram() *Program {
	program := NewProgram()
	for {
		token, ok := parser.peek()
		if !ok {
			return program
		}

		if token.Kind == NewlineToken {
			parser.next()
			continue
		}

		line := &Line{}
		if token.Kind == NumberToken {
			parser.next()
			line.Number = token.Number
			line.HasNumber = true
		}

		stmt, err := parser.parseStatement()
		if err != nil {
			parser.emitter.EmitErrors(err)
			parser.skipLine()
			continue
		}
		line.Stmt = stmt

		// A statement runs to the end of its line.
		trailing, ok := parser.peek()
		if ok && trailing.Kind != NewlineToken {
			parser.emitter.Emit(
				parser.loc(),
				"unexpected %s after statement",
				trailing)
			parser.skipLine()
		} else if ok {
			parser.next()
		}

		program.AddLine(line)
	}
}

func (parser *parser) parseStatement() (Statement, error) {
	token, ok := parser.next()
	if !ok {
		return nil, parseutil.NewLocationError(
			parser.loc(),
			"expected a statement, found end of input")
	}

	if token.Kind != KeywordToken {
		return nil, parseutil.NewLocationError(
			parser.loc(),
			"expected a statement keyword, found %s",
			token)
	}

	switch token.Keyword {
	case KeywordPrint:
		items, err := parser.parseExprList()
		if err != nil {
			return nil, err
		}
		return &PrintStmt{Items: items}, nil

	case KeywordIf:
		return parser.parseIf()

	case KeywordGoto:
		target, err := parser.parseExpression()
		if err != nil {
			return nil, err
		}
		return &GotoStmt{Target: target}, nil

	case KeywordInput:
		variables, err := parser.parseVarList()
		if err != nil {
			return nil, err
		}
		return &InputStmt{Variables: variables}, nil

	case KeywordLet:
		return parser.parseLet()

	case KeywordGosub:
		target, err := parser.parseExpression()
		if err != nil {
			return nil, err
		}
		return &GosubStmt{Target: target}, nil

	case KeywordReturn:
		return &ReturnStmt{}, nil
	case KeywordClear:
		return &ClearStmt{}, nil
	case KeywordList:
		return &ListStmt{}, nil
	case KeywordRun:
		return &RunStmt{}, nil
	case KeywordEnd:
		return &EndStmt{}, nil
	}

	return nil, parseutil.NewLocationError(
		parser.loc(),
		"%s cannot start a statement",
		token.Keyword)
}

func (parser *parser) parseIf() (Statement, error) {
	left, err := parser.parseExpression()
	if err != nil {
		return nil, err
	}

	op, err := parser.parseRelOp()
	if err != nil {
		return nil, err
	}

	right, err := parser.parseExpression()
	if err != nil {
		return nil, err
	}

	then, ok := parser.next()
	if !ok || then.Kind != KeywordToken || then.Keyword != KeywordThen {
		return nil, parseutil.NewLocationError(
			parser.loc(),
			"expected THEN in IF statement")
	}

	stmt, err := parser.parseStatement()
	if err != nil {
		return nil, err
	}

	return &IfStmt{
		Left:  left,
		Op:    op,
		Right: right,
		Then:  stmt,
	}, nil
}

// parseRelOp collects the run of relational symbol tokens and reduces it
// through the relop grammar.
func (parser *parser) parseRelOp() (RelOp, error) {
	run := []Token{}
	for {
		token, ok := parser.peek()
		if !ok || !IsRelationalSymbol(token) {
			break
		}
		parser.next()
		run = append(run, token)
	}

	if len(run) == 0 {
		return 0, parseutil.NewLocationError(
			parser.loc(),
			"expected a relational operator")
	}

	op, err := parser.relop.FromTokens(run)
	if err != nil {
		return 0, parseutil.NewLocationError(parser.loc(), "%s", err)
	}
	return op, nil
}

func (parser *parser) parseLet() (Statement, error) {
	token, ok := parser.next()
	if !ok || token.Kind != VariableToken {
		return nil, parseutil.NewLocationError(
			parser.loc(),
			"expected a variable in LET statement")
	}
	variable := token.Variable

	equals, ok := parser.next()
	if !ok || equals.Kind != SymbolToken || equals.Symbol != SymbolEqual {
		return nil, parseutil.NewLocationError(
			parser.loc(),
			"expected = in LET statement")
	}

	value, err := parser.parseExpression()
	if err != nil {
		return nil, err
	}

	return &LetStmt{
		Variable: variable,
		Value:    value,
	}, nil
}

func (parser *parser) parseExprList() ([]ExprListItem, error) {
	items := []ExprListItem{}
	for {
		item, err := parser.parseExprListItem()
		if err != nil {
			return nil, err
		}
		items = append(items, item)

		token, ok := parser.peek()
		if !ok || token.Kind != SymbolToken || token.Symbol != SymbolComma {
			return items, nil
		}
		parser.next()
	}
}

func (parser *parser) parseExprListItem() (ExprListItem, error) {
	token, ok := parser.peek()
	if ok && token.Kind == StringToken {
		parser.next()
		return &StringItem{Text: token.Text}, nil
	}

	return parser.parseExpression()
}

func (parser *parser) parseVarList() ([]Variable, error) {
	variables := []Variable{}
	for {
		token, ok := parser.next()
		if !ok || token.Kind != VariableToken {
			return nil, parseutil.NewLocationError(
				parser.loc(),
				"expected a variable in INPUT statement")
		}
		variables = append(variables, token.Variable)

		next, ok := parser.peek()
		if !ok || next.Kind != SymbolToken || next.Symbol != SymbolComma {
			return variables, nil
		}
		parser.next()
	}
}

func (parser *parser) maybeSign() Sign {
	token, ok := parser.peek()
	if !ok || token.Kind != SymbolToken {
		return SignNone
	}

	switch token.Symbol {
	case SymbolPlus:
		parser.next()
		return SignPositive
	case SymbolMinus:
		parser.next()
		return SignNegative
	}
	return SignNone
}

func (parser *parser) parseExpression() (*Expression, error) {
	expr := &Expression{
		Sign: parser.maybeSign(),
	}

	first, err := parser.parseTerm()
	if err != nil {
		return nil, err
	}
	expr.First = first

	for {
		sign := parser.maybeSign()
		if sign == SignNone {
			return expr, nil
		}

		term, err := parser.parseTerm()
		if err != nil {
			return nil, err
		}
		expr.Rest = append(expr.Rest, SignedTerm{
			Sign: sign,
			Term: term,
		})
	}
}

func (parser *parser) parseTerm() (*Term, error) {
	first, err := parser.parseFactor()
	if err != nil {
		return nil, err
	}
	term := &Term{First: first}

	for {
		token, ok := parser.peek()
		if !ok || token.Kind != SymbolToken {
			return term, nil
		}

		var op TermOp
		switch token.Symbol {
		case SymbolTimes:
			op = TermOpTimes
		case SymbolDivide:
			op = TermOpDivide
		default:
			return term, nil
		}
		parser.next()

		factor, err := parser.parseFactor()
		if err != nil {
			return nil, err
		}
		term.Rest = append(term.Rest, TermElement{
			Op:     op,
			Factor: factor,
		})
	}
}

func (parser *parser) parseFactor() (Factor, error) {
	token, ok := parser.next()
	if !ok {
		return nil, parseutil.NewLocationError(
			parser.loc(),
			"expected a factor, found end of input")
	}

	switch token.Kind {
	case VariableToken:
		return &VariableFactor{Variable: token.Variable}, nil
	case NumberToken:
		return &NumberFactor{Value: token.Number}, nil
	}

	return nil, parseutil.NewLocationError(
		parser.loc(),
		"expected a variable or number, found %s",
		token)
}
