package basic

import (
	"fmt"

	"github.com/pattyshack/towhee/grammar"
)

type RelOp int

const (
	RelOpLess = RelOp(iota + 1)
	RelOpLessEqual
	RelOpEqual
	RelOpNotEqual
	RelOpGreater
	RelOpGreaterEqual
)

func (op RelOp) String() string {
	switch op {
	case RelOpLess:
		return "<"
	case RelOpLessEqual:
		return "<="
	case RelOpEqual:
		return "="
	case RelOpNotEqual:
		return "<>"
	case RelOpGreater:
		return ">"
	case RelOpGreaterEqual:
		return ">="
	}
	return fmt.Sprintf("RelOp(%d)", int(op))
}

// RelopGrammar reduces a run of relational symbol tokens to a single
// relop node.  It is the engine consumer that knows which SymbolId means
// "relational operator"; nothing below the grammar package does.
type RelopGrammar struct {
	Grammar *grammar.Grammar[Token]
	Relop   grammar.SymbolId
}

// NewRelopGrammar builds
//
//	relop -> '<' | '>' | '='
//	relop -> relop '=' | relop '>' | relop '<'
//
// The single-symbol rules reduce the first shifted symbol; a trailing
// symbol then reduces through a nonterminal rule, which wins over the
// single-symbol rules because longer suffixes are tried first.
func NewRelopGrammar() RelopGrammar {
	builder := grammar.NewBuilder[Token]()
	relop := builder.NextId()

	builder.
		AddRule(grammar.NewRule[Token](relop).
			AddTerminal(IsSymbol(SymbolLess))).
		AddRule(grammar.NewRule[Token](relop).
			AddTerminal(IsSymbol(SymbolGreater))).
		AddRule(grammar.NewRule[Token](relop).
			AddTerminal(IsSymbol(SymbolEqual))).
		AddRule(grammar.NewRule[Token](relop).
			AddNonterminal(relop).
			AddTerminal(IsSymbol(SymbolEqual))).
		AddRule(grammar.NewRule[Token](relop).
			AddNonterminal(relop).
			AddTerminal(IsSymbol(SymbolGreater))).
		AddRule(grammar.NewRule[Token](relop).
			AddNonterminal(relop).
			AddTerminal(IsSymbol(SymbolLess)))

	return RelopGrammar{
		Grammar: builder.Build(),
		Relop:   relop,
	}
}

// FromTokens runs the symbol run through the engine and maps the parse
// tree back to a RelOp.
func (rg RelopGrammar) FromTokens(tokens []Token) (RelOp, error) {
	stack, err := rg.Grammar.ParseAll(grammar.NewSliceStream(tokens))
	if err != nil {
		return 0, err
	}

	if len(stack) != 1 {
		return 0, fmt.Errorf(
			"relational operator did not reduce to a single node (%d left)",
			len(stack))
	}

	return rg.FromTree(stack[0])
}

// FromTree flattens the (possibly nested) relop node back to its leaf
// symbols and classifies them.
func (rg RelopGrammar) FromTree(tree *grammar.Tree[Token]) (RelOp, error) {
	if tree.IsLeaf() || tree.Symbol != rg.Relop {
		return 0, fmt.Errorf("expected a relop node")
	}

	symbols := []Symbol{}
	for _, token := range tree.Leaves() {
		if token.Kind != SymbolToken {
			return 0, fmt.Errorf("expected a symbol token, found %s", token)
		}
		symbols = append(symbols, token.Symbol)
	}

	return RelOpFromSymbols(symbols)
}

// RelOpFromSymbols classifies a raw relational symbol run per the Tiny
// BASIC grammar: relop ::= < (>|=|e) | > (<|=|e) | =
func RelOpFromSymbols(symbols []Symbol) (RelOp, error) {
	switch {
	case len(symbols) == 1:
		switch symbols[0] {
		case SymbolLess:
			return RelOpLess, nil
		case SymbolGreater:
			return RelOpGreater, nil
		case SymbolEqual:
			return RelOpEqual, nil
		}
	case len(symbols) == 2:
		switch {
		case symbols[0] == SymbolLess && symbols[1] == SymbolEqual:
			return RelOpLessEqual, nil
		case symbols[0] == SymbolLess && symbols[1] == SymbolGreater:
			return RelOpNotEqual, nil
		case symbols[0] == SymbolGreater && symbols[1] == SymbolEqual:
			return RelOpGreaterEqual, nil
		case symbols[0] == SymbolGreater && symbols[1] == SymbolLess:
			return RelOpNotEqual, nil
		}
	}
	return 0, fmt.Errorf("invalid relational operator %v", symbols)
}
