package grammar

// TokenPredicate classifies a single input token.  Predicates are supplied
// by the language layer when declaring terminal schema entries; the engine
// never inspects tokens any other way.
type TokenPredicate[L any] func(L) bool

// A schema entry is either terminal (predicate set) or nonterminal
// (symbol id set).  Fixed at rule construction.
type symbolSchema[L any] struct {
	predicate TokenPredicate[L]
	symbol    SymbolId
	terminal  bool
}

// Rule is a single substitution rule: an ordered right-hand side of schema
// entries that reduces to the left-hand SymbolId.  The right-hand side is
// built via the Add* calls and must not be modified once the rule is added
// to a grammar.
type Rule[L any] struct {
	lhs SymbolId
	rhs []symbolSchema[L]
}

func NewRule[L any](lhs SymbolId) *Rule[L] {
	return &Rule[L]{
		lhs: lhs,
	}
}

// AddTerminal appends a terminal entry matched via predicate.  Entries
// match in call order.
func (rule *Rule[L]) AddTerminal(predicate TokenPredicate[L]) *Rule[L] {
	rule.rhs = append(rule.rhs, symbolSchema[L]{
		predicate: predicate,
		terminal:  true,
	})
	return rule
}

// AddNonterminal appends a nonterminal entry matched by SymbolId equality.
func (rule *Rule[L]) AddNonterminal(symbol SymbolId) *Rule[L] {
	rule.rhs = append(rule.rhs, symbolSchema[L]{
		symbol: symbol,
	})
	return rule
}

func (rule *Rule[L]) Lhs() SymbolId {
	return rule.lhs
}

// Matches reports whether candidate is exactly this rule's right-hand
// side.  Terminal entries only match leaves whose token satisfies the
// predicate; nonterminal entries only match interior nodes carrying an
// equal SymbolId.  Comparison short-circuits on the first mismatch.
func (rule *Rule[L]) Matches(candidate []*Tree[L]) bool {
	if len(rule.rhs) != len(candidate) {
		return false
	}

	for idx, schema := range rule.rhs {
		tree := candidate[idx]
		if schema.terminal {
			if !tree.IsLeaf() || !schema.predicate(tree.Token) {
				return false
			}
		} else {
			if tree.IsLeaf() || schema.symbol != tree.Symbol {
				return false
			}
		}
	}

	return true
}
