// Package grammar implements a rule-driven shift-reduce engine over an
// arbitrary token type.  A language layer declares substitution rules
// against symbol ids issued by the grammar's id generator, then feeds a
// token stream through Parse to obtain a generic parse tree.
//
// The engine performs a single deterministic greedy pass: after every
// shifted token it attempts at most one reduction, preferring the longest
// matching stack suffix and, within a suffix, the earliest declared rule.
// It never backtracks and never computes grammar properties up front;
// ambiguity and termination are the rule author's responsibility.
package grammar

import (
	"io"
)

// TokenStream is the engine's pull-based input.  Next returns io.EOF once
// the stream is exhausted; any other error ends the parse and is returned
// to the caller unchanged (in practice these are lexical errors surfaced
// by the pipeline).
type TokenStream[L any] interface {
	Next() (L, error)
}

type sliceStream[L any] struct {
	tokens []L
}

// NewSliceStream adapts an in-memory token slice to a TokenStream.
func NewSliceStream[L any](tokens []L) TokenStream[L] {
	return &sliceStream[L]{tokens: tokens}
}

func (stream *sliceStream[L]) Next() (L, error) {
	if len(stream.tokens) == 0 {
		var zero L
		return zero, io.EOF
	}

	token := stream.tokens[0]
	stream.tokens = stream.tokens[1:]
	return token, nil
}

// Builder assembles a Grammar.  The first added rule becomes the grammar's
// default rule; the rest keep insertion order.  The builder owns the id
// generator for the construction session.
type Builder[L any] struct {
	generator   *IdGenerator
	defaultRule *Rule[L]
	rules       []*Rule[L]
}

func NewBuilder[L any]() *Builder[L] {
	return &Builder[L]{
		generator: NewIdGenerator(),
	}
}

// NextId issues a fresh nonterminal symbol id.
func (builder *Builder[L]) NextId() SymbolId {
	return builder.generator.NextId()
}

func (builder *Builder[L]) AddRule(rule *Rule[L]) *Builder[L] {
	if builder.defaultRule == nil {
		builder.defaultRule = rule
	} else {
		builder.rules = append(builder.rules, rule)
	}
	return builder
}

// Build finalizes the grammar.  A grammar must have at least one rule;
// Build returns nil if none was added.
func (builder *Builder[L]) Build() *Grammar[L] {
	if builder.defaultRule == nil {
		return nil
	}

	return &Grammar[L]{
		generator:   builder.generator,
		defaultRule: builder.defaultRule,
		rules:       builder.rules,
	}
}

// Grammar is an immutable rule set.  It is read-only after Build and safe
// to share across concurrent parses; only the working stack is per-call
// state.
type Grammar[L any] struct {
	// The construction session's generator; its ids live inside the rules.
	generator *IdGenerator

	defaultRule *Rule[L]
	rules       []*Rule[L]
}

// eachRule visits the default rule first, then the remaining rules in
// insertion order.  This order is the tie-break when several rules match
// the same suffix.
func (grammar *Grammar[L]) eachRule(visit func(*Rule[L]) bool) {
	if visit(grammar.defaultRule) {
		return
	}
	for _, rule := range grammar.rules {
		if visit(rule) {
			return
		}
	}
}

// Parse consumes the stream and returns the top of the working stack, or
// nil for an empty stream.  Unreduced nodes below the top are silently
// dropped; callers that require a single root should use ParseAll and
// check the stack size.
func (grammar *Grammar[L]) Parse(stream TokenStream[L]) (*Tree[L], error) {
	stack, err := grammar.ParseAll(stream)
	if err != nil {
		return nil, err
	}

	if len(stack) == 0 {
		return nil, nil
	}
	return stack[len(stack)-1], nil
}

// ParseAll consumes the stream and returns the entire final working stack,
// bottom first.  A fully reduced input yields exactly one element.
func (grammar *Grammar[L]) ParseAll(
	stream TokenStream[L],
) (
	[]*Tree[L],
	error,
) {
	stack := []*Tree[L]{}

	for {
		token, err := stream.Next()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}

		// shift
		stack = append(stack, Leaf(token))

		// Greedily search for one reduction, longest suffix first.
		for drop := 0; drop < len(stack); drop++ {
			suffix := stack[drop:]

			reduced := false
			grammar.eachRule(func(rule *Rule[L]) bool {
				if !rule.Matches(suffix) {
					return false
				}

				// Pop the matched suffix and replace it with a single node.
				// Children are kept in left-to-right declared order.
				children := make([]*Tree[L], len(suffix))
				copy(children, suffix)

				stack = stack[:drop]
				stack = append(stack, node(rule.Lhs(), children))
				reduced = true
				return true
			})

			// At most one reduction per shifted token.
			if reduced {
				break
			}
		}
	}

	return stack, nil
}
