package grammar

import (
	"testing"
)

func TestBuildWithoutRules(t *testing.T) {
	if NewBuilder[testToken]().Build() != nil {
		t.Fatal("expected nil grammar when no rule was added")
	}
}

func TestParseEmptyInput(t *testing.T) {
	builder := NewBuilder[testToken]()
	builder.AddRule(NewRule[testToken](builder.NextId()).AddTerminal(isA))
	grammar := builder.Build()

	tree, err := grammar.Parse(NewSliceStream([]testToken{}))
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if tree != nil {
		t.Fatalf("expected no tree for empty input, got %v", tree)
	}
}

func TestGreedyReduction(t *testing.T) {
	builder := NewBuilder[testToken]()
	s := builder.NextId()
	builder.AddRule(NewRule[testToken](s).
		AddTerminal(isA).
		AddTerminal(isA))
	grammar := builder.Build()

	stack, err := grammar.ParseAll(NewSliceStream([]testToken{"a", "a"}))
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if len(stack) != 1 {
		t.Fatalf("expected a fully reduced stack, got %d entries", len(stack))
	}

	tree := stack[0]
	if tree.IsLeaf() {
		t.Fatal("expected an interior node, got a leaf")
	}
	if tree.Symbol != s {
		t.Fatalf("expected symbol %s, got %s", s, tree.Symbol)
	}
	if len(tree.Children) != 2 {
		t.Fatalf("expected 2 children, got %d", len(tree.Children))
	}
	for idx, child := range tree.Children {
		if !child.IsLeaf() || child.Token != "a" {
			t.Fatalf("child %d: expected leaf a, got %v", idx, child)
		}
	}
}

func TestNoMatchPassesTokenThrough(t *testing.T) {
	builder := NewBuilder[testToken]()
	builder.AddRule(NewRule[testToken](builder.NextId()).
		AddTerminal(isA).
		AddTerminal(isA))
	grammar := builder.Build()

	tree, err := grammar.Parse(NewSliceStream([]testToken{"b"}))
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if tree == nil || !tree.IsLeaf() || tree.Token != "b" {
		t.Fatalf("expected unreduced leaf b, got %v", tree)
	}
}

func TestParseReturnsTopOfStack(t *testing.T) {
	builder := NewBuilder[testToken]()
	s := builder.NextId()
	builder.AddRule(NewRule[testToken](s).AddTerminal(isB))
	grammar := builder.Build()

	// "a" never reduces and stays below the reduced "b".
	stack, err := grammar.ParseAll(NewSliceStream([]testToken{"a", "b"}))
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if len(stack) != 2 {
		t.Fatalf("expected 2 leftover entries, got %d", len(stack))
	}
	if !stack[0].IsLeaf() || stack[0].Token != "a" {
		t.Fatalf("expected bottom leaf a, got %v", stack[0])
	}
	if stack[1].IsLeaf() || stack[1].Symbol != s {
		t.Fatalf("expected reduced node on top, got %v", stack[1])
	}

	tree, err := grammar.Parse(NewSliceStream([]testToken{"a", "b"}))
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if tree.IsLeaf() || tree.Symbol != s {
		t.Fatalf("Parse did not return the top of the stack: %v", tree)
	}
}

func TestLongestSuffixWins(t *testing.T) {
	builder := NewBuilder[testToken]()
	short := builder.NextId()
	long := builder.NextId()

	// The unit rule is the default rule; the longer rule still wins on the
	// second token because longer suffixes are tried first.
	builder.AddRule(NewRule[testToken](short).AddTerminal(isB))
	builder.AddRule(NewRule[testToken](long).
		AddNonterminal(short).
		AddTerminal(isB))
	grammar := builder.Build()

	tree, err := grammar.Parse(NewSliceStream([]testToken{"b", "b"}))
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if tree.IsLeaf() || tree.Symbol != long {
		t.Fatalf("expected the two-entry rule to win, got %v", tree)
	}
}

func TestRuleTieBreakByInsertionOrder(t *testing.T) {
	builder := NewBuilder[testToken]()
	first := builder.NextId()
	second := builder.NextId()

	// Identical right-hand sides; the default rule must win.
	builder.AddRule(NewRule[testToken](first).AddTerminal(isA))
	builder.AddRule(NewRule[testToken](second).AddTerminal(isA))
	grammar := builder.Build()

	tree, err := grammar.Parse(NewSliceStream([]testToken{"a"}))
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if tree.Symbol != first {
		t.Fatalf("expected default rule %s to win, got %s", first, tree.Symbol)
	}
}

func TestOneReductionPerToken(t *testing.T) {
	builder := NewBuilder[testToken]()
	s := builder.NextId()
	pair := builder.NextId()

	builder.AddRule(NewRule[testToken](s).AddTerminal(isA))
	builder.AddRule(NewRule[testToken](pair).
		AddNonterminal(s).
		AddNonterminal(s))
	grammar := builder.Build()

	// Each shifted a reduces once to s.  The pair rule only becomes
	// matchable after the second unit reduction, and no further token
	// arrives to trigger it.
	stack, err := grammar.ParseAll(NewSliceStream([]testToken{"a", "a"}))
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if len(stack) != 2 {
		t.Fatalf("expected 2 stack entries, got %d", len(stack))
	}
	for idx, tree := range stack {
		if tree.IsLeaf() || tree.Symbol != s {
			t.Fatalf("entry %d: expected s node, got %v", idx, tree)
		}
	}
}

func TestChildrenInDeclaredOrder(t *testing.T) {
	builder := NewBuilder[testToken]()
	s := builder.NextId()
	builder.AddRule(NewRule[testToken](s).
		AddTerminal(isA).
		AddTerminal(isB))
	grammar := builder.Build()

	tree, err := grammar.Parse(NewSliceStream([]testToken{"a", "b"}))
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if tree.IsLeaf() || len(tree.Children) != 2 {
		t.Fatalf("expected a node with 2 children, got %v", tree)
	}
	if tree.Children[0].Token != "a" || tree.Children[1].Token != "b" {
		t.Fatalf(
			"expected children in declared order [a b], got [%s %s]",
			tree.Children[0].Token,
			tree.Children[1].Token)
	}
}

func TestLeaves(t *testing.T) {
	builder := NewBuilder[testToken]()
	s := builder.NextId()
	builder.AddRule(NewRule[testToken](s).
		AddTerminal(isA).
		AddTerminal(isB))
	grammar := builder.Build()

	tree, err := grammar.Parse(NewSliceStream([]testToken{"a", "b"}))
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	leaves := tree.Leaves()
	if len(leaves) != 2 || leaves[0] != "a" || leaves[1] != "b" {
		t.Fatalf("expected leaves [a b], got %v", leaves)
	}
}
