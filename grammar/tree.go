package grammar

// Tree is a parse tree node over tokens of type L.  A tree is either a
// leaf holding one input token, or an interior node holding the SymbolId
// of the rule that produced it plus the matched children.
//
// Children are exclusively owned by their parent and appear in the rule's
// declared right-hand-side order (left to right), not in pop order.
type Tree[L any] struct {
	// Symbol is only meaningful for interior nodes.
	Symbol SymbolId

	// Token is only meaningful for leaves.
	Token L

	Children []*Tree[L]

	leaf bool
}

// Leaf wraps a single input token.
func Leaf[L any](token L) *Tree[L] {
	return &Tree[L]{
		Token: token,
		leaf:  true,
	}
}

func node[L any](symbol SymbolId, children []*Tree[L]) *Tree[L] {
	return &Tree[L]{
		Symbol:   symbol,
		Children: children,
	}
}

func (tree *Tree[L]) IsLeaf() bool {
	return tree.leaf
}

// Leaves returns the tree's leaf tokens in left-to-right order.
func (tree *Tree[L]) Leaves() []L {
	if tree.leaf {
		return []L{tree.Token}
	}

	result := []L{}
	for _, child := range tree.Children {
		result = append(result, child.Leaves()...)
	}
	return result
}
