package grammar

import (
	"fmt"
	"sync/atomic"
)

// Scope values are process-wide unique.  The counter is the only state
// shared across concurrently constructed grammars.
var generatorScope atomic.Uint64

// SymbolId identifies a nonterminal symbol.  Ids issued by the same
// generator are equal iff they were issued by the same NextId call; ids
// issued by distinct generators are never equal, even when their sequence
// numbers coincide.
//
// SymbolId is a value type; copies are freely comparable with == and usable
// as map keys.
type SymbolId struct {
	scope    uint64
	sequence uint64
}

func (id SymbolId) String() string {
	return fmt.Sprintf("symbol(%d.%d)", id.scope, id.sequence)
}

// IdGenerator issues SymbolIds for a single grammar-construction session.
// A generator is not safe for concurrent use; the ids it issues outlive it.
type IdGenerator struct {
	scope    uint64
	sequence uint64
}

func NewIdGenerator() *IdGenerator {
	return &IdGenerator{
		scope: generatorScope.Add(1),
	}
}

// NextId returns a fresh id.  Sequence numbers start at 0 and are never
// reused.
func (gen *IdGenerator) NextId() SymbolId {
	id := SymbolId{
		scope:    gen.scope,
		sequence: gen.sequence,
	}
	gen.sequence++
	return id
}
