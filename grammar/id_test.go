package grammar

import (
	"testing"
)

func TestIdsFromSameGeneratorDiffer(t *testing.T) {
	gen := NewIdGenerator()
	first := gen.NextId()
	second := gen.NextId()
	if first == second {
		t.Fatalf("expected distinct ids, got %s and %s", first, second)
	}
}

func TestIdCopiesAreEqual(t *testing.T) {
	gen := NewIdGenerator()
	id := gen.NextId()
	copied := id
	if id != copied {
		t.Fatalf("expected %s to equal its copy %s", id, copied)
	}
}

func TestIdsFromDistinctGeneratorsNeverEqual(t *testing.T) {
	first := NewIdGenerator()
	second := NewIdGenerator()

	// Same sequence numbers on purpose.
	for i := 0; i < 3; i++ {
		a := first.NextId()
		b := second.NextId()
		if a == b {
			t.Fatalf("ids from distinct generators compared equal: %s", a)
		}
	}
}

func TestIdsUsableAsMapKeys(t *testing.T) {
	gen := NewIdGenerator()
	seen := map[SymbolId]int{}
	for i := 0; i < 10; i++ {
		seen[gen.NextId()] = i
	}
	if len(seen) != 10 {
		t.Fatalf("expected 10 distinct keys, got %d", len(seen))
	}
}
