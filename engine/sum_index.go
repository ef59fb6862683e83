package engine

import (
	"fmt"

	"github.com/mezonai/blockmine/block"
)

// SumIndex keeps the multiset of every pairwise sum over distinct window
// positions. Memory is O(I²); Contains is a map lookup and Replace is O(I).
type SumIndex struct {
	sums  map[block.Block]uint32
	pairs int
}

// NewSumIndex builds the sum multiset for seed in O(I²).
func NewSumIndex(seed []block.Block) *SumIndex {
	n := len(seed)
	// Half the pair count; a window with few repeated sums grows once.
	e := &SumIndex{sums: make(map[block.Block]uint32, n*n/4)}
	for i := 0; i < n-1; i++ {
		for j := i + 1; j < n; j++ {
			e.add(block.MustAdd(seed[i], seed[j]))
		}
	}
	return e
}

func (e *SumIndex) Kind() Kind {
	return KindSumIndex
}

func (e *SumIndex) Contains(target block.Block) bool {
	return e.sums[target] > 0
}

func (e *SumIndex) Replace(evicted, inserted block.Block, window View) {
	for i := 0; i < window.Len()-1; i++ {
		other := window.At(i)
		e.remove(block.MustAdd(evicted, other))
		e.add(block.MustAdd(inserted, other))
	}
}

// Len returns the number of distinct sums.
func (e *SumIndex) Len() int {
	return len(e.sums)
}

// Pairs returns the number of sums counted with multiplicity, I(I-1)/2.
func (e *SumIndex) Pairs() int {
	return e.pairs
}

// Multiplicity returns how many position pairs sum to target.
func (e *SumIndex) Multiplicity(target block.Block) uint32 {
	return e.sums[target]
}

func (e *SumIndex) add(sum block.Block) {
	e.sums[sum]++
	e.pairs++
}

func (e *SumIndex) remove(sum block.Block) {
	n, ok := e.sums[sum]
	if !ok {
		panic(fmt.Sprintf("sum index out of step with window: sum %s not present", sum.Dec()))
	}
	if n == 1 {
		delete(e.sums, sum)
	} else {
		e.sums[sum] = n - 1
	}
	e.pairs--
}
