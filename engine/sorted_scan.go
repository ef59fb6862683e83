package engine

import (
	"fmt"
	"slices"

	"github.com/mezonai/blockmine/block"
)

// SortedScan keeps the window values in ascending order and answers queries
// with a two-pointer scan. Memory is O(I); Contains is O(I) and Replace is
// O(I) because the values live in a flat slice (binary search, then shift).
type SortedScan struct {
	sorted []block.Block
}

// NewSortedScan sorts a copy of seed in O(I log I).
func NewSortedScan(seed []block.Block) *SortedScan {
	sorted := slices.Clone(seed)
	slices.SortFunc(sorted, block.Compare)
	return &SortedScan{sorted: sorted}
}

func (e *SortedScan) Kind() Kind {
	return KindSortedScan
}

func (e *SortedScan) Contains(target block.Block) bool {
	lo, hi := 0, len(e.sorted)-1
	for lo < hi {
		sum := block.MustAdd(e.sorted[lo], e.sorted[hi])
		switch sum.Cmp(&target) {
		case 0:
			return true
		case -1:
			lo++
		default:
			hi--
		}
	}
	return false
}

func (e *SortedScan) Replace(evicted, inserted block.Block, _ View) {
	i, found := slices.BinarySearchFunc(e.sorted, evicted, block.Compare)
	if !found {
		panic(fmt.Sprintf("sorted scan out of step with window: block %s not present", evicted.Dec()))
	}
	e.sorted = slices.Delete(e.sorted, i, i+1)

	j, _ := slices.BinarySearchFunc(e.sorted, inserted, block.Compare)
	e.sorted = slices.Insert(e.sorted, j, inserted)
}

// Sorted returns a copy of the ordered values.
func (e *SortedScan) Sorted() []block.Block {
	return slices.Clone(e.sorted)
}
