package window

import (
	"errors"
	"fmt"
	"iter"

	"github.com/gammazero/deque"
	"github.com/mezonai/blockmine/block"
)

// MinSize is the smallest window that can hold a pair of distinct positions.
const MinSize = 2

var ErrInvalidInitialWindow = errors.New("invalid initial window")

// Window holds the most recently accepted blocks, oldest first. Its length is
// fixed at construction; every eviction is paired with an insertion.
type Window struct {
	blocks deque.Deque[block.Block]
	size   int
}

// New creates a window of the given size from exactly size seed blocks.
func New(size int, seed []block.Block) (*Window, error) {
	if size < MinSize {
		return nil, fmt.Errorf("%w: size %d is below the minimum of %d", ErrInvalidInitialWindow, size, MinSize)
	}
	if len(seed) != size {
		return nil, fmt.Errorf("%w: expected %d seed blocks, got %d", ErrInvalidInitialWindow, size, len(seed))
	}

	w := &Window{size: size}
	for _, b := range seed {
		w.blocks.PushBack(b)
	}
	return w, nil
}

// Size returns the fixed capacity I.
func (w *Window) Size() int {
	return w.size
}

// Len returns the number of blocks held, which always equals Size.
func (w *Window) Len() int {
	return w.blocks.Len()
}

// Oldest peeks at the block that the next accepted extension will evict.
func (w *Window) Oldest() block.Block {
	return w.blocks.Front()
}

// Newest returns the most recently accepted block.
func (w *Window) Newest() block.Block {
	return w.blocks.Back()
}

// At returns the i-th block, 0 being the oldest.
func (w *Window) At(i int) block.Block {
	return w.blocks.At(i)
}

// EvictOldestAndPush drops the oldest block, appends b and returns the
// dropped value.
func (w *Window) EvictOldestAndPush(b block.Block) block.Block {
	evicted := w.blocks.PopFront()
	w.blocks.PushBack(b)
	return evicted
}

// All iterates the window oldest to newest.
func (w *Window) All() iter.Seq[block.Block] {
	return func(yield func(block.Block) bool) {
		for i := 0; i < w.blocks.Len(); i++ {
			if !yield(w.blocks.At(i)) {
				return
			}
		}
	}
}

// Blocks returns a copy of the window contents, oldest first.
func (w *Window) Blocks() []block.Block {
	out := make([]block.Block, 0, w.blocks.Len())
	for b := range w.All() {
		out = append(out, b)
	}
	return out
}
