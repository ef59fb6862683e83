package mine

import (
	"fmt"
	"iter"

	"github.com/mezonai/blockmine/block"
	"github.com/mezonai/blockmine/engine"
	"github.com/mezonai/blockmine/window"
)

// Mine validates a stream of blocks: after the seed window, a block is valid
// iff it is the sum of two blocks at distinct positions among the previous I
// accepted blocks.
//
// A Mine is not safe for concurrent use.
type Mine struct {
	window *window.Window
	engine engine.Engine
	total  uint64
}

// Option configures a Mine at construction.
type Option func(*options) error

type options struct {
	kind engine.Kind
}

// WithEngine selects the validation strategy. The default is sum-index.
func WithEngine(kind engine.Kind) Option {
	return func(o *options) error {
		if _, err := engine.ParseKind(string(kind)); err != nil {
			return err
		}
		o.kind = kind
		return nil
	}
}

// New creates a mine over a window of size blocks, seeded with exactly size
// trusted blocks. The seed is not validated against the sum rule.
func New(size int, seed []block.Block, opts ...Option) (*Mine, error) {
	o := options{kind: engine.KindSumIndex}
	for _, opt := range opts {
		if err := opt(&o); err != nil {
			return nil, fmt.Errorf("failed to apply mine option: %w", err)
		}
	}

	w, err := window.New(size, seed)
	if err != nil {
		return nil, err
	}
	for _, b := range seed {
		if err := block.CheckDomain(b); err != nil {
			return nil, err
		}
	}

	e, err := engine.New(o.kind, seed)
	if err != nil {
		return nil, err
	}

	return &Mine{
		window: w,
		engine: e,
		total:  uint64(size),
	}, nil
}

// TryExtendOne validates candidate against the current window and, if valid,
// slides the window over it. On error the mine is left unchanged.
func (m *Mine) TryExtendOne(candidate block.Block) error {
	if err := block.CheckDomain(candidate); err != nil {
		return err
	}
	if !m.engine.Contains(candidate) {
		return &InvalidBlockError{
			Value:    candidate,
			Position: m.total + 1,
			Window:   m.window.Size(),
		}
	}

	evicted := m.window.EvictOldestAndPush(candidate)
	m.engine.Replace(evicted, candidate, m.window)
	m.total++
	return nil
}

// TryExtend extends the mine with every block in order and stops at the first
// failure. Blocks before the failing one stay accepted.
func (m *Mine) TryExtend(candidates []block.Block) error {
	for _, b := range candidates {
		if err := m.TryExtendOne(b); err != nil {
			return err
		}
	}
	return nil
}

// Validate lazily extends the mine with each candidate and yields its index in
// candidates with the outcome: nil when accepted, an *InvalidBlockError when
// rejected. Rejections do not stop the sequence; an arithmetic overflow is
// yielded and ends it. Breaking out of the loop stops consuming candidates.
func (m *Mine) Validate(candidates iter.Seq[block.Block]) iter.Seq2[int, error] {
	return func(yield func(int, error) bool) {
		i := 0
		for b := range candidates {
			err := m.TryExtendOne(b)
			if !yield(i, err) {
				return
			}
			if _, invalid := IsInvalidBlock(err); err != nil && !invalid {
				return
			}
			i++
		}
	}
}

// CreateAndExtend seeds a mine with the first size blocks and extends it with
// the rest, stopping at the first failure.
func CreateAndExtend(size int, blocks []block.Block, opts ...Option) error {
	if size < window.MinSize || len(blocks) < size {
		return fmt.Errorf("%w: expected at least %d blocks, got %d", ErrInvalidInitialWindow, size, len(blocks))
	}
	m, err := New(size, blocks[:size], opts...)
	if err != nil {
		return err
	}
	return m.TryExtend(blocks[size:])
}

// Total returns the number of blocks absorbed, seed included.
func (m *Mine) Total() uint64 {
	return m.total
}

// Size returns the window size I.
func (m *Mine) Size() int {
	return m.window.Size()
}

// EngineKind returns the validation strategy in use.
func (m *Mine) EngineKind() engine.Kind {
	return m.engine.Kind()
}

// Window returns a copy of the current window, oldest first.
func (m *Mine) Window() []block.Block {
	return m.window.Blocks()
}

// ExtensionBound caps how many blocks a stream can accept after a seed of
// size blocks: the window minimum at least doubles every size extensions and
// can only double Width times. It assumes a seed without zeros and is
// informational only.
func ExtensionBound(size int) uint64 {
	return uint64(size) * block.Width
}
