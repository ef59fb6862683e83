package engine

import (
	"errors"
	"fmt"

	"github.com/mezonai/blockmine/block"
)

// Kind names a validation strategy.
type Kind string

const (
	KindSumIndex   Kind = "sum-index"
	KindSortedScan Kind = "sorted-scan"
)

var ErrUnknownKind = errors.New("unknown engine kind")

// View is read access to the window in arrival order, oldest first.
type View interface {
	Len() int
	At(i int) block.Block
}

// Engine answers whether some pair of blocks at distinct window positions sums
// to a target, and keeps itself in step with the window as it slides.
//
// All input blocks must be within the block domain; implementations panic
// with block.ErrArithmeticOverflow otherwise.
type Engine interface {
	Kind() Kind
	Contains(target block.Block) bool
	// Replace swaps one occurrence of evicted for inserted. The view already
	// reflects the swap: inserted is its newest entry and the first Len()-1
	// entries are the blocks that stayed.
	Replace(evicted, inserted block.Block, window View)
}

// Factory builds an engine from the seed window.
type Factory func(seed []block.Block) Engine

var factories = map[Kind]Factory{
	KindSumIndex:   func(seed []block.Block) Engine { return NewSumIndex(seed) },
	KindSortedScan: func(seed []block.Block) Engine { return NewSortedScan(seed) },
}

// Kinds lists the available strategies.
func Kinds() []Kind {
	return []Kind{KindSumIndex, KindSortedScan}
}

// ParseKind validates a strategy name.
func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if _, ok := factories[k]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
	return k, nil
}

// New builds the engine of the given kind over seed.
func New(kind Kind, seed []block.Block) (Engine, error) {
	f, ok := factories[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	return f(seed), nil
}
