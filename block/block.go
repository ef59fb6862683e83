package block

import (
	"errors"
	"fmt"
	"strings"

	"github.com/holiman/uint256"
)

// Block is a single value in the mined stream. It is a 256-bit unsigned
// integer; the array representation makes it comparable and usable as a map key.
type Block = uint256.Int

// Width is the bit width of a Block.
const Width = 256

var (
	ErrArithmeticOverflow = errors.New("block arithmetic overflow")
	ErrInvalidDecimal     = errors.New("invalid decimal block value")
)

// MaxValue is the largest value a block may take: 2^255 - 1. Any two blocks
// within the domain can be added without overflowing the 256-bit width.
var MaxValue = Block{^uint64(0), ^uint64(0), ^uint64(0), ^uint64(0) >> 1}

// New returns a block holding v.
func New(v uint64) Block {
	return Block{v}
}

// FromUint64s converts a slice of plain integers into blocks.
func FromUint64s(values ...uint64) []Block {
	out := make([]Block, len(values))
	for i, v := range values {
		out[i] = New(v)
	}
	return out
}

// FromDecimal parses a base-10 block value and checks it against the domain.
func FromDecimal(s string) (Block, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Block{}, ErrInvalidDecimal
	}
	v, err := uint256.FromDecimal(s)
	if err != nil {
		return Block{}, fmt.Errorf("%w: %q: %v", ErrInvalidDecimal, s, err)
	}
	if err := CheckDomain(*v); err != nil {
		return Block{}, err
	}
	return *v, nil
}

// InDomain reports whether b is strictly below half of the 256-bit maximum.
func InDomain(b Block) bool {
	return b[3]>>63 == 0
}

// CheckDomain returns ErrArithmeticOverflow when b is outside the block domain.
func CheckDomain(b Block) error {
	if !InDomain(b) {
		return fmt.Errorf("%w: value %s exceeds %s", ErrArithmeticOverflow, b.Dec(), MaxValue.Dec())
	}
	return nil
}

// CheckedAdd returns a + b, or ErrArithmeticOverflow if the sum does not fit.
func CheckedAdd(a, b Block) (Block, error) {
	var sum Block
	if _, overflow := sum.AddOverflow(&a, &b); overflow {
		return Block{}, fmt.Errorf("%w: %s + %s", ErrArithmeticOverflow, a.Dec(), b.Dec())
	}
	return sum, nil
}

// MustAdd is CheckedAdd for callers that already enforced the domain. An
// overflow here means that precondition was broken, so it panics.
func MustAdd(a, b Block) Block {
	sum, err := CheckedAdd(a, b)
	if err != nil {
		panic(err)
	}
	return sum
}

// Compare orders blocks numerically: -1 if a < b, 0 if equal, +1 if a > b.
func Compare(a, b Block) int {
	return a.Cmp(&b)
}

// String renders b in base 10.
func String(b Block) string {
	return b.Dec()
}
