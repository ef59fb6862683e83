// Package blockgen produces block streams with a known validation outcome,
// for benchmarks, tests and the generate command.
package blockgen

import (
	"errors"
	"fmt"

	"github.com/mezonai/blockmine/block"
)

var ErrShortStream = errors.New("stream shorter than its seed")

// Seed100 is a fixed seed window of 100 values below 2^31.
var Seed100 = block.FromUint64s(
	1243183713, 182130668, 1454194459, 440815554, 1780603458, 1071104710, 1428186645, 1681358285,
	1862642276, 1921894785, 1630110372, 1819818469, 1517313601, 567804314, 1535738847, 860336423,
	573742082, 1355914565, 137256245, 1480486103, 1726108326, 491128183, 1097611230, 1228313487,
	1388942186, 194712488, 1170756287, 1573897725, 1014265958, 24906164, 2002242887, 513171947,
	105872019, 1519157703, 832221534, 724354983, 716460919, 1416663835, 1507371012, 376054838,
	485083184, 234842817, 859179882, 444965898, 488579921, 837747055, 13964313, 1468067067,
	1657860263, 810492999, 646105966, 1965134910, 511633022, 1497099375, 1447767380, 1684442356,
	687758905, 1060793621, 1863125120, 2087560835, 1893372513, 1287135240, 399718525, 387897017,
	985743452, 1527145208, 677746369, 650102777, 1197688703, 727756928, 1793192148, 1602093392,
	448968042, 1355115532, 852365288, 2130320379, 1177352448, 1515418529, 1802393611, 1708615725,
	237565253, 1510480025, 261223600, 1230659804, 365688338, 357566756, 641730039, 1253172544,
	1263473894, 673016011, 1891853499, 46942072, 1931734276, 128544521, 2034116478, 1575091383,
	1568064634, 1153764404, 1142178529, 1283151306,
)

// Seed returns the first size values of Seed100. Sizes above 100 repeat it.
func Seed(size int) []block.Block {
	out := make([]block.Block, size)
	for i := range out {
		out[i] = Seed100[i%len(Seed100)]
	}
	return out
}

// Sequential returns the seed 1, 2, ..., size.
func Sequential(size int) []block.Block {
	out := make([]block.Block, size)
	for i := range out {
		out[i] = block.New(uint64(i) + 1)
	}
	return out
}

// Valid extends seed into a stream of total blocks where every block after
// the seed is the sum of the two oldest blocks of its window, so every
// extension is accepted. The seed is the window, its length is I.
func Valid(seed []block.Block, total int) ([]block.Block, error) {
	size := len(seed)
	if size < 2 {
		return nil, fmt.Errorf("seed needs at least 2 blocks, got %d", size)
	}
	if total < size {
		return nil, fmt.Errorf("%w: %d < %d", ErrShortStream, total, size)
	}

	out := make([]block.Block, total)
	copy(out, seed)
	for i := size; i < total; i++ {
		sum, err := block.CheckedAdd(out[i-size], out[i-size+1])
		if err != nil {
			return nil, fmt.Errorf("block %d: %w", i+1, err)
		}
		if err := block.CheckDomain(sum); err != nil {
			return nil, fmt.Errorf("block %d: %w", i+1, err)
		}
		out[i] = sum
	}
	return out, nil
}

// Corrupt replaces the block at index i (0-based, after the seed) of a stream
// with window size with a value larger than any pair sum of its window, so it
// is guaranteed to be rejected. The stream is modified in place. Blocks of a
// Valid stream that were derived from the replaced one are not regenerated
// and usually fail as well.
func Corrupt(stream []block.Block, size, i int) error {
	if i < size || i >= len(stream) {
		return fmt.Errorf("corrupt index %d outside [%d, %d)", i, size, len(stream))
	}
	largest := stream[i-size]
	for _, b := range stream[i-size : i] {
		if block.Compare(b, largest) > 0 {
			largest = b
		}
	}
	sum, err := block.CheckedAdd(largest, largest)
	if err != nil {
		return err
	}
	sum, err = block.CheckedAdd(sum, block.New(1))
	if err != nil {
		return err
	}
	if err := block.CheckDomain(sum); err != nil {
		return err
	}
	stream[i] = sum
	return nil
}
