package window

import (
	"testing"

	"github.com/mezonai/blockmine/block"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsBadSeeds(t *testing.T) {
	_, err := New(5, block.FromUint64s(35, 20, 15, 25))
	assert.ErrorIs(t, err, ErrInvalidInitialWindow)

	_, err = New(5, block.FromUint64s(35, 20, 15, 25, 47, 40))
	assert.ErrorIs(t, err, ErrInvalidInitialWindow)

	_, err = New(1, block.FromUint64s(35))
	assert.ErrorIs(t, err, ErrInvalidInitialWindow)

	_, err = New(0, nil)
	assert.ErrorIs(t, err, ErrInvalidInitialWindow)
}

func TestWindowRotation(t *testing.T) {
	w, err := New(4, block.FromUint64s(4, 4, 2, 2))
	require.NoError(t, err)
	assert.Equal(t, 4, w.Size())
	assert.Equal(t, 4, w.Len())
	assert.Equal(t, block.New(4), w.Oldest())
	assert.Equal(t, block.New(2), w.Newest())

	evicted := w.EvictOldestAndPush(block.New(8))
	assert.Equal(t, block.New(4), evicted)
	assert.Equal(t, block.FromUint64s(4, 2, 2, 8), w.Blocks())
	assert.Equal(t, 4, w.Len())

	evicted = w.EvictOldestAndPush(block.New(4))
	assert.Equal(t, block.New(4), evicted)
	assert.Equal(t, block.FromUint64s(2, 2, 8, 4), w.Blocks())
	assert.Equal(t, block.New(8), w.At(2))
}

func TestLengthStaysFixed(t *testing.T) {
	w, err := New(2, block.FromUint64s(1, 2))
	require.NoError(t, err)
	for i := uint64(0); i < 100; i++ {
		w.EvictOldestAndPush(block.New(i))
		require.Equal(t, 2, w.Len())
	}
	assert.Equal(t, block.FromUint64s(98, 99), w.Blocks())
}

func TestAllStopsEarly(t *testing.T) {
	w, err := New(3, block.FromUint64s(1, 2, 3))
	require.NoError(t, err)

	var seen []block.Block
	for b := range w.All() {
		seen = append(seen, b)
		if len(seen) == 2 {
			break
		}
	}
	assert.Equal(t, block.FromUint64s(1, 2), seen)
	assert.Equal(t, block.FromUint64s(1, 2, 3), w.Blocks())
}
