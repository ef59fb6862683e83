package block

import (
	"errors"
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckedAdd(t *testing.T) {
	sum, err := CheckedAdd(New(35), New(47))
	require.NoError(t, err)
	assert.Equal(t, New(82), sum)

	sum, err = CheckedAdd(MaxValue, MaxValue)
	require.NoError(t, err, "two in-domain blocks never overflow")
	assert.Equal(t, 256, sum.BitLen())

	var top Block
	top.SetAllOne()
	_, err = CheckedAdd(top, New(1))
	assert.ErrorIs(t, err, ErrArithmeticOverflow)
}

func TestMustAddPanicsOnOverflow(t *testing.T) {
	var top Block
	top.SetAllOne()

	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok)
		assert.True(t, errors.Is(err, ErrArithmeticOverflow))
	}()
	MustAdd(top, top)
}

func TestDomain(t *testing.T) {
	assert.True(t, InDomain(New(0)))
	assert.True(t, InDomain(MaxValue))

	var half Block
	half.Lsh(uint256.NewInt(1), 255)
	assert.False(t, InDomain(half))
	assert.ErrorIs(t, CheckDomain(half), ErrArithmeticOverflow)
	assert.NoError(t, CheckDomain(MaxValue))
}

func TestFromDecimal(t *testing.T) {
	b, err := FromDecimal("  1243183713 ")
	require.NoError(t, err)
	assert.Equal(t, New(1243183713), b)

	_, err = FromDecimal("")
	assert.ErrorIs(t, err, ErrInvalidDecimal)

	_, err = FromDecimal("-4")
	assert.ErrorIs(t, err, ErrInvalidDecimal)

	_, err = FromDecimal("12ab")
	assert.ErrorIs(t, err, ErrInvalidDecimal)

	// 2^255 is one past the domain
	_, err = FromDecimal("57896044618658097711785492504343953926634992332820282019728792003956564819968")
	assert.ErrorIs(t, err, ErrArithmeticOverflow)

	b, err = FromDecimal(MaxValue.Dec())
	require.NoError(t, err)
	assert.Equal(t, MaxValue, b)
}

func TestCompare(t *testing.T) {
	assert.Equal(t, -1, Compare(New(1), New(2)))
	assert.Equal(t, 0, Compare(New(7), New(7)))
	assert.Equal(t, 1, Compare(MaxValue, New(2)))
	assert.Equal(t, "127", String(New(127)))
	assert.Equal(t, []Block{New(4), New(2)}, FromUint64s(4, 2))
}
