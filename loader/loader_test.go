package loader

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mezonai/blockmine/block"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadTrimsAndSkipsBlankLines(t *testing.T) {
	input := "35\n 20 \r\n\n15\t\n25\n\n47"
	blocks, err := Read(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, block.FromUint64s(35, 20, 15, 25, 47), blocks)
}

func TestReadReportsLine(t *testing.T) {
	_, err := Read(strings.NewReader("1\n2\n\nfoo\n5\n"))
	require.Error(t, err)

	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, 4, perr.Line)
	assert.ErrorIs(t, err, block.ErrInvalidDecimal)
	assert.Contains(t, err.Error(), "line 4")
}

func TestReadRejectsOutOfDomain(t *testing.T) {
	huge := "57896044618658097711785492504343953926634992332820282019728792003956564819968"
	_, err := Read(strings.NewReader("1\n" + huge + "\n"))
	assert.ErrorIs(t, err, block.ErrArithmeticOverflow)

	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, 2, perr.Line)
}

func TestScanStopsEarly(t *testing.T) {
	var got []block.Block
	for b, err := range Scan(strings.NewReader("1\n2\n3\n")) {
		require.NoError(t, err)
		got = append(got, b)
		if len(got) == 2 {
			break
		}
	}
	assert.Equal(t, block.FromUint64s(1, 2), got)
}

func TestWriteRoundTripsThroughFile(t *testing.T) {
	blocks := append(block.FromUint64s(35, 20, 15), block.MaxValue)
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, blocks))

	path := filepath.Join(t.TempDir(), "blocks.txt")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))

	got, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, blocks, got)

	_, err = ReadFile(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}
