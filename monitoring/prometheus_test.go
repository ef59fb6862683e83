package monitoring

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordBlock(t *testing.T) {
	InitMetrics()

	RecordBlock("sum-index", BlockAccepted)
	RecordBlock("sum-index", BlockAccepted)
	RecordBlock("sum-index", BlockInvalid)

	assert.Equal(t, 2.0, testutil.ToFloat64(mineMetrics.blocksTotal.WithLabelValues("sum-index", "accepted")))
	assert.Equal(t, 1.0, testutil.ToFloat64(mineMetrics.blocksTotal.WithLabelValues("sum-index", "invalid")))
	assert.Equal(t, 0.0, testutil.ToFloat64(mineMetrics.blocksTotal.WithLabelValues("sorted-scan", "accepted")))
}

func TestWriteTextfile(t *testing.T) {
	InitMetrics()
	SetWindowSize(5)
	SetBlocksAbsorbed(14)
	RecordExtension("sorted-scan", 3*time.Microsecond)
	RecordSeed("sorted-scan", time.Millisecond)
	IncreasePanicCount()

	path := filepath.Join(t.TempDir(), "blockmine.prom")
	require.NoError(t, WriteTextfile(path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(raw)
	assert.Contains(t, text, "blockmine_window_size 5")
	assert.Contains(t, text, "blockmine_blocks_absorbed 14")
	assert.Contains(t, text, `blockmine_extension_duration_seconds_count{engine="sorted-scan"} 1`)
	assert.Contains(t, text, "blockmine_panic_count 1")
}
