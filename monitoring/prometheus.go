package monitoring

import (
	"time"

	"github.com/mezonai/blockmine/logx"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type BlockOutcome string

var (
	BlockAccepted BlockOutcome = "accepted"
	BlockInvalid  BlockOutcome = "invalid"
	BlockOverflow BlockOutcome = "overflow"
)

type minePromMetrics struct {
	runStartUnixSeconds prometheus.Gauge
	windowSize          prometheus.Gauge
	blocksTotal         *prometheus.CounterVec
	extensionDuration   *prometheus.HistogramVec
	seedDuration        *prometheus.HistogramVec
	totalAbsorbed       prometheus.Gauge
	panicCount          prometheus.Counter
}

func newMinePromMetrics(reg prometheus.Registerer) *minePromMetrics {
	factory := promauto.With(reg)
	return &minePromMetrics{
		runStartUnixSeconds: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "blockmine_run_start_timestamp_unix_seconds",
				Help: "Unix timestamp of the start of the validation run",
			},
		),
		windowSize: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "blockmine_window_size",
				Help: "Number of previous blocks a candidate is validated against",
			},
		),
		blocksTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "blockmine_blocks_total",
				Help: "The total number of candidate blocks by outcome",
			},
			[]string{"engine", "outcome"},
		),
		extensionDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "blockmine_extension_duration_seconds",
				Help:    "Time spent validating and absorbing one candidate block",
				Buckets: prometheus.ExponentialBuckets(1e-7, 4, 10),
			},
			[]string{"engine"},
		),
		seedDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "blockmine_seed_duration_seconds",
				Help:    "Time spent building a mine from its seed window",
				Buckets: prometheus.ExponentialBuckets(1e-6, 4, 10),
			},
			[]string{"engine"},
		),
		totalAbsorbed: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "blockmine_blocks_absorbed",
				Help: "Blocks absorbed by the mine, seed included",
			},
		),
		panicCount: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "blockmine_panic_count",
				Help: "Panics recovered at the command boundary",
			},
		),
	}
}

var (
	registry    *prometheus.Registry
	mineMetrics *minePromMetrics
)

func init() {
	InitMetrics()
}

// InitMetrics resets every metric on a fresh registry.
func InitMetrics() {
	registry = prometheus.NewRegistry()
	mineMetrics = newMinePromMetrics(registry)
	mineMetrics.runStartUnixSeconds.SetToCurrentTime()
}

// Registry exposes the registry the metrics live on.
func Registry() *prometheus.Registry {
	return registry
}

// WriteTextfile writes the current metrics in the Prometheus text format,
// ready for a node exporter textfile collector.
func WriteTextfile(path string) error {
	logx.Info("METRICS", "Writing prometheus metrics to ", path)
	return prometheus.WriteToTextfile(path, registry)
}

func SetWindowSize(size int) {
	mineMetrics.windowSize.Set(float64(size))
}

func RecordBlock(engine string, outcome BlockOutcome) {
	mineMetrics.blocksTotal.With(prometheus.Labels{
		"engine":  engine,
		"outcome": string(outcome),
	}).Inc()
}

func RecordExtension(engine string, duration time.Duration) {
	mineMetrics.extensionDuration.With(prometheus.Labels{
		"engine": engine,
	}).Observe(duration.Seconds())
}

func RecordSeed(engine string, duration time.Duration) {
	mineMetrics.seedDuration.With(prometheus.Labels{
		"engine": engine,
	}).Observe(duration.Seconds())
}

func SetBlocksAbsorbed(total uint64) {
	mineMetrics.totalAbsorbed.Set(float64(total))
}

func IncreasePanicCount() {
	mineMetrics.panicCount.Inc()
}
