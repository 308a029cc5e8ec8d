package collector

import (
	"sync"
	"time"

	"github.com/AIM-MADS-DATEXP/workshop-pipelines/internal/clock"
	"github.com/AIM-MADS-DATEXP/workshop-pipelines/internal/logger"
	"github.com/AIM-MADS-DATEXP/workshop-pipelines/internal/timestamp"
	"github.com/AIM-MADS-DATEXP/workshop-pipelines/internal/version"
	"github.com/prometheus/client_golang/prometheus"
)

// Metric namespace shared by every metric this collector exposes
const namespace = "workshop_timestamp"

// TimestampCollector implements prometheus.Collector for timestamp metrics
// and is the single place the service hands out timestamps from
type TimestampCollector struct {
	generator *timestamp.Generator
	logger    *logger.Logger

	// Metrics
	infoMetric  *prometheus.Desc
	clockMetric *prometheus.Desc
	issuedTotal prometheus.Counter
	buildInfo   *prometheus.GaugeVec

	// State
	mu           sync.RWMutex
	lastIssued   string
	lastIssuedAt time.Time
}

// NewTimestampCollector creates a collector reading from clk (nil means the system clock)
func NewTimestampCollector(clk clock.Clock, log *logger.Logger) *TimestampCollector {
	buildInfo := prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "build_info",
			Help:      "Build version information",
		},
		[]string{"version", "git_commit", "build_date", "go_version"},
	)

	info := version.Get()
	buildInfo.With(prometheus.Labels{
		"version":    info.Version,
		"git_commit": info.GitCommit,
		"build_date": info.BuildDate,
		"go_version": info.GoVersion,
	}).Set(1)

	return &TimestampCollector{
		generator: timestamp.NewGenerator(clk),
		logger:    log,
		infoMetric: prometheus.NewDesc(
			namespace+"_info",
			"Current local timestamp at scrape time, carried in the timestamp label",
			[]string{"timestamp"},
			nil,
		),
		clockMetric: prometheus.NewDesc(
			namespace+"_clock_seconds",
			"Unix time of the clock read behind the current timestamp",
			nil,
			nil,
		),
		issuedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "workshop_timestamps_issued_total",
			Help: "Total number of timestamps handed out since startup",
		}),
		buildInfo: buildInfo,
	}
}

// Describe implements prometheus.Collector
func (c *TimestampCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.infoMetric
	ch <- c.clockMetric
	c.issuedTotal.Describe(ch)
	c.buildInfo.Describe(ch)
}

// Collect implements prometheus.Collector
func (c *TimestampCollector) Collect(ch chan<- prometheus.Metric) {
	ts, at := c.generator.NowWithTime()

	ch <- prometheus.MustNewConstMetric(
		c.infoMetric,
		prometheus.GaugeValue,
		1,
		ts,
	)

	// Whole seconds, matching the resolution of the label
	ch <- prometheus.MustNewConstMetric(
		c.clockMetric,
		prometheus.GaugeValue,
		float64(at.Unix()),
	)

	c.issuedTotal.Collect(ch)
	c.buildInfo.Collect(ch)
}

// Issue returns a fresh timestamp and records it as issued
func (c *TimestampCollector) Issue() string {
	ts, at := c.generator.NowWithTime()
	c.issuedTotal.Inc()

	c.mu.Lock()
	c.lastIssued = ts
	c.lastIssuedAt = at
	c.mu.Unlock()

	c.logger.Debug("Issued timestamp", "timestamp", ts)
	return ts
}

// Current returns the timestamp for the current clock reading without recording it
func (c *TimestampCollector) Current() string {
	return c.generator.Now()
}

// LastIssued returns the most recently issued timestamp and its clock reading.
// Both are zero values until Issue has been called.
func (c *TimestampCollector) LastIssued() (string, time.Time) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lastIssued, c.lastIssuedAt
}
