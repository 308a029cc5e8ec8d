package timestamp

import (
	"time"

	"github.com/AIM-MADS-DATEXP/workshop-pipelines/internal/clock"
)

// Timestamp format constants
const (
	Prefix = "TS"              // Literal prefix of every timestamp
	Layout = "20060102.150405" // Date, ".", then 24-hour time of day
	Length = len(Prefix) + len(Layout)
)

// Timestamp returns the current local time formatted as TSYYYYMMDD.HHMMSS
func Timestamp() string {
	return Format(time.Now())
}

// Format renders t in the local timezone. Sub-second precision is dropped.
func Format(t time.Time) string {
	return Prefix + t.Local().Format(Layout)
}

// Generator produces timestamps from an injectable clock
type Generator struct {
	clock clock.Clock
}

// NewGenerator creates a Generator reading from clk (nil means the system clock)
func NewGenerator(clk clock.Clock) *Generator {
	return &Generator{clock: clock.OrReal(clk)}
}

// Now returns the timestamp for the generator's current clock reading
func (g *Generator) Now() string {
	return Format(g.clock.Now())
}

// NowWithTime returns the timestamp together with the clock reading it was built from
func (g *Generator) NowWithTime() (string, time.Time) {
	t := g.clock.Now()
	return Format(t), t
}
