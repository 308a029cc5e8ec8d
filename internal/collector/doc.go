// Package collector implements a Prometheus collector for the timestamp service.
//
// The collector exposes the following metrics:
//   - workshop_timestamp_info: Always 1, with the current timestamp in the "timestamp" label
//   - workshop_timestamp_clock_seconds: Unix time of the clock read behind that timestamp
//   - workshop_timestamps_issued_total: Total number of timestamps handed out via Issue
//   - workshop_timestamp_build_info: Build version information
//
// Timestamps are computed at scrape time; nothing is cached between scrapes.
// Issue is the path the HTTP and CLI surfaces use so issued values are counted.
//
// Example usage:
//
//	c := collector.NewTimestampCollector(nil, log)
//	reg := prometheus.NewRegistry()
//	reg.MustRegister(c)
//
//	fmt.Println(c.Issue())
package collector
