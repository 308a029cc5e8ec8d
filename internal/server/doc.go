// Package server provides the HTTP surface of the timestamp service.
//
// Available endpoints:
//   - /           : Web UI showing the current and last issued timestamp
//   - /timestamp  : Issues a fresh timestamp (text/plain, or JSON with ?format=json)
//   - /metrics    : Prometheus metrics endpoint
//   - /health     : Liveness probe (always returns 200)
//
// Each server owns a private Prometheus registry holding the timestamp
// collector plus Go runtime and process metrics.
//
// Example usage:
//
//	srv, err := server.NewServer(cfg, c, log)
//	if err != nil {
//		return err
//	}
//
//	serverErrors := make(chan error, 1)
//	go func() {
//		serverErrors <- srv.Start()
//	}()
package server
