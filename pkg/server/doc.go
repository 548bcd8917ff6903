// Package server is the preview server: it holds a live in-memory tree,
// reconciles it on demand, and serves the result over HTTP.
//
// Routes:
//
//	GET /         rendered HTML page
//	GET /ws       websocket; receives {"event","detail"} frames, pushes
//	              re-rendered HTML after every pass
//	GET /metrics  Prometheus registry
//
// Each render pass runs under an OpenTelemetry span from the global tracer
// provider.
package server
