// Package server implements the vercmp HTTP API.
//
// # Endpoints
//
//	GET  /v1/compare?left=A&right=B   compare two version strings
//	POST /v1/compare                  compare via JSON body {"left": ..., "right": ...}
//	POST /v1/highest                  pick the highest of {"versions": [...]}
//	GET  /health                      liveness probe
//	GET  /ready                       readiness probe
//	GET  /metrics                     Prometheus metrics
//	GET  /                            route index and server identity
//
// API endpoints run behind a middleware chain providing Prometheus RED
// metrics, API version negotiation (Accept: application/vnd.nvidia.vercmp.v1+json),
// request ID propagation (X-Request-Id), panic recovery, token-bucket rate
// limiting, and debug request logging.
//
// Configuration comes from environment variables (PORT,
// SHUTDOWN_TIMEOUT_SECONDS, LOG_LEVEL) over defaults in pkg/defaults.
// When run under a systemd Type=notify unit, the server reports readiness
// and shutdown via sd_notify.
package server
