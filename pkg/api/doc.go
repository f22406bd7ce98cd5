// Package api provides the HTTP API layer for the version comparison service.
//
// This package acts as a thin wrapper around the reusable pkg/server package,
// configuring it with the service name, version info, and structured logging.
// It exposes version comparison and selection via REST API. Note: the API
// server does not support image reference comparison or batch sorting from
// files; use the CLI for these operations.
//
// # Usage
//
// To start the API server:
//
//	package main
//
//	import (
//	    "log"
//	    "github.com/NVIDIA/vercmp/pkg/api"
//	)
//
//	func main() {
//	    if err := api.Serve(); err != nil {
//	        log.Fatalf("server error: %v", err)
//	    }
//	}
//
// # Architecture
//
// The API layer is responsible for:
//   - Configuring structured logging with application name and version
//   - Installing signal handlers for graceful shutdown
//   - Delegating server lifecycle management to pkg/server
//
// The pkg/server package handles:
//   - HTTP server setup and graceful shutdown
//   - Middleware (rate limiting, logging, metrics, panic recovery)
//   - Health and readiness endpoints
//   - Prometheus metrics
//
// # Endpoints
//
// Application Endpoints (with rate limiting):
//   - GET /v1/compare  - Compare two versions given as query parameters
//   - POST /v1/compare - Compare two versions given in a JSON body
//   - POST /v1/highest - Select the highest version from a JSON list
//
// System Endpoints (no rate limiting):
//   - GET /health  - Health check (liveness probe)
//   - GET /ready   - Readiness check
//   - GET /metrics - Prometheus metrics
//
// # Query Parameters (GET /v1/compare)
//
// The /v1/compare endpoint accepts these query parameters for GET requests:
//   - left: Left-hand version string
//   - right: Right-hand version string
//
// # Request Body (POST /v1/compare)
//
// POST requests accept a JSON body with left and right version strings:
//
//	{"left": "10.2.3", "right": "10.2.3-rc1"}
//
// Example curl command:
//
//	curl -X POST http://localhost:8080/v1/compare \
//	  -H "Content-Type: application/json" \
//	  -d '{"left": "10.2.3", "right": "10.2.3-rc1"}'
//
// # Configuration
//
// The server is configured via environment variables:
//   - PORT: HTTP server port (default: 8080)
//   - LOG_LEVEL: Logging level (debug, info, warn, error)
//
// Version information is set at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/NVIDIA/vercmp/pkg/api.version=1.0.0'"
package api
