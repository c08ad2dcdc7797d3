// Package api provides the HTTP API layer for the semv version validation service.
//
// This package acts as a thin wrapper around the reusable pkg/server package,
// configuring it with application-specific routes and handlers. It exposes
// version validation, comparison, and sorting over REST.
//
// # Usage
//
// To start the API server:
//
//	package main
//
//	import (
//	    "log"
//	    "github.com/NVIDIA/semv/pkg/api"
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
//   - Setting up route handlers (e.g., /v1/check)
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
//   - GET  /v1/check   - Validate a single version string
//   - POST /v1/check   - Validate a batch of version strings
//   - GET  /v1/compare - Compare the precedence of two version strings
//   - POST /v1/sort    - Sort a batch of version strings by precedence
//
// System Endpoints (no rate limiting):
//   - GET /health  - Health check (liveness probe)
//   - GET /ready   - Readiness check
//   - GET /metrics - Prometheus metrics
//
// # Query Parameters
//
// GET /v1/check accepts:
//   - v: the version string to validate (required)
//
// GET /v1/compare accepts:
//   - a: first version string (required)
//   - b: second version string (required)
//
// # Request Body (POST /v1/check, POST /v1/sort)
//
// POST requests accept a JSON body with the list of versions:
//
//	{"versions": ["v1.2.3", "v1.2.3-rc.1", "not-a-version"]}
//
// Example curl command:
//
//	curl -X POST http://localhost:8080/v1/sort \
//	  -H "Content-Type: application/json" \
//	  -d '{"versions": ["v1.10.0", "v1.2.0", "v1.2.0-alpha"]}'
//
// The number of versions per request is capped; requests exceeding the
// cap are rejected with 400.
//
// # Configuration
//
// The server is configured via environment variables:
//   - PORT: HTTP server port (default: 8080)
//   - LOG_LEVEL: Logging level (debug, info, warn, error)
//
// Version information is set at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/NVIDIA/semv/pkg/api.version=1.0.0'"
package api
