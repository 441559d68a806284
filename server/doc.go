// Package server exposes transcription over HTTP.
//
// The Gin engine is mounted on a ServeMux and served through h2c so HTTP/1.1
// and cleartext HTTP/2 clients share one port. Middleware from
// server/middleware wraps the whole handler: panic recovery, request IDs,
// a body size limit and request logging.
//
// Routes:
//
//	POST /v1/transcribe  raw audio in, {"data":{"transcript":"..."}} out
//	GET  /health         local health checks
//	GET  /info           build information
package server
