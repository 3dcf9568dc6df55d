// Package requestid attaches a correlation id to every HTTP request.
//
// Middleware reuses a well-formed X-Request-ID header from the client or
// generates a UUIDv4, stores it in the request context and echoes it back in
// the response header. LoggerExtractor plugs the id into pkg/logger so every
// log line written with the request context carries it.
package requestid
