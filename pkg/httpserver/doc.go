// Package httpserver runs an http.Handler with env-driven timeouts and
// graceful shutdown.
//
// Run blocks until the context is cancelled, SIGINT/SIGTERM arrives or the
// listener fails, then drains in-flight requests within ShutdownTimeout.
// HealthCheckHandler serves liveness ("ALIVE") and readiness ("READY" /
// "NOT_READY") responses from a list of dependency checks.
package httpserver
