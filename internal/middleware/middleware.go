// Package middleware stores global and route-specific middleware.
//
// These intercept requests to handle cross-cutting concerns such as request
// ids, request-scoped logging, CORS, rate limiting, tracing and panic
// recovery. The global error handler turns every returned error into the
// JSON error shape.
package middleware
