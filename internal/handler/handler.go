// Package handler is the HTTP layer between the router and the services.
//
// Every API route goes through Handle: the request type is bound and
// validated, the typed handler calls exactly one service method, and the
// result is written as JSON. Errors are returned untouched for the global
// error handler to render.
package handler
