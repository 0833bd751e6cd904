// Package storeerr classifies MongoDB driver errors and converts them into
// application HTTP errors.
//
// Repositories wrap every driver error with the collection and operation
// that produced it (Wrap). The global error handler later calls HandleError
// to turn the classified error into the client-facing *errs.HTTPError.
package storeerr

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/x/mongo/driver/topology"
)

// Code categorises a store failure.
type Code string

const (
	NotFound     Code = "not_found"
	Duplicate    Code = "duplicate"
	Unavailable  Code = "unavailable"
	Timeout      Code = "timeout"
	InvalidInput Code = "invalid_input"
	Other        Code = "other"
)

// Error is a classified store failure.
type Error struct {
	Code       Code
	Collection string
	Operation  string

	driverErr error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Collection, e.Operation, e.driverErr)
}

// Unwrap exposes the original driver error to errors.Is / errors.As.
func (e *Error) Unwrap() error {
	return e.driverErr
}

// Wrap classifies err and tags it with where it happened. nil stays nil.
func Wrap(err error, collection, operation string) error {
	if err == nil {
		return nil
	}

	// Already classified further down the stack.
	var storeErr *Error
	if errors.As(err, &storeErr) {
		return err
	}

	return &Error{
		Code:       Classify(err),
		Collection: collection,
		Operation:  operation,
		driverErr:  err,
	}
}

// Classify maps a raw driver error onto a Code.
func Classify(err error) Code {
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		return NotFound
	case mongo.IsDuplicateKeyError(err):
		return Duplicate
	// Server selection timeouts also count as timeouts for the driver,
	// so unavailability is checked first.
	case errors.Is(err, mongo.ErrClientDisconnected),
		errors.Is(err, topology.ErrServerSelectionTimeout),
		mongo.IsNetworkError(err):
		return Unavailable
	case errors.Is(err, context.DeadlineExceeded), mongo.IsTimeout(err):
		return Timeout
	case errors.Is(err, mongo.ErrNilDocument),
		errors.Is(err, mongo.ErrEmptySlice):
		return InvalidInput
	}

	var selectionErr topology.ServerSelectionError
	if errors.As(err, &selectionErr) {
		return Unavailable
	}

	return Other
}

// ErrCode reports the Code of a wrapped error, or Other when err was never
// classified.
func ErrCode(err error) Code {
	var storeErr *Error
	if errors.As(err, &storeErr) {
		return storeErr.Code
	}
	return Other
}

// IsNotFound reports whether err means "no document matched".
func IsNotFound(err error) bool {
	return ErrCode(err) == NotFound || errors.Is(err, mongo.ErrNoDocuments)
}
