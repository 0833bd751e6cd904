package storeerr

import (
	"fmt"
	"strings"

	"github.com/deppfellow/luxury-living/internal/errs"
	"github.com/pkg/errors"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// entityNames maps collection names to the singular entity the client
// knows about. Collections missing here fall back to a naive singular.
var entityNames = map[string]string{
	"reviewsCustomer": "review",
	"users":           "user",
	"services":        "service",
	"orderList":       "order",
	"projects":        "project",
}

// entityName returns "order" for "orderList", "user" for "users", and
// "record" when the collection is unknown.
func entityName(collection string) string {
	if collection == "" {
		return "record"
	}
	if name, ok := entityNames[collection]; ok {
		return name
	}
	if strings.HasSuffix(collection, "s") && len(collection) > 1 {
		return collection[:len(collection)-1]
	}
	return collection
}

// generateErrorCode builds <ENTITY>_<ACTION>, e.g. SERVICE_NOT_FOUND.
// These codes are meant for machines (frontend logic), not humans.
func generateErrorCode(collection string, code Code) string {
	action := "ERROR"
	switch code {
	case NotFound:
		action = "NOT_FOUND"
	case Duplicate:
		action = "ALREADY_EXISTS"
	case InvalidInput:
		action = "INVALID"
	}

	return fmt.Sprintf("%s_%s", strings.ToUpper(entityName(collection)), action)
}

// formatUserFriendlyMessage produces the message shown to clients.
func formatUserFriendlyMessage(storeErr *Error) string {
	entity := humanizeText(entityName(storeErr.Collection))

	switch storeErr.Code {
	case NotFound:
		return fmt.Sprintf("%s not found", entity)
	case Duplicate:
		return fmt.Sprintf("A %s with this identifier already exists", strings.ToLower(entity))
	case InvalidInput:
		return fmt.Sprintf("The %s payload is invalid", strings.ToLower(entity))
	case Unavailable, Timeout:
		return "The database is currently unavailable, please retry later"
	default:
		return "An error occurred while processing your request"
	}
}

// humanizeText converts "order_list" into "Order List".
func humanizeText(text string) string {
	if text == "" {
		return ""
	}
	return cases.Title(language.English).String(strings.ReplaceAll(text, "_", " "))
}

// HandleError converts a store error into an application-level error.
//
// Output:
//   - *errs.HTTPError: returned unchanged
//   - NotFound: 404 <ENTITY>_NOT_FOUND
//   - Duplicate / InvalidInput: 400 with a generated code
//   - Unavailable / Timeout: 503 SERVICE_UNAVAILABLE
//   - anything else: 500
func HandleError(err error) error {
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return err
	}

	var storeErr *Error
	if !errors.As(err, &storeErr) {
		// Raw driver error that skipped Wrap; classify it anyway.
		code := Classify(err)
		if code == Other {
			return errs.NewInternalServerError()
		}
		storeErr = &Error{Code: code, driverErr: err}
	}

	errorCode := generateErrorCode(storeErr.Collection, storeErr.Code)
	userMessage := formatUserFriendlyMessage(storeErr)

	switch storeErr.Code {
	case NotFound:
		return errs.NewNotFoundError(userMessage, true, &errorCode)
	case Duplicate, InvalidInput:
		return errs.NewBadRequestError(userMessage, true, &errorCode, nil, nil)
	case Unavailable, Timeout:
		return errs.NewServiceUnavailableError(userMessage, nil)
	default:
		return errs.NewInternalServerError()
	}
}
