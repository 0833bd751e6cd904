package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestConstructorsUseStatusCodes(t *testing.T) {
	tests := []struct {
		err    *HTTPError
		status int
		code   string
	}{
		{NewBadRequestError("bad", false, nil, nil, nil), http.StatusBadRequest, "BAD_REQUEST"},
		{NewNotFoundError("gone", false, nil), http.StatusNotFound, "NOT_FOUND"},
		{NewForbiddenError("no", false), http.StatusForbidden, "FORBIDDEN"},
		{NewInternalServerError(), http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"},
		{NewBadGatewayError("upstream", nil), http.StatusBadGateway, "BAD_GATEWAY"},
		{NewServiceUnavailableError("down", nil), http.StatusServiceUnavailable, "SERVICE_UNAVAILABLE"},
		{NewTooManyRequestsError("slow down"), http.StatusTooManyRequests, "TOO_MANY_REQUESTS"},
	}

	for _, tt := range tests {
		if tt.err.Status != tt.status || tt.err.Code != tt.code {
			t.Errorf("got %d/%s, want %d/%s", tt.err.Status, tt.err.Code, tt.status, tt.code)
		}
	}
}

func TestCustomCode(t *testing.T) {
	code := "SERVICE_NOT_FOUND"
	err := NewNotFoundError("Service not found", true, &code)
	if err.Code != code {
		t.Errorf("Code = %q, want %q", err.Code, code)
	}
}

func TestErrorsAsThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("finding order: %w", NewNotFoundError("Order not found", false, nil))

	var httpErr *HTTPError
	if !errors.As(wrapped, &httpErr) {
		t.Fatal("errors.As did not find *HTTPError")
	}
	if httpErr.Status != http.StatusNotFound {
		t.Errorf("Status = %d", httpErr.Status)
	}
	if !errors.Is(wrapped, &HTTPError{}) {
		t.Error("errors.Is should match any *HTTPError")
	}
}
