package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMalformedResponse indicates the response XML did not match the expected SOAP shape
	ErrMalformedResponse = errors.New("malformed soap response")

	// ErrNotificationNotFound indicates no notification history row exists for the id
	ErrNotificationNotFound = errors.New("notification not found")
)

// SoapFault is a protocol-level fault envelope returned by the service
type SoapFault struct {
	Code    string
	Message string
}

func (f *SoapFault) Error() string {
	return fmt.Sprintf("soap fault %s: %s", f.Code, f.Message)
}

// IsInvalidSession reports whether the fault signals an expired or revoked session token
func (f *SoapFault) IsInvalidSession() bool {
	return strings.EqualFold(f.Code, "INVALID_SESSION")
}

// SaveFailedError is a save or delete result the service rejected (success=false),
// distinct from a SoapFault: the call itself went through
type SaveFailedError struct {
	ID         string
	StatusCode string
	Message    string
}

func (e *SaveFailedError) Error() string {
	return fmt.Sprintf("save failed with status %s: %s", e.StatusCode, e.Message)
}

// UnexpectedStatusError is an HTTP status outside the 200/500 SOAP contract;
// the response body is never parsed in that case
type UnexpectedStatusError struct {
	URL    string
	Status int
}

func (e *UnexpectedStatusError) Error() string {
	return fmt.Sprintf("request to %s returned unexpected HTTP status code of %d, check configuration", e.URL, e.Status)
}
