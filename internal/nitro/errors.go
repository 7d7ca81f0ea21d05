package nitro

import "fmt"

// APIError is returned when the appliance answers with a non-2xx status.
// The raw body is kept because NITRO reports its own error details there.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("nitro api returned status %d: %s", e.StatusCode, e.Body)
}

// DecodeError is returned when a 2xx response body is not well-formed JSON.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("malformed nitro response: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// FieldNotFoundError is returned when a requested field is absent from a
// response. A missing field indicates a mismatched object type or appliance
// version, not a health condition, so callers treat it as fatal.
type FieldNotFoundError struct {
	Field string
}

func (e *FieldNotFoundError) Error() string {
	return fmt.Sprintf("field %q not found in response", e.Field)
}
