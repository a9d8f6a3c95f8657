package errors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	// ErrUnsupportedFileType is returned when an upload has an extension the extractor cannot read.
	ErrUnsupportedFileType = errors.New("unsupported file type")
	// ErrDuplicateEmail is returned when registering an email that already has an account.
	ErrDuplicateEmail = errors.New("email already registered")
	// ErrInvalidCredentials is returned for wrong passwords and bad, expired or revoked tokens.
	ErrInvalidCredentials = errors.New("could not validate credentials")
	// ErrNotFound is returned when a portfolio does not exist or belongs to someone else.
	ErrNotFound = errors.New("portfolio not found")
	// ErrValidation is returned when a request body is malformed.
	ErrValidation = errors.New("validation failed")
)

// ExtractionError wraps a parse failure for one document format.
type ExtractionError struct {
	Format string
	Err    error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("error processing %s file: %v", strings.ToUpper(e.Format), e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// EnhancementError wraps a failed call to the generative model.
type EnhancementError struct {
	Op  string
	Err error
}

func (e *EnhancementError) Error() string {
	return fmt.Sprintf("error during %s enhancement: %v", e.Op, e.Err)
}

func (e *EnhancementError) Unwrap() error {
	return e.Err
}

// Validation builds an ErrValidation carrying a field level message.
func Validation(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	var (
		extractErr *ExtractionError
		enhanceErr *EnhancementError
	)
	switch {
	case errors.Is(err, ErrValidation):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "VALIDATION_ERROR")
	case errors.Is(err, ErrUnsupportedFileType):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "UNSUPPORTED_FILE_TYPE")
	case errors.Is(err, ErrDuplicateEmail):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "EMAIL_ALREADY_REGISTERED")
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_CREDENTIALS")
	case errors.Is(err, ErrNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "NOT_FOUND")
	case errors.As(err, &extractErr):
		return NewHTTPError(http.StatusInternalServerError, extractErr.Error(), "EXTRACTION_FAILED")
	case errors.As(err, &enhanceErr):
		return NewHTTPError(http.StatusInternalServerError, enhanceErr.Error(), "ENHANCEMENT_FAILED")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
