// Package errors provides standardized error handling patterns for the
// synthesis core. It includes error classification, standard error variables,
// and helper functions for consistent error wrapping and classification.
package errors

import (
	"errors"
	"fmt"
)

// ErrorClass represents the classification of errors for handling purposes
type ErrorClass int

const (
	// ErrorTransient represents provider-side failures that degrade to
	// synthesis messages rather than aborting a query
	ErrorTransient ErrorClass = iota
	// ErrorInvalid represents errors due to invalid input that is skipped
	// locally (a bad mapping row, an unparsable value)
	ErrorInvalid
	// ErrorFatal represents configuration and validation errors that abort
	// before any provider is contacted
	ErrorFatal
)

// String returns the string representation of ErrorClass
func (ec ErrorClass) String() string {
	switch ec {
	case ErrorTransient:
		return "transient"
	case ErrorInvalid:
		return "invalid"
	case ErrorFatal:
		return "fatal"
	default:
		return "unknown"
	}
}

// Standard error variables for common conditions
var (
	// Query validation errors (fatal: raised before any provider is contacted)
	ErrUnknownFilter  = errors.New("unrecognized query filter")
	ErrInvalidFilter  = errors.New("invalid query filter value")
	ErrMissingFilter  = errors.New("missing required query filter")
	ErrInvalidQuery   = errors.New("invalid query")

	// Registration and catalog errors
	ErrDuplicateProvider = errors.New("provider already registered")
	ErrUnknownProvider   = errors.New("provider not registered")
	ErrEmptyMappingTable = errors.New("provider has no mapping rows")
	ErrMalformedRow      = errors.New("malformed mapping row")
	ErrDuplicateRow      = errors.New("duplicate mapping row")
	ErrNotInitialized    = errors.New("catalog not initialized")

	// Translation errors (non-fatal: recovered as messages)
	ErrMappingNotFound = errors.New("no vocabulary mapping found")
	ErrValueParse      = errors.New("measurement value not parsable")

	// Provider errors (non-fatal at the orchestration level)
	ErrProviderFetch       = errors.New("provider fetch failed")
	ErrProviderUnsupported = errors.New("operation not supported by provider")

	// Configuration errors
	ErrInvalidConfig = errors.New("invalid configuration")
	ErrMissingConfig = errors.New("missing required configuration")
)

// ClassifiedError wraps an error with its classification
type ClassifiedError struct {
	Class     ErrorClass
	Err       error
	Message   string
	Component string
	Operation string
}

// Error implements the error interface
func (ce *ClassifiedError) Error() string {
	if ce.Message != "" {
		return ce.Message
	}
	return ce.Err.Error()
}

// Unwrap returns the underlying error
func (ce *ClassifiedError) Unwrap() error {
	return ce.Err
}

// IsFatal checks if an error should abort the operation before any provider
// is contacted
func IsFatal(err error) bool {
	if err == nil {
		return false
	}

	var ce *ClassifiedError
	if errors.As(err, &ce) {
		return ce.Class == ErrorFatal
	}

	return errors.Is(err, ErrUnknownFilter) ||
		errors.Is(err, ErrInvalidFilter) ||
		errors.Is(err, ErrMissingFilter) ||
		errors.Is(err, ErrInvalidQuery) ||
		errors.Is(err, ErrDuplicateProvider) ||
		errors.Is(err, ErrEmptyMappingTable) ||
		errors.Is(err, ErrNotInitialized) ||
		errors.Is(err, ErrInvalidConfig) ||
		errors.Is(err, ErrMissingConfig)
}

// IsInvalid checks if an error is due to invalid input that is recovered
// locally
func IsInvalid(err error) bool {
	if err == nil {
		return false
	}

	var ce *ClassifiedError
	if errors.As(err, &ce) {
		return ce.Class == ErrorInvalid
	}

	return errors.Is(err, ErrMalformedRow) ||
		errors.Is(err, ErrDuplicateRow) ||
		errors.Is(err, ErrMappingNotFound) ||
		errors.Is(err, ErrValueParse)
}

// IsTransient checks if an error is a provider-side failure that degrades to
// a synthesis message
func IsTransient(err error) bool {
	if err == nil {
		return false
	}

	var ce *ClassifiedError
	if errors.As(err, &ce) {
		return ce.Class == ErrorTransient
	}

	return errors.Is(err, ErrProviderFetch) ||
		errors.Is(err, ErrProviderUnsupported)
}

// Classify returns the error class for an error
func Classify(err error) ErrorClass {
	if IsFatal(err) {
		return ErrorFatal
	}
	if IsInvalid(err) {
		return ErrorInvalid
	}
	// Unknown errors default to transient so a misbehaving provider cannot
	// take down a whole synthesis
	return ErrorTransient
}

// newClassified creates a new classified error.
// This is an internal helper - use WrapTransient(), WrapFatal(), or WrapInvalid() instead.
func newClassified(class ErrorClass, err error, component, operation, message string) *ClassifiedError {
	return &ClassifiedError{
		Class:     class,
		Err:       err,
		Message:   message,
		Component: component,
		Operation: operation,
	}
}

// Wrap creates a standardized error with context following the pattern:
// "component.method: action failed: %w"
func Wrap(err error, component, method, action string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s.%s: %s failed: %w", component, method, action, err)
}

// WrapTransient wraps an error as transient with context
func WrapTransient(err error, component, method, action string) error {
	if err == nil {
		return nil
	}
	wrappedErr := Wrap(err, component, method, action)
	return newClassified(ErrorTransient, wrappedErr, component, method, wrappedErr.Error())
}

// WrapFatal wraps an error as fatal with context
func WrapFatal(err error, component, method, action string) error {
	if err == nil {
		return nil
	}
	wrappedErr := Wrap(err, component, method, action)
	return newClassified(ErrorFatal, wrappedErr, component, method, wrappedErr.Error())
}

// WrapInvalid wraps an error as invalid with context
func WrapInvalid(err error, component, method, action string) error {
	if err == nil {
		return nil
	}
	wrappedErr := Wrap(err, component, method, action)
	return newClassified(ErrorInvalid, wrappedErr, component, method, wrappedErr.Error())
}

// New returns an error that formats as the given text. It is re-exported so
// callers do not need both this package and the standard library errors.
func New(text string) error {
	return errors.New(text)
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}
