package api

import (
	"errors"
	"net/http"

	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/smithy-go"

	"github.com/jacentio/movietable/store"
)

// Kind classifies a failed invocation.
type Kind int

const (
	// KindMethodMismatch means the request used the wrong HTTP verb. It aborts
	// the invocation and is returned as the Lambda error.
	KindMethodMismatch Kind = iota + 1

	// KindStoreFailure means the DynamoDB call failed.
	KindStoreFailure

	// KindDecodeFailure means an item or request body could not be decoded,
	// including a point read that found nothing.
	KindDecodeFailure
)

func (k Kind) String() string {
	switch k {
	case KindMethodMismatch:
		return "method_mismatch"
	case KindStoreFailure:
		return "store_failure"
	case KindDecodeFailure:
		return "decode_failure"
	default:
		return "unknown"
	}
}

// Failure is the error value carried by a failed invocation.
type Failure struct {
	Kind Kind

	// StatusCode is the HTTP status returned to the caller.
	StatusCode int

	// Message is the JSON body text returned to the caller.
	Message string

	// Err is the underlying error, if any.
	Err error
}

func (f *Failure) Error() string {
	if f.Err != nil {
		return f.Kind.String() + ": " + f.Message + ": " + f.Err.Error()
	}
	return f.Kind.String() + ": " + f.Message
}

func (f *Failure) Unwrap() error {
	return f.Err
}

// statusFunc picks the response status for a store error.
type statusFunc func(err error) int

// storeStatus uses the HTTP status DynamoDB responded with, or fallback when
// the call never got a response.
func storeStatus(fallback int) statusFunc {
	return func(err error) int {
		var respErr *awshttp.ResponseError
		if errors.As(err, &respErr) && respErr.ResponseError != nil &&
			respErr.Response != nil && respErr.Response.Response != nil {
			if code := respErr.HTTPStatusCode(); code != 0 {
				return code
			}
		}
		return fallback
	}
}

// fixedStatus ignores the store's status.
func fixedStatus(code int) statusFunc {
	return func(error) int { return code }
}

// classify maps an error from the store into a Failure.
func classify(err error, status statusFunc) *Failure {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return &Failure{Kind: KindDecodeFailure, StatusCode: http.StatusBadRequest, Message: "Item not found", Err: err}
	case errors.Is(err, store.ErrDecode):
		return &Failure{Kind: KindDecodeFailure, StatusCode: http.StatusBadRequest, Message: "Stored item could not be decoded", Err: err}
	default:
		return &Failure{Kind: KindStoreFailure, StatusCode: status(err), Message: errorMessage(err), Err: err}
	}
}

// errorMessage prefers the service's own message over the SDK's wrapped text.
func errorMessage(err error) string {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) && apiErr.ErrorMessage() != "" {
		return apiErr.ErrorMessage()
	}
	return err.Error()
}
