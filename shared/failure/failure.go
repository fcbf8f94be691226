package failure

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrIllegalTransition marks a rejected booking status change.
var ErrIllegalTransition = errors.New("illegal status transition")

// Failure carries an HTTP status code next to the client-facing message.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	cause   error
}

var InvalidPageParam = &Failure{Code: http.StatusBadRequest, Message: "invalid page parameter"}
var InvalidLimitParam = &Failure{Code: http.StatusBadRequest, Message: "invalid limit parameter"}
var ForbiddenError = &Failure{Code: http.StatusForbidden, Message: "You don't have the required permissions"}
var ResourceRestrictedError = &Failure{Code: http.StatusForbidden, Message: "You don't have permission to access this resource"}

func (e *Failure) Error() string {
	return e.Message
}

func (e *Failure) Unwrap() error {
	return e.cause
}

func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		}
	}

	return nil
}

func BadRequestFromString(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: msg,
	}
}

// IllegalTransition reports a status change the lifecycle does not allow.
// It matches ErrIllegalTransition under errors.Is.
func IllegalTransition(from, to string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: fmt.Sprintf("cannot transition booking from %s to %s", from, to),
		cause:   ErrIllegalTransition,
	}
}

func Unauthorized(msg string) error {
	return &Failure{
		Code:    http.StatusUnauthorized,
		Message: msg,
	}
}

func InternalError(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusInternalServerError,
			Message: err.Error(),
		}
	}

	return nil
}

func Unimplemented(methodName string) error {
	return &Failure{
		Code:    http.StatusNotImplemented,
		Message: methodName,
	}
}

func NotFound(entityName string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Message: entityName,
	}
}

func Conflict(message string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Message: message,
	}
}

func Forbidden(msg string) error {
	return &Failure{
		Code:    http.StatusForbidden,
		Message: msg,
	}
}

// GetCode returns the HTTP code of the first Failure in err's chain, or 500.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// IsNotFound reports whether err carries a 404 Failure.
func IsNotFound(err error) bool {
	return GetCode(err) == http.StatusNotFound
}
