package failure

import (
	"errors"
	"net/http"
)

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

var InvalidPageParam = &Failure{Code: http.StatusBadRequest, Message: "invalid page parameter"}
var InvalidLimitParam = &Failure{Code: http.StatusBadRequest, Message: "invalid limit parameter"}
var ForbiddenError = &Failure{Code: http.StatusForbidden, Message: "You don't have the required permissions"}
var ResourceRestrictedError = &Failure{Code: http.StatusForbidden, Message: "You don't have permission to access this resource"}

// Reservation lifecycle rejections. These are expected outcomes, not
// exceptions: callers match them with errors.Is to tell "nothing to do"
// apart from a bug.
var (
	SlotTaken           = &Failure{Code: http.StatusConflict, Message: "time slot is already booked"}
	PastDate            = &Failure{Code: http.StatusBadRequest, Message: "appointment must be in the future"}
	InvalidToken        = &Failure{Code: http.StatusForbidden, Message: "invalid confirmation token"}
	Expired             = &Failure{Code: http.StatusGone, Message: "appointment hold has expired"}
	AlreadyConfirmed    = &Failure{Code: http.StatusConflict, Message: "appointment is already confirmed"}
	AlreadyCancelled    = &Failure{Code: http.StatusConflict, Message: "appointment was cancelled"}
	NotYetDue           = &Failure{Code: http.StatusConflict, Message: "reservation is not due yet"}
	AlreadyReminded     = &Failure{Code: http.StatusConflict, Message: "reminder was already sent"}
	NoAppointment       = &Failure{Code: http.StatusBadRequest, Message: "no appointment date/time requested"}
	ReservationNotFound = &Failure{Code: http.StatusNotFound, Message: "reservation not found"}
)

// Collaborator failures. The state transition has already committed when
// these surface; they warn the operator rather than roll anything back.
var (
	CalendarSyncFailure = &Failure{Code: http.StatusBadGateway, Message: "calendar sync failed"}
	NotifierFailure     = &Failure{Code: http.StatusBadGateway, Message: "notification delivery failed"}
	StoreUnavailable    = &Failure{Code: http.StatusServiceUnavailable, Message: "reservation store unavailable"}
)

// Error returns the error code and message in a formatted string.
func (e *Failure) Error() string {
	return e.Message
}

// BadRequest returns a new Failure with code for bad requests.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		}
	}

	return nil
}

// BadRequestFromString returns a new Failure with code for bad requests with message set from string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: msg,
	}
}

// Unauthorized returns a new Failure with code for unauthorized requests.
func Unauthorized(msg string) error {
	return &Failure{
		Code:    http.StatusUnauthorized,
		Message: msg,
	}
}

// InternalError returns a new Failure with code for internal error and message derived from an error interface.
func InternalError(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusInternalServerError,
			Message: err.Error(),
		}
	}

	return nil
}

// Unimplemented returns a new Failure with code for unimplemented method.
func Unimplemented(methodName string) error {
	return &Failure{
		Code:    http.StatusNotImplemented,
		Message: methodName,
	}
}

// NotFound returns a new Failure with code for entity not found.
func NotFound(entityName string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Message: entityName,
	}
}

// Conflict returns a new Failure with code for conflict situations.
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

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}
