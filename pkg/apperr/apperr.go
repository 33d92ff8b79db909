package apperr

import "errors"

const (
	CodeConfig        = "config"
	CodeNotFound      = "not_found"
	CodeClientRequest = "client_request"
	CodeTransport     = "transport"
	CodeDelivery      = "delivery"
)

// Error carries a machine-readable code alongside the message so callers can
// decide between abort and continue without matching on strings.
type Error struct {
	Code    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func New(code, message string) error {
	return &Error{Code: code, Message: message}
}

func Wrap(code, message string, err error) error {
	return &Error{Code: code, Message: message, Err: err}
}

func IsCode(err error, code string) bool {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}
