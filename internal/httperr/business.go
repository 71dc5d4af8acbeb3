package httperr

import "errors"

// BusinessError carries a machine-readable code from use cases up to
// the handlers, which translate it into an HTTP status and message.
type BusinessError struct {
	Code    string
	Message string
}

func (e BusinessError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Code
}

func ErrBusiness(code, message string) error {
	return BusinessError{Code: code, Message: message}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

func BusinessMessage(err error) (string, bool) {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Error(), true
	}
	return "", false
}
