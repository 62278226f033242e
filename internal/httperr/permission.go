package httperr

import "errors"

type PermissionError struct {
	Code string
}

func (e PermissionError) Error() string {
	return e.Code
}

func ErrPermission(code string) error {
	return PermissionError{Code: code}
}

func IsPermission(err error) bool {
	var pe PermissionError
	return errors.As(err, &pe)
}
