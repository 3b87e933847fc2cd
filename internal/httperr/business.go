package httperr

import "errors"

// CodeInvalidTimeRange marks an interval whose end precedes its start.
const CodeInvalidTimeRange = "invalid_time_range"

type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}
