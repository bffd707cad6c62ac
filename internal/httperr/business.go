package httperr

import "errors"

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

// Códigos de negócio usados pelos usecases.
const (
	CodeSlotConflict    = "slot_conflict"
	CodeNotFound        = "not_found"
	CodeInvalidStatus   = "invalid_status"
	CodeInvalidDateTime = "invalid_date_or_time"
)
