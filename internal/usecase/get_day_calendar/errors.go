package get_day_calendar

import "errors"

var (
	// ErrInvalidInput возвращается при некорректной дате
	ErrInvalidInput = errors.New("get_day_calendar: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_day_calendar: internal error")
)
