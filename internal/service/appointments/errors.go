package appointments

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("appointments: appointment not found")

	// ErrCannotCancel возвращается, когда запись уже оплачена или отменена
	ErrCannotCancel = errors.New("appointments: appointment cannot be cancelled")

	// ErrInvalidReason возвращается при некорректной причине отмены
	ErrInvalidReason = errors.New("appointments: invalid cancellation reason")

	// ErrInvalidPrice возвращается, когда цену услуги нельзя разобрать
	ErrInvalidPrice = errors.New("appointments: invalid service price")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("appointments: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("appointments: internal error")
)
