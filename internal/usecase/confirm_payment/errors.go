package confirm_payment

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("confirm_payment: appointment not found")

	// ErrCannotPay возвращается, когда запись уже оплачена, отменена или без услуг
	ErrCannotPay = errors.New("confirm_payment: appointment cannot be paid")

	// ErrInvalidPaymentMethod возвращается при неизвестном способе оплаты
	ErrInvalidPaymentMethod = errors.New("confirm_payment: invalid payment method")

	// ErrInvalidPrice возвращается, когда цену услуги нельзя разобрать
	ErrInvalidPrice = errors.New("confirm_payment: invalid service price")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("confirm_payment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("confirm_payment: internal error")
)
