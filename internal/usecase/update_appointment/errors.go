package update_appointment

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("update_appointment: appointment not found")

	// ErrCannotEdit возвращается, когда запись уже оплачена или отменена
	ErrCannotEdit = errors.New("update_appointment: appointment cannot be edited")

	// ErrClientNotFound возвращается, когда клиент не найден
	ErrClientNotFound = errors.New("update_appointment: client not found")

	// ErrStaffNotFound возвращается, когда мастер не найден
	ErrStaffNotFound = errors.New("update_appointment: staff member not found")

	// ErrServiceNotFound возвращается, когда услуга меню не найдена
	ErrServiceNotFound = errors.New("update_appointment: service not found")

	// ErrInvalidTimeSlot возвращается, когда время не совпадает с сеткой или запись выходит за сутки
	ErrInvalidTimeSlot = errors.New("update_appointment: invalid time slot")

	// ErrSlotNotAvailable возвращается, когда новый интервал пересекается с другой записью
	ErrSlotNotAvailable = errors.New("update_appointment: slot is not available")

	// ErrScheduleLocked возвращается, когда расписание мастера сейчас изменяет другой запрос
	ErrScheduleLocked = errors.New("update_appointment: staff schedule is locked")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_appointment: internal error")
)
