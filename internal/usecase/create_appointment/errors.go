package create_appointment

import "errors"

var (
	// ErrClientNotFound возвращается, когда клиент не найден
	ErrClientNotFound = errors.New("create_appointment: client not found")

	// ErrStaffNotFound возвращается, когда мастер не найден
	ErrStaffNotFound = errors.New("create_appointment: staff member not found")

	// ErrServiceNotFound возвращается, когда услуга меню не найдена
	ErrServiceNotFound = errors.New("create_appointment: service not found")

	// ErrInvalidTimeSlot возвращается, когда время не совпадает с сеткой 08:00-23:45 или запись выходит за сутки
	ErrInvalidTimeSlot = errors.New("create_appointment: invalid time slot")

	// ErrSlotNotAvailable возвращается, когда хотя бы один слот интервала занят
	ErrSlotNotAvailable = errors.New("create_appointment: slot is not available")

	// ErrScheduleLocked возвращается, когда расписание мастера сейчас изменяет другой запрос
	ErrScheduleLocked = errors.New("create_appointment: staff schedule is locked")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)
