package move_service

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("move_service: appointment not found")

	// ErrServiceNotFound возвращается, когда услуги нет в записи
	ErrServiceNotFound = errors.New("move_service: service not found in appointment")

	// ErrStaffNotFound возвращается, когда целевой мастер не найден
	ErrStaffNotFound = errors.New("move_service: staff member not found")

	// ErrCannotMove возвращается, когда запись уже оплачена или отменена
	ErrCannotMove = errors.New("move_service: appointment cannot be changed")

	// ErrInvalidTimeSlot возвращается, когда время не совпадает с сеткой или услуга выходит за сутки
	ErrInvalidTimeSlot = errors.New("move_service: invalid time slot")

	// ErrSlotNotAvailable возвращается, когда у целевого мастера время занято
	ErrSlotNotAvailable = errors.New("move_service: slot is not available")

	// ErrScheduleLocked возвращается, когда расписание мастера сейчас изменяет другой запрос
	ErrScheduleLocked = errors.New("move_service: staff schedule is locked")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("move_service: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("move_service: internal error")
)
