package domain

import (
	"time"

	"github.com/m04kA/SMC-SalonCalendar/pkg/types"
)

// Block интервал [Start, End) времени мастера, занятый записью
// У записи с услугами каждый блок - строка услуги со своим мастером и временем.
// Запись без услуг занимает свой интервал у мастера записи.
type Block struct {
	Appointment *Appointment
	Service     *AppointmentService // nil для записи без услуг
	StaffID     int64
	Start       types.TimeString
	End         types.TimeString
}

// Blocks раскладывает записи на интервалы занятости мастеров
// Строки услуг с некорректным временем пропускаются.
func Blocks(appointments []*Appointment) []Block {
	blocks := make([]Block, 0, len(appointments))
	for _, a := range appointments {
		if len(a.Services) == 0 {
			blocks = append(blocks, Block{Appointment: a, StaffID: a.StaffID, Start: a.StartTime, End: a.EndTime})
			continue
		}
		for _, s := range a.Services {
			end, err := s.EndTime()
			if err != nil {
				continue
			}
			blocks = append(blocks, Block{Appointment: a, Service: s, StaffID: s.StaffID, Start: s.StartTime, End: end})
		}
	}
	return blocks
}

// IsSlotBooked проверяет, занят ли слот мастера на дату
// Слот занят, если у активной записи на эту дату есть услуга мастера с start <= slot < end.
// Запись excludeID (редактируемая) никогда не блокирует слот.
func IsSlotBooked(appointments []*Appointment, staffID int64, date time.Time, slot types.TimeString, excludeID *int64) bool {
	return isBooked(Blocks(appointments), staffID, date, slot, func(b Block) bool {
		return excludeID != nil && b.Appointment.ID == *excludeID
	})
}

func isBooked(blocks []Block, staffID int64, date time.Time, slot types.TimeString, skip func(Block) bool) bool {
	for _, b := range blocks {
		if b.StaffID != staffID || !b.Appointment.IsActive() || !SameDay(b.Appointment.Date, date) {
			continue
		}
		if skip(b) {
			continue
		}
		if !slot.IsBefore(b.Start) && slot.IsBefore(b.End) {
			return true
		}
	}
	return false
}

// SlotConflict первый занятый слот у мастера
type SlotConflict struct {
	StaffID int64
	Slot    types.TimeString
}

// FindConflict проверяет, что все слоты каждой услуги свободны у ее мастера
// Запись excludeID не учитывается. Возвращает nil, если конфликтов нет.
func FindConflict(appointments []*Appointment, date time.Time, services []*AppointmentService, excludeID *int64) (*SlotConflict, error) {
	return findConflict(Blocks(appointments), date, services, func(b Block) bool {
		return excludeID != nil && b.Appointment.ID == *excludeID
	})
}

// FindMoveConflict проверяет новое положение услуги moved записи appointmentID
// Не учитывается только сама переносимая строка, остальные услуги записи занимают время.
func FindMoveConflict(appointments []*Appointment, date time.Time, appointmentID int64, moved *AppointmentService) (*SlotConflict, error) {
	return findConflict(Blocks(appointments), date, []*AppointmentService{moved}, func(b Block) bool {
		return b.Appointment.ID == appointmentID && b.Service != nil && b.Service.ID == moved.ID
	})
}

func findConflict(blocks []Block, date time.Time, services []*AppointmentService, skip func(Block) bool) (*SlotConflict, error) {
	for _, s := range services {
		end, err := s.EndTime()
		if err != nil {
			return nil, err
		}
		slots, err := SlotsBetween(s.StartTime, end)
		if err != nil {
			return nil, err
		}
		for _, slot := range slots {
			if isBooked(blocks, s.StaffID, date, slot, skip) {
				return &SlotConflict{StaffID: s.StaffID, Slot: slot}, nil
			}
		}
	}
	return nil, nil
}

// ServiceStaffIDs мастера услуг без повторов, в порядке услуг
func ServiceStaffIDs(services []*AppointmentService) []int64 {
	seen := make(map[int64]struct{}, len(services))
	ids := make([]int64, 0, len(services))
	for _, s := range services {
		if _, ok := seen[s.StaffID]; ok {
			continue
		}
		seen[s.StaffID] = struct{}{}
		ids = append(ids, s.StaffID)
	}
	return ids
}
