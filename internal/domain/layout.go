package domain

import (
	"sort"
)

// Layout положение карточки услуги в колонке мастера
// Top и Height в единицах слотов (15 минут), Width и Left в процентах ширины колонки.
type Layout struct {
	AppointmentID   int64
	ServiceID       string // пусто для записи без услуг
	StaffID         int64
	ConcurrentCount int
	Position        int
	WidthPercent    float64
	LeftPercent     float64
	Top             float64
	Height          float64
}

// WidthPercent ширина карточки при count одновременных записях
// Больше 4 колонок не делим: карточки перекрываются.
func WidthPercent(count int) float64 {
	switch {
	case count <= 1:
		return 100
	case count == 2:
		return 50
	case count == 3:
		return 33.3
	default:
		return 25
	}
}

// LeftPercent смещение карточки по ее позиции среди пересекающихся
func LeftPercent(position, count int) float64 {
	return float64(position%MaxLayoutColumns) * WidthPercent(count)
}

// ComputeLayout рассчитывает раскладку блоков по колонкам мастеров
// Результат выровнен по индексам blocks. Блоки одного мастера, начало которых
// отличается меньше чем на 30 минут, считаются одновременными.
func ComputeLayout(blocks []Block) []Layout {
	byStaff := make(map[int64][]int)
	for i, b := range blocks {
		byStaff[b.StaffID] = append(byStaff[b.StaffID], i)
	}

	result := make([]Layout, len(blocks))
	for staffID, idx := range byStaff {
		sorted := make([]int, len(idx))
		copy(sorted, idx)
		sort.SliceStable(sorted, func(i, j int) bool {
			a, b := blocks[sorted[i]], blocks[sorted[j]]
			if a.Start != b.Start {
				return a.Start.IsBefore(b.Start)
			}
			if a.Appointment.ID != b.Appointment.ID {
				return a.Appointment.ID < b.Appointment.ID
			}
			return servicePosition(a) < servicePosition(b)
		})

		starts := make([]int, len(sorted))
		for i, bi := range sorted {
			starts[i], _ = blocks[bi].Start.Minutes()
		}

		for i, bi := range sorted {
			count, position := 0, 0
			for j := range sorted {
				if !withinTolerance(starts[i], starts[j]) {
					continue
				}
				count++
				if j < i {
					position++
				}
			}

			b := blocks[bi]
			duration, err := b.End.DiffMinutes(b.Start)
			if err != nil || duration < 0 {
				duration = 0
			}

			l := Layout{
				AppointmentID:   b.Appointment.ID,
				StaffID:         staffID,
				ConcurrentCount: count,
				Position:        position,
				WidthPercent:    WidthPercent(count),
				LeftPercent:     LeftPercent(position, count),
				Top:             float64(starts[i]-DayStartMinutes) / SlotMinutes,
				Height:          float64(duration) / SlotMinutes,
			}
			if b.Service != nil {
				l.ServiceID = b.Service.ID
			}
			result[bi] = l
		}
	}

	return result
}

func servicePosition(b Block) int {
	if b.Service == nil {
		return 0
	}
	return b.Service.Position
}

func withinTolerance(a, b int) bool {
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	return diff < OverlapToleranceMinutes
}
