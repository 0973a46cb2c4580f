package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonCalendar/pkg/types"
)

func appointmentAt(id, staffID int64, date time.Time, start, end types.TimeString) *Appointment {
	return &Appointment{
		ID:        id,
		StaffID:   staffID,
		Date:      date,
		StartTime: start,
		EndTime:   end,
		Status:    StatusBooked,
	}
}

func TestIsSlotBooked(t *testing.T) {
	date := time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC)
	appointments := []*Appointment{
		appointmentAt(1, 10, date, "10:00", "11:00"),
		appointmentAt(2, 20, date, "10:00", "10:30"),
	}

	tests := []struct {
		name    string
		staffID int64
		date    time.Time
		slot    types.TimeString
		exclude *int64
		want    bool
	}{
		{"start is booked", 10, date, "10:00", nil, true},
		{"inside is booked", 10, date, "10:45", nil, true},
		{"end is free", 10, date, "11:00", nil, false},
		{"before start is free", 10, date, "09:45", nil, false},
		{"other staff", 30, date, "10:15", nil, false},
		{"other date", 10, date.AddDate(0, 0, 1), "10:15", nil, false},
		{"excluded appointment does not block", 10, date, "10:15", int64Ptr(1), false},
		{"exclusion is per appointment", 20, date, "10:15", int64Ptr(1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsSlotBooked(appointments, tt.staffID, tt.date, tt.slot, tt.exclude))
		})
	}
}

func TestIsSlotBooked_IgnoresInactive(t *testing.T) {
	date := time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC)
	cancelled := appointmentAt(1, 10, date, "10:00", "11:00")
	cancelled.Status = StatusCancelled
	noShow := appointmentAt(2, 10, date, "12:00", "13:00")
	noShow.Status = StatusNoShow
	completed := appointmentAt(3, 10, date, "14:00", "15:00")
	completed.Status = StatusCompleted

	list := []*Appointment{cancelled, noShow, completed}

	assert.False(t, IsSlotBooked(list, 10, date, "10:00", nil))
	assert.False(t, IsSlotBooked(list, 10, date, "12:30", nil))
	assert.True(t, IsSlotBooked(list, 10, date, "14:30", nil))
}

func serviceLine(id string, staffID int64, start types.TimeString, duration string) *AppointmentService {
	return &AppointmentService{ID: id, StaffID: staffID, StartTime: start, Duration: duration}
}

// twoLineAppointment запись 10:00-12:00: A у мастера 1 в 10:00, B у мастера 1 в 11:00
func twoLineAppointment(date time.Time) *Appointment {
	a := appointmentAt(7, 1, date, "10:00", "12:00")
	a.Services = []*AppointmentService{
		serviceLine("AAAA1111", 1, "10:00", "1h"),
		serviceLine("BBBB2222", 1, "11:00", "1h"),
	}
	return a
}

func TestIsSlotBooked_UsesServiceStaffAndTime(t *testing.T) {
	date := time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC)
	a := twoLineAppointment(date)
	// B перенесена к мастеру 2 на 14:00, запись растянулась до 15:00
	a.Services[1].StaffID = 2
	a.Services[1].StartTime = "14:00"
	require.NoError(t, a.RecalculateBounds())
	require.Equal(t, types.TimeString("15:00"), a.EndTime)

	list := []*Appointment{a}

	assert.True(t, IsSlotBooked(list, 1, date, "10:30", nil))
	assert.False(t, IsSlotBooked(list, 1, date, "11:00", nil))
	assert.False(t, IsSlotBooked(list, 1, date, "13:00", nil))
	assert.False(t, IsSlotBooked(list, 1, date, "14:00", nil))
	assert.True(t, IsSlotBooked(list, 2, date, "14:00", nil))
	assert.True(t, IsSlotBooked(list, 2, date, "14:45", nil))
	assert.False(t, IsSlotBooked(list, 2, date, "15:00", nil))
	assert.False(t, IsSlotBooked(list, 2, date, "10:00", nil))
}

func TestFindConflict(t *testing.T) {
	date := time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC)
	existing := twoLineAppointment(date)
	existing.Services[1].StaffID = 2
	list := []*Appointment{existing}

	t.Run("free for every service staff", func(t *testing.T) {
		conflict, err := FindConflict(list, date, []*AppointmentService{
			serviceLine("", 2, "10:00", "1h"),
			serviceLine("", 1, "11:00", "30 min"),
		}, nil)
		require.NoError(t, err)
		assert.Nil(t, conflict)
	})

	t.Run("second service hits its own staff", func(t *testing.T) {
		conflict, err := FindConflict(list, date, []*AppointmentService{
			serviceLine("", 1, "09:00", "1h"),
			serviceLine("", 2, "10:00", "2h"),
		}, nil)
		require.NoError(t, err)
		require.NotNil(t, conflict)
		assert.Equal(t, SlotConflict{StaffID: 2, Slot: "11:00"}, *conflict)
	})

	t.Run("excluded appointment does not block", func(t *testing.T) {
		conflict, err := FindConflict(list, date, []*AppointmentService{
			serviceLine("", 2, "11:00", "1h"),
		}, int64Ptr(existing.ID))
		require.NoError(t, err)
		assert.Nil(t, conflict)
	})

	t.Run("legacy appointment without services", func(t *testing.T) {
		legacy := []*Appointment{appointmentAt(1, 10, date, "10:30", "11:00")}
		conflict, err := FindConflict(legacy, date, []*AppointmentService{serviceLine("", 10, "10:00", "1h")}, nil)
		require.NoError(t, err)
		require.NotNil(t, conflict)
		assert.Equal(t, types.TimeString("10:30"), conflict.Slot)
	})
}

func TestFindMoveConflict_SiblingServicesStillCount(t *testing.T) {
	date := time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC)
	a := twoLineAppointment(date)
	list := []*Appointment{a}

	// B на место A у того же мастера: A остается на месте и мешает
	moved := *a.Services[1]
	moved.StartTime = "10:30"
	conflict, err := FindMoveConflict(list, date, a.ID, &moved)
	require.NoError(t, err)
	require.NotNil(t, conflict)
	assert.Equal(t, types.TimeString("10:30"), conflict.Slot)

	// B внутри своего же старого интервала
	moved = *a.Services[1]
	moved.StartTime = "11:15"
	conflict, err = FindMoveConflict(list, date, a.ID, &moved)
	require.NoError(t, err)
	assert.Nil(t, conflict)

	// B к другому мастеру
	moved = *a.Services[1]
	moved.StaffID = 2
	moved.StartTime = "10:00"
	conflict, err = FindMoveConflict(list, date, a.ID, &moved)
	require.NoError(t, err)
	assert.Nil(t, conflict)
}

func TestServiceStaffIDs(t *testing.T) {
	ids := ServiceStaffIDs([]*AppointmentService{
		serviceLine("", 3, "10:00", "1h"),
		serviceLine("", 1, "11:00", "1h"),
		serviceLine("", 3, "12:00", "1h"),
	})
	assert.Equal(t, []int64{3, 1}, ids)
}

func int64Ptr(v int64) *int64 { return &v }
