package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonCalendar/pkg/types"
)

func TestScheduleServices_Cumulative(t *testing.T) {
	services := []*AppointmentService{
		{ID: "S1", Duration: "1h"},
		{ID: "S2", Duration: "20min"},
		{ID: "S3", Duration: "unknown"},
	}

	end, err := ScheduleServices("10:00", services)
	require.NoError(t, err)

	assert.Equal(t, types.TimeString("10:00"), services[0].StartTime)
	assert.Equal(t, types.TimeString("11:00"), services[1].StartTime)
	assert.Equal(t, types.TimeString("11:20"), services[2].StartTime)
	assert.Equal(t, types.TimeString("11:20"), end)
	assert.Equal(t, 2, services[2].Position)
}

func TestRecalculateBounds(t *testing.T) {
	a := &Appointment{
		StaffID:   1,
		StartTime: "10:00",
		EndTime:   "11:20",
		Services: []*AppointmentService{
			{ID: "S1", StaffID: 1, StartTime: "12:00", Duration: "1h"},
			{ID: "S2", StaffID: 2, StartTime: "09:30", Duration: "20min"},
		},
	}

	require.NoError(t, a.RecalculateBounds())

	assert.Equal(t, int64(2), a.StaffID)
	assert.Equal(t, types.TimeString("09:30"), a.StartTime)
	assert.Equal(t, types.TimeString("13:00"), a.EndTime)
}

func TestAppointment_StatusRules(t *testing.T) {
	booked := &Appointment{Status: StatusBooked, Services: []*AppointmentService{{ID: "S1"}}}
	assert.True(t, booked.IsActive())
	assert.True(t, booked.CanBeEdited())
	assert.True(t, booked.CanBeCancelled())
	assert.True(t, booked.CanBePaid())

	completed := &Appointment{Status: StatusCompleted}
	assert.True(t, completed.IsActive())
	assert.False(t, completed.CanBeEdited())
	assert.False(t, completed.CanBeCancelled())
	assert.False(t, completed.CanBePaid())

	cancelled := &Appointment{Status: StatusCancelled}
	assert.False(t, cancelled.IsActive())

	assert.False(t, (&Appointment{Status: StatusBooked}).CanBePaid())
}

func TestAppointment_DisplayClientName(t *testing.T) {
	assert.Equal(t, "Walk-In", (&Appointment{}).DisplayClientName())

	id := int64(7)
	assert.Equal(t, "Fatima", (&Appointment{ClientID: &id, ClientName: "Fatima"}).DisplayClientName())
}

func TestClient_InitialAndMatches(t *testing.T) {
	c := &Client{Name: "élise Martin", Phone: "+971501234567"}

	assert.Equal(t, "É", c.Initial())
	assert.True(t, c.Matches("MARTIN"))
	assert.True(t, c.Matches("50123"))
	assert.True(t, c.Matches(""))
	assert.False(t, c.Matches("John"))
}

func TestNewServiceLineID(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		id := NewServiceLineID()
		assert.True(t, IsValidServiceLineID(id), id)
		seen[id] = struct{}{}
	}
	assert.Len(t, seen, 100)

	assert.False(t, IsValidServiceLineID("abc12345"))
	assert.False(t, IsValidServiceLineID("ABC123"))
}

func TestNewAppointmentService_CopiesCatalog(t *testing.T) {
	catalog := &CatalogService{ID: 4, Name: "Balayage", Duration: "3h", Price: "from AED 650", Category: "Color"}
	s := NewAppointmentService(catalog, NewStaff(2, "Maria"), decimal.NewFromInt(15))

	assert.True(t, IsValidServiceLineID(s.ID))
	assert.Equal(t, int64(4), s.CatalogServiceID)
	assert.Equal(t, "Maria", s.StaffName)
	assert.Equal(t, 180, s.DurationMinutes())
	assert.Equal(t, "15", s.Tip.String())
}
