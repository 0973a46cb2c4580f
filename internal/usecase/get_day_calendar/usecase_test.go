package get_day_calendar

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonCalendar/internal/domain"
	"github.com/m04kA/SMC-SalonCalendar/pkg/logger"
)

type mockAppointments struct {
	mock.Mock
}

func (m *mockAppointments) List(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	args := m.Called(ctx, filter)
	if list := args.Get(0); list != nil {
		return list.([]*domain.Appointment), args.Error(1)
	}
	return nil, args.Error(1)
}

type stubStaff []*domain.Staff

func (s stubStaff) List(context.Context) ([]*domain.Staff, error) {
	return s, nil
}

type fixedTime time.Time

func (f fixedTime) Now() time.Time {
	return time.Time(f)
}

var testDate = time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC) // среда

func newUseCase(repo *mockAppointments, now time.Time) *UseCase {
	staff := stubStaff{domain.NewStaff(1, "Anna"), domain.NewStaff(2, "Maria")}
	return NewUseCase(repo, staff, fixedTime(now), logger.NewWithWriter(&bytes.Buffer{}, "error"))
}

func TestExecute_BuildsColumnsWithLayout(t *testing.T) {
	repo := &mockAppointments{}
	appointments := []*domain.Appointment{
		{ID: 1, StaffID: 1, Date: testDate, StartTime: "10:00", EndTime: "11:00", Status: domain.StatusBooked},
		{ID: 2, StaffID: 1, Date: testDate, StartTime: "10:15", EndTime: "10:45", Status: domain.StatusBooked},
		{ID: 3, StaffID: 9, Date: testDate, StartTime: "12:00", EndTime: "12:30", Status: domain.StatusBooked},
	}
	repo.On("List", mock.Anything, mock.MatchedBy(func(f domain.AppointmentsFilter) bool {
		return f.StartDate.Equal(testDate) && f.EndDate.Equal(testDate) && !f.IncludeInactive
	})).Return(appointments, nil)

	resp, err := newUseCase(repo, testDate.AddDate(0, 0, 1)).Execute(context.Background(), &Request{Date: testDate})
	require.NoError(t, err)

	assert.Len(t, resp.TimeSlots, domain.SlotsPerDay)
	require.Len(t, resp.WeekDates, 7)
	assert.Equal(t, time.Monday, resp.WeekDates[0].Weekday())
	assert.Nil(t, resp.CurrentTimeOffset)

	require.Len(t, resp.Columns, 2)
	anna := resp.Columns[0]
	assert.Equal(t, "Anna", anna.Staff.Name)
	require.Len(t, anna.Appointments, 2)
	assert.Equal(t, 2, anna.Appointments[0].Layout.ConcurrentCount)
	assert.Equal(t, 50.0, anna.Appointments[1].Layout.WidthPercent)
	assert.Equal(t, 50.0, anna.Appointments[1].Layout.LeftPercent)

	assert.Empty(t, resp.Columns[1].Appointments)
	assert.NotNil(t, resp.Columns[1].Appointments)
}

func TestExecute_ServiceCardsGoToTheirStaffColumns(t *testing.T) {
	repo := &mockAppointments{}
	// A у Anna 10:00-11:00, B перенесена к Maria на 14:00
	split := &domain.Appointment{
		ID: 7, StaffID: 1, Date: testDate, StartTime: "10:00", EndTime: "15:00", Status: domain.StatusBooked,
		Services: []*domain.AppointmentService{
			{ID: "AAAA1111", Duration: "1h", StaffID: 1, StartTime: "10:00", Position: 0},
			{ID: "BBBB2222", Duration: "1h", StaffID: 2, StartTime: "14:00", Position: 1},
		},
	}
	// запись Maria в 14:15 должна делить колонку с B, а не с записью 7 целиком
	maria := &domain.Appointment{
		ID: 8, StaffID: 2, Date: testDate, StartTime: "14:15", EndTime: "14:45", Status: domain.StatusBooked,
		Services: []*domain.AppointmentService{{ID: "CCCC3333", Duration: "30min", StaffID: 2, StartTime: "14:15"}},
	}
	repo.On("List", mock.Anything, mock.Anything).Return([]*domain.Appointment{split, maria}, nil)

	resp, err := newUseCase(repo, testDate).Execute(context.Background(), &Request{Date: testDate})
	require.NoError(t, err)
	require.Len(t, resp.Columns, 2)

	anna := resp.Columns[0].Appointments
	require.Len(t, anna, 1)
	assert.Equal(t, "AAAA1111", anna[0].Service.ID)
	assert.Equal(t, 8.0, anna[0].Layout.Top)
	assert.Equal(t, 4.0, anna[0].Layout.Height)
	assert.Equal(t, 1, anna[0].Layout.ConcurrentCount)

	mariaCards := resp.Columns[1].Appointments
	require.Len(t, mariaCards, 2)
	assert.Equal(t, "BBBB2222", mariaCards[0].Service.ID)
	assert.Equal(t, int64(7), mariaCards[0].Appointment.ID)
	assert.Equal(t, 24.0, mariaCards[0].Layout.Top)
	assert.Equal(t, 4.0, mariaCards[0].Layout.Height)
	assert.Equal(t, 2, mariaCards[0].Layout.ConcurrentCount)
	assert.Equal(t, "CCCC3333", mariaCards[1].Service.ID)
	assert.Equal(t, 50.0, mariaCards[1].Layout.LeftPercent)
}

func TestExecute_CurrentTimeOffsetToday(t *testing.T) {
	repo := &mockAppointments{}
	repo.On("List", mock.Anything, mock.Anything).Return([]*domain.Appointment{}, nil)

	now := time.Date(2025, 6, 4, 9, 30, 0, 0, time.UTC)
	resp, err := newUseCase(repo, now).Execute(context.Background(), &Request{Date: testDate})
	require.NoError(t, err)
	require.NotNil(t, resp.CurrentTimeOffset)
	assert.Equal(t, 90, *resp.CurrentTimeOffset)
}

func TestExecute_ZeroDate(t *testing.T) {
	_, err := newUseCase(&mockAppointments{}, testDate).Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_RepositoryError(t *testing.T) {
	repo := &mockAppointments{}
	repo.On("List", mock.Anything, mock.Anything).Return(nil, errors.New("db down"))

	_, err := newUseCase(repo, testDate).Execute(context.Background(), &Request{Date: testDate})
	assert.ErrorIs(t, err, ErrInternal)
}
