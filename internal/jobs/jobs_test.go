package jobs

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonCalendar/internal/domain"
	"github.com/m04kA/SMC-SalonCalendar/internal/service/reports/models"
	"github.com/m04kA/SMC-SalonCalendar/pkg/logger"
	"github.com/m04kA/SMC-SalonCalendar/pkg/ptr"
)

type fixedTime time.Time

func (f fixedTime) Now() time.Time {
	return time.Time(f)
}

type mockAppointments struct {
	mock.Mock
}

func (m *mockAppointments) List(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]*domain.Appointment), args.Error(1)
}

type stubClients map[int64]*domain.Client

func (s stubClients) GetByID(_ context.Context, id int64) (*domain.Client, error) {
	if c, ok := s[id]; ok {
		return c, nil
	}
	return nil, errors.New("not found")
}

type recordingSender struct {
	mu   sync.Mutex
	to   []string
	fail map[string]bool
}

func (r *recordingSender) Send(_ context.Context, to, _ string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fail[to] {
		return errors.New("twilio error")
	}
	r.to = append(r.to, to)
	return nil
}

var now = time.Date(2025, 6, 4, 9, 0, 0, 0, time.UTC)

func quietLogger() *logger.Logger {
	return logger.NewWithWriter(&bytes.Buffer{}, "error")
}

func TestReminder_SendsForTomorrow(t *testing.T) {
	tomorrow := time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC)
	repo := &mockAppointments{}
	repo.On("List", mock.Anything, mock.MatchedBy(func(f domain.AppointmentsFilter) bool {
		return f.StartDate.Equal(tomorrow) && f.EndDate.Equal(tomorrow) &&
			f.Status != nil && *f.Status == domain.StatusBooked
	})).Return([]*domain.Appointment{
		{ID: 1, ClientID: ptr.Ptr(int64(1)), Date: tomorrow, StartTime: "10:00"},
		{ID: 2, Date: tomorrow, StartTime: "11:00"}, // walk-in
		{ID: 3, ClientID: ptr.Ptr(int64(2)), Date: tomorrow, StartTime: "12:00"},
		{ID: 4, ClientID: ptr.Ptr(int64(3)), Date: tomorrow, StartTime: "13:00"},
		{ID: 5, ClientID: ptr.Ptr(int64(99)), Date: tomorrow, StartTime: "14:00"},
	}, nil)

	clients := stubClients{
		1: {ID: 1, Name: "Jane", Phone: "+971500000001"},
		2: {ID: 2, Name: "No Phone"},
		3: {ID: 3, Name: "Broken", Phone: "+971500000003"},
	}
	sender := &recordingSender{fail: map[string]bool{"+971500000003": true}}

	r := NewReminder(repo, clients, sender, "Lushways Salon", fixedTime(now), quietLogger())
	require.NoError(t, r.Run(context.Background()))

	assert.Equal(t, []string{"+971500000001"}, sender.to)
}

func TestReminder_ListError(t *testing.T) {
	repo := &mockAppointments{}
	repo.On("List", mock.Anything, mock.Anything).Return([]*domain.Appointment{}, errors.New("db down"))

	r := NewReminder(repo, stubClients{}, &recordingSender{}, "Lushways Salon", fixedTime(now), quietLogger())
	assert.Error(t, r.Run(context.Background()))
}

type stubTips struct {
	req *models.TipsRequest
}

func (s *stubTips) ExportTipsCSV(_ context.Context, req *models.TipsRequest) ([]byte, error) {
	s.req = req
	return []byte("Team member,Tips\n"), nil
}

func TestTipsExport_WritesDailyFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "exports")
	reports := &stubTips{}

	task := NewTipsExport(reports, dir, fixedTime(now), quietLogger())
	require.NoError(t, task.Run(context.Background()))

	data, err := os.ReadFile(filepath.Join(dir, "tips-2025-06-04.csv"))
	require.NoError(t, err)
	assert.Equal(t, "Team member,Tips\n", string(data))

	require.NotNil(t, reports.req.From)
	assert.True(t, reports.req.From.Equal(*reports.req.To))
}

type countingTask struct {
	mu    sync.Mutex
	calls int
}

func (c *countingTask) Name() string { return "counting" }

func (c *countingTask) Run(context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls++
	return nil
}

func TestScheduler_RejectsInvalidSchedule(t *testing.T) {
	s := NewScheduler(time.UTC, time.Second, quietLogger())
	assert.Error(t, s.Add("not a schedule", &countingTask{}))
	assert.NoError(t, s.Add("0 9 * * *", &countingTask{}))
}

func TestScheduler_StartStop(t *testing.T) {
	s := NewScheduler(time.UTC, time.Second, quietLogger())
	require.NoError(t, s.Add("@every 1h", &countingTask{}))

	s.Start()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	assert.NoError(t, s.Stop(ctx))
}

func TestScheduler_RunTaskUsesTimeout(t *testing.T) {
	s := NewScheduler(time.UTC, time.Second, quietLogger())
	task := &countingTask{}
	s.runTask(task)
	assert.Equal(t, 1, task.calls)
}
