package reports

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/m04kA/SMC-SalonCalendar/internal/domain"
	saleRepo "github.com/m04kA/SMC-SalonCalendar/internal/infra/storage/sale"
	"github.com/m04kA/SMC-SalonCalendar/internal/service/reports/models"
	"github.com/m04kA/SMC-SalonCalendar/pkg/logger"
	"github.com/m04kA/SMC-SalonCalendar/pkg/ptr"
)

type mockSales struct {
	mock.Mock
}

func (m *mockSales) GetByPaymentRef(ctx context.Context, paymentRef string) (*domain.Sale, error) {
	args := m.Called(ctx, paymentRef)
	if s := args.Get(0); s != nil {
		return s.(*domain.Sale), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockSales) ListSalesLog(ctx context.Context, filter domain.SalesLogFilter) ([]*domain.SalesLogEntry, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]*domain.SalesLogEntry), args.Error(1)
}

type stubAppointments struct {
	appointments []*domain.Appointment
}

func (s *stubAppointments) List(context.Context, domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	return s.appointments, nil
}

type stubStaff struct {
	staff []*domain.Staff
}

func (s *stubStaff) List(context.Context) ([]*domain.Staff, error) {
	return s.staff, nil
}

var day = time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC)

func entry(member, item string, price, tip int64, at time.Time) *domain.SalesLogEntry {
	amount := decimal.NewFromInt(price + tip)
	return &domain.SalesLogEntry{
		SaleDate:    at,
		ServiceID:   "a1b2c3d4",
		Location:    domain.DefaultLocationName,
		Type:        domain.SalesLogTypeService,
		Item:        item,
		Client:      "Jane Doe",
		TeamMember:  member,
		Channel:     domain.SalesLogChannel,
		GrossSales:  amount,
		NetSales:    amount,
		Taxes:       domain.TaxOf(amount),
		TotalSales:  amount,
		PaymentType: domain.PaymentCash,
		Tip:         decimal.NewFromInt(tip),
		PaymentRef:  "LushwaysBarsha000001",
	}
}

func newTestService(sales *mockSales, appointments *stubAppointments, staff *stubStaff) *Service {
	return NewService(sales, appointments, staff, logger.NewWithWriter(&bytes.Buffer{}, "error"))
}

func TestService_SalesLogUsesDefaultLimit(t *testing.T) {
	sales := &mockSales{}
	sales.On("ListSalesLog", mock.Anything, domain.SalesLogFilter{Search: "cut", Limit: domain.DefaultSalesLogSearchLimit}).
		Return([]*domain.SalesLogEntry{entry("Anna", "Haircut", 100, 10, day.Add(10*time.Hour))}, nil)

	resp, err := newTestService(sales, &stubAppointments{}, &stubStaff{}).
		SalesLog(context.Background(), &models.SalesLogRequest{Search: " cut "})
	require.NoError(t, err)
	require.Len(t, resp.Entries, 1)
	assert.Equal(t, "110.00", resp.Entries[0].TotalSales)
	assert.Equal(t, "5.50", resp.Entries[0].Taxes)
}

func TestService_SalesLogRejectsInvertedPeriod(t *testing.T) {
	_, err := newTestService(&mockSales{}, &stubAppointments{}, &stubStaff{}).
		SalesLog(context.Background(), &models.SalesLogRequest{From: ptr.Ptr(day), To: ptr.Ptr(day.AddDate(0, 0, -1))})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_ExportSalesLogXLSX(t *testing.T) {
	sales := &mockSales{}
	sales.On("ListSalesLog", mock.Anything, mock.Anything).
		Return([]*domain.SalesLogEntry{entry("Anna", "Haircut", 100, 10, day.Add(10*time.Hour))}, nil)

	data, err := newTestService(sales, &stubAppointments{}, &stubStaff{}).
		ExportSalesLogXLSX(context.Background(), &models.SalesLogRequest{})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(salesLogSheet)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, domain.SalesLogHeaders, rows[0])
	assert.Equal(t, "2025-06-04 10:00", rows[1][0])
	assert.Equal(t, "Haircut", rows[1][4])
	assert.Equal(t, "cash", rows[1][17])
}

func TestService_ExportTipsCSV(t *testing.T) {
	sales := &mockSales{}
	sales.On("ListSalesLog", mock.Anything, mock.Anything).Return([]*domain.SalesLogEntry{
		entry("Maria", "Fringe", 50, 5, day.Add(11*time.Hour)),
		entry("Anna", "Haircut", 100, 10, day.Add(10*time.Hour)),
		entry("Anna", "Blow Dry", 80, 0, day.Add(12*time.Hour)),
		entry("", "Retail", 30, 3, day.Add(13*time.Hour)),
	}, nil)

	data, err := newTestService(sales, &stubAppointments{}, &stubStaff{}).
		ExportTipsCSV(context.Background(), &models.TipsRequest{})
	require.NoError(t, err)

	expected := "Team member,Tips collected,Tips refunded,Total tips\n" +
		"Total,15.00,0.00,15.00\n" +
		"Anna,10.00,0.00,10.00\n" +
		"Maria,5.00,0.00,5.00\n"
	assert.Equal(t, expected, string(data))
}

func TestService_TipDetails(t *testing.T) {
	sales := &mockSales{}
	sales.On("ListSalesLog", mock.Anything, domain.SalesLogFilter{TeamMember: "Anna"}).Return([]*domain.SalesLogEntry{
		entry("Anna", "Color", 300, 20, day.Add(15*time.Hour)),
		entry("Anna", "Haircut", 100, 10, day.Add(10*time.Hour)),
	}, nil)

	svc := newTestService(sales, &stubAppointments{}, &stubStaff{})

	resp, err := svc.TipDetails(context.Background(), "Anna", &models.TipsRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Entries, 2)
	assert.Equal(t, "Haircut", resp.Entries[0].Item)
	assert.Equal(t, "30.00", resp.Total)

	_, err = svc.TipDetails(context.Background(), " ", &models.TipsRequest{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_TeamPerformance(t *testing.T) {
	sales := &mockSales{}
	sales.On("ListSalesLog", mock.Anything, mock.Anything).
		Return([]*domain.SalesLogEntry{entry("Anna", "Haircut", 100, 10, day.Add(10*time.Hour))}, nil)

	appointments := &stubAppointments{appointments: []*domain.Appointment{{
		ID:       1,
		ClientID: ptr.Ptr(int64(3)),
		StaffID:  1,
		Date:     day,
		Status:   domain.StatusCompleted,
		Services: []*domain.AppointmentService{{StaffID: 1, Duration: "1h", StartTime: "10:00"}},
	}}}
	staff := &stubStaff{staff: []*domain.Staff{domain.NewStaff(1, "Anna")}}

	resp, err := newTestService(sales, appointments, staff).
		TeamPerformance(context.Background(), &models.TeamPerformanceRequest{From: day, To: day})
	require.NoError(t, err)
	require.Len(t, resp.Members, 1)

	anna := resp.Members[0]
	assert.Equal(t, "110.00", anna.Sales)
	assert.Equal(t, 1, anna.TotalBookings)
	assert.Equal(t, 1, anna.CompletedBookings)
	assert.Equal(t, 1.0, anna.BookedHours)
	assert.Equal(t, 16.0, anna.ScheduledHours)
	assert.Equal(t, 6.3, anna.OccupancyPercent)
}

func TestService_GetSale(t *testing.T) {
	sales := &mockSales{}
	sales.On("GetByPaymentRef", mock.Anything, "LushwaysBarsha000001").Return(&domain.Sale{
		ID:            1,
		PaymentRef:    "LushwaysBarsha000001",
		PaymentMethod: domain.PaymentCard,
		Total:         decimal.NewFromInt(168),
	}, nil)
	sales.On("GetByPaymentRef", mock.Anything, "missing").Return(nil, saleRepo.ErrSaleNotFound)

	svc := newTestService(sales, &stubAppointments{}, &stubStaff{})

	resp, err := svc.GetSale(context.Background(), "LushwaysBarsha000001")
	require.NoError(t, err)
	assert.Equal(t, "168.00", resp.Total)
	assert.Equal(t, "card", resp.PaymentMethod)

	_, err = svc.GetSale(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrSaleNotFound)
}
