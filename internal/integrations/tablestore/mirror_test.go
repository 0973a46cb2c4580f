package tablestore

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonCalendar/internal/domain"
	"github.com/m04kA/SMC-SalonCalendar/pkg/logger"
)

type recordedInsert struct {
	table string
	row   interface{}
}

type fakeInserter struct {
	inserts []recordedInsert
	failOn  string
	nextID  int64
}

func (f *fakeInserter) Insert(_ context.Context, table string, row interface{}) (int64, error) {
	if table == f.failOn {
		return 0, errors.New("remote unavailable")
	}
	f.inserts = append(f.inserts, recordedInsert{table: table, row: row})
	f.nextID++
	return f.nextID * 100, nil
}

func paidAppointment() (*domain.Appointment, *domain.Sale) {
	clientID := int64(7)
	createdAt := time.Date(2025, 6, 4, 12, 0, 0, 0, time.UTC)

	appointment := &domain.Appointment{
		ID:       1,
		ClientID: &clientID,
		Date:     time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC),
		Services: []*domain.AppointmentService{
			{ID: "AAAA1111", CatalogServiceID: 3, StaffID: 10, StartTime: "10:00", Tip: decimal.NewFromInt(10)},
			{ID: "BBBB2222", CatalogServiceID: 4, StaffID: 20, StartTime: "11:00"},
		},
	}
	sale := &domain.Sale{
		PaymentRef:    "LushwaysBarsha000001",
		PaymentMethod: domain.PaymentCash,
		ClientID:      &clientID,
		Total:         decimal.NewFromInt(168),
		Tax:           decimal.NewFromInt(8),
		Tips:          decimal.NewFromInt(10),
		CreatedAt:     createdAt,
		Lines: []*domain.SaleLine{
			{ServiceID: "AAAA1111", CatalogServiceID: 3, StaffID: 10, Price: decimal.NewFromInt(100), Tip: decimal.NewFromInt(10)},
			{ServiceID: "BBBB2222", CatalogServiceID: 4, StaffID: 20, Price: decimal.NewFromInt(50)},
		},
	}
	return appointment, sale
}

func TestMirror_InsertsInOrder(t *testing.T) {
	inserter := &fakeInserter{}
	mirror := NewMirror(inserter, logger.NewWithWriter(&bytes.Buffer{}, "error"))
	appointment, sale := paidAppointment()

	require.NoError(t, mirror.MirrorSale(context.Background(), appointment, sale))

	tables := make([]string, 0, len(inserter.inserts))
	for _, ins := range inserter.inserts {
		tables = append(tables, ins.table)
	}
	assert.Equal(t, []string{
		TableAppointments,
		TableAppointmentServices,
		TableAppointmentServices,
		TableSales,
		TableSalesServices,
		TableSalesServices,
	}, tables)

	apt := inserter.inserts[0].row.(AppointmentRow)
	assert.Equal(t, "completed", apt.Status)
	assert.Equal(t, "2025-06-04", apt.Date)
	assert.Equal(t, "LushwaysBarsha000001", apt.InvoiceID)

	svc := inserter.inserts[1].row.(AppointmentServiceRow)
	assert.Equal(t, int64(100), svc.AppointmentID)
	assert.Equal(t, "100", svc.Price.String())
	assert.True(t, svc.Discount.IsZero())

	saleRow := inserter.inserts[3].row.(SaleRow)
	assert.Equal(t, int64(100), saleRow.AppointmentID)
	assert.Equal(t, "cash", saleRow.PaymentType)

	line := inserter.inserts[5].row.(SaleServiceRow)
	assert.Equal(t, int64(400), line.SaleID)
	assert.Equal(t, int64(20), line.TeamMemberID)
}

func TestMirror_FirstErrorAborts(t *testing.T) {
	inserter := &fakeInserter{failOn: TableSales}
	mirror := NewMirror(inserter, logger.NewWithWriter(&bytes.Buffer{}, "error"))
	appointment, sale := paidAppointment()

	err := mirror.MirrorSale(context.Background(), appointment, sale)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "mirror sale LushwaysBarsha000001")
	assert.Len(t, inserter.inserts, 3)
	for _, ins := range inserter.inserts {
		assert.NotEqual(t, TableSalesServices, ins.table)
	}
}
