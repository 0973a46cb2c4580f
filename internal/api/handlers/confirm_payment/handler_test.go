package confirm_payment

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-SalonCalendar/internal/domain"
	confirmPayment "github.com/m04kA/SMC-SalonCalendar/internal/usecase/confirm_payment"
	"github.com/m04kA/SMC-SalonCalendar/pkg/logger"
	"github.com/m04kA/SMC-SalonCalendar/pkg/ptr"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Execute(ctx context.Context, req *confirmPayment.Request) (*confirmPayment.Response, error) {
	args := m.Called(ctx, req)
	if resp := args.Get(0); resp != nil {
		return resp.(*confirmPayment.Response), args.Error(1)
	}
	return nil, args.Error(1)
}

func serve(uc *mockUseCase, payload string) *httptest.ResponseRecorder {
	h := NewHandler(uc, logger.NewWithWriter(&bytes.Buffer{}, "error"))
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(payload))
	req = mux.SetURLVars(req, map[string]string{"appointmentId": "7"})
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_Paid(t *testing.T) {
	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, &confirmPayment.Request{AppointmentID: 7, PaymentMethod: "card"}).
		Return(&confirmPayment.Response{
			Appointment: &domain.Appointment{
				ID: 7, Date: time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC), StartTime: "10:00", EndTime: "11:00",
				Status: domain.StatusCompleted, PaymentRef: ptr.Ptr("LushwaysBarsha000001"),
			},
			Sale: &domain.Sale{
				PaymentRef: "LushwaysBarsha000001", PaymentMethod: domain.PaymentCard, AppointmentID: 7,
				Subtotal: decimal.NewFromInt(160), Tax: decimal.NewFromInt(8), Total: decimal.NewFromInt(168),
				Tips: decimal.NewFromInt(10),
			},
		}, nil)

	rec := serve(uc, `{"paymentMethod":"card"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "LushwaysBarsha000001")
	assert.Contains(t, rec.Body.String(), `"status":"completed"`)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"method", confirmPayment.ErrInvalidPaymentMethod, http.StatusBadRequest},
		{"missing", confirmPayment.ErrAppointmentNotFound, http.StatusNotFound},
		{"already paid", confirmPayment.ErrCannotPay, http.StatusUnprocessableEntity},
		{"price", confirmPayment.ErrInvalidPrice, http.StatusUnprocessableEntity},
		{"internal", confirmPayment.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{}
			uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.err)
			assert.Equal(t, tt.status, serve(uc, `{"paymentMethod":"cash"}`).Code)
		})
	}
}
