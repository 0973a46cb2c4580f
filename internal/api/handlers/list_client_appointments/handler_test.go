package list_client_appointments

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-SalonCalendar/internal/service/appointments"
	"github.com/m04kA/SMC-SalonCalendar/internal/service/appointments/models"
	"github.com/m04kA/SMC-SalonCalendar/pkg/logger"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) ListByClient(ctx context.Context, req *models.ClientAppointmentsRequest) (*models.AppointmentListResponse, error) {
	args := m.Called(ctx, req)
	if resp := args.Get(0); resp != nil {
		return resp.(*models.AppointmentListResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func serve(svc *mockService, clientID, query string) *httptest.ResponseRecorder {
	h := NewHandler(svc, logger.NewWithWriter(&bytes.Buffer{}, "error"))
	req := httptest.NewRequest(http.MethodGet, "/"+query, nil)
	req = mux.SetURLVars(req, map[string]string{"clientId": clientID})
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_ReturnsList(t *testing.T) {
	status := "completed"
	svc := &mockService{}
	svc.On("ListByClient", mock.Anything, &models.ClientAppointmentsRequest{ClientID: 3, Status: &status}).
		Return(&models.AppointmentListResponse{
			Appointments: []*models.AppointmentResponse{{ID: 11, Status: "completed"}},
		}, nil)

	rec := serve(svc, "3", "?status=completed")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":11`)
	svc.AssertExpectations(t)
}

func TestHandle_InvalidClientID(t *testing.T) {
	svc := &mockService{}
	rec := serve(svc, "abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "ListByClient", mock.Anything, mock.Anything)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"bad status", appointments.ErrInvalidInput, http.StatusBadRequest},
		{"internal", appointments.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockService{}
			svc.On("ListByClient", mock.Anything, mock.Anything).Return(nil, tt.err)

			rec := serve(svc, "3", "")
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
