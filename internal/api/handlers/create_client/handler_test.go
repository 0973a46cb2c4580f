package create_client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonCalendar/internal/service/clients"
	"github.com/m04kA/SMC-SalonCalendar/internal/service/clients/models"
	"github.com/m04kA/SMC-SalonCalendar/pkg/logger"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) Create(ctx context.Context, req *models.CreateClientRequest) (*models.ClientResponse, error) {
	args := m.Called(ctx, req)
	if resp := args.Get(0); resp != nil {
		return resp.(*models.ClientResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func serve(svc *mockService, payload string) *httptest.ResponseRecorder {
	h := NewHandler(svc, logger.NewWithWriter(&bytes.Buffer{}, "error"))
	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/clients", strings.NewReader(payload)))
	return rec
}

func TestHandle_Creates(t *testing.T) {
	svc := &mockService{}
	svc.On("Create", mock.Anything, mock.MatchedBy(func(req *models.CreateClientRequest) bool {
		return req.Name == "Jane Doe" && req.Phone == "+971501234567" &&
			req.DateOfBirth != nil && *req.DateOfBirth == "1990-05-01" && req.Email == nil
	})).Return(&models.ClientResponse{ID: 12, Name: "Jane Doe", Initial: "J", Phone: "+971501234567"}, nil)

	rec := serve(svc, `{"name":"Jane Doe","phone":"+971501234567","dateOfBirth":"1990-05-01"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp models.ClientResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(12), resp.ID)
	assert.Equal(t, "J", resp.Initial)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		err     error
		status  int
		message string
	}{
		{"broken json", `{"name":`, nil, http.StatusBadRequest, msgInvalidRequestBody},
		{"unknown field", `{"name":"Jane","phone":"+1","vip":true}`, nil, http.StatusBadRequest, msgInvalidRequestBody},
		{"invalid client", `{"name":"","phone":""}`, fmt.Errorf("%w: name is required", clients.ErrInvalidInput), http.StatusBadRequest, msgInvalidClient},
		{"storage failure", `{"name":"Jane","phone":"+1"}`, errors.New("db down"), http.StatusInternalServerError, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockService{}
			if tt.err != nil {
				svc.On("Create", mock.Anything, mock.Anything).Return(nil, tt.err)
			}

			rec := serve(svc, tt.payload)
			assert.Equal(t, tt.status, rec.Code)
			if tt.message != "" {
				assert.Contains(t, rec.Body.String(), tt.message)
			}
			if tt.err == nil {
				svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			}
		})
	}
}
