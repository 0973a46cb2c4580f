package catalog

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonCalendar/internal/domain"
	"github.com/m04kA/SMC-SalonCalendar/pkg/logger"
)

type stubServices struct {
	lastSearch string
	services   []*domain.CatalogService
	err        error
}

func (s *stubServices) List(_ context.Context, search string) ([]*domain.CatalogService, error) {
	s.lastSearch = search
	return s.services, s.err
}

type stubStaff struct {
	staff []*domain.Staff
	err   error
}

func (s *stubStaff) List(context.Context) ([]*domain.Staff, error) {
	return s.staff, s.err
}

func TestService_ListServices(t *testing.T) {
	repo := &stubServices{services: []*domain.CatalogService{
		{ID: 1, Name: "Blow Dry", Duration: "45min", Price: "AED 120", Category: "Hair"},
		{ID: 2, Name: "Balayage", Duration: "3h", Price: "from AED 650", Category: "Color"},
	}}
	svc := NewService(repo, &stubStaff{}, logger.NewWithWriter(&bytes.Buffer{}, "error"))

	resp, err := svc.ListServices(context.Background(), "  b ")
	require.NoError(t, err)

	assert.Equal(t, "b", repo.lastSearch)
	require.Len(t, resp.Services, 2)
	assert.Equal(t, 45, resp.Services[0].DurationMinutes)
	assert.Equal(t, 180, resp.Services[1].DurationMinutes)
	assert.Equal(t, "from AED 650", resp.Services[1].Price)
}

func TestService_ListStaff(t *testing.T) {
	staff := &stubStaff{staff: []*domain.Staff{domain.NewStaff(1, "anna"), domain.NewStaff(2, "Maria")}}
	svc := NewService(&stubServices{}, staff, logger.NewWithWriter(&bytes.Buffer{}, "error"))

	resp, err := svc.ListStaff(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.Staff, 2)
	assert.Equal(t, "A", resp.Staff[0].Initial)

	staff.err = errors.New("db down")
	_, err = svc.ListStaff(context.Background())
	assert.ErrorIs(t, err, ErrInternal)
}
