package check_slot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonCalendar/pkg/types"
)

func TestToServiceRequest(t *testing.T) {
	req, err := ToServiceRequest("2", "2025-06-04", "10:15", "")
	require.NoError(t, err)
	assert.Equal(t, int64(2), req.StaffID)
	assert.Equal(t, types.TimeString("10:15"), req.Time)
	assert.Nil(t, req.ExcludeAppointmentID)

	req, err = ToServiceRequest("2", "2025-06-04", "10:15", "9")
	require.NoError(t, err)
	require.NotNil(t, req.ExcludeAppointmentID)
	assert.Equal(t, int64(9), *req.ExcludeAppointmentID)
}

func TestToServiceRequest_Invalid(t *testing.T) {
	tests := []struct {
		name      string
		staff     string
		date      string
		slot      string
		excludeID string
	}{
		{"no staff", "", "2025-06-04", "10:00", ""},
		{"zero staff", "0", "2025-06-04", "10:00", ""},
		{"bad date", "1", "2025/06/04", "10:00", ""},
		{"bad time", "1", "2025-06-04", "ten", ""},
		{"signed time", "1", "2025-06-04", "+9:30", ""},
		{"negative time", "1", "2025-06-04", "-1:00", ""},
		{"bad exclude", "1", "2025-06-04", "10:00", "x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ToServiceRequest(tt.staff, tt.date, tt.slot, tt.excludeID)
			assert.Error(t, err)
		})
	}
}
