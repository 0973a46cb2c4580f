package domain

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonCalendar/pkg/types"
)

func timeString(t *testing.T, s string) types.TimeString {
	t.Helper()
	ts, err := types.NewTimeStringFromString(s)
	require.NoError(t, err)
	return ts
}
