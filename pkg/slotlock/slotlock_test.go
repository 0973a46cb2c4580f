package slotlock

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStaffDayKey(t *testing.T) {
	date := time.Date(2025, 6, 7, 15, 30, 0, 0, time.UTC)
	assert.Equal(t, "staff:3:2025-06-07", StaffDayKey(3, date))
}

func TestNoopLocker_RunsFn(t *testing.T) {
	boom := errors.New("boom")
	called := false

	err := NoopLocker{}.WithLock(context.Background(), "staff:1:2025-06-07", func(ctx context.Context) error {
		called = true
		return boom
	})

	assert.True(t, called)
	assert.ErrorIs(t, err, boom)
}

type recordingLocker struct {
	keys []string
	busy string
}

func (r *recordingLocker) WithLock(ctx context.Context, key string, fn func(ctx context.Context) error) error {
	if key == r.busy {
		return ErrLockNotAcquired
	}
	r.keys = append(r.keys, key)
	return fn(ctx)
}

func TestWithLocks_SortedAndUnique(t *testing.T) {
	date := time.Date(2025, 6, 7, 0, 0, 0, 0, time.UTC)
	locker := &recordingLocker{}
	called := false

	err := WithLocks(context.Background(), locker, StaffDayKeys([]int64{2, 1, 2}, date), func(ctx context.Context) error {
		called = true
		return nil
	})

	assert.NoError(t, err)
	assert.True(t, called)
	assert.Equal(t, []string{"staff:1:2025-06-07", "staff:2:2025-06-07"}, locker.keys)
}

func TestWithLocks_StopsOnBusyKey(t *testing.T) {
	date := time.Date(2025, 6, 7, 0, 0, 0, 0, time.UTC)
	locker := &recordingLocker{busy: "staff:2:2025-06-07"}
	called := false

	err := WithLocks(context.Background(), locker, StaffDayKeys([]int64{1, 2}, date), func(ctx context.Context) error {
		called = true
		return nil
	})

	assert.ErrorIs(t, err, ErrLockNotAcquired)
	assert.False(t, called)
}
