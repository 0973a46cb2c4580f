package asyncqueue

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonCalendar/pkg/logger"
)

type safeBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *safeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *safeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

type dropCounter struct {
	count atomic.Int32
}

func (d *dropCounter) IncDroppedJob(string) { d.count.Add(1) }

func TestQueue_RunsJobsInOrder(t *testing.T) {
	q := New(10, time.Second, logger.NewWithWriter(&safeBuffer{}, "error"))

	var (
		mu    sync.Mutex
		order []int
	)
	for i := 1; i <= 3; i++ {
		i := i
		require.NoError(t, q.Dispatch(Job{Name: "mirror", Run: func(ctx context.Context) error {
			mu.Lock()
			defer mu.Unlock()
			order = append(order, i)
			return nil
		}}))
	}

	require.NoError(t, q.Close(context.Background()))
	assert.Equal(t, []int{1, 2, 3}, order)
}

func TestQueue_DropsWhenFull(t *testing.T) {
	out := &safeBuffer{}
	drops := &dropCounter{}
	q := New(1, time.Second, logger.NewWithWriter(out, "warn")).WithDropObserver(drops)

	release := make(chan struct{})
	started := make(chan struct{})
	require.NoError(t, q.Dispatch(Job{Name: "blocker", Run: func(ctx context.Context) error {
		close(started)
		<-release
		return nil
	}}))
	<-started

	require.NoError(t, q.Dispatch(Job{Name: "queued", Run: func(ctx context.Context) error { return nil }}))
	err := q.Dispatch(Job{Name: "sms", Run: func(ctx context.Context) error { return nil }})

	assert.ErrorIs(t, err, ErrFull)
	assert.Equal(t, int32(1), drops.count.Load())
	assert.Contains(t, out.String(), "dropping job sms")

	close(release)
	require.NoError(t, q.Close(context.Background()))
}

func TestQueue_LogsFailuresAndRejectsAfterClose(t *testing.T) {
	out := &safeBuffer{}
	q := New(2, time.Second, logger.NewWithWriter(out, "info"))

	require.NoError(t, q.Dispatch(Job{Name: "mirror", Run: func(ctx context.Context) error {
		return errors.New("remote store unavailable")
	}}))
	require.NoError(t, q.Close(context.Background()))

	assert.Contains(t, out.String(), "job mirror failed: remote store unavailable")
	assert.ErrorIs(t, q.Dispatch(Job{Name: "late"}), ErrClosed)
}
