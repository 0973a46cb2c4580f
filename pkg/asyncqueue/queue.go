package asyncqueue

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrClosed возвращается при попытке поставить задачу в закрытую очередь
var ErrClosed = errors.New("asyncqueue: queue is closed")

// ErrFull возвращается, когда буфер очереди заполнен и задача отброшена
var ErrFull = errors.New("asyncqueue: queue is full")

// Job фоновая задача
type Job struct {
	Name string
	Run  func(ctx context.Context) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// DropObserver получает уведомления об отброшенных задачах (метрики)
type DropObserver interface {
	IncDroppedJob(job string)
}

// Queue ограниченная очередь с одним воркером
// Задачи выполняются по порядку, ошибка задачи только логируется.
// Переполнение не блокирует вызывающего: задача отбрасывается.
type Queue struct {
	jobs       chan Job
	jobTimeout time.Duration
	logger     Logger
	dropped    DropObserver

	mu     sync.RWMutex
	closed bool
	done   chan struct{}
}

// New создает очередь и запускает воркер
func New(capacity int, jobTimeout time.Duration, logger Logger) *Queue {
	if capacity <= 0 {
		capacity = 1
	}

	q := &Queue{
		jobs:       make(chan Job, capacity),
		jobTimeout: jobTimeout,
		logger:     logger,
		done:       make(chan struct{}),
	}

	go q.worker()
	return q
}

// WithDropObserver подключает счетчик отброшенных задач
func (q *Queue) WithDropObserver(o DropObserver) *Queue {
	q.dropped = o
	return q
}

// Dispatch ставит задачу в очередь, не блокируясь
func (q *Queue) Dispatch(job Job) error {
	q.mu.RLock()
	defer q.mu.RUnlock()

	if q.closed {
		return ErrClosed
	}

	select {
	case q.jobs <- job:
		return nil
	default:
		q.logger.Warn("asyncqueue: queue full, dropping job %s", job.Name)
		if q.dropped != nil {
			q.dropped.IncDroppedJob(job.Name)
		}
		return ErrFull
	}
}

// Close перестает принимать задачи и ждёт, пока воркер выполнит оставшиеся
func (q *Queue) Close(ctx context.Context) error {
	q.mu.Lock()
	if !q.closed {
		q.closed = true
		close(q.jobs)
	}
	q.mu.Unlock()

	select {
	case <-q.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (q *Queue) worker() {
	defer close(q.done)

	for job := range q.jobs {
		q.run(job)
	}
}

func (q *Queue) run(job Job) {
	ctx := context.Background()
	if q.jobTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, q.jobTimeout)
		defer cancel()
	}

	defer func() {
		if p := recover(); p != nil {
			q.logger.Error("asyncqueue: job %s panicked: %v", job.Name, p)
		}
	}()

	if err := job.Run(ctx); err != nil {
		q.logger.Error("asyncqueue: job %s failed: %v", job.Name, err)
		return
	}
	q.logger.Info("asyncqueue: job %s done", job.Name)
}
