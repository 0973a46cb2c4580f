package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Task фоновая задача по расписанию
type Task interface {
	Name() string
	Run(ctx context.Context) error
}

// Scheduler запускает задачи по cron расписанию
type Scheduler struct {
	cron       *cron.Cron
	timeout    time.Duration
	logger     Logger
	ctx        context.Context
	cancelRuns context.CancelFunc
}

// NewScheduler создает планировщик в часовом поясе салона
// timeout ограничивает время одного запуска задачи.
func NewScheduler(location *time.Location, timeout time.Duration, logger Logger) *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		cron: cron.New(
			cron.WithLocation(location),
			cron.WithChain(cron.Recover(cronLogger{logger}), cron.SkipIfStillRunning(cronLogger{logger})),
		),
		timeout:    timeout,
		logger:     logger,
		ctx:        ctx,
		cancelRuns: cancel,
	}
}

// Add регистрирует задачу по расписанию (стандартный 5-польный формат cron)
func (s *Scheduler) Add(schedule string, task Task) error {
	_, err := s.cron.AddFunc(schedule, func() {
		s.runTask(task)
	})
	if err != nil {
		return fmt.Errorf("jobs: invalid schedule %q for %s: %w", schedule, task.Name(), err)
	}
	s.logger.Info("Scheduler: %s scheduled at %q", task.Name(), schedule)
	return nil
}

// Start запускает планировщик в отдельной горутине
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop останавливает планировщик и ждет завершения текущих запусков
func (s *Scheduler) Stop(ctx context.Context) error {
	done := s.cron.Stop()
	select {
	case <-done.Done():
		s.cancelRuns()
		return nil
	case <-ctx.Done():
		s.cancelRuns()
		return ctx.Err()
	}
}

func (s *Scheduler) runTask(task Task) {
	ctx, cancel := context.WithTimeout(s.ctx, s.timeout)
	defer cancel()

	started := time.Now()
	if err := task.Run(ctx); err != nil {
		s.logger.Error("Scheduler: %s failed after %s: %v", task.Name(), time.Since(started), err)
		return
	}
	s.logger.Info("Scheduler: %s done in %s", task.Name(), time.Since(started))
}

// cronLogger адаптер логгера к интерфейсу cron.Logger
type cronLogger struct {
	logger Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Info("cron: %s %v", msg, keysAndValues)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.logger.Error("cron: %s: %v %v", msg, err, keysAndValues)
}
