package move_service

import (
	"context"

	moveService "github.com/m04kA/SMC-SalonCalendar/internal/usecase/move_service"
)

type MoveServiceUseCase interface {
	Execute(ctx context.Context, req *moveService.Request) (*moveService.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
