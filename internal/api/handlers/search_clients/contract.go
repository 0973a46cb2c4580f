package search_clients

import (
	"context"

	"github.com/m04kA/SMC-SalonCalendar/internal/service/clients/models"
)

type ClientService interface {
	Search(ctx context.Context, search string) (*models.ClientListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
