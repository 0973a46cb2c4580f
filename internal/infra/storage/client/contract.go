package client

import "github.com/m04kA/SMC-SalonCalendar/pkg/dbmetrics"

type DBExecutor = dbmetrics.DBExecutor
