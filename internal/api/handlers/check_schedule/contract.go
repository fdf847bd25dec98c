package check_schedule

import (
	"context"

	checkSchedule "github.com/brightshine-detailing/scheduler-service/internal/usecase/check_schedule"
)

type CheckScheduleUseCase interface {
	Execute(ctx context.Context, req *checkSchedule.Request) (*checkSchedule.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
