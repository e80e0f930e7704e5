package next_available

import (
	"context"

	nextAvailable "github.com/m04kA/SMC-AvailabilityService/internal/usecase/next_available"
)

type NextAvailableUseCase interface {
	Execute(ctx context.Context, req *nextAvailable.Request) (*nextAvailable.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
