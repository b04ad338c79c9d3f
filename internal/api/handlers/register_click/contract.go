package register_click

import (
	"context"

	registerClick "github.com/jazyl-tech/JZL-BookingService/internal/usecase/register_click"
)

type RegisterClickUseCase interface {
	Execute(ctx context.Context, req *registerClick.Request) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
