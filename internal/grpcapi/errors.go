package grpcapi

import (
	"context"
	"errors"
	"log/slog"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"shopcore/internal/usecase"
)

// toStatus maps a usecase failure onto a gRPC status. Causes of internal
// errors are logged here and never leave the process.
func toStatus(ctx context.Context, log *slog.Logger, op string, err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, "deadline exceeded")
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, "canceled")
	}

	ae, ok := usecase.AsAppError(err)
	if !ok {
		log.ErrorContext(ctx, op+" failed", slog.Any("err", err))
		return status.Error(codes.Internal, "internal error")
	}

	switch ae.Kind {
	case usecase.KindNotFound:
		return status.Error(codes.NotFound, ae.Message)
	case usecase.KindInvalidArgument:
		return status.Error(codes.InvalidArgument, ae.Message)
	default:
		log.ErrorContext(ctx, op+" failed", slog.Any("err", err))
		return status.Error(codes.Internal, ae.Message)
	}
}
