package transport

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/goodnatureofminers/namesight7000-backend/internal/naming/model"
)

func TestCode(t *testing.T) {
	tests := []struct {
		err  error
		want codes.Code
	}{
		{err: nil, want: codes.OK},
		{err: fmt.Errorf("reveal: %w", model.ErrCommitmentTooOld), want: codes.FailedPrecondition},
		{err: model.ErrNotOwner, want: codes.PermissionDenied},
		{err: model.ErrInvalidSignature, want: codes.Unauthenticated},
		{err: model.ErrCommitmentExists, want: codes.AlreadyExists},
		{err: model.ErrOwnerNotSet, want: codes.NotFound},
		{err: model.ErrExpiryOverflow, want: codes.InvalidArgument},
		{err: context.Canceled, want: codes.Canceled},
		{err: status.Error(codes.Unavailable, "down"), want: codes.Unavailable},
		{err: errors.New("disk full"), want: codes.Internal},
	}
	for _, tt := range tests {
		if got := code(tt.err); got != tt.want {
			t.Errorf("code(%v) = %v, want %v", tt.err, got, tt.want)
		}
	}
}
