package transport

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/goodnatureofminers/namesight7000-backend/internal/naming/model"
)

var errorCodes = []struct {
	err  error
	code codes.Code
}{
	{model.ErrInvalidSignature, codes.Unauthenticated},
	{model.ErrUnauthorized, codes.PermissionDenied},
	{model.ErrNotAdmin, codes.PermissionDenied},
	{model.ErrNotOwner, codes.PermissionDenied},
	{model.ErrInvalidLabel, codes.InvalidArgument},
	{model.ErrInvalidInput, codes.InvalidArgument},
	{model.ErrInvalidParams, codes.InvalidArgument},
	{model.ErrExpiryOverflow, codes.InvalidArgument},
	{model.ErrCommitmentExists, codes.AlreadyExists},
	{model.ErrAlreadyInitialized, codes.AlreadyExists},
	{model.ErrCommitmentMissing, codes.NotFound},
	{model.ErrOwnerNotSet, codes.NotFound},
	{model.ErrResolverNotSet, codes.NotFound},
	{model.ErrExpiryNotSet, codes.NotFound},
	{model.ErrUnknownContract, codes.NotFound},
	{model.ErrCommitmentTooFresh, codes.FailedPrecondition},
	{model.ErrCommitmentTooOld, codes.FailedPrecondition},
	{model.ErrNameNotAvailable, codes.FailedPrecondition},
	{model.ErrNotInitialized, codes.FailedPrecondition},
	{model.ErrExpiryUnavailable, codes.FailedPrecondition},
	{context.Canceled, codes.Canceled},
	{context.DeadlineExceeded, codes.DeadlineExceeded},
}

// code classifies err. Errors that are already gRPC statuses keep their code.
func code(err error) codes.Code {
	if err == nil {
		return codes.OK
	}
	if s, ok := status.FromError(err); ok {
		return s.Code()
	}
	for _, e := range errorCodes {
		if errors.Is(err, e.err) {
			return e.code
		}
	}
	return codes.Internal
}

func toStatus(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}
	c := code(err)
	if c == codes.Internal {
		return status.Error(c, "internal error")
	}
	return status.Error(c, err.Error())
}
