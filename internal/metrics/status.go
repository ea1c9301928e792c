package metrics

import (
	"errors"

	"github.com/goodnatureofminers/namesight7000-backend/internal/naming/model"
)

func status(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}

var reasons = []struct {
	err    error
	reason string
}{
	{model.ErrUnauthorized, "unauthorized"},
	{model.ErrInvalidSignature, "invalid_signature"},
	{model.ErrNotAdmin, "not_admin"},
	{model.ErrNotOwner, "not_owner"},
	{model.ErrInvalidLabel, "invalid_label"},
	{model.ErrInvalidInput, "invalid_input"},
	{model.ErrInvalidParams, "invalid_params"},
	{model.ErrCommitmentExists, "commitment_exists"},
	{model.ErrCommitmentMissing, "commitment_missing"},
	{model.ErrCommitmentTooFresh, "commitment_too_fresh"},
	{model.ErrCommitmentTooOld, "commitment_too_old"},
	{model.ErrNameNotAvailable, "name_not_available"},
	{model.ErrExpiryOverflow, "expiry_overflow"},
	{model.ErrNotInitialized, "not_initialized"},
	{model.ErrAlreadyInitialized, "already_initialized"},
}

// reason maps domain rejections to a bounded label set.
func reason(err error) string {
	for _, r := range reasons {
		if errors.Is(err, r.err) {
			return r.reason
		}
	}
	return "internal"
}
