package model

import "fmt"

// MaxLabelLength bounds a single label in bytes.
const MaxLabelLength = 63

// Params configures the registrar.
type Params struct {
	MinLabelLen    uint32 `json:"min_label_len"`
	MaxLabelLen    uint32 `json:"max_label_len"`
	CommitMinAge   uint64 `json:"commit_min_age"`
	CommitMaxAge   uint64 `json:"commit_max_age"`
	RenewExtension uint64 `json:"renew_extension"`
	GracePeriod    uint64 `json:"grace_period"`
}

// DefaultParams returns production registrar parameters (durations in seconds).
func DefaultParams() Params {
	return Params{
		MinLabelLen:    3,
		MaxLabelLen:    MaxLabelLength,
		CommitMinAge:   60,
		CommitMaxAge:   86_400,
		RenewExtension: 31_536_000,
		GracePeriod:    7_776_000,
	}
}

// Validate checks the whole tuple for internal consistency.
func (p Params) Validate() error {
	switch {
	case p.MinLabelLen == 0:
		return fmt.Errorf("%w: min_label_len must be positive", ErrInvalidParams)
	case p.MinLabelLen > p.MaxLabelLen:
		return fmt.Errorf("%w: min_label_len %d exceeds max_label_len %d", ErrInvalidParams, p.MinLabelLen, p.MaxLabelLen)
	case p.MaxLabelLen > MaxLabelLength:
		return fmt.Errorf("%w: max_label_len %d exceeds %d", ErrInvalidParams, p.MaxLabelLen, MaxLabelLength)
	case p.CommitMinAge == 0, p.CommitMaxAge == 0, p.RenewExtension == 0, p.GracePeriod == 0:
		return fmt.Errorf("%w: durations must be positive", ErrInvalidParams)
	case p.CommitMinAge > p.CommitMaxAge:
		return fmt.Errorf("%w: commit_min_age %d exceeds commit_max_age %d", ErrInvalidParams, p.CommitMinAge, p.CommitMaxAge)
	}
	return nil
}

// LabelLenInRange reports whether n is within [MinLabelLen, MaxLabelLen].
func (p Params) LabelLenInRange(n uint32) bool {
	return n >= p.MinLabelLen && n <= p.MaxLabelLen
}
