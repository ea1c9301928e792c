package model

import "errors"

var (
	ErrNotInitialized     = errors.New("not initialized")
	ErrAlreadyInitialized = errors.New("already initialized")

	ErrNotAdmin     = errors.New("caller is not admin")
	ErrNotOwner     = errors.New("caller is not owner")
	ErrUnauthorized = errors.New("authorization required")

	ErrInvalidSignature = errors.New("invalid signature")

	ErrInvalidLabel  = errors.New("invalid label")
	ErrInvalidInput  = errors.New("invalid input")
	ErrInvalidParams = errors.New("invalid registrar params")

	ErrCommitmentExists   = errors.New("commitment already exists")
	ErrCommitmentMissing  = errors.New("commitment missing")
	ErrCommitmentTooFresh = errors.New("commitment too fresh")
	ErrCommitmentTooOld   = errors.New("commitment too old")

	ErrNameNotAvailable  = errors.New("name not available")
	ErrExpiryUnavailable = errors.New("expiry unavailable")

	ErrOwnerNotSet    = errors.New("owner not set")
	ErrResolverNotSet = errors.New("resolver not set")
	ErrExpiryNotSet   = errors.New("expiry not set")
	ErrExpiryOverflow = errors.New("expiry overflow")

	ErrUnknownContract = errors.New("unknown contract")
)
