package domain

import "errors"

// Failures surfaced by the campaign ledger. Every one aborts the call with no
// state change.
var (
	ErrAlreadyInitialized = errors.New("campaign already initialized")
	ErrUninitialized      = errors.New("campaign not initialized")
	ErrInvalidTarget      = errors.New("target amount must be positive")
	ErrInvalidDeadline    = errors.New("deadline must be in the future")
	ErrInvalidAmount      = errors.New("deposit amount must be positive")
	ErrInvalidAddress     = errors.New("invalid address")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrCampaignFinalized  = errors.New("campaign is already finalized")
	ErrAlreadyFinalized   = errors.New("funds have already been withdrawn")
	ErrDeadlinePassed     = errors.New("campaign deadline has passed")
	ErrDeadlineNotReached = errors.New("campaign deadline has not passed yet")
	ErrTargetNotReached   = errors.New("target amount has not been reached")
	ErrCampaignSucceeded  = errors.New("campaign was successful, refunds not available")
	ErrNoDeposit          = errors.New("no deposit found for this contributor")
	ErrTransferFailed     = errors.New("token transfer failed")
)
