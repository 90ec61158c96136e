package types

import (
	errorsmod "cosmossdk.io/errors"
)

var (
	ErrInvalidRequest        = errorsmod.Register(ModuleName, 2, "invalid request")
	ErrNotFound              = errorsmod.Register(ModuleName, 3, "not found")
	ErrAlreadyInitialized    = errorsmod.Register(ModuleName, 4, "arcade already initialized")
	ErrNotInitialized        = errorsmod.Register(ModuleName, 5, "arcade not initialized")
	ErrUnauthorized          = errorsmod.Register(ModuleName, 6, "unauthorized")
	ErrIncorrectPayment      = errorsmod.Register(ModuleName, 7, "incorrect payment amount")
	ErrInsufficientAvailable = errorsmod.Register(ModuleName, 8, "insufficient available escrow balance")
	ErrInvalidSubject        = errorsmod.Register(ModuleName, 9, "score subject does not match the declared beneficiary")
	ErrLastAdminRemoval      = errorsmod.Register(ModuleName, 10, "cannot remove the last admin")
	ErrOverflow              = errorsmod.Register(ModuleName, 11, "arithmetic overflow")
	ErrInsufficientFunds     = errorsmod.Register(ModuleName, 12, "insufficient funds")
	ErrLimitExceeded         = errorsmod.Register(ModuleName, 13, "limit exceeded")
)
