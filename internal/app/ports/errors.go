package ports

import "errors"

var (
	ErrNotFound          = errors.New("not found")
	ErrConflict          = errors.New("conflict")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrUnknownTemplate   = errors.New("unknown template")
	ErrUnknownEvent      = errors.New("unknown event")
	ErrLocked            = errors.New("locked by achievement")
	ErrNoCapacity        = errors.New("no capacity")
)
