package domain

import "errors"

var (
	ErrNotFound          = errors.New("not found")
	ErrRateLimited       = errors.New("rate limited")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrExchangeInactive  = errors.New("exchange inactive")
	ErrRefreshInProgress = errors.New("refresh already in progress")
)
