package domain

import "errors"

var (
	// ErrInvalidInput is returned for a blank or malformed CEP. No I/O happens.
	ErrInvalidInput = errors.New("invalid input")
	// ErrStoreUnavailable marks a durable store failure other than not-found.
	ErrStoreUnavailable = errors.New("store unavailable")
	// ErrSourceUnavailable marks a ViaCEP transport failure or an unparseable answer.
	ErrSourceUnavailable = errors.New("source error")
)
