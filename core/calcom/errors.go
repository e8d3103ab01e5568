package calcom

import "errors"

var (
	// ErrConfiguration is returned when required credentials or identifiers are missing.
	ErrConfiguration = errors.New("configuration error")

	// ErrRemoteFetch is returned when a provider call fails or answers with a non-2xx status.
	ErrRemoteFetch = errors.New("remote fetch error")

	// ErrDataShape is returned when a payload does not match the expected shape.
	ErrDataShape = errors.New("data shape error")

	// ErrOffline is returned by the fixture client for operations that need the live API.
	ErrOffline = errors.New("operation not available offline")
)
