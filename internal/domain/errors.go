package domain

import "errors"

var (
	// ErrUnknownStage is returned when an ingestion stage name is not recognised
	ErrUnknownStage = errors.New("unknown stage")

	// ErrRunInProgress is returned when another ingestion run holds the run lock
	ErrRunInProgress = errors.New("an ingestion run is already in progress")

	// ErrTokenUnavailable is returned when the marketplace access token cannot be obtained
	ErrTokenUnavailable = errors.New("marketplace access token unavailable")

	// ErrMissingCredentials is returned when marketplace client credentials are not configured
	ErrMissingCredentials = errors.New("marketplace client credentials are not configured")
)
