package errs

import "errors"

// Sentinel errors shared by the usecase, infra and handler layers
var (
	// Input errors
	ErrInvalidTimeOfDay = errors.New("invalid time of day")

	// Snapshot errors
	ErrSnapshotNotLoaded = errors.New("snapshot not loaded")

	// Upstream errors
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
	ErrUpstreamPayload     = errors.New("upstream payload rejected")
)
