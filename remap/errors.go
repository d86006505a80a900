package remap

import "errors"

var (
	// ErrSourceUnavailable reports a missing input device or a failed grab.
	ErrSourceUnavailable = errors.New("event source unavailable")
	// ErrSinkCreationFailed reports that the virtual keyboard could not be created.
	ErrSinkCreationFailed = errors.New("event sink creation failed")
	// ErrWriteFailed reports that the sink rejected an emitted event.
	ErrWriteFailed = errors.New("event sink write failed")
	// ErrSourceReadFailed reports that the source stream ended or errored.
	ErrSourceReadFailed = errors.New("event source read failed")
	// ErrKillSequence is returned when the kill sequence rule fires.
	ErrKillSequence = errors.New("kill sequence pressed")
	// ErrInvalidChain reports a rule chain without a single trailing passthrough.
	ErrInvalidChain = errors.New("invalid rule chain")
)
