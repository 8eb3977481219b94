package schedule

import "errors"

var (
	// ErrInvalidRequest marks malformed or past-dated input. Caller bug;
	// not worth retrying unchanged.
	ErrInvalidRequest = errors.New("invalid booking request")

	// ErrOutOfHours means the requested interval is not fully inside the
	// shop's open range for that date.
	ErrOutOfHours = errors.New("requested time is outside business hours")

	// ErrSlotFull is the expected capacity conflict. Always retry-safe:
	// re-fetch availability and pick another slot.
	ErrSlotFull = errors.New("slot capacity exhausted")

	// ErrNotFound means no booking with the given id or tracking code.
	ErrNotFound = errors.New("booking not found")

	// ErrInvalidTransition means the booking is already in a terminal state.
	ErrInvalidTransition = errors.New("invalid booking status transition")

	// ErrStorageUnavailable wraps persistence-layer I/O failures. Always
	// safe to retry.
	ErrStorageUnavailable = errors.New("booking storage unavailable")
)
