package store

import "errors"

var (
	// ErrNotFound means the lookup matched nothing.
	ErrNotFound = errors.New("not found")
	// ErrInvalidID means the identifier is not a valid object id.
	ErrInvalidID = errors.New("invalid id")
	// ErrSlotTaken means another booking already holds the slot.
	ErrSlotTaken = errors.New("slot already booked")
	// ErrAlreadyPaid means the appointment already has a payment attached.
	ErrAlreadyPaid = errors.New("appointment already paid")
)
