package parking

import (
	"smart-parking/internal/pkg/errs"
)

// Sentinels stay unmarked so they remain distinguishable from each other;
// the kind (errs.ErrNotFound, errs.ErrInvalidState, ...) is attached where
// the error is returned.
var (
	ErrSlotNotFound        = errs.New("slot not found")
	ErrReservationNotFound = errs.New("reservation not found")

	ErrSlotUnavailable   = errs.New("slot is not available")
	ErrSlotExists        = errs.New("slot already exists")
	ErrSlotInUse         = errs.New("slot is reserved or occupied")
	ErrInvalidTransition = errs.New("reservation is not in the required status")

	ErrInvalidSlot = errs.New("invalid slot definition")

	ErrTokenCollision    = errs.New("reservation token collision")
	ErrInconsistentState = errs.New("slot state does not match reservation status")
)

func notFound(sentinel error, format string, args ...any) error {
	return errs.Mark(errs.Wrapf(sentinel, format, args...), errs.ErrNotFound)
}

func invalidState(sentinel error, format string, args ...any) error {
	return errs.Mark(errs.Wrapf(sentinel, format, args...), errs.ErrInvalidState)
}

func invalidArgument(sentinel error, format string, args ...any) error {
	return errs.Mark(errs.Wrapf(sentinel, format, args...), errs.ErrInvalidArgument)
}
