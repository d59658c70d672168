package reservation

import (
	"errors"
	"time"

	"smart-parking/internal/domain/user"
	"smart-parking/internal/pkg/ptr"
)

var (
	ErrEmptyID           = errors.New("reservation id must not be empty")
	ErrInvalidTransition = errors.New("invalid reservation status transition")
)

// Reservation is a claim by a user on one slot. The slot is held by id plus
// the location label seen at reserve time, so history stays readable after
// the slot is removed from the inventory.
type Reservation struct {
	id           string
	user         user.User
	slotID       int
	slotLocation string
	status       Status
	createdAt    time.Time
	startedAt    *time.Time
	endedAt      *time.Time
}

func NewReservation(id string, u user.User, slotID int, slotLocation string, createdAt time.Time) (*Reservation, error) {
	if id == "" {
		return nil, ErrEmptyID
	}
	return &Reservation{
		id:           id,
		user:         u,
		slotID:       slotID,
		slotLocation: slotLocation,
		status:       StatusReserved,
		createdAt:    createdAt,
	}, nil
}

func (r *Reservation) ID() string           { return r.id }
func (r *Reservation) User() user.User      { return r.user }
func (r *Reservation) SlotID() int          { return r.slotID }
func (r *Reservation) SlotLocation() string { return r.slotLocation }
func (r *Reservation) Status() Status       { return r.status }
func (r *Reservation) CreatedAt() time.Time { return r.createdAt }
func (r *Reservation) StartedAt() *time.Time {
	return ptr.Clone(r.startedAt)
}
func (r *Reservation) EndedAt() *time.Time {
	return ptr.Clone(r.endedAt)
}

// Occupy moves RESERVED to ACTIVE and stamps the start time.
func (r *Reservation) Occupy(now time.Time) error {
	if r.status != StatusReserved {
		return ErrInvalidTransition
	}
	r.status = StatusActive
	r.startedAt = ptr.Of(now)
	return nil
}

// Release moves ACTIVE to COMPLETED and stamps the end time.
func (r *Reservation) Release(now time.Time) error {
	if r.status != StatusActive {
		return ErrInvalidTransition
	}
	r.status = StatusCompleted
	r.endedAt = ptr.Of(now)
	return nil
}

// Cancel moves RESERVED to CANCELLED and stamps the end time.
func (r *Reservation) Cancel(now time.Time) error {
	if r.status != StatusReserved {
		return ErrInvalidTransition
	}
	r.status = StatusCancelled
	r.endedAt = ptr.Of(now)
	return nil
}

// Snapshot returns a deep copy that shares no memory with r.
func (r *Reservation) Snapshot() Reservation {
	cp := *r
	cp.startedAt = ptr.Clone(r.startedAt)
	cp.endedAt = ptr.Clone(r.endedAt)
	return cp
}
