//go:generate mockgen -source=ports.go -destination=../../../tests/mock/parking/mock_ports.go -package=parkingmock

package parking

import (
	"context"
	"time"

	"smart-parking/internal/domain/reservation"
	"smart-parking/internal/domain/slot"
	"smart-parking/internal/domain/user"
)

type Commands interface {
	ReserveSlot(ctx context.Context, u user.User, slotID int) (reservation.Reservation, error)
	OccupySlot(ctx context.Context, reservationID string) (reservation.Reservation, error)
	ReleaseSlot(ctx context.Context, reservationID string) (reservation.Reservation, error)
	CancelReservation(ctx context.Context, reservationID string) (reservation.Reservation, error)
	AddSlot(ctx context.Context, id int, location string) (slot.Slot, error)
	RemoveSlot(ctx context.Context, id int) error
}

type Queries interface {
	ListAllSlots(ctx context.Context) []slot.Slot
	ListAvailableSlots(ctx context.Context) []slot.Slot
	FindReservationByID(ctx context.Context, id string) (reservation.Reservation, bool)
	ListReservations(ctx context.Context) []reservation.Reservation
	Snapshot(ctx context.Context) Summary
}

// Summary is a consistent count of the inventory taken under a single lock.
type Summary struct {
	TotalSlots     int
	SlotsByState   map[slot.State]int
	Reservations   int
	ReservationsBy map[reservation.Status]int
}

type EventKind string

const (
	EventSlotReserved         EventKind = "slot_reserved"
	EventSlotOccupied         EventKind = "slot_occupied"
	EventSlotReleased         EventKind = "slot_released"
	EventReservationCancelled EventKind = "reservation_cancelled"
	EventSlotAdded            EventKind = "slot_added"
	EventSlotRemoved          EventKind = "slot_removed"
)

type Event struct {
	Kind          EventKind
	SlotID        int
	ReservationID string
	UserID        string
	OccurredAt    time.Time
}

// EventPublisher receives an event for every successful mutation. Publish is
// called while the manager holds its write lock and must not block.
type EventPublisher interface {
	Publish(evt Event)
}

type NopPublisher struct{}

func (NopPublisher) Publish(Event) {}
