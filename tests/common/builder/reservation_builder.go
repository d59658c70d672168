package builder

import (
	"fmt"
	"time"

	"smart-parking/internal/domain/reservation"
	reqdto "smart-parking/internal/handler/dto/request"
)

type ReservationBuilder struct {
	ID           string
	User         *UserBuilder
	SlotID       int
	SlotLocation string
	CreatedAt    time.Time
	Status       reservation.Status
	// Step is the time between consecutive lifecycle transitions.
	Step time.Duration
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		ID:           "res-0001",
		User:         NewUserBuilder(),
		SlotID:       1,
		SlotLocation: "A1",
		CreatedAt:    time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC),
		Status:       reservation.StatusReserved,
		Step:         time.Hour,
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) Build() reservation.Reservation {
	r, err := reservation.NewReservation(b.ID, b.User.Build(), b.SlotID, b.SlotLocation, b.CreatedAt)
	if err != nil {
		panic(fmt.Sprintf("builder: invalid reservation: %v", err))
	}
	at := b.CreatedAt
	next := func() time.Time {
		at = at.Add(b.Step)
		return at
	}
	switch b.Status {
	case reservation.StatusActive:
		mustStep(r.Occupy(next()))
	case reservation.StatusCompleted:
		mustStep(r.Occupy(next()))
		mustStep(r.Release(next()))
	case reservation.StatusCancelled:
		mustStep(r.Cancel(next()))
	}
	return r.Snapshot()
}

func (b *ReservationBuilder) BuildCreateRequestDTO() reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		SlotID: b.SlotID,
		User:   b.User.BuildRequestDTO(),
	}
}
