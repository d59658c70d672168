package response

import (
	"time"

	"smart-parking/internal/domain/reservation"
)

type UserResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type ReservationResponse struct {
	ID           string       `json:"id"`
	SlotID       int          `json:"slotId"`
	SlotLocation string       `json:"slotLocation"`
	User         UserResponse `json:"user"`
	Status       string       `json:"status"`
	CreatedAt    time.Time    `json:"createdAt"`
	StartedAt    *time.Time   `json:"startedAt,omitempty"`
	EndedAt      *time.Time   `json:"endedAt,omitempty"`
}

func FromReservation(r reservation.Reservation) ReservationResponse {
	u := r.User()
	return ReservationResponse{
		ID:           r.ID(),
		SlotID:       r.SlotID(),
		SlotLocation: r.SlotLocation(),
		User: UserResponse{
			ID:    u.ID(),
			Name:  u.Name(),
			Email: u.Email(),
		},
		Status:    r.Status().String(),
		CreatedAt: r.CreatedAt(),
		StartedAt: r.StartedAt(),
		EndedAt:   r.EndedAt(),
	}
}

func FromReservations(rs []reservation.Reservation) []ReservationResponse {
	out := make([]ReservationResponse, len(rs))
	for i, r := range rs {
		out[i] = FromReservation(r)
	}
	return out
}
