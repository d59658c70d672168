package response

import (
	"smart-parking/internal/domain/reservation"
	"smart-parking/internal/domain/slot"
	"smart-parking/internal/usecase/parking"
)

type SlotResponse struct {
	ID       int    `json:"id"`
	Location string `json:"location"`
	State    string `json:"state"`
	Occupied bool   `json:"occupied"`
	Reserved bool   `json:"reserved"`
}

func FromSlot(s slot.Slot) SlotResponse {
	return SlotResponse{
		ID:       s.ID(),
		Location: s.Location(),
		State:    s.State().String(),
		Occupied: s.Occupied(),
		Reserved: s.Reserved(),
	}
}

func FromSlots(ss []slot.Slot) []SlotResponse {
	out := make([]SlotResponse, len(ss))
	for i, s := range ss {
		out[i] = FromSlot(s)
	}
	return out
}

type SummaryResponse struct {
	TotalSlots     int            `json:"totalSlots"`
	SlotsByState   map[string]int `json:"slotsByState"`
	Reservations   int            `json:"reservations"`
	ReservationsBy map[string]int `json:"reservationsByStatus"`
}

// FromSummary reports every known state and status, including zero counts.
func FromSummary(s parking.Summary) SummaryResponse {
	resp := SummaryResponse{
		TotalSlots:     s.TotalSlots,
		SlotsByState:   make(map[string]int),
		Reservations:   s.Reservations,
		ReservationsBy: make(map[string]int),
	}
	for _, st := range []slot.State{slot.StateAvailable, slot.StateReserved, slot.StateOccupied} {
		resp.SlotsByState[st.String()] = s.SlotsByState[st]
	}
	for _, st := range []reservation.Status{
		reservation.StatusReserved, reservation.StatusActive,
		reservation.StatusCompleted, reservation.StatusCancelled,
	} {
		resp.ReservationsBy[st.String()] = s.ReservationsBy[st]
	}
	return resp
}
