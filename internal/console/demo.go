// Package console renders the parking inventory as text and drives the
// scripted walkthrough used by cmd/demo.
package console

import (
	"context"
	"fmt"
	"io"
	"time"

	"smart-parking/internal/domain/reservation"
	"smart-parking/internal/domain/slot"
	"smart-parking/internal/domain/user"
	"smart-parking/internal/pkg/errs"
	"smart-parking/internal/usecase/parking"
)

type Service interface {
	parking.Commands
	parking.Queries
}

var ErrNoSlotsAvailable = errs.New("no slots available")

// Run lists the inventory, then reserves, occupies and releases the first
// available slot for driver. It stops at the first failing step.
func Run(ctx context.Context, w io.Writer, svc Service, driver user.User) error {
	p := &printer{w: w}

	p.line("Available slots (initial):")
	available := svc.ListAvailableSlots(ctx)
	p.slots(available)
	if len(available) == 0 {
		p.line("No slots available")
		return ErrNoSlotsAvailable
	}

	chosen := available[0]
	p.line("Driver %s reserves slot %s", driver.Name(), chosen.Location())
	res, err := svc.ReserveSlot(ctx, driver, chosen.ID())
	if err != nil {
		return errs.Wrap(err, "reserve")
	}
	p.line("Reservation created: %s", res.ID())

	p.line("Available slots (after reserve):")
	p.slots(svc.ListAvailableSlots(ctx))

	p.line("Driver entering, occupying slot for reservation %s", res.ID())
	if _, err := svc.OccupySlot(ctx, res.ID()); err != nil {
		return errs.Wrap(err, "occupy")
	}
	p.line("Slot occupied. Current reservations:")
	for _, r := range svc.ListReservations(ctx) {
		p.reservation(r)
	}

	p.line("Driver exiting, releasing slot for reservation %s", res.ID())
	if _, err := svc.ReleaseSlot(ctx, res.ID()); err != nil {
		return errs.Wrap(err, "release")
	}
	p.line("Slot released. Reservation complete:")
	if done, ok := svc.FindReservationByID(ctx, res.ID()); ok {
		p.reservation(done)
	}

	p.line("Available slots (final):")
	p.slots(svc.ListAvailableSlots(ctx))

	return p.err
}

// printer remembers the first write error so the walkthrough reads linearly.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) line(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format+"\n", args...)
}

func (p *printer) slots(ss []slot.Slot) {
	if len(ss) == 0 {
		p.line("  (none)")
		return
	}
	for _, s := range ss {
		p.line("  %d - %s", s.ID(), s.Location())
	}
}

func (p *printer) reservation(r reservation.Reservation) {
	p.line("  %s", FormatReservation(r))
}

func FormatReservation(r reservation.Reservation) string {
	out := fmt.Sprintf("Reservation{id=%s, user=%s, slot=%d (%s), status=%s, created=%s",
		r.ID(), r.User(), r.SlotID(), r.SlotLocation(), r.Status(), r.CreatedAt().Format(time.RFC3339))
	if t := r.StartedAt(); t != nil {
		out += ", started=" + t.Format(time.RFC3339)
	}
	if t := r.EndedAt(); t != nil {
		out += ", ended=" + t.Format(time.RFC3339)
	}
	return out + "}"
}
