package parking

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"smart-parking/internal/domain/reservation"
	"smart-parking/internal/domain/slot"
	"smart-parking/internal/domain/user"
	"smart-parking/internal/pkg/clock"
	"smart-parking/internal/pkg/errs"
	"smart-parking/internal/pkg/idgen"
)

// Manager owns the slot inventory and every reservation made against it.
// One RWMutex guards both maps: mutators hold the write lock across the whole
// check-then-set sequence, readers copy values out under the read lock.
type Manager struct {
	mu           sync.RWMutex
	slots        map[int]*slot.Slot
	reservations map[string]*reservation.Reservation

	clock     clock.Clock
	ids       idgen.Generator
	publisher EventPublisher
	logger    *slog.Logger
}

var (
	_ Commands = (*Manager)(nil)
	_ Queries  = (*Manager)(nil)
)

type Deps struct {
	Clock     clock.Clock
	IDs       idgen.Generator
	Publisher EventPublisher
	Logger    *slog.Logger
}

func (d Deps) withDefaults() Deps {
	if d.Clock == nil {
		d.Clock = clock.NewRealClock()
	}
	if d.IDs == nil {
		d.IDs = idgen.NewUUIDGenerator()
	}
	if d.Publisher == nil {
		d.Publisher = NopPublisher{}
	}
	if d.Logger == nil {
		d.Logger = slog.Default()
	}
	return d
}

// NewManager builds a manager seeded with layout. Seeding does not emit events.
func NewManager(deps Deps, layout []SlotSpec) (*Manager, error) {
	deps = deps.withDefaults()
	m := &Manager{
		slots:        make(map[int]*slot.Slot, len(layout)),
		reservations: make(map[string]*reservation.Reservation),
		clock:        deps.Clock,
		ids:          deps.IDs,
		publisher:    deps.Publisher,
		logger:       deps.Logger,
	}

	for _, spec := range layout {
		s, err := slot.NewSlot(spec.ID, spec.Location)
		if err != nil {
			return nil, invalidArgument(ErrInvalidSlot, "seed slot %d: %v", spec.ID, err)
		}
		if _, exists := m.slots[spec.ID]; exists {
			return nil, invalidState(ErrSlotExists, "seed slot %d", spec.ID)
		}
		m.slots[spec.ID] = s
	}
	return m, nil
}

// NewDefaultManager is NewManager over DefaultLayout.
func NewDefaultManager(deps Deps) *Manager {
	m, err := NewManager(deps, DefaultLayout())
	if err != nil {
		panic("default layout is invalid: " + err.Error())
	}
	return m
}

// -----------------------------------------------------------------------------
// Queries
// -----------------------------------------------------------------------------

func (m *Manager) ListAllSlots(_ context.Context) []slot.Slot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.collectSlots(func(*slot.Slot) bool { return true })
}

func (m *Manager) ListAvailableSlots(_ context.Context) []slot.Slot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.collectSlots((*slot.Slot).IsAvailable)
}

func (m *Manager) FindReservationByID(_ context.Context, id string) (reservation.Reservation, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	r, ok := m.reservations[id]
	if !ok {
		return reservation.Reservation{}, false
	}
	return r.Snapshot(), true
}

func (m *Manager) ListReservations(_ context.Context) []reservation.Reservation {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]reservation.Reservation, 0, len(m.reservations))
	for _, r := range m.reservations {
		out = append(out, r.Snapshot())
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt().Equal(out[j].CreatedAt()) {
			return out[i].CreatedAt().Before(out[j].CreatedAt())
		}
		return out[i].ID() < out[j].ID()
	})
	return out
}

func (m *Manager) Snapshot(_ context.Context) Summary {
	m.mu.RLock()
	defer m.mu.RUnlock()

	sum := Summary{
		TotalSlots:     len(m.slots),
		SlotsByState:   make(map[slot.State]int, 3),
		Reservations:   len(m.reservations),
		ReservationsBy: make(map[reservation.Status]int, 4),
	}
	for _, s := range m.slots {
		sum.SlotsByState[s.State()]++
	}
	for _, r := range m.reservations {
		sum.ReservationsBy[r.Status()]++
	}
	return sum
}

func (m *Manager) collectSlots(keep func(*slot.Slot) bool) []slot.Slot {
	out := make([]slot.Slot, 0, len(m.slots))
	for _, s := range m.slots {
		if keep(s) {
			out = append(out, *s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	return out
}

// -----------------------------------------------------------------------------
// Commands
// -----------------------------------------------------------------------------

func (m *Manager) ReserveSlot(ctx context.Context, u user.User, slotID int) (reservation.Reservation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.slots[slotID]
	if !ok {
		return reservation.Reservation{}, notFound(ErrSlotNotFound, "slot %d", slotID)
	}
	if !s.IsAvailable() {
		return reservation.Reservation{}, invalidState(ErrSlotUnavailable, "slot %d is %s", slotID, s.State())
	}

	token := m.ids.NewID()
	if _, taken := m.reservations[token]; taken {
		return reservation.Reservation{}, errs.Wrapf(ErrTokenCollision, "token %q", token)
	}

	now := m.clock.Now()
	r, err := reservation.NewReservation(token, u, s.ID(), s.Location(), now)
	if err != nil {
		return reservation.Reservation{}, errs.Wrap(err, "create reservation")
	}
	if err := s.Reserve(); err != nil {
		return reservation.Reservation{}, invalidState(ErrSlotUnavailable, "slot %d: %v", slotID, err)
	}
	m.reservations[token] = r

	m.emit(ctx, Event{Kind: EventSlotReserved, SlotID: slotID, ReservationID: token, UserID: u.ID(), OccurredAt: now})
	return r.Snapshot(), nil
}

func (m *Manager) OccupySlot(ctx context.Context, reservationID string) (reservation.Reservation, error) {
	return m.advance(ctx, reservationID, reservation.StatusReserved, EventSlotOccupied,
		(*slot.Slot).Occupy, (*reservation.Reservation).Occupy)
}

func (m *Manager) ReleaseSlot(ctx context.Context, reservationID string) (reservation.Reservation, error) {
	return m.advance(ctx, reservationID, reservation.StatusActive, EventSlotReleased,
		(*slot.Slot).Release, (*reservation.Reservation).Release)
}

func (m *Manager) CancelReservation(ctx context.Context, reservationID string) (reservation.Reservation, error) {
	return m.advance(ctx, reservationID, reservation.StatusReserved, EventReservationCancelled,
		(*slot.Slot).CancelReservation, (*reservation.Reservation).Cancel)
}

// advance runs one lifecycle step. Every precondition is checked before the
// first write so a failure leaves both records untouched.
func (m *Manager) advance(
	ctx context.Context,
	reservationID string,
	required reservation.Status,
	kind EventKind,
	slotStep func(*slot.Slot) error,
	resStep func(*reservation.Reservation, time.Time) error,
) (reservation.Reservation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	r, ok := m.reservations[reservationID]
	if !ok {
		return reservation.Reservation{}, notFound(ErrReservationNotFound, "reservation %q", reservationID)
	}
	if r.Status() != required {
		return reservation.Reservation{}, invalidState(ErrInvalidTransition,
			"reservation %q is %s, want %s", reservationID, r.Status(), required)
	}

	// A live reservation always has its slot: removal requires an available slot.
	s, ok := m.slots[r.SlotID()]
	if !ok {
		return reservation.Reservation{}, errs.Wrapf(ErrInconsistentState, "slot %d of reservation %q is missing", r.SlotID(), reservationID)
	}

	if err := slotStep(s); err != nil {
		return reservation.Reservation{}, errs.Wrapf(ErrInconsistentState,
			"slot %d is %s for %s reservation %q: %v", s.ID(), s.State(), r.Status(), reservationID, err)
	}
	now := m.clock.Now()
	if err := resStep(r, now); err != nil {
		// unreachable after the status check above
		return reservation.Reservation{}, errs.Wrap(err, "advance reservation")
	}

	m.emit(ctx, Event{Kind: kind, SlotID: s.ID(), ReservationID: reservationID, UserID: r.User().ID(), OccurredAt: now})
	return r.Snapshot(), nil
}

func (m *Manager) AddSlot(ctx context.Context, id int, location string) (slot.Slot, error) {
	s, err := slot.NewSlot(id, location)
	if err != nil {
		return slot.Slot{}, invalidArgument(ErrInvalidSlot, "slot %d: %v", id, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.slots[id]; exists {
		return slot.Slot{}, invalidState(ErrSlotExists, "slot %d", id)
	}
	m.slots[id] = s

	m.emit(ctx, Event{Kind: EventSlotAdded, SlotID: id, OccurredAt: m.clock.Now()})
	return *s, nil
}

func (m *Manager) RemoveSlot(ctx context.Context, id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.slots[id]
	if !ok {
		return notFound(ErrSlotNotFound, "slot %d", id)
	}
	if !s.IsAvailable() {
		return invalidState(ErrSlotInUse, "slot %d is %s", id, s.State())
	}
	delete(m.slots, id)

	m.emit(ctx, Event{Kind: EventSlotRemoved, SlotID: id, OccurredAt: m.clock.Now()})
	return nil
}

// emit must be called with the write lock held so publishers observe events
// in the same order the mutations were applied.
func (m *Manager) emit(ctx context.Context, evt Event) {
	m.logger.InfoContext(ctx, "parking state changed",
		slog.String("event", string(evt.Kind)),
		slog.Int("slot_id", evt.SlotID),
		slog.String("reservation_id", evt.ReservationID),
	)
	m.publisher.Publish(evt)
}
