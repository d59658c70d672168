package parking_test

import (
	"context"
	"testing"
	"time"

	"smart-parking/internal/pkg/clock"
	"smart-parking/internal/pkg/idgen"
	"smart-parking/internal/usecase/parking"
	parkingmock "smart-parking/tests/mock/parking"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestManagerPublishesOnlyOnSuccess(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	pub := parkingmock.NewMockEventPublisher(ctrl)

	m, err := parking.NewManager(parking.Deps{
		Clock:     clock.NewMockClock(base),
		IDs:       idgen.FixedGenerator("res-fixed"),
		Publisher: pub,
	}, parking.DefaultLayout())
	require.NoError(t, err)

	pub.EXPECT().Publish(parking.Event{
		Kind:          parking.EventSlotReserved,
		SlotID:        3,
		ReservationID: "res-fixed",
		UserID:        alice.ID(),
		OccurredAt:    base,
	}).Times(1)

	_, err = m.ReserveSlot(ctx, alice, 3)
	require.NoError(t, err)

	// Every call below fails, so no further Publish is expected.
	_, err = m.ReserveSlot(ctx, bob, 3)
	require.Error(t, err)
	_, err = m.ReserveSlot(ctx, bob, 4)
	require.Error(t, err, "fixed generator must collide on the second token")
	_, err = m.ReleaseSlot(ctx, "res-fixed")
	require.Error(t, err)
	_, err = m.OccupySlot(ctx, "missing")
	require.Error(t, err)
	require.Error(t, m.RemoveSlot(ctx, 3))
	_, err = m.AddSlot(ctx, 3, "dup")
	require.Error(t, err)
}

func TestManagerEventTimestampsFollowClock(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	pub := parkingmock.NewMockEventPublisher(ctrl)
	clk := clock.NewMockClock(base)

	m, err := parking.NewManager(parking.Deps{
		Clock:     clk,
		IDs:       idgen.NewSequenceGenerator("res"),
		Publisher: pub,
	}, parking.DefaultLayout())
	require.NoError(t, err)

	gomock.InOrder(
		pub.EXPECT().Publish(gomock.Cond(func(evt parking.Event) bool {
			return evt.Kind == parking.EventSlotReserved && evt.OccurredAt.Equal(base)
		})),
		pub.EXPECT().Publish(gomock.Cond(func(evt parking.Event) bool {
			return evt.Kind == parking.EventReservationCancelled && evt.OccurredAt.Equal(base.Add(time.Hour))
		})),
	)

	res, err := m.ReserveSlot(ctx, alice, 1)
	require.NoError(t, err)
	clk.Add(time.Hour)
	_, err = m.CancelReservation(ctx, res.ID())
	require.NoError(t, err)
}
