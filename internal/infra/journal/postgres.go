package journal

import (
	"context"
	_ "embed"
	"log/slog"

	"smart-parking/internal/infra"
	"smart-parking/internal/pkg/pgconv"
	"smart-parking/internal/usecase/parking"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed schema.sql
var schemaSQL string

const (
	insertEventSQL = `
INSERT INTO parking_events (kind, slot_id, reservation_id, user_id, occurred_at)
VALUES ($1, $2, $3, $4, $5)`

	listEventsSQL = `
SELECT kind, slot_id, reservation_id, user_id, occurred_at
FROM parking_events
ORDER BY seq ASC
LIMIT $1`

	latestForReservationSQL = `
SELECT kind, slot_id, reservation_id, user_id, occurred_at
FROM parking_events
WHERE reservation_id = $1
ORDER BY seq DESC
LIMIT 1`
)

type PostgresStore struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewPostgresStore(pool *pgxpool.Pool, logger *slog.Logger) *PostgresStore {
	return &PostgresStore{pool: pool, logger: logger}
}

// Migrate creates the events table if it does not exist.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, schemaSQL); err != nil {
		return infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to migrate parking_events", err)
	}
	return nil
}

func (s *PostgresStore) Append(ctx context.Context, evt parking.Event) error {
	_, err := s.pool.Exec(ctx, insertEventSQL,
		string(evt.Kind),
		evt.SlotID,
		pgconv.NullableText(evt.ReservationID),
		pgconv.NullableText(evt.UserID),
		pgconv.TimeToPgtype(evt.OccurredAt),
	)
	if err != nil {
		if ctx.Err() != nil {
			return infra.WrapRepoErr(s.logger, infra.KindTimeout, "append parking event timed out", err)
		}
		return infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to append parking event", err)
	}
	return nil
}

// Recent returns up to limit events in the order they were recorded.
func (s *PostgresStore) Recent(ctx context.Context, limit int) ([]parking.Event, error) {
	rows, err := s.pool.Query(ctx, listEventsSQL, limit)
	if err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to list parking events", err)
	}
	defer rows.Close()

	var out []parking.Event
	for rows.Next() {
		evt, err := scanEvent(rows)
		if err != nil {
			return nil, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to scan parking event", err)
		}
		out = append(out, evt)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to iterate parking events", err)
	}
	return out, nil
}

// LatestFor returns the most recent event recorded for a reservation.
func (s *PostgresStore) LatestFor(ctx context.Context, reservationID string) (parking.Event, error) {
	evt, err := scanEvent(s.pool.QueryRow(ctx, latestForReservationSQL, reservationID))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return parking.Event{}, infra.WrapRepoErr(s.logger, infra.KindNotFound, "no events for reservation "+reservationID, err)
		}
		return parking.Event{}, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to read parking event", err)
	}
	return evt, nil
}

func scanEvent(row pgx.Row) (parking.Event, error) {
	var (
		kind          string
		slotID        int32
		reservationID pgtype.Text
		userID        pgtype.Text
		occurredAt    pgtype.Timestamptz
	)
	if err := row.Scan(&kind, &slotID, &reservationID, &userID, &occurredAt); err != nil {
		return parking.Event{}, err
	}
	return parking.Event{
		Kind:          parking.EventKind(kind),
		SlotID:        int(slotID),
		ReservationID: pgconv.StringFromPgtype(reservationID),
		UserID:        pgconv.StringFromPgtype(userID),
		OccurredAt:    pgconv.TimeFromPgtype(occurredAt),
	}, nil
}
