package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/namesight7000-backend/internal/naming/model"
)

const insertEventsQuery = `
INSERT INTO naming_events (
	sequence,
	contract,
	kind,
	ledger_time,
	namehash,
	commitment,
	from_addr,
	to_addr,
	owner,
	resolver,
	addr,
	text_key,
	expires_at
) VALUES`

// InsertEvents stores event rows in ClickHouse.
func (r *Repository) InsertEvents(ctx context.Context, events []model.Event) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_events", err, start)
	}()

	if len(events) == 0 {
		return nil
	}

	batch, err := r.conn.PrepareBatch(ctx, insertEventsQuery)
	if err != nil {
		return fmt.Errorf("prepare events batch: %w", err)
	}

	for _, ev := range events {
		if err = batch.Append(
			ev.Sequence,
			string(ev.Contract),
			string(ev.Kind),
			ev.Timestamp,
			ev.Namehash.String(),
			ev.Commitment.String(),
			string(ev.From),
			string(ev.To),
			string(ev.Owner),
			string(ev.Resolver),
			string(ev.Addr),
			ev.Key,
			ev.ExpiresAt,
		); err != nil {
			return fmt.Errorf("append event %d: %w", ev.Sequence, err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert events: %w", err)
	}
	return nil
}
