package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/namesight7000-backend/internal/naming/model"
)

const eventsByNamehashQuery = `
SELECT
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
FROM naming_events FINAL
WHERE namehash = ?
ORDER BY sequence
LIMIT ?`

// EventsByNamehash returns the history of one node, oldest first.
func (r *Repository) EventsByNamehash(ctx context.Context, node model.Hash, limit uint64) (_ []model.Event, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("events_by_namehash", err, start)
	}()

	rows, err := r.conn.Query(ctx, eventsByNamehashQuery, node.String(), limit)
	if err != nil {
		return nil, fmt.Errorf("query events: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	var events []model.Event
	for rows.Next() {
		var (
			ev                                   model.Event
			contract, kind, namehash, commitment string
			from, to, owner, resolver, addr      string
		)
		if err = rows.Scan(
			&ev.Sequence,
			&contract,
			&kind,
			&ev.Timestamp,
			&namehash,
			&commitment,
			&from,
			&to,
			&owner,
			&resolver,
			&addr,
			&ev.Key,
			&ev.ExpiresAt,
		); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		if ev.Namehash, err = model.HashFromHex(namehash); err != nil {
			return nil, fmt.Errorf("decode namehash: %w", err)
		}
		if ev.Commitment, err = model.HashFromHex(commitment); err != nil {
			return nil, fmt.Errorf("decode commitment: %w", err)
		}
		ev.Contract = model.Address(contract)
		ev.Kind = model.EventKind(kind)
		ev.From = model.Address(from)
		ev.To = model.Address(to)
		ev.Owner = model.Address(owner)
		ev.Resolver = model.Address(resolver)
		ev.Addr = model.Address(addr)
		events = append(events, ev)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate events: %w", err)
	}
	return events, nil
}
