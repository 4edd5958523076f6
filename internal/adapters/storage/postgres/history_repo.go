package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"pet-adoption/internal/domain/history"
)

type HistoryRepo struct {
	db *sql.DB
}

func NewHistoryRepo(db *sql.DB) *HistoryRepo {
	return &HistoryRepo{db: db}
}

func (r *HistoryRepo) Create(ctx context.Context, e history.Entry) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO pet_history (
			id, pet_id, type,
			actor_user_id, occurred_at, notes
		) VALUES ($1,$2,$3,$4,$5,$6)
	`,
		e.ID,
		e.PetID,
		string(e.Type),
		e.ActorUserID,
		e.OccurredAt,
		e.Notes,
	)
	return mapWriteErr(err)
}

func (r *HistoryRepo) ListByPet(ctx context.Context, petID string, filter history.ListFilter) ([]history.Entry, error) {
	petID = strings.TrimSpace(petID)
	if petID == "" {
		return []history.Entry{}, nil
	}

	sb := strings.Builder{}
	sb.WriteString(`
		SELECT
			id, pet_id, type,
			actor_user_id, occurred_at, notes
		FROM pet_history
		WHERE pet_id = $1
	`)

	args := []any{petID}
	argN := 2

	if len(filter.Types) > 0 {
		placeholders := make([]string, 0, len(filter.Types))
		for _, t := range filter.Types {
			placeholders = append(placeholders, fmt.Sprintf("$%d", argN))
			args = append(args, string(t))
			argN++
		}
		sb.WriteString(" AND type IN (" + strings.Join(placeholders, ",") + ")")
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = history.DefaultLimit
	}
	if limit > history.MaxLimit {
		limit = history.MaxLimit
	}

	sb.WriteString(" ORDER BY occurred_at DESC, seq DESC")
	sb.WriteString(fmt.Sprintf(" LIMIT $%d", argN))
	args = append(args, limit)

	rows, err := r.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]history.Entry, 0)
	for rows.Next() {
		var e history.Entry
		var typ string
		if err := rows.Scan(
			&e.ID,
			&e.PetID,
			&typ,
			&e.ActorUserID,
			&e.OccurredAt,
			&e.Notes,
		); err != nil {
			return nil, err
		}
		e.Type = history.EntryType(typ)
		out = append(out, e)
	}
	return out, rows.Err()
}
