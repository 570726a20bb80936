package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/meetcal/meetcal/store"
)

func (d *DB) CreateSlot(ctx context.Context, create *store.Slot) (*store.Slot, error) {
	slot, err := createSlotTx(ctx, d.db, create)
	if err != nil {
		return nil, err
	}
	return slot, nil
}

// execer covers both *sql.DB and *sql.Tx so the insert can run inside
// ReplacePersonSlots' transaction.
type execer interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func createSlotTx(ctx context.Context, e execer, create *store.Slot) (*store.Slot, error) {
	fields := []string{"uid", "person_id", "start_ts", "end_ts"}
	placeholderValues := []any{create.UID, create.PersonID, create.StartTs, create.EndTs}

	if create.CreatedTs != 0 {
		fields = append(fields, "created_ts")
		placeholderValues = append(placeholderValues, create.CreatedTs)
	}

	stmt := `INSERT INTO slot (` + strings.Join(fields, ", ") + `)
		VALUES (` + placeholders(len(placeholderValues)) + `)
		RETURNING id, created_ts`

	if err := e.QueryRowContext(ctx, stmt, placeholderValues...).Scan(
		&create.ID,
		&create.CreatedTs,
	); err != nil {
		return nil, fmt.Errorf("failed to create slot: %w", err)
	}

	return create, nil
}

func (d *DB) ListSlots(ctx context.Context, find *store.FindSlot) ([]*store.Slot, error) {
	where, args := []string{"1 = 1"}, []any{}

	if v := find.ID; v != nil {
		where, args = append(where, "slot.id = "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := find.UID; v != nil {
		where, args = append(where, "slot.uid = "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := find.PersonID; v != nil {
		where, args = append(where, "slot.person_id = "+placeholder(len(args)+1)), append(args, *v)
	}

	// Ordering (always by start_ts ascending).
	query := `
		SELECT id, uid, person_id, created_ts, start_ts, end_ts
		FROM slot
		WHERE ` + strings.Join(where, " AND ") + ` ORDER BY slot.start_ts ASC`

	rows, err := d.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query slots: %w", err)
	}
	defer rows.Close()

	list := make([]*store.Slot, 0)
	for rows.Next() {
		var slot store.Slot
		if err := rows.Scan(
			&slot.ID,
			&slot.UID,
			&slot.PersonID,
			&slot.CreatedTs,
			&slot.StartTs,
			&slot.EndTs,
		); err != nil {
			return nil, fmt.Errorf("failed to scan slot: %w", err)
		}
		list = append(list, &slot)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate slots: %w", err)
	}

	return list, nil
}

func (d *DB) DeleteSlot(ctx context.Context, delete *store.DeleteSlot) error {
	if _, err := d.db.ExecContext(ctx, "DELETE FROM slot WHERE id = ?", delete.ID); err != nil {
		return fmt.Errorf("failed to delete slot: %w", err)
	}
	return nil
}

func (d *DB) ReplacePersonSlots(ctx context.Context, personID int32, slots []*store.Slot) ([]*store.Slot, error) {
	tx, err := d.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, "DELETE FROM slot WHERE person_id = ?", personID); err != nil {
		return nil, fmt.Errorf("failed to clear slots: %w", err)
	}

	replaced := make([]*store.Slot, 0, len(slots))
	for _, slot := range slots {
		slot.PersonID = personID
		stored, err := createSlotTx(ctx, tx, slot)
		if err != nil {
			return nil, err
		}
		replaced = append(replaced, stored)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit slot replacement: %w", err)
	}
	return replaced, nil
}
