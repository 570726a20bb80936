package sqlite

import (
	"context"
	"fmt"
	"strings"

	"github.com/meetcal/meetcal/store"
)

func (d *DB) CreatePerson(ctx context.Context, create *store.Person) (*store.Person, error) {
	fields := []string{"username", "nickname"}
	placeholderValues := []any{create.Username, create.Nickname}

	if create.CreatedTs != 0 {
		fields = append(fields, "created_ts")
		placeholderValues = append(placeholderValues, create.CreatedTs)
	}
	if create.UpdatedTs != 0 {
		fields = append(fields, "updated_ts")
		placeholderValues = append(placeholderValues, create.UpdatedTs)
	}

	stmt := `INSERT INTO person (` + strings.Join(fields, ", ") + `)
		VALUES (` + placeholders(len(placeholderValues)) + `)
		RETURNING id, created_ts, updated_ts`

	if err := d.db.QueryRowContext(ctx, stmt, placeholderValues...).Scan(
		&create.ID,
		&create.CreatedTs,
		&create.UpdatedTs,
	); err != nil {
		return nil, fmt.Errorf("failed to create person: %w", err)
	}

	return create, nil
}

func (d *DB) ListPersons(ctx context.Context, find *store.FindPerson) ([]*store.Person, error) {
	where, args := []string{"1 = 1"}, []any{}

	if v := find.ID; v != nil {
		where, args = append(where, "person.id = "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := find.Username; v != nil {
		where, args = append(where, "person.username = "+placeholder(len(args)+1)), append(args, *v)
	}

	query := `
		SELECT id, username, nickname, created_ts, updated_ts
		FROM person
		WHERE ` + strings.Join(where, " AND ") + ` ORDER BY person.id ASC`

	if find.Limit != nil {
		query = fmt.Sprintf("%s LIMIT %d", query, *find.Limit)
		if find.Offset != nil {
			query = fmt.Sprintf("%s OFFSET %d", query, *find.Offset)
		}
	}

	rows, err := d.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query persons: %w", err)
	}
	defer rows.Close()

	list := make([]*store.Person, 0)
	for rows.Next() {
		var person store.Person
		if err := rows.Scan(
			&person.ID,
			&person.Username,
			&person.Nickname,
			&person.CreatedTs,
			&person.UpdatedTs,
		); err != nil {
			return nil, fmt.Errorf("failed to scan person: %w", err)
		}
		list = append(list, &person)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate persons: %w", err)
	}

	return list, nil
}

func (d *DB) DeletePerson(ctx context.Context, delete *store.DeletePerson) error {
	// Slots go with the person via ON DELETE CASCADE.
	if _, err := d.db.ExecContext(ctx, "DELETE FROM person WHERE id = ?", delete.ID); err != nil {
		return fmt.Errorf("failed to delete person: %w", err)
	}
	return nil
}
