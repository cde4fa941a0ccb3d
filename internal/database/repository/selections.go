package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// SelectionRepo handles the selection history.
type SelectionRepo struct {
	db  *sql.DB
	now func() time.Time
}

func NewSelectionRepo(db *sql.DB) *SelectionRepo {
	return &SelectionRepo{db: db, now: now}
}

// now is UTC truncated to seconds, matching SQLite CURRENT_TIMESTAMP.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}

// Record stores a pick of itemID made while the input held query.
func (r *SelectionRepo) Record(ctx context.Context, itemID, query string) (Selection, error) {
	s := Selection{ID: uuid.NewString(), ItemID: itemID, Query: query, SelectedAt: r.now()}
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO selections(id, item_id, query, selected_at) VALUES (?, ?, ?, ?);
	`, s.ID, s.ItemID, s.Query, s.SelectedAt)
	if err != nil {
		return Selection{}, err
	}
	return s, nil
}

// Recent returns up to limit distinct items, most recently selected first.
func (r *SelectionRepo) Recent(ctx context.Context, limit int) ([]RecentItem, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := r.db.QueryContext(ctx, `
	SELECT i.id, i.label, i.section, i.meta, i.search, i.created_at,
		COUNT(s.id) AS picks, MAX(s.selected_at) AS last_selected
	FROM selections s
	JOIN items i ON i.id = s.item_id
	GROUP BY i.id
	ORDER BY last_selected DESC, picks DESC
	LIMIT ?;
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []RecentItem
	for rows.Next() {
		var ri RecentItem
		var last string
		if err := rows.Scan(&ri.ID, &ri.Label, &ri.Section, &ri.Meta, &ri.Search, &ri.CreatedAt, &ri.Picks, &last); err != nil {
			return nil, err
		}
		ri.LastSelected = parseSQLiteTime(last)
		out = append(out, ri)
	}
	return out, rows.Err()
}

// Clear removes the whole history.
func (r *SelectionRepo) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM selections`)
	return err
}

var sqliteTimeLayouts = []string{
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02T15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
	time.RFC3339Nano,
}

// parseSQLiteTime parses aggregate results, which the driver returns as text.
func parseSQLiteTime(s string) time.Time {
	for _, layout := range sqliteTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC()
		}
	}
	return time.Time{}
}
