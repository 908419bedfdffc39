package repository

import (
	"context"
	"database/sql"
)

// TurnRepo handles conversation turns.
type TurnRepo struct {
	db *sql.DB
}

func NewTurnRepo(db *sql.DB) *TurnRepo { return &TurnRepo{db: db} }

func (r *TurnRepo) Insert(ctx context.Context, t Turn) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO turns(id, created_at, model, user_prompt, system_prompt, context, response)
	VALUES (?, ?, ?, ?, ?, ?, ?);
	`, t.ID, t.CreatedAt, t.Model, t.UserPrompt, t.SystemPrompt, t.Context, t.Response)
	return err
}

// List returns all turns oldest first.
func (r *TurnRepo) List(ctx context.Context) ([]Turn, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, created_at, model, user_prompt, system_prompt, context, response
	FROM turns ORDER BY created_at, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTurns(rows)
}

// Recent returns the newest count turns, oldest first.
func (r *TurnRepo) Recent(ctx context.Context, count int) ([]Turn, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, created_at, model, user_prompt, system_prompt, context, response
	FROM (
		SELECT * FROM turns ORDER BY created_at DESC, id DESC LIMIT ?
	) ORDER BY created_at, id`, count)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTurns(rows)
}

func (r *TurnRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM turns`).Scan(&n)
	return n, err
}

// TrimTo deletes the oldest turns so at most max remain.
func (r *TurnRepo) TrimTo(ctx context.Context, max int) error {
	_, err := r.db.ExecContext(ctx, `
	DELETE FROM turns WHERE id NOT IN (
		SELECT id FROM turns ORDER BY created_at DESC, id DESC LIMIT ?
	);`, max)
	return err
}

func (r *TurnRepo) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM turns`)
	return err
}

func scanTurns(rows *sql.Rows) ([]Turn, error) {
	var out []Turn
	for rows.Next() {
		var t Turn
		if err := rows.Scan(&t.ID, &t.CreatedAt, &t.Model, &t.UserPrompt, &t.SystemPrompt, &t.Context, &t.Response); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}
