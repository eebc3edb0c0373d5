package repo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/EFREI-M2-Dev/Back-Web-Final-Fred-Choco-SL/internal/model"
)

type StatusRepo struct {
	pool *pgxpool.Pool
}

func NewStatusRepo(pool *pgxpool.Pool) *StatusRepo {
	return &StatusRepo{
		pool: pool,
	}
}

func (r *StatusRepo) ListAll(ctx context.Context) ([]model.Status, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name
		FROM statuses
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanStatuses(rows)
}

// ListForProject находит статусы через задачи проекта: статус без задач
// в этом проекте в выборку не попадет
func (r *StatusRepo) ListForProject(ctx context.Context, projectID int64) ([]model.Status, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT DISTINCT s.id, s.name
		FROM statuses s
		JOIN tasks t ON t.status_id = s.id
		WHERE t.project_id = $1
		ORDER BY s.id
	`, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanStatuses(rows)
}

func (r *StatusRepo) Create(ctx context.Context, name string) (model.Status, error) {
	var s model.Status
	err := r.pool.QueryRow(ctx, `
		INSERT INTO statuses (name)
		VALUES ($1)
		RETURNING id, name
	`, name).Scan(&s.ID, &s.Name)
	return s, err
}

func (r *StatusRepo) Update(ctx context.Context, id int64, name string) (model.Status, error) {
	var s model.Status
	err := r.pool.QueryRow(ctx, `
		UPDATE statuses
		SET name = $2
		WHERE id = $1
		RETURNING id, name
	`, id, name).Scan(&s.ID, &s.Name)

	if err == pgx.ErrNoRows {
		return s, ErrorNotFound
	}
	return s, err
}

func (r *StatusRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, "DELETE FROM statuses WHERE id = $1", id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrorNotFound
	}
	return nil
}

func scanStatuses(rows pgx.Rows) ([]model.Status, error) {
	statuses := make([]model.Status, 0)
	for rows.Next() {
		var s model.Status
		if err := rows.Scan(&s.ID, &s.Name); err != nil {
			return nil, err
		}
		statuses = append(statuses, s)
	}
	return statuses, rows.Err()
}
