package repo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/EFREI-M2-Dev/Back-Web-Final-Fred-Choco-SL/internal/model"
)

type TagRepo struct {
	pool *pgxpool.Pool
}

func NewTagRepo(pool *pgxpool.Pool) *TagRepo {
	return &TagRepo{
		pool: pool,
	}
}

func (r *TagRepo) ListForProject(ctx context.Context, projectID int64) ([]model.Tag, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT project_id, id, name
		FROM tags
		WHERE project_id = $1
		ORDER BY id
	`, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tags := make([]model.Tag, 0)
	for rows.Next() {
		var t model.Tag
		if err := rows.Scan(&t.ProjectID, &t.ID, &t.Name); err != nil {
			return nil, err
		}
		tags = append(tags, t)
	}
	return tags, rows.Err()
}

// NextID читает max(id)+1 внутри проекта. Чтение и последующая вставка
// не атомарны: параллельные создатели могут получить один и тот же id,
// проигравший упадет на уникальном ключе (ErrorConflict)
func (r *TagRepo) NextID(ctx context.Context, projectID int64) (int64, error) {
	var next int64
	err := r.pool.QueryRow(ctx, `
		SELECT COALESCE(MAX(id), 0) + 1 FROM tags WHERE project_id = $1
	`, projectID).Scan(&next)
	return next, err
}

func (r *TagRepo) Create(ctx context.Context, t model.Tag) (model.Tag, error) {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO tags (project_id, id, name)
		VALUES ($1, $2, $3)
		RETURNING project_id, id, name
	`, t.ProjectID, t.ID, t.Name).Scan(&t.ProjectID, &t.ID, &t.Name)
	return t, mapError(err)
}

func (r *TagRepo) Update(ctx context.Context, t model.Tag) (model.Tag, error) {
	err := r.pool.QueryRow(ctx, `
		UPDATE tags
		SET name = $3
		WHERE project_id = $1 AND id = $2
		RETURNING project_id, id, name
	`, t.ProjectID, t.ID, t.Name).Scan(&t.ProjectID, &t.ID, &t.Name)

	if err == pgx.ErrNoRows {
		return t, ErrorNotFound
	}
	return t, err
}

func (r *TagRepo) Delete(ctx context.Context, projectID, id int64) error {
	cmd, err := r.pool.Exec(ctx, "DELETE FROM tags WHERE project_id = $1 AND id = $2", projectID, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrorNotFound
	}
	return nil
}
