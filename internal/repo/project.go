package repo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/EFREI-M2-Dev/Back-Web-Final-Fred-Choco-SL/internal/model"
)

type ProjectRepo struct {
	pool *pgxpool.Pool
}

func NewProjectRepo(pool *pgxpool.Pool) *ProjectRepo {
	return &ProjectRepo{
		pool: pool,
	}
}

// ListForUser возвращает проекты, где пользователь состоит участником,
// вместе с их задачами и тегами
func (r *ProjectRepo) ListForUser(ctx context.Context, userID int64) ([]model.Project, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT p.id, p.name, p.description
		FROM projects p
		JOIN project_members m ON m.project_id = p.id
		WHERE m.user_id = $1
		ORDER BY p.id
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	projects := make([]model.Project, 0)
	ids := make([]int64, 0)
	for rows.Next() {
		var p model.Project
		if err := rows.Scan(&p.ID, &p.Name, &p.Description); err != nil {
			return nil, err
		}
		projects = append(projects, p)
		ids = append(ids, p.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(projects) == 0 {
		return projects, nil
	}

	tasksByProject, err := r.tasksForProjects(ctx, ids)
	if err != nil {
		return nil, err
	}
	tagsByProject, err := r.tagsForProjects(ctx, ids)
	if err != nil {
		return nil, err
	}

	for i := range projects {
		projects[i].Tasks = tasksByProject[projects[i].ID]
		projects[i].Tags = tagsByProject[projects[i].ID]
	}
	return projects, nil
}

func (r *ProjectRepo) Get(ctx context.Context, id int64) (model.Project, error) {
	var p model.Project
	err := r.pool.QueryRow(ctx, `
		SELECT id, name, description
		FROM projects
		WHERE id = $1
	`, id).Scan(&p.ID, &p.Name, &p.Description)

	if err == pgx.ErrNoRows {
		return p, ErrorNotFound
	}
	return p, err
}

// Create создает проект и сразу привязывает создателя как участника,
// обе записи в одной транзакции
func (r *ProjectRepo) Create(ctx context.Context, p model.Project, ownerID int64) (model.Project, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return p, err
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx, `
		INSERT INTO projects (name, description)
		VALUES ($1, $2)
		RETURNING id, name, description
	`, p.Name, p.Description).Scan(&p.ID, &p.Name, &p.Description)
	if err != nil {
		return p, mapError(err)
	}

	if _, err := tx.Exec(ctx, `
		INSERT INTO project_members (project_id, user_id) VALUES ($1, $2)
	`, p.ID, ownerID); err != nil {
		return p, mapError(err)
	}

	return p, tx.Commit(ctx)
}

func (r *ProjectRepo) Update(ctx context.Context, p model.Project) (model.Project, error) {
	err := r.pool.QueryRow(ctx, `
		UPDATE projects
		SET name = $2, description = $3
		WHERE id = $1
		RETURNING id, name, description
	`, p.ID, p.Name, p.Description).Scan(&p.ID, &p.Name, &p.Description)

	if err == pgx.ErrNoRows {
		return p, ErrorNotFound
	}
	return p, err
}

func (r *ProjectRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, "DELETE FROM projects WHERE id = $1", id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrorNotFound
	}
	return nil
}

func (r *ProjectRepo) tasksForProjects(ctx context.Context, ids []int64) (map[int64][]model.Task, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT project_id, id, name, description, status_id, creator_id, assignee_id
		FROM tasks
		WHERE project_id = ANY($1)
		ORDER BY project_id, id
	`, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	byProject := make(map[int64][]model.Task)
	for rows.Next() {
		var t model.Task
		if err := rows.Scan(&t.ProjectID, &t.ID, &t.Name, &t.Description, &t.StatusID, &t.CreatorID, &t.AssigneeID); err != nil {
			return nil, err
		}
		t.Tags = make([]model.Tag, 0)
		byProject[t.ProjectID] = append(byProject[t.ProjectID], t)
	}
	return byProject, rows.Err()
}

func (r *ProjectRepo) tagsForProjects(ctx context.Context, ids []int64) (map[int64][]model.Tag, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT project_id, id, name
		FROM tags
		WHERE project_id = ANY($1)
		ORDER BY project_id, id
	`, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	byProject := make(map[int64][]model.Tag)
	for rows.Next() {
		var t model.Tag
		if err := rows.Scan(&t.ProjectID, &t.ID, &t.Name); err != nil {
			return nil, err
		}
		byProject[t.ProjectID] = append(byProject[t.ProjectID], t)
	}
	return byProject, rows.Err()
}
