package repo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/EFREI-M2-Dev/Back-Web-Final-Fred-Choco-SL/internal/model"
)

type TaskRepo struct { // Репозиторий для работы непосредственно с БД
	pool *pgxpool.Pool
}

func NewTaskRepo(pool *pgxpool.Pool) *TaskRepo { // Конструктор
	return &TaskRepo{
		pool: pool,
	}
}

// ListForProject возвращает задачи проекта вместе со статусом и тегами
func (r *TaskRepo) ListForProject(ctx context.Context, projectID int64) ([]model.Task, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT t.project_id, t.id, t.name, t.description, t.status_id,
		       t.creator_id, t.assignee_id, s.id, s.name
		FROM tasks t
		JOIN statuses s ON s.id = t.status_id
		WHERE t.project_id = $1
		ORDER BY t.id
	`, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := make([]model.Task, 0)
	for rows.Next() {
		t, err := scanTaskWithStatus(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.fillTags(ctx, projectID, tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *TaskRepo) Get(ctx context.Context, projectID, id int64) (model.Task, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT t.project_id, t.id, t.name, t.description, t.status_id,
		       t.creator_id, t.assignee_id, s.id, s.name
		FROM tasks t
		JOIN statuses s ON s.id = t.status_id
		WHERE t.project_id = $1 AND t.id = $2
	`, projectID, id)

	t, err := scanTaskWithStatus(row)
	if err == pgx.ErrNoRows {
		return t, ErrorNotFound
	}
	if err != nil {
		return t, err
	}

	tasks := []model.Task{t}
	if err := r.fillTags(ctx, projectID, tasks); err != nil {
		return t, err
	}
	return tasks[0], nil
}

// NextID читает max(id)+1 внутри проекта, та же гонка что и у тегов
func (r *TaskRepo) NextID(ctx context.Context, projectID int64) (int64, error) {
	var next int64
	err := r.pool.QueryRow(ctx, `
		SELECT COALESCE(MAX(id), 0) + 1 FROM tasks WHERE project_id = $1
	`, projectID).Scan(&next)
	return next, err
}

func (r *TaskRepo) Create(ctx context.Context, t model.Task) (model.Task, error) {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO tasks (project_id, id, name, description, status_id, creator_id, assignee_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING project_id, id, name, description, status_id, creator_id, assignee_id
	`, t.ProjectID, t.ID, t.Name, t.Description, t.StatusID, t.CreatorID, t.AssigneeID).Scan(
		&t.ProjectID, &t.ID, &t.Name, &t.Description, &t.StatusID, &t.CreatorID, &t.AssigneeID,
	)
	if t.Tags == nil {
		t.Tags = make([]model.Tag, 0)
	}
	return t, mapError(err)
}

// Update полностью заменяет name/description/status_id по составному ключу
func (r *TaskRepo) Update(ctx context.Context, t model.Task) (model.Task, error) {
	err := r.pool.QueryRow(ctx, `
		UPDATE tasks
		SET name = $3, description = $4, status_id = $5
		WHERE project_id = $1 AND id = $2
		RETURNING project_id, id, name, description, status_id, creator_id, assignee_id
	`, t.ProjectID, t.ID, t.Name, t.Description, t.StatusID).Scan(
		&t.ProjectID, &t.ID, &t.Name, &t.Description, &t.StatusID, &t.CreatorID, &t.AssigneeID,
	)

	if err == pgx.ErrNoRows {
		return t, ErrorNotFound
	}
	if t.Tags == nil {
		t.Tags = make([]model.Tag, 0)
	}
	return t, err
}

func (r *TaskRepo) Delete(ctx context.Context, projectID, id int64) error {
	cmd, err := r.pool.Exec(ctx, "DELETE FROM tasks WHERE project_id = $1 AND id = $2", projectID, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrorNotFound
	}
	return nil
}

func (r *TaskRepo) fillTags(ctx context.Context, projectID int64, tasks []model.Task) error {
	if len(tasks) == 0 {
		return nil
	}

	rows, err := r.pool.Query(ctx, `
		SELECT tt.task_id, g.project_id, g.id, g.name
		FROM task_tags tt
		JOIN tags g ON g.project_id = tt.project_id AND g.id = tt.tag_id
		WHERE tt.project_id = $1
		ORDER BY tt.task_id, g.id
	`, projectID)
	if err != nil {
		return err
	}
	defer rows.Close()

	byTask := make(map[int64][]model.Tag)
	for rows.Next() {
		var taskID int64
		var t model.Tag
		if err := rows.Scan(&taskID, &t.ProjectID, &t.ID, &t.Name); err != nil {
			return err
		}
		byTask[taskID] = append(byTask[taskID], t)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for i := range tasks {
		tasks[i].Tags = byTask[tasks[i].ID]
		if tasks[i].Tags == nil {
			tasks[i].Tags = make([]model.Tag, 0) // в JSON уходит [], а не null
		}
	}
	return nil
}

func scanTaskWithStatus(row pgx.Row) (model.Task, error) {
	var t model.Task
	var s model.Status
	err := row.Scan(
		&t.ProjectID, &t.ID, &t.Name, &t.Description, &t.StatusID,
		&t.CreatorID, &t.AssigneeID, &s.ID, &s.Name,
	)
	if err != nil {
		return t, err
	}
	t.Status = &s
	return t, nil
}
