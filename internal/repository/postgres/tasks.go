package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/adanyl0v/go-todo-stories/internal/models"
	"github.com/adanyl0v/go-todo-stories/internal/option"
	"github.com/adanyl0v/go-todo-stories/internal/result"
)

type TaskRepository struct {
	logger zerolog.Logger
	pgPool *pgxpool.Pool
}

func NewTaskRepository(logger zerolog.Logger, pgPool *pgxpool.Pool) *TaskRepository {
	return &TaskRepository{
		logger: logger,
		pgPool: pgPool,
	}
}

func (r *TaskRepository) Create(ctx context.Context, task *models.Task) result.Result[*models.Task, *models.Error] {
	const insertTaskQuery = `
INSERT INTO tasks (id,
                   user_id,
                   title,
                   description,
                   status,
                   created_at,
                   updated_at)
VALUES ($1, NULLIF($2, ''), $3, $4, $5, $6, $7)
`
	_, err := r.pgPool.Exec(
		ctx,
		insertTaskQuery,
		task.ID,
		task.UserID,
		task.Title,
		task.Description,
		task.Status,
		task.CreatedAt,
		task.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			r.logger.Error().
				Str("task_id", task.ID).
				Msg("task already exists")
			return result.Err[*models.Task](models.NewErrorf(models.CodeTaskRepositoryError, "task "+task.ID+" already exists"))
		}

		r.logger.Error().
			Err(err).
			Str("task_id", task.ID).
			Msg("failed to insert task")
		return result.Err[*models.Task](repositoryError(models.CodeTaskRepositoryError, fmt.Errorf("insert task: %w", err)))
	}
	r.logger.Debug().
		Str("task_id", task.ID).
		Msg("inserted task")

	return result.Ok[*models.Task, *models.Error](task.Clone())
}

func (r *TaskRepository) Update(ctx context.Context, task *models.Task) result.Result[*models.Task, *models.Error] {
	const updateTaskQuery = `
UPDATE tasks
SET title = $1,
    description = $2,
    status = $3,
    updated_at = $4
WHERE id = $5
`
	tag, err := r.pgPool.Exec(
		ctx,
		updateTaskQuery,
		task.Title,
		task.Description,
		task.Status,
		task.UpdatedAt,
		task.ID,
	)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("task_id", task.ID).
			Msg("failed to update task")
		return result.Err[*models.Task](repositoryError(models.CodeTaskRepositoryError, fmt.Errorf("update task: %w", err)))
	}
	if tag.RowsAffected() == 0 {
		r.logger.Error().
			Str("task_id", task.ID).
			Msg("task not found")
		return result.Err[*models.Task](models.NewErrorf(models.CodeTaskRepositoryError, "task "+task.ID+" does not exist"))
	}
	r.logger.Debug().
		Str("task_id", task.ID).
		Msg("updated task")

	return result.Ok[*models.Task, *models.Error](task.Clone())
}

func (r *TaskRepository) Delete(ctx context.Context, task *models.Task) result.Result[struct{}, *models.Error] {
	const deleteTaskQuery = `
DELETE FROM tasks
WHERE id = $1
`
	tag, err := r.pgPool.Exec(
		ctx,
		deleteTaskQuery,
		task.ID,
	)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("task_id", task.ID).
			Msg("failed to delete task")
		return result.Err[struct{}](repositoryError(models.CodeTaskRepositoryError, fmt.Errorf("delete task: %w", err)))
	}
	r.logger.Debug().
		Str("task_id", task.ID).
		Int64("affected", tag.RowsAffected()).
		Msg("deleted task")

	return result.Ok[struct{}, *models.Error](struct{}{})
}

func (r *TaskRepository) FindByID(ctx context.Context, id string) result.Result[option.Option[*models.Task], *models.Error] {
	const selectTaskByIDQuery = `
SELECT id,
       COALESCE(user_id, ''),
       title,
       description,
       status,
       created_at,
       updated_at
FROM tasks
WHERE id = $1
`
	task, err := scanTask(r.pgPool.QueryRow(ctx, selectTaskByIDQuery, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().
				Str("task_id", id).
				Msg("task not found")
			return result.Ok[option.Option[*models.Task], *models.Error](option.None[*models.Task]())
		}

		r.logger.Error().
			Err(err).
			Str("task_id", id).
			Msg("failed to select task by id")
		return result.Err[option.Option[*models.Task]](repositoryError(models.CodeTaskRepositoryError, fmt.Errorf("select task: %w", err)))
	}
	r.logger.Debug().
		Str("task_id", id).
		Msg("selected task")

	return result.Ok[option.Option[*models.Task], *models.Error](option.Some(task))
}

func (r *TaskRepository) FindAll(ctx context.Context, filter models.TaskFilter) result.Result[models.Paged[*models.Task], *models.Error] {
	filter = filter.WithDefaults()
	title := containsPattern(filter.Title)
	description := containsPattern(filter.Description)

	const countTasksQuery = `
SELECT COUNT(*)
FROM tasks
WHERE ($1 = '' OR title ILIKE $1)
  AND ($2 = '' OR description ILIKE $2)
  AND ($3 = '' OR status = $3)
`
	var total int
	err := r.pgPool.QueryRow(
		ctx,
		countTasksQuery,
		title,
		description,
		filter.Status,
	).Scan(&total)
	if err != nil {
		r.logger.Error().
			Err(err).
			Msg("failed to count tasks")
		return result.Err[models.Paged[*models.Task]](repositoryError(models.CodeTaskRepositoryError, fmt.Errorf("count tasks: %w", err)))
	}

	start, end := models.PageWindow(filter.Page, filter.PageSize, total)
	if start == end {
		r.logger.Debug().
			Int("total", total).
			Msg("page is past the end")
		return result.Ok[models.Paged[*models.Task], *models.Error](
			models.NewPaged([]*models.Task{}, total, filter.Page, filter.PageSize))
	}

	const selectTasksQuery = `
SELECT id,
       COALESCE(user_id, ''),
       title,
       description,
       status,
       created_at,
       updated_at
FROM tasks
WHERE ($1 = '' OR title ILIKE $1)
  AND ($2 = '' OR description ILIKE $2)
  AND ($3 = '' OR status = $3)
ORDER BY created_at, id
LIMIT $4 OFFSET $5
`
	rows, err := r.pgPool.Query(
		ctx,
		selectTasksQuery,
		title,
		description,
		filter.Status,
		end-start,
		start,
	)
	if err != nil {
		r.logger.Error().
			Err(err).
			Msg("failed to select tasks")
		return result.Err[models.Paged[*models.Task]](repositoryError(models.CodeTaskRepositoryError, fmt.Errorf("select tasks: %w", err)))
	}
	defer rows.Close()

	tasks := make([]*models.Task, 0, end-start)
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			r.logger.Error().
				Err(err).
				Msg("failed to scan task")
			return result.Err[models.Paged[*models.Task]](repositoryError(models.CodeTaskRepositoryError, fmt.Errorf("scan task: %w", err)))
		}
		tasks = append(tasks, task)
	}

	err = rows.Err()
	if err != nil {
		r.logger.Error().
			Err(err).
			Msg("failed to iterate over rows")
		return result.Err[models.Paged[*models.Task]](repositoryError(models.CodeTaskRepositoryError, fmt.Errorf("iterate tasks: %w", err)))
	}
	r.logger.Debug().
		Int("count", len(tasks)).
		Int("total", total).
		Msg("selected tasks")

	return result.Ok[models.Paged[*models.Task], *models.Error](
		models.NewPaged(tasks, total, filter.Page, filter.PageSize))
}

func scanTask(row pgx.Row) (*models.Task, error) {
	task := &models.Task{}
	err := row.Scan(
		&task.ID,
		&task.UserID,
		&task.Title,
		&task.Description,
		&task.Status,
		&task.CreatedAt,
		&task.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return task, nil
}
