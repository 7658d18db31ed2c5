// Package memory keeps tasks and users in process memory. Reads return copies
// and writes replace the stored value, so callers never share state with the
// store. Listing follows insertion order.
package memory

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/adanyl0v/go-todo-stories/internal/models"
	"github.com/adanyl0v/go-todo-stories/internal/option"
	"github.com/adanyl0v/go-todo-stories/internal/result"
)

type TaskRepository struct {
	logger zerolog.Logger

	mu    sync.RWMutex
	order []string
	tasks map[string]*models.Task
}

func NewTaskRepository(logger zerolog.Logger) *TaskRepository {
	return &TaskRepository{
		logger: logger,
		tasks:  make(map[string]*models.Task),
	}
}

func (r *TaskRepository) Create(_ context.Context, task *models.Task) result.Result[*models.Task, *models.Error] {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tasks[task.ID]; ok {
		r.logger.Error().
			Str("task_id", task.ID).
			Msg("task already exists")
		return result.Err[*models.Task](models.NewErrorf(models.CodeTaskRepositoryError, "task "+task.ID+" already exists"))
	}
	r.order = append(r.order, task.ID)
	r.tasks[task.ID] = task.Clone()

	r.logger.Debug().
		Str("task_id", task.ID).
		Msg("inserted task")
	return result.Ok[*models.Task, *models.Error](task.Clone())
}

func (r *TaskRepository) Update(_ context.Context, task *models.Task) result.Result[*models.Task, *models.Error] {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tasks[task.ID]; !ok {
		r.logger.Error().
			Str("task_id", task.ID).
			Msg("task not found")
		return result.Err[*models.Task](models.NewErrorf(models.CodeTaskRepositoryError, "task "+task.ID+" does not exist"))
	}
	r.tasks[task.ID] = task.Clone()

	r.logger.Debug().
		Str("task_id", task.ID).
		Msg("updated task")
	return result.Ok[*models.Task, *models.Error](task.Clone())
}

func (r *TaskRepository) Delete(_ context.Context, task *models.Task) result.Result[struct{}, *models.Error] {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tasks[task.ID]; ok {
		delete(r.tasks, task.ID)
		for i, id := range r.order {
			if id == task.ID {
				r.order = append(r.order[:i], r.order[i+1:]...)
				break
			}
		}
	}

	r.logger.Debug().
		Str("task_id", task.ID).
		Msg("deleted task")
	return result.Ok[struct{}, *models.Error](struct{}{})
}

func (r *TaskRepository) FindByID(_ context.Context, id string) result.Result[option.Option[*models.Task], *models.Error] {
	r.mu.RLock()
	defer r.mu.RUnlock()

	task, ok := r.tasks[id]
	if !ok {
		return result.Ok[option.Option[*models.Task], *models.Error](option.None[*models.Task]())
	}
	return result.Ok[option.Option[*models.Task], *models.Error](option.Some(task.Clone()))
}

func (r *TaskRepository) FindAll(_ context.Context, filter models.TaskFilter) result.Result[models.Paged[*models.Task], *models.Error] {
	filter = filter.WithDefaults()

	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []*models.Task
	for _, id := range r.order {
		task := r.tasks[id]
		if filter.Matches(task) {
			matched = append(matched, task)
		}
	}

	start, end := models.PageWindow(filter.Page, filter.PageSize, len(matched))

	items := make([]*models.Task, 0, end-start)
	for _, task := range matched[start:end] {
		items = append(items, task.Clone())
	}

	return result.Ok[models.Paged[*models.Task], *models.Error](
		models.NewPaged(items, len(matched), filter.Page, filter.PageSize))
}
