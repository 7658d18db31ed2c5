package stories

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/adanyl0v/go-todo-stories/internal/models"
	"github.com/adanyl0v/go-todo-stories/internal/option"
	"github.com/adanyl0v/go-todo-stories/internal/result"
)

type CreateTaskInput struct {
	Title       string
	Description string
	// User becomes the owner of the task when set.
	User *models.User
}

// CreateTask validates a new task and stores it.
type CreateTask struct {
	logger zerolog.Logger
	tasks  TaskRepository
}

func NewCreateTask(logger zerolog.Logger, tasks TaskRepository) *CreateTask {
	return &CreateTask{logger: logger, tasks: tasks}
}

func (s *CreateTask) Execute(ctx context.Context, in *CreateTaskInput) result.Result[*models.Task, *models.Error] {
	if in == nil {
		s.logger.Warn().Msg("missing create task input")
		return result.Err[*models.Task](models.NewErrorf(models.CodeMissingInput, "missing input"))
	}

	taskInput := models.TaskInput{
		Title:       in.Title,
		Description: in.Description,
	}
	if in.User != nil {
		taskInput.UserID = in.User.ID
	}

	res := result.AndThenCtx(ctx, models.NewTask(taskInput), s.tasks.Create)
	if res.IsErr() {
		logFailure(s.logger, res.UnwrapErr(), "failed to create task")
		return res
	}

	s.logger.Info().
		Str("task_id", res.Unwrap().ID).
		Str("user_id", taskInput.UserID).
		Msg("created task")
	return res
}

type UpdateTaskInput struct {
	ID          string
	Title       option.Option[string]
	Description option.Option[string]
	Status      option.Option[models.TaskStatus]
	// User must own the task when set.
	User *models.User
}

// UpdateTask applies a partial update to an existing task.
type UpdateTask struct {
	logger zerolog.Logger
	tasks  TaskRepository
}

func NewUpdateTask(logger zerolog.Logger, tasks TaskRepository) *UpdateTask {
	return &UpdateTask{logger: logger, tasks: tasks}
}

func (s *UpdateTask) Execute(ctx context.Context, in *UpdateTaskInput) result.Result[*models.Task, *models.Error] {
	if in == nil || in.ID == "" {
		s.logger.Warn().Msg("missing task id")
		return result.Err[*models.Task](models.NewError(models.CodeMissingTaskID))
	}

	patch := models.TaskPatch{
		Title:       in.Title,
		Description: in.Description,
		Status:      in.Status,
	}

	found := findTask(ctx, s.tasks, in.ID)
	owned := result.AndThen(found, checkOwner(in.User))
	assigned := result.AndThen(owned, func(task *models.Task) result.Result[*models.Task, *models.Error] {
		return task.Assign(patch)
	})
	res := result.AndThenCtx(ctx, assigned, s.tasks.Update)
	if res.IsErr() {
		logFailure(s.logger, res.UnwrapErr(), "failed to update task", "task_id", in.ID)
		return res
	}

	s.logger.Info().
		Str("task_id", in.ID).
		Msg("updated task")
	return res
}

type DeleteTaskInput struct {
	ID string
	// User must own the task when set.
	User *models.User
}

// DeleteTask removes an existing task.
type DeleteTask struct {
	logger zerolog.Logger
	tasks  TaskRepository
}

func NewDeleteTask(logger zerolog.Logger, tasks TaskRepository) *DeleteTask {
	return &DeleteTask{logger: logger, tasks: tasks}
}

func (s *DeleteTask) Execute(ctx context.Context, in *DeleteTaskInput) result.Result[struct{}, *models.Error] {
	if in == nil || in.ID == "" {
		s.logger.Warn().Msg("missing task id")
		return result.Err[struct{}](models.NewError(models.CodeMissingTaskID))
	}

	found := findTask(ctx, s.tasks, in.ID)
	owned := result.AndThen(found, checkOwner(in.User))
	res := result.AndThenCtx(ctx, owned, s.tasks.Delete)
	if res.IsErr() {
		logFailure(s.logger, res.UnwrapErr(), "failed to delete task", "task_id", in.ID)
		return res
	}

	s.logger.Info().
		Str("task_id", in.ID).
		Msg("deleted task")
	return res
}

type FindTaskByIDInput struct {
	ID string
}

// FindTaskByID looks a task up by its id.
type FindTaskByID struct {
	logger zerolog.Logger
	tasks  TaskRepository
}

func NewFindTaskByID(logger zerolog.Logger, tasks TaskRepository) *FindTaskByID {
	return &FindTaskByID{logger: logger, tasks: tasks}
}

func (s *FindTaskByID) Execute(ctx context.Context, in *FindTaskByIDInput) result.Result[*models.Task, *models.Error] {
	if in == nil || in.ID == "" {
		s.logger.Warn().Msg("missing task id")
		return result.Err[*models.Task](models.NewError(models.CodeMissingTaskID))
	}

	res := findTask(ctx, s.tasks, in.ID)
	if res.IsErr() {
		logFailure(s.logger, res.UnwrapErr(), "failed to find task", "task_id", in.ID)
		return res
	}

	s.logger.Debug().
		Str("task_id", in.ID).
		Msg("found task")
	return res
}

type FindAllTasksInput struct {
	Filter models.TaskFilter
}

// FindAllTasks lists tasks page by page. Filtering and pagination are left to
// the repository.
type FindAllTasks struct {
	logger zerolog.Logger
	tasks  TaskRepository
}

func NewFindAllTasks(logger zerolog.Logger, tasks TaskRepository) *FindAllTasks {
	return &FindAllTasks{logger: logger, tasks: tasks}
}

// Execute accepts a nil input, which lists the first page of all tasks.
func (s *FindAllTasks) Execute(ctx context.Context, in *FindAllTasksInput) result.Result[models.Paged[*models.Task], *models.Error] {
	var filter models.TaskFilter
	if in != nil {
		filter = in.Filter
	}
	filter = filter.WithDefaults()

	res := s.tasks.FindAll(ctx, filter)
	if res.IsErr() {
		logFailure(s.logger, res.UnwrapErr(), "failed to find tasks")
		return res
	}

	s.logger.Debug().
		Int("page", filter.Page).
		Int("page_size", filter.PageSize).
		Int("count", len(res.Unwrap().Items)).
		Int("total", res.Unwrap().TotalItems).
		Msg("found tasks")
	return res
}

func findTask(ctx context.Context, tasks TaskRepository, id string) result.Result[*models.Task, *models.Error] {
	return result.AndThen(tasks.FindByID(ctx, id), func(found option.Option[*models.Task]) result.Result[*models.Task, *models.Error] {
		return result.OkOr(found, models.NewError(models.CodeTaskNotFound))
	})
}

// checkOwner passes the task through unless user is set and does not own it.
func checkOwner(user *models.User) func(*models.Task) result.Result[*models.Task, *models.Error] {
	return func(task *models.Task) result.Result[*models.Task, *models.Error] {
		if user != nil && !task.IsOwnedBy(user.ID) {
			return result.Err[*models.Task](models.NewError(models.CodeUserIsNotOwner))
		}
		return result.Ok[*models.Task, *models.Error](task)
	}
}
