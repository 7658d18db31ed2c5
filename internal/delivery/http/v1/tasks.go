package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/adanyl0v/go-todo-stories/internal/models"
	"github.com/adanyl0v/go-todo-stories/internal/option"
	"github.com/adanyl0v/go-todo-stories/internal/stories"
)

type createTaskRequest struct {
	Title       string `json:"title" binding:"max=255"`
	Description string `json:"description"`
}

func (h *handlerImpl) HandleCreateTask(c *gin.Context) {
	user, _ := currentUser(c)

	var req createTaskRequest
	err := c.ShouldBindJSON(&req)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to bind json")
		abort(c, newBadRequestError(errInvalidRequestBody.Error()))
		return
	}

	res := h.stories.CreateTask.Execute(c, &stories.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		User:        user,
	})
	if res.IsErr() {
		abort(c, newModelError(res.UnwrapErr()))
		return
	}

	c.JSON(http.StatusCreated, res.Unwrap())
}

// HandleGetTasks reads page, page_size, title, description and status from
// the query string. Missing or invalid page values fall back to defaults.
func (h *handlerImpl) HandleGetTasks(c *gin.Context) {
	filter := models.TaskFilter{
		Page:        queryInt(c, "page", models.DefaultPage),
		PageSize:    queryInt(c, "page_size", models.DefaultPageSize),
		Title:       c.Query("title"),
		Description: c.Query("description"),
		Status:      models.TaskStatus(c.Query("status")),
	}

	res := h.stories.FindAllTasks.Execute(c, &stories.FindAllTasksInput{Filter: filter})
	if res.IsErr() {
		abort(c, newModelError(res.UnwrapErr()))
		return
	}

	c.JSON(http.StatusOK, res.Unwrap())
}

func (h *handlerImpl) HandleGetTask(c *gin.Context) {
	res := h.stories.FindTaskByID.Execute(c, &stories.FindTaskByIDInput{ID: c.Param("id")})
	if res.IsErr() {
		abort(c, newModelError(res.UnwrapErr()))
		return
	}

	c.JSON(http.StatusOK, res.Unwrap())
}

// updateTaskRequest tells an omitted field (nil) from an explicit empty one.
type updateTaskRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Status      *string `json:"status,omitempty"`
}

func (h *handlerImpl) HandleUpdateTask(c *gin.Context) {
	user, _ := currentUser(c)

	var req updateTaskRequest
	err := c.ShouldBindJSON(&req)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to bind json")
		abort(c, newBadRequestError(errInvalidRequestBody.Error()))
		return
	}

	res := h.stories.UpdateTask.Execute(c, &stories.UpdateTaskInput{
		ID:          c.Param("id"),
		Title:       option.FromPtr(req.Title),
		Description: option.FromPtr(req.Description),
		Status: option.Map(option.FromPtr(req.Status), func(s string) models.TaskStatus {
			return models.TaskStatus(s)
		}),
		User: user,
	})
	if res.IsErr() {
		abort(c, newModelError(res.UnwrapErr()))
		return
	}

	c.JSON(http.StatusOK, res.Unwrap())
}

func (h *handlerImpl) HandleDeleteTask(c *gin.Context) {
	user, _ := currentUser(c)

	res := h.stories.DeleteTask.Execute(c, &stories.DeleteTaskInput{
		ID:   c.Param("id"),
		User: user,
	})
	if res.IsErr() {
		abort(c, newModelError(res.UnwrapErr()))
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *handlerImpl) HandleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func queryInt(c *gin.Context, key string, fallback int) int {
	value, err := strconv.Atoi(c.Query(key))
	if err != nil || value < 1 {
		return fallback
	}
	return value
}
