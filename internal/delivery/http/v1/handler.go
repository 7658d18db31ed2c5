package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/adanyl0v/go-todo-stories/internal/stories"
)

type Handler interface {
	HandleRegister(c *gin.Context)
	HandleLogin(c *gin.Context)
	HandleMe(c *gin.Context)
	HandleAuthMiddleware(c *gin.Context)

	HandleCreateTask(c *gin.Context)
	HandleGetTasks(c *gin.Context)
	HandleGetTask(c *gin.Context)
	HandleUpdateTask(c *gin.Context)
	HandleDeleteTask(c *gin.Context)

	HandleHealth(c *gin.Context)
}

// Stories groups the use cases the handler delegates to.
type Stories struct {
	CreateTask   *stories.CreateTask
	UpdateTask   *stories.UpdateTask
	DeleteTask   *stories.DeleteTask
	FindTaskByID *stories.FindTaskByID
	FindAllTasks *stories.FindAllTasks

	RegisterUser   *stories.RegisterUser
	LoginUser      *stories.LoginUser
	GetCurrentUser *stories.GetCurrentUser
}

type handlerImpl struct {
	logger  zerolog.Logger
	stories Stories
}

func New(logger zerolog.Logger, s Stories) Handler {
	return &handlerImpl{
		logger:  logger,
		stories: s,
	}
}

// RegisterRoutes mounts the API on router. middlewares run before every
// route, the auth middleware only before /me and /tasks.
func RegisterRoutes(router gin.IRouter, h Handler, middlewares ...gin.HandlerFunc) {
	router.GET("/health", h.HandleHealth)

	api := router.Group("/", middlewares...)
	api.POST("/register", h.HandleRegister)
	api.POST("/login", h.HandleLogin)

	authorized := api.Group("/", h.HandleAuthMiddleware)
	authorized.POST("/me", h.HandleMe)

	tasks := authorized.Group("/tasks")
	tasks.GET("", h.HandleGetTasks)
	tasks.POST("", h.HandleCreateTask)
	tasks.GET("/:id", h.HandleGetTask)
	tasks.PATCH("/:id", h.HandleUpdateTask)
	tasks.DELETE("/:id", h.HandleDeleteTask)
}
