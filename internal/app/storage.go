package app

import (
	"github.com/adanyl0v/go-todo-stories/internal/config"
	"github.com/adanyl0v/go-todo-stories/internal/repository/memory"
	"github.com/adanyl0v/go-todo-stories/internal/repository/postgres"
	"github.com/adanyl0v/go-todo-stories/internal/stories"
)

var (
	globalTaskRepository stories.TaskRepository
	globalUserRepository stories.UserRepository
)

// MustInitStorage builds the repositories for the configured driver. The
// postgres driver connects to the database and must be paired with
// DisconnectStorage.
func MustInitStorage() {
	driver := config.Global().Storage.Driver
	switch driver {
	case config.StoragePostgres:
		MustConnectPostgres()
		globalTaskRepository = postgres.NewTaskRepository(componentLogger("task_repository"), globalPostgresPool)
		globalUserRepository = postgres.NewUserRepository(componentLogger("user_repository"), globalPostgresPool)
	case config.StorageMemory:
		globalTaskRepository = memory.NewTaskRepository(componentLogger("task_repository"))
		globalUserRepository = memory.NewUserRepository(componentLogger("user_repository"))
	default:
		globalLogger.Error().
			Str("driver", driver).
			Msg("unknown storage driver")
		panic("unknown storage driver: " + driver)
	}

	globalLogger.Info().
		Str("driver", driver).
		Msg("initialized storage")
}

func DisconnectStorage() {
	DisconnectPostgres()
}
