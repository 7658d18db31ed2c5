package app

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/adanyl0v/go-todo-stories/internal/config"
	"github.com/adanyl0v/go-todo-stories/internal/delivery/http/v1"
	"github.com/adanyl0v/go-todo-stories/internal/password"
	"github.com/adanyl0v/go-todo-stories/internal/stories"
	"github.com/adanyl0v/go-todo-stories/internal/token"
)

func MustListenAndServeHTTP() {
	cfg := config.Global()
	if cfg.Env != config.EnvLocal {
		gin.SetMode(gin.ReleaseMode)
	}

	httpCfg := cfg.HTTP

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	registerRoutes(router)

	server := &http.Server{
		Addr:         net.JoinHostPort(httpCfg.Host, httpCfg.Port),
		Handler:      router,
		ReadTimeout:  httpCfg.ReadTimeout,
		WriteTimeout: httpCfg.WriteTimeout,
	}

	go func() {
		globalLogger.Info().
			Str("host", httpCfg.Host).
			Str("port", httpCfg.Port).
			Msg("setting up http server")
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			globalLogger.Error().
				Err(err).
				Msg("failed to listen and serve http")
			panic(err)
		}
	}()

	// kill (no params) sends SIGTERM, kill -2 sends SIGINT.
	// SIGKILL can't be caught.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	globalLogger.Info().
		Msg("shutting down http server")

	ctx, cancel := context.WithTimeout(context.Background(), httpCfg.ShutdownTimeout)
	defer cancel()

	err := server.Shutdown(ctx)
	if err != nil {
		globalLogger.Error().
			Err(err).
			Msg("failed to shutdown http server")
		panic(err)
	}
	globalLogger.Info().Msg("shut down http server")
}

func registerRoutes(router gin.IRouter) {
	cfg := config.Global()
	logger := componentLogger("stories")

	tokens := token.NewJWT(
		componentLogger("token"),
		cfg.JWT.Issuer,
		[]byte(cfg.JWT.SigningKey),
		cfg.JWT.TokenTTL,
	)
	hasher := newPasswordHasher(cfg.Password)

	v1Handler := v1.New(componentLogger("http"), v1.Stories{
		CreateTask:     stories.NewCreateTask(logger, globalTaskRepository),
		UpdateTask:     stories.NewUpdateTask(logger, globalTaskRepository),
		DeleteTask:     stories.NewDeleteTask(logger, globalTaskRepository),
		FindTaskByID:   stories.NewFindTaskByID(logger, globalTaskRepository),
		FindAllTasks:   stories.NewFindAllTasks(logger, globalTaskRepository),
		RegisterUser:   stories.NewRegisterUser(logger, globalUserRepository, hasher),
		LoginUser:      stories.NewLoginUser(logger, globalUserRepository, tokens, hasher),
		GetCurrentUser: stories.NewGetCurrentUser(logger, globalUserRepository, tokens),
	})

	var middlewares []gin.HandlerFunc
	if cfg.RateLimit.Enabled {
		limiter := v1.NewRateLimiter(componentLogger("rate_limiter"), cfg.RateLimit.RPS, cfg.RateLimit.Burst)
		middlewares = append(middlewares, limiter.Handle)
	}

	v1.RegisterRoutes(router.Group("/api/v1"), v1Handler, middlewares...)
}

func newPasswordHasher(cfg config.PasswordConfig) stories.PasswordHashPort {
	logger := componentLogger("password")
	if cfg.Hasher == config.HasherBcrypt {
		return password.NewBcrypt(logger, cfg.BcryptCost)
	}
	return password.NewArgon2id(logger, nil)
}
