package v1

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/adanyl0v/go-todo-stories/internal/models"
)

const currentUserCtxKey = "current_user"

func (h *handlerImpl) HandleAuthMiddleware(c *gin.Context) {
	const authHeader = "Authorization"
	token := bearerToken(c.GetHeader(authHeader))

	res := h.stories.GetCurrentUser.Execute(c, token)
	if res.IsErr() {
		h.logger.Warn().
			Str("path", c.FullPath()).
			Msg("unauthenticated request")
		abort(c, newModelError(res.UnwrapErr()))
		return
	}

	c.Set(currentUserCtxKey, res.Unwrap())
	c.Next()
}

// bearerToken returns "" unless header has the form "Bearer <token>".
func bearerToken(header string) string {
	const bearerPrefix = "Bearer"
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != bearerPrefix {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func currentUser(c *gin.Context) (*models.User, bool) {
	value, exists := c.Get(currentUserCtxKey)
	if !exists {
		return nil, false
	}
	user, ok := value.(*models.User)
	return user, ok && user != nil
}

type rateLimitClient struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter keeps one token bucket per client IP. Clients idle for longer
// than idleTimeout are forgotten.
type RateLimiter struct {
	logger      zerolog.Logger
	limit       rate.Limit
	burst       int
	idleTimeout time.Duration

	mu        sync.Mutex
	clients   map[string]*rateLimitClient
	lastSweep time.Time
	now       func() time.Time
}

func NewRateLimiter(logger zerolog.Logger, rps float64, burst int) *RateLimiter {
	return &RateLimiter{
		logger:      logger,
		limit:       rate.Limit(rps),
		burst:       burst,
		idleTimeout: 3 * time.Minute,
		clients:     make(map[string]*rateLimitClient),
		now:         time.Now,
	}
}

func (l *RateLimiter) Handle(c *gin.Context) {
	ip := c.ClientIP()
	if !l.allow(ip) {
		l.logger.Warn().
			Str("client_ip", ip).
			Msg("rate limit exceeded")
		abort(c, newAPIError(http.StatusTooManyRequests, "rate limit exceeded"))
		return
	}
	c.Next()
}

func (l *RateLimiter) allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.Sub(l.lastSweep) >= time.Minute {
		for key, client := range l.clients {
			if now.Sub(client.lastSeen) >= l.idleTimeout {
				delete(l.clients, key)
			}
		}
		l.lastSweep = now
	}

	client, ok := l.clients[ip]
	if !ok {
		client = &rateLimitClient{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.clients[ip] = client
	}
	client.lastSeen = now
	return client.limiter.AllowN(now, 1)
}
