package stories

import (
	"context"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/adanyl0v/go-todo-stories/internal/models"
	"github.com/adanyl0v/go-todo-stories/internal/option"
	"github.com/adanyl0v/go-todo-stories/internal/repository/memory"
	"github.com/adanyl0v/go-todo-stories/internal/result"
)

// countingTasks wraps the in-memory repository, counts every call and can be
// told to fail.
type countingTasks struct {
	*memory.TaskRepository

	mu    sync.Mutex
	calls map[string]int
	fail  map[string]*models.Error
}

func newCountingTasks() *countingTasks {
	return &countingTasks{
		TaskRepository: memory.NewTaskRepository(zerolog.Nop()),
		calls:          make(map[string]int),
		fail:           make(map[string]*models.Error),
	}
}

func (r *countingTasks) record(method string) *models.Error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls[method]++
	return r.fail[method]
}

func (r *countingTasks) total() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, c := range r.calls {
		n += c
	}
	return n
}

func (r *countingTasks) count(method string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls[method]
}

func (r *countingTasks) Create(ctx context.Context, task *models.Task) result.Result[*models.Task, *models.Error] {
	if err := r.record("Create"); err != nil {
		return result.Err[*models.Task](err)
	}
	return r.TaskRepository.Create(ctx, task)
}

func (r *countingTasks) Update(ctx context.Context, task *models.Task) result.Result[*models.Task, *models.Error] {
	if err := r.record("Update"); err != nil {
		return result.Err[*models.Task](err)
	}
	return r.TaskRepository.Update(ctx, task)
}

func (r *countingTasks) Delete(ctx context.Context, task *models.Task) result.Result[struct{}, *models.Error] {
	if err := r.record("Delete"); err != nil {
		return result.Err[struct{}](err)
	}
	return r.TaskRepository.Delete(ctx, task)
}

func (r *countingTasks) FindByID(ctx context.Context, id string) result.Result[option.Option[*models.Task], *models.Error] {
	if err := r.record("FindByID"); err != nil {
		return result.Err[option.Option[*models.Task]](err)
	}
	return r.TaskRepository.FindByID(ctx, id)
}

func (r *countingTasks) FindAll(ctx context.Context, filter models.TaskFilter) result.Result[models.Paged[*models.Task], *models.Error] {
	if err := r.record("FindAll"); err != nil {
		return result.Err[models.Paged[*models.Task]](err)
	}
	return r.TaskRepository.FindAll(ctx, filter)
}

type countingUsers struct {
	*memory.UserRepository

	calls map[string]int
	fail  map[string]*models.Error
}

func newCountingUsers() *countingUsers {
	return &countingUsers{
		UserRepository: memory.NewUserRepository(zerolog.Nop()),
		calls:          make(map[string]int),
		fail:           make(map[string]*models.Error),
	}
}

func (r *countingUsers) Create(ctx context.Context, user *models.User) result.Result[*models.User, *models.Error] {
	r.calls["Create"]++
	if err := r.fail["Create"]; err != nil {
		return result.Err[*models.User](err)
	}
	return r.UserRepository.Create(ctx, user)
}

func (r *countingUsers) FindByID(ctx context.Context, id string) result.Result[option.Option[*models.User], *models.Error] {
	r.calls["FindByID"]++
	if err := r.fail["FindByID"]; err != nil {
		return result.Err[option.Option[*models.User]](err)
	}
	return r.UserRepository.FindByID(ctx, id)
}

func (r *countingUsers) FindByUsername(ctx context.Context, username string) result.Result[option.Option[*models.User], *models.Error] {
	r.calls["FindByUsername"]++
	if err := r.fail["FindByUsername"]; err != nil {
		return result.Err[option.Option[*models.User]](err)
	}
	return r.UserRepository.FindByUsername(ctx, username)
}

// fakeHasher "hashes" by prefixing. Hashes without the prefix are malformed.
type fakeHasher struct {
	hashCalls    int
	compareCalls int
}

const fakeHashPrefix = "hashed:"

func (h *fakeHasher) Hash(_ context.Context, password string) result.Result[string, *models.Error] {
	h.hashCalls++
	return result.Ok[string, *models.Error](fakeHashPrefix + password)
}

func (h *fakeHasher) Compare(_ context.Context, hash, password string) bool {
	h.compareCalls++
	plain, ok := strings.CutPrefix(hash, fakeHashPrefix)
	return ok && plain == password
}

// fakeTokens issues "token:<user id>" and accepts only tokens it issued,
// except "expired" which reports an expired token.
type fakeTokens struct {
	generateCalls int
}

func (f *fakeTokens) Generate(_ context.Context, user *models.User) result.Result[string, *models.Error] {
	f.generateCalls++
	return result.Ok[string, *models.Error]("token:" + user.ID)
}

func (f *fakeTokens) GetUserID(_ context.Context, token string) result.Result[string, *models.Error] {
	if token == "expired" {
		return result.Err[string](models.NewError(models.CodeTokenExpired))
	}
	id, ok := strings.CutPrefix(token, "token:")
	if !ok {
		return result.Err[string](models.NewError(models.CodeInvalidToken))
	}
	return result.Ok[string, *models.Error](id)
}
