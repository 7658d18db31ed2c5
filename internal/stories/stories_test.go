package stories

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// logLevels returns the level of every JSON line written to buf.
func logLevels(t *testing.T, buf *bytes.Buffer) []string {
	t.Helper()

	var levels []string
	dec := json.NewDecoder(buf)
	for dec.More() {
		var line struct {
			Level string `json:"level"`
		}
		require.NoError(t, dec.Decode(&line))
		levels = append(levels, line.Level)
	}
	return levels
}

func TestMissingInputIsLoggedAsWarning(t *testing.T) {
	ctx := context.Background()
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	tasks := newCountingTasks()
	users := newCountingUsers()

	NewCreateTask(logger, tasks).Execute(ctx, nil)
	NewUpdateTask(logger, tasks).Execute(ctx, &UpdateTaskInput{})
	NewDeleteTask(logger, tasks).Execute(ctx, nil)
	NewFindTaskByID(logger, tasks).Execute(ctx, &FindTaskByIDInput{})
	NewRegisterUser(logger, users, &fakeHasher{}).Execute(ctx, nil)
	NewLoginUser(logger, users, &fakeTokens{}, &fakeHasher{}).Execute(ctx, &Credentials{})

	assert.Equal(t, []string{"warn", "warn", "warn", "warn", "warn", "warn"}, logLevels(t, &buf))
}
