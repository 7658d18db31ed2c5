// Package stories holds the use cases of the application. Every story has a
// single Execute method that validates its input, chains calls to the ports it
// was built with and returns a result.Result whose Err carries a *models.Error.
// Only the first failure of a chain is observable: later steps never run.
package stories

import (
	"github.com/rs/zerolog"

	"github.com/adanyl0v/go-todo-stories/internal/models"
)

// logFailure logs storage failures at error level and every other business
// error at warn level. fields are key/value pairs.
func logFailure(logger zerolog.Logger, err *models.Error, msg string, fields ...string) {
	event := logger.Warn()
	switch err.Code {
	case models.CodeTaskRepositoryError, models.CodeUserRepositoryError,
		models.CodeTokenError, models.CodePasswordHashError:
		event = logger.Error()
	}

	for i := 0; i+1 < len(fields); i += 2 {
		event = event.Str(fields[i], fields[i+1])
	}
	event.
		Err(err).
		Str("code", string(err.Code)).
		Msg(msg)
}
