// Package postgres stores tasks and users in PostgreSQL through a pgx pool.
//
// Expected schema:
//
//	CREATE TABLE users (
//	    id         TEXT PRIMARY KEY,
//	    username   TEXT NOT NULL UNIQUE,
//	    password   TEXT NOT NULL,
//	    created_at TIMESTAMPTZ NOT NULL,
//	    updated_at TIMESTAMPTZ NOT NULL
//	);
//
//	CREATE TABLE tasks (
//	    id          TEXT PRIMARY KEY,
//	    user_id     TEXT,
//	    title       TEXT NOT NULL,
//	    description TEXT NOT NULL DEFAULT '',
//	    status      TEXT NOT NULL,
//	    created_at  TIMESTAMPTZ NOT NULL,
//	    updated_at  TIMESTAMPTZ NOT NULL
//	);
package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/adanyl0v/go-todo-stories/internal/models"
)

func repositoryError(code models.ErrorCode, err error) *models.Error {
	return models.NewErrorf(code, err.Error())
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern turns s into an ILIKE pattern matching any value that
// contains s literally.
func containsPattern(s string) string {
	if s == "" {
		return ""
	}
	return "%" + likeEscaper.Replace(s) + "%"
}
