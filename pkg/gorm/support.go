package gorm

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	stdgorm "gorm.io/gorm"
)

const pgUniqueViolation = "23505"

func IsNotFound(err error) bool {
	if err == nil {
		return false
	}

	return errors.Is(err, stdgorm.ErrRecordNotFound)
}

func IsFoundButHasErrors(err error) bool {
	if err == nil {
		return false
	}

	return !errors.Is(err, stdgorm.ErrRecordNotFound)
}

func HasDbIssues(err error) bool {
	if err == nil {
		return false
	}

	return IsNotFound(err) || IsFoundButHasErrors(err)
}

// IsDuplicatedKey reports whether the error is a unique-constraint breach.
// The existence checks run before inserts, but two concurrent submissions
// can still race between check and insert; the store's constraint is the
// backstop and its error is treated like the "found existing" branch.
func IsDuplicatedKey(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, stdgorm.ErrDuplicatedKey) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}

	return false
}
