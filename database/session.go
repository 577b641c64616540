package database

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// The session table holds at most one row (id = 1): the bearer token of the
// currently signed-in user. It is the only durable client-side state.

func GetSessionToken(db *sqlx.DB) (string, error) {
	var token string
	err := db.Get(&token, "SELECT token FROM session WHERE id = 1")
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get session token: %w", err)
	}
	return token, nil
}

func SaveSessionToken(db *sqlx.DB, token string) error {
	const q = `
		INSERT INTO session (id, token, saved_at)
		VALUES (1, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			token = excluded.token,
			saved_at = excluded.saved_at
	`
	_, err := db.Exec(q, token, time.Now().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("SaveSessionToken failed: %w", err)
	}
	return nil
}

func ClearSessionToken(db *sqlx.DB) error {
	const q = `DELETE FROM session WHERE id = 1`
	_, err := db.Exec(q)
	if err != nil {
		return fmt.Errorf("failed to clear session token: %w", err)
	}
	return nil
}
