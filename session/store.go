package session

import (
	"log"

	"github.com/jmoiron/sqlx"

	"minicart/database"
)

// Store holds the current auth token, or nothing. Tokens are opaque: no
// format or expiry checks happen here. Clearing an empty store is a no-op.
type Store interface {
	Get() (token string, ok bool)
	Set(token string) error
	Clear() error
}

// SQLStore persists the token in the single-row session table so a sign-in
// survives restarts of the client.
type SQLStore struct {
	db *sqlx.DB
}

func NewSQLStore(db *sqlx.DB) *SQLStore {
	return &SQLStore{db: db}
}

// Get reads the stored token. A read failure is treated as "no session" so a
// broken store can never grant an authenticated call.
func (s *SQLStore) Get() (string, bool) {
	token, err := database.GetSessionToken(s.db)
	if err != nil {
		log.Printf("WARN: Failed to read session token: %v. Treating as signed out.", err)
		return "", false
	}
	if token == "" {
		return "", false
	}
	return token, true
}

func (s *SQLStore) Set(token string) error {
	return database.SaveSessionToken(s.db, token)
}

func (s *SQLStore) Clear() error {
	return database.ClearSessionToken(s.db)
}

// MemStore is an in-memory Store for tests and for running without a
// database file.
type MemStore struct {
	token string
}

func NewMemStore() *MemStore {
	return &MemStore{}
}

func (m *MemStore) Get() (string, bool) {
	if m.token == "" {
		return "", false
	}
	return m.token, true
}

func (m *MemStore) Set(token string) error {
	m.token = token
	return nil
}

func (m *MemStore) Clear() error {
	m.token = ""
	return nil
}
