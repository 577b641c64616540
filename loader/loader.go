package loader

import (
	"fmt"
	"log"

	"github.com/jmoiron/sqlx"
)

const schema = `
CREATE TABLE IF NOT EXISTS session (
	id       INTEGER PRIMARY KEY CHECK (id = 1),
	token    TEXT NOT NULL,
	saved_at TEXT NOT NULL
);
`

// InitDatabase applies the client-side schema. The only table is the
// single-row session store; cart and order state is never persisted locally.
func InitDatabase(db *sqlx.DB) error {
	log.Println("Applying database schema...")
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	log.Println("Schema applied successfully.")
	return nil
}
