package store

import (
	"database/sql"
	"fmt"
)

// createSchema creates the tables needed for field persistence. Safe to
// call multiple times, uses IF NOT EXISTS.
func createSchema(db *sql.DB) error {
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

const schema = `
CREATE TABLE IF NOT EXISTS form_field (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    form_id TEXT NOT NULL,
    field_name TEXT NOT NULL,
    field_type TEXT NOT NULL,
    field_label TEXT NOT NULL,
    is_required INTEGER NOT NULL DEFAULT 0,
    options TEXT,
    default_value TEXT,
    validation TEXT,
    position INTEGER NOT NULL,
    section TEXT NOT NULL,
    pdf_field_id TEXT
);

CREATE INDEX IF NOT EXISTS idx_form_field_form_id ON form_field(form_id);
`
