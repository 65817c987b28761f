// Package store persists flattened form-field records in SQLite.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/formlift/formschema/internal/form"
)

// FieldStore is the SQLite-backed store for persistence records. A
// parsed form's record set is written as one unit and replaced as one
// unit; records are never mutated in place.
type FieldStore struct {
	db *sql.DB
}

// Open opens (creating if needed) the SQLite database at dsn and ensures
// the schema exists. Use ":memory:" for an ephemeral store.
func Open(dsn string) (*FieldStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	if err := createSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &FieldStore{db: db}, nil
}

// Close releases the underlying database handle.
func (s *FieldStore) Close() error {
	return s.db.Close()
}

// ReplaceFormFields atomically replaces the full record set of one form.
// A re-parse always produces a fresh replacement set, so the previous
// rows are deleted rather than updated.
func (s *FieldStore) ReplaceFormFields(ctx context.Context, formID string, records []form.PersistenceRecord) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM form_field WHERE form_id = ?`, formID); err != nil {
		return fmt.Errorf("failed to delete previous fields: %w", err)
	}

	const insert = `
		INSERT INTO form_field (
			form_id, field_name, field_type, field_label, is_required,
			options, default_value, validation, position, section, pdf_field_id
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	for _, rec := range records {
		options, err := encodeOptions(rec.Options)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, insert,
			formID, rec.FieldName, string(rec.FieldType), rec.FieldLabel, rec.IsRequired,
			options, nullable(rec.DefaultValue), nullable(rec.Validation),
			rec.Position, rec.Section, nullable(rec.PDFFieldID),
		); err != nil {
			return fmt.Errorf("failed to insert field %s: %w", rec.FieldName, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}

// ListFormFields returns one form's records in position order.
func (s *FieldStore) ListFormFields(ctx context.Context, formID string) ([]form.PersistenceRecord, error) {
	const query = `
		SELECT field_name, field_type, field_label, is_required,
		       options, default_value, validation, position, section, pdf_field_id
		FROM form_field
		WHERE form_id = ?
		ORDER BY position`

	rows, err := s.db.QueryContext(ctx, query, formID)
	if err != nil {
		return nil, fmt.Errorf("failed to query fields: %w", err)
	}
	defer rows.Close()

	var records []form.PersistenceRecord
	for rows.Next() {
		var (
			rec          form.PersistenceRecord
			fieldType    string
			options      sql.NullString
			defaultValue sql.NullString
			validation   sql.NullString
			pdfFieldID   sql.NullString
		)
		if err := rows.Scan(&rec.FieldName, &fieldType, &rec.FieldLabel, &rec.IsRequired,
			&options, &defaultValue, &validation, &rec.Position, &rec.Section, &pdfFieldID); err != nil {
			return nil, fmt.Errorf("failed to scan field row: %w", err)
		}
		rec.FormID = formID
		rec.FieldType = form.FieldType(fieldType)
		rec.DefaultValue = defaultValue.String
		rec.Validation = validation.String
		rec.PDFFieldID = pdfFieldID.String
		if options.Valid && options.String != "" {
			if err := json.Unmarshal([]byte(options.String), &rec.Options); err != nil {
				return nil, fmt.Errorf("failed to decode options for %s: %w", rec.FieldName, err)
			}
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// CountFormFields reports how many records one form currently holds.
func (s *FieldStore) CountFormFields(ctx context.Context, formID string) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM form_field WHERE form_id = ?`, formID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count fields: %w", err)
	}
	return count, nil
}

func encodeOptions(options []string) (any, error) {
	if len(options) == 0 {
		return nil, nil
	}
	data, err := json.Marshal(options)
	if err != nil {
		return nil, fmt.Errorf("failed to encode options: %w", err)
	}
	return string(data), nil
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
