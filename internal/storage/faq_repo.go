package storage

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_faq_store.go -package=mocks nutrition-assistant/internal/storage FAQStore

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
)

// FAQStore defines the interface for corpus storage operations.
type FAQStore interface {
	// ReplaceAll atomically replaces the stored corpus. Positions follow the
	// slice order and IDs are generated when empty.
	ReplaceAll(ctx context.Context, records []FAQRecord) error
	// ListAll returns all records ordered by position.
	ListAll(ctx context.Context) ([]FAQRecord, error)
	// Count returns the number of stored records.
	Count(ctx context.Context) (int, error)
}

// FAQRepo implements FAQStore on SQLite.
type FAQRepo struct {
	db *sql.DB
}

// NewFAQRepo creates a new FAQRepo.
func NewFAQRepo(db *sql.DB) *FAQRepo {
	return &FAQRepo{db: db}
}

// ReplaceAll deletes the stored corpus and inserts records in one transaction.
func (r *FAQRepo) ReplaceAll(ctx context.Context, records []FAQRecord) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, "DELETE FROM faq_entries"); err != nil {
		return fmt.Errorf("failed to clear faq entries: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		"INSERT INTO faq_entries (id, position, question, answer) VALUES (?, ?, ?, ?)",
	)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer func() {
		_ = stmt.Close()
	}()

	for i, rec := range records {
		id := rec.ID
		if id == "" {
			id = uuid.NewString()
		}
		if _, err := stmt.ExecContext(ctx, id, i, rec.Question, rec.Answer); err != nil {
			return fmt.Errorf("failed to insert faq entry %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit faq entries: %w", err)
	}
	return nil
}

// ListAll returns all records ordered by position.
// Returns an empty slice if the table is empty.
func (r *FAQRepo) ListAll(ctx context.Context) ([]FAQRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, position, question, answer, created_at FROM faq_entries ORDER BY position",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query faq entries: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	records := []FAQRecord{}
	for rows.Next() {
		var rec FAQRecord
		if err := rows.Scan(&rec.ID, &rec.Position, &rec.Question, &rec.Answer, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan faq entry: %w", err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return records, nil
}

// Count returns the number of stored records.
func (r *FAQRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM faq_entries").Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count faq entries: %w", err)
	}
	return n, nil
}
