package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/twomenstudio/studiopanel/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.DocumentStore = (*DocumentRepo)(nil)

// DocumentRepo is the SQLite implementation of the DocumentStore port
// interface. Each named document is one JSON text row; the budget caps the
// combined size of all stored documents, mirroring the quota of the
// origin-scoped browser storage this replaces.
type DocumentRepo struct {
	db     *DB
	budget int64 // total byte budget across all documents; <= 0 means unlimited
	logger *slog.Logger
}

// NewDocumentRepo creates a DocumentRepo backed by the given DB with the
// given storage budget in bytes. A budget <= 0 disables quota enforcement.
func NewDocumentRepo(db *DB, budget int64, logger *slog.Logger) *DocumentRepo {
	return &DocumentRepo{db: db, budget: budget, logger: logger}
}

// Write serializes doc and upserts it under key. When the post-write total
// would exceed the budget the write is refused with driven.ErrQuotaExceeded
// and the previously stored document (if any) is left intact.
func (r *DocumentRepo) Write(ctx context.Context, key string, doc any) error {
	body, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal document %q: %w", key, err)
	}

	if r.budget > 0 {
		const sizeQuery = `SELECT COALESCE(SUM(bytes), 0) FROM documents WHERE key != ?`

		var otherBytes int64
		if err := r.db.Reader.QueryRowContext(ctx, sizeQuery, key).Scan(&otherBytes); err != nil {
			return fmt.Errorf("measure stored documents: %w", err)
		}

		if otherBytes+int64(len(body)) > r.budget {
			return fmt.Errorf("write document %q (%d bytes, %d in use, budget %d): %w",
				key, len(body), otherBytes, r.budget, driven.ErrQuotaExceeded)
		}
	}

	const query = `
		INSERT INTO documents (key, body, bytes, updated_at)
		VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET
			body = excluded.body,
			bytes = excluded.bytes,
			updated_at = CURRENT_TIMESTAMP
	`

	if _, err := r.db.Writer.ExecContext(ctx, query, key, string(body), len(body)); err != nil {
		return fmt.Errorf("write document %q: %w", key, err)
	}

	return nil
}

// Read deserializes the document stored under key into v. Returns
// (false, nil) when the key is absent or the stored text does not parse;
// parse failures are logged at debug level and otherwise swallowed so the
// caller falls back to seed data.
func (r *DocumentRepo) Read(ctx context.Context, key string, v any) (bool, error) {
	const query = `SELECT body FROM documents WHERE key = ?`

	var body string
	err := r.db.Reader.QueryRowContext(ctx, query, key).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read document %q: %w", key, err)
	}

	if err := json.Unmarshal([]byte(body), v); err != nil {
		r.logger.Debug("stored document does not parse, falling back to seed",
			"key", key,
			"error", err,
		)
		return false, nil
	}

	return true, nil
}

// Delete removes the document stored under key. Missing keys are ignored.
func (r *DocumentRepo) Delete(ctx context.Context, key string) error {
	const query = `DELETE FROM documents WHERE key = ?`

	if _, err := r.db.Writer.ExecContext(ctx, query, key); err != nil {
		return fmt.Errorf("delete document %q: %w", key, err)
	}

	return nil
}

// UsedBytes reports the combined size of all stored document bodies.
func (r *DocumentRepo) UsedBytes(ctx context.Context) (int64, error) {
	const query = `SELECT COALESCE(SUM(bytes), 0) FROM documents`

	var used int64
	if err := r.db.Reader.QueryRowContext(ctx, query).Scan(&used); err != nil {
		return 0, fmt.Errorf("measure stored documents: %w", err)
	}

	return used, nil
}
