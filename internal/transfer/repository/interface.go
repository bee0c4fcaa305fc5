package repository

import (
	"context"

	"fastbound-gateway/internal/transfer"
)

// Repository is the persistence interface for the submission journal.
type Repository interface {
	// GetByKey retrieves the record for an idempotency key.
	// Returns zero-value Record (ID == "") when not found — not an error.
	GetByKey(ctx context.Context, idempotencyKey string) (transfer.Record, error)

	// Save upserts a record keyed by its idempotency key. The stored
	// CreatedAt survives updates; UpdatedAt is bumped on every write.
	Save(ctx context.Context, record transfer.Record) (transfer.Record, error)

	// List returns records matching the options plus the total match count
	// before pagination, newest first.
	List(ctx context.Context, opt ListOptions) ([]transfer.Record, int, error)
}
