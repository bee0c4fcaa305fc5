// Package bolt persists the submission journal in an embedded BoltDB file.
// One bucket maps idempotency key to a JSON-encoded transfer.Record, so a
// retried submission can be answered from disk without touching FastBound.
package bolt

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	bolt "github.com/boltdb/bolt"

	"fastbound-gateway/internal/transfer"
	repo "fastbound-gateway/internal/transfer/repository"
	"fastbound-gateway/pkg/log"
)

const bucketName = "submissions"

// Journal is the BoltDB-backed submission journal.
type Journal struct {
	db *bolt.DB
	l  log.Logger
}

// New opens (or creates) the journal database at path and ensures the
// submissions bucket exists.
func New(path string, l log.Logger) (*Journal, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, err
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketName))
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Journal{db: db, l: l}, nil
}

// Close releases the database file lock.
func (j *Journal) Close() error {
	return j.db.Close()
}

// GetByKey retrieves the record for an idempotency key.
// Returns zero-value Record (ID == "") when not found — not an error.
func (j *Journal) GetByKey(ctx context.Context, idempotencyKey string) (transfer.Record, error) {
	var rec transfer.Record

	err := j.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(bucketName)).Get([]byte(idempotencyKey))
		if v == nil {
			return nil
		}
		return json.Unmarshal(v, &rec)
	})
	if err != nil {
		j.l.Errorf(ctx, "transfer/repository/bolt.GetByKey: %v", err)
		return transfer.Record{}, repo.ErrFailedToGet
	}

	return rec, nil
}

// Save upserts a record keyed by its idempotency key. The stored CreatedAt
// survives updates; UpdatedAt is bumped on every write.
func (j *Journal) Save(ctx context.Context, record transfer.Record) (transfer.Record, error) {
	err := j.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketName))

		now := time.Now().UTC()
		if existing := b.Get([]byte(record.IdempotencyKey)); existing != nil {
			var prev transfer.Record
			if err := json.Unmarshal(existing, &prev); err == nil {
				record.CreatedAt = prev.CreatedAt
				if record.ID == "" {
					record.ID = prev.ID
				}
			}
		} else {
			record.CreatedAt = now
		}
		record.UpdatedAt = now

		data, err := json.Marshal(record)
		if err != nil {
			return err
		}
		return b.Put([]byte(record.IdempotencyKey), data)
	})
	if err != nil {
		j.l.Errorf(ctx, "transfer/repository/bolt.Save: %v", err)
		return transfer.Record{}, repo.ErrFailedToSave
	}

	return record, nil
}

// List returns records matching the options plus the total match count before
// pagination, newest first.
func (j *Journal) List(ctx context.Context, opt repo.ListOptions) ([]transfer.Record, int, error) {
	var records []transfer.Record

	err := j.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketName)).ForEach(func(k, v []byte) error {
			var rec transfer.Record
			if err := json.Unmarshal(v, &rec); err != nil {
				return err
			}
			if opt.Status != "" && string(rec.Status) != opt.Status {
				return nil
			}
			records = append(records, rec)
			return nil
		})
	})
	if err != nil {
		j.l.Errorf(ctx, "transfer/repository/bolt.List: %v", err)
		return nil, 0, repo.ErrFailedToList
	}

	sort.Slice(records, func(i, k int) bool {
		return records[i].CreatedAt.After(records[k].CreatedAt)
	})

	total := len(records)

	if opt.Offset > 0 {
		if opt.Offset >= len(records) {
			records = nil
		} else {
			records = records[opt.Offset:]
		}
	}
	if opt.Limit > 0 && opt.Limit < len(records) {
		records = records[:opt.Limit]
	}

	// Empty slice rather than nil so JSON encoders emit [] instead of null.
	if records == nil {
		records = []transfer.Record{}
	}
	return records, total, nil
}
