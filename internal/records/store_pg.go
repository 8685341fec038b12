package records

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// PGStore keeps records in Postgres, one row per line-format payload.
type PGStore struct {
	DB *sql.DB
}

// Append inserts rec as a new row.
func (r *PGStore) Append(ctx context.Context, rec ResumeRecord) error {
	const query = `
INSERT INTO resume_records (id, payload, created_at)
VALUES ($1, $2, $3)`

	line, err := EncodeLine(rec)
	if err != nil {
		return fmt.Errorf("%w: encode: %w", ErrAppend, err)
	}
	payload := strings.TrimSuffix(string(line), "\n")
	if _, err := r.DB.ExecContext(ctx, query, uuid.NewString(), payload, time.Now().UTC()); err != nil {
		return fmt.Errorf("%w: insert: %w", ErrAppend, err)
	}
	return nil
}

// LoadAll returns every row in insertion order.
func (r *PGStore) LoadAll(ctx context.Context) ([]ResumeRecord, error) {
	const query = `
SELECT seq, payload
FROM resume_records
ORDER BY seq ASC`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []ResumeRecord{}
	for rows.Next() {
		var seq int64
		var payload string
		if err := rows.Scan(&seq, &payload); err != nil {
			return nil, err
		}
		rec, err := DecodeLine([]byte(payload))
		if err != nil {
			return []ResumeRecord{}, &CorruptLogError{Line: int(seq), Err: err}
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

var _ Store = (*PGStore)(nil)
