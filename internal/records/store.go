package records

import "context"

// Store persists records in append order.
type Store interface {
	Append(ctx context.Context, rec ResumeRecord) error
	// LoadAll returns every stored record. A malformed entry abandons the
	// whole load: the result is empty and the error wraps ErrCorruptLog.
	LoadAll(ctx context.Context) ([]ResumeRecord, error)
}
