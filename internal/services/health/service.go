package health

import (
	"context"
	"database/sql"
	"time"
)

const pingTimeout = 2 * time.Second

// Service encapsulates health-related checks.
type Service struct {
	RecordStore string
	DB          *sql.DB
}

// NewService constructs a new health service.
func NewService(recordStore string, db *sql.DB) *Service {
	return &Service{RecordStore: recordStore, DB: db}
}

// Status returns the health payload and whether every dependency answered.
func (s *Service) Status(ctx context.Context) (map[string]any, bool) {
	out := map[string]any{"ok": true}
	if s == nil {
		return out, true
	}
	if s.RecordStore != "" {
		out["recordStore"] = s.RecordStore
	}
	if s.DB == nil {
		return out, true
	}

	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := s.DB.PingContext(ctx); err != nil {
		out["ok"] = false
		out["database"] = "unreachable"
		return out, false
	}
	out["database"] = "ok"
	return out, true
}
