package repositories

import (
	"context"

	"github.com/blogem/privacy-toolkit/models"
	"github.com/blogem/privacy-toolkit/storage"
)

// AuditRepository handles audit log persistence
type AuditRepository interface {
	Create(ctx context.Context, entry *models.AuditLogEntry) error
	GetRecent(ctx context.Context, limit int) ([]models.AuditLogEntry, error)
}

type auditRepository struct {
	entries *collection[models.AuditLogEntry]
}

// NewAuditRepository creates a new audit repository
func NewAuditRepository(store storage.Adapter) AuditRepository {
	return &auditRepository{
		entries: newCollection(store, auditLogKey, func(e *models.AuditLogEntry) string { return e.ID }),
	}
}

// Create appends an audit log entry
// TODO: trim old entries once audit retention is configurable in the policy file
func (r *auditRepository) Create(ctx context.Context, entry *models.AuditLogEntry) error {
	return r.entries.insert(ctx, *entry)
}

// GetRecent returns up to limit entries, newest first. A non-positive limit returns all.
func (r *auditRepository) GetRecent(ctx context.Context, limit int) ([]models.AuditLogEntry, error) {
	entries, err := r.entries.all(ctx)
	if err != nil {
		return nil, err
	}

	if limit <= 0 || limit > len(entries) {
		limit = len(entries)
	}

	recent := make([]models.AuditLogEntry, 0, limit)
	for i := len(entries) - 1; i >= 0 && len(recent) < limit; i-- {
		recent = append(recent, entries[i])
	}
	return recent, nil
}
