package repositories

import (
	"context"

	"github.com/blogem/privacy-toolkit/models"
	"github.com/blogem/privacy-toolkit/storage"
)

// BreachRepository interface defines breach report persistence.
// Risk assessments and notifications are separate collections keyed by breach ID.
type BreachRepository interface {
	GetAll(ctx context.Context) ([]models.BreachReport, error)
	GetByID(ctx context.Context, id string) (*models.BreachReport, error)
	Find(ctx context.Context, filter models.BreachFilter) ([]models.BreachReport, error)
	Create(ctx context.Context, report *models.BreachReport) error
	Update(ctx context.Context, report *models.BreachReport) error
	Modify(ctx context.Context, id string, change func(*models.BreachReport) error) (*models.BreachReport, error)
	AddRiskAssessment(ctx context.Context, assessment *models.BreachRiskAssessment) error
	GetRiskAssessments(ctx context.Context, breachID string) ([]models.BreachRiskAssessment, error)
	AddNotification(ctx context.Context, notification *models.RegulatoryNotification) error
	GetNotifications(ctx context.Context, breachID string) ([]models.RegulatoryNotification, error)
}

// breachRepository implements BreachRepository over a storage adapter
type breachRepository struct {
	reports       *collection[models.BreachReport]
	assessments   *collection[models.BreachRiskAssessment]
	notifications *collection[models.RegulatoryNotification]
}

// NewBreachRepository creates a new breach repository
func NewBreachRepository(store storage.Adapter) BreachRepository {
	return &breachRepository{
		reports:       newCollection(store, breachReportsKey, func(b *models.BreachReport) string { return b.ID }),
		assessments:   newCollection(store, breachAssessmentKey, func(a *models.BreachRiskAssessment) string { return a.ID }),
		notifications: newCollection(store, breachNoticesKey, func(n *models.RegulatoryNotification) string { return n.ID }),
	}
}

// GetAll retrieves all breach reports in insertion order
func (r *breachRepository) GetAll(ctx context.Context) ([]models.BreachReport, error) {
	return r.reports.all(ctx)
}

// GetByID retrieves a breach report by ID, nil when it does not exist
func (r *breachRepository) GetByID(ctx context.Context, id string) (*models.BreachReport, error) {
	return r.reports.get(ctx, id)
}

// Find retrieves the breach reports matching the filter
func (r *breachRepository) Find(ctx context.Context, filter models.BreachFilter) ([]models.BreachReport, error) {
	return r.reports.filter(ctx, filter.Matches)
}

// Create stores a new breach report
func (r *breachRepository) Create(ctx context.Context, report *models.BreachReport) error {
	return r.reports.insert(ctx, *report)
}

// Update replaces a stored breach report
func (r *breachRepository) Update(ctx context.Context, report *models.BreachReport) error {
	found, err := r.reports.replace(ctx, *report)
	if err != nil {
		return err
	}
	if !found {
		return ErrNotFound
	}
	return nil
}

// Modify applies change to the stored report as one locked read-modify-write.
// Returns nil when the report does not exist.
func (r *breachRepository) Modify(ctx context.Context, id string, change func(*models.BreachReport) error) (*models.BreachReport, error) {
	return r.reports.update(ctx, id, change)
}

// AddRiskAssessment stores a risk assessment
func (r *breachRepository) AddRiskAssessment(ctx context.Context, assessment *models.BreachRiskAssessment) error {
	return r.assessments.insert(ctx, *assessment)
}

// GetRiskAssessments retrieves the assessments of a breach, oldest first
func (r *breachRepository) GetRiskAssessments(ctx context.Context, breachID string) ([]models.BreachRiskAssessment, error) {
	return r.assessments.filter(ctx, func(a *models.BreachRiskAssessment) bool { return a.BreachID == breachID })
}

// AddNotification stores a regulatory notification
func (r *breachRepository) AddNotification(ctx context.Context, notification *models.RegulatoryNotification) error {
	return r.notifications.insert(ctx, *notification)
}

// GetNotifications retrieves the notifications of a breach, oldest first
func (r *breachRepository) GetNotifications(ctx context.Context, breachID string) ([]models.RegulatoryNotification, error) {
	return r.notifications.filter(ctx, func(n *models.RegulatoryNotification) bool { return n.BreachID == breachID })
}
