package repositories

import (
	"context"

	"github.com/blogem/privacy-toolkit/models"
	"github.com/blogem/privacy-toolkit/storage"
)

// DPIARepository interface defines saved assessment persistence
type DPIARepository interface {
	GetAll(ctx context.Context) ([]models.DPIAAssessment, error)
	GetByID(ctx context.Context, id string) (*models.DPIAAssessment, error)
	Create(ctx context.Context, assessment *models.DPIAAssessment) error
	Delete(ctx context.Context, id string) error
}

type dpiaRepository struct {
	assessments *collection[models.DPIAAssessment]
}

// NewDPIARepository creates a new assessment repository
func NewDPIARepository(store storage.Adapter) DPIARepository {
	return &dpiaRepository{
		assessments: newCollection(store, dpiaAssessmentsKey, func(a *models.DPIAAssessment) string { return a.ID }),
	}
}

func (r *dpiaRepository) GetAll(ctx context.Context) ([]models.DPIAAssessment, error) {
	return r.assessments.all(ctx)
}

func (r *dpiaRepository) GetByID(ctx context.Context, id string) (*models.DPIAAssessment, error) {
	return r.assessments.get(ctx, id)
}

func (r *dpiaRepository) Create(ctx context.Context, assessment *models.DPIAAssessment) error {
	return r.assessments.insert(ctx, *assessment)
}

func (r *dpiaRepository) Delete(ctx context.Context, id string) error {
	found, err := r.assessments.remove(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return ErrNotFound
	}
	return nil
}
