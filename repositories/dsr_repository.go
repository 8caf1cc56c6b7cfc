package repositories

import (
	"context"

	"github.com/blogem/privacy-toolkit/models"
	"github.com/blogem/privacy-toolkit/storage"
)

// DSRRepository interface defines data-subject request persistence
type DSRRepository interface {
	GetAll(ctx context.Context) ([]models.DSRRequest, error)
	GetByID(ctx context.Context, id string) (*models.DSRRequest, error)
	Find(ctx context.Context, filter models.DSRFilter) ([]models.DSRRequest, error)
	Create(ctx context.Context, request *models.DSRRequest) error
	Update(ctx context.Context, request *models.DSRRequest) error
	Modify(ctx context.Context, id string, change func(*models.DSRRequest) error) (*models.DSRRequest, error)
	Delete(ctx context.Context, id string) error
}

// dsrRepository implements DSRRepository over a storage adapter
type dsrRepository struct {
	requests *collection[models.DSRRequest]
}

// NewDSRRepository creates a new data-subject request repository
func NewDSRRepository(store storage.Adapter) DSRRepository {
	return &dsrRepository{
		requests: newCollection(store, dsrRequestsKey, func(r *models.DSRRequest) string { return r.ID }),
	}
}

// GetAll retrieves all requests in insertion order
func (r *dsrRepository) GetAll(ctx context.Context) ([]models.DSRRequest, error) {
	return r.requests.all(ctx)
}

// GetByID retrieves a request by ID, nil when it does not exist
func (r *dsrRepository) GetByID(ctx context.Context, id string) (*models.DSRRequest, error) {
	return r.requests.get(ctx, id)
}

// Find retrieves the requests matching the filter
func (r *dsrRepository) Find(ctx context.Context, filter models.DSRFilter) ([]models.DSRRequest, error) {
	return r.requests.filter(ctx, filter.Matches)
}

// Create stores a new request
func (r *dsrRepository) Create(ctx context.Context, request *models.DSRRequest) error {
	return r.requests.insert(ctx, *request)
}

// Update replaces a stored request
func (r *dsrRepository) Update(ctx context.Context, request *models.DSRRequest) error {
	found, err := r.requests.replace(ctx, *request)
	if err != nil {
		return err
	}
	if !found {
		return ErrNotFound
	}
	return nil
}

// Modify applies change to the stored request as one locked read-modify-write.
// Returns nil when the request does not exist; an error from change leaves it untouched.
func (r *dsrRepository) Modify(ctx context.Context, id string, change func(*models.DSRRequest) error) (*models.DSRRequest, error) {
	return r.requests.update(ctx, id, change)
}

// Delete removes a request
func (r *dsrRepository) Delete(ctx context.Context, id string) error {
	found, err := r.requests.remove(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return ErrNotFound
	}
	return nil
}
