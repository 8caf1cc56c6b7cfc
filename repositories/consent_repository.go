package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/blogem/privacy-toolkit/logger"
	"github.com/blogem/privacy-toolkit/models"
	"github.com/blogem/privacy-toolkit/storage"
)

// ConsentRepository interface defines consent snapshot persistence per subject
type ConsentRepository interface {
	GetCurrent(ctx context.Context, subjectID string) (*models.ConsentSettings, error)
	SaveCurrent(ctx context.Context, subjectID string, settings models.ConsentSettings) error
	DeleteCurrent(ctx context.Context, subjectID string) error
	AppendHistory(ctx context.Context, subjectID string, settings models.ConsentSettings) error
	GetHistory(ctx context.Context, subjectID string) ([]models.ConsentSettings, error)
}

// consentRepository implements ConsentRepository over a storage adapter
type consentRepository struct {
	store storage.Adapter
	mu    sync.Mutex
}

// NewConsentRepository creates a new consent repository
func NewConsentRepository(store storage.Adapter) ConsentRepository {
	return &consentRepository{store: store}
}

func currentConsentKey(subjectID string) string {
	return keyPrefix + "consent." + subjectID + ".current"
}

func consentHistoryKey(subjectID string) string {
	return keyPrefix + "consent." + subjectID + ".history"
}

// GetCurrent returns the subject's active consent, or nil when none is stored or it is unreadable
func (r *consentRepository) GetCurrent(ctx context.Context, subjectID string) (*models.ConsentSettings, error) {
	key := currentConsentKey(subjectID)
	raw, found, err := r.store.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to read consent: %w", err)
	}
	if !found {
		return nil, nil
	}

	var settings models.ConsentSettings
	if err := json.Unmarshal([]byte(raw), &settings); err != nil {
		logger.Logger().WithError(err).WithField("key", key).Warn("Discarding corrupt consent record")
		return nil, nil
	}

	return &settings, nil
}

// SaveCurrent replaces the subject's active consent
func (r *consentRepository) SaveCurrent(ctx context.Context, subjectID string, settings models.ConsentSettings) error {
	raw, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to encode consent: %w", err)
	}
	if err := r.store.Set(ctx, currentConsentKey(subjectID), string(raw)); err != nil {
		return fmt.Errorf("failed to write consent: %w", err)
	}
	return nil
}

// DeleteCurrent removes the subject's active consent and keeps the history
func (r *consentRepository) DeleteCurrent(ctx context.Context, subjectID string) error {
	if err := r.store.Remove(ctx, currentConsentKey(subjectID)); err != nil {
		return fmt.Errorf("failed to remove consent: %w", err)
	}
	return nil
}

// AppendHistory adds a snapshot to the end of the subject's history
func (r *consentRepository) AppendHistory(ctx context.Context, subjectID string, settings models.ConsentSettings) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	history, err := r.loadHistory(ctx, subjectID)
	if err != nil {
		return err
	}

	raw, err := json.Marshal(append(history, settings))
	if err != nil {
		return fmt.Errorf("failed to encode consent history: %w", err)
	}
	if err := r.store.Set(ctx, consentHistoryKey(subjectID), string(raw)); err != nil {
		return fmt.Errorf("failed to write consent history: %w", err)
	}
	return nil
}

// GetHistory returns the subject's snapshots, oldest first
func (r *consentRepository) GetHistory(ctx context.Context, subjectID string) ([]models.ConsentSettings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.loadHistory(ctx, subjectID)
}

func (r *consentRepository) loadHistory(ctx context.Context, subjectID string) ([]models.ConsentSettings, error) {
	key := consentHistoryKey(subjectID)
	raw, found, err := r.store.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to read consent history: %w", err)
	}
	if !found {
		return []models.ConsentSettings{}, nil
	}

	var history []models.ConsentSettings
	if err := json.Unmarshal([]byte(raw), &history); err != nil {
		logger.Logger().WithError(err).WithField("key", key).Warn("Discarding corrupt consent history")
		return []models.ConsentSettings{}, nil
	}
	if history == nil {
		history = []models.ConsentSettings{}
	}

	return history, nil
}
