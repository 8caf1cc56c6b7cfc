package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/blogem/privacy-toolkit/config"
	"github.com/blogem/privacy-toolkit/models"
	"github.com/blogem/privacy-toolkit/repositories"
)

// ErrMissingSubject is returned when a consent operation has no subject to scope it to
var ErrMissingSubject = errors.New("consent subject is required")

// ConsentService interface defines consent collection business logic
type ConsentService interface {
	GetOptions() []models.ConsentOption
	GetConsent(ctx context.Context, subjectID string) (*models.ConsentSettings, error)
	SaveConsent(ctx context.Context, subjectID string, form *models.ConsentForm) (*models.ConsentSettings, models.ValidationResult, error)
	AcceptAll(ctx context.Context, subjectID, method string) (*models.ConsentSettings, error)
	RejectAll(ctx context.Context, subjectID, method string) (*models.ConsentSettings, error)
	GetHistory(ctx context.Context, subjectID string) ([]models.ConsentSettings, error)
	HasConsent(ctx context.Context, subjectID, optionID string) (bool, error)
	NeedsRenewal(ctx context.Context, subjectID string) (bool, error)
	ClearConsent(ctx context.Context, subjectID string) error
}

// consentService implements ConsentService interface
type consentService struct {
	repo   repositories.ConsentRepository
	policy config.ConsentPolicy
	clock  Clock
}

// NewConsentService creates a new consent service for the configured consent form
func NewConsentService(repo repositories.ConsentRepository, policy config.ConsentPolicy, clock Clock) ConsentService {
	return &consentService{repo: repo, policy: policy, clock: clock}
}

// GetOptions returns a copy of the active option set
func (s *consentService) GetOptions() []models.ConsentOption {
	options := make([]models.ConsentOption, len(s.policy.Options))
	copy(options, s.policy.Options)
	return options
}

// GetConsent retrieves the subject's current consent, nil when none was given
func (s *consentService) GetConsent(ctx context.Context, subjectID string) (*models.ConsentSettings, error) {
	if subjectID == "" {
		return nil, ErrMissingSubject
	}
	return s.repo.GetCurrent(ctx, subjectID)
}

// SaveConsent validates the choices and, when valid, replaces the current
// consent and appends it to the history.
func (s *consentService) SaveConsent(ctx context.Context, subjectID string, form *models.ConsentForm) (*models.ConsentSettings, models.ValidationResult, error) {
	if subjectID == "" {
		return nil, models.ValidationResult{}, ErrMissingSubject
	}

	consents := make(map[string]bool, len(form.Consents))
	for id, granted := range form.Consents {
		consents[id] = granted
	}

	method := strings.TrimSpace(form.Method)
	if method == "" {
		method = models.ConsentMethodAPI
	}

	now := s.clock.Now()
	settings := models.ConsentSettings{
		Consents:      consents,
		Timestamp:     now,
		Version:       s.policy.Version,
		Method:        method,
		HasInteracted: form.HasInteracted,
	}

	validation := models.ValidateConsentSettings(settings, s.policy.Options, now)
	if !validation.Valid {
		return nil, validation, nil
	}

	if err := s.repo.SaveCurrent(ctx, subjectID, settings); err != nil {
		return nil, validation, fmt.Errorf("failed to save consent: %w", err)
	}
	if err := s.repo.AppendHistory(ctx, subjectID, settings.Clone()); err != nil {
		return nil, validation, fmt.Errorf("failed to record consent history: %w", err)
	}

	return &settings, validation, nil
}

// AcceptAll grants every option
func (s *consentService) AcceptAll(ctx context.Context, subjectID, method string) (*models.ConsentSettings, error) {
	consents := make(map[string]bool, len(s.policy.Options))
	for _, option := range s.policy.Options {
		consents[option.ID] = true
	}
	return s.saveChoice(ctx, subjectID, method, consents)
}

// RejectAll grants only the required options
func (s *consentService) RejectAll(ctx context.Context, subjectID, method string) (*models.ConsentSettings, error) {
	consents := make(map[string]bool, len(s.policy.Options))
	for _, option := range s.policy.Options {
		consents[option.ID] = option.Required
	}
	return s.saveChoice(ctx, subjectID, method, consents)
}

func (s *consentService) saveChoice(ctx context.Context, subjectID, method string, consents map[string]bool) (*models.ConsentSettings, error) {
	settings, validation, err := s.SaveConsent(ctx, subjectID, &models.ConsentForm{
		Consents:      consents,
		Method:        method,
		HasInteracted: true,
	})
	if err != nil {
		return nil, err
	}
	if !validation.Valid {
		// Only reachable when the policy itself is broken, e.g. an empty version
		return nil, fmt.Errorf("consent policy rejected its own defaults: %s", strings.Join(validation.Errors, ", "))
	}
	return settings, nil
}

// GetHistory retrieves every saved snapshot of the subject, oldest first
func (s *consentService) GetHistory(ctx context.Context, subjectID string) ([]models.ConsentSettings, error) {
	if subjectID == "" {
		return nil, ErrMissingSubject
	}
	return s.repo.GetHistory(ctx, subjectID)
}

// HasConsent reports whether the subject currently grants the option.
// Without stored consent only required options count as granted.
func (s *consentService) HasConsent(ctx context.Context, subjectID, optionID string) (bool, error) {
	settings, err := s.GetConsent(ctx, subjectID)
	if err != nil {
		return false, err
	}
	if settings == nil {
		for _, option := range s.policy.Options {
			if option.ID == optionID {
				return option.Required, nil
			}
		}
		return false, nil
	}
	return settings.Granted(optionID), nil
}

// NeedsRenewal reports whether the subject has to be asked again
func (s *consentService) NeedsRenewal(ctx context.Context, subjectID string) (bool, error) {
	settings, err := s.GetConsent(ctx, subjectID)
	if err != nil {
		return false, err
	}
	return models.NeedsRenewal(settings, s.policy.Version, s.policy.MaxAge(), s.clock.Now()), nil
}

// ClearConsent withdraws the current consent; the history is kept
func (s *consentService) ClearConsent(ctx context.Context, subjectID string) error {
	if subjectID == "" {
		return ErrMissingSubject
	}
	if err := s.repo.DeleteCurrent(ctx, subjectID); err != nil {
		return fmt.Errorf("failed to clear consent: %w", err)
	}
	return nil
}
