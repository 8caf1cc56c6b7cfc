package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/blogem/privacy-toolkit/config"
	"github.com/blogem/privacy-toolkit/logger"
	"github.com/blogem/privacy-toolkit/models"
	"github.com/blogem/privacy-toolkit/repositories"
)

var (
	// ErrInvalidTransition is returned by strict policies for a status change the table does not allow
	ErrInvalidTransition = errors.New("status transition not allowed")
	// ErrUnknownStatus is returned when a request is moved to a status that does not exist
	ErrUnknownStatus = errors.New("unknown request status")

	errInvalidPatch = errors.New("patch failed validation")
)

// DefaultVerificationMethod is recorded when a verification names no method
const DefaultVerificationMethod = "manual"

// strictTransitions lists the allowed targets per status when transitions are enforced
var strictTransitions = map[models.DSRStatus][]models.DSRStatus{
	models.DSRPending:              {models.DSRAwaitingVerification, models.DSRInProgress, models.DSRRejected},
	models.DSRAwaitingVerification: {models.DSRInProgress, models.DSRRejected},
	models.DSRInProgress:           {models.DSRCompleted, models.DSRRejected},
}

// DSRService interface defines the data-subject request lifecycle
type DSRService interface {
	CreateRequest(ctx context.Context, form *models.DSRRequestForm) (*models.DSRRequest, models.ValidationResult, error)
	GetRequest(ctx context.Context, id string) (*models.DSRRequest, error)
	ListRequests(ctx context.Context, filter models.DSRFilter) ([]models.DSRRequest, error)
	GetRequestsByStatus(ctx context.Context, status models.DSRStatus) ([]models.DSRRequest, error)
	GetRequestsByType(ctx context.Context, requestType models.DSRType) ([]models.DSRRequest, error)
	UpdateRequest(ctx context.Context, id string, patch *models.DSRRequestPatch) (*models.DSRRequest, models.ValidationResult, error)
	UpdateStatus(ctx context.Context, id string, status models.DSRStatus) (*models.DSRRequest, error)
	RejectRequest(ctx context.Context, id, reason string) (*models.DSRRequest, error)
	RecordVerification(ctx context.Context, id string, verification models.DSRVerification) (*models.DSRRequest, error)
	AddNote(ctx context.Context, id, author, text string) (*models.DSRRequest, models.ValidationResult, error)
	GetOverdueRequests(ctx context.Context) ([]models.DSRRequest, error)
	GetStatistics(ctx context.Context) (*models.DSRStatistics, error)
}

// dsrService implements DSRService interface
type dsrService struct {
	repo   repositories.DSRRepository
	policy config.DSRPolicy
	clock  Clock
}

// NewDSRService creates a new data-subject request service
func NewDSRService(repo repositories.DSRRepository, policy config.DSRPolicy, clock Clock) DSRService {
	return &dsrService{repo: repo, policy: policy, clock: clock}
}

// CreateRequest validates a submission and stores it as a pending request
func (s *dsrService) CreateRequest(ctx context.Context, form *models.DSRRequestForm) (*models.DSRRequest, models.ValidationResult, error) {
	validation := models.NewValidationResult(form.Validate())
	if !validation.Valid {
		return nil, validation, nil
	}

	now := s.clock.Now()
	request := &models.DSRRequest{
		ID:          uuid.NewString(),
		Type:        form.Type,
		Status:      models.DSRPending,
		CreatedAt:   now,
		UpdatedAt:   now,
		DueDate:     now.Add(s.policy.SLA(form.Type)),
		Subject:     trimSubject(form.Subject),
		Description: strings.TrimSpace(form.Description),
		Details:     form.Details,
		Notes:       []models.DSRNote{},
	}

	if err := s.repo.Create(ctx, request); err != nil {
		return nil, validation, fmt.Errorf("failed to create request: %w", err)
	}

	logger.Logger().WithFields(logrus.Fields{
		"id":   request.ID,
		"type": request.Type,
		"due":  models.FormatDate(request.DueDate),
	}).Info("Data-subject request received")

	return request, validation, nil
}

// GetRequest retrieves a request by ID, nil when it does not exist
func (s *dsrService) GetRequest(ctx context.Context, id string) (*models.DSRRequest, error) {
	return s.repo.GetByID(ctx, id)
}

// ListRequests retrieves the requests matching the filter in insertion order
func (s *dsrService) ListRequests(ctx context.Context, filter models.DSRFilter) ([]models.DSRRequest, error) {
	return s.repo.Find(ctx, filter)
}

// GetRequestsByStatus retrieves the requests in the given status
func (s *dsrService) GetRequestsByStatus(ctx context.Context, status models.DSRStatus) ([]models.DSRRequest, error) {
	return s.repo.Find(ctx, models.DSRFilter{Status: status})
}

// GetRequestsByType retrieves the requests of the given type
func (s *dsrService) GetRequestsByType(ctx context.Context, requestType models.DSRType) ([]models.DSRRequest, error) {
	return s.repo.Find(ctx, models.DSRFilter{Type: requestType})
}

// UpdateRequest applies a patch. The patched request is validated like a new submission.
func (s *dsrService) UpdateRequest(ctx context.Context, id string, patch *models.DSRRequestPatch) (*models.DSRRequest, models.ValidationResult, error) {
	validation := models.NewValidationResult(nil)

	request, err := s.modify(ctx, id, func(request *models.DSRRequest) error {
		form := models.DSRRequestForm{
			Type:        request.Type,
			Subject:     request.Subject,
			Description: request.Description,
			Details:     request.Details,
		}
		if patch.Subject != nil {
			form.Subject = trimSubject(*patch.Subject)
		}
		if patch.Description != nil {
			form.Description = strings.TrimSpace(*patch.Description)
		}
		if patch.Details != nil {
			form.Details = *patch.Details
		}

		validation = models.NewValidationResult(form.Validate())
		if patch.Status != nil && !patch.Status.Valid() {
			validation = validation.Merge(models.NewValidationResult([]string{fmt.Sprintf("Status %q is not supported", *patch.Status)}))
		}
		if !validation.Valid {
			return errInvalidPatch
		}

		if patch.Status != nil {
			if err := s.applyStatus(request, *patch.Status); err != nil {
				return err
			}
		}
		request.Subject = form.Subject
		request.Description = form.Description
		request.Details = form.Details
		if patch.AssignedTo != nil {
			request.AssignedTo = strings.TrimSpace(*patch.AssignedTo)
		}
		request.UpdatedAt = s.clock.Now()
		return nil
	})
	if errors.Is(err, errInvalidPatch) {
		return nil, validation, nil
	}

	return request, validation, err
}

// UpdateStatus moves a request to a new status
func (s *dsrService) UpdateStatus(ctx context.Context, id string, status models.DSRStatus) (*models.DSRRequest, error) {
	return s.modify(ctx, id, func(request *models.DSRRequest) error {
		if err := s.applyStatus(request, status); err != nil {
			return err
		}
		request.UpdatedAt = s.clock.Now()
		return nil
	})
}

// RejectRequest moves a request to rejected and records the reason
func (s *dsrService) RejectRequest(ctx context.Context, id, reason string) (*models.DSRRequest, error) {
	reason = strings.TrimSpace(reason)

	return s.modify(ctx, id, func(request *models.DSRRequest) error {
		if err := s.applyStatus(request, models.DSRRejected); err != nil {
			return err
		}
		if reason != "" {
			request.RejectionReason = &reason
		}
		request.UpdatedAt = s.clock.Now()
		return nil
	})
}

// RecordVerification stores the identity check. A request awaiting verification moves to in progress.
func (s *dsrService) RecordVerification(ctx context.Context, id string, verification models.DSRVerification) (*models.DSRRequest, error) {
	verification.Method = strings.TrimSpace(verification.Method)
	if verification.Method == "" {
		verification.Method = DefaultVerificationMethod
	}

	return s.modify(ctx, id, func(request *models.DSRRequest) error {
		now := s.clock.Now()
		if verification.VerifiedAt.IsZero() {
			verification.VerifiedAt = now
		}
		request.Verification = &verification

		if request.Status == models.DSRAwaitingVerification {
			if err := s.applyStatus(request, models.DSRInProgress); err != nil {
				return err
			}
		}
		request.UpdatedAt = now
		return nil
	})
}

// AddNote appends an internal note
func (s *dsrService) AddNote(ctx context.Context, id, author, text string) (*models.DSRRequest, models.ValidationResult, error) {
	text = strings.TrimSpace(text)
	var errs []string
	if text == "" {
		errs = append(errs, "Note text is required")
	} else if len(text) > 5000 {
		errs = append(errs, "Note text must be less than 5000 characters")
	}
	validation := models.NewValidationResult(errs)
	if !validation.Valid {
		return nil, validation, nil
	}

	request, err := s.modify(ctx, id, func(request *models.DSRRequest) error {
		now := s.clock.Now()
		request.Notes = append(request.Notes, models.DSRNote{
			Author:    strings.TrimSpace(author),
			Text:      text,
			CreatedAt: now,
		})
		request.UpdatedAt = now
		return nil
	})
	return request, validation, err
}

// GetOverdueRequests retrieves the open requests past their due date
func (s *dsrService) GetOverdueRequests(ctx context.Context) ([]models.DSRRequest, error) {
	now := s.clock.Now()
	requests, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	overdue := make([]models.DSRRequest, 0)
	for i := range requests {
		if requests[i].IsOverdue(now) {
			overdue = append(overdue, requests[i])
		}
	}
	return overdue, nil
}

// GetStatistics counts the requests per status and type
func (s *dsrService) GetStatistics(ctx context.Context) (*models.DSRStatistics, error) {
	requests, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	stats := &models.DSRStatistics{
		Total:    len(requests),
		ByStatus: make(map[models.DSRStatus]int, len(models.DSRStatuses)),
		ByType:   make(map[models.DSRType]int, len(models.DSRTypes)),
	}
	for _, status := range models.DSRStatuses {
		stats.ByStatus[status] = 0
	}
	for _, requestType := range models.DSRTypes {
		stats.ByType[requestType] = 0
	}

	now := s.clock.Now()
	for i := range requests {
		stats.ByStatus[requests[i].Status]++
		stats.ByType[requests[i].Type]++
		if requests[i].IsOverdue(now) {
			stats.Overdue++
		}
	}

	return stats, nil
}

// applyStatus changes the status and keeps completedAt and rejectionReason consistent with it
func (s *dsrService) applyStatus(request *models.DSRRequest, status models.DSRStatus) error {
	if !status.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownStatus, status)
	}
	if s.policy.StrictTransitions && !transitionAllowed(request.Status, status) {
		return fmt.Errorf("%w: %s to %s", ErrInvalidTransition, request.Status, status)
	}

	previous := request.Status
	request.Status = status

	switch {
	case status == models.DSRCompleted && previous != models.DSRCompleted:
		completedAt := s.clock.Now()
		request.CompletedAt = &completedAt
	case status != models.DSRCompleted:
		request.CompletedAt = nil
	}
	if previous == models.DSRRejected && status != models.DSRRejected {
		request.RejectionReason = nil
	}

	return nil
}

// modify runs change as one locked read-modify-write. Lifecycle errors from change are returned as is.
func (s *dsrService) modify(ctx context.Context, id string, change func(*models.DSRRequest) error) (*models.DSRRequest, error) {
	request, err := s.repo.Modify(ctx, id, change)
	switch {
	case err == nil:
		return request, nil
	case errors.Is(err, ErrUnknownStatus), errors.Is(err, ErrInvalidTransition), errors.Is(err, errInvalidPatch):
		return nil, err
	default:
		return nil, fmt.Errorf("failed to update request %s: %w", id, err)
	}
}

// transitionAllowed reports whether the strict table permits from -> to. Staying put is always allowed.
func transitionAllowed(from, to models.DSRStatus) bool {
	if from == to {
		return true
	}
	for _, allowed := range strictTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

func trimSubject(subject models.DataSubject) models.DataSubject {
	return models.DataSubject{
		Name:   strings.TrimSpace(subject.Name),
		Email:  strings.TrimSpace(subject.Email),
		Phone:  strings.TrimSpace(subject.Phone),
		UserID: strings.TrimSpace(subject.UserID),
	}
}
