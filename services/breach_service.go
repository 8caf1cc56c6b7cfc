package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/blogem/privacy-toolkit/logger"
	"github.com/blogem/privacy-toolkit/models"
	"github.com/blogem/privacy-toolkit/repositories"
)

// BreachService interface defines breach reporting business logic
type BreachService interface {
	CreateReport(ctx context.Context, form *models.BreachReportForm) (*models.BreachReport, models.ValidationResult, error)
	GetReport(ctx context.Context, id string) (*models.BreachReport, error)
	ListReports(ctx context.Context, filter models.BreachFilter) ([]models.BreachReport, error)
	UpdateReport(ctx context.Context, id string, patch *models.BreachReportPatch) (*models.BreachReport, models.ValidationResult, error)
	UpdateStatus(ctx context.Context, id string, status models.BreachStatus) (*models.BreachReport, error)
	AddRiskAssessment(ctx context.Context, breachID string, form *models.RiskAssessmentForm) (*models.BreachRiskAssessment, models.ValidationResult, error)
	GetRiskAssessments(ctx context.Context, breachID string) ([]models.BreachRiskAssessment, error)
	RecordNotification(ctx context.Context, breachID string, form *models.NotificationForm) (*models.RegulatoryNotification, models.ValidationResult, error)
	GetNotifications(ctx context.Context, breachID string) ([]models.RegulatoryNotification, error)
	GetNotificationStatus(ctx context.Context, breachID string) (*models.NotificationStatus, error)
}

// breachService implements BreachService interface
type breachService struct {
	repo  repositories.BreachRepository
	clock Clock
}

// NewBreachService creates a new breach service
func NewBreachService(repo repositories.BreachRepository, clock Clock) BreachService {
	return &breachService{repo: repo, clock: clock}
}

// CreateReport validates and stores a new breach as ongoing
func (s *breachService) CreateReport(ctx context.Context, form *models.BreachReportForm) (*models.BreachReport, models.ValidationResult, error) {
	now := s.clock.Now()
	validation := models.NewValidationResult(form.Validate(now))
	if !validation.Valid {
		return nil, validation, nil
	}

	report := &models.BreachReport{
		ID:                uuid.NewString(),
		Category:          form.Category,
		Description:       strings.TrimSpace(form.Description),
		DiscoveredAt:      form.DiscoveredAt,
		ReportedAt:        now,
		UpdatedAt:         now,
		ReportedBy:        strings.TrimSpace(form.ReportedBy),
		AffectedSystems:   nonNil(form.AffectedSystems),
		AffectedDataTypes: nonNil(form.AffectedDataTypes),
		EstimatedSubjects: form.EstimatedSubjects,
		Status:            models.BreachOngoing,
		MitigationNotes:   strings.TrimSpace(form.MitigationNotes),
	}

	if err := s.repo.Create(ctx, report); err != nil {
		return nil, validation, fmt.Errorf("failed to create breach report: %w", err)
	}

	logger.Logger().WithFields(logrus.Fields{
		"id":       report.ID,
		"category": report.Category,
		"deadline": report.NotificationDeadline().Format(time.RFC3339),
	}).Warn("Personal data breach reported")

	return report, validation, nil
}

// GetReport retrieves a breach report by ID, nil when it does not exist
func (s *breachService) GetReport(ctx context.Context, id string) (*models.BreachReport, error) {
	return s.repo.GetByID(ctx, id)
}

// ListReports retrieves the breach reports matching the filter
func (s *breachService) ListReports(ctx context.Context, filter models.BreachFilter) ([]models.BreachReport, error) {
	return s.repo.Find(ctx, filter)
}

// UpdateReport applies the set fields of a patch
func (s *breachService) UpdateReport(ctx context.Context, id string, patch *models.BreachReportPatch) (*models.BreachReport, models.ValidationResult, error) {
	validation := models.NewValidationResult(patch.Validate())
	if !validation.Valid {
		return nil, validation, nil
	}

	report, err := s.modify(ctx, id, func(report *models.BreachReport) error {
		s.applyPatch(report, patch)
		return nil
	})
	return report, validation, err
}

func (s *breachService) applyPatch(report *models.BreachReport, patch *models.BreachReportPatch) {
	if patch.Description != nil {
		report.Description = strings.TrimSpace(*patch.Description)
	}
	if patch.AffectedSystems != nil {
		report.AffectedSystems = patch.AffectedSystems
	}
	if patch.AffectedDataTypes != nil {
		report.AffectedDataTypes = patch.AffectedDataTypes
	}
	if patch.EstimatedSubjects != nil {
		report.EstimatedSubjects = *patch.EstimatedSubjects
	}
	if patch.Status != "" {
		report.Status = patch.Status
	}
	if patch.MitigationNotes != nil {
		report.MitigationNotes = strings.TrimSpace(*patch.MitigationNotes)
	}
	report.UpdatedAt = s.clock.Now()
}

// UpdateStatus moves a breach to a new handling state
func (s *breachService) UpdateStatus(ctx context.Context, id string, status models.BreachStatus) (*models.BreachReport, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStatus, status)
	}

	return s.modify(ctx, id, func(report *models.BreachReport) error {
		report.Status = status
		report.UpdatedAt = s.clock.Now()
		return nil
	})
}

// AddRiskAssessment scores likelihood × severity and derives the notification duties.
// Returns nil without validation errors when the breach does not exist.
func (s *breachService) AddRiskAssessment(ctx context.Context, breachID string, form *models.RiskAssessmentForm) (*models.BreachRiskAssessment, models.ValidationResult, error) {
	validation := models.NewValidationResult(form.Validate())
	if !validation.Valid {
		return nil, validation, nil
	}

	report, err := s.repo.GetByID(ctx, breachID)
	if err != nil || report == nil {
		return nil, validation, err
	}

	score := form.Likelihood * form.Severity
	level := models.BreachRiskLevel(score)
	assessment := &models.BreachRiskAssessment{
		ID:                            uuid.NewString(),
		BreachID:                      breachID,
		Likelihood:                    form.Likelihood,
		Severity:                      form.Severity,
		RiskScore:                     score,
		RiskLevel:                     level,
		RequiresAuthorityNotification: level.AtLeast(models.RiskModerate),
		RequiresSubjectNotification:   level.AtLeast(models.RiskHigh),
		AssessedBy:                    strings.TrimSpace(form.AssessedBy),
		AssessedAt:                    s.clock.Now(),
		Notes:                         strings.TrimSpace(form.Notes),
	}

	if err := s.repo.AddRiskAssessment(ctx, assessment); err != nil {
		return nil, validation, fmt.Errorf("failed to save risk assessment: %w", err)
	}

	return assessment, validation, nil
}

// GetRiskAssessments retrieves the assessments of a breach, oldest first
func (s *breachService) GetRiskAssessments(ctx context.Context, breachID string) ([]models.BreachRiskAssessment, error) {
	return s.repo.GetRiskAssessments(ctx, breachID)
}

// RecordNotification stores a notification sent to a supervisory authority.
// The notification time defaults to now.
func (s *breachService) RecordNotification(ctx context.Context, breachID string, form *models.NotificationForm) (*models.RegulatoryNotification, models.ValidationResult, error) {
	now := s.clock.Now()
	validation := models.NewValidationResult(form.Validate(now))
	if !validation.Valid {
		return nil, validation, nil
	}

	report, err := s.repo.GetByID(ctx, breachID)
	if err != nil || report == nil {
		return nil, validation, err
	}

	notifiedAt := form.NotifiedAt
	if notifiedAt.IsZero() {
		notifiedAt = now
	}

	notification := &models.RegulatoryNotification{
		ID:              uuid.NewString(),
		BreachID:        breachID,
		Authority:       strings.TrimSpace(form.Authority),
		Method:          strings.TrimSpace(form.Method),
		ReferenceNumber: strings.TrimSpace(form.ReferenceNumber),
		NotifiedAt:      notifiedAt,
		Notes:           strings.TrimSpace(form.Notes),
	}

	if err := s.repo.AddNotification(ctx, notification); err != nil {
		return nil, validation, fmt.Errorf("failed to save notification: %w", err)
	}

	return notification, validation, nil
}

// GetNotifications retrieves the notifications of a breach, oldest first
func (s *breachService) GetNotifications(ctx context.Context, breachID string) ([]models.RegulatoryNotification, error) {
	return s.repo.GetNotifications(ctx, breachID)
}

// GetNotificationStatus reports whether the authority must be notified and whether the
// 72-hour window has passed. The latest risk assessment decides; without one notification is required.
func (s *breachService) GetNotificationStatus(ctx context.Context, breachID string) (*models.NotificationStatus, error) {
	report, err := s.repo.GetByID(ctx, breachID)
	if err != nil || report == nil {
		return nil, err
	}

	assessments, err := s.repo.GetRiskAssessments(ctx, breachID)
	if err != nil {
		return nil, err
	}
	notifications, err := s.repo.GetNotifications(ctx, breachID)
	if err != nil {
		return nil, err
	}

	required := true
	if len(assessments) > 0 {
		required = assessments[len(assessments)-1].RequiresAuthorityNotification
	}

	status := &models.NotificationStatus{
		BreachID:             breachID,
		Deadline:             report.NotificationDeadline(),
		RequiresNotification: required,
		Notified:             len(notifications) > 0,
	}
	status.Overdue = status.RequiresNotification && !status.Notified && s.clock.Now().After(status.Deadline)

	return status, nil
}

// modify runs change as one locked read-modify-write on the report
func (s *breachService) modify(ctx context.Context, id string, change func(*models.BreachReport) error) (*models.BreachReport, error) {
	report, err := s.repo.Modify(ctx, id, change)
	if err != nil {
		return nil, fmt.Errorf("failed to update breach report %s: %w", id, err)
	}
	return report, nil
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
