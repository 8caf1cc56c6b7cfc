package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/blogem/privacy-toolkit/config"
	"github.com/blogem/privacy-toolkit/models"
	"github.com/blogem/privacy-toolkit/repositories"
)

// DPIAService interface defines impact assessment scoring and persistence
type DPIAService interface {
	GetQuestions() []models.DPIAQuestion
	Score(questions []models.DPIAQuestion, answers models.DPIAAnswers) models.DPIAResult
	ScoreDefault(answers models.DPIAAnswers) models.DPIAResult
	ValidateAnswers(answers models.DPIAAnswers) models.ValidationResult
	SaveAssessment(ctx context.Context, form *models.DPIAAssessmentForm) (*models.DPIAAssessment, models.ValidationResult, error)
	GetAssessment(ctx context.Context, id string) (*models.DPIAAssessment, error)
	ListAssessments(ctx context.Context) ([]models.DPIAAssessment, error)
	DeleteAssessment(ctx context.Context, id string) (bool, error)
}

// dpiaService implements DPIAService interface
type dpiaService struct {
	repo   repositories.DPIARepository
	policy config.DPIAPolicy
	clock  Clock
}

// NewDPIAService creates a new DPIA service for the configured questionnaire
func NewDPIAService(repo repositories.DPIARepository, policy config.DPIAPolicy, clock Clock) DPIAService {
	return &dpiaService{repo: repo, policy: policy, clock: clock}
}

// GetQuestions returns a copy of the configured questionnaire
func (s *dpiaService) GetQuestions() []models.DPIAQuestion {
	questions := make([]models.DPIAQuestion, len(s.policy.Questions))
	copy(questions, s.policy.Questions)
	return questions
}

// Score rates answers against an arbitrary questionnaire using the configured rules
func (s *dpiaService) Score(questions []models.DPIAQuestion, answers models.DPIAAnswers) models.DPIAResult {
	return ScoreDPIA(questions, answers, s.policy.RuleSet())
}

// ScoreDefault rates answers against the configured questionnaire
func (s *dpiaService) ScoreDefault(answers models.DPIAAnswers) models.DPIAResult {
	return ScoreDPIA(s.policy.Questions, answers, s.policy.RuleSet())
}

// ValidateAnswers checks answers against the configured questionnaire
func (s *dpiaService) ValidateAnswers(answers models.DPIAAnswers) models.ValidationResult {
	return models.ValidateDPIAAnswers(s.policy.Questions, answers)
}

// SaveAssessment scores and stores a questionnaire run
func (s *dpiaService) SaveAssessment(ctx context.Context, form *models.DPIAAssessmentForm) (*models.DPIAAssessment, models.ValidationResult, error) {
	validation := models.NewValidationResult(form.Validate()).Merge(s.ValidateAnswers(form.Answers))
	if !validation.Valid {
		return nil, validation, nil
	}

	answers := make(models.DPIAAnswers, len(form.Answers))
	for id, value := range form.Answers {
		answers[id] = value
	}

	assessment := &models.DPIAAssessment{
		ID:         uuid.NewString(),
		Name:       strings.TrimSpace(form.Name),
		Project:    strings.TrimSpace(form.Project),
		AssessedBy: strings.TrimSpace(form.AssessedBy),
		Answers:    answers,
		Result:     s.ScoreDefault(answers),
		CreatedAt:  s.clock.Now(),
	}

	if err := s.repo.Create(ctx, assessment); err != nil {
		return nil, validation, fmt.Errorf("failed to save assessment: %w", err)
	}

	return assessment, validation, nil
}

// GetAssessment retrieves a saved assessment, nil when it does not exist
func (s *dpiaService) GetAssessment(ctx context.Context, id string) (*models.DPIAAssessment, error) {
	return s.repo.GetByID(ctx, id)
}

// ListAssessments retrieves all saved assessments
func (s *dpiaService) ListAssessments(ctx context.Context) ([]models.DPIAAssessment, error) {
	return s.repo.GetAll(ctx)
}

// DeleteAssessment removes a saved assessment and reports whether it existed
func (s *dpiaService) DeleteAssessment(ctx context.Context, id string) (bool, error) {
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to delete assessment: %w", err)
	}
	return true, nil
}
