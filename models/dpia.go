package models

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Answer values range from least to most severe
const (
	DPIAMinAnswerValue = 1
	DPIAMaxAnswerValue = 4
)

// DPIAOption is one selectable answer of a question
type DPIAOption struct {
	Value int    `json:"value" yaml:"value"`
	Label string `json:"label" yaml:"label"`
}

// DPIAQuestion is a weighted questionnaire item
type DPIAQuestion struct {
	ID       string       `json:"id" yaml:"id"`
	Text     string       `json:"text" yaml:"text"`
	Category string       `json:"category" yaml:"category"`
	Weight   float64      `json:"weight" yaml:"weight"`
	Options  []DPIAOption `json:"options" yaml:"options"`
}

// HasOption reports whether value is one of the question's options.
// A question without options accepts the full value range.
func (q DPIAQuestion) HasOption(value int) bool {
	if len(q.Options) == 0 {
		return value >= DPIAMinAnswerValue && value <= DPIAMaxAnswerValue
	}
	for _, option := range q.Options {
		if option.Value == value {
			return true
		}
	}
	return false
}

// DPIAAnswers maps question ids to the selected option value
type DPIAAnswers map[string]int

// RecommendationRule fires its recommendation when the answer to QuestionID is at least MinValue
type RecommendationRule struct {
	QuestionID     string `json:"questionId" yaml:"questionId"`
	MinValue       int    `json:"minValue" yaml:"minValue"`
	Recommendation string `json:"recommendation" yaml:"recommendation"`
}

// DPIARuleSet holds the narrative per risk level and the ordered recommendation rules
type DPIARuleSet struct {
	Narratives map[RiskLevel]string `json:"narratives" yaml:"narratives"`
	Rules      []RecommendationRule `json:"rules" yaml:"rules"`
}

// DPIAResult is the derived outcome of scoring a questionnaire
type DPIAResult struct {
	TotalScore       float64        `json:"totalScore"`
	MaxPossibleScore float64        `json:"maxPossibleScore"`
	NormalizedScore  int            `json:"normalizedScore"`
	RiskLevel        RiskLevel      `json:"riskLevel"`
	Recommendations  []string       `json:"recommendations"`
	CategoryScores   map[string]int `json:"categoryScores"`
	AnsweredCount    int            `json:"answeredCount"`
	QuestionCount    int            `json:"questionCount"`
}

// DPIAAssessment is a saved questionnaire run
type DPIAAssessment struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	Project    string      `json:"project,omitempty"`
	AssessedBy string      `json:"assessedBy,omitempty"`
	Answers    DPIAAnswers `json:"answers"`
	Result     DPIAResult  `json:"result"`
	CreatedAt  time.Time   `json:"createdAt"`
}

// DPIAAssessmentForm is the input for saving an assessment
type DPIAAssessmentForm struct {
	Name       string      `json:"name"`
	Project    string      `json:"project"`
	AssessedBy string      `json:"assessedBy"`
	Answers    DPIAAnswers `json:"answers"`
}

// Validate validates the assessment form fields other than the answers
func (f *DPIAAssessmentForm) Validate() []string {
	var errors []string

	if strings.TrimSpace(f.Name) == "" {
		errors = append(errors, "Assessment name is required")
	}

	if len(f.Name) > 200 {
		errors = append(errors, "Assessment name must be less than 200 characters")
	}

	return errors
}

// ValidateDPIAAnswers reports answers to unknown questions and values the question does not offer
func ValidateDPIAAnswers(questions []DPIAQuestion, answers DPIAAnswers) ValidationResult {
	byID := make(map[string]DPIAQuestion, len(questions))
	for _, question := range questions {
		byID[question.ID] = question
	}

	ids := make([]string, 0, len(answers))
	for id := range answers {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var errors []string
	for _, id := range ids {
		question, ok := byID[id]
		if !ok {
			errors = append(errors, fmt.Sprintf("Unknown question %q", id))
			continue
		}
		if !question.HasOption(answers[id]) {
			errors = append(errors, fmt.Sprintf("Answer %d is not a valid option for question %q", answers[id], id))
		}
	}

	return NewValidationResult(errors)
}
