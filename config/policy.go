package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/blogem/privacy-toolkit/models"
)

// Policy holds the business rules that organisations tune per deployment
type Policy struct {
	DSR     DSRPolicy     `yaml:"dsr"`
	Consent ConsentPolicy `yaml:"consent"`
	DPIA    DPIAPolicy    `yaml:"dpia"`
}

// DSRPolicy configures request deadlines and the status transition policy
type DSRPolicy struct {
	SLADays           map[models.DSRType]int `yaml:"slaDays"`
	StrictTransitions bool                   `yaml:"strictTransitions"`
}

// SLA returns the time allotted to fulfil a request of the given type
func (p DSRPolicy) SLA(requestType models.DSRType) time.Duration {
	return models.DaysToDuration(p.SLADays[requestType])
}

// ConsentPolicy configures the active consent form
type ConsentPolicy struct {
	Version    string                 `yaml:"version"`
	MaxAgeDays int                    `yaml:"maxAgeDays"`
	Options    []models.ConsentOption `yaml:"options"`
}

// MaxAge returns how long a consent snapshot stays current, zero when it never expires
func (p ConsentPolicy) MaxAge() time.Duration {
	return models.DaysToDuration(p.MaxAgeDays)
}

// DPIAPolicy holds the questionnaire and its recommendation rules
type DPIAPolicy struct {
	Questions  []models.DPIAQuestion       `yaml:"questions"`
	Narratives map[models.RiskLevel]string `yaml:"narratives"`
	Rules      []models.RecommendationRule `yaml:"rules"`
}

// RuleSet returns the narratives and rules as scoring input
func (p DPIAPolicy) RuleSet() models.DPIARuleSet {
	return models.DPIARuleSet{Narratives: p.Narratives, Rules: p.Rules}
}

// LoadPolicy reads a YAML policy file on top of the defaults.
// Maps in the file are merged into the defaults, lists replace them.
func LoadPolicy(path string) (Policy, error) {
	policy := DefaultPolicy()
	if path == "" {
		return policy, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return Policy{}, fmt.Errorf("failed to read policy file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(content, &policy); err != nil {
		return Policy{}, fmt.Errorf("failed to parse policy file %s: %w", path, err)
	}

	if err := policy.Validate(); err != nil {
		return Policy{}, fmt.Errorf("invalid policy file %s: %w", path, err)
	}

	return policy, nil
}

// Validate checks the policy for settings the services cannot work with
func (p Policy) Validate() error {
	var errs []error

	for _, requestType := range models.DSRTypes {
		days, ok := p.DSR.SLADays[requestType]
		if !ok {
			errs = append(errs, fmt.Errorf("missing SLA for %s requests", requestType))
		} else if days < 0 {
			errs = append(errs, fmt.Errorf("SLA for %s requests must not be negative", requestType))
		}
	}

	if p.Consent.MaxAgeDays < 0 {
		errs = append(errs, errors.New("consent max age must not be negative"))
	}

	optionIDs := make(map[string]bool)
	for _, option := range p.Consent.Options {
		if option.ID == "" {
			errs = append(errs, errors.New("consent option without id"))
		}
		if optionIDs[option.ID] {
			errs = append(errs, fmt.Errorf("duplicate consent option %q", option.ID))
		}
		optionIDs[option.ID] = true
	}

	questionIDs := make(map[string]bool)
	for _, question := range p.DPIA.Questions {
		if question.ID == "" {
			errs = append(errs, errors.New("DPIA question without id"))
		}
		if questionIDs[question.ID] {
			errs = append(errs, fmt.Errorf("duplicate DPIA question %q", question.ID))
		}
		if question.Weight < 0 {
			errs = append(errs, fmt.Errorf("DPIA question %q has a negative weight", question.ID))
		}
		for _, option := range question.Options {
			if option.Value < models.DPIAMinAnswerValue || option.Value > models.DPIAMaxAnswerValue {
				errs = append(errs, fmt.Errorf("DPIA question %q has option value %d outside %d..%d",
					question.ID, option.Value, models.DPIAMinAnswerValue, models.DPIAMaxAnswerValue))
			}
		}
		questionIDs[question.ID] = true
	}

	for _, rule := range p.DPIA.Rules {
		if !questionIDs[rule.QuestionID] {
			errs = append(errs, fmt.Errorf("recommendation rule references unknown question %q", rule.QuestionID))
		}
	}

	for _, level := range models.RiskLevels {
		if p.DPIA.Narratives[level] == "" {
			errs = append(errs, fmt.Errorf("missing DPIA narrative for %s risk", level))
		}
	}

	return errors.Join(errs...)
}
