package models

import (
	"fmt"
	"time"
)

// ConsentOption describes one choice offered on the consent form
type ConsentOption struct {
	ID           string `json:"id" yaml:"id"`
	Name         string `json:"name" yaml:"name"`
	Description  string `json:"description" yaml:"description"`
	Required     bool   `json:"required" yaml:"required"`
	DefaultValue bool   `json:"defaultValue" yaml:"defaultValue"`
}

// ConsentSettings is a snapshot of a subject's consent choices
type ConsentSettings struct {
	Consents      map[string]bool `json:"consents"`
	Timestamp     time.Time       `json:"timestamp"`
	Version       string          `json:"version"`
	Method        string          `json:"method"`
	HasInteracted bool            `json:"hasInteracted"`
}

// Consent capture methods
const (
	ConsentMethodBanner      = "banner"
	ConsentMethodPreferences = "preferences"
	ConsentMethodAPI         = "api"
)

// ConsentForm is the input for saving consent choices
type ConsentForm struct {
	Consents      map[string]bool `json:"consents"`
	Method        string          `json:"method"`
	HasInteracted bool            `json:"hasInteracted"`
}

// Granted reports whether the option was explicitly granted
func (s *ConsentSettings) Granted(optionID string) bool {
	if s == nil {
		return false
	}
	return s.Consents[optionID]
}

// Clone returns a deep copy so stored snapshots never share the consents map
func (s ConsentSettings) Clone() ConsentSettings {
	consents := make(map[string]bool, len(s.Consents))
	for id, granted := range s.Consents {
		consents[id] = granted
	}
	s.Consents = consents
	return s
}

// DefaultConsents returns the option defaults, with required options always granted
func DefaultConsents(options []ConsentOption) map[string]bool {
	consents := make(map[string]bool, len(options))
	for _, option := range options {
		consents[option.ID] = option.DefaultValue || option.Required
	}
	return consents
}

// ValidateConsentSettings checks that every required option is granted and the
// snapshot carries a version and a timestamp that is not in the future.
// The input is not modified.
func ValidateConsentSettings(settings ConsentSettings, options []ConsentOption, now time.Time) ValidationResult {
	var errors []string

	for _, option := range options {
		if !option.Required {
			continue
		}
		granted, present := settings.Consents[option.ID]
		if !present {
			errors = append(errors, fmt.Sprintf("Consent option %q is required but missing", option.ID))
			continue
		}
		if !granted {
			errors = append(errors, fmt.Sprintf("Consent option %q is required and must be granted", option.ID))
		}
	}

	if settings.Version == "" {
		errors = append(errors, "Consent version is required")
	}

	if settings.Timestamp.IsZero() {
		errors = append(errors, "Consent timestamp is required")
	} else if settings.Timestamp.After(now) {
		errors = append(errors, "Consent timestamp must not be in the future")
	}

	return NewValidationResult(errors)
}

// NeedsRenewal reports whether the subject must be asked for consent again
func NeedsRenewal(settings *ConsentSettings, currentVersion string, maxAge time.Duration, now time.Time) bool {
	if settings == nil || !settings.HasInteracted {
		return true
	}
	if settings.Version != currentVersion {
		return true
	}
	if maxAge > 0 && now.Sub(settings.Timestamp) > maxAge {
		return true
	}
	return false
}
