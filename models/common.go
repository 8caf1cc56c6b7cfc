package models

import (
	"time"
)

// RiskLevel is the overall risk classification shared by DPIA results and breach assessments
type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskModerate RiskLevel = "moderate"
	RiskHigh     RiskLevel = "high"
	RiskVeryHigh RiskLevel = "very_high"
)

// RiskLevels lists the levels from lowest to highest
var RiskLevels = []RiskLevel{RiskLow, RiskModerate, RiskHigh, RiskVeryHigh}

// Rank returns the position of the level in RiskLevels, or -1 when unknown
func (l RiskLevel) Rank() int {
	for i, level := range RiskLevels {
		if level == l {
			return i
		}
	}
	return -1
}

// AtLeast reports whether l is the same as or more severe than other
func (l RiskLevel) AtLeast(other RiskLevel) bool {
	return l.Rank() >= other.Rank() && l.Rank() >= 0
}

// ValidationResult is the structured outcome of a validation check.
// Validation failures are reported through it and never as errors.
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

// NewValidationResult builds a result from a list of error messages
func NewValidationResult(errors []string) ValidationResult {
	if errors == nil {
		errors = []string{}
	}
	return ValidationResult{Valid: len(errors) == 0, Errors: errors}
}

// Merge combines two results, keeping the error order of r followed by other
func (r ValidationResult) Merge(other ValidationResult) ValidationResult {
	errors := make([]string, 0, len(r.Errors)+len(other.Errors))
	errors = append(errors, r.Errors...)
	errors = append(errors, other.Errors...)
	return NewValidationResult(errors)
}

// DaysToDuration converts a whole number of days to an exact duration
func DaysToDuration(days int) time.Duration {
	return time.Duration(days) * 24 * time.Hour
}

// FormatDate formats a time as YYYY-MM-DD
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// isValidEmail performs basic email validation
func isValidEmail(email string) bool {
	// Simple validation: must contain @ and at least one dot after @
	atIndex := -1
	for i, char := range email {
		if char == '@' {
			if atIndex != -1 {
				return false // Multiple @ symbols
			}
			atIndex = i
		}
	}

	if atIndex == -1 || atIndex == 0 || atIndex == len(email)-1 {
		return false
	}

	for i := atIndex + 1; i < len(email); i++ {
		if email[i] == '.' && i < len(email)-1 {
			return true
		}
	}

	return false
}

// containsString checks if a string slice contains a specific string
func containsString(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
