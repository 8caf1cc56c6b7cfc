package models

import (
	"fmt"
	"strings"
	"time"
)

// BreachCategory classifies which security property was compromised
type BreachCategory string

const (
	BreachConfidentiality BreachCategory = "confidentiality"
	BreachIntegrity       BreachCategory = "integrity"
	BreachAvailability    BreachCategory = "availability"
)

// BreachCategories lists every category
var BreachCategories = []BreachCategory{BreachConfidentiality, BreachIntegrity, BreachAvailability}

// Valid reports whether c is a known category
func (c BreachCategory) Valid() bool {
	for _, known := range BreachCategories {
		if known == c {
			return true
		}
	}
	return false
}

// BreachStatus is the handling state of a breach
type BreachStatus string

const (
	BreachOngoing   BreachStatus = "ongoing"
	BreachContained BreachStatus = "contained"
	BreachResolved  BreachStatus = "resolved"
)

// Valid reports whether s is a known status
func (s BreachStatus) Valid() bool {
	return s == BreachOngoing || s == BreachContained || s == BreachResolved
}

// NotificationWindow is the time allowed between discovery and notifying the supervisory authority
const NotificationWindow = 72 * time.Hour

// BreachReport is a recorded personal-data breach
type BreachReport struct {
	ID                string         `json:"id"`
	Category          BreachCategory `json:"category"`
	Description       string         `json:"description"`
	DiscoveredAt      time.Time      `json:"discoveredAt"`
	ReportedAt        time.Time      `json:"reportedAt"`
	UpdatedAt         time.Time      `json:"updatedAt"`
	ReportedBy        string         `json:"reportedBy"`
	AffectedSystems   []string       `json:"affectedSystems"`
	AffectedDataTypes []string       `json:"affectedDataTypes"`
	EstimatedSubjects int            `json:"estimatedSubjects"`
	Status            BreachStatus   `json:"status"`
	MitigationNotes   string         `json:"mitigationNotes,omitempty"`
}

// NotificationDeadline returns the latest time the authority should be notified
func (b *BreachReport) NotificationDeadline() time.Time {
	return b.DiscoveredAt.Add(NotificationWindow)
}

// BreachReportForm is the input for reporting a breach
type BreachReportForm struct {
	Category          BreachCategory `json:"category"`
	Description       string         `json:"description"`
	DiscoveredAt      time.Time      `json:"discoveredAt"`
	ReportedBy        string         `json:"reportedBy"`
	AffectedSystems   []string       `json:"affectedSystems"`
	AffectedDataTypes []string       `json:"affectedDataTypes"`
	EstimatedSubjects int            `json:"estimatedSubjects"`
	MitigationNotes   string         `json:"mitigationNotes"`
}

// Validate validates the breach report form against the current time
func (f *BreachReportForm) Validate(now time.Time) []string {
	var errors []string

	if !f.Category.Valid() {
		errors = append(errors, fmt.Sprintf("Breach category %q is not supported", f.Category))
	}

	if strings.TrimSpace(f.Description) == "" {
		errors = append(errors, "Description is required")
	}

	if f.DiscoveredAt.IsZero() {
		errors = append(errors, "Discovery time is required")
	} else if f.DiscoveredAt.After(now) {
		errors = append(errors, "Discovery time must not be in the future")
	}

	if strings.TrimSpace(f.ReportedBy) == "" {
		errors = append(errors, "Reporter is required")
	}

	if f.EstimatedSubjects < 0 {
		errors = append(errors, "Estimated number of affected subjects must not be negative")
	}

	return errors
}

// BreachReportPatch holds the optional fields of a breach update
type BreachReportPatch struct {
	Description       *string      `json:"description,omitempty"`
	AffectedSystems   []string     `json:"affectedSystems,omitempty"`
	AffectedDataTypes []string     `json:"affectedDataTypes,omitempty"`
	EstimatedSubjects *int         `json:"estimatedSubjects,omitempty"`
	Status            BreachStatus `json:"status,omitempty"`
	MitigationNotes   *string      `json:"mitigationNotes,omitempty"`
}

// Validate validates the patch fields that are set
func (p *BreachReportPatch) Validate() []string {
	var errors []string

	if p.Description != nil && strings.TrimSpace(*p.Description) == "" {
		errors = append(errors, "Description must not be empty")
	}
	if p.EstimatedSubjects != nil && *p.EstimatedSubjects < 0 {
		errors = append(errors, "Estimated number of affected subjects must not be negative")
	}
	if p.Status != "" && !p.Status.Valid() {
		errors = append(errors, fmt.Sprintf("Breach status %q is not supported", p.Status))
	}

	return errors
}

// BreachRiskAssessment is a likelihood/severity assessment of a breach
type BreachRiskAssessment struct {
	ID                            string    `json:"id"`
	BreachID                      string    `json:"breachId"`
	Likelihood                    int       `json:"likelihood"`
	Severity                      int       `json:"severity"`
	RiskScore                     int       `json:"riskScore"`
	RiskLevel                     RiskLevel `json:"riskLevel"`
	RequiresAuthorityNotification bool      `json:"requiresAuthorityNotification"`
	RequiresSubjectNotification   bool      `json:"requiresSubjectNotification"`
	AssessedBy                    string    `json:"assessedBy"`
	AssessedAt                    time.Time `json:"assessedAt"`
	Notes                         string    `json:"notes,omitempty"`
}

// RiskAssessmentForm is the input for assessing a breach
type RiskAssessmentForm struct {
	Likelihood int    `json:"likelihood"`
	Severity   int    `json:"severity"`
	AssessedBy string `json:"assessedBy"`
	Notes      string `json:"notes"`
}

// Validate validates the assessment form
func (f *RiskAssessmentForm) Validate() []string {
	var errors []string

	if f.Likelihood < 1 || f.Likelihood > 4 {
		errors = append(errors, "Likelihood must be between 1 and 4")
	}
	if f.Severity < 1 || f.Severity > 4 {
		errors = append(errors, "Severity must be between 1 and 4")
	}
	if strings.TrimSpace(f.AssessedBy) == "" {
		errors = append(errors, "Assessor is required")
	}

	return errors
}

// BreachRiskLevel classifies a likelihood × severity score
func BreachRiskLevel(score int) RiskLevel {
	switch {
	case score <= 2:
		return RiskLow
	case score <= 6:
		return RiskModerate
	case score <= 9:
		return RiskHigh
	default:
		return RiskVeryHigh
	}
}

// RegulatoryNotification records a notification sent to a supervisory authority
type RegulatoryNotification struct {
	ID              string    `json:"id"`
	BreachID        string    `json:"breachId"`
	Authority       string    `json:"authority"`
	Method          string    `json:"method"`
	ReferenceNumber string    `json:"referenceNumber,omitempty"`
	NotifiedAt      time.Time `json:"notifiedAt"`
	Notes           string    `json:"notes,omitempty"`
}

// NotificationForm is the input for recording a regulatory notification
type NotificationForm struct {
	Authority       string    `json:"authority"`
	Method          string    `json:"method"`
	ReferenceNumber string    `json:"referenceNumber"`
	NotifiedAt      time.Time `json:"notifiedAt"`
	Notes           string    `json:"notes"`
}

// Validate validates the notification form
func (f *NotificationForm) Validate(now time.Time) []string {
	var errors []string

	if strings.TrimSpace(f.Authority) == "" {
		errors = append(errors, "Authority is required")
	}
	if strings.TrimSpace(f.Method) == "" {
		errors = append(errors, "Notification method is required")
	}
	if !f.NotifiedAt.IsZero() && f.NotifiedAt.After(now) {
		errors = append(errors, "Notification time must not be in the future")
	}

	return errors
}

// NotificationStatus summarises the regulatory notification duty of a breach
type NotificationStatus struct {
	BreachID             string    `json:"breachId"`
	Deadline             time.Time `json:"deadline"`
	RequiresNotification bool      `json:"requiresNotification"`
	Notified             bool      `json:"notified"`
	Overdue              bool      `json:"overdue"`
}

// BreachFilter narrows a breach listing; zero values match everything
type BreachFilter struct {
	Status   BreachStatus
	Category BreachCategory
}

// Matches reports whether the report satisfies the filter
func (f BreachFilter) Matches(b *BreachReport) bool {
	if f.Status != "" && b.Status != f.Status {
		return false
	}
	if f.Category != "" && b.Category != f.Category {
		return false
	}
	return true
}
