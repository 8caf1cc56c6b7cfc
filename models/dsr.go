package models

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// DSRType is the privacy right a data-subject request exercises
type DSRType string

const (
	DSRAccess        DSRType = "access"
	DSRRectification DSRType = "rectification"
	DSRErasure       DSRType = "erasure"
	DSRRestriction   DSRType = "restriction"
	DSRPortability   DSRType = "portability"
	DSRObjection     DSRType = "objection"
)

// DSRTypes lists every supported request type
var DSRTypes = []DSRType{DSRAccess, DSRRectification, DSRErasure, DSRRestriction, DSRPortability, DSRObjection}

// Valid reports whether t is a known request type
func (t DSRType) Valid() bool {
	for _, known := range DSRTypes {
		if known == t {
			return true
		}
	}
	return false
}

// DSRStatus is the lifecycle state of a data-subject request
type DSRStatus string

const (
	DSRPending              DSRStatus = "pending"
	DSRAwaitingVerification DSRStatus = "awaitingVerification"
	DSRInProgress           DSRStatus = "inProgress"
	DSRCompleted            DSRStatus = "completed"
	DSRRejected             DSRStatus = "rejected"
)

// DSRStatuses lists every lifecycle state
var DSRStatuses = []DSRStatus{DSRPending, DSRAwaitingVerification, DSRInProgress, DSRCompleted, DSRRejected}

// Valid reports whether s is a known status
func (s DSRStatus) Valid() bool {
	for _, known := range DSRStatuses {
		if known == s {
			return true
		}
	}
	return false
}

// Terminal reports whether no further work happens on a request in this state
func (s DSRStatus) Terminal() bool {
	return s == DSRCompleted || s == DSRRejected
}

// DataSubject holds the contact information of the requester
type DataSubject struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Phone  string `json:"phone,omitempty"`
	UserID string `json:"userId,omitempty"`
}

// AccessDetails lists the data categories the subject wants a copy of
type AccessDetails struct {
	Categories []string `json:"categories,omitempty"`
}

// RectificationDetails describes the correction the subject asks for
type RectificationDetails struct {
	Field          string `json:"field"`
	CurrentValue   string `json:"currentValue,omitempty"`
	RequestedValue string `json:"requestedValue"`
}

// ErasureDetails describes what should be erased
type ErasureDetails struct {
	Scope  []string `json:"scope,omitempty"`
	Reason string   `json:"reason,omitempty"`
}

// RestrictionDetails describes why processing should be restricted
type RestrictionDetails struct {
	Reason string `json:"reason"`
}

// PortabilityDetails selects the export format
type PortabilityDetails struct {
	Format string `json:"format"`
}

// ObjectionDetails names the processing objected to
type ObjectionDetails struct {
	ProcessingPurpose string `json:"processingPurpose"`
	Grounds           string `json:"grounds,omitempty"`
}

// Portability export formats
var PortabilityFormats = []string{"json", "csv", "xml"}

// DSRDetails carries the type-specific fields of a request.
// At most the field matching the request type may be set.
type DSRDetails struct {
	Access        *AccessDetails        `json:"access,omitempty"`
	Rectification *RectificationDetails `json:"rectification,omitempty"`
	Erasure       *ErasureDetails       `json:"erasure,omitempty"`
	Restriction   *RestrictionDetails   `json:"restriction,omitempty"`
	Portability   *PortabilityDetails   `json:"portability,omitempty"`
	Objection     *ObjectionDetails     `json:"objection,omitempty"`
}

// setTypes returns the request types whose detail record is present
func (d DSRDetails) setTypes() []DSRType {
	var types []DSRType
	if d.Access != nil {
		types = append(types, DSRAccess)
	}
	if d.Rectification != nil {
		types = append(types, DSRRectification)
	}
	if d.Erasure != nil {
		types = append(types, DSRErasure)
	}
	if d.Restriction != nil {
		types = append(types, DSRRestriction)
	}
	if d.Portability != nil {
		types = append(types, DSRPortability)
	}
	if d.Objection != nil {
		types = append(types, DSRObjection)
	}
	return types
}

// Validate checks that the details match the request type and carry their required fields
func (d DSRDetails) Validate(requestType DSRType) []string {
	var errors []string

	for _, set := range d.setTypes() {
		if set != requestType {
			errors = append(errors, fmt.Sprintf("Details for %s requests are not allowed on a %s request", set, requestType))
		}
	}

	switch requestType {
	case DSRRectification:
		if d.Rectification == nil {
			errors = append(errors, "Rectification requests must describe the field to correct")
			break
		}
		if strings.TrimSpace(d.Rectification.Field) == "" {
			errors = append(errors, "Rectification field is required")
		}
		if strings.TrimSpace(d.Rectification.RequestedValue) == "" {
			errors = append(errors, "Rectification requested value is required")
		}
	case DSRPortability:
		if d.Portability != nil && !containsString(PortabilityFormats, d.Portability.Format) {
			errors = append(errors, fmt.Sprintf("Portability format must be one of %s", strings.Join(PortabilityFormats, ", ")))
		}
	case DSRRestriction:
		if d.Restriction != nil && strings.TrimSpace(d.Restriction.Reason) == "" {
			errors = append(errors, "Restriction reason is required")
		}
	case DSRObjection:
		if d.Objection != nil && strings.TrimSpace(d.Objection.ProcessingPurpose) == "" {
			errors = append(errors, "Objection processing purpose is required")
		}
	}

	return errors
}

// DSRVerification records how the requester's identity was confirmed
type DSRVerification struct {
	Method     string    `json:"method"`
	VerifiedAt time.Time `json:"verifiedAt"`
	VerifiedBy string    `json:"verifiedBy,omitempty"`
}

// DSRNote is an internal note on a request
type DSRNote struct {
	Author    string    `json:"author"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

// DSRRequest is a data-subject request and its processing state
type DSRRequest struct {
	ID              string           `json:"id"`
	Type            DSRType          `json:"type"`
	Status          DSRStatus        `json:"status"`
	CreatedAt       time.Time        `json:"createdAt"`
	UpdatedAt       time.Time        `json:"updatedAt"`
	CompletedAt     *time.Time       `json:"completedAt,omitempty"`
	DueDate         time.Time        `json:"dueDate"`
	Subject         DataSubject      `json:"subject"`
	Description     string           `json:"description,omitempty"`
	Details         DSRDetails       `json:"details"`
	Verification    *DSRVerification `json:"verification,omitempty"`
	RejectionReason *string          `json:"rejectionReason,omitempty"`
	Notes           []DSRNote        `json:"notes"`
	AssignedTo      string           `json:"assignedTo,omitempty"`
}

// IsOverdue reports whether an open request is past its due date
func (r *DSRRequest) IsOverdue(now time.Time) bool {
	return !r.Status.Terminal() && now.After(r.DueDate)
}

// DaysRemaining returns the whole days left until the due date, rounded down so any overdue time is negative
func (r *DSRRequest) DaysRemaining(now time.Time) int {
	return int(math.Floor(r.DueDate.Sub(now).Hours() / 24))
}

// DSRRequestForm is the submission form for a new request
type DSRRequestForm struct {
	Type        DSRType     `json:"type"`
	Subject     DataSubject `json:"subject"`
	Description string      `json:"description"`
	Details     DSRDetails  `json:"details"`
}

// Validate validates the request submission
func (f *DSRRequestForm) Validate() []string {
	var errors []string

	if !f.Type.Valid() {
		errors = append(errors, fmt.Sprintf("Request type %q is not supported", f.Type))
	}

	if strings.TrimSpace(f.Subject.Name) == "" {
		errors = append(errors, "Name is required")
	}

	if len(f.Subject.Name) > 100 {
		errors = append(errors, "Name must be less than 100 characters")
	}

	if strings.TrimSpace(f.Subject.Email) == "" {
		errors = append(errors, "Email is required")
	} else if len(f.Subject.Email) > 255 {
		errors = append(errors, "Email must be less than 255 characters")
	} else if !isValidEmail(f.Subject.Email) {
		errors = append(errors, "Email format is invalid")
	}

	if len(f.Description) > 5000 {
		errors = append(errors, "Description must be less than 5000 characters")
	}

	if f.Type.Valid() {
		errors = append(errors, f.Details.Validate(f.Type)...)
	}

	return errors
}

// DSRRequestPatch holds the optional fields of a request update
type DSRRequestPatch struct {
	Status      *DSRStatus   `json:"status,omitempty"`
	Subject     *DataSubject `json:"subject,omitempty"`
	Description *string      `json:"description,omitempty"`
	Details     *DSRDetails  `json:"details,omitempty"`
	AssignedTo  *string      `json:"assignedTo,omitempty"`
}

// DSRFilter narrows a request listing; zero values match everything
type DSRFilter struct {
	Status DSRStatus
	Type   DSRType
}

// Matches reports whether the request satisfies the filter
func (f DSRFilter) Matches(r *DSRRequest) bool {
	if f.Status != "" && r.Status != f.Status {
		return false
	}
	if f.Type != "" && r.Type != f.Type {
		return false
	}
	return true
}

// DSRStatistics summarises the request backlog
type DSRStatistics struct {
	Total    int               `json:"total"`
	ByStatus map[DSRStatus]int `json:"byStatus"`
	ByType   map[DSRType]int   `json:"byType"`
	Overdue  int               `json:"overdue"`
}
