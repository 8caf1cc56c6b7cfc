package models

import "time"

// AuditLogEntry represents a single HTTP mutation event
type AuditLogEntry struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	UserEmail string    `json:"userEmail"`
	Method    string    `json:"method"`
	Path      string    `json:"path"`
	FormData  string    `json:"formData,omitempty"`
	UserAgent string    `json:"userAgent,omitempty"`
	IPAddress string    `json:"ipAddress,omitempty"`
}
