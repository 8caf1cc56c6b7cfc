package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/blogem/privacy-toolkit/authenticator"
	"github.com/blogem/privacy-toolkit/logger"
	"github.com/blogem/privacy-toolkit/models"
	"github.com/blogem/privacy-toolkit/repositories"
	"github.com/blogem/privacy-toolkit/services"
)

// maxBodyBytes limits the size of JSON request bodies
const maxBodyBytes = 1 << 20

// errorResponse is the body of every non-validation error
type errorResponse struct {
	Error string `json:"error"`
}

// renderJSON writes data as JSON with the given status code
func renderJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if data == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Logger().WithError(err).Error("Failed to encode response")
	}
}

// renderError writes a JSON error message
func renderError(w http.ResponseWriter, statusCode int, message string) {
	renderJSON(w, statusCode, errorResponse{Error: message})
}

// renderValidation writes a failed validation result as 422
func renderValidation(w http.ResponseWriter, result models.ValidationResult) {
	renderJSON(w, http.StatusUnprocessableEntity, result)
}

// renderServiceError maps service errors to status codes; anything unknown is a 500
func renderServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidTransition):
		renderError(w, http.StatusConflict, err.Error())
	case errors.Is(err, services.ErrUnknownStatus):
		renderValidation(w, models.NewValidationResult([]string{err.Error()}))
	case errors.Is(err, services.ErrMissingSubject):
		renderError(w, http.StatusBadRequest, err.Error())
	default:
		logger.Logger().WithError(err).Error("Request failed")
		renderError(w, http.StatusInternalServerError, "internal server error")
	}
}

// decodeJSON reads a JSON body into v. An empty body leaves v untouched when allowEmpty is set.
func decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}, allowEmpty bool) bool {
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(v); err != nil {
		if allowEmpty && errors.Is(err, io.EOF) {
			return true
		}
		renderError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request body: %v", err))
		return false
	}
	return true
}

// Controllers holds all controller instances
type Controllers struct {
	Auth    *AuthController
	Consent *ConsentController
	DSR     *DSRController
	Breach  *BreachController
	DPIA    *DPIAController
	Audit   *AuditController
}

// NewControllers creates and initializes all controller instances.
// provider may be nil when no back-office login is configured.
func NewControllers(services *services.Services, auditRepo repositories.AuditRepository, provider authenticator.Provider) *Controllers {
	return &Controllers{
		Auth:    NewAuthController(provider),
		Consent: NewConsentController(services),
		DSR:     NewDSRController(services),
		Breach:  NewBreachController(services),
		DPIA:    NewDPIAController(services),
		Audit:   NewAuditController(auditRepo),
	}
}
