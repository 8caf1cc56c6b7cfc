package controllers

import (
	"context"
	"net/http"

	"gitea.com/go-chi/session"

	"github.com/blogem/privacy-toolkit/models"
	"github.com/blogem/privacy-toolkit/services"
)

// ConsentController handles consent collection requests.
// Consent is scoped to the visitor's session.
type ConsentController struct {
	services *services.Services
}

// NewConsentController creates a new consent controller
func NewConsentController(services *services.Services) *ConsentController {
	return &ConsentController{
		services: services,
	}
}

type consentChoiceRequest struct {
	Method string `json:"method"`
}

type renewalResponse struct {
	NeedsRenewal bool `json:"needsRenewal"`
}

func subjectID(r *http.Request) string {
	return session.GetSession(r).ID()
}

// Options handles GET /api/consent/options
func (c *ConsentController) Options(w http.ResponseWriter, r *http.Request) {
	renderJSON(w, http.StatusOK, c.services.Consent.GetOptions())
}

// Get handles GET /api/consent
func (c *ConsentController) Get(w http.ResponseWriter, r *http.Request) {
	settings, err := c.services.Consent.GetConsent(r.Context(), subjectID(r))
	if err != nil {
		renderServiceError(w, err)
		return
	}
	if settings == nil {
		renderError(w, http.StatusNotFound, "No consent recorded")
		return
	}

	renderJSON(w, http.StatusOK, settings)
}

// Save handles POST /api/consent
func (c *ConsentController) Save(w http.ResponseWriter, r *http.Request) {
	form := &models.ConsentForm{}
	if !decodeJSON(w, r, form, false) {
		return
	}

	settings, validation, err := c.services.Consent.SaveConsent(r.Context(), subjectID(r), form)
	if err != nil {
		renderServiceError(w, err)
		return
	}
	if !validation.Valid {
		renderValidation(w, validation)
		return
	}

	renderJSON(w, http.StatusOK, settings)
}

// AcceptAll handles POST /api/consent/accept-all
func (c *ConsentController) AcceptAll(w http.ResponseWriter, r *http.Request) {
	c.choice(w, r, c.services.Consent.AcceptAll)
}

// RejectAll handles POST /api/consent/reject-all
func (c *ConsentController) RejectAll(w http.ResponseWriter, r *http.Request) {
	c.choice(w, r, c.services.Consent.RejectAll)
}

func (c *ConsentController) choice(w http.ResponseWriter, r *http.Request, save func(ctx context.Context, subjectID, method string) (*models.ConsentSettings, error)) {
	req := consentChoiceRequest{Method: models.ConsentMethodBanner}
	if !decodeJSON(w, r, &req, true) {
		return
	}

	settings, err := save(r.Context(), subjectID(r), req.Method)
	if err != nil {
		renderServiceError(w, err)
		return
	}

	renderJSON(w, http.StatusOK, settings)
}

// Delete handles DELETE /api/consent
func (c *ConsentController) Delete(w http.ResponseWriter, r *http.Request) {
	if err := c.services.Consent.ClearConsent(r.Context(), subjectID(r)); err != nil {
		renderServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// History handles GET /api/consent/history
func (c *ConsentController) History(w http.ResponseWriter, r *http.Request) {
	history, err := c.services.Consent.GetHistory(r.Context(), subjectID(r))
	if err != nil {
		renderServiceError(w, err)
		return
	}
	renderJSON(w, http.StatusOK, history)
}

// Renewal handles GET /api/consent/renewal
func (c *ConsentController) Renewal(w http.ResponseWriter, r *http.Request) {
	renew, err := c.services.Consent.NeedsRenewal(r.Context(), subjectID(r))
	if err != nil {
		renderServiceError(w, err)
		return
	}
	renderJSON(w, http.StatusOK, renewalResponse{NeedsRenewal: renew})
}
