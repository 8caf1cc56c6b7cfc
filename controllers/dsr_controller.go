package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/blogem/privacy-toolkit/models"
	"github.com/blogem/privacy-toolkit/services"
	"github.com/blogem/privacy-toolkit/userctx"
)

// DSRController handles data-subject request submissions and their back-office processing
type DSRController struct {
	services *services.Services
}

// NewDSRController creates a new DSR controller
func NewDSRController(services *services.Services) *DSRController {
	return &DSRController{
		services: services,
	}
}

type statusRequest struct {
	Status models.DSRStatus `json:"status"`
}

type rejectRequest struct {
	Reason string `json:"reason"`
}

type noteRequest struct {
	Text string `json:"text"`
}

// Create handles POST /api/dsr
func (c *DSRController) Create(w http.ResponseWriter, r *http.Request) {
	form := &models.DSRRequestForm{}
	if !decodeJSON(w, r, form, false) {
		return
	}

	request, validation, err := c.services.DSR.CreateRequest(r.Context(), form)
	if err != nil {
		renderServiceError(w, err)
		return
	}
	if !validation.Valid {
		renderValidation(w, validation)
		return
	}

	renderJSON(w, http.StatusCreated, request)
}

// Index handles GET /api/dsr with optional status and type filters
func (c *DSRController) Index(w http.ResponseWriter, r *http.Request) {
	filter := models.DSRFilter{
		Status: models.DSRStatus(r.URL.Query().Get("status")),
		Type:   models.DSRType(r.URL.Query().Get("type")),
	}

	requests, err := c.services.DSR.ListRequests(r.Context(), filter)
	if err != nil {
		renderServiceError(w, err)
		return
	}

	renderJSON(w, http.StatusOK, requests)
}

// Show handles GET /api/dsr/{id}
func (c *DSRController) Show(w http.ResponseWriter, r *http.Request) {
	request, err := c.services.DSR.GetRequest(r.Context(), chi.URLParam(r, "id"))
	c.respond(w, request, err)
}

// Update handles PATCH /api/dsr/{id}
func (c *DSRController) Update(w http.ResponseWriter, r *http.Request) {
	patch := &models.DSRRequestPatch{}
	if !decodeJSON(w, r, patch, false) {
		return
	}

	request, validation, err := c.services.DSR.UpdateRequest(r.Context(), chi.URLParam(r, "id"), patch)
	if err == nil && !validation.Valid {
		renderValidation(w, validation)
		return
	}
	c.respond(w, request, err)
}

// UpdateStatus handles PUT /api/dsr/{id}/status
func (c *DSRController) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	req := statusRequest{}
	if !decodeJSON(w, r, &req, false) {
		return
	}

	request, err := c.services.DSR.UpdateStatus(r.Context(), chi.URLParam(r, "id"), req.Status)
	c.respond(w, request, err)
}

// Reject handles POST /api/dsr/{id}/reject
func (c *DSRController) Reject(w http.ResponseWriter, r *http.Request) {
	req := rejectRequest{}
	if !decodeJSON(w, r, &req, true) {
		return
	}

	request, err := c.services.DSR.RejectRequest(r.Context(), chi.URLParam(r, "id"), req.Reason)
	c.respond(w, request, err)
}

// Verify handles POST /api/dsr/{id}/verify
func (c *DSRController) Verify(w http.ResponseWriter, r *http.Request) {
	verification := models.DSRVerification{}
	if !decodeJSON(w, r, &verification, true) {
		return
	}
	if verification.VerifiedBy == "" {
		verification.VerifiedBy = userctx.Actor(r.Context())
	}

	request, err := c.services.DSR.RecordVerification(r.Context(), chi.URLParam(r, "id"), verification)
	c.respond(w, request, err)
}

// AddNote handles POST /api/dsr/{id}/notes
func (c *DSRController) AddNote(w http.ResponseWriter, r *http.Request) {
	req := noteRequest{}
	if !decodeJSON(w, r, &req, false) {
		return
	}

	request, validation, err := c.services.DSR.AddNote(r.Context(), chi.URLParam(r, "id"), userctx.Actor(r.Context()), req.Text)
	if err == nil && !validation.Valid {
		renderValidation(w, validation)
		return
	}
	c.respond(w, request, err)
}

// Overdue handles GET /api/dsr/overdue
func (c *DSRController) Overdue(w http.ResponseWriter, r *http.Request) {
	requests, err := c.services.DSR.GetOverdueRequests(r.Context())
	if err != nil {
		renderServiceError(w, err)
		return
	}
	renderJSON(w, http.StatusOK, requests)
}

// Statistics handles GET /api/dsr/stats
func (c *DSRController) Statistics(w http.ResponseWriter, r *http.Request) {
	stats, err := c.services.DSR.GetStatistics(r.Context())
	if err != nil {
		renderServiceError(w, err)
		return
	}
	renderJSON(w, http.StatusOK, stats)
}

func (c *DSRController) respond(w http.ResponseWriter, request *models.DSRRequest, err error) {
	if err != nil {
		renderServiceError(w, err)
		return
	}
	if request == nil {
		renderError(w, http.StatusNotFound, "Request not found")
		return
	}
	renderJSON(w, http.StatusOK, request)
}
