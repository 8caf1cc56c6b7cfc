package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/blogem/privacy-toolkit/models"
	"github.com/blogem/privacy-toolkit/services"
	"github.com/blogem/privacy-toolkit/userctx"
)

// BreachController handles breach reporting requests
type BreachController struct {
	services *services.Services
}

// NewBreachController creates a new breach controller
func NewBreachController(services *services.Services) *BreachController {
	return &BreachController{
		services: services,
	}
}

type breachStatusRequest struct {
	Status models.BreachStatus `json:"status"`
}

// Index handles GET /api/breaches with optional status and category filters
func (c *BreachController) Index(w http.ResponseWriter, r *http.Request) {
	filter := models.BreachFilter{
		Status:   models.BreachStatus(r.URL.Query().Get("status")),
		Category: models.BreachCategory(r.URL.Query().Get("category")),
	}

	reports, err := c.services.Breach.ListReports(r.Context(), filter)
	if err != nil {
		renderServiceError(w, err)
		return
	}
	renderJSON(w, http.StatusOK, reports)
}

// Create handles POST /api/breaches
func (c *BreachController) Create(w http.ResponseWriter, r *http.Request) {
	form := &models.BreachReportForm{}
	if !decodeJSON(w, r, form, false) {
		return
	}
	if form.ReportedBy == "" {
		form.ReportedBy = userctx.Actor(r.Context())
	}

	report, validation, err := c.services.Breach.CreateReport(r.Context(), form)
	if err != nil {
		renderServiceError(w, err)
		return
	}
	if !validation.Valid {
		renderValidation(w, validation)
		return
	}

	renderJSON(w, http.StatusCreated, report)
}

// Show handles GET /api/breaches/{id}
func (c *BreachController) Show(w http.ResponseWriter, r *http.Request) {
	report, err := c.services.Breach.GetReport(r.Context(), chi.URLParam(r, "id"))
	c.respond(w, report, err)
}

// Update handles PATCH /api/breaches/{id}
func (c *BreachController) Update(w http.ResponseWriter, r *http.Request) {
	patch := &models.BreachReportPatch{}
	if !decodeJSON(w, r, patch, false) {
		return
	}

	report, validation, err := c.services.Breach.UpdateReport(r.Context(), chi.URLParam(r, "id"), patch)
	if err == nil && !validation.Valid {
		renderValidation(w, validation)
		return
	}
	c.respond(w, report, err)
}

// UpdateStatus handles PUT /api/breaches/{id}/status
func (c *BreachController) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	req := breachStatusRequest{}
	if !decodeJSON(w, r, &req, false) {
		return
	}

	report, err := c.services.Breach.UpdateStatus(r.Context(), chi.URLParam(r, "id"), req.Status)
	c.respond(w, report, err)
}

// Assessments handles GET /api/breaches/{id}/assessments
func (c *BreachController) Assessments(w http.ResponseWriter, r *http.Request) {
	if !c.exists(w, r) {
		return
	}

	assessments, err := c.services.Breach.GetRiskAssessments(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		renderServiceError(w, err)
		return
	}
	renderJSON(w, http.StatusOK, assessments)
}

// AddAssessment handles POST /api/breaches/{id}/assessments
func (c *BreachController) AddAssessment(w http.ResponseWriter, r *http.Request) {
	form := &models.RiskAssessmentForm{}
	if !decodeJSON(w, r, form, false) {
		return
	}
	if form.AssessedBy == "" {
		form.AssessedBy = userctx.Actor(r.Context())
	}

	assessment, validation, err := c.services.Breach.AddRiskAssessment(r.Context(), chi.URLParam(r, "id"), form)
	switch {
	case err != nil:
		renderServiceError(w, err)
	case !validation.Valid:
		renderValidation(w, validation)
	case assessment == nil:
		renderError(w, http.StatusNotFound, "Breach not found")
	default:
		renderJSON(w, http.StatusCreated, assessment)
	}
}

// Notifications handles GET /api/breaches/{id}/notifications
func (c *BreachController) Notifications(w http.ResponseWriter, r *http.Request) {
	if !c.exists(w, r) {
		return
	}

	notifications, err := c.services.Breach.GetNotifications(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		renderServiceError(w, err)
		return
	}
	renderJSON(w, http.StatusOK, notifications)
}

// AddNotification handles POST /api/breaches/{id}/notifications
func (c *BreachController) AddNotification(w http.ResponseWriter, r *http.Request) {
	form := &models.NotificationForm{}
	if !decodeJSON(w, r, form, false) {
		return
	}

	notification, validation, err := c.services.Breach.RecordNotification(r.Context(), chi.URLParam(r, "id"), form)
	switch {
	case err != nil:
		renderServiceError(w, err)
	case !validation.Valid:
		renderValidation(w, validation)
	case notification == nil:
		renderError(w, http.StatusNotFound, "Breach not found")
	default:
		renderJSON(w, http.StatusCreated, notification)
	}
}

// NotificationStatus handles GET /api/breaches/{id}/notification-status
func (c *BreachController) NotificationStatus(w http.ResponseWriter, r *http.Request) {
	status, err := c.services.Breach.GetNotificationStatus(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		renderServiceError(w, err)
		return
	}
	if status == nil {
		renderError(w, http.StatusNotFound, "Breach not found")
		return
	}
	renderJSON(w, http.StatusOK, status)
}

func (c *BreachController) exists(w http.ResponseWriter, r *http.Request) bool {
	report, err := c.services.Breach.GetReport(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		renderServiceError(w, err)
		return false
	}
	if report == nil {
		renderError(w, http.StatusNotFound, "Breach not found")
		return false
	}
	return true
}

func (c *BreachController) respond(w http.ResponseWriter, report *models.BreachReport, err error) {
	if err != nil {
		renderServiceError(w, err)
		return
	}
	if report == nil {
		renderError(w, http.StatusNotFound, "Breach not found")
		return
	}
	renderJSON(w, http.StatusOK, report)
}
