package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/blogem/privacy-toolkit/models"
	"github.com/blogem/privacy-toolkit/services"
	"github.com/blogem/privacy-toolkit/userctx"
)

// DPIAController handles the impact assessment questionnaire
type DPIAController struct {
	services *services.Services
}

// NewDPIAController creates a new DPIA controller
func NewDPIAController(services *services.Services) *DPIAController {
	return &DPIAController{
		services: services,
	}
}

type scoreRequest struct {
	Answers models.DPIAAnswers `json:"answers"`
}

// Questions handles GET /api/dpia/questions
func (c *DPIAController) Questions(w http.ResponseWriter, r *http.Request) {
	renderJSON(w, http.StatusOK, c.services.DPIA.GetQuestions())
}

// Score handles POST /api/dpia/score. Nothing is stored.
func (c *DPIAController) Score(w http.ResponseWriter, r *http.Request) {
	req := scoreRequest{}
	if !decodeJSON(w, r, &req, false) {
		return
	}

	if validation := c.services.DPIA.ValidateAnswers(req.Answers); !validation.Valid {
		renderValidation(w, validation)
		return
	}

	renderJSON(w, http.StatusOK, c.services.DPIA.ScoreDefault(req.Answers))
}

// Index handles GET /api/dpia/assessments
func (c *DPIAController) Index(w http.ResponseWriter, r *http.Request) {
	assessments, err := c.services.DPIA.ListAssessments(r.Context())
	if err != nil {
		renderServiceError(w, err)
		return
	}
	renderJSON(w, http.StatusOK, assessments)
}

// Create handles POST /api/dpia/assessments
func (c *DPIAController) Create(w http.ResponseWriter, r *http.Request) {
	form := &models.DPIAAssessmentForm{}
	if !decodeJSON(w, r, form, false) {
		return
	}
	if form.AssessedBy == "" {
		form.AssessedBy = userctx.Actor(r.Context())
	}

	assessment, validation, err := c.services.DPIA.SaveAssessment(r.Context(), form)
	if err != nil {
		renderServiceError(w, err)
		return
	}
	if !validation.Valid {
		renderValidation(w, validation)
		return
	}

	renderJSON(w, http.StatusCreated, assessment)
}

// Show handles GET /api/dpia/assessments/{id}
func (c *DPIAController) Show(w http.ResponseWriter, r *http.Request) {
	assessment, err := c.services.DPIA.GetAssessment(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		renderServiceError(w, err)
		return
	}
	if assessment == nil {
		renderError(w, http.StatusNotFound, "Assessment not found")
		return
	}
	renderJSON(w, http.StatusOK, assessment)
}

// Delete handles DELETE /api/dpia/assessments/{id}
func (c *DPIAController) Delete(w http.ResponseWriter, r *http.Request) {
	deleted, err := c.services.DPIA.DeleteAssessment(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		renderServiceError(w, err)
		return
	}
	if !deleted {
		renderError(w, http.StatusNotFound, "Assessment not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
