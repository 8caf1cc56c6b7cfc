package controllers

import (
	"net/http"
	"strconv"

	"github.com/blogem/privacy-toolkit/repositories"
)

// defaultAuditLimit is the number of entries returned when no limit is given
const defaultAuditLimit = 100

// AuditController exposes the audit trail of back-office mutations
type AuditController struct {
	repo repositories.AuditRepository
}

// NewAuditController creates a new audit controller
func NewAuditController(repo repositories.AuditRepository) *AuditController {
	return &AuditController{repo: repo}
}

// Index handles GET /api/audit?limit=n
func (c *AuditController) Index(w http.ResponseWriter, r *http.Request) {
	limit := defaultAuditLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			renderError(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = parsed
	}

	entries, err := c.repo.GetRecent(r.Context(), limit)
	if err != nil {
		renderServiceError(w, err)
		return
	}
	renderJSON(w, http.StatusOK, entries)
}
