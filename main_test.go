package main

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/blogem/privacy-toolkit/config"
	"github.com/blogem/privacy-toolkit/controllers"
	"github.com/blogem/privacy-toolkit/models"
	"github.com/blogem/privacy-toolkit/repositories"
	"github.com/blogem/privacy-toolkit/services"
	"github.com/blogem/privacy-toolkit/storage"
)

// RouterTestSuite drives the full router over the in-memory store
type RouterTestSuite struct {
	suite.Suite
	server *httptest.Server
	client *http.Client
}

func (s *RouterTestSuite) SetupTest() {
	repos := repositories.NewRepositories(storage.NewMemoryAdapter())
	srvs := services.NewServices(repos, config.DefaultPolicy(), services.SystemClock())
	ctrl := controllers.NewControllers(srvs, repos.Audit, nil)

	router, err := setupRouter(ctrl, repos.Audit, false)
	s.Require().NoError(err)
	s.server = httptest.NewServer(router)

	jar, err := cookiejar.New(nil)
	s.Require().NoError(err)
	s.client = &http.Client{Jar: jar}
}

func (s *RouterTestSuite) TearDownTest() {
	s.server.Close()
}

// do sends a request with an optional JSON body and decodes the response into out when given
func (s *RouterTestSuite) do(method, path string, body interface{}, out interface{}) int {
	var reader io.Reader
	if body != nil {
		switch b := body.(type) {
		case string:
			reader = strings.NewReader(b)
		default:
			raw, err := json.Marshal(b)
			s.Require().NoError(err)
			reader = bytes.NewReader(raw)
		}
	}

	req, err := http.NewRequest(method, s.server.URL+path, reader)
	s.Require().NoError(err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.client.Do(req)
	s.Require().NoError(err)
	defer resp.Body.Close()

	if out != nil {
		s.Require().NoError(json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func (s *RouterTestSuite) TestHealth() {
	var body map[string]string
	s.Equal(http.StatusOK, s.do(http.MethodGet, "/health", nil, &body))
	s.Equal("healthy", body["status"])

	var root map[string]interface{}
	s.Equal(http.StatusOK, s.do(http.MethodGet, "/", nil, &root))
	s.Equal(false, root["login"])
}

func (s *RouterTestSuite) TestLoginNotConfigured() {
	s.Equal(http.StatusNotFound, s.do(http.MethodGet, "/login", nil, nil))
}

func (s *RouterTestSuite) TestConsentFlow() {
	var options []models.ConsentOption
	s.Equal(http.StatusOK, s.do(http.MethodGet, "/api/consent/options", nil, &options))
	s.Len(options, 4)

	s.Equal(http.StatusNotFound, s.do(http.MethodGet, "/api/consent", nil, nil))

	var renewal map[string]bool
	s.Equal(http.StatusOK, s.do(http.MethodGet, "/api/consent/renewal", nil, &renewal))
	s.True(renewal["needsRenewal"])

	var accepted models.ConsentSettings
	s.Equal(http.StatusOK, s.do(http.MethodPost, "/api/consent/accept-all", nil, &accepted))
	s.True(accepted.HasInteracted)
	s.Equal(models.ConsentMethodBanner, accepted.Method)
	for _, option := range options {
		s.True(accepted.Consents[option.ID], option.ID)
	}

	// The session cookie keeps the same subject
	var current models.ConsentSettings
	s.Equal(http.StatusOK, s.do(http.MethodGet, "/api/consent", nil, &current))
	s.Equal(accepted.Consents, current.Consents)

	s.Equal(http.StatusOK, s.do(http.MethodGet, "/api/consent/renewal", nil, &renewal))
	s.False(renewal["needsRenewal"])

	var rejected models.ConsentSettings
	s.Equal(http.StatusOK, s.do(http.MethodPost, "/api/consent/reject-all", map[string]string{"method": "preferences"}, &rejected))
	s.Equal(models.ConsentMethodPreferences, rejected.Method)
	s.True(rejected.Consents["necessary"])
	s.False(rejected.Consents["marketing"])

	var history []models.ConsentSettings
	s.Equal(http.StatusOK, s.do(http.MethodGet, "/api/consent/history", nil, &history))
	s.NotEmpty(history)

	var validation models.ValidationResult
	status := s.do(http.MethodPost, "/api/consent", map[string]interface{}{
		"consents": map[string]bool{"necessary": false},
	}, &validation)
	s.Equal(http.StatusUnprocessableEntity, status)
	s.False(validation.Valid)

	s.Equal(http.StatusNoContent, s.do(http.MethodDelete, "/api/consent", nil, nil))
	s.Equal(http.StatusNotFound, s.do(http.MethodGet, "/api/consent", nil, nil))
}

func (s *RouterTestSuite) TestDSRLifecycle() {
	var validation models.ValidationResult
	status := s.do(http.MethodPost, "/api/dsr", map[string]interface{}{
		"type":    "access",
		"subject": map[string]string{"name": "", "email": "nope"},
	}, &validation)
	s.Equal(http.StatusUnprocessableEntity, status)
	s.Equal([]string{"Name is required", "Email format is invalid"}, validation.Errors)

	s.Equal(http.StatusBadRequest, s.do(http.MethodPost, "/api/dsr", `{"bogus": true}`, nil))

	var created models.DSRRequest
	status = s.do(http.MethodPost, "/api/dsr", map[string]interface{}{
		"type":    "erasure",
		"subject": map[string]string{"name": "Jane Doe", "email": "jane@example.com"},
	}, &created)
	s.Require().Equal(http.StatusCreated, status)
	s.NotEmpty(created.ID)
	s.Equal(models.DSRPending, created.Status)
	s.WithinDuration(created.CreatedAt.Add(15*24*time.Hour), created.DueDate, time.Second)

	var fetched models.DSRRequest
	s.Equal(http.StatusOK, s.do(http.MethodGet, "/api/dsr/"+created.ID, nil, &fetched))
	s.Equal(created.ID, fetched.ID)

	var noted models.DSRRequest
	s.Equal(http.StatusOK, s.do(http.MethodPost, "/api/dsr/"+created.ID+"/notes", map[string]string{"text": "Called the subject"}, &noted))
	s.Require().Len(noted.Notes, 1)
	s.Equal("local", noted.Notes[0].Author)

	var completed models.DSRRequest
	s.Equal(http.StatusOK, s.do(http.MethodPut, "/api/dsr/"+created.ID+"/status", map[string]string{"status": "completed"}, &completed))
	s.Equal(models.DSRCompleted, completed.Status)
	s.NotNil(completed.CompletedAt)

	s.Equal(http.StatusUnprocessableEntity, s.do(http.MethodPut, "/api/dsr/"+created.ID+"/status", map[string]string{"status": "archived"}, nil))
	s.Equal(http.StatusNotFound, s.do(http.MethodGet, "/api/dsr/missing", nil, nil))

	var listed []models.DSRRequest
	s.Equal(http.StatusOK, s.do(http.MethodGet, "/api/dsr?status=completed", nil, &listed))
	s.Len(listed, 1)

	var stats models.DSRStatistics
	s.Equal(http.StatusOK, s.do(http.MethodGet, "/api/dsr/stats", nil, &stats))
	s.Equal(1, stats.Total)
	s.Equal(1, stats.ByStatus[models.DSRCompleted])
	s.Equal(0, stats.ByStatus[models.DSRPending])

	var overdue []models.DSRRequest
	s.Equal(http.StatusOK, s.do(http.MethodGet, "/api/dsr/overdue", nil, &overdue))
	s.Empty(overdue)

	// Writes were audited, reads were not
	var entries []models.AuditLogEntry
	s.Equal(http.StatusOK, s.do(http.MethodGet, "/api/audit", nil, &entries))
	methods := make([]string, 0, len(entries))
	for _, entry := range entries {
		methods = append(methods, entry.Method)
	}
	s.Contains(methods, http.MethodPost)
	s.Contains(methods, http.MethodPut)
	s.NotContains(methods, http.MethodGet)

	s.Equal(http.StatusBadRequest, s.do(http.MethodGet, "/api/audit?limit=abc", nil, nil))
}

func (s *RouterTestSuite) TestBreachNotificationFlow() {
	var report models.BreachReport
	status := s.do(http.MethodPost, "/api/breaches", map[string]interface{}{
		"category":     "confidentiality",
		"description":  "Customer export left on a public bucket",
		"discoveredAt": time.Now().UTC().Add(-80 * time.Hour),
	}, &report)
	s.Require().Equal(http.StatusCreated, status)
	s.Equal("local", report.ReportedBy)
	s.Equal(models.BreachOngoing, report.Status)

	var notification models.NotificationStatus
	s.Equal(http.StatusOK, s.do(http.MethodGet, "/api/breaches/"+report.ID+"/notification-status", nil, &notification))
	s.True(notification.RequiresNotification)
	s.True(notification.Overdue)

	var assessment models.BreachRiskAssessment
	status = s.do(http.MethodPost, "/api/breaches/"+report.ID+"/assessments", map[string]int{"likelihood": 3, "severity": 3}, &assessment)
	s.Require().Equal(http.StatusCreated, status)
	s.Equal(9, assessment.RiskScore)
	s.Equal(models.RiskHigh, assessment.RiskLevel)
	s.True(assessment.RequiresAuthorityNotification)
	s.True(assessment.RequiresSubjectNotification)

	s.Equal(http.StatusUnprocessableEntity, s.do(http.MethodPost, "/api/breaches/"+report.ID+"/assessments", map[string]int{"likelihood": 5, "severity": 1}, nil))

	var recorded models.RegulatoryNotification
	status = s.do(http.MethodPost, "/api/breaches/"+report.ID+"/notifications", map[string]string{
		"authority": "Autoriteit Persoonsgegevens",
		"method":    "online form",
	}, &recorded)
	s.Require().Equal(http.StatusCreated, status)
	s.False(recorded.NotifiedAt.IsZero())

	s.Equal(http.StatusOK, s.do(http.MethodGet, "/api/breaches/"+report.ID+"/notification-status", nil, &notification))
	s.True(notification.Notified)
	s.False(notification.Overdue)

	var contained models.BreachReport
	s.Equal(http.StatusOK, s.do(http.MethodPut, "/api/breaches/"+report.ID+"/status", map[string]string{"status": "contained"}, &contained))
	s.Equal(models.BreachContained, contained.Status)

	var listed []models.BreachReport
	s.Equal(http.StatusOK, s.do(http.MethodGet, "/api/breaches?status=contained", nil, &listed))
	s.Len(listed, 1)

	s.Equal(http.StatusNotFound, s.do(http.MethodGet, "/api/breaches/missing", nil, nil))
	s.Equal(http.StatusNotFound, s.do(http.MethodGet, "/api/breaches/missing/notifications", nil, nil))
}

func (s *RouterTestSuite) TestDPIA() {
	var questions []models.DPIAQuestion
	s.Equal(http.StatusOK, s.do(http.MethodGet, "/api/dpia/questions", nil, &questions))
	s.Len(questions, 10)

	var result models.DPIAResult
	status := s.do(http.MethodPost, "/api/dpia/score", map[string]interface{}{
		"answers": map[string]int{"data_sensitivity": 4, "data_volume": 4},
	}, &result)
	s.Require().Equal(http.StatusOK, status)
	s.Equal(100, result.NormalizedScore)
	s.Equal(models.RiskVeryHigh, result.RiskLevel)
	s.Equal(2, result.AnsweredCount)

	s.Equal(http.StatusUnprocessableEntity, s.do(http.MethodPost, "/api/dpia/score", map[string]interface{}{
		"answers": map[string]int{"data_sensitivity": 9},
	}, nil))

	var saved models.DPIAAssessment
	status = s.do(http.MethodPost, "/api/dpia/assessments", map[string]interface{}{
		"name":    "CRM migration",
		"answers": map[string]int{"data_sensitivity": 1},
	}, &saved)
	s.Require().Equal(http.StatusCreated, status)
	s.Equal("local", saved.AssessedBy)
	s.Equal(25, saved.Result.NormalizedScore)
	s.Equal(models.RiskModerate, saved.Result.RiskLevel)

	s.Equal(http.StatusOK, s.do(http.MethodGet, "/api/dpia/assessments/"+saved.ID, nil, nil))
	s.Equal(http.StatusNoContent, s.do(http.MethodDelete, "/api/dpia/assessments/"+saved.ID, nil, nil))
	s.Equal(http.StatusNotFound, s.do(http.MethodDelete, "/api/dpia/assessments/"+saved.ID, nil, nil))
}

func TestRouterTestSuite(t *testing.T) {
	suite.Run(t, new(RouterTestSuite))
}

func TestOpenStorage(t *testing.T) {
	store, closeStore, err := openStorage(config.Config{StorageDriver: config.StorageMemory})
	require.NoError(t, err)
	assert.NotNil(t, store)
	closeStore()

	_, _, err = openStorage(config.Config{StorageDriver: "redis"})
	assert.EqualError(t, err, `unknown storage driver "redis"`)
}
