package models

import (
	"strings"
	"testing"
	"time"
)

var testNow = time.Date(2024, 3, 4, 9, 30, 0, 0, time.UTC)

// Test DSRRequestForm validation
func TestDSRRequestFormValidation(t *testing.T) {
	// Test valid form
	validForm := DSRRequestForm{
		Type:    DSRAccess,
		Subject: DataSubject{Name: "John Doe", Email: "john@example.com"},
	}
	errors := validForm.Validate()
	if len(errors) != 0 {
		t.Errorf("Expected no errors for valid form, got: %v", errors)
	}

	// Test invalid form
	invalidForm := DSRRequestForm{
		Type:    DSRAccess,
		Subject: DataSubject{Name: "", Email: "invalid-email"},
	}
	errors = invalidForm.Validate()
	if len(errors) != 2 {
		t.Errorf("Expected 2 errors for invalid form, got: %v", errors)
	}

	// Test unknown type
	unknownType := DSRRequestForm{
		Type:    "deletion",
		Subject: DataSubject{Name: "John Doe", Email: "john@example.com"},
	}
	errors = unknownType.Validate()
	if len(errors) != 1 || errors[0] != `Request type "deletion" is not supported` {
		t.Errorf("Expected unsupported type error, got: %v", errors)
	}

	// Test length limits
	tooLong := DSRRequestForm{
		Type:        DSRErasure,
		Subject:     DataSubject{Name: strings.Repeat("a", 101), Email: "john@example.com"},
		Description: strings.Repeat("d", 5001),
	}
	errors = tooLong.Validate()
	if len(errors) != 2 {
		t.Errorf("Expected 2 length errors, got: %v", errors)
	}
}

// Test type-specific DSR details
func TestDSRDetailsValidation(t *testing.T) {
	tests := []struct {
		name        string
		requestType DSRType
		details     DSRDetails
		wantErrors  int
	}{
		{"access without details", DSRAccess, DSRDetails{}, 0},
		{"rectification without details", DSRRectification, DSRDetails{}, 1},
		{"rectification missing values", DSRRectification, DSRDetails{Rectification: &RectificationDetails{}}, 2},
		{"rectification complete", DSRRectification, DSRDetails{Rectification: &RectificationDetails{Field: "email", RequestedValue: "new@example.com"}}, 0},
		{"portability known format", DSRPortability, DSRDetails{Portability: &PortabilityDetails{Format: "csv"}}, 0},
		{"portability unknown format", DSRPortability, DSRDetails{Portability: &PortabilityDetails{Format: "pdf"}}, 1},
		{"restriction empty reason", DSRRestriction, DSRDetails{Restriction: &RestrictionDetails{}}, 1},
		{"objection empty purpose", DSRObjection, DSRDetails{Objection: &ObjectionDetails{}}, 1},
		{"details of another type", DSRAccess, DSRDetails{Erasure: &ErasureDetails{Reason: "done"}}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errors := tt.details.Validate(tt.requestType)
			if len(errors) != tt.wantErrors {
				t.Errorf("Expected %d errors, got: %v", tt.wantErrors, errors)
			}
		})
	}
}

// Test DSR deadline helpers
func TestDSRRequestDeadlines(t *testing.T) {
	request := &DSRRequest{Status: DSRPending, DueDate: testNow.Add(DaysToDuration(30))}

	if request.IsOverdue(testNow) {
		t.Error("Expected request not to be overdue before the due date")
	}
	if days := request.DaysRemaining(testNow); days != 30 {
		t.Errorf("Expected 30 days remaining, got %d", days)
	}

	late := testNow.Add(DaysToDuration(31))
	if !request.IsOverdue(late) {
		t.Error("Expected open request past the due date to be overdue")
	}
	if days := request.DaysRemaining(late); days != -1 {
		t.Errorf("Expected -1 days remaining, got %d", days)
	}

	partial := []struct {
		at   time.Time
		want int
	}{
		{testNow.Add(DaysToDuration(30) + 12*time.Hour), -1},
		{testNow.Add(DaysToDuration(30) - 12*time.Hour), 0},
		{testNow.Add(DaysToDuration(28) + 12*time.Hour), 1},
		{testNow.Add(DaysToDuration(30)), 0},
	}
	for _, tt := range partial {
		if days := request.DaysRemaining(tt.at); days != tt.want {
			t.Errorf("DaysRemaining(%v) = %d, want %d", tt.at, days, tt.want)
		}
	}

	request.Status = DSRCompleted
	if request.IsOverdue(late) {
		t.Error("Expected completed request never to be overdue")
	}
}

// Test consent snapshot validation
func TestValidateConsentSettings(t *testing.T) {
	options := []ConsentOption{
		{ID: "necessary", Required: true},
		{ID: "analytics"},
	}

	valid := ConsentSettings{
		Consents:  map[string]bool{"necessary": true},
		Timestamp: testNow,
		Version:   "1.0",
	}
	if result := ValidateConsentSettings(valid, options, testNow); !result.Valid {
		t.Errorf("Expected valid settings, got: %v", result.Errors)
	}

	missing := ConsentSettings{Consents: map[string]bool{}, Timestamp: testNow, Version: "1.0"}
	result := ValidateConsentSettings(missing, options, testNow)
	if result.Valid || len(result.Errors) != 1 || result.Errors[0] != `Consent option "necessary" is required but missing` {
		t.Errorf("Expected missing required option error, got: %v", result.Errors)
	}

	denied := ConsentSettings{Consents: map[string]bool{"necessary": false}, Timestamp: testNow, Version: "1.0"}
	if result := ValidateConsentSettings(denied, options, testNow); result.Valid {
		t.Error("Expected a denied required option to be invalid")
	}

	future := ConsentSettings{Consents: map[string]bool{"necessary": true}, Timestamp: testNow.Add(time.Hour)}
	result = ValidateConsentSettings(future, options, testNow)
	if len(result.Errors) != 2 {
		t.Errorf("Expected version and timestamp errors, got: %v", result.Errors)
	}

	if len(missing.Consents) != 0 {
		t.Error("Expected validation not to modify the input")
	}
}

// Test consent helpers
func TestConsentHelpers(t *testing.T) {
	options := []ConsentOption{
		{ID: "necessary", Required: true},
		{ID: "preferences", DefaultValue: true},
		{ID: "marketing"},
	}

	defaults := DefaultConsents(options)
	if !defaults["necessary"] || !defaults["preferences"] || defaults["marketing"] {
		t.Errorf("Unexpected defaults: %v", defaults)
	}

	original := ConsentSettings{Consents: map[string]bool{"marketing": true}}
	clone := original.Clone()
	clone.Consents["marketing"] = false
	if !original.Consents["marketing"] {
		t.Error("Expected clone not to share the consents map")
	}

	var none *ConsentSettings
	if none.Granted("necessary") {
		t.Error("Expected nil settings to grant nothing")
	}
}

// Test consent renewal
func TestNeedsRenewal(t *testing.T) {
	current := &ConsentSettings{Version: "1.0", Timestamp: testNow, HasInteracted: true}
	maxAge := DaysToDuration(365)

	if NeedsRenewal(current, "1.0", maxAge, testNow.Add(DaysToDuration(30))) {
		t.Error("Expected recent consent not to need renewal")
	}
	if !NeedsRenewal(nil, "1.0", maxAge, testNow) {
		t.Error("Expected missing consent to need renewal")
	}
	if !NeedsRenewal(current, "2.0", maxAge, testNow) {
		t.Error("Expected a version change to need renewal")
	}
	if !NeedsRenewal(current, "1.0", maxAge, testNow.Add(DaysToDuration(366))) {
		t.Error("Expected expired consent to need renewal")
	}
	if NeedsRenewal(current, "1.0", 0, testNow.Add(DaysToDuration(3650))) {
		t.Error("Expected no expiry when max age is zero")
	}

	untouched := &ConsentSettings{Version: "1.0", Timestamp: testNow}
	if !NeedsRenewal(untouched, "1.0", maxAge, testNow) {
		t.Error("Expected consent without interaction to need renewal")
	}
}

// Test BreachReportForm validation
func TestBreachReportFormValidation(t *testing.T) {
	validForm := BreachReportForm{
		Category:     BreachConfidentiality,
		Description:  "Laptop stolen",
		DiscoveredAt: testNow.Add(-time.Hour),
		ReportedBy:   "security@example.com",
	}
	if errors := validForm.Validate(testNow); len(errors) != 0 {
		t.Errorf("Expected no errors for valid form, got: %v", errors)
	}

	invalidForm := BreachReportForm{
		Category:          "theft",
		DiscoveredAt:      testNow.Add(time.Hour),
		EstimatedSubjects: -1,
	}
	if errors := invalidForm.Validate(testNow); len(errors) != 5 {
		t.Errorf("Expected 5 errors for invalid form, got: %v", errors)
	}

	if errors := (&BreachReportForm{Category: BreachIntegrity, Description: "x", ReportedBy: "me"}).Validate(testNow); len(errors) != 1 {
		t.Errorf("Expected missing discovery time error, got: %v", errors)
	}
}

// Test breach risk classification
func TestBreachRiskLevel(t *testing.T) {
	tests := []struct {
		score int
		want  RiskLevel
	}{
		{1, RiskLow},
		{2, RiskLow},
		{3, RiskModerate},
		{6, RiskModerate},
		{8, RiskHigh},
		{9, RiskHigh},
		{12, RiskVeryHigh},
		{16, RiskVeryHigh},
	}

	for _, tt := range tests {
		if got := BreachRiskLevel(tt.score); got != tt.want {
			t.Errorf("BreachRiskLevel(%d) = %s, want %s", tt.score, got, tt.want)
		}
	}

	if !RiskHigh.AtLeast(RiskModerate) || RiskLow.AtLeast(RiskModerate) {
		t.Error("Unexpected risk level ordering")
	}
	if RiskLevel("unknown").AtLeast(RiskLow) {
		t.Error("Expected unknown risk level not to rank")
	}
}

// Test notification deadline
func TestBreachNotificationDeadline(t *testing.T) {
	report := &BreachReport{DiscoveredAt: testNow}
	if want := testNow.Add(72 * time.Hour); !report.NotificationDeadline().Equal(want) {
		t.Errorf("Expected deadline %v, got %v", want, report.NotificationDeadline())
	}
}

// Test DPIA answer validation
func TestValidateDPIAAnswers(t *testing.T) {
	questions := []DPIAQuestion{
		{ID: "q1", Options: []DPIAOption{{Value: 1}, {Value: 3}}},
		{ID: "q2"},
	}

	if result := ValidateDPIAAnswers(questions, DPIAAnswers{"q1": 3, "q2": 4}); !result.Valid {
		t.Errorf("Expected valid answers, got: %v", result.Errors)
	}

	result := ValidateDPIAAnswers(questions, DPIAAnswers{"q1": 2, "q2": 5, "zz": 1})
	want := []string{
		`Answer 2 is not a valid option for question "q1"`,
		`Answer 5 is not a valid option for question "q2"`,
		`Unknown question "zz"`,
	}
	if len(result.Errors) != len(want) {
		t.Fatalf("Expected %d errors, got: %v", len(want), result.Errors)
	}
	for i := range want {
		if result.Errors[i] != want[i] {
			t.Errorf("Error %d = %q, want %q", i, result.Errors[i], want[i])
		}
	}
}

// Test shared utilities
func TestUtilities(t *testing.T) {
	validEmails := []string{"a@b.co", "john.doe@example.com"}
	for _, email := range validEmails {
		if !isValidEmail(email) {
			t.Errorf("Expected %s to be a valid email", email)
		}
	}

	invalidEmails := []string{"", "@example.com", "john@", "john@example", "john@example.", "a@b@c.com"}
	for _, email := range invalidEmails {
		if isValidEmail(email) {
			t.Errorf("Expected %s to be an invalid email", email)
		}
	}

	if FormatDate(testNow) != "2024-03-04" {
		t.Errorf("Unexpected date format: %s", FormatDate(testNow))
	}

	merged := NewValidationResult(nil).Merge(NewValidationResult([]string{"boom"}))
	if merged.Valid || len(merged.Errors) != 1 {
		t.Errorf("Unexpected merge result: %+v", merged)
	}
	if empty := NewValidationResult(nil); !empty.Valid || empty.Errors == nil {
		t.Error("Expected an empty result to be valid with a non-nil error list")
	}
}
