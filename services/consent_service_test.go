package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/blogem/privacy-toolkit/config"
	"github.com/blogem/privacy-toolkit/models"
	"github.com/blogem/privacy-toolkit/repositories"
	"github.com/blogem/privacy-toolkit/repositories/mocks"
	"github.com/blogem/privacy-toolkit/storage"
)

func newConsentTestService(t *testing.T) (ConsentService, *fixedClock) {
	t.Helper()
	clock := &fixedClock{now: testNow}
	repo := repositories.NewConsentRepository(storage.NewMemoryAdapter())
	return NewConsentService(repo, config.DefaultPolicy().Consent, clock), clock
}

func TestConsentService_SaveConsent(t *testing.T) {
	ctx := context.Background()
	service, _ := newConsentTestService(t)

	settings, validation, err := service.SaveConsent(ctx, "session-1", &models.ConsentForm{
		Consents:      map[string]bool{"necessary": true, "analytics": true},
		Method:        models.ConsentMethodBanner,
		HasInteracted: true,
	})

	require.NoError(t, err)
	require.True(t, validation.Valid, validation.Errors)
	assert.Equal(t, testNow, settings.Timestamp)
	assert.Equal(t, "1.0", settings.Version)
	assert.Equal(t, models.ConsentMethodBanner, settings.Method)

	current, err := service.GetConsent(ctx, "session-1")
	require.NoError(t, err)
	assert.Equal(t, settings, current)

	granted, err := service.HasConsent(ctx, "session-1", "analytics")
	require.NoError(t, err)
	assert.True(t, granted)

	granted, err = service.HasConsent(ctx, "session-1", "marketing")
	require.NoError(t, err)
	assert.False(t, granted)
}

func TestConsentService_SaveConsent_MissingRequiredOption(t *testing.T) {
	ctx := context.Background()
	service, _ := newConsentTestService(t)

	settings, validation, err := service.SaveConsent(ctx, "session-1", &models.ConsentForm{
		Consents: map[string]bool{"analytics": true},
	})

	require.NoError(t, err)
	assert.Nil(t, settings)
	assert.False(t, validation.Valid)
	require.NotEmpty(t, validation.Errors)
	assert.Contains(t, validation.Errors[0], "necessary")

	current, err := service.GetConsent(ctx, "session-1")
	require.NoError(t, err)
	assert.Nil(t, current)
}

func TestConsentService_SupersedesAndKeepsHistory(t *testing.T) {
	ctx := context.Background()
	service, clock := newConsentTestService(t)

	_, err := service.AcceptAll(ctx, "session-1", models.ConsentMethodBanner)
	require.NoError(t, err)

	clock.Advance(time.Hour)
	rejected, err := service.RejectAll(ctx, "session-1", models.ConsentMethodPreferences)
	require.NoError(t, err)
	assert.Equal(t, map[string]bool{"necessary": true, "preferences": false, "analytics": false, "marketing": false}, rejected.Consents)

	current, err := service.GetConsent(ctx, "session-1")
	require.NoError(t, err)
	assert.Equal(t, rejected, current)

	history, err := service.GetHistory(ctx, "session-1")
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.True(t, history[0].Consents["marketing"])
	assert.False(t, history[1].Consents["marketing"])
	assert.Equal(t, testNow, history[0].Timestamp)
	assert.Equal(t, testNow.Add(time.Hour), history[1].Timestamp)
}

func TestConsentService_SubjectsAreIsolated(t *testing.T) {
	ctx := context.Background()
	service, _ := newConsentTestService(t)

	_, err := service.AcceptAll(ctx, "session-1", models.ConsentMethodBanner)
	require.NoError(t, err)

	other, err := service.GetConsent(ctx, "session-2")
	require.NoError(t, err)
	assert.Nil(t, other)

	// Without stored consent only required options count
	granted, err := service.HasConsent(ctx, "session-2", "necessary")
	require.NoError(t, err)
	assert.True(t, granted)
	granted, err = service.HasConsent(ctx, "session-2", "marketing")
	require.NoError(t, err)
	assert.False(t, granted)
}

func TestConsentService_NeedsRenewal(t *testing.T) {
	ctx := context.Background()
	service, clock := newConsentTestService(t)

	renew, err := service.NeedsRenewal(ctx, "session-1")
	require.NoError(t, err)
	assert.True(t, renew, "no consent given yet")

	_, err = service.AcceptAll(ctx, "session-1", models.ConsentMethodBanner)
	require.NoError(t, err)

	renew, err = service.NeedsRenewal(ctx, "session-1")
	require.NoError(t, err)
	assert.False(t, renew)

	clock.Advance(366 * 24 * time.Hour)
	renew, err = service.NeedsRenewal(ctx, "session-1")
	require.NoError(t, err)
	assert.True(t, renew, "consent older than the maximum age")
}

func TestConsentService_NeedsRenewal_VersionChanged(t *testing.T) {
	ctx := context.Background()
	repo := repositories.NewConsentRepository(storage.NewMemoryAdapter())
	clock := &fixedClock{now: testNow}
	policy := config.DefaultPolicy().Consent

	_, err := NewConsentService(repo, policy, clock).AcceptAll(ctx, "session-1", models.ConsentMethodBanner)
	require.NoError(t, err)

	policy.Version = "2.0"
	renew, err := NewConsentService(repo, policy, clock).NeedsRenewal(ctx, "session-1")
	require.NoError(t, err)
	assert.True(t, renew)
}

func TestConsentService_ClearConsentKeepsHistory(t *testing.T) {
	ctx := context.Background()
	service, _ := newConsentTestService(t)

	_, err := service.AcceptAll(ctx, "session-1", models.ConsentMethodBanner)
	require.NoError(t, err)
	require.NoError(t, service.ClearConsent(ctx, "session-1"))

	current, err := service.GetConsent(ctx, "session-1")
	require.NoError(t, err)
	assert.Nil(t, current)

	history, err := service.GetHistory(ctx, "session-1")
	require.NoError(t, err)
	assert.Len(t, history, 1)
}

func TestConsentService_MissingSubject(t *testing.T) {
	ctx := context.Background()
	service, _ := newConsentTestService(t)

	_, err := service.GetConsent(ctx, "")
	assert.ErrorIs(t, err, ErrMissingSubject)

	_, _, err = service.SaveConsent(ctx, "", &models.ConsentForm{})
	assert.ErrorIs(t, err, ErrMissingSubject)

	assert.ErrorIs(t, service.ClearConsent(ctx, ""), ErrMissingSubject)
}

func TestConsentService_GetOptionsReturnsCopy(t *testing.T) {
	service, _ := newConsentTestService(t)

	options := service.GetOptions()
	require.NotEmpty(t, options)
	options[0].Required = false

	assert.True(t, service.GetOptions()[0].Required)
}

func TestConsentService_RepositoryError(t *testing.T) {
	ctx := context.Background()
	repo := mocks.NewMockConsentRepository(t)
	repo.EXPECT().SaveCurrent(ctx, "session-1", mock.AnythingOfType("models.ConsentSettings")).Return(errors.New("storage offline"))
	service := NewConsentService(repo, config.DefaultPolicy().Consent, &fixedClock{now: testNow})

	settings, err := service.AcceptAll(ctx, "session-1", models.ConsentMethodBanner)

	assert.Nil(t, settings)
	assert.ErrorContains(t, err, "failed to save consent")
	repo.AssertNotCalled(t, "AppendHistory", mock.Anything, mock.Anything, mock.Anything)
}

func TestConsentSettings_RoundTrip(t *testing.T) {
	settings := models.ConsentSettings{
		Consents:      map[string]bool{"necessary": true, "analytics": false},
		Timestamp:     testNow,
		Version:       "1.0",
		Method:        models.ConsentMethodPreferences,
		HasInteracted: true,
	}

	encoded, err := json.Marshal(settings)
	require.NoError(t, err)

	var decoded models.ConsentSettings
	require.NoError(t, json.Unmarshal(encoded, &decoded))
	assert.Equal(t, settings, decoded)

	reencoded, err := json.Marshal(decoded)
	require.NoError(t, err)
	assert.JSONEq(t, string(encoded), string(reencoded))
}
