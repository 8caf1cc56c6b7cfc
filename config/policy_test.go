package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blogem/privacy-toolkit/models"
)

func TestDefaultPolicyIsValid(t *testing.T) {
	policy := DefaultPolicy()
	require.NoError(t, policy.Validate())

	assert.Equal(t, 15*24*time.Hour, policy.DSR.SLA(models.DSRErasure))
	assert.Equal(t, 30*24*time.Hour, policy.DSR.SLA(models.DSRAccess))
	assert.False(t, policy.DSR.StrictTransitions)
}

func TestDefaultPolicyReturnsFreshCopies(t *testing.T) {
	first := DefaultPolicy()
	first.DSR.SLADays[models.DSRAccess] = 1
	first.Consent.Options[0].Required = false

	second := DefaultPolicy()
	assert.Equal(t, 30, second.DSR.SLADays[models.DSRAccess])
	assert.True(t, second.Consent.Options[0].Required)
}

func TestLoadPolicyEmptyPathUsesDefaults(t *testing.T) {
	policy, err := LoadPolicy("")
	require.NoError(t, err)
	assert.Equal(t, DefaultPolicy(), policy)
}

func TestLoadPolicyOverridesDefaults(t *testing.T) {
	policy, err := LoadPolicy("testdata/policy.yaml")
	require.NoError(t, err)

	assert.True(t, policy.DSR.StrictTransitions)
	assert.Equal(t, 20, policy.DSR.SLADays[models.DSRAccess])
	// Maps merge: types absent from the file keep their defaults
	assert.Equal(t, 15, policy.DSR.SLADays[models.DSRErasure])

	assert.Equal(t, "2.1", policy.Consent.Version)
	assert.Equal(t, 180*24*time.Hour, policy.Consent.MaxAge())
	assert.Len(t, policy.Consent.Options, 4)

	require.Len(t, policy.DPIA.Questions, 1)
	assert.Equal(t, "q1", policy.DPIA.Questions[0].ID)
	assert.Equal(t, 2.0, policy.DPIA.Questions[0].Weight)
	require.Len(t, policy.DPIA.Rules, 1)
	assert.Equal(t, "Encrypt the data at rest.", policy.DPIA.Rules[0].Recommendation)
	assert.NotEmpty(t, policy.DPIA.Narratives[models.RiskVeryHigh])
}

func TestLoadPolicyRejectsInvalidFile(t *testing.T) {
	_, err := LoadPolicy("testdata/invalid_policy.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "erasure")
	assert.Contains(t, err.Error(), "does_not_exist")
}

func TestLoadPolicyMissingFile(t *testing.T) {
	_, err := LoadPolicy("testdata/nope.yaml")
	assert.Error(t, err)
}

func TestValidateDuplicateIDs(t *testing.T) {
	policy := DefaultPolicy()
	policy.Consent.Options = append(policy.Consent.Options, policy.Consent.Options[0])
	policy.DPIA.Questions = append(policy.DPIA.Questions, policy.DPIA.Questions[0])

	err := policy.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `duplicate consent option "necessary"`)
	assert.Contains(t, err.Error(), `duplicate DPIA question "data_sensitivity"`)
}
