package authentication

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gowthamdvr/care-connect/apperror"
	"github.com/Gowthamdvr/care-connect/models"
)

func TestIssueAndVerify(t *testing.T) {
	svc := NewTokenService("test-key")

	token, err := svc.Issue("u1", models.RolePatient)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.AccountID)
	assert.Equal(t, models.RolePatient, claims.Role)
}

func TestVerifyExpired(t *testing.T) {
	svc := NewTokenServiceTTL("test-key", -time.Minute)

	token, err := svc.Issue("u1", models.RoleDoctor)
	require.NoError(t, err)

	_, err = svc.Verify(token)
	require.Error(t, err)
	assert.True(t, apperror.Is(err, apperror.KindExpiredToken))
}

func TestVerifyWrongKey(t *testing.T) {
	token, err := NewTokenService("key-a").Issue("u1", models.RoleAdmin)
	require.NoError(t, err)

	_, err = NewTokenService("key-b").Verify(token)
	require.Error(t, err)
	assert.True(t, apperror.Is(err, apperror.KindInvalidToken))
}

func TestVerifyGarbage(t *testing.T) {
	svc := NewTokenService("test-key")

	for _, tok := range []string{"", "not-a-token", "a.b.c"} {
		_, err := svc.Verify(tok)
		require.Error(t, err)
		assert.True(t, apperror.Is(err, apperror.KindInvalidToken), "token %q", tok)
	}
}

func TestVerifyRejectsUnknownRole(t *testing.T) {
	svc := NewTokenService("test-key")

	token, err := svc.Issue("u1", models.Role("root"))
	require.NoError(t, err)

	_, err = svc.Verify(token)
	require.Error(t, err)
	assert.True(t, apperror.Is(err, apperror.KindInvalidToken))
}
