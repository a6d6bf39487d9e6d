package service_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sue-zadeh/fieldbase/internal/domain/service"
	"github.com/sue-zadeh/fieldbase/pkg/constants"
)

func TestIssueAndVerify(t *testing.T) {
	svc := service.NewTokenService("unit-test-secret", time.Hour)

	signed, issued, err := svc.Issue(42, "ranger@fieldbase.nz", constants.RoleGroupAdmin)
	require.NoError(t, err)
	require.NotEmpty(t, signed)
	require.NotEmpty(t, issued.JTI)

	claims, err := svc.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, 42, claims.UserID)
	assert.Equal(t, "ranger@fieldbase.nz", claims.Email)
	assert.Equal(t, constants.RoleGroupAdmin, claims.Role)
	assert.Equal(t, issued.JTI, claims.JTI)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.Expiry, 5*time.Second)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	issuer := service.NewTokenService("secret-a", time.Hour)
	verifier := service.NewTokenService("secret-b", time.Hour)

	signed, _, err := issuer.Issue(1, "a@b.nz", constants.RoleAdmin)
	require.NoError(t, err)

	_, err = verifier.Verify(signed)
	assert.Error(t, err)
}

func TestVerifyRejectsExpired(t *testing.T) {
	svc := service.NewTokenService("unit-test-secret", -time.Minute)

	signed, _, err := svc.Issue(1, "a@b.nz", constants.RoleAdmin)
	require.NoError(t, err)

	_, err = svc.Verify(signed)
	assert.Error(t, err)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	svc := service.NewTokenService("unit-test-secret", time.Hour)
	_, err := svc.Verify("not.a.token")
	assert.Error(t, err)
}
