package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/construtek/obras-api/pkg/jwt"
)

const (
	testSecret = "secret-para-tests"
	testIssuer = "obras-pro-test"
)

func TestGenerateAndParse(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, "user-1", "company-1", "gerente", testIssuer, 60)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	userID, companyID, role, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
	assert.Equal(t, "company-1", companyID)
	assert.Equal(t, "gerente", role)
}

func TestGenerateRequiresSecret(t *testing.T) {
	_, err := pkgjwt.Generate("", "user-1", "company-1", "admin", testIssuer, 60)
	assert.Error(t, err)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, "user-1", "company-1", "admin", testIssuer, 60)
	require.NoError(t, err)

	_, _, _, err = pkgjwt.Parse("otro-secret", tok)
	assert.Error(t, err)
}

func TestParseRejectsExpiredToken(t *testing.T) {
	// Expiración negativa: el token nace vencido
	tok, err := pkgjwt.Generate(testSecret, "user-1", "company-1", "admin", testIssuer, -5)
	require.NoError(t, err)

	_, _, _, err = pkgjwt.Parse(testSecret, tok)
	assert.Error(t, err)
}

func TestParseRejectsGarbage(t *testing.T) {
	_, _, _, err := pkgjwt.Parse(testSecret, "no-es-un-jwt")
	assert.Error(t, err)
}
