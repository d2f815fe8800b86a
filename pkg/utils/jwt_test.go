package utils

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAndValidateToken(t *testing.T) {
	SetJWTSecret("test-secret")

	userID := uuid.New()
	token, err := CreateToken(userID, "labour")
	require.NoError(t, err)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims.UserID)
	assert.Equal(t, "labour", claims.Role)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	SetJWTSecret("first-secret")
	token, err := CreateToken(uuid.New(), "user")
	require.NoError(t, err)

	SetJWTSecret("second-secret")
	_, err = ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateToken_Garbage(t *testing.T) {
	SetJWTSecret("test-secret")
	_, err := ValidateToken("not.a.token")
	assert.Error(t, err)
}

func TestValidateToken_RejectsUnsignedAlg(t *testing.T) {
	SetJWTSecret("test-secret")

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{
		UserID: uuid.New().String(),
		Role:   "superadmin",
	})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = ValidateToken(token)
	assert.Error(t, err)
}
