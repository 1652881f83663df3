package jwt

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	userID := uuid.New()
	privileges := []string{"pos:sell", "shift:open"}

	token, err := GenerateToken(userID, "cashier@example.com", "Cashier One", "CASHIER", privileges, "v1")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "cashier@example.com", claims.Email)
	assert.Equal(t, "Cashier One", claims.Name)
	assert.Equal(t, "CASHIER", claims.RoleCode)
	assert.Equal(t, privileges, claims.Privileges)
	assert.Equal(t, "v1", claims.TokenVersion)
	assert.Equal(t, "go-restaurant-pos", claims.Issuer)
}

func TestValidateToken_Garbage(t *testing.T) {
	_, err := ValidateToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_TamperedSignature(t *testing.T) {
	token, err := GenerateToken(uuid.New(), "a@b.c", "A", "ADMIN", nil, "v1")
	require.NoError(t, err)

	_, err = ValidateToken(token + "x")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
