package services

import (
	"strings"
	"testing"

	"github.com/amars11/ExpenseTracker/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPasswordService() PasswordServiceInterface {
	return NewPasswordService(config.SecurityConfig{
		BCryptCost:          4, // minimum cost keeps the tests fast
		PasswordMinLength:   8,
		RequireUppercase:    true,
		RequireLowercase:    true,
		RequireNumbers:      true,
		RequireSpecialChars: true,
	})
}

func TestPasswordService_ValidatePassword(t *testing.T) {
	service := testPasswordService()

	tests := []struct {
		name     string
		password string
		wantErr  error
	}{
		{name: "valid password", password: "SecurePass123!"},
		{name: "empty password", password: "", wantErr: ErrPasswordEmpty},
		{name: "too long", password: strings.Repeat("Aa1!", 19), wantErr: ErrPasswordTooLong},
		{name: "no uppercase", password: "securepass123!", wantErr: ErrPasswordNoUppercase},
		{name: "no lowercase", password: "SECUREPASS123!", wantErr: ErrPasswordNoLowercase},
		{name: "no number", password: "SecurePass!!!!", wantErr: ErrPasswordNoNumber},
		{name: "no special character", password: "SecurePass1234", wantErr: ErrPasswordNoSpecial},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := service.ValidatePassword(tt.password)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPasswordService_ValidatePassword_MinLength(t *testing.T) {
	service := testPasswordService()

	err := service.ValidatePassword("Sh0rt!!")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least 8 characters")
}

func TestPasswordService_ValidatePassword_RelaxedPolicy(t *testing.T) {
	relaxed := NewPasswordService(config.SecurityConfig{
		BCryptCost:        4,
		PasswordMinLength: 8,
	})

	// With every rule disabled only length matters
	assert.NoError(t, relaxed.ValidatePassword("lowercaseonly"))
}

func TestPasswordService_HashAndCompare(t *testing.T) {
	service := testPasswordService()
	password := "SecurePass123!"

	hash, err := service.HashPassword(password)
	require.NoError(t, err)
	assert.NotEqual(t, password, hash)

	assert.True(t, service.ComparePassword(password, hash))
	assert.False(t, service.ComparePassword("WrongPass123!", hash))
	assert.False(t, service.ComparePassword(password, "not-a-hash"))
}

func TestPasswordService_HashPassword_RejectsInvalid(t *testing.T) {
	service := testPasswordService()

	_, err := service.HashPassword("weak")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "password validation failed")
}

func TestPasswordService_PasswordStrength(t *testing.T) {
	service := testPasswordService()

	assert.Zero(t, service.PasswordStrength(""))

	weak := service.PasswordStrength("abc")
	strong := service.PasswordStrength("V3ry$ecureL0ngPassphrase!")
	assert.Greater(t, strong, weak)
	assert.LessOrEqual(t, strong, 100)
}
