package services

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/amars11/ExpenseTracker/internal/config"

	"golang.org/x/crypto/bcrypt"
)

const (
	// MaxPasswordLength is a bcrypt algorithm limitation
	MaxPasswordLength = 72
)

var (
	ErrPasswordEmpty       = errors.New("password cannot be empty")
	ErrPasswordTooLong     = fmt.Errorf("password must not exceed %d characters", MaxPasswordLength)
	ErrPasswordNoUppercase = errors.New("password must contain at least one uppercase letter")
	ErrPasswordNoLowercase = errors.New("password must contain at least one lowercase letter")
	ErrPasswordNoNumber    = errors.New("password must contain at least one number")
	ErrPasswordNoSpecial   = errors.New("password must contain at least one special character")

	uppercaseRegex = regexp.MustCompile(`[A-Z]`)
	lowercaseRegex = regexp.MustCompile(`[a-z]`)
	numberRegex    = regexp.MustCompile(`[0-9]`)
	specialRegex   = regexp.MustCompile(`[!@#$%^&*()_+\-=\[\]{}|;:,.<>?]`)
)

// PasswordService handles password hashing and validation. The policy is
// driven by SecurityConfig so environments can relax individual rules.
type PasswordService struct {
	cost             int
	minLength        int
	requireUppercase bool
	requireLowercase bool
	requireNumbers   bool
	requireSpecial   bool
}

// NewPasswordService creates a password service from the security config
func NewPasswordService(cfg config.SecurityConfig) PasswordServiceInterface {
	return &PasswordService{
		cost:             cfg.BCryptCost,
		minLength:        cfg.PasswordMinLength,
		requireUppercase: cfg.RequireUppercase,
		requireLowercase: cfg.RequireLowercase,
		requireNumbers:   cfg.RequireNumbers,
		requireSpecial:   cfg.RequireSpecialChars,
	}
}

// ValidatePassword checks if a password meets the configured requirements
func (ps *PasswordService) ValidatePassword(password string) error {
	if password == "" {
		return ErrPasswordEmpty
	}

	if len(password) < ps.minLength {
		return fmt.Errorf("password must be at least %d characters", ps.minLength)
	}

	if len(password) > MaxPasswordLength {
		return ErrPasswordTooLong
	}

	if ps.requireUppercase && !uppercaseRegex.MatchString(password) {
		return ErrPasswordNoUppercase
	}

	if ps.requireLowercase && !lowercaseRegex.MatchString(password) {
		return ErrPasswordNoLowercase
	}

	if ps.requireNumbers && !numberRegex.MatchString(password) {
		return ErrPasswordNoNumber
	}

	if ps.requireSpecial && !specialRegex.MatchString(password) {
		return ErrPasswordNoSpecial
	}

	return nil
}

// HashPassword validates and hashes a password using bcrypt
func (ps *PasswordService) HashPassword(password string) (string, error) {
	if err := ps.ValidatePassword(password); err != nil {
		return "", fmt.Errorf("password validation failed: %w", err)
	}

	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), ps.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return string(hashedBytes), nil
}

// ComparePassword compares a plain password with a hashed password.
// Returns true if they match, false otherwise
func (ps *PasswordService) ComparePassword(password, hash string) bool {
	// bcrypt.CompareHashAndPassword provides timing-attack resistance per OWASP guidelines
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// PasswordStrength returns a score from 0-100 indicating password strength
func (ps *PasswordService) PasswordStrength(password string) int {
	if password == "" {
		return 0
	}

	score := ps.calculateLengthScore(len(password))
	score += ps.calculateCharacterDiversityScore(password)
	score += ps.calculateEntropyBonus(password)

	if ps.ValidatePassword(password) == nil && score < 80 {
		// Meets all configured requirements, ensure minimum acceptable score
		score = 80
	}

	if score > 100 {
		score = 100
	}

	return score
}

func (ps *PasswordService) calculateLengthScore(length int) int {
	score := 0
	if length >= 8 {
		score += 10
	}
	if length >= 12 {
		score += 10
	}
	if length >= 16 {
		score += 10
	}
	if length >= 20 {
		score += 10
	}
	return score
}

func (ps *PasswordService) calculateCharacterDiversityScore(password string) int {
	score := 0
	if uppercaseRegex.MatchString(password) {
		score += 15
	}
	if lowercaseRegex.MatchString(password) {
		score += 15
	}
	if numberRegex.MatchString(password) {
		score += 15
	}
	if specialRegex.MatchString(password) {
		score += 15
	}
	return score
}

func (ps *PasswordService) calculateEntropyBonus(password string) int {
	uniqueChars := make(map[rune]bool)
	for _, char := range password {
		uniqueChars[char] = true
	}

	if len(uniqueChars) > len(password)*3/4 {
		return 10
	}
	if len(uniqueChars) > len(password)/2 {
		return 5
	}
	return 0
}
