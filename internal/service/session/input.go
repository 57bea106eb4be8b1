package session

import (
	"regexp"
	"strings"

	"github.com/Achamanp/ProjectManagentApp/internal/domain"
)

const minPasswordLength = 6

var otpPattern = regexp.MustCompile(`^\d{4}$`)

// RegisterInput holds parameters for account registration.
type RegisterInput struct {
	FullName string
	Email    string
	Password string
}

// Validate validates the register input.
func (i RegisterInput) Validate() error {
	if strings.TrimSpace(i.Email) == "" || i.Password == "" {
		return domain.NewValidationError("credentials", "Email and password are required")
	}
	return nil
}

// LoginInput holds parameters for a password login.
type LoginInput struct {
	Email    string
	Password string
}

// Validate validates the login input.
func (i LoginInput) Validate() error {
	if strings.TrimSpace(i.Email) == "" || i.Password == "" {
		return domain.NewValidationError("credentials", "Email and password are required")
	}
	return nil
}

// ResetPasswordInput holds parameters for completing a password reset.
// ConfirmPassword is checked only when set.
type ResetPasswordInput struct {
	Token           string
	OTP             string
	NewPassword     string
	ConfirmPassword string
}

// Validate checks the fields in the order the form presents them and
// reports the first problem.
func (i ResetPasswordInput) Validate() error {
	switch {
	case strings.TrimSpace(i.Token) == "":
		return domain.NewValidationError("token", "Reset token is required")
	case i.OTP == "":
		return domain.NewValidationError("otp", "OTP is required")
	case !otpPattern.MatchString(i.OTP):
		return domain.NewValidationError("otp", "OTP must be 4 digits")
	case strings.TrimSpace(i.NewPassword) == "":
		return domain.NewValidationError("new_password", "New password is required")
	case len(i.NewPassword) < minPasswordLength:
		return domain.NewValidationError("new_password", "Password must be at least 6 characters long")
	case i.ConfirmPassword != "" && i.ConfirmPassword != i.NewPassword:
		return domain.NewValidationError("confirm_password", "Passwords do not match")
	}
	return nil
}
