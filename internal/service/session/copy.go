package session

import "github.com/Achamanp/ProjectManagentApp/internal/domain"

const (
	msgRegistered     = "Registration successful! Welcome aboard! 🎉"
	msgLoggedIn       = "Login successful! Welcome back! 👋"
	msgOAuthLoggedIn  = "OAuth login successful! Welcome! 🎉"
	msgLoggedOut      = "Successfully logged out! See you soon! 👋"
	msgResetLinkSent  = "Password reset link sent to your email! 📧"
	msgPasswordReset  = "Password reset successful! You can now login with your new password! 🎉"
	msgLoginNoToken   = "Login failed - No authentication token received"
	msgProfileFailed  = "Failed to load user profile"
	msgNoOAuthToken   = "No authentication token received from OAuth provider"
	msgUnsupportedSSO = "Unsupported OAuth provider"
)

var (
	registerCopy = domain.StatusCopy{Fallback: "Registration failed"}
	loginCopy    = domain.StatusCopy{Fallback: "Login failed"}
	profileCopy  = domain.StatusCopy{Fallback: "Failed to fetch user profile"}
	oauthCopy    = domain.StatusCopy{Fallback: "OAuth authentication failed"}

	forgotPasswordCopy = domain.StatusCopy{
		Override: map[int]string{
			403: "Access forbidden. Please check if the email is registered or contact support.",
			404: "Email not found. Please check your email address.",
			429: "Too many requests. Please try again later.",
			500: "Server error. Please try again later.",
		},
		Fallback: "Failed to send reset link",
	}

	resetPasswordCopy = domain.StatusCopy{
		Override: map[int]string{
			401: "Invalid or expired token. Please request a new password reset.",
			500: "Server error. Please try again later.",
		},
		Default: map[int]string{
			400: "Invalid request. Please check your input.",
		},
		Fallback: "Failed to reset password",
	}
)
