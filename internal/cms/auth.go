package cms

import (
	"context"

	"jobboard/internal/domain"
)

// AuthResponse is what the backend's authentication endpoints return. Auth
// responses are flat, not wrapped in the {data} envelope.
type AuthResponse struct {
	JWT  string      `json:"jwt"`
	User domain.User `json:"user"`
}

// Login exchanges an identifier (username or email) and password for a
// token and user.
func (c *Client) Login(ctx context.Context, identifier, password string) (AuthResponse, error) {
	body := map[string]string{"identifier": identifier, "password": password}
	var out AuthResponse
	if err := c.do(ctx, "POST", "/api/auth/local", body, &out, "Failed to login"); err != nil {
		return AuthResponse{}, err
	}
	return out, nil
}

// Register creates an account and returns a live session for it.
func (c *Client) Register(ctx context.Context, username, email, password string) (AuthResponse, error) {
	body := map[string]string{"username": username, "email": email, "password": password}
	var out AuthResponse
	if err := c.do(ctx, "POST", "/api/auth/local/register", body, &out, "Failed to register"); err != nil {
		return AuthResponse{}, err
	}
	return out, nil
}

// ForgotPassword asks the backend to mail a reset code.
func (c *Client) ForgotPassword(ctx context.Context, email string) error {
	body := map[string]string{"email": email}
	return c.do(ctx, "POST", "/api/auth/forgot-password", body, nil, "Failed to send reset password email")
}

// ResetPassword redeems a reset code for a fresh session.
func (c *Client) ResetPassword(ctx context.Context, code, password, confirmation string) (AuthResponse, error) {
	body := map[string]string{
		"code":                 code,
		"password":             password,
		"passwordConfirmation": confirmation,
	}
	var out AuthResponse
	if err := c.do(ctx, "POST", "/api/auth/reset-password", body, &out, "Failed to reset password"); err != nil {
		return AuthResponse{}, err
	}
	return out, nil
}

// Me looks up the user owning the attached bearer token, with profile
// relations populated so onboarding state is visible in one call.
func (c *Client) Me(ctx context.Context) (domain.User, error) {
	var out domain.User
	path := "/api/users/me?populate=job_seeker_profile,employer_profile"
	if err := c.do(ctx, "GET", path, nil, &out, "Failed to fetch user data"); err != nil {
		return domain.User{}, err
	}
	return out, nil
}
