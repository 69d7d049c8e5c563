package client

import (
	"context"
	"net/http"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login authenticates against the gateway and returns a client bound to the
// session token
func (c *Client) Login(ctx context.Context, email, password string) (*Client, error) {
	var resp struct {
		envelope
		Token string `json:"token"`
		User  struct {
			ID       uint   `json:"id"`
			UserType string `json:"userType"`
		} `json:"user"`
	}
	if err := c.do(ctx, "login", http.MethodPost, "/auth/login", loginRequest{Email: email, Password: password}, &resp); err != nil {
		return nil, err
	}
	return c.WithToken(resp.Token), nil
}

// Profile fetches the authenticated user's account record
func (c *Client) Profile(ctx context.Context) (*Profile, error) {
	var resp struct {
		envelope
		User Profile `json:"user"`
	}
	if err := c.do(ctx, "fetch profile", http.MethodGet, "/auth/profile", nil, &resp); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

// UpdateProfile updates username and/or phone number; nil fields are left
// unchanged
func (c *Client) UpdateProfile(ctx context.Context, username, phoneNumber *string) (*Profile, error) {
	body := struct {
		Username    *string `json:"username,omitempty"`
		PhoneNumber *string `json:"phoneNumber,omitempty"`
	}{Username: username, PhoneNumber: phoneNumber}

	var resp struct {
		envelope
		User Profile `json:"user"`
	}
	if err := c.do(ctx, "update profile", http.MethodPut, "/auth/profile", body, &resp); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

// ChangePassword updates the account password
func (c *Client) ChangePassword(ctx context.Context, currentPassword, newPassword string) error {
	body := struct {
		CurrentPassword string `json:"currentPassword"`
		NewPassword     string `json:"newPassword"`
	}{CurrentPassword: currentPassword, NewPassword: newPassword}

	var resp envelope
	return c.do(ctx, "change password", http.MethodPut, "/auth/profile/password", body, &resp)
}
