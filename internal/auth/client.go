package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AuthError reports rejected credentials. It is user-visible and never
// retried automatically.
type AuthError struct {
	Reason string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("authentication failed: %s", e.Reason)
}

// Authenticator exchanges credentials for the opaque user id assigned by the
// remote auth system.
type Authenticator interface {
	Authenticate(ctx context.Context, email, password string) (string, error)
}

// Client authenticates against an HTTP auth service that answers with a JWT.
// The user id is the token's subject claim.
type Client struct {
	url    string
	secret []byte
	http   *http.Client
}

// NewClient creates an auth client for the given endpoint. The secret is the
// HMAC key the auth service signs its tokens with.
func NewClient(url, secret string) *Client {
	return &Client{
		url:    url,
		secret: []byte(secret),
		http:   &http.Client{Timeout: 15 * time.Second},
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// Authenticate posts the credentials and verifies the returned token.
func (c *Client) Authenticate(ctx context.Context, email, password string) (string, error) {
	body, err := json.Marshal(loginRequest{Email: email, Password: password})
	if err != nil {
		return "", fmt.Errorf("failed to marshal login request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build login request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("auth request failed: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return "", &AuthError{Reason: "invalid email or password"}
	case resp.StatusCode != http.StatusOK:
		return "", fmt.Errorf("auth service returned status %d", resp.StatusCode)
	}

	var lr loginResponse
	if err := json.NewDecoder(resp.Body).Decode(&lr); err != nil {
		return "", fmt.Errorf("failed to decode auth response: %w", err)
	}

	return c.userIDFromToken(lr.Token)
}

func (c *Client) userIDFromToken(raw string) (string, error) {
	token, err := jwt.ParseWithClaims(raw, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return c.secret, nil
	})
	if err != nil {
		return "", &AuthError{Reason: "invalid token"}
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", &AuthError{Reason: "token carries no subject"}
	}
	return claims.Subject, nil
}
