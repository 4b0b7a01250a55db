package auth

import (
	"context"

	"github.com/google/uuid"
)

// staticNamespace scopes the ids the offline authenticator mints so they
// never collide with ids from a real auth service.
var staticNamespace = uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")

// Static is an offline Authenticator for local development: any credentials
// are accepted and the user id is derived deterministically from the email,
// so the same address always maps to the same profile.
type Static struct{}

func (Static) Authenticate(_ context.Context, email, _ string) (string, error) {
	if email == "" {
		return "", &AuthError{Reason: "email must not be empty"}
	}
	return uuid.NewSHA1(staticNamespace, []byte(email)).String(), nil
}
