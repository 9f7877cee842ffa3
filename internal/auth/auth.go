// Package auth bridges a credentials-based identity provider to the
// dashboard: recognized sign-in failures become user-facing messages,
// anything else propagates unchanged.
package auth

import (
	"context"
	"errors"
	"fmt"
)

// ErrorKind discriminates recognized authentication failures.
type ErrorKind string

const (
	// KindCredentialsSignin means the supplied credentials were rejected.
	KindCredentialsSignin ErrorKind = "CredentialsSignin"
	// KindCallbackRouteError means the sign-in flow itself failed, e.g.
	// the user store was unreachable.
	KindCallbackRouteError ErrorKind = "CallbackRouteError"
)

// Error is a recognized authentication failure raised by a Provider.
type Error struct {
	Kind ErrorKind
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("auth: %s: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("auth: %s", e.Kind)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Credentials carries the raw sign-in form input.
type Credentials struct {
	Email    string
	Password string
}

// Provider attempts a credentials sign-in and returns a session token.
// Failures it recognizes are reported as *Error.
type Provider interface {
	SignIn(ctx context.Context, creds Credentials) (string, error)
}

// User-facing messages for recognized failures.
const (
	MsgInvalidCredentials = "Invalid credentials."
	MsgSomethingWentWrong = "Something went wrong."
)

// Authenticate attempts the sign-in and classifies the outcome. On
// success message is empty and token is set. A recognized failure yields
// a user message and a nil error. Anything unrecognized is returned
// unchanged so the caller's infrastructure can handle it.
func Authenticate(ctx context.Context, p Provider, creds Credentials) (token string, message string, err error) {
	token, err = p.SignIn(ctx, creds)
	if err == nil {
		return token, "", nil
	}

	var authErr *Error
	if errors.As(err, &authErr) {
		if authErr.Kind == KindCredentialsSignin {
			return "", MsgInvalidCredentials, nil
		}
		return "", MsgSomethingWentWrong, nil
	}
	return "", "", err
}
