package model

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by stores when a lookup matches no row. It is a
// normal empty result for callers that expect absence, not a storage failure.
var ErrNotFound = errors.New("record not found")

var (
	// ErrInvalidCredentials covers both "no such user" and "wrong password"
	// so that authentication never reveals whether an email is registered.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrEmailTaken is the registration-time duplicate error. Unlike
	// authentication, registration deliberately names the conflict.
	ErrEmailTaken = errors.New("user with this email already exists")
)

// ErrTokenInvalid is the umbrella verification failure. The more specific
// token errors below wrap it, so errors.Is(err, ErrTokenInvalid) matches
// any of them.
var ErrTokenInvalid = errors.New("token is invalid")

var (
	ErrTokenMalformed = fmt.Errorf("%w: malformed or untrusted", ErrTokenInvalid)
	ErrTokenExpired   = fmt.Errorf("%w: expired", ErrTokenInvalid)
	ErrTokenRevoked   = fmt.Errorf("%w: revoked", ErrTokenInvalid)
	ErrTokenKind      = fmt.Errorf("%w: unexpected token kind", ErrTokenInvalid)
	ErrTokenOwner     = fmt.Errorf("%w: subject does not match owner", ErrTokenInvalid)
)

var (
	// ErrWrongPassword is returned by the change-password flow when the
	// presented current password does not match the stored digest.
	ErrWrongPassword = errors.New("current password is incorrect")

	// ErrPasswordUnchanged rejects a new password equal to the old one.
	ErrPasswordUnchanged = errors.New("new password cannot be the same as the old password")
)
