// Package auth provides the authentication building blocks: password
// hashing, JWT issuance and verification, the registration/login flow, and
// the request authenticator that resolves bearer tokens to live users.
package auth

import "errors"

// Common authentication service errors
var (
	// ErrInvalidToken indicates the token format is invalid, the signature
	// doesn't match, or the issuer/audience are wrong.
	ErrInvalidToken = errors.New("invalid authentication token")

	// ErrExpiredToken indicates the token has expired.
	ErrExpiredToken = errors.New("authentication token has expired")

	// ErrTokenNotYetValid indicates the token is not yet valid (nbf claim in the future).
	ErrTokenNotYetValid = errors.New("authentication token not yet valid")

	// ErrMissingToken indicates a token was expected but not provided.
	ErrMissingToken = errors.New("authentication token is missing")

	// ErrInvalidCredentials is the uniform login failure. Unknown email and
	// wrong password deliberately produce the same error so callers cannot
	// enumerate registered users.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
