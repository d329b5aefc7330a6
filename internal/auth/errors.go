package auth

import "errors"

var (
	// ErrInvalidToken indicates a malformed or otherwise unparseable token.
	ErrInvalidToken = errors.New("auth: invalid token")
	// ErrExpiredToken indicates a well-formed token past its expiry.
	ErrExpiredToken = errors.New("auth: token expired")
	// ErrSignatureMismatch indicates the token signature does not verify.
	ErrSignatureMismatch = errors.New("auth: signature mismatch")

	// ErrAccountNotFound and ErrInvalidCredentials stay distinct internally
	// so logs can tell them apart; the HTTP layer reports both the same way.
	ErrAccountNotFound    = errors.New("auth: account not found")
	ErrInvalidCredentials = errors.New("auth: invalid credentials")
)
