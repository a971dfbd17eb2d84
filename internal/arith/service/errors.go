package service

import "errors"

var (
	ErrConflict           = errors.New("conflict")
	ErrInvalidCredentials = errors.New("invalid_credentials")
	ErrInvalidInput       = errors.New("invalid_request")
	ErrUnknownUser        = errors.New("unknown_user")
	ErrStorageUnavailable = errors.New("storage_unavailable")

	ErrTokenMalformed        = errors.New("malformed_token")
	ErrTokenInvalidSignature = errors.New("invalid_token_signature")
	ErrTokenExpired          = errors.New("token_expired")
	ErrTokenInvalid          = errors.New("invalid_token")
)
