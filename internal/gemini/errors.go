package gemini

import "errors"

var (
	ErrUnauthorized = errors.New("gemini: invalid or missing API key")
	ErrRateLimited  = errors.New("gemini: rate limited")
	ErrUnavailable  = errors.New("gemini: service unavailable")
)
