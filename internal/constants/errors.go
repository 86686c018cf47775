package constants

import "errors"

// CLI configuration errors.
var (
	ErrBaseURLRequired = errors.New("base URL is required (use --base-url, NOCODB_BASE_URL, or 'nocodb login')")
	ErrTokenRequired   = errors.New("API token is required (use --token, NOCODB_TOKEN, or 'nocodb login')")
	ErrBaseIDRequired  = errors.New("base ID is required (use --base)")
	ErrVerifyFailed    = errors.New("connection verification failed")
	ErrUnknownOutput   = errors.New("unknown output format")
	ErrNoHomeDirectory = errors.New("could not determine home directory")
	ErrEmptyTokenInput = errors.New("token must not be empty")
	ErrEmptyURLInput   = errors.New("base URL must not be empty")
)
