package nocodb

import (
	"strings"
	"time"
)

// Config represents client configuration for building a nocodb.Client.
//
// BaseURL and APIToken are required; everything else has a usable default.
// TLS certificate verification is disabled unless TLSVerify is set, matching
// the common case of self-hosted NocoDB instances with self-signed
// certificates. Set TLSVerify for anything facing the public internet.
type Config struct {
	// BaseURL is the root URL of the NocoDB instance, e.g.
	// "https://app.nocodb.example". A single trailing slash is stripped.
	BaseURL string

	// APIToken is the xc-token value used to authenticate requests.
	APIToken string

	// Timeout bounds each request. Defaults to 10 seconds.
	Timeout time.Duration

	// UserAgent overrides the default User-Agent header.
	UserAgent string

	// TLSVerify enables TLS certificate verification.
	TLSVerify bool

	// RetryMax is the number of retries for failed requests. The default is
	// zero: the library never retries on its own.
	RetryMax int

	// RetryWaitMin and RetryWaitMax bound the backoff between retries when
	// RetryMax is set.
	RetryWaitMin time.Duration
	RetryWaitMax time.Duration

	// Logger receives debug output when Debug is set.
	Logger Logger

	// Debug enables request/response logging through Logger.
	Debug bool
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Validate checks that the required fields are present and non-empty.
func (c *Config) Validate() error {
	if c == nil || strings.TrimSpace(c.BaseURL) == "" {
		return &ConfigError{Field: "base_url"}
	}

	if strings.TrimSpace(c.APIToken) == "" {
		return &ConfigError{Field: "api_token"}
	}

	return nil
}

// NormalizedBaseURL returns BaseURL with exactly one trailing slash removed.
func (c *Config) NormalizedBaseURL() string {
	return strings.TrimSuffix(c.BaseURL, "/")
}
