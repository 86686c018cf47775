package client

import (
	"context"
	"encoding/json"
	"errors"
	stdhttp "net/http"

	"github.com/hydrantlabs/nocodb-go/internal/constants"
	"github.com/hydrantlabs/nocodb-go/internal/http"
	"github.com/hydrantlabs/nocodb-go/pkg/nocodb"
)

// authScheme is one candidate auth header layout tried by the probe.
type authScheme struct {
	name   string
	header string
	prefix string
}

// authSchemes are tried in this fixed order. xc-token is the scheme the
// normal request path uses; the rest cover older server versions and reverse
// proxies that rewrite auth headers.
var authSchemes = []authScheme{
	{name: "xc-token", header: http.TokenHeader, prefix: ""},
	{name: "bearer", header: "Authorization", prefix: "Bearer "},
	{name: "xc-auth", header: "xc-auth", prefix: ""},
	{name: "x-auth-token", header: "X-Auth-Token", prefix: ""},
}

// probeFailure records one failed probe attempt. Exactly one of status or
// errText is meaningful; each new failure overwrites the previous one, so
// only the last attempt's detail survives for diagnostics.
type probeFailure struct {
	status  int
	errText string
}

// verifyConnection probes the bases-listing endpoint with each auth scheme in
// order, stopping at the first success. It never returns an error: every
// failure mode is folded into the structured result.
func verifyConnection(ctx context.Context, httpClient *http.Client, token string) *nocodb.ConnectionCheck {
	var last *probeFailure

	for _, scheme := range authSchemes {
		resp, err := httpClient.Do(ctx, &http.Request{
			Method:  stdhttp.MethodGet,
			Path:    constants.MetaBasesPath,
			NoAuth:  true,
			Headers: map[string]string{scheme.header: scheme.prefix + token},
		})

		if err == nil && probeSucceeded(resp) {
			return &nocodb.ConnectionCheck{
				Success:    true,
				Message:    "Connection verified",
				AuthMethod: scheme.name,
			}
		}

		last = recordFailure(resp, err)
	}

	return &nocodb.ConnectionCheck{
		Success:   false,
		Message:   connectionErrorMessage(last),
		LastError: lastErrorText(last),
	}
}

// probeSucceeded judges one attempt: HTTP 200, or a response-level success
// flag for servers that report status in the body.
func probeSucceeded(resp *http.Response) bool {
	if resp.StatusCode == stdhttp.StatusOK {
		return true
	}

	var body struct {
		Success *bool `json:"success"`
	}

	if err := json.Unmarshal(resp.Body, &body); err == nil && body.Success != nil {
		return *body.Success
	}

	return false
}

// recordFailure folds any attempt outcome into a probeFailure.
func recordFailure(resp *http.Response, err error) *probeFailure {
	if err == nil {
		if resp != nil {
			return &probeFailure{status: resp.StatusCode}
		}

		return &probeFailure{errText: "unexpected response"}
	}

	apiErr := &nocodb.APIError{}
	if errors.As(err, &apiErr) {
		return &probeFailure{status: apiErr.StatusCode}
	}

	connErr := &nocodb.ConnectionError{}
	if errors.As(err, &connErr) {
		return &probeFailure{errText: connErr.Err.Error()}
	}

	return &probeFailure{errText: err.Error()}
}

func lastErrorText(last *probeFailure) string {
	if last == nil {
		return ""
	}

	return last.errText
}
