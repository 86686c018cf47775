package constants

import "time"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// HTTP and network timeouts.
const (
	// DefaultRequestTimeout bounds every API request.
	DefaultRequestTimeout = 10 * time.Second
)

// Retry limits. The library itself never retries; these bound the backoff
// when a caller opts in through Config.RetryMax.
const (
	// DefaultRetryWaitMin is the minimum wait time between retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum wait time between retries.
	DefaultRetryWaitMax = 10 * time.Second
)

// API paths.
const (
	// MetaBasesPath lists bases from the global meta endpoint.
	MetaBasesPath = "/api/v2/meta/bases"

	// WorkspacesPath is the root of the workspace-scoped endpoints.
	WorkspacesPath = "/api/v2/workspaces"

	// MetaTablesPath is the root of the single-table endpoints.
	MetaTablesPath = "/api/v2/meta/tables"
)

// Output formatting.
const (
	// JSONIndentSize is the indent width for JSON and YAML output.
	JSONIndentSize = 2
)
