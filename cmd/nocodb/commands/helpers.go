package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/hydrantlabs/nocodb-go/internal/constants"
	"github.com/hydrantlabs/nocodb-go/pkg/nocodb"
	"github.com/hydrantlabs/nocodb-go/pkg/nococlient"
)

// Output formats.
const (
	OutputFormatJSON  = "json"
	OutputFormatYAML  = "yaml"
	OutputFormatTable = "table"
)

// NotAvailable is printed for absent table cells.
const NotAvailable = "N/A"

// CreateClient builds a nocodb.Client from the resolved CLI configuration.
func CreateClient() (nocodb.Client, error) {
	baseURL := viper.GetString("base-url")
	if baseURL == "" {
		return nil, constants.ErrBaseURLRequired
	}

	token := viper.GetString("token")
	if token == "" {
		return nil, constants.ErrTokenRequired
	}

	return nococlient.New(&nocodb.Config{
		BaseURL:   baseURL,
		APIToken:  token,
		TLSVerify: viper.GetBool("tls-verify"),
		Debug:     viper.GetBool("verbose"),
	})
}

// renderOutput writes v in the selected output format, calling tableFn for
// table output.
func renderOutput(v interface{}, tableFn func() error) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return encodeJSON(v)
	case OutputFormatYAML:
		return encodeYAML(v)
	case OutputFormatTable, "":
		return tableFn()
	default:
		return fmt.Errorf("%w: %s", constants.ErrUnknownOutput, output)
	}
}

// encodeJSON writes v to stdout as indented JSON.
func encodeJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("encoding JSON output: %w", err)
	}

	return nil
}

// encodeYAML writes v to stdout as YAML.
func encodeYAML(v interface{}) error {
	encoder := yaml.NewEncoder(os.Stdout)
	encoder.SetIndent(constants.JSONIndentSize)

	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("encoding YAML output: %w", err)
	}

	return nil
}

// orNA substitutes NotAvailable for empty table cells.
func orNA(value string) string {
	if value == "" {
		return NotAvailable
	}

	return value
}
