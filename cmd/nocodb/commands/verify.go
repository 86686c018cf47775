package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/hydrantlabs/nocodb-go/internal/constants"
	"github.com/hydrantlabs/nocodb-go/pkg/nocodb"
)

// NewVerifyCommand creates the verify command.
func NewVerifyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Verify connectivity to the NocoDB instance",
		Long: `Probe the configured NocoDB instance.

The probe tries several auth header schemes against the bases endpoint and
reports which one worked, or a diagnostic for the last failure. The command
exits non-zero when no scheme succeeds.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			check := client.VerifyConnection(context.Background())

			if err := outputCheck(check); err != nil {
				return err
			}

			if !check.Success {
				return constants.ErrVerifyFailed
			}

			return nil
		},
	}
}

func outputCheck(check *nocodb.ConnectionCheck) error {
	return renderOutput(check, func() error {
		return outputCheckTable(check)
	})
}

func outputCheckTable(check *nocodb.ConnectionCheck) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Property", "Value")

	_ = table.Append("Success", fmt.Sprintf("%v", check.Success))
	_ = table.Append("Message", check.Message)

	if check.AuthMethod != "" {
		_ = table.Append("Auth Method", check.AuthMethod)
	}

	if check.LastError != "" {
		_ = table.Append("Last Error", check.LastError)
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("rendering verify table: %w", err)
	}

	return nil
}
