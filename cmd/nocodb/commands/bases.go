package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/hydrantlabs/nocodb-go/pkg/nocodb"
)

// NewBasesCommand creates the bases command group.
func NewBasesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "bases",
		Aliases: []string{"base"},
		Short:   "Inspect bases",
		Long:    "List bases and fetch base schemas from the NocoDB meta API",
	}

	cmd.AddCommand(newBasesListCommand())
	cmd.AddCommand(newBasesGetCommand())
	cmd.AddCommand(newBasesSchemaCommand())

	return cmd
}

func newBasesListCommand() *cobra.Command {
	var workspaceID string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List bases",
		Long:  "List all bases, optionally scoped to one workspace",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			var bases []nocodb.Base
			if workspaceID != "" {
				bases, err = client.Bases().ListWorkspace(ctx, workspaceID)
			} else {
				bases, err = client.Bases().List(ctx)
			}

			if err != nil {
				return fmt.Errorf("listing bases: %w", err)
			}

			return outputBases(bases)
		},
	}

	cmd.Flags().StringVar(&workspaceID, "workspace", "", "workspace ID to scope the listing")

	return cmd
}

func newBasesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get BASE_ID",
		Short: "Fetch one base",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			base, err := client.Bases().Get(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("getting base: %w", err)
			}

			return outputBases([]nocodb.Base{*base})
		},
	}
}

func newBasesSchemaCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "schema BASE_ID",
		Short: "Fetch a base with the detailed schema of every table",
		Long: `Fetch one base plus its tables with full column details.

This issues one request for the base, one for its table listing, and one per
table, so large bases take a while.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			schema, err := client.Bases().Schema(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("fetching base schema: %w", err)
			}

			return outputBaseSchema(schema)
		},
		Args: cobra.ExactArgs(1),
	}
}

func outputBases(bases []nocodb.Base) error {
	return renderOutput(bases, func() error {
		return outputBasesTable(bases)
	})
}

func outputBasesTable(bases []nocodb.Base) error {
	if len(bases) == 0 {
		_, _ = os.Stdout.WriteString("No bases found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Title", "Type")

	for _, base := range bases {
		_ = table.Append(base.ID, orNA(base.Title), orNA(base.Type))
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("rendering bases table: %w", err)
	}

	return nil
}

func outputBaseSchema(schema *nocodb.BaseSchema) error {
	return renderOutput(schema, func() error {
		return outputBaseSchemaTable(schema)
	})
}

func outputBaseSchemaTable(schema *nocodb.BaseSchema) error {
	_, _ = fmt.Fprintf(os.Stdout, "Base: %s (%s)\n\n", orNA(schema.Base.Title), schema.Base.ID)

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Table", "ID", "Columns")

	for _, tbl := range schema.Tables {
		_ = table.Append(orNA(tbl.Title), tbl.ID, strconv.Itoa(len(tbl.Columns)))
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("rendering schema table: %w", err)
	}

	return nil
}
