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

// NewTablesCommand creates the tables command group.
func NewTablesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "tables",
		Aliases: []string{"table"},
		Short:   "Inspect tables",
		Long:    "List tables and fetch table schemas from the NocoDB meta API",
	}

	cmd.AddCommand(newTablesListCommand())
	cmd.AddCommand(newTablesGetCommand())
	cmd.AddCommand(newTablesColumnsCommand())

	return cmd
}

func newTablesListCommand() *cobra.Command {
	var baseID string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the tables under a base",
		RunE: func(cmd *cobra.Command, args []string) error {
			if baseID == "" {
				return constants.ErrBaseIDRequired
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			tables, err := client.Tables().ListByBase(context.Background(), baseID)
			if err != nil {
				return fmt.Errorf("listing tables: %w", err)
			}

			return outputTables(tables)
		},
	}

	cmd.Flags().StringVar(&baseID, "base", "", "base ID to list tables for")

	return cmd
}

func newTablesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get TABLE_ID",
		Short: "Fetch one table with its detailed schema",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			table, err := client.Tables().Get(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("getting table: %w", err)
			}

			return outputTables([]nocodb.Table{*table})
		},
	}
}

func newTablesColumnsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "columns TABLE_ID",
		Short: "List the columns of a table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			columns, err := client.Tables().Columns(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("listing columns: %w", err)
			}

			return outputColumns(columns)
		},
	}
}

func outputTables(tables []nocodb.Table) error {
	return renderOutput(tables, func() error {
		return outputTablesTable(tables)
	})
}

func outputTablesTable(tables []nocodb.Table) error {
	if len(tables) == 0 {
		_, _ = os.Stdout.WriteString("No tables found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Title", "Table Name")

	for _, tbl := range tables {
		_ = table.Append(tbl.ID, orNA(tbl.Title), orNA(tbl.TableName))
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("rendering tables table: %w", err)
	}

	return nil
}

func outputColumns(columns []nocodb.Column) error {
	return renderOutput(columns, func() error {
		return outputColumnsTable(columns)
	})
}

func outputColumnsTable(columns []nocodb.Column) error {
	if len(columns) == 0 {
		_, _ = os.Stdout.WriteString("No columns found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Title", "Column Name", "Type")

	for _, column := range columns {
		_ = table.Append(column.ID, orNA(column.Title), orNA(column.ColumnName), orNA(column.UIDataType))
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("rendering columns table: %w", err)
	}

	return nil
}
