package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"petstore-tools/internal/database"
	"petstore-tools/internal/report"
)

var (
	rowcountFormat string
	rowcountSchema string
)

var rowcountCmd = &cobra.Command{
	Use:   "rowcount",
	Short: "Report row counts for every table in the database",
	RunE: func(cmd *cobra.Command, args []string) error {
		switch rowcountFormat {
		case report.FormatTable, report.FormatJSON, report.FormatYAML:
		default:
			return fmt.Errorf("unknown format %q: expected table, json, or yaml", rowcountFormat)
		}

		cfg, err := loadConnection()
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		conn, err := database.Connect(ctx, cfg)
		if err != nil {
			return err
		}
		defer conn.Close(ctx)

		rep, err := report.Collect(ctx, conn, rowcountSchema)
		if err != nil {
			return err
		}

		return report.Render(os.Stdout, rep, rowcountFormat)
	},
}

func init() {
	rootCmd.AddCommand(rowcountCmd)

	rowcountCmd.Flags().StringVar(&rowcountFormat, "format", report.FormatTable, "Output format: table, json, or yaml")
	rowcountCmd.Flags().StringVar(&rowcountSchema, "schema", "", "Restrict the report to one schema")
}
