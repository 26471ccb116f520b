package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"petstore-tools/internal/database"
	"petstore-tools/internal/schema"
)

var (
	schemaDropExisting  bool
	schemaTablesOnly    bool
	schemaSequencesOnly bool
	schemaDryRun        bool
	schemaVerbose       bool
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Create the pet store tables, sequences, and indexes",
	Long: `Create the full pet store schema: nine tables, eight sequences, and
the supporting indexes. Objects that already exist are reported as
warnings and skipped, so the command is safe to re-run.`,
	RunE: func(cmd *cobra.Command, args []string) error {
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

		color.Cyan("Connected to %s", cfg.Addr())
		exec := &database.Executor{Conn: conn, DryRun: schemaDryRun, Verbose: schemaVerbose}

		if schemaDropExisting {
			if err := dropSchema(cmd, exec); err != nil {
				return err
			}
		}

		if !schemaTablesOnly {
			for _, name := range schema.SequenceOrder {
				if err := exec.Create(ctx, "sequence", name, schema.Sequences[name]); err != nil {
					return err
				}
			}
		}

		if !schemaSequencesOnly {
			for _, name := range schema.TableOrder {
				if err := exec.Create(ctx, "table", name, schema.Tables[name]); err != nil {
					return err
				}
			}
			for _, name := range schema.IndexOrder {
				if err := exec.Create(ctx, "index", name, schema.Indexes[name]); err != nil {
					return err
				}
			}
		}

		if schemaDryRun {
			color.Cyan("Dry run complete, nothing was executed")
			return nil
		}

		color.Green("✓ Schema setup complete")
		return nil
	},
}

func dropSchema(cmd *cobra.Command, exec *database.Executor) error {
	ctx := cmd.Context()

	if !schemaSequencesOnly {
		for _, name := range schema.DropOrder {
			sql := fmt.Sprintf("DROP TABLE %s CASCADE", name)
			if err := exec.Drop(ctx, "table", name, sql); err != nil {
				return err
			}
		}
	}
	if !schemaTablesOnly {
		for _, name := range schema.SequenceDropOrder {
			sql := fmt.Sprintf("DROP SEQUENCE %s", name)
			if err := exec.Drop(ctx, "sequence", name, sql); err != nil {
				return err
			}
		}
	}
	return nil
}

func init() {
	rootCmd.AddCommand(schemaCmd)

	schemaCmd.Flags().BoolVar(&schemaDropExisting, "drop-existing", false, "Drop existing objects before creating")
	schemaCmd.Flags().BoolVar(&schemaTablesOnly, "tables-only", false, "Create tables and indexes, skip sequences")
	schemaCmd.Flags().BoolVar(&schemaSequencesOnly, "sequences-only", false, "Create sequences, skip tables and indexes")
	schemaCmd.Flags().BoolVar(&schemaDryRun, "dry-run", false, "Print DDL without executing it")
	schemaCmd.Flags().BoolVar(&schemaVerbose, "verbose", false, "Print each statement before executing")

	schemaCmd.MarkFlagsMutuallyExclusive("tables-only", "sequences-only")
}
