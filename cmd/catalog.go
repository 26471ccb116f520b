package cmd

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"petstore-tools/internal/catalog"
	"petstore-tools/internal/database"
	"petstore-tools/internal/fakes"
)

var catalogOpts = catalog.Options{Counts: catalog.DefaultCounts}

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Create and populate the catalog/inventory/items schema",
	Long: `Build the standalone catalog demo: a catalog table, per-warehouse
inventory, and individual items referencing both. All rows are committed
in a single transaction.`,
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

		return catalog.NewRunner(conn, fakes.New()).Run(ctx, catalogOpts)
	},
}

func init() {
	rootCmd.AddCommand(catalogCmd)

	catalogCmd.Flags().IntVar(&catalogOpts.Counts.Catalog, "catalog-rows", catalogOpts.Counts.Catalog, "Catalog entries to insert")
	catalogCmd.Flags().IntVar(&catalogOpts.Counts.Inventory, "inventory-rows", catalogOpts.Counts.Inventory, "Inventory records to insert")
	catalogCmd.Flags().IntVar(&catalogOpts.Counts.Items, "items-rows", catalogOpts.Counts.Items, "Items to insert")
	catalogCmd.Flags().BoolVar(&catalogOpts.DropExisting, "drop-existing", false, "Drop existing catalog tables first")
	catalogCmd.Flags().BoolVar(&catalogOpts.NoTruncate, "no-truncate", false, "Keep existing rows instead of truncating first")
	catalogCmd.Flags().BoolVar(&catalogOpts.DryRun, "dry-run", false, "Print DDL without executing it")
	catalogCmd.Flags().BoolVar(&catalogOpts.Verbose, "verbose", false, "Print each statement before executing")
}
