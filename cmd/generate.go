package cmd

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"petstore-tools/internal/config"
	"petstore-tools/internal/database"
	"petstore-tools/internal/fakes"
	"petstore-tools/internal/generator"
	"petstore-tools/internal/populate"
	"petstore-tools/internal/registry"
)

var (
	genCounts          = populate.DefaultCounts
	genOrderInterval   time.Duration
	genProductInterval time.Duration
	genOrdersPerTick   int
	genProductsPerTick int
	genMaxFailures     int
	genNoTruncate      bool
	genNoInitialData   bool
	genNoRealtime      bool
	genSetupOnly       bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Load initial data and run the real-time generators",
	Long: `Populate the pet store schema with fake suppliers, employees,
customers, products, pets, and care logs, then keep the database alive
with two background generators: one inserting orders with line items,
one inserting new products. Press Ctrl-C to stop.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConnection()
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		conn, err := database.Connect(ctx, cfg)
		if err != nil {
			return err
		}
		defer conn.Close(context.Background())

		color.Cyan("Connected to %s", cfg.Addr())

		f := fakes.New()
		reg := registry.New()
		ins := populate.NewInserter(f, reg)

		if !genNoInitialData {
			if !genNoTruncate {
				if err := populate.Truncate(ctx, conn); err != nil {
					return err
				}
			}
			pop := populate.NewPopulator(conn, ins, reg)
			if err := pop.Run(ctx, genCounts); err != nil {
				return err
			}
			color.Green("✓ Initial data load complete")
		} else if !genNoRealtime && !genSetupOnly {
			// The generators gate on the registry, so seed it from
			// whatever is already in the database.
			if err := populate.LoadRegistry(ctx, conn, reg); err != nil {
				return err
			}
		}

		if genSetupOnly || genNoRealtime {
			return nil
		}

		return runGenerators(ctx, cfg, f, reg)
	},
}

// runGenerators starts the order and product generators, each on its
// own connection, and blocks until both stop.
func runGenerators(ctx context.Context, cfg *config.Connection, f *fakes.Fakes, reg *registry.Registry) error {
	orderConn, err := database.Connect(ctx, cfg)
	if err != nil {
		return err
	}
	defer orderConn.Close(context.Background())

	productConn, err := database.Connect(ctx, cfg)
	if err != nil {
		return err
	}
	defer productConn.Close(context.Background())

	orders := generator.NewOrderWorker(orderConn, f, reg)
	products := generator.NewProductWorker(productConn, f, reg)

	color.Cyan("Starting real-time generators (Ctrl-C to stop)")

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return generator.New(generator.Options{
			Name:                   "orders",
			Interval:               genOrderInterval,
			MaxConsecutiveFailures: genMaxFailures,
		}, orders.Ready, orders.Batch(genOrdersPerTick)).Run(ctx)
	})
	g.Go(func() error {
		return generator.New(generator.Options{
			Name:                   "products",
			Interval:               genProductInterval,
			MaxConsecutiveFailures: genMaxFailures,
		}, products.Ready, products.Batch(genProductsPerTick)).Run(ctx)
	})

	err = g.Wait()
	if err == nil || err == context.Canceled {
		color.Yellow("⚠ Generators stopped")
		return nil
	}
	return err
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().IntVar(&genCounts.Suppliers, "initial-suppliers", genCounts.Suppliers, "Suppliers to seed")
	generateCmd.Flags().IntVar(&genCounts.Employees, "initial-employees", genCounts.Employees, "Employees to seed")
	generateCmd.Flags().IntVar(&genCounts.Customers, "initial-customers", genCounts.Customers, "Customers to seed")
	generateCmd.Flags().IntVar(&genCounts.Products, "initial-products", genCounts.Products, "Products to seed")
	generateCmd.Flags().IntVar(&genCounts.Pets, "initial-pets", genCounts.Pets, "Pets to seed")
	generateCmd.Flags().IntVar(&genCounts.CareLogs, "initial-care-logs", genCounts.CareLogs, "Care log entries to seed")
	generateCmd.Flags().IntVar(&genCounts.DatatypeRows, "initial-datatypes-demo", genCounts.DatatypeRows, "Datatype demo rows to seed")

	generateCmd.Flags().DurationVar(&genOrderInterval, "order-interval", 30*time.Second, "Pause between order batches")
	generateCmd.Flags().DurationVar(&genProductInterval, "product-interval", 60*time.Second, "Pause between product batches")
	generateCmd.Flags().IntVar(&genOrdersPerTick, "orders-per-interval", 5, "Orders inserted per batch")
	generateCmd.Flags().IntVar(&genProductsPerTick, "products-per-interval", 3, "Products inserted per batch")
	generateCmd.Flags().IntVar(&genMaxFailures, "max-consecutive-failures", 10, "Stop a generator after this many consecutive failed batches")

	generateCmd.Flags().BoolVar(&genNoTruncate, "no-truncate", false, "Keep existing rows instead of truncating first")
	generateCmd.Flags().BoolVar(&genNoInitialData, "no-initial-data", false, "Skip the initial data load")
	generateCmd.Flags().BoolVar(&genNoRealtime, "no-realtime", false, "Skip the real-time generators")
	generateCmd.Flags().BoolVar(&genSetupOnly, "setup-only", false, "Load initial data and exit")
}
