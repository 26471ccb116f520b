package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"petstore-tools/internal/config"
)

var Version = "1.3.0"

func showBanner() {
	greenColor := color.New(color.FgGreen, color.Bold)

	banner := []string{
		"╔══════════════════════════════════════════════════╗",
		"║   ██████╗ ███████╗████████╗███████╗               ║",
		"║   ██╔══██╗██╔════╝╚══██╔══╝██╔════╝               ║",
		"║   ██████╔╝█████╗     ██║   ███████╗               ║",
		"║   ██╔═══╝ ██╔══╝     ██║   ╚════██║               ║",
		"║   ██║     ███████╗   ██║   ███████║               ║",
		"║   ╚═╝     ╚══════╝   ╚═╝   ╚══════╝               ║",
		"║                                                   ║",
		"║       🐾 Pet Store Demo Data Toolkit 🐾           ║",
		"╚══════════════════════════════════════════════════╝",
	}

	for _, line := range banner {
		greenColor.Println(line)
	}

	fmt.Print("              ")
	color.New(color.FgCyan, color.Bold).Print("Version: ")
	color.New(color.FgYellow, color.Bold).Printf("%s\n", Version)
}

var rootCmd = &cobra.Command{
	Use:   "petstore",
	Short: "Create, populate, and exercise a pet store demo database",
	Long: `
petstore is a toolkit for building demo databases that look alive.

It creates a pet store schema, fills it with realistic fake data, and
keeps generating new orders and products in the background so the
database always has fresh activity to query against.

Commands:
- schema    create or drop the pet store tables, sequences, and indexes
- generate  load initial data and run the real-time generators
- catalog   build the standalone catalog/inventory/items schema
- rowcount  report row counts for every table in the database`,

	Run: func(cmd *cobra.Command, args []string) {
		showVersion, _ := cmd.Flags().GetBool("version")
		if showVersion {
			fmt.Printf("petstore CLI version %s\n", Version)
			return
		}

		showBanner()
		fmt.Println()
		cmd.Help()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringP("host", "H", "localhost", "Database host")
	rootCmd.PersistentFlags().IntP("port", "P", 5432, "Database port")
	rootCmd.PersistentFlags().StringP("service", "s", "petstore", "Database name")
	rootCmd.PersistentFlags().StringP("user", "u", "master", "Database user")
	rootCmd.PersistentFlags().StringP("password", "p", "", "Database password (or set DB_PASSWORD)")

	viper.BindPFlag("host", rootCmd.PersistentFlags().Lookup("host"))
	viper.BindPFlag("port", rootCmd.PersistentFlags().Lookup("port"))
	viper.BindPFlag("service", rootCmd.PersistentFlags().Lookup("service"))
	viper.BindPFlag("user", rootCmd.PersistentFlags().Lookup("user"))
	viper.BindPFlag("password", rootCmd.PersistentFlags().Lookup("password"))

	rootCmd.Flags().BoolP("version", "v", false, "Show CLI version")
}

func initConfig() {
	if err := godotenv.Load(); err != nil {
		godotenv.Load(".env.local")
	}

	config.BindEnv()
	viper.AutomaticEnv()
}

func loadConnection() (*config.Connection, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}
