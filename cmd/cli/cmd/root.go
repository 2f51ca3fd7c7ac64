// Package cmd provides the CLI commands for checkout.
package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"checkout/core/catalog"
	"checkout/db"
	"checkout/internal/config"
	"checkout/internal/errors"
	"checkout/internal/logging"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "checkout",
	Short: "Price products and execute purchases",
	Long: `checkout computes final prices over a product catalog and executes
purchases through pluggable payment backends.

A final price is the product's base price, minus an optional coupon
discount, plus tax on the discounted amount.

Examples:
  checkout quote --product 1 --tax-number IT01234567890
  checkout quote --product 1 --tax-number GR012345678 --coupon P10
  checkout purchase --product 2 --tax-number DE012345678 --backend paypal`,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is built-in defaults)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	// Add subcommands
	rootCmd.AddCommand(quoteCmd)
	rootCmd.AddCommand(purchaseCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
}

func initConfig() {
	if cfgFile != "" {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		config.Set(cfg)
	}

	cfg := config.Get()
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}

// openStore assembles the configured catalog store for CLI commands
func openStore() (catalog.Store, error) {
	cfg := config.Get()

	var store catalog.Store
	switch cfg.Catalog.Driver {
	case "", "memory":
		store = catalog.NewFixtureStore()
	case "mysql":
		sqlStore, err := db.Open(cfg.Catalog.DSN)
		if err != nil {
			return nil, err
		}
		store = sqlStore
	default:
		return nil, errors.Newf(errors.TypeConfig, "unknown catalog driver: %s", cfg.Catalog.Driver)
	}

	if cfg.Cache.Enabled {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.Cache.Address})
		store = db.NewCachedStore(store, rdb, time.Duration(cfg.Cache.TTLSeconds)*time.Second)
	}

	return store, nil
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("checkout version 1.0.0")
	},
}

// configCmd prints the effective configuration
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := json.MarshalIndent(config.Get(), "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	},
}
