package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/davinsyabanp/SakuKu/internal"
	"github.com/davinsyabanp/SakuKu/internal/budget"
	"github.com/davinsyabanp/SakuKu/internal/notify"
	"github.com/davinsyabanp/SakuKu/internal/report"
	"github.com/davinsyabanp/SakuKu/internal/storage"
	"github.com/davinsyabanp/SakuKu/internal/transaction"
	"github.com/davinsyabanp/SakuKu/pkg/logger"
)

var (
	clearData   bool
	skipConfirm bool
)

var rootCmd = &cobra.Command{
	Use:   "sakuku",
	Short: "SakuKu personal finance tracker",
	Long:  `Track income and expense transactions, balances and per-category budgets, all stored locally.`,

	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// Dependencies wires the persistence adapter, ledger, aggregation engine
// and budget tracker for a command invocation.
type Dependencies struct {
	Config   *internal.Config
	Notifier notify.Notifier
	Store    *storage.Store
	Ledger   *transaction.Service
	Reports  *report.Service
	Budget   *budget.Service
}

func initDependencies() (*Dependencies, error) {
	cfg, err := loadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Init(cfg.Logging.Level, cfg.Logging.Format)

	notifier := notify.NewTerminal(os.Stdout)

	kv, err := storage.NewKV(cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	store := storage.NewStore(kv, notifier, logger.L())
	ledger := transaction.NewService(store, logger.L())
	reports := report.NewService(ledger, logger.L())
	budgets := budget.NewService(store, reports, logger.L())

	return &Dependencies{
		Config:   cfg,
		Notifier: notifier,
		Store:    store,
		Ledger:   ledger,
		Reports:  reports,
		Budget:   budgets,
	}, nil
}

func loadConfig(path string) (*internal.Config, error) {
	// A local .env is optional; missing files are not an error.
	_ = godotenv.Load()

	if os.Getenv("SAKUKU_ENV") == "production" {
		cfg := internal.LoadConfigFromEnv()
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("error validating config from environment: %w", err)
		}
		return cfg, nil
	}

	defaults := internal.DefaultConfig()

	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yml")
	v.SetEnvPrefix("SAKUKU")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("storage.backend", defaults.Storage.Backend)
	v.SetDefault("storage.data_dir", defaults.Storage.DataDir)
	v.SetDefault("storage.sqlite_path", defaults.Storage.SQLitePath)
	v.SetDefault("currency.symbol", defaults.Currency.Symbol)
	v.SetDefault("logging.level", defaults.Logging.Level)
	v.SetDefault("logging.format", defaults.Logging.Format)

	if err := v.ReadInConfig(); err != nil {
		// The config file itself is optional; only a malformed one fails.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	var cfg internal.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("error validating config: %w", err)
	}

	return &cfg, nil
}

func init() {
	deleteCmd.Flags().BoolVarP(&skipConfirm, "yes", "y", false, "Delete without asking for confirmation")
	seedCmd.Flags().BoolVar(&clearData, "clear", false, "Clear existing data before seeding")

	reportCmd.AddCommand(reportCategoryCmd)
	reportCmd.AddCommand(reportMonthlyCmd)

	budgetCmd.AddCommand(budgetSetCmd)
	budgetCmd.AddCommand(budgetStatusCmd)

	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(balanceCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(budgetCmd)
	rootCmd.AddCommand(seedCmd)
}
