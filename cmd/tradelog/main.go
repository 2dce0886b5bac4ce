package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tradelog/internal/database"
	"tradelog/internal/logger"
	"tradelog/internal/services"
)

var rootCmd = &cobra.Command{
	Use:   "tradelog",
	Short: "Operator tools for the tradelog journal",
	Long: `Tradelog works directly against the journal database configured by the
same DB_* / SQLITE_PATH environment variables as the API server.

Commands:
  stats   - Print overall, combined, trade or yearly statistics
  export  - Write a user's journal as a JSON backup document
  import  - Replace a user's journal with a JSON backup document
  token   - Mint a bearer token for the API

Examples:
  tradelog stats combined --user 0190b2a4-4c1e-7a3b-8d2e-1f2a3b4c5d6e
  tradelog export --user <id> -o journal.json
  tradelog token --user <id> --ttl 24h`,
	SilenceUsage: true,
}

var userID string

func init() {
	rootCmd.PersistentFlags().StringVarP(&userID, "user", "u", "", "journal owner (token subject)")
}

func main() {
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// openStore connects to the configured database and applies pending migrations.
func openStore() (*database.Manager, error) {
	dbConfig, err := database.NewConfig()
	if err != nil {
		return nil, fmt.Errorf("database config: %w", err)
	}
	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return nil, err
	}
	if err := dbManager.RunMigrations(); err != nil {
		dbManager.Close()
		return nil, err
	}
	return dbManager, nil
}

// journalServices bundles the services the commands need.
type journalServices struct {
	months services.MonthRecordServicer
	trades services.TradeServicer
	stats  services.StatsServicer
	backup services.BackupServicer
}

func withServices(fn func(journalServices) error) error {
	if userID == "" {
		return errors.New("--user is required")
	}
	dbManager, err := openStore()
	if err != nil {
		return err
	}
	defer dbManager.Close()

	db := dbManager.DB()
	months := services.NewMonthRecordService(db)
	trades := services.NewTradeService(db)
	return fn(journalServices{
		months: months,
		trades: trades,
		stats:  services.NewStatsService(months, trades),
		backup: services.NewBackupService(db),
	})
}
