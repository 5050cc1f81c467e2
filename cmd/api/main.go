package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/construction-site/internal/config"
	dbpkg "github.com/BruksfildServices01/construction-site/internal/db"
	"github.com/BruksfildServices01/construction-site/internal/logging"
)

// rootCmd runs the server when no subcommand is given.
var rootCmd = &cobra.Command{
	Use:           "api",
	Short:         "Construction company site and back office",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd, migrateCmd, seedCmd, createAdminCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// bootstrap loads config, the logger and the database shared by every
// command.
func bootstrap() (*config.Config, *zap.Logger, *gorm.DB, error) {
	cfg := config.Load()
	log, db, err := connect(cfg)
	if err != nil {
		return nil, nil, nil, err
	}
	return cfg, log, db, nil
}

func connect(cfg *config.Config) (*zap.Logger, *gorm.DB, error) {
	log, err := logging.New(cfg.AppEnv, cfg.LogLevel)
	if err != nil {
		return nil, nil, err
	}

	db, err := dbpkg.NewDB(cfg, log)
	if err != nil {
		_ = log.Sync()
		return nil, nil, err
	}

	return log, db, nil
}
