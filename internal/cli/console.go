package cli

import (
	"fmt"
	"os"

	"github.com/ly3848/task-manager/internal/config"
	"github.com/ly3848/task-manager/internal/console"
	"github.com/ly3848/task-manager/internal/logging"
	"github.com/ly3848/task-manager/internal/services"
	"github.com/ly3848/task-manager/internal/store"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var consoleCmd = &cobra.Command{
	Use:   "console",
	Short: "Run the interactive text-menu console",
	RunE:  runConsole,
}

func runConsole(cmd *cobra.Command, args []string) error {
	cfg := config.LoadServer()

	logger, err := logging.NewLogger(cfg.LogFile)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	zap.ReplaceGlobals(logger)
	defer func() {
		_ = logger.Sync()
	}()

	appConfig, err := config.Load(cfg.ConfigFile)
	if err != nil {
		logger.Warn("falling back to default config", zap.Error(err))
		appConfig = config.New(cfg.ConfigFile)
	}

	data := store.NewDataManager()
	authService := services.NewAuthService(data)
	reportService := services.NewReportService(data)

	app := console.New(data, authService, reportService, appConfig, os.Stdin, os.Stdout)
	app.Run()
	return nil
}
