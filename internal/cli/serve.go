package cli

import (
	"fmt"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/ly3848/task-manager/internal/config"
	"github.com/ly3848/task-manager/internal/constants"
	"github.com/ly3848/task-manager/internal/handlers"
	"github.com/ly3848/task-manager/internal/logging"
	"github.com/ly3848/task-manager/internal/middleware"
	"github.com/ly3848/task-manager/internal/services"
	"github.com/ly3848/task-manager/internal/store"
	"github.com/ly3848/task-manager/internal/utils"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var serveSeed bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().BoolVar(&serveSeed, "seed", false, "load the demo dataset on startup")
}

func runServe(cmd *cobra.Command, args []string) error {
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
	if serveSeed {
		store.Seed(data)
	}
	authService := services.NewAuthService(data)
	reportService := services.NewReportService(data)

	gin.SetMode(cfg.GinMode)
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(logger))

	secret := cfg.SessionSecret
	if secret == "" {
		// Sessions do not outlive the process, so neither must the secret.
		secret, err = utils.RandomString(32)
		if err != nil {
			return fmt.Errorf("failed to generate session secret: %w", err)
		}
		logger.Warn("SESSION_SECRET not set, generated a per-run secret")
	}

	sessionStore := cookie.NewStore([]byte(secret))
	sessionStore.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   cfg.GinMode == gin.ReleaseMode,
		SameSite: http.SameSiteLaxMode,
	})
	r.Use(sessions.Sessions(constants.SessionCookieName, sessionStore))

	handlers.RegisterRoutes(r, data, authService, reportService)

	logger.Info("server starting",
		zap.String("addr", cfg.Addr),
		zap.String("app", appConfig.AppName()),
		zap.String("version", appConfig.Version()))
	if err := r.Run(cfg.Addr); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
