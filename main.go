package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"curanet/internal/cache"
	"curanet/internal/config"
	"curanet/internal/logging"
	"curanet/internal/middleware"
	"curanet/internal/models"
	"curanet/internal/repository"
	"curanet/internal/routes"
	"curanet/internal/utils"
)

func main() {
	if err := rootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "curanet",
		Short:        "CuraNet hospital, doctor and patient records API",
		SilenceUsage: true,
	}
	root.AddCommand(serveCmd(), migrateCmd(), tokenCmd())
	return root
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context())
		},
	}
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the hospitals, doctors and patients tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			logging.Init(cfg.Environment, cfg.LogLevel)

			db, err := models.Open(databaseConfig(cfg))
			if err != nil {
				return err
			}
			defer closeDB(db)

			if err := models.Migrate(db); err != nil {
				return err
			}
			log.Info().Msg("migrations applied")
			return nil
		},
	}
}

func tokenCmd() *cobra.Command {
	var subject, role string

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Print a signed bearer token for the write routes",
		RunE: func(cmd *cobra.Command, args []string) error {
			auth, err := config.LoadAuth()
			if err != nil {
				return err
			}
			if auth.JWTSecret == "" {
				return errors.New("JWT_SECRET is not set")
			}
			if !models.Role(role).Valid() {
				return fmt.Errorf("unknown role %q (want admin, staff or doctor)", role)
			}

			token, err := utils.GenerateToken(subject, models.Role(role), auth.JWTSecret, auth.TokenTTL())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	cmd.Flags().StringVar(&subject, "subject", "cli", "token subject")
	cmd.Flags().StringVar(&role, "role", string(models.RoleAdmin), "role claim: admin, staff or doctor")
	return cmd
}

func databaseConfig(cfg *config.Config) models.DatabaseConfig {
	return models.DatabaseConfig{
		URL:          cfg.Database.URL,
		MaxOpenConns: cfg.Database.MaxOpenConns,
		MaxIdleConns: cfg.Database.MaxIdleConns,
	}
}

// closeDB releases the connection pool behind db.
func closeDB(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Warn().Err(err).Msg("get sql handle")
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Warn().Err(err).Msg("close database")
	}
}

func runServer(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logging.Init(cfg.Environment, cfg.LogLevel)

	db, err := models.Open(databaseConfig(cfg))
	if err != nil {
		return fmt.Errorf("error connecting to database: %w", err)
	}
	defer closeDB(db)

	if cfg.Database.AutoMigrate {
		if err := models.Migrate(db); err != nil {
			return err
		}
	}
	store := repository.NewGormStore(db)

	var c cache.Cache
	if cfg.Cache.RedisURL != "" {
		redisCache, err := cache.NewRedis(ctx, cfg.Cache.RedisURL, cfg.Cache.TTL)
		if err != nil {
			return err
		}
		defer redisCache.Close()
		c = redisCache
		log.Info().Dur("ttl", cfg.Cache.TTL).Msg("redis cache enabled")
	}

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(middleware.RequestID(), middleware.RequestLogger(), middleware.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.Origins
	corsConfig.AllowCredentials = true
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.RequestIDHeader}
	corsConfig.ExposeHeaders = []string{middleware.RequestIDHeader}
	router.Use(cors.New(corsConfig))

	routes.SetupRoutes(router, store, c, cfg)
	if cfg.AuthEnabled() {
		log.Info().Msg("bearer tokens required on write routes")
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-quit:
	}

	log.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	log.Info().Msg("server stopped")
	return nil
}
