// @title        User Consent API
// @version      1.0
// @description  使用者 CRUD 與同意管理；撤回同意即刪除使用者
// @host         localhost:8080
// @BasePath     /
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"user-consent/internal/cache"
	"user-consent/internal/config"
	"user-consent/internal/database"
	"user-consent/internal/handler/users"
	"user-consent/internal/logging"
	"user-consent/internal/metrics"
	"user-consent/internal/router"
	"user-consent/internal/store"
	"user-consent/internal/validation"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"

	_ "user-consent/docs" // 註冊 swagger 文件
)

// maxBodySize 單一請求 body 上限，超過回 413
const maxBodySize = "1M"

var (
	loadConfig      = config.Load
	newLogger       = logging.New
	newPgxPool      = database.NewPgxPool
	runMigrationsFn = database.RunMigrations
	openSQLite      = database.OpenSQLite
	migrateSQLiteFn = database.MigrateSQLite
	newRedisClient  = cache.NewRedisClient
	startServer     = func(e *echo.Echo, addr string) error { return e.Start(addr) }
	notifyShutdown  = func() <-chan os.Signal {
		ch := make(chan os.Signal, 1)
		signal.Notify(ch, os.Interrupt, syscall.SIGTERM)
		return ch
	}
	exitFunc = os.Exit
)

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("設定載入失敗: %w", err)
	}
	logger := newLogger(cfg.AppName, cfg.AppEnv, cfg.LogLevel)

	st, closeStore, err := openStore(cfg, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	if cfg.RedisAddr != "" {
		rc, err := newRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return fmt.Errorf("Redis 連線失敗: %w", err)
		}
		defer rc.Close()
		st = store.NewCached(st, rc, cfg.CacheTTL, logger)
		logger.WithField("ttl", cfg.CacheTTL).Info("user cache enabled")
	}

	m := metrics.New(cfg.AppName)
	e := newEcho(logger, m)
	router.Setup(e, users.Deps{
		Store:   st,
		Schemas: validation.MustNew(),
		Log:     logger,
		Metrics: m,
	})

	return serve(e, cfg.Addr(), cfg.ShutdownTimeout, logger)
}

// openStore 有 DATABASE_URL 時使用 PostgreSQL，否則使用 SQLite 檔案
func openStore(cfg *config.Config, logger logrus.FieldLogger) (store.UserStore, func(), error) {
	if cfg.DatabaseURL != "" {
		if err := runMigrationsFn(cfg.DatabaseURL); err != nil {
			return nil, nil, fmt.Errorf("Migration 執行失敗: %w", err)
		}
		db, err := newPgxPool(context.Background(), cfg.DatabaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("DB 連線失敗: %w", err)
		}
		logger.Info("using postgres store")
		return store.NewPostgres(db), db.Close, nil
	}

	db, err := openSQLite(cfg.SQLitePath)
	if err != nil {
		return nil, nil, fmt.Errorf("SQLite 開啟失敗: %w", err)
	}
	if err := migrateSQLiteFn(db); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("Migration 執行失敗: %w", err)
	}
	logger.WithField("path", cfg.SQLitePath).Info("using sqlite store")
	return store.NewSQLite(db), func() { db.Close() }, nil
}

func newEcho(logger *logrus.Logger, m *metrics.Metrics) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = validation.NewStructValidator()
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			entry := logger.WithFields(logrus.Fields{
				"method":     v.Method,
				"uri":        v.URI,
				"status":     v.Status,
				"latency":    v.Latency.String(),
				"request_id": v.RequestID,
			})
			if v.Error != nil {
				entry.WithError(v.Error).Error("request failed")
				return nil
			}
			entry.Info("request")
			return nil
		},
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.BodyLimit(maxBodySize))
	e.Use(m.Middleware())
	return e
}

// serve 啟動服務直到啟動失敗或收到 SIGINT/SIGTERM，收到訊號後在 timeout 內優雅關閉
func serve(e *echo.Echo, addr string, timeout time.Duration, logger logrus.FieldLogger) error {
	errCh := make(chan error, 1)
	go func() { errCh <- startServer(e, addr) }()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("服務啟動失敗: %w", err)
		}
		return nil
	case sig := <-notifyShutdown():
		logger.WithField("signal", sig.String()).Info("shutting down")
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		return e.Shutdown(ctx)
	}
}

func main() {
	if err := run(); err != nil {
		log.Print(err)
		exitFunc(1)
	}
}
