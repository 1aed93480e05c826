// File: internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config 服務設定，全部來自環境變數
type Config struct {
	AppName         string
	AppEnv          string
	Port            int
	DatabaseURL     string // 空字串時改用 SQLite
	SQLitePath      string
	RedisAddr       string // 空字串時不啟用快取
	RedisPassword   string
	RedisDB         int
	CacheTTL        time.Duration
	LogLevel        string
	ShutdownTimeout time.Duration
}

// envFiles 依序嘗試載入；已存在的環境變數不會被覆寫
var envFiles = []string{".env"}

// Load 讀取 .env（若存在）後解析環境變數；數值或時間格式錯誤時回傳 error
func Load() (*Config, error) {
	for _, f := range envFiles {
		if _, err := os.Stat(f); err == nil {
			if err := godotenv.Load(f); err != nil {
				return nil, fmt.Errorf("load %s: %w", f, err)
			}
		}
	}

	cfg := &Config{
		AppName:       getEnv("APP_NAME", "user-consent"),
		AppEnv:        getEnv("APP_ENV", "development"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		SQLitePath:    getEnv("SQLITE_PATH", "instance/app.db"),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
	}

	var err error
	if cfg.Port, err = getInt("PORT", 8080); err != nil {
		return nil, err
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("無效的 PORT: %d", cfg.Port)
	}
	if cfg.RedisDB, err = getInt("REDIS_DB", 0); err != nil {
		return nil, err
	}
	if cfg.CacheTTL, err = getDuration("CACHE_TTL", 30*time.Second); err != nil {
		return nil, err
	}
	if cfg.ShutdownTimeout, err = getDuration("SHUTDOWN_TIMEOUT", 10*time.Second); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Addr 回傳 echo 監聽位址
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("無效的 %s: %w", key, err)
	}
	return n, nil
}

func getDuration(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("無效的 %s: %w", key, err)
	}
	return d, nil
}
