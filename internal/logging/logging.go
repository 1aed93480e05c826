// File: internal/logging/logging.go
package logging

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

var output io.Writer = os.Stdout

// New 建立 logrus logger：development 使用文字格式，其餘環境輸出 JSON。
// level 無法解析時退回 info。
func New(appName, env, level string) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(output)

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	if env == "development" {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
		if level == "" {
			lvl = logrus.DebugLevel
		}
	} else {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}
	logger.SetLevel(lvl)

	logger.WithFields(logrus.Fields{"app": appName, "env": env, "level": lvl.String()}).Info("logger initialized")
	if err != nil && level != "" {
		logger.WithField("value", level).Warn("unknown LOG_LEVEL, using info")
	}
	return logger
}
