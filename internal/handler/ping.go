// File: internal/handler/ping.go
package handler

import (
	"context"
	"net/http"

	"user-consent/internal/dto"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// Pinger 由 store.UserStore 實作；使用快取時一併檢查 Redis
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingHandler 健康檢查
// @Summary     Health Check
// @Description 回傳 pong，並檢查資料庫（與快取）連線是否正常
// @Tags        health
// @Produce     json
// @Success     200 {object} dto.Message
// @Failure     500 {object} dto.HTTPError
// @Router      /ping [get]
func PingHandler(p Pinger, log logrus.FieldLogger) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := p.Ping(c.Request().Context()); err != nil {
			log.WithError(err).Error("health check failed")
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Error: "storage unhealthy"})
		}
		return c.JSON(http.StatusOK, dto.Message{Message: "pong"})
	}
}

// StatusHandler 服務存活檢查
// @Summary     Service status
// @Tags        health
// @Produce     json
// @Success     200 {object} dto.Status
// @Router      / [get]
func StatusHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, dto.Status{Status: "ok"})
	}
}
