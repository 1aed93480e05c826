// File: internal/handler/users/user.go
package users

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"user-consent/internal/dto"
	"user-consent/internal/metrics"
	"user-consent/internal/store"
	"user-consent/internal/validation"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// Deps 使用者 handler 的共用相依；Metrics 可為 nil
type Deps struct {
	Store   store.UserStore
	Schemas *validation.Validator
	Log     logrus.FieldLogger
	Metrics *metrics.Metrics
}

const (
	msgInvalidData = "Invalid data received. "
	msgGeneric     = "Something went wrong"
	msgCreateError = "Error creating User entity."
	msgUpdateError = "Error updating User entity."
)

var jsonUnmarshal = json.Unmarshal

// requestLog 附上 request id 的 logger
func (d Deps) requestLog(c echo.Context) logrus.FieldLogger {
	return d.Log.WithField("request_id", c.Response().Header().Get(echo.HeaderXRequestID))
}

// parseID 讀取 :id；非整數視同不存在
func parseID(c echo.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	return id, err == nil
}

func notFound(id any) dto.HTTPError {
	return dto.HTTPError{Error: fmt.Sprintf("User not found: id: %v", id)}
}

func deleted(id int) dto.Message {
	return dto.Message{Message: fmt.Sprintf("User %d deleted", id)}
}

// decode 讀取 body，先以 JSON Schema 驗證，再解到 dst 並執行 struct 驗證。
// 驗證失敗時已寫出 400，回傳的 error 為寫回應的結果（通常為 nil），ok 為 false。
func decode(c echo.Context, d Deps, kind validation.Kind, dst any) (bool, error) {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return false, c.JSON(http.StatusBadRequest, dto.HTTPError{Error: msgInvalidData + "unable to read request body"})
	}

	if err := d.Schemas.Validate(kind, body); err != nil {
		var se *validation.SchemaError
		if !errors.As(err, &se) {
			d.requestLog(c).WithError(err).Error("schema validation failed")
			return false, c.JSON(http.StatusBadRequest, dto.HTTPError{Error: msgGeneric})
		}
		d.requestLog(c).WithField("reason", se.Message).Info("rejected payload")
		return false, c.JSON(http.StatusBadRequest, dto.HTTPError{Error: msgInvalidData + se.Message})
	}

	if err := jsonUnmarshal(body, dst); err != nil {
		return false, c.JSON(http.StatusBadRequest, dto.HTTPError{Error: msgInvalidData + err.Error()})
	}
	if err := c.Validate(dst); err != nil {
		return false, c.JSON(http.StatusBadRequest, dto.HTTPError{Error: msgInvalidData + validation.Describe(err)})
	}
	return true, nil
}
