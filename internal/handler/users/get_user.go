// File: internal/handler/users/get_user.go
package users

import (
	"errors"
	"net/http"

	"user-consent/internal/dto"
	"user-consent/internal/store"

	"github.com/labstack/echo/v4"
)

// GetUserHandler 透過使用者 ID 取得使用者資訊
// @Summary     Get a user by ID
// @Tags        users
// @Produce     json
// @Param       id   path      int  true  "使用者 ID"
// @Success     200  {object}  model.View
// @Failure     400  {object}  dto.HTTPError
// @Failure     404  {object}  dto.HTTPError  "使用者不存在"
// @Router      /users/{id} [get]
func GetUserHandler(d Deps) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, ok := parseID(c)
		if !ok {
			return c.JSON(http.StatusNotFound, notFound(c.Param("id")))
		}

		u, err := d.Store.Get(c.Request().Context(), id)
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, notFound(id))
		}
		if err != nil {
			d.requestLog(c).WithError(err).WithField("user_id", id).Error("get user failed")
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Error: msgGeneric})
		}
		return c.JSON(http.StatusOK, u.Serialize())
	}
}
