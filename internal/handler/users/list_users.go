// File: internal/handler/users/list_users.go
package users

import (
	"net/http"

	"user-consent/internal/dto"
	"user-consent/internal/model"

	"github.com/labstack/echo/v4"
)

// ListUsersHandler 取得所有使用者
// @Summary     List users
// @Description 回傳所有使用者，沒有資料時回傳空陣列
// @Tags        users
// @Produce     json
// @Success     200 {array}  model.View
// @Failure     400 {object} dto.HTTPError
// @Router      /users [get]
func ListUsersHandler(d Deps) echo.HandlerFunc {
	return func(c echo.Context) error {
		list, err := d.Store.List(c.Request().Context())
		if err != nil {
			d.requestLog(c).WithError(err).Error("list users failed")
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Error: msgGeneric})
		}

		views := make([]model.View, 0, len(list))
		for _, u := range list {
			views = append(views, u.Serialize())
		}
		return c.JSON(http.StatusOK, views)
	}
}
