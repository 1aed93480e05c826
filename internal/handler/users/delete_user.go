// File: internal/handler/users/delete_user.go
package users

import (
	"errors"
	"fmt"
	"net/http"

	"user-consent/internal/dto"
	"user-consent/internal/store"

	"github.com/labstack/echo/v4"
)

// DeleteUserHandler 刪除使用者
// @Summary     Delete a user
// @Tags        users
// @Produce     json
// @Param       id   path      int  true  "使用者 ID"
// @Success     202  {object}  dto.Message
// @Failure     400  {object}  dto.HTTPError
// @Failure     404  {object}  dto.HTTPError
// @Router      /users/{id} [delete]
func DeleteUserHandler(d Deps) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, ok := parseID(c)
		if !ok {
			return c.JSON(http.StatusNotFound, notFound(c.Param("id")))
		}
		return remove(c, d, id, "request")
	}
}

// remove 刪除並回 202；明確刪除與撤回同意共用
func remove(c echo.Context, d Deps, id int, reason string) error {
	err := d.Store.Delete(c.Request().Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		return c.JSON(http.StatusNotFound, notFound(id))
	}
	if err != nil {
		d.requestLog(c).WithError(err).WithField("user_id", id).Error("delete user failed")
		return c.JSON(http.StatusBadRequest, dto.HTTPError{Error: fmt.Sprintf("Error occurred while deleting user: %d", id)})
	}

	d.Metrics.UserDeleted(reason)
	d.requestLog(c).WithField("user_id", id).WithField("reason", reason).Info("user deleted")
	return c.JSON(http.StatusAccepted, deleted(id))
}
