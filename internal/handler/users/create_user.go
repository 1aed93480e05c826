// File: internal/handler/users/create_user.go
package users

import (
	"errors"
	"net/http"

	"user-consent/internal/dto"
	"user-consent/internal/model"
	"user-consent/internal/store"
	"user-consent/internal/validation"

	"github.com/labstack/echo/v4"
)

// CreateUserHandler 建立新使用者
// @Summary     Create a new user
// @Description 依 user_create schema 驗證後建立使用者；consent 必須為 true
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       body body     dto.CreateUserRequest true "使用者資料"
// @Success     201  {object} model.View
// @Failure     400  {object} dto.HTTPError
// @Router      /users [post]
func CreateUserHandler(d Deps) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req dto.CreateUserRequest
		if ok, err := decode(c, d, validation.UserCreate, &req); !ok {
			return err
		}
		log := d.requestLog(c)

		u, err := model.NewUser(req.Email, req.Password, *req.Consent, req.Name)
		if errors.Is(err, model.ErrInvalidArgument) {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Error: err.Error()})
		}
		if err != nil {
			log.WithError(err).Error("construct user failed")
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Error: msgCreateError})
		}
		// 只有提供時才呼叫 setter，未提供的欄位不刷新 updatedAt
		if req.RememberToken != nil {
			u.SetRememberToken(req.RememberToken)
		}
		if req.Memo != nil {
			u.SetMemo(req.Memo)
		}

		if err := d.Store.Create(c.Request().Context(), u); err != nil {
			entry := log.WithError(err)
			if errors.Is(err, store.ErrDuplicate) {
				entry.Info("duplicate email")
			} else {
				entry.Error("create user failed")
			}
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Error: msgCreateError})
		}

		log.WithField("user_id", u.ID()).Info("User entity created successfully.")
		return c.JSON(http.StatusCreated, u.Serialize())
	}
}
