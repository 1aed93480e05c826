// File: internal/handler/users/update_user.go
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

// UpdateUserHandler 部分更新使用者（PUT 與 PATCH 行為相同）。
// consent 為 false 時刪除使用者並回 202，同一請求中的其他欄位不會寫入。
// @Summary     Update a user
// @Description 只更新有提供的欄位；emailConfirmed=true 記錄 Email 驗證時間
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       id   path      int                    true "使用者 ID"
// @Param       body body      dto.UpdateUserRequest  true "欲更新的欄位"
// @Success     200  {object}  model.View
// @Success     202  {object}  dto.Message  "撤回同意，使用者已刪除"
// @Failure     400  {object}  dto.HTTPError
// @Failure     404  {object}  dto.HTTPError
// @Router      /users/{id} [put]
// @Router      /users/{id} [patch]
func UpdateUserHandler(d Deps) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, ok := parseID(c)
		if !ok {
			return c.JSON(http.StatusNotFound, notFound(c.Param("id")))
		}
		var req dto.UpdateUserRequest
		if ok, err := decode(c, d, validation.UserUpdate, &req); !ok {
			return err
		}
		ctx := c.Request().Context()
		log := d.requestLog(c).WithField("user_id", id)

		u, err := d.Store.Get(ctx, id)
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, notFound(id))
		}
		if err != nil {
			log.WithError(err).Error("load user failed")
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Error: msgGeneric})
		}

		// 撤回同意優先於其他欄位
		if req.Consent != nil && u.SetConsent(*req.Consent) == model.ConsentRevoked {
			log.Info("consent revoked")
			return remove(c, d, id, "consent_revoked")
		}

		if err := apply(u, &req); err != nil {
			log.WithError(err).Error("apply update failed")
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Error: msgGeneric})
		}

		if err := d.Store.Update(ctx, u); err != nil {
			switch {
			case errors.Is(err, store.ErrNotFound):
				return c.JSON(http.StatusNotFound, notFound(id))
			case errors.Is(err, store.ErrDuplicate):
				log.WithError(err).Info("duplicate email")
				return c.JSON(http.StatusBadRequest, dto.HTTPError{Error: msgUpdateError})
			default:
				log.WithError(err).Error("update user failed")
				return c.JSON(http.StatusBadRequest, dto.HTTPError{Error: msgGeneric})
			}
		}
		return c.JSON(http.StatusOK, u.Serialize())
	}
}

// apply 將有提供的欄位交給對應的 setter
func apply(u *model.User, req *dto.UpdateUserRequest) error {
	if req.Email != nil {
		u.SetEmail(*req.Email)
	}
	if req.Name != nil {
		u.SetName(*req.Name)
	}
	if req.Password.Set {
		if err := u.SetPassword(req.Password.Value); err != nil {
			return err
		}
	}
	if req.RememberToken.Set {
		u.SetRememberToken(req.RememberToken.Value)
	}
	if req.Memo.Set {
		u.SetMemo(req.Memo.Value)
	}
	if req.EmailConfirmed != nil && *req.EmailConfirmed {
		u.MarkEmailVerified()
	}
	return nil
}
