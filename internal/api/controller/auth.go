package controller

import (
	"net/http"
	"time"

	"github.com/ecodesk/greenroi/internal/domain"
	"github.com/ecodesk/greenroi/internal/pkg/constants"
	"github.com/labstack/echo/v4"
)

func (c *Controller) Login(ctx echo.Context) error {
	request := new(domain.LoginRequest)
	if err := ctx.Bind(request); err != nil {
		return err
	}
	if err := ctx.Validate(request); err != nil {
		return err
	}

	response, err := c.authService.Login(ctx.Request().Context(), request)
	if err != nil {
		return err
	}

	ctx.SetCookie(&http.Cookie{
		Name:     constants.CookieKeyAuthToken,
		Value:    response.AuthToken,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return ctx.JSON(http.StatusOK, response)
}

func (c *Controller) Logout(ctx echo.Context) error {
	cookie, err := ctx.Cookie(constants.CookieKeyAuthToken)
	if err != nil {
		return constants.ErrMissingAuthCookie
	}

	if err := c.authService.Logout(ctx.Request().Context(), cookie.Value); err != nil {
		return err
	}

	ctx.SetCookie(&http.Cookie{
		Name:     constants.CookieKeyAuthToken,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Expires:  time.Unix(0, 0),
	})

	return ctx.NoContent(http.StatusNoContent)
}

func (c *Controller) Me(ctx echo.Context) error {
	user, err := c.authService.CurrentUser(ctx.Request().Context(), ownerID(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, user)
}
