package api

import (
	"strings"

	"github.com/ecodesk/greenroi/internal/pkg/constants"
	"github.com/labstack/echo/v4"
)

// AuthMiddleware accepts the auth cookie or a bearer Authorization header
// and resolves it to a user id via the session store.
func (svc *APIService) AuthMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		rawToken, err := extractToken(ctx)
		if err != nil {
			return err
		}

		userID, err := svc.authService.Authenticate(ctx.Request().Context(), rawToken)
		if err != nil {
			return err
		}

		ctx.Set(constants.CtxKeyUserID, userID)

		return next(ctx)
	}
}

func extractToken(ctx echo.Context) (string, error) {
	if cookie, err := ctx.Cookie(constants.CookieKeyAuthToken); err == nil && cookie.Value != "" {
		return cookie.Value, nil
	}

	header := ctx.Request().Header.Get("Authorization")
	if token := strings.TrimPrefix(header, "Bearer "); token != "" && token != header {
		return token, nil
	}

	return "", constants.ErrMissingAuthCookie
}
