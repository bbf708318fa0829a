package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/classtrack/academic-records-api/internal/api/middleware"
)

// sessionUserID extracts the authenticated user id injected by the Session
// middleware. An empty id means the middleware did not run; fail fast with
// 401 before any service call.
func sessionUserID(c echo.Context) (string, error) {
	id, _ := c.Get(middleware.CtxUserID).(string)
	if id == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
	}
	return id, nil
}
