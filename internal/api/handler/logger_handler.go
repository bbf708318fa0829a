package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/classtrack/academic-records-api/internal/audit"
)

// LoggerHandler exposes the raw audit log file. Admin only.
type LoggerHandler struct {
	audit *audit.Logger
}

func NewLoggerHandler(auditLog *audit.Logger) *LoggerHandler {
	return &LoggerHandler{audit: auditLog}
}

// LogsFile returns the current log file content as plain text.
//
// @Summary      Download the current log file
// @Tags         logger
// @Produce      plain
// @Success      200  {string}  string
// @Failure      500  {object}  map[string]string
// @Router       /api/logger/logs-file [get]
func (h *LoggerHandler) LogsFile(c echo.Context) error {
	content, err := h.audit.ReadLogFile()
	if err != nil {
		return err
	}
	return c.Blob(http.StatusOK, "text/plain; charset=utf-8", []byte(content))
}
