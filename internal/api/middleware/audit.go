package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/classtrack/academic-records-api/internal/audit"
)

// Bodies above this size are not embedded in audit entries.
const maxLoggedBody = 4096

// Audit produces exactly one audit entry per request, no matter how many
// times the handler writes to the response. The first body write computes
// the elapsed duration, classifies the outcome by status code and emits the
// entry; later writes are forwarded unchanged.
func Audit(log *audit.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			res := c.Response()
			w := &auditWriter{
				ResponseWriter: res.Writer,
				ctx:            c,
				log:            log,
				start:          time.Now(),
			}
			res.Writer = w

			if err := next(c); err != nil {
				// Render through the central error handler now, so
				// the terminal write is observed by this wrapper.
				c.Error(err)
			}

			// Handlers that never write a body still get an entry.
			if !w.logged {
				w.emit(res.Status, nil)
			}
			return nil
		}
	}
}

type auditWriter struct {
	http.ResponseWriter
	ctx    echo.Context
	log    *audit.Logger
	start  time.Time
	status int
	logged bool
}

func (w *auditWriter) WriteHeader(code int) {
	if w.status == 0 {
		w.status = code
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *auditWriter) Write(b []byte) (int, error) {
	if !w.logged {
		w.emit(w.status, b)
	}
	return w.ResponseWriter.Write(b)
}

func (w *auditWriter) Flush() {
	if f, ok := w.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func (w *auditWriter) emit(status int, body []byte) {
	w.logged = true
	if status == 0 {
		status = http.StatusOK
	}

	req := w.ctx.Request()
	data := audit.ExchangeData{
		Request: audit.RequestData{
			Method:   req.Method,
			Host:     req.Host,
			URI:      req.URL.Path,
			Query:    req.URL.RawQuery,
			ClientIP: w.ctx.RealIP(),
		},
		Response: audit.ResponseData{
			StatusCode: status,
			Duration:   fmt.Sprintf("%.3fs", time.Since(w.start).Seconds()),
			Body:       bodyJSON(body),
		},
	}

	if status < http.StatusBadRequest {
		w.log.Info(successMessage(req.Method), data)
		return
	}
	w.log.Error(errorMessage(body), data)
}

// bodyJSON embeds the response body only when it is valid JSON of a
// reasonable size.
func bodyJSON(b []byte) json.RawMessage {
	if len(b) == 0 || len(b) > maxLoggedBody || !json.Valid(b) {
		return nil
	}
	raw := make(json.RawMessage, len(b))
	copy(raw, b)
	return raw
}

// errorMessage pulls the "message" field out of an error body. Bodies that
// are not JSON, or carry no message, degrade to an empty message instead of
// failing the request.
func errorMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	return payload.Message
}

func successMessage(method string) string {
	switch method {
	case http.MethodPost:
		return "Resource created successfully"
	case http.MethodGet:
		return "Resource retrieved successfully"
	case http.MethodPut, http.MethodPatch:
		return "Resource updated successfully"
	case http.MethodDelete:
		return "Resource deleted successfully"
	default:
		return "Operation completed successfully"
	}
}
