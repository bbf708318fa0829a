// Package audit produces the structured request/response log. One Entry is
// written per request-response cycle; entries are append-only and never
// mutated after emission.
package audit

import (
	"encoding/json"
	"time"
)

// Levels used by audit entries.
const (
	LevelInfo  = "info"
	LevelError = "error"
)

// AppInfo is the static application metadata stamped on every entry.
type AppInfo struct {
	Version     string `json:"appVersion"`
	Environment string `json:"environment"`
	ProcessID   int    `json:"processId"`
}

// RequestData captures the inbound side of an exchange.
type RequestData struct {
	Method   string `json:"method"`
	Host     string `json:"host"`
	URI      string `json:"url"`
	Query    string `json:"query,omitempty"`
	ClientIP string `json:"clientIp"`
}

// ResponseData captures the outbound side of an exchange.
type ResponseData struct {
	StatusCode int             `json:"statusCode"`
	Duration   string          `json:"requestDuration"`
	Body       json.RawMessage `json:"body,omitempty"`
}

// ExchangeData pairs the request and response halves of one cycle.
type ExchangeData struct {
	Request  RequestData  `json:"request"`
	Response ResponseData `json:"response"`
}

// Entry is a single structured audit record.
type Entry struct {
	Level     string       `json:"level"`
	LogID     string       `json:"logId"`
	Timestamp time.Time    `json:"timestamp"`
	App       AppInfo      `json:"appInfo"`
	Message   string       `json:"message"`
	Data      ExchangeData `json:"data"`
}
