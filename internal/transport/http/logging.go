package http

import (
	"encoding/json"
	"log"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

const (
	requestBodyLogKey  = "http.request.body.summary"
	responseBodyLogKey = "http.response.body.summary"
	maxLoggedBody      = 2048
)

// registerLogging emits one JSON line per request on the standard logger,
// which main may mirror to Logstash. Bodies are summarized with passwords
// redacted and oversized or binary payloads clamped.
func registerLogging(e *echo.Echo) {
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:      true,
		LogStatus:   true,
		LogMethod:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			userID := "anonymous"
			if id := strings.TrimSpace(c.Request().Header.Get(identityHeader)); id != "" {
				userID = id
			}

			payload := struct {
				Time      string `json:"time"`
				UserID    string `json:"user_id"`
				LatencyMS int64  `json:"latency_ms"`
				Request   struct {
					Method string `json:"method"`
					URI    string `json:"uri"`
					Body   any    `json:"body,omitempty"`
				} `json:"request"`
				Response struct {
					Status int    `json:"status"`
					Body   any    `json:"body,omitempty"`
					Error  string `json:"error,omitempty"`
				} `json:"response"`
			}{
				Time:      v.StartTime.Format(time.RFC3339),
				UserID:    userID,
				LatencyMS: v.Latency.Milliseconds(),
			}

			payload.Request.Method = v.Method
			payload.Request.URI = v.URI
			payload.Request.Body = c.Get(requestBodyLogKey)
			payload.Response.Status = v.Status
			payload.Response.Body = c.Get(responseBodyLogKey)
			if v.Error != nil {
				payload.Response.Error = v.Error.Error()
			}

			buf, err := json.Marshal(payload)
			if err != nil {
				return err
			}
			log.Println(string(buf))
			return nil
		},
	}))

	e.Use(middleware.BodyDump(func(c echo.Context, reqBody, resBody []byte) {
		if summary := summarizeBody(reqBody); summary != nil {
			c.Set(requestBodyLogKey, summary)
		}
		if summary := summarizeBody(resBody); summary != nil {
			c.Set(responseBodyLogKey, summary)
		}
	}))
}

func summarizeBody(body []byte) any {
	if len(body) == 0 {
		return nil
	}

	var data any
	if json.Valid(body) && json.Unmarshal(body, &data) == nil {
		return redactJSON(data, "")
	}

	if containsBinaryBytes(body) {
		return "binary"
	}
	return clampString(string(body))
}

func redactJSON(value any, keyHint string) any {
	switch v := value.(type) {
	case map[string]any:
		result := make(map[string]any, len(v))
		for key, val := range v {
			lowerKey := strings.ToLower(key)
			if strings.Contains(lowerKey, "password") {
				result[key] = "redacted"
				continue
			}
			result[key] = redactJSON(val, lowerKey)
		}
		return result
	case []any:
		result := make([]any, len(v))
		for i, item := range v {
			result[i] = redactJSON(item, keyHint)
		}
		return result
	case string:
		if strings.Contains(keyHint, "password") {
			return "redacted"
		}
		return clampString(v)
	default:
		return v
	}
}

func containsBinaryBytes(data []byte) bool {
	for len(data) > 0 {
		r, size := utf8.DecodeRune(data)
		if r == utf8.RuneError && size == 1 {
			return true
		}
		if !unicode.IsPrint(r) && !unicode.IsSpace(r) {
			return true
		}
		data = data[size:]
	}
	return false
}

func clampString(value string) string {
	if len(value) <= maxLoggedBody {
		return value
	}
	truncated := value[:maxLoggedBody]
	for !utf8.ValidString(truncated) && len(truncated) > 0 {
		truncated = truncated[:len(truncated)-1]
	}
	return truncated + "...(truncated)"
}
