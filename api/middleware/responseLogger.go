package middleware

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
	"unicode"

	"github.com/gin-gonic/gin"
	logger "github.com/multiversx/mx-chain-logger-go"
)

var log = logger.GetOrCreate("api/middleware")

const (
	prefixDurationTooLong = "[too long]"
	prefixBadRequest      = "[bad request]"
	prefixUnauthorized    = "[unauthorized]"
	prefixInternalError   = "[internal error]"
	maxLoggedLength       = 100
)

type responseLoggerMiddleware struct {
	thresholdDurationForLoggingRequest time.Duration
	printRequestFunc                   func(title string, path string, duration time.Duration, status int, request string, response string)
}

// NewResponseLoggerMiddleware returns a new instance of responseLoggerMiddleware
func NewResponseLoggerMiddleware(thresholdDurationForLoggingRequest time.Duration) *responseLoggerMiddleware {
	rlm := &responseLoggerMiddleware{
		thresholdDurationForLoggingRequest: thresholdDurationForLoggingRequest,
	}
	rlm.printRequestFunc = rlm.printRequest

	return rlm
}

// MiddlewareHandlerFunc logs details about a request if it is not successful or its duration is higher than a threshold
func (rlm *responseLoggerMiddleware) MiddlewareHandlerFunc() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		request := captureRequestBody(c)

		bw := &bodyWriter{body: bytes.NewBufferString(""), ResponseWriter: c.Writer}
		c.Writer = bw

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()
		if latency <= rlm.thresholdDurationForLoggingRequest && status == http.StatusOK {
			return
		}

		title := computeLogTitle(status)
		response := removeWhitespaces(bw.body.String())
		rlm.printRequestFunc(title, c.Request.RequestURI, latency, status, request, response)
	}
}

func captureRequestBody(c *gin.Context) string {
	if c.Request.Body == nil {
		return "n/a"
	}

	buff, err := io.ReadAll(c.Request.Body)
	if err != nil {
		log.Debug("cannot read request body", "path", c.Request.RequestURI, "error", err)
		return "n/a"
	}
	c.Request.Body = io.NopCloser(bytes.NewReader(buff))
	if len(buff) == 0 {
		return "n/a"
	}

	return removeWhitespaces(string(buff))
}

func computeLogTitle(status int) string {
	logPrefix := prefixDurationTooLong
	switch status {
	case http.StatusOK:
	case http.StatusBadRequest:
		logPrefix = prefixBadRequest
	case http.StatusUnauthorized:
		logPrefix = prefixUnauthorized
	case http.StatusInternalServerError:
		logPrefix = prefixInternalError
	default:
		logPrefix = fmt.Sprintf("http code %d", status)
	}

	return fmt.Sprintf("%s api request", logPrefix)
}

func (rlm *responseLoggerMiddleware) printRequest(title string, path string, duration time.Duration, status int, request string, response string) {
	log.Debug(title,
		"path", path,
		"duration", duration,
		"status", status,
		"request", truncate(request),
		"response", truncate(response),
	)
}

func truncate(str string) string {
	if len(str) > maxLoggedLength {
		return str[:maxLoggedLength] + "..."
	}

	return str
}

func removeWhitespaces(str string) string {
	var b strings.Builder
	b.Grow(len(str))
	for _, ch := range str {
		if !unicode.IsSpace(ch) {
			b.WriteRune(ch)
		}
	}

	return b.String()
}

// IsInterfaceNil returns true if there is no value under the interface
func (rlm *responseLoggerMiddleware) IsInterfaceNil() bool {
	return rlm == nil
}

type bodyWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

// Write writes the data both in the wrapped writer and the inner buffer
func (w bodyWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}
