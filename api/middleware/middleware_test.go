package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/multiversx/mx-chain-core-go/core/check"
	"github.com/multiversx/mx-chain-htlc-oracle-go/api/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestNewGlobalThrottler(t *testing.T) {
	t.Parallel()

	gt, err := middleware.NewGlobalThrottler(0)
	assert.True(t, check.IfNil(gt))
	assert.Equal(t, middleware.ErrInvalidMaxNumRequests, err)

	gt, err = middleware.NewGlobalThrottler(1)
	assert.False(t, check.IfNil(gt))
	assert.Nil(t, err)
}

func TestGlobalThrottler_MiddlewareHandlerFunc(t *testing.T) {
	t.Parallel()

	gt, _ := middleware.NewGlobalThrottler(1)
	chRelease := make(chan struct{})
	chEntered := make(chan struct{})

	ws := gin.New()
	ws.Use(gt.MiddlewareHandlerFunc())
	ws.GET("/slow", func(c *gin.Context) {
		close(chEntered)
		<-chRelease
		c.Status(http.StatusOK)
	})
	ws.GET("/fast", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	wg := sync.WaitGroup{}
	wg.Add(1)
	go func() {
		defer wg.Done()

		req, _ := http.NewRequest(http.MethodGet, "/slow", nil)
		resp := httptest.NewRecorder()
		ws.ServeHTTP(resp, req)
		assert.Equal(t, http.StatusOK, resp.Code)
	}()
	<-chEntered

	req, _ := http.NewRequest(http.MethodGet, "/fast", nil)
	resp := httptest.NewRecorder()
	ws.ServeHTTP(resp, req)
	assert.Equal(t, http.StatusTooManyRequests, resp.Code)

	close(chRelease)
	wg.Wait()

	resp = httptest.NewRecorder()
	ws.ServeHTTP(resp, req)
	assert.Equal(t, http.StatusOK, resp.Code)
}

func TestAdminKeyChecker_MiddlewareHandlerFunc(t *testing.T) {
	t.Parallel()

	startServer := func(adminKey string) *gin.Engine {
		ws := gin.New()
		checker := middleware.NewAdminKeyChecker(adminKey)
		ws.POST("/admin", checker.MiddlewareHandlerFunc(), func(c *gin.Context) {
			c.Status(http.StatusOK)
		})

		return ws
	}
	doRequest := func(ws *gin.Engine, key string) int {
		req, _ := http.NewRequest(http.MethodPost, "/admin", nil)
		if len(key) > 0 {
			req.Header.Set(middleware.AdminKeyHeader, key)
		}
		resp := httptest.NewRecorder()
		ws.ServeHTTP(resp, req)

		return resp.Code
	}

	t.Run("missing key should be rejected", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, http.StatusUnauthorized, doRequest(startServer("secret"), ""))
	})
	t.Run("wrong key should be rejected", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, http.StatusUnauthorized, doRequest(startServer("secret"), "other"))
	})
	t.Run("empty configured key should close the endpoint", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, http.StatusUnauthorized, doRequest(startServer(""), "anything"))
	})
	t.Run("matching key should pass", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, http.StatusOK, doRequest(startServer("secret"), "secret"))
	})
}

func TestResponseLoggerMiddleware_MiddlewareHandlerFunc(t *testing.T) {
	t.Parallel()

	type printedRequest struct {
		title    string
		status   int
		request  string
		response string
	}

	startServer := func(threshold time.Duration, printed *[]printedRequest) *gin.Engine {
		rlm := middleware.NewResponseLoggerMiddleware(threshold)
		rlm.SetPrintRequestFunc(func(title string, path string, duration time.Duration, status int, request string, response string) {
			*printed = append(*printed, printedRequest{title: title, status: status, request: request, response: response})
		})

		ws := gin.New()
		ws.Use(rlm.MiddlewareHandlerFunc())
		ws.POST("/echo", func(c *gin.Context) {
			var body map[string]string
			err := c.ShouldBindJSON(&body)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "bad"})
				return
			}
			c.JSON(http.StatusOK, body)
		})

		return ws
	}

	t.Run("fast successful request should not be logged", func(t *testing.T) {
		t.Parallel()

		printed := make([]printedRequest, 0)
		ws := startServer(time.Hour, &printed)

		req, _ := http.NewRequest(http.MethodPost, "/echo", strings.NewReader(`{"a": "b"}`))
		resp := httptest.NewRecorder()
		ws.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusOK, resp.Code)
		assert.Equal(t, `{"a":"b"}`, resp.Body.String())
		assert.Empty(t, printed)
	})
	t.Run("bad request should be logged with its body", func(t *testing.T) {
		t.Parallel()

		printed := make([]printedRequest, 0)
		ws := startServer(time.Hour, &printed)

		req, _ := http.NewRequest(http.MethodPost, "/echo", strings.NewReader(`not json`))
		resp := httptest.NewRecorder()
		ws.ServeHTTP(resp, req)

		require.Equal(t, 1, len(printed))
		assert.Equal(t, "[bad request] api request", printed[0].title)
		assert.Equal(t, http.StatusBadRequest, printed[0].status)
		assert.Equal(t, "notjson", printed[0].request)
		assert.Equal(t, `{"error":"bad"}`, printed[0].response)
	})
	t.Run("slow request should be logged", func(t *testing.T) {
		t.Parallel()

		printed := make([]printedRequest, 0)
		ws := startServer(-1, &printed)

		req, _ := http.NewRequest(http.MethodPost, "/echo", strings.NewReader(`{"a": "b"}`))
		resp := httptest.NewRecorder()
		ws.ServeHTTP(resp, req)

		require.Equal(t, 1, len(printed))
		assert.Equal(t, "[too long] api request", printed[0].title)
	})
}
