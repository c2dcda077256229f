package groups_test

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/multiversx/mx-chain-htlc-oracle-go/api/groups"
	"github.com/multiversx/mx-chain-htlc-oracle-go/api/middleware"
	"github.com/multiversx/mx-chain-htlc-oracle-go/api/mock"
	"github.com/multiversx/mx-chain-htlc-oracle-go/api/shared"
	"github.com/multiversx/mx-chain-htlc-oracle-go/data/api"
	"github.com/multiversx/mx-chain-htlc-oracle-go/facade"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAdminKey = "admin-key"

type sourcesResponse struct {
	Data struct {
		Sources []*api.EventSource `json:"sources"`
	} `json:"data"`
}

type custodyResponse struct {
	Data struct {
		CustodyAccount string `json:"custodyAccount"`
	} `json:"data"`
}

type isAuthorityResponse struct {
	Data struct {
		IsAuthority bool `json:"isAuthority"`
	} `json:"data"`
}

func startOracleServer(t *testing.T, facadeStub *mock.FacadeStub) *gin.Engine {
	og, err := groups.NewOracleGroup(facadeStub, middleware.NewAdminKeyChecker(testAdminKey))
	require.Nil(t, err)

	return startWebServer(og, "oracle")
}

func doOracleRequest(ws *gin.Engine, method string, path string, body string, adminKey string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, path, bytes.NewBufferString(body))
	if len(adminKey) > 0 {
		req.Header.Set(middleware.AdminKeyHeader, adminKey)
	}
	resp := httptest.NewRecorder()
	ws.ServeHTTP(resp, req)

	return resp
}

func TestNewOracleGroup(t *testing.T) {
	t.Parallel()

	og, err := groups.NewOracleGroup(nil, middleware.NewAdminKeyChecker(testAdminKey))
	assert.Nil(t, og)
	assert.NotNil(t, err)

	og, err = groups.NewOracleGroup(&mock.FacadeStub{}, nil)
	assert.Nil(t, og)
	assert.NotNil(t, err)

	og, err = groups.NewOracleGroup(&mock.FacadeStub{}, middleware.NewAdminKeyChecker(testAdminKey))
	assert.NotNil(t, og)
	assert.Nil(t, err)
}

func TestOracleGroup_ReadEndpoints(t *testing.T) {
	t.Parallel()

	t.Run("sources", func(t *testing.T) {
		t.Parallel()

		ws := startOracleServer(t, &mock.FacadeStub{
			GetSourcesCalled: func() ([]*api.EventSource, error) {
				return []*api.EventSource{{Name: "htlc", URL: "http://indexer"}}, nil
			},
		})

		resp := doOracleRequest(ws, http.MethodGet, "/oracle/sources", "", "")
		response := sourcesResponse{}
		loadResponse(resp.Body, &response)
		require.Equal(t, http.StatusOK, resp.Code)
		require.Equal(t, 1, len(response.Data.Sources))
		assert.Equal(t, "http://indexer", response.Data.Sources[0].URL)
	})
	t.Run("custody not set", func(t *testing.T) {
		t.Parallel()

		ws := startOracleServer(t, &mock.FacadeStub{
			GetCustodyAccountCalled: func() (string, error) {
				return "", facade.ErrCustodyAccountNotSet
			},
		})

		resp := doOracleRequest(ws, http.MethodGet, "/oracle/custody", "", "")
		assert.Equal(t, http.StatusNotFound, resp.Code)
	})
	t.Run("custody", func(t *testing.T) {
		t.Parallel()

		ws := startOracleServer(t, &mock.FacadeStub{
			GetCustodyAccountCalled: func() (string, error) {
				return "0xaa", nil
			},
		})

		resp := doOracleRequest(ws, http.MethodGet, "/oracle/custody", "", "")
		response := custodyResponse{}
		loadResponse(resp.Body, &response)
		require.Equal(t, http.StatusOK, resp.Code)
		assert.Equal(t, "0xaa", response.Data.CustodyAccount)
	})
	t.Run("is authority", func(t *testing.T) {
		t.Parallel()

		ws := startOracleServer(t, &mock.FacadeStub{
			IsAuthorityCalled: func(accountHex string) (bool, error) {
				if accountHex == "bad" {
					return false, facade.ErrInvalidAccount
				}
				return accountHex == "0x01", nil
			},
		})

		resp := doOracleRequest(ws, http.MethodGet, "/oracle/authorities/0x01", "", "")
		response := isAuthorityResponse{}
		loadResponse(resp.Body, &response)
		require.Equal(t, http.StatusOK, resp.Code)
		assert.True(t, response.Data.IsAuthority)

		resp = doOracleRequest(ws, http.MethodGet, "/oracle/authorities/bad", "", "")
		assert.Equal(t, http.StatusBadRequest, resp.Code)
	})
}

func TestOracleGroup_AdminEndpoints(t *testing.T) {
	t.Parallel()

	t.Run("missing admin key should be rejected", func(t *testing.T) {
		t.Parallel()

		called := false
		ws := startOracleServer(t, &mock.FacadeStub{
			KillFetchCalled: func() error {
				called = true
				return nil
			},
		})

		resp := doOracleRequest(ws, http.MethodPost, "/oracle/kill", "", "")
		response := shared.GenericAPIResponse{}
		loadResponse(resp.Body, &response)
		assert.Equal(t, http.StatusUnauthorized, resp.Code)
		assert.Equal(t, shared.ReturnCodeUnauthorized, response.Code)
		assert.False(t, called)
	})
	t.Run("kickoff with invalid json should return bad request", func(t *testing.T) {
		t.Parallel()

		ws := startOracleServer(t, &mock.FacadeStub{})
		resp := doOracleRequest(ws, http.MethodPost, "/oracle/kickoff", "{", testAdminKey)
		assert.Equal(t, http.StatusBadRequest, resp.Code)
	})
	t.Run("kickoff with invalid account should return bad request", func(t *testing.T) {
		t.Parallel()

		ws := startOracleServer(t, &mock.FacadeStub{
			KickoffFetchCalled: func(custodyHex string, sourceName string, sourceURL string) error {
				return fmt.Errorf("%w: wrong length", facade.ErrInvalidAccount)
			},
		})
		resp := doOracleRequest(ws, http.MethodPost, "/oracle/kickoff", `{"custodyAccount":"0x01"}`, testAdminKey)
		assert.Equal(t, http.StatusBadRequest, resp.Code)
	})
	t.Run("kickoff should forward the request", func(t *testing.T) {
		t.Parallel()

		var custody, name, url string
		ws := startOracleServer(t, &mock.FacadeStub{
			KickoffFetchCalled: func(custodyHex string, sourceName string, sourceURL string) error {
				custody, name, url = custodyHex, sourceName, sourceURL
				return nil
			},
		})
		body := `{"custodyAccount":"0xaa","sourceName":"htlc","sourceURL":"http://indexer"}`
		resp := doOracleRequest(ws, http.MethodPost, "/oracle/kickoff", body, testAdminKey)

		require.Equal(t, http.StatusOK, resp.Code)
		assert.Equal(t, "0xaa", custody)
		assert.Equal(t, "htlc", name)
		assert.Equal(t, "http://indexer", url)
	})
	t.Run("kill submit failure should return internal error", func(t *testing.T) {
		t.Parallel()

		ws := startOracleServer(t, &mock.FacadeStub{
			KillFetchCalled: func() error {
				return errors.New("node stopped")
			},
		})
		resp := doOracleRequest(ws, http.MethodPost, "/oracle/kill", "", testAdminKey)
		assert.Equal(t, http.StatusInternalServerError, resp.Code)
	})
	t.Run("add authority should forward the account", func(t *testing.T) {
		t.Parallel()

		var account string
		ws := startOracleServer(t, &mock.FacadeStub{
			AddAuthorityCalled: func(accountHex string) error {
				account = accountHex
				return nil
			},
		})
		resp := doOracleRequest(ws, http.MethodPost, "/oracle/authorities", `{"account":"0x02"}`, testAdminKey)

		require.Equal(t, http.StatusOK, resp.Code)
		assert.Equal(t, "0x02", account)
	})
}
