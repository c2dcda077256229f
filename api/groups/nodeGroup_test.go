package groups_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/multiversx/mx-chain-htlc-oracle-go/api/groups"
	"github.com/multiversx/mx-chain-htlc-oracle-go/api/mock"
	"github.com/multiversx/mx-chain-htlc-oracle-go/api/shared"
	"github.com/multiversx/mx-chain-htlc-oracle-go/data/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nodeStatusResponse struct {
	Data struct {
		Status api.NodeStatus `json:"status"`
	} `json:"data"`
	Error string `json:"error"`
	Code  string `json:"code"`
}

func TestNewNodeGroup(t *testing.T) {
	t.Parallel()

	ng, err := groups.NewNodeGroup(nil)
	assert.Nil(t, ng)
	assert.NotNil(t, err)

	ng, err = groups.NewNodeGroup(&mock.FacadeStub{})
	assert.NotNil(t, ng)
	assert.Nil(t, err)
}

func TestNodeGroup_Status(t *testing.T) {
	t.Parallel()

	t.Run("facade error should return internal error", func(t *testing.T) {
		t.Parallel()

		facade := &mock.FacadeStub{
			GetNodeStatusCalled: func() (*api.NodeStatus, error) {
				return nil, errors.New("expected error")
			},
		}
		ng, _ := groups.NewNodeGroup(facade)
		ws := startWebServer(ng, "node")

		req, _ := http.NewRequest(http.MethodGet, "/node/status", nil)
		resp := httptest.NewRecorder()
		ws.ServeHTTP(resp, req)

		response := shared.GenericAPIResponse{}
		loadResponse(resp.Body, &response)
		assert.Equal(t, http.StatusInternalServerError, resp.Code)
		assert.Contains(t, response.Error, "expected error")
		assert.Equal(t, shared.ReturnCodeInternalError, response.Code)
	})
	t.Run("should work", func(t *testing.T) {
		t.Parallel()

		facade := &mock.FacadeStub{
			GetNodeStatusCalled: func() (*api.NodeStatus, error) {
				return &api.NodeStatus{CurrentHeight: 12, IsRunning: true, NumSources: 1}, nil
			},
		}
		ng, _ := groups.NewNodeGroup(facade)
		ws := startWebServer(ng, "node")

		req, _ := http.NewRequest(http.MethodGet, "/node/status", nil)
		resp := httptest.NewRecorder()
		ws.ServeHTTP(resp, req)

		response := nodeStatusResponse{}
		loadResponse(resp.Body, &response)
		require.Equal(t, http.StatusOK, resp.Code)
		assert.Equal(t, uint64(12), response.Data.Status.CurrentHeight)
		assert.True(t, response.Data.Status.IsRunning)
		assert.Equal(t, 1, response.Data.Status.NumSources)
		assert.Equal(t, string(shared.ReturnCodeSuccess), response.Code)
	})
}
