package groups_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/multiversx/mx-chain-htlc-oracle-go/api/groups"
	"github.com/multiversx/mx-chain-htlc-oracle-go/api/mock"
	"github.com/multiversx/mx-chain-htlc-oracle-go/data/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type poolResponse struct {
	Data struct {
		Transactions []*api.PooledTransaction `json:"transactions"`
		Count        int                      `json:"count"`
	} `json:"data"`
}

func TestNewPoolGroup(t *testing.T) {
	t.Parallel()

	pg, err := groups.NewPoolGroup(nil)
	assert.Nil(t, pg)
	assert.NotNil(t, err)
}

func TestPoolGroup_GetTransactions(t *testing.T) {
	t.Parallel()

	facade := &mock.FacadeStub{
		GetPoolTransactionsCalled: func() []*api.PooledTransaction {
			return []*api.PooledTransaction{{Hash: "0x01", Call: "ingest", Origin: "None"}}
		},
	}
	pg, _ := groups.NewPoolGroup(facade)
	ws := startWebServer(pg, "pool")

	req, _ := http.NewRequest(http.MethodGet, "/pool/transactions", nil)
	resp := httptest.NewRecorder()
	ws.ServeHTTP(resp, req)

	response := poolResponse{}
	loadResponse(resp.Body, &response)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, 1, response.Data.Count)
	require.Equal(t, 1, len(response.Data.Transactions))
	assert.Equal(t, "ingest", response.Data.Transactions[0].Call)
}
