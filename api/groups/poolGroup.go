package groups

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/multiversx/mx-chain-core-go/core/check"
	"github.com/multiversx/mx-chain-htlc-oracle-go/api/errors"
	"github.com/multiversx/mx-chain-htlc-oracle-go/api/shared"
	"github.com/multiversx/mx-chain-htlc-oracle-go/data/api"
)

const poolTransactionsPath = "/transactions"

// poolFacadeHandler defines the methods to be implemented by a facade for pool requests
type poolFacadeHandler interface {
	GetPoolTransactions() []*api.PooledTransaction
	IsInterfaceNil() bool
}

type poolGroup struct {
	*baseGroup
	facade poolFacadeHandler
}

// NewPoolGroup returns a new instance of poolGroup
func NewPoolGroup(facade poolFacadeHandler) (*poolGroup, error) {
	if check.IfNil(facade) {
		return nil, fmt.Errorf("%w for pool group", errors.ErrNilFacadeHandler)
	}

	pg := &poolGroup{
		facade:    facade,
		baseGroup: &baseGroup{},
	}

	pg.endpoints = []*shared.EndpointHandlerData{
		{
			Path:    poolTransactionsPath,
			Method:  http.MethodGet,
			Handler: pg.getTransactions,
		},
	}

	return pg, nil
}

func (pg *poolGroup) getTransactions(c *gin.Context) {
	txs := pg.facade.GetPoolTransactions()
	shared.RespondWith(c, http.StatusOK, gin.H{"transactions": txs, "count": len(txs)}, "", shared.ReturnCodeSuccess)
}
