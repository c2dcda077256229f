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

const statusPath = "/status"

// nodeFacadeHandler defines the methods to be implemented by a facade for node requests
type nodeFacadeHandler interface {
	GetNodeStatus() (*api.NodeStatus, error)
	IsInterfaceNil() bool
}

type nodeGroup struct {
	*baseGroup
	facade nodeFacadeHandler
}

// NewNodeGroup returns a new instance of nodeGroup
func NewNodeGroup(facade nodeFacadeHandler) (*nodeGroup, error) {
	if check.IfNil(facade) {
		return nil, fmt.Errorf("%w for node group", errors.ErrNilFacadeHandler)
	}

	ng := &nodeGroup{
		facade:    facade,
		baseGroup: &baseGroup{},
	}

	ng.endpoints = []*shared.EndpointHandlerData{
		{
			Path:    statusPath,
			Method:  http.MethodGet,
			Handler: ng.statusMetrics,
		},
	}

	return ng, nil
}

// statusMetrics returns the block production status of the node
func (ng *nodeGroup) statusMetrics(c *gin.Context) {
	status, err := ng.facade.GetNodeStatus()
	if err != nil {
		shared.RespondWithInternalError(c, fmt.Sprintf("%s: %s", errors.ErrGetNodeStatus.Error(), err.Error()))
		return
	}

	shared.RespondWith(c, http.StatusOK, gin.H{"status": status}, "", shared.ReturnCodeSuccess)
}
