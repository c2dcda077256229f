package groups

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/multiversx/mx-chain-core-go/core/check"
	apiErrors "github.com/multiversx/mx-chain-htlc-oracle-go/api/errors"
	"github.com/multiversx/mx-chain-htlc-oracle-go/api/shared"
	"github.com/multiversx/mx-chain-htlc-oracle-go/data/api"
	"github.com/multiversx/mx-chain-htlc-oracle-go/facade"
)

const getSwapPath = "/:swapID"

// swapsFacadeHandler defines the methods to be implemented by a facade for swap requests
type swapsFacadeHandler interface {
	GetSwap(swapIDHex string) (*api.SwapInfo, error)
	IsInterfaceNil() bool
}

type swapsGroup struct {
	*baseGroup
	facade swapsFacadeHandler
}

// NewSwapsGroup returns a new instance of swapsGroup
func NewSwapsGroup(facade swapsFacadeHandler) (*swapsGroup, error) {
	if check.IfNil(facade) {
		return nil, fmt.Errorf("%w for swaps group", apiErrors.ErrNilFacadeHandler)
	}

	sg := &swapsGroup{
		facade:    facade,
		baseGroup: &baseGroup{},
	}

	sg.endpoints = []*shared.EndpointHandlerData{
		{
			Path:    getSwapPath,
			Method:  http.MethodGet,
			Handler: sg.getSwap,
		},
	}

	return sg, nil
}

// getSwap returns the open swap together with its claimable status
func (sg *swapsGroup) getSwap(c *gin.Context) {
	swap, err := sg.facade.GetSwap(c.Param("swapID"))
	switch {
	case err == nil:
		shared.RespondWith(c, http.StatusOK, gin.H{"swap": swap}, "", shared.ReturnCodeSuccess)
	case errors.Is(err, facade.ErrInvalidSwapID):
		shared.RespondWithValidationError(c, fmt.Sprintf("%s: %s", apiErrors.ErrValidation.Error(), err.Error()))
	case errors.Is(err, facade.ErrSwapNotFound):
		shared.RespondWith(c, http.StatusNotFound, nil, err.Error(), shared.ReturnCodeNotFound)
	default:
		shared.RespondWithInternalError(c, fmt.Sprintf("%s: %s", apiErrors.ErrGetSwap.Error(), err.Error()))
	}
}
