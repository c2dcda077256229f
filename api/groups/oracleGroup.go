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

const (
	sourcesPath     = "/sources"
	custodyPath     = "/custody"
	authoritiesPath = "/authorities"
	authorityPath   = "/authorities/:account"
	kickoffPath     = "/kickoff"
	killPath        = "/kill"
)

// oracleFacadeHandler defines the methods to be implemented by a facade for oracle configuration requests
type oracleFacadeHandler interface {
	GetSources() ([]*api.EventSource, error)
	GetCustodyAccount() (string, error)
	GetAuthorities() ([]string, error)
	IsAuthority(accountHex string) (bool, error)
	KickoffFetch(custodyHex string, sourceName string, sourceURL string) error
	KillFetch() error
	AddAuthority(accountHex string) error
	IsInterfaceNil() bool
}

// KickoffRequest represents the structure of the fetch job configuration request
type KickoffRequest struct {
	CustodyAccount string `json:"custodyAccount"`
	SourceName     string `json:"sourceName"`
	SourceURL      string `json:"sourceURL"`
}

// AuthorityRequest represents the structure of the add authority request
type AuthorityRequest struct {
	Account string `json:"account"`
}

type oracleGroup struct {
	*baseGroup
	facade oracleFacadeHandler
}

// NewOracleGroup returns a new instance of oracleGroup. The privileged endpoints are guarded by the provided middleware
func NewOracleGroup(facade oracleFacadeHandler, adminMiddleware shared.MiddlewareProcessor) (*oracleGroup, error) {
	if check.IfNil(facade) {
		return nil, fmt.Errorf("%w for oracle group", apiErrors.ErrNilFacadeHandler)
	}
	if check.IfNil(adminMiddleware) {
		return nil, fmt.Errorf("%w for oracle group", apiErrors.ErrNilMiddleware)
	}

	og := &oracleGroup{
		facade:    facade,
		baseGroup: &baseGroup{},
	}

	adminOnly := []shared.AdditionalMiddleware{
		{
			Middleware: adminMiddleware.MiddlewareHandlerFunc(),
			Before:     true,
		},
	}

	og.endpoints = []*shared.EndpointHandlerData{
		{
			Path:    sourcesPath,
			Method:  http.MethodGet,
			Handler: og.getSources,
		},
		{
			Path:    custodyPath,
			Method:  http.MethodGet,
			Handler: og.getCustodyAccount,
		},
		{
			Path:    authoritiesPath,
			Method:  http.MethodGet,
			Handler: og.getAuthorities,
		},
		{
			Path:    authorityPath,
			Method:  http.MethodGet,
			Handler: og.isAuthority,
		},
		{
			Path:                  kickoffPath,
			Method:                http.MethodPost,
			Handler:               og.kickoffFetch,
			AdditionalMiddlewares: adminOnly,
		},
		{
			Path:                  killPath,
			Method:                http.MethodPost,
			Handler:               og.killFetch,
			AdditionalMiddlewares: adminOnly,
		},
		{
			Path:                  authoritiesPath,
			Method:                http.MethodPost,
			Handler:               og.addAuthority,
			AdditionalMiddlewares: adminOnly,
		},
	}

	return og, nil
}

func (og *oracleGroup) getSources(c *gin.Context) {
	sources, err := og.facade.GetSources()
	if err != nil {
		shared.RespondWithInternalError(c, fmt.Sprintf("%s: %s", apiErrors.ErrGetOracleConfig.Error(), err.Error()))
		return
	}

	shared.RespondWith(c, http.StatusOK, gin.H{"sources": sources}, "", shared.ReturnCodeSuccess)
}

func (og *oracleGroup) getCustodyAccount(c *gin.Context) {
	custody, err := og.facade.GetCustodyAccount()
	if errors.Is(err, facade.ErrCustodyAccountNotSet) {
		shared.RespondWith(c, http.StatusNotFound, nil, err.Error(), shared.ReturnCodeNotFound)
		return
	}
	if err != nil {
		shared.RespondWithInternalError(c, fmt.Sprintf("%s: %s", apiErrors.ErrGetOracleConfig.Error(), err.Error()))
		return
	}

	shared.RespondWith(c, http.StatusOK, gin.H{"custodyAccount": custody}, "", shared.ReturnCodeSuccess)
}

func (og *oracleGroup) getAuthorities(c *gin.Context) {
	authorities, err := og.facade.GetAuthorities()
	if err != nil {
		shared.RespondWithInternalError(c, fmt.Sprintf("%s: %s", apiErrors.ErrGetOracleConfig.Error(), err.Error()))
		return
	}

	shared.RespondWith(c, http.StatusOK, gin.H{"authorities": authorities}, "", shared.ReturnCodeSuccess)
}

func (og *oracleGroup) isAuthority(c *gin.Context) {
	isAuthority, err := og.facade.IsAuthority(c.Param("account"))
	if err != nil {
		shared.RespondWithValidationError(c, fmt.Sprintf("%s: %s", apiErrors.ErrValidation.Error(), err.Error()))
		return
	}

	shared.RespondWith(c, http.StatusOK, gin.H{"isAuthority": isAuthority}, "", shared.ReturnCodeSuccess)
}

func (og *oracleGroup) kickoffFetch(c *gin.Context) {
	request := KickoffRequest{}
	err := c.ShouldBindJSON(&request)
	if err != nil {
		shared.RespondWithValidationError(c, fmt.Sprintf("%s: %s", apiErrors.ErrValidation.Error(), apiErrors.ErrInvalidJSONRequest.Error()))
		return
	}

	err = og.facade.KickoffFetch(request.CustodyAccount, request.SourceName, request.SourceURL)
	if err != nil {
		respondWithSubmitError(c, err)
		return
	}

	log.Info("queued kickoff fetch call", "source", request.SourceName, "url", request.SourceURL)
	shared.RespondWith(c, http.StatusOK, gin.H{"queued": true}, "", shared.ReturnCodeSuccess)
}

func (og *oracleGroup) killFetch(c *gin.Context) {
	err := og.facade.KillFetch()
	if err != nil {
		respondWithSubmitError(c, err)
		return
	}

	log.Info("queued kill fetch call")
	shared.RespondWith(c, http.StatusOK, gin.H{"queued": true}, "", shared.ReturnCodeSuccess)
}

func (og *oracleGroup) addAuthority(c *gin.Context) {
	request := AuthorityRequest{}
	err := c.ShouldBindJSON(&request)
	if err != nil {
		shared.RespondWithValidationError(c, fmt.Sprintf("%s: %s", apiErrors.ErrValidation.Error(), apiErrors.ErrInvalidJSONRequest.Error()))
		return
	}

	err = og.facade.AddAuthority(request.Account)
	if err != nil {
		respondWithSubmitError(c, err)
		return
	}

	log.Info("queued add authority call", "account", request.Account)
	shared.RespondWith(c, http.StatusOK, gin.H{"queued": true}, "", shared.ReturnCodeSuccess)
}

func respondWithSubmitError(c *gin.Context, err error) {
	if errors.Is(err, facade.ErrInvalidAccount) || errors.Is(err, facade.ErrEmptySourceURL) {
		shared.RespondWithValidationError(c, fmt.Sprintf("%s: %s", apiErrors.ErrValidation.Error(), err.Error()))
		return
	}

	shared.RespondWithInternalError(c, fmt.Sprintf("%s: %s", apiErrors.ErrSubmitRootCall.Error(), err.Error()))
}
