package shared

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/multiversx/mx-chain-htlc-oracle-go/config"
	"github.com/multiversx/mx-chain-htlc-oracle-go/data/api"
)

// MiddlewareProcessor defines a processor used internally by the web server when processing requests
type MiddlewareProcessor interface {
	MiddlewareHandlerFunc() gin.HandlerFunc
	IsInterfaceNil() bool
}

// HttpServerCloser defines the basic actions of starting and closing that a web server should be able to do
type HttpServerCloser interface {
	Start()
	Close() error
	IsInterfaceNil() bool
}

// GroupHandler defines the actions needed to be performed by an gin API group
type GroupHandler interface {
	RegisterRoutes(ws *gin.RouterGroup, additionalMiddlewares []MiddlewareProcessor)
	IsInterfaceNil() bool
}

// FacadeHandler defines all the methods that a facade should implement
type FacadeHandler interface {
	RestApiInterface() string
	RestAPIServerDebugMode() bool
	ApiConfig() config.ApiConfig
	GetNodeStatus() (*api.NodeStatus, error)
	GetSwap(swapIDHex string) (*api.SwapInfo, error)
	GetSources() ([]*api.EventSource, error)
	GetCustodyAccount() (string, error)
	GetAuthorities() ([]string, error)
	IsAuthority(accountHex string) (bool, error)
	GetPoolTransactions() []*api.PooledTransaction
	GetRecentEvents(maxEntries int) []*api.EventLogEntry
	SubscribeEvents(bufferSize int) (uint64, <-chan *api.EventLogEntry)
	UnsubscribeEvents(id uint64)
	KickoffFetch(custodyHex string, sourceName string, sourceURL string) error
	KillFetch() error
	AddAuthority(accountHex string) error
	MetricsHandler() http.Handler
	IsInterfaceNil() bool
}
