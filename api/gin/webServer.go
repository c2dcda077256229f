package gin

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/multiversx/mx-chain-core-go/core/check"
	apiErrors "github.com/multiversx/mx-chain-htlc-oracle-go/api/errors"
	"github.com/multiversx/mx-chain-htlc-oracle-go/api/groups"
	"github.com/multiversx/mx-chain-htlc-oracle-go/api/middleware"
	"github.com/multiversx/mx-chain-htlc-oracle-go/api/shared"
	"github.com/multiversx/mx-chain-htlc-oracle-go/facade"
	logger "github.com/multiversx/mx-chain-logger-go"
)

var log = logger.GetOrCreate("api/gin")

const metricsPath = "/metrics"

// ArgsNewWebServer holds the arguments needed to create a new instance of webServer
type ArgsNewWebServer struct {
	Facade shared.FacadeHandler
}

type webServer struct {
	sync.RWMutex
	facade     shared.FacadeHandler
	httpServer shared.HttpServerCloser
	groups     map[string]shared.GroupHandler
}

// NewGinWebServerHandler returns a new instance of webServer
func NewGinWebServerHandler(args ArgsNewWebServer) (*webServer, error) {
	if check.IfNil(args.Facade) {
		return nil, apiErrors.ErrNilFacadeHandler
	}

	return &webServer{
		facade: args.Facade,
	}, nil
}

// StartHttpServer will create a new instance of http.Server, populate it with all the routes and start it
func (ws *webServer) StartHttpServer() error {
	ws.Lock()
	defer ws.Unlock()

	if ws.facade.RestApiInterface() == facade.DefaultRestPortOff {
		log.Debug("web server is turned off")
		return nil
	}

	engine, err := ws.createEngine()
	if err != nil {
		return err
	}

	server := &http.Server{Addr: ws.facade.RestApiInterface(), Handler: engine}
	log.Debug("creating gin web sever", "interface", ws.facade.RestApiInterface())
	ws.httpServer, err = NewHttpServer(server)
	if err != nil {
		return err
	}

	log.Debug("starting web server",
		"SimultaneousRequests", ws.facade.ApiConfig().SimultaneousRequests,
		"debug mode", ws.facade.RestAPIServerDebugMode(),
	)

	go ws.httpServer.Start()

	return nil
}

func (ws *webServer) createEngine() (*gin.Engine, error) {
	if !ws.facade.RestAPIServerDebugMode() {
		gin.DefaultWriter = &ginWriter{}
		gin.DefaultErrorWriter = &ginErrorWriter{}
		gin.DisableConsoleColor()
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.Default()
	engine.Use(cors.Default())

	processors, err := ws.createMiddlewareLimiters()
	if err != nil {
		return nil, err
	}
	for _, proc := range processors {
		if check.IfNil(proc) {
			continue
		}

		engine.Use(proc.MiddlewareHandlerFunc())
	}

	err = ws.createGroups()
	if err != nil {
		return nil, err
	}

	ws.registerRoutes(engine)

	return engine, nil
}

func (ws *webServer) createGroups() error {
	groupsMap := make(map[string]shared.GroupHandler)

	nodeGroup, err := groups.NewNodeGroup(ws.facade)
	if err != nil {
		return err
	}
	groupsMap["node"] = nodeGroup

	swapsGroup, err := groups.NewSwapsGroup(ws.facade)
	if err != nil {
		return err
	}
	groupsMap["swaps"] = swapsGroup

	adminKeyChecker := middleware.NewAdminKeyChecker(ws.facade.ApiConfig().AdminKey)
	oracleGroup, err := groups.NewOracleGroup(ws.facade, adminKeyChecker)
	if err != nil {
		return err
	}
	groupsMap["oracle"] = oracleGroup

	poolGroup, err := groups.NewPoolGroup(ws.facade)
	if err != nil {
		return err
	}
	groupsMap["pool"] = poolGroup

	eventsGroup, err := groups.NewEventsGroup(ws.facade)
	if err != nil {
		return err
	}
	groupsMap["events"] = eventsGroup

	ws.groups = groupsMap

	return nil
}

func (ws *webServer) registerRoutes(ginRouter *gin.Engine) {
	for groupName, groupHandler := range ws.groups {
		log.Debug("registering gin API group", "group name", groupName)
		ginGroup := ginRouter.Group(fmt.Sprintf("/%s", groupName))
		groupHandler.RegisterRoutes(ginGroup, nil)
	}

	ginRouter.GET(metricsPath, gin.WrapH(ws.facade.MetricsHandler()))

	if ws.facade.RestAPIServerDebugMode() {
		pprof.Register(ginRouter)
	}
}

func (ws *webServer) createMiddlewareLimiters() ([]shared.MiddlewareProcessor, error) {
	apiConfig := ws.facade.ApiConfig()
	middlewares := make([]shared.MiddlewareProcessor, 0)

	if apiConfig.Logging.LoggingEnabled {
		threshold := time.Duration(apiConfig.Logging.ThresholdInMicroSeconds) * time.Microsecond
		middlewares = append(middlewares, middleware.NewResponseLoggerMiddleware(threshold))
	}

	globalLimiter, err := middleware.NewGlobalThrottler(apiConfig.SimultaneousRequests)
	if err != nil {
		return nil, err
	}
	middlewares = append(middlewares, globalLimiter)

	return middlewares, nil
}

// Close will handle the closing of inner components
func (ws *webServer) Close() error {
	ws.Lock()
	defer ws.Unlock()

	if check.IfNil(ws.httpServer) {
		return nil
	}

	err := ws.httpServer.Close()
	if err != nil {
		err = fmt.Errorf("%w while closing the http server in gin/webServer", err)
	}

	return err
}

// IsInterfaceNil returns true if there is no value under the interface
func (ws *webServer) IsInterfaceNil() bool {
	return ws == nil
}
