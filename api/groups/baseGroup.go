package groups

import (
	"github.com/gin-gonic/gin"
	"github.com/multiversx/mx-chain-htlc-oracle-go/api/shared"
	logger "github.com/multiversx/mx-chain-logger-go"
)

var log = logger.GetOrCreate("api/groups")

type baseGroup struct {
	endpoints []*shared.EndpointHandlerData
}

// GetEndpoints returns all the endpoints specific to the group
func (bg *baseGroup) GetEndpoints() []*shared.EndpointHandlerData {
	return bg.endpoints
}

// RegisterRoutes will register all the endpoints to the given web server
func (bg *baseGroup) RegisterRoutes(
	ws *gin.RouterGroup,
	additionalMiddlewares []shared.MiddlewareProcessor,
) {
	for _, handlerData := range bg.endpoints {
		middlewares := make([]gin.HandlerFunc, 0)
		for _, middleware := range additionalMiddlewares {
			if middleware == nil || middleware.IsInterfaceNil() {
				continue
			}
			middlewares = append(middlewares, middleware.MiddlewareHandlerFunc())
		}

		beforeSpecificMiddlewares, afterSpecificMiddlewares := extractSpecificMiddlewares(handlerData.AdditionalMiddlewares)
		middlewares = append(middlewares, beforeSpecificMiddlewares...)
		middlewares = append(middlewares, handlerData.Handler)
		middlewares = append(middlewares, afterSpecificMiddlewares...)

		log.Trace("registering endpoint", "group", ws.BasePath(), "method", handlerData.Method, "path", handlerData.Path)
		ws.Handle(handlerData.Method, handlerData.Path, middlewares...)
	}
}

func extractSpecificMiddlewares(middlewares []shared.AdditionalMiddleware) ([]gin.HandlerFunc, []gin.HandlerFunc) {
	if len(middlewares) == 0 {
		return nil, nil
	}

	beforeMiddlewares := make([]gin.HandlerFunc, 0)
	afterMiddlewares := make([]gin.HandlerFunc, 0)
	for _, middleware := range middlewares {
		if middleware.Before {
			beforeMiddlewares = append(beforeMiddlewares, middleware.Middleware)
		} else {
			afterMiddlewares = append(afterMiddlewares, middleware.Middleware)
		}
	}

	return beforeMiddlewares, afterMiddlewares
}

// IsInterfaceNil returns true if there is no value under the interface
func (bg *baseGroup) IsInterfaceNil() bool {
	return bg == nil
}
