package groups_test

import (
	"encoding/json"
	"io"

	"github.com/gin-gonic/gin"
	"github.com/multiversx/mx-chain-htlc-oracle-go/api/shared"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func startWebServer(group shared.GroupHandler, path string, middlewares ...shared.MiddlewareProcessor) *gin.Engine {
	ws := gin.New()
	routes := ws.Group(path)
	group.RegisterRoutes(routes, middlewares)

	return ws
}

func loadResponse(rsp io.Reader, destination interface{}) {
	jsonParser := json.NewDecoder(rsp)
	err := jsonParser.Decode(destination)
	if err != nil {
		panic(err)
	}
}
