package groups

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/multiversx/mx-chain-core-go/core"
)

func parseUint32UrlParam(c *gin.Context, name string) (core.OptionalUint32, error) {
	param := c.Request.URL.Query().Get(name)
	if param == "" {
		return core.OptionalUint32{}, nil
	}

	value, err := strconv.ParseUint(param, 10, 32)
	if err != nil {
		return core.OptionalUint32{}, err
	}

	return core.OptionalUint32{Value: uint32(value), HasValue: true}, nil
}
