package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/multiversx/mx-chain-htlc-oracle-go/api/errors"
	"github.com/multiversx/mx-chain-htlc-oracle-go/api/shared"
)

// AdminKeyHeader is the request header carrying the key of the privileged endpoints
const AdminKeyHeader = "X-Admin-Key"

// adminKeyChecker rejects the requests that do not carry the configured admin key. An empty
// configured key closes the privileged endpoints
type adminKeyChecker struct {
	adminKey []byte
}

// NewAdminKeyChecker creates a new instance of adminKeyChecker
func NewAdminKeyChecker(adminKey string) *adminKeyChecker {
	return &adminKeyChecker{
		adminKey: []byte(adminKey),
	}
}

// MiddlewareHandlerFunc returns the handler func used by the gin server on privileged endpoints
func (akc *adminKeyChecker) MiddlewareHandlerFunc() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !akc.isAuthorized(c.GetHeader(AdminKeyHeader)) {
			log.Debug("rejected privileged request", "path", c.Request.URL.Path, "remote", c.ClientIP())
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				shared.GenericAPIResponse{
					Data:  nil,
					Error: errors.ErrUnauthorized.Error(),
					Code:  shared.ReturnCodeUnauthorized,
				},
			)
			return
		}

		c.Next()
	}
}

func (akc *adminKeyChecker) isAuthorized(providedKey string) bool {
	if len(akc.adminKey) == 0 {
		return false
	}

	return subtle.ConstantTimeCompare(akc.adminKey, []byte(providedKey)) == 1
}

// IsInterfaceNil returns true if there is no value under the interface
func (akc *adminKeyChecker) IsInterfaceNil() bool {
	return akc == nil
}
