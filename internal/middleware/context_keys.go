package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// accountScopeKey is the key used to store the requested account scope in the
// Gin context.
const accountScopeKey = contextKey("accountScope")

// AccountScopeHeader names the optional header selecting an account. Requests
// without it run in single-tenant mode and see unscoped data.
const AccountScopeHeader = "X-Account-ID"

// AccountScopeMiddleware reads the account header once per request and stores
// the trimmed value for handlers.
func AccountScopeMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if v := strings.TrimSpace(c.GetHeader(AccountScopeHeader)); v != "" {
			c.Set(string(accountScopeKey), v)
		}
		c.Next()
	}
}

// GetAccountScopeFromContext returns the account scope for the request, or nil
// when the request is unscoped.
func GetAccountScopeFromContext(c *gin.Context) *string {
	v, exists := c.Get(string(accountScopeKey))
	if !exists {
		return nil
	}
	scope, ok := v.(string)
	if !ok || scope == "" {
		return nil
	}
	return &scope
}
