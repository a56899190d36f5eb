package middleware

import (
	"net/http"
	"strings"

	"github.com/beka-birhanu/amazeing/service/i"
	"github.com/gin-gonic/gin"
)

const (
	// ContextUserClaims is the key used to store token claims in the Gin context.
	ContextUserClaims = "userClaims"
)

// Authoriz rejects requests without a valid bearer token.
func Authoriz(ts i.Tokenizer) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Retrieve the access token from the Authorization header.
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		// Split the "Bearer" prefix from the token.
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		claims, err := ts.Decode(parts[1])
		if err != nil {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		c.Set(ContextUserClaims, claims)
		c.Next()
	}
}

// Subject returns the "sub" claim of the authorized caller.
func Subject(c *gin.Context) (string, bool) {
	value, ok := c.Get(ContextUserClaims)
	if !ok {
		return "", false
	}
	claims, ok := value.(map[string]interface{})
	if !ok {
		return "", false
	}
	sub, ok := claims["sub"].(string)
	return sub, ok && sub != ""
}
