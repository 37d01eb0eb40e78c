package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/marketprobe/internal/domain/models"
)

// AccessKeyParam is the query parameter carrying the API key.
const AccessKeyParam = "access_key"

const (
	MsgMissingAccessKey = "You have not supplied an API Access Key. [Required format: access_key=YOUR_ACCESS_KEY]"
	MsgInvalidAccessKey = "You have not supplied a valid API Access Key."
)

// AccessKey rejects requests whose access_key is absent (401
// missing_access_key) or not one of keys (401 invalid_access_key).
func AccessKey(keys []string) gin.HandlerFunc {
	allowed := make([][]byte, 0, len(keys))
	for _, k := range keys {
		allowed = append(allowed, []byte(k))
	}

	return func(c *gin.Context) {
		key := c.Query(AccessKeyParam)
		if key == "" {
			AbortWithError(c, http.StatusUnauthorized, models.CodeMissingAccessKey, MsgMissingAccessKey, nil)
			return
		}
		for _, a := range allowed {
			if subtle.ConstantTimeCompare([]byte(key), a) == 1 {
				c.Next()
				return
			}
		}
		AbortWithError(c, http.StatusUnauthorized, models.CodeInvalidAccessKey, MsgInvalidAccessKey, nil)
	}
}
