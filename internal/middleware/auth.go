package middleware

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"marketplace-payout-api/internal/config"
	"marketplace-payout-api/internal/constant"
	"marketplace-payout-api/internal/utils"
)

// AuthHMAC verifies X-Signature as the hex HMAC-SHA256 of the raw request
// body under the shared secret. The body is re-wrapped so downstream binding
// still works.
func AuthHMAC() gin.HandlerFunc {
	return func(c *gin.Context) {
		sig, err := hex.DecodeString(c.GetHeader("X-Signature"))
		if err != nil || len(sig) == 0 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, utils.Error(constant.CodeUnauthorized))
			return
		}

		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, utils.Error(constant.CodeInvalidParams))
			return
		}
		c.Request.Body = io.NopCloser(bytes.NewReader(body))

		mac := hmac.New(sha256.New, []byte(config.C.Security.HMACSecret))
		mac.Write(body)
		if !hmac.Equal(sig, mac.Sum(nil)) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, utils.Error(constant.CodeSignatureError))
			return
		}
		c.Next()
	}
}
