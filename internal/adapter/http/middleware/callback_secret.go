package middleware

import (
	"crypto/subtle"
	"log"
	"net/http"

	"tuition_billing/pkg"

	"github.com/gin-gonic/gin"
)

const HeaderCallbackSecret = "X-Callback-Secret"

var errInvalidCallbackSecret = pkg.NewDomainErrorSimple("INVALID_CALLBACK_SECRET", "Invalid callback secret", http.StatusUnauthorized)

// CallbackSecret guards the validator callbacks. An empty secret disables the check.
func CallbackSecret(secret string) gin.HandlerFunc {
	expected := []byte(secret)
	return func(c *gin.Context) {
		if len(expected) == 0 {
			c.Next()
			return
		}
		got := []byte(c.GetHeader(HeaderCallbackSecret))
		if subtle.ConstantTimeCompare(got, expected) != 1 {
			log.Printf("[verdict][middleware] callback secret mismatch path=%s", c.Request.URL.Path)
			c.AbortWithStatusJSON(errInvalidCallbackSecret.HTTPStatus, errInvalidCallbackSecret.ToHTTPError())
			return
		}
		c.Next()
	}
}
