package middleware

import (
	"log"
	"net/http"
	"strings"

	"tuition_billing/pkg"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	ContextUserIDKey   = "auth.user_id"
	HeaderUserIDBypass = "X-User-Id"
)

var errUnauthenticated = pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Authentication required", http.StatusUnauthorized)

// AuthOptions configures bearer token validation. Issuer and Audience are only
// enforced when set. AllowHeaderFallback accepts X-User-Id when no bearer token
// is sent and must stay off outside local environments.
type AuthOptions struct {
	Secret              string
	Issuer              string
	Audience            string
	AllowHeaderFallback bool
}

// Authenticate validates an HS256 bearer token and stores its subject as the
// caller's user id.
func Authenticate(opts AuthOptions) gin.HandlerFunc {
	parserOpts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if opts.Issuer != "" {
		parserOpts = append(parserOpts, jwt.WithIssuer(opts.Issuer))
	}
	if opts.Audience != "" {
		parserOpts = append(parserOpts, jwt.WithAudience(opts.Audience))
	}
	parser := jwt.NewParser(parserOpts...)

	return func(c *gin.Context) {
		authHeader := strings.TrimSpace(c.GetHeader("Authorization"))
		if authHeader == "" {
			if opts.AllowHeaderFallback {
				if userID := strings.TrimSpace(c.GetHeader(HeaderUserIDBypass)); userID != "" {
					c.Set(ContextUserIDKey, userID)
					c.Next()
					return
				}
			}
			abortUnauthenticated(c, "missing authorization header")
			return
		}

		tokenString, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok || opts.Secret == "" {
			abortUnauthenticated(c, "unsupported authorization scheme or no secret configured")
			return
		}

		claims := jwt.RegisteredClaims{}
		_, err := parser.ParseWithClaims(strings.TrimSpace(tokenString), &claims, func(*jwt.Token) (interface{}, error) {
			return []byte(opts.Secret), nil
		})
		if err != nil {
			abortUnauthenticated(c, err.Error())
			return
		}
		if strings.TrimSpace(claims.Subject) == "" {
			abortUnauthenticated(c, "token has no subject")
			return
		}

		c.Set(ContextUserIDKey, claims.Subject)
		c.Next()
	}
}

// UserID returns the authenticated caller, or "" when the route is not behind
// Authenticate.
func UserID(c *gin.Context) string {
	return c.GetString(ContextUserIDKey)
}

func abortUnauthenticated(c *gin.Context, reason string) {
	log.Printf("[auth][middleware] rejected path=%s reason=%q", c.Request.URL.Path, reason)
	c.AbortWithStatusJSON(errUnauthenticated.HTTPStatus, errUnauthenticated.ToHTTPError())
}
