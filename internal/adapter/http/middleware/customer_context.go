package middleware

import (
	"net/http"
	"strings"

	"greenscape/pkg"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	ContextCustomerID    = "customer_id"
	ContextCustomerEmail = "customer_email"
)

type customerClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// CustomerContext resolves the optional Authorization: Bearer token the
// portal's session service issues (HS256, shared secret) into an explicit
// customer identity on the request context. No token means guest; payment
// and lookup flows work without one. A token that is present but invalid is
// rejected; identity is never inferred from anything else.
func CustomerContext(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, ok := extractBearer(c.Request)
		if !ok {
			c.Next()
			return
		}

		// Without a configured secret every signature check would run
		// against the empty key, which a forger can satisfy. Refuse the
		// token instead of validating it.
		if secret == "" {
			appErr := pkg.NewDomainErrorSimple("INVALID_SESSION", "Invalid or expired session token", http.StatusUnauthorized)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}

		var claims customerClaims
		_, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		},
			jwt.WithValidMethods([]string{"HS256"}),
			jwt.WithExpirationRequired(),
		)
		if err != nil {
			appErr := pkg.NewDomainErrorSimple("INVALID_SESSION", "Invalid or expired session token", http.StatusUnauthorized)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}

		c.Set(ContextCustomerID, claims.Subject)
		c.Set(ContextCustomerEmail, strings.ToLower(strings.TrimSpace(claims.Email)))
		c.Next()
	}
}

// extractBearer pulls the token string out of "Authorization: Bearer <token>".
func extractBearer(r *http.Request) (string, bool) {
	h := r.Header.Get("Authorization")
	if h == "" {
		return "", false
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", false
	}
	return parts[1], true
}
