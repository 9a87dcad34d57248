package authentication

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Gowthamdvr/care-connect/apperror"
	"github.com/Gowthamdvr/care-connect/models"
)

const (
	ctxAccountID = "accountID"
	ctxRole      = "role"
)

const bearerPrefix = "Bearer "

// RequireAuth validates the bearer token and stores the caller's identity and
// role in the request context. Requests without a token, or with a scheme
// other than Bearer, fail as unauthenticated; bad or expired tokens surface
// their own kinds.
func RequireAuth(tokens *TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			err := apperror.New(apperror.KindUnauthenticated, "missing authorization header")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error(), "kind": err.Kind})
			return
		}
		if !strings.HasPrefix(header, bearerPrefix) {
			err := apperror.New(apperror.KindUnauthenticated, "authorization header is not a bearer token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error(), "kind": err.Kind})
			return
		}

		tokenString := strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))
		claims, err := tokens.Verify(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(apperror.HTTPStatus(err), gin.H{"error": err.Error(), "kind": apperror.KindOf(err)})
			return
		}

		c.Set(ctxAccountID, claims.AccountID)
		c.Set(ctxRole, claims.Role)
		c.Next()
	}
}

// CurrentActor returns the authenticated account id and role placed in the
// context by RequireAuth.
func CurrentActor(c *gin.Context) (string, models.Role, bool) {
	id, ok := c.Get(ctxAccountID)
	if !ok {
		return "", "", false
	}
	role, ok := c.Get(ctxRole)
	if !ok {
		return "", "", false
	}
	return id.(string), role.(models.Role), true
}
