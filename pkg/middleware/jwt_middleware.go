package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"worknest/pkg/utils"
)

const (
	AccessTokenCookie  = "AccessToken"
	RefreshTokenCookie = "RefreshToken"
)

// SetAuthCookies attaches both token cookies to the response. Cookies are
// http-only; SameSite=None + Secure so the separately hosted frontend can
// send them.
func SetAuthCookies(c *gin.Context, accessToken, refreshToken string) {
	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(AccessTokenCookie, accessToken, int(utils.AccessTokenTTL.Seconds()), "/", "", true, true)
	c.SetCookie(RefreshTokenCookie, refreshToken, int(utils.RefreshTokenTTL.Seconds()), "/", "", true, true)
}

func ClearAuthCookies(c *gin.Context) {
	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(AccessTokenCookie, "", -1, "/", "", true, true)
	c.SetCookie(RefreshTokenCookie, "", -1, "/", "", true, true)
}

// Authenticate validates the access-token cookie and, when it is absent or
// no longer verifies, silently renews it from the refresh-token cookie
// before letting the request through. Every rejection is a terminal 401.
func Authenticate(requiredRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		accessToken, err := c.Cookie(AccessTokenCookie)
		if err != nil || accessToken == "" {
			handleRefreshToken(c)
			return
		}

		claims, err := utils.ValidateToken(accessToken)
		if err != nil {
			// Expired or invalid either way: the refresh path decides.
			handleRefreshToken(c)
			return
		}

		if claims.Role != requiredRole {
			utils.RespondError(c, http.StatusUnauthorized, "Access denied. Insufficient role.")
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("role", claims.Role)
		c.Next()
	}
}

func handleRefreshToken(c *gin.Context) {
	refreshToken, err := c.Cookie(RefreshTokenCookie)
	if err != nil || refreshToken == "" {
		utils.RespondError(c, http.StatusUnauthorized, "Access denied. Refresh token not provided.")
		c.Abort()
		return
	}

	claims, err := utils.ValidateToken(refreshToken)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Access denied. Refresh token not valid.")
		c.Abort()
		return
	}

	if claims.UserID == "" || claims.Role == "" {
		utils.RespondError(c, http.StatusUnauthorized, "Access denied. Token payload invalid.")
		c.Abort()
		return
	}

	newAccessToken, err := utils.CreateAccessToken(claims.UserID, claims.Role)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Access denied. Access token not valid.")
		c.Abort()
		return
	}

	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(AccessTokenCookie, newAccessToken, int(utils.AccessTokenTTL.Seconds()), "/", "", true, true)

	c.Set("user_id", claims.UserID)
	c.Set("role", claims.Role)
	c.Next()
}
