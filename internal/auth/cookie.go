package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SessionCookie is the name of the HTTP-only cookie carrying the session
// token.
const SessionCookie = "board_token"

// SetSessionCookie attaches a fresh session token to the response.
// HTTP-only and Secure, SameSite=None so the browser client can sit on a
// different origin than the API.
func SetSessionCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(SessionCookie, token, int(TokenTTL.Seconds()), "/", "", true, true)
}

// ClearSessionCookie expires the session cookie. Safe to call with no
// session present.
func ClearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(SessionCookie, "", -1, "/", "", true, true)
}
