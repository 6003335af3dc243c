package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"queryhub_back_end/internal/middleware"
)

const sessionTTL = time.Hour

// AuthHandler émet et révoque le cookie de session. En production le
// cookie est Secure + SameSite=None (front et back sur des domaines
// différents) ; en dev il est non-Secure + SameSite=Strict.
type AuthHandler struct {
	secret     []byte
	production bool
}

func NewAuthHandler(secret string, production bool) *AuthHandler {
	return &AuthHandler{secret: []byte(secret), production: production}
}

// IssueToken signe l'identité fournie par le client (au minimum un
// email) avec une expiration d'une heure, et la pose en cookie http-only
func (h *AuthHandler) IssueToken(c *gin.Context) {
	var identity map[string]interface{}
	if err := c.ShouldBindJSON(&identity); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	claims := jwt.MapClaims{}
	for k, v := range identity {
		claims[k] = v
	}
	claims["exp"] = time.Now().Add(sessionTTL).Unix()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(h.secret)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur de signature du token"})
		return
	}

	h.setSessionCookie(c, token, int(sessionTTL.Seconds()))
	c.JSON(http.StatusOK, gin.H{"success": true, "token": token})
}

// Logout efface le cookie. Les attributs doivent refléter exactement
// ceux de la pose, sinon le navigateur ne supprime rien.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.setSessionCookie(c, "", -1)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, value string, maxAge int) {
	if h.production {
		c.SetSameSite(http.SameSiteNoneMode)
	} else {
		c.SetSameSite(http.SameSiteStrictMode)
	}
	c.SetCookie(middleware.CookieName, value, maxAge, "/", "", h.production, true)
}
