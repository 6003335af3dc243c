package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const CookieName = "token"

// AuthRequired vérifie le cookie de session avant de laisser passer la
// requête. Cookie absent → 401 ; signature ou expiration invalide → 403.
// Aucun store de session n'est consulté : la validité se joue uniquement
// sur la signature et l'exp embarquée.
func AuthRequired(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(CookieName)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Token manquant"})
			c.Abort()
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("méthode de signature inattendue: %v", token.Header["alg"])
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			c.JSON(http.StatusForbidden, gin.H{"error": "Token invalide ou expiré"})
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.JSON(http.StatusForbidden, gin.H{"error": "Token invalide ou expiré"})
			c.Abort()
			return
		}

		// Identité décodée à disposition des handlers suivants
		if email, ok := claims["email"].(string); ok {
			c.Set("email", email)
		}
		c.Set("user", claims)

		c.Next()
	}
}
