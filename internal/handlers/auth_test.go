package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"queryhub_back_end/internal/middleware"
)

const testSecret = "secret_de_test"

func authRouter(production bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewAuthHandler(testSecret, production)
	r.POST("/jwt", h.IssueToken)
	r.POST("/logout", h.Logout)
	return r
}

func sessionCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Name == middleware.CookieName {
			return c
		}
	}
	t.Fatal("cookie de session absent de la réponse")
	return nil
}

func TestIssueTokenPoseLeCookie(t *testing.T) {
	r := authRouter(false)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/jwt", strings.NewReader(`{"email":"alice@example.com"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	cookie := sessionCookie(t, w)
	require.True(t, cookie.HttpOnly)
	require.False(t, cookie.Secure)
	require.Equal(t, http.SameSiteStrictMode, cookie.SameSite)
	require.Equal(t, int(time.Hour.Seconds()), cookie.MaxAge)

	var body struct {
		Success bool   `json:"success"`
		Token   string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.True(t, body.Success)
	require.Equal(t, cookie.Value, body.Token)
}

// L'identité signée doit ressortir intacte du token, avec une
// expiration à une heure
func TestIssueTokenClaims(t *testing.T) {
	r := authRouter(false)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/jwt", strings.NewReader(`{"email":"alice@example.com","name":"Alice"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	cookie := sessionCookie(t, w)
	token, err := jwt.Parse(cookie.Value, func(token *jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)

	claims := token.Claims.(jwt.MapClaims)
	require.Equal(t, "alice@example.com", claims["email"])
	require.Equal(t, "Alice", claims["name"])

	exp, ok := claims["exp"].(float64)
	require.True(t, ok)
	require.InDelta(t, time.Now().Add(time.Hour).Unix(), int64(exp), 5)
}

// En production le cookie doit être Secure + SameSite=None
func TestIssueTokenAttributsProduction(t *testing.T) {
	r := authRouter(true)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/jwt", strings.NewReader(`{"email":"alice@example.com"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	cookie := sessionCookie(t, w)
	require.True(t, cookie.Secure)
	require.Equal(t, http.SameSiteNoneMode, cookie.SameSite)
}

// issue puis vérification : le middleware doit accepter le cookie et
// retrouver la même identité
func TestIssuePuisVerification(t *testing.T) {
	r := authRouter(false)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/jwt", strings.NewReader(`{"email":"alice@example.com"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	cookie := sessionCookie(t, w)

	var gotEmail string
	protected := gin.New()
	protected.GET("/me", middleware.AuthRequired(testSecret), func(c *gin.Context) {
		gotEmail = c.GetString("email")
		c.Status(http.StatusOK)
	})

	w2 := httptest.NewRecorder()
	req2 := httptest.NewRequest(http.MethodGet, "/me", nil)
	req2.AddCookie(&http.Cookie{Name: cookie.Name, Value: cookie.Value})
	protected.ServeHTTP(w2, req2)

	require.Equal(t, http.StatusOK, w2.Code)
	require.Equal(t, "alice@example.com", gotEmail)
}

// Le logout doit effacer le cookie avec les mêmes attributs que la pose
func TestLogoutEffaceLeCookie(t *testing.T) {
	for _, production := range []bool{false, true} {
		r := authRouter(production)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/logout", nil)
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		cookie := sessionCookie(t, w)
		require.Empty(t, cookie.Value)
		require.Negative(t, cookie.MaxAge)
		require.True(t, cookie.HttpOnly)
		require.Equal(t, production, cookie.Secure)
	}
}
