package middleware

import (
	"crypto/rand"
	"crypto/rsa"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harentsoaR/doctors-portal-api/internal/auth"
	"github.com/harentsoaR/doctors-portal-api/internal/logger"
)

func identityProbe(t *testing.T, v *auth.Verifier) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Identity(v, logger.Noop()))
	r.GET("/probe", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"email": VerifiedEmail(c)})
	})
	return r
}

func TestIdentity_FailOpen(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	verifier, err := auth.NewVerifier(&key.PublicKey)
	require.NoError(t, err)

	validToken, err := jwt.NewWithClaims(jwt.SigningMethodRS256, &auth.Claims{
		Email: "patient@x.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString(key)
	require.NoError(t, err)

	r := identityProbe(t, verifier)

	tests := []struct {
		name      string
		header    string
		wantEmail string
	}{
		{
			name:      "no header is anonymous",
			header:    "",
			wantEmail: "",
		},
		{
			name:      "valid bearer token binds identity",
			header:    "bearer " + validToken,
			wantEmail: "patient@x.com",
		},
		{
			name: "uppercase scheme is ignored",
			// The booking frontend always sends the lowercase scheme;
			// anything else is not even attempted.
			header:    "Bearer " + validToken,
			wantEmail: "",
		},
		{
			name:      "invalid token proceeds anonymous",
			header:    "bearer garbage",
			wantEmail: "",
		},
		{
			name:      "scheme without token proceeds anonymous",
			header:    "bearer ",
			wantEmail: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/probe", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			// Never a rejection from this layer, whatever the header held.
			assert.Equal(t, http.StatusOK, w.Code)
			assert.JSONEq(t, `{"email":"`+tt.wantEmail+`"}`, w.Body.String())
		})
	}
}
