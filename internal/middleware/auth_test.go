package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/user/moviestore/internal/model"
)

func testUser() *model.User {
	return &model.User{
		ID:        uuid.New(),
		FirstName: "Alice",
		LastName:  "Liddell",
		Username:  "alice",
		Email:     "alice@x.com",
	}
}

func TestTokenManager_IssueAndParse(t *testing.T) {
	m := NewTokenManager("secret", "moviestore", "moviestore-clients", time.Hour)
	user := testUser()

	token, expiresAt, err := m.Issue(user)
	require.NoError(t, err)
	require.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := m.Parse(token)
	require.NoError(t, err)
	require.Equal(t, user.ID.String(), claims.Subject)
	require.Equal(t, "alice@x.com", claims.Email)
	require.Equal(t, "Alice Liddell", claims.Name)
	require.Equal(t, "alice", claims.Username)
	require.Equal(t, "moviestore", claims.Issuer)
	require.Equal(t, jwt.ClaimStrings{"moviestore-clients"}, claims.Audience)
	_, err = uuid.Parse(claims.ID)
	require.NoError(t, err)

	other, _, err := m.Issue(user)
	require.NoError(t, err)
	otherClaims, err := m.Parse(other)
	require.NoError(t, err)
	require.NotEqual(t, claims.ID, otherClaims.ID)
}

func TestTokenManager_RejectsForeignTokens(t *testing.T) {
	m := NewTokenManager("secret", "moviestore", "clients", time.Hour)
	user := testUser()

	wrongSecret, _, err := NewTokenManager("other", "moviestore", "clients", time.Hour).Issue(user)
	require.NoError(t, err)
	_, err = m.Parse(wrongSecret)
	require.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)

	wrongIssuer, _, err := NewTokenManager("secret", "someone-else", "clients", time.Hour).Issue(user)
	require.NoError(t, err)
	_, err = m.Parse(wrongIssuer)
	require.ErrorIs(t, err, jwt.ErrTokenInvalidIssuer)

	wrongAudience, _, err := NewTokenManager("secret", "moviestore", "others", time.Hour).Issue(user)
	require.NoError(t, err)
	_, err = m.Parse(wrongAudience)
	require.ErrorIs(t, err, jwt.ErrTokenInvalidAudience)
}

func TestTokenManager_RejectsExpired(t *testing.T) {
	m := NewTokenManager("secret", "moviestore", "clients", time.Hour)
	m.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	token, _, err := m.Issue(testUser())
	require.NoError(t, err)

	m.now = time.Now
	_, err = m.Parse(token)
	require.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestRequireAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := NewTokenManager("secret", "moviestore", "clients", time.Hour)
	user := testUser()
	token, _, err := m.Issue(user)
	require.NoError(t, err)

	r := gin.New()
	r.GET("/orders", RequireAuth(m), func(c *gin.Context) {
		id, ok := GetUserID(c)
		require.True(t, ok)
		c.String(http.StatusOK, id.String())
	})

	cases := []struct {
		name   string
		header string
		status int
	}{
		{"valid", "Bearer " + token, http.StatusOK},
		{"missing", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic " + token, http.StatusUnauthorized},
		{"garbage", "Bearer not-a-token", http.StatusUnauthorized},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/orders", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			require.Equal(t, tc.status, w.Code)
			if tc.status == http.StatusOK {
				require.Equal(t, user.ID.String(), w.Body.String())
			}
		})
	}
}

func TestCORS_Preflight(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Security(), CORS())
	r.POST("/movies", func(c *gin.Context) { c.Status(http.StatusCreated) })

	req := httptest.NewRequest(http.MethodOptions, "/movies", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusNoContent, w.Code)
	require.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	require.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
}
