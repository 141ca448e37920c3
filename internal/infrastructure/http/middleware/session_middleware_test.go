package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/video-assistant/pkg/config"
	"github.com/johnquangdev/video-assistant/pkg/jwt"
)

var sessionCfg = config.SessionConfig{CookieName: "va_session", TTL: time.Hour}

func run(t *testing.T, tokens *jwt.Manager, req *http.Request) (*httptest.ResponseRecorder, uuid.UUID) {
	t.Helper()
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var got uuid.UUID
	h := EchoSession(tokens, sessionCfg, nil)(func(c echo.Context) error {
		id, ok := GetSessionID(c)
		require.True(t, ok)
		got = id
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, h(c))
	return rec, got
}

func TestEchoSession_IssuesCookie(t *testing.T) {
	tokens := jwt.NewManager("secret", time.Hour)
	rec, id := run(t, tokens, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.NotEqual(t, uuid.Nil, id)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "va_session", cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)

	claims, err := tokens.ValidateSessionToken(cookies[0].Value)
	require.NoError(t, err)
	assert.Equal(t, id, claims.SessionID)
}

func TestEchoSession_ReusesValidCookie(t *testing.T) {
	tokens := jwt.NewManager("secret", time.Hour)
	want := uuid.New()
	token, err := tokens.GenerateSessionToken(want)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "va_session", Value: token})
	rec, id := run(t, tokens, req)

	assert.Equal(t, want, id)
	assert.Empty(t, rec.Result().Cookies())
}

func TestEchoSession_ReplacesForgedCookie(t *testing.T) {
	forged, err := jwt.NewManager("other", time.Hour).GenerateSessionToken(uuid.New())
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "va_session", Value: forged})
	rec, id := run(t, jwt.NewManager("secret", time.Hour), req)

	assert.NotEqual(t, uuid.Nil, id)
	assert.Len(t, rec.Result().Cookies(), 1)
}

func TestEchoSession_RefreshesAgingCookie(t *testing.T) {
	want := uuid.New()
	aging, err := jwt.NewManager("secret", 10*time.Minute).GenerateSessionToken(want)
	require.NoError(t, err)

	tokens := jwt.NewManager("secret", time.Hour)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "va_session", Value: aging})
	rec, id := run(t, tokens, req)

	assert.Equal(t, want, id)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, 3600, cookies[0].MaxAge)

	claims, err := tokens.ValidateSessionToken(cookies[0].Value)
	require.NoError(t, err)
	assert.Equal(t, want, claims.SessionID)
}
