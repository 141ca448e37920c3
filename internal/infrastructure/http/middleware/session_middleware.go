package middleware

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/video-assistant/pkg/config"
	"github.com/johnquangdev/video-assistant/pkg/jwt"
)

// SessionIDKey is the echo context key holding the caller's session id (uuid.UUID)
const SessionIDKey = "session_id"

// EchoSession returns an Echo middleware that reads the signed session cookie and
// sets SessionIDKey. A missing, tampered or expired cookie gets a fresh session;
// a valid cookie past half its lifetime is re-issued for the same session.
func EchoSession(tokens *jwt.Manager, cfg config.SessionConfig, logger *zap.Logger) echo.MiddlewareFunc {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if cookie, err := c.Cookie(cfg.CookieName); err == nil && cookie.Value != "" {
				claims, err := tokens.ValidateSessionToken(cookie.Value)
				if err == nil {
					if needsRefresh(claims, tokens.GetExpiry()) {
						if err := setSessionCookie(c, tokens, cfg, claims.SessionID); err != nil {
							logger.Warn("session.cookie.refresh_failed", zap.Error(err))
						}
					}
					c.Set(SessionIDKey, claims.SessionID)
					return next(c)
				}
				logger.Debug("session.cookie.rejected", zap.Error(err))
			}

			sessionID := uuid.New()
			if err := setSessionCookie(c, tokens, cfg, sessionID); err != nil {
				return echo.NewHTTPError(http.StatusInternalServerError, "Failed to start session")
			}
			c.Set(SessionIDKey, sessionID)
			return next(c)
		}
	}
}

// needsRefresh reports whether less than half of the token lifetime is left
func needsRefresh(claims *jwt.Claims, lifetime time.Duration) bool {
	if claims.ExpiresAt == nil {
		return true
	}
	return time.Until(claims.ExpiresAt.Time) < lifetime/2
}

// setSessionCookie signs a token for sessionID and puts it on the response headers.
// Websocket handlers must pass c.Response().Header() to the upgrader for it to reach the client.
func setSessionCookie(c echo.Context, tokens *jwt.Manager, cfg config.SessionConfig, sessionID uuid.UUID) error {
	token, err := tokens.GenerateSessionToken(sessionID)
	if err != nil {
		return err
	}
	c.SetCookie(&http.Cookie{
		Name:     cfg.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(tokens.GetExpiry().Seconds()),
		HttpOnly: true,
		Secure:   cfg.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// GetSessionID retrieves the session id set by EchoSession
func GetSessionID(c echo.Context) (uuid.UUID, bool) {
	id, ok := c.Get(SessionIDKey).(uuid.UUID)
	return id, ok
}
