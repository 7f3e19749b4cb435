package middleware

import (
	"context"
	"net/http"
	"salon/config"
	"salon/shared/constant"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/securecookie"
	"github.com/rs/zerolog/log"
)

const (
	sessionCookieName = "salon_session"
	sessionKeyLength  = 32
)

// Session ties a draft to one browser through a signed, encrypted cookie.
type Session interface {
	Session(next http.Handler) http.Handler
}

type sessionImpl struct {
	codec  *securecookie.SecureCookie
	maxAge int
	secure bool
}

func NewSession(cfg *config.Config) Session {
	hashKey := []byte(cfg.App.Session.HashKey)
	blockKey := []byte(cfg.App.Session.BlockKey)

	if len(hashKey) == 0 {
		log.Warn().Msg("no session hash key configured, sessions will not survive a restart")

		hashKey = securecookie.GenerateRandomKey(sessionKeyLength)
	}

	// Block keys must be 16, 24 or 32 bytes long; anything else disables encryption.
	switch len(blockKey) {
	case 16, 24, 32:
	default:
		blockKey = nil
	}

	maxAge := cfg.App.Draft.TTLSeconds

	codec := securecookie.New(hashKey, blockKey)
	codec.MaxAge(maxAge)

	return &sessionImpl{
		codec:  codec,
		maxAge: maxAge,
		secure: cfg.App.Session.Secure,
	}
}

func (s *sessionImpl) Session(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		sessionID := s.read(request)
		if sessionID == "" {
			sessionID = uuid.NewString()
		}

		// Re-issued on every request so the cookie expires with the draft TTL, which each save renews.
		s.write(writer, sessionID)

		ctx := context.WithValue(request.Context(), constant.ContextKeySessionID, sessionID)
		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}

func (s *sessionImpl) read(request *http.Request) string {
	cookie, err := request.Cookie(sessionCookieName)
	if err != nil {
		return ""
	}

	var sessionID string
	if err = s.codec.Decode(sessionCookieName, cookie.Value, &sessionID); err != nil {
		log.Debug().Err(err).Msg("discarding invalid session cookie")

		return ""
	}

	return sessionID
}

func (s *sessionImpl) write(writer http.ResponseWriter, sessionID string) {
	encoded, err := s.codec.Encode(sessionCookieName, sessionID)
	if err != nil {
		log.Error().Err(err).Msg("failed to encode session cookie")

		return
	}

	http.SetCookie(writer, &http.Cookie{
		Name:     sessionCookieName,
		Value:    encoded,
		Path:     "/",
		MaxAge:   s.maxAge,
		Expires:  time.Now().Add(time.Duration(s.maxAge) * time.Second),
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// SessionID returns the browser session set by the Session middleware.
func SessionID(ctx context.Context) string {
	sessionID, _ := ctx.Value(constant.ContextKeySessionID).(string)

	return sessionID
}
