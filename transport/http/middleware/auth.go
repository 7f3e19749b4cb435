package middleware

import (
	"crypto/subtle"
	"net/http"
	"salon/config"
	"salon/infras/otel"
	"salon/shared/constant"
	"salon/shared/failure"
	"salon/transport/http/response"

	"github.com/rs/zerolog/log"
)

const MessageInvalidSecret = "Invalid secret"

// Secret guards machine-to-machine endpoints with a shared secret header.
// An unset secret leaves the endpoint open.
type Secret interface {
	Webhook(next http.Handler) http.Handler
	Upload(next http.Handler) http.Handler
}

type secretImpl struct {
	otel otel.Otel
	cfg  *config.Config
}

func NewSecretMiddleware(otel otel.Otel, cfg *config.Config) Secret {
	return &secretImpl{
		otel: otel,
		cfg:  cfg,
	}
}

func (m *secretImpl) Webhook(next http.Handler) http.Handler {
	return m.require("webhook", constant.RequestHeaderWebhookSecret, m.cfg.External.Automation.WebhookSecret, next)
}

func (m *secretImpl) Upload(next http.Handler) http.Handler {
	return m.require("upload", constant.RequestHeaderUploadSecret, m.cfg.External.Upload.Secret, next)
}

func (m *secretImpl) require(name, header, secret string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		_, scope := m.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, name+".secret.middleware")

		if secret == "" {
			scope.End()
			next.ServeHTTP(writer, request)

			return
		}

		given := request.Header.Get(header)

		if subtle.ConstantTimeCompare([]byte(given), []byte(secret)) != 1 {
			err := failure.Unauthorized(MessageInvalidSecret)

			log.Warn().Str("endpoint", name).Msg("rejected request with a wrong secret")
			scope.TraceError(err)
			scope.End()

			response.WithError(writer, err)

			return
		}

		scope.End()
		next.ServeHTTP(writer, request)
	})
}
