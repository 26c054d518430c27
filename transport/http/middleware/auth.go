package middleware

import (
	"context"
	"crypto/subtle"
	"darshan/config"
	"darshan/infras/otel"
	"darshan/shared/constant"
	"darshan/shared/failure"
	"darshan/shared/secret"
	"darshan/transport/http/response"
	"net/http"
)

const actorAdmin = "admin"

// Auth guards the administrative routes.
type Auth interface {
	APIKey(http.Handler) http.Handler
}

type authImpl struct {
	otel otel.Otel
	cfg  *config.Config
}

func NewAuthMiddleware(otel otel.Otel, cfg *config.Config) Auth {
	return &authImpl{
		otel: otel,
		cfg:  cfg,
	}
}

// APIKey admits requests carrying the configured admin key and marks them with the admin actor.
// A configured bcrypt hash takes precedence over the plain key. With neither configured every
// administrative request is refused.
func (m *authImpl) APIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx := request.Context()
		_, scope := m.otel.NewScope(ctx, constant.OtelHandlerScopeName, "api_key.middleware")

		apiKey := request.Header.Get(constant.RequestHeaderAPIKey)

		if apiKey == "" {
			err := failure.Unauthorized("missing api key")
			response.WithError(writer, err)

			scope.TraceError(err)
			scope.End()

			return
		}

		if !m.matches(apiKey) {
			err := failure.ForbiddenError
			response.WithError(writer, err)

			scope.TraceError(err)
			scope.End()

			return
		}

		ctx = context.WithValue(ctx, constant.ContextKeyActor, actorAdmin)

		scope.SetAttribute("http.source", "admin")
		scope.End()
		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}

func (m *authImpl) matches(apiKey string) bool {
	if m.cfg.App.APIKeyHash != "" {
		return secret.Verify(apiKey, m.cfg.App.APIKeyHash) == nil
	}

	expected := m.cfg.App.APIKey

	return expected != "" && subtle.ConstantTimeCompare([]byte(apiKey), []byte(expected)) == 1
}
