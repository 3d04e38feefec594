package middleware

import (
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"

	"gallery/pkg/auth"
	apperrors "gallery/pkg/errors"
	httputil "gallery/pkg/http"
	"gallery/pkg/logger"
)

type TokenParser interface {
	Parse(token string) (auth.Principal, error)
}

// RequireAdmin guards a single route. A missing or invalid bearer token is
// rejected with 401, a valid non-admin token with 403.
func RequireAdmin(tokens TokenParser, log *logger.Logger, next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		principal, err := authenticate(tokens, r)
		if err != nil {
			log.Warn("Unauthorized request",
				"request_id", RequestIDFromContext(r.Context()),
				"path", r.URL.Path,
				"reason", err.Error(),
			)
			_ = httputil.WriteError(w, apperrors.Unauthorized("Authentication required"))
			return
		}
		if !principal.IsAdmin {
			log.Warn("Forbidden request",
				"request_id", RequestIDFromContext(r.Context()),
				"path", r.URL.Path,
				"user_id", principal.ID,
			)
			_ = httputil.WriteError(w, apperrors.Forbidden("Admin access required"))
			return
		}

		next(w, r.WithContext(auth.WithPrincipal(r.Context(), principal)), ps)
	}
}

func authenticate(tokens TokenParser, r *http.Request) (auth.Principal, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return auth.Principal{}, auth.ErrUnauthorized
	}
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return auth.Principal{}, auth.ErrUnauthorized
	}
	return tokens.Parse(strings.TrimSpace(token))
}
