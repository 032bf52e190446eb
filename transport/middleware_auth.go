package transport

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/scrapmarket/application/user"
	"github.com/muhammadheryan/scrapmarket/constant"
	utilsContext "github.com/muhammadheryan/scrapmarket/utils/context"
	"github.com/muhammadheryan/scrapmarket/utils/errors"
)

// AuthMiddleware returns a middleware that validates gateway JWT sessions via
// UserApp and embeds the buyer identity plus the backend token into the
// request context. Public endpoints pass through without a token.
func AuthMiddleware(userApp user.UserApp) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublicPath(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			token := bearerToken(r)
			if token == "" {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}

			session, err := userApp.ValidateToken(r.Context(), token)
			if err != nil {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}

			ctx := utilsContext.WithSession(r.Context(), session)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if auth == "" || !strings.HasPrefix(auth, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(auth, "Bearer ")
}

// isPublicPath defines which endpoints are public (no auth required)
func isPublicPath(path string) bool {
	if strings.HasPrefix(path, "/swagger/") || strings.HasPrefix(path, "/internal/") {
		return true
	}
	if path == "/login" || path == "/auctions/active" {
		return true
	}
	if path == "/listings" || (strings.HasPrefix(path, "/listings/") && !strings.Contains(strings.TrimPrefix(path, "/listings/"), "/")) {
		return true
	}

	return false
}
