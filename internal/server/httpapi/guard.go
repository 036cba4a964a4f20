package httpapi

import (
	"net/http"
	"strings"

	"github.com/dmitrijs2005/clothescatalog/internal/common"
	"github.com/dmitrijs2005/clothescatalog/internal/server/models"
)

// Principal is the caller of an authenticated request. User is nil when
// the token was valid but its subject no longer exists; such a principal
// passes no role check.
type Principal struct {
	User *models.User
}

// AuthedHandler is an AppHandler that also receives the resolved caller.
type AuthedHandler func(w http.ResponseWriter, r *http.Request, p Principal) error

func extractBearerToken(header string) (string, error) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, common.BearerScheme) {
		return "", common.ErrNotAuthenticated
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return "", common.ErrNotAuthenticated
	}
	return token, nil
}

// requireAuth resolves the bearer token into a Principal before calling
// next. Missing credentials, expired tokens and bad tokens fail with the
// matching 401 error.
func (h *Handler) requireAuth(next AuthedHandler) AppHandler {
	return func(w http.ResponseWriter, r *http.Request) error {
		token, err := extractBearerToken(r.Header.Get(common.AuthorizationHeaderName))
		if err != nil {
			return err
		}

		user, err := h.users.ResolveToken(r.Context(), token)
		if err != nil {
			return err
		}

		return next(w, r, Principal{User: user})
	}
}

// requireRole lets the request through only when the principal holds one of
// roles.
func requireRole(next AuthedHandler, roles ...models.Role) AuthedHandler {
	return func(w http.ResponseWriter, r *http.Request, p Principal) error {
		if !p.User.HasRole(roles...) {
			return common.ErrForbidden
		}
		return next(w, r, p)
	}
}
