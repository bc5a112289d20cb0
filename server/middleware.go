package server

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/dvrz/dvrz/pkg/logger"
	"github.com/dvrz/dvrz/pkg/pagination"
)

// LogMiddleware attaches a request-scoped logger carrying a request id.
func (s Server) LogMiddleware() mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := uuid.New()
			log := s.baseLogger.With("request_id", id.String())
			log.Debugw("request", "method", r.Method, "path", r.URL.Path)

			ctx := logger.WithCtx(r.Context(), log)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Session carries the caller's media-server credentials, passed per
// request so the engine itself stays stateless.
type Session struct {
	UserID string
	Token  string
}

func sessionFrom(r *http.Request) Session {
	return Session{
		UserID: r.Header.Get("X-User-Id"),
		Token:  r.Header.Get("X-Emby-Token"),
	}
}

// ParsePaginationParams reads page/pageSize query parameters. Absent
// parameters mean no pagination.
func ParsePaginationParams(r *http.Request) (pagination.Params, error) {
	params := pagination.Params{}

	if p := r.URL.Query().Get("page"); p != "" {
		page, err := strconv.Atoi(p)
		if err != nil || page < 1 {
			return params, fmt.Errorf("invalid page: %q", p)
		}
		params.Page = page
	}

	if ps := r.URL.Query().Get("pageSize"); ps != "" {
		size, err := strconv.Atoi(ps)
		if err != nil || size < 1 {
			return params, fmt.Errorf("invalid pageSize: %q", ps)
		}
		params.PageSize = size
	}

	if params.PageSize != 0 && params.Page == 0 {
		params.Page = 1
	}

	return params, nil
}
