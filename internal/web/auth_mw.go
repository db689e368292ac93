package web

import (
	"context"
	"net/http"
	"net/url"

	"CatShop/internal/session"
)

type ctxKey string

const sessionKey ctxKey = "session"

func sessionFromContext(ctx context.Context) (*session.Session, bool) {
	sess, ok := ctx.Value(sessionKey).(*session.Session)
	return sess, ok
}

// RequireLogin is the auth gateway for state-changing routes: anonymous
// requests are redirected to the login page with a next parameter
// pointing back at the original URL, and the handler never runs.
func (s *Server) RequireLogin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := s.Sessions.Load(r)
		if !sess.LoggedIn() {
			http.Redirect(w, r, "/login?next="+url.QueryEscape(r.URL.RequestURI()), http.StatusFound)
			return
		}

		ctx := context.WithValue(r.Context(), sessionKey, sess)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
