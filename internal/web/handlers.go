package web

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"CatShop/internal/catalog"
	"CatShop/internal/session"
	"CatShop/internal/user"
	"CatShop/pkg/kit"
)

type Server struct {
	Log      *zap.Logger
	Users    user.Store
	Catalog  catalog.Store
	Sessions *session.Manager
	View     *View
}

// basePage carries what the layout template needs on every page.
type basePage struct {
	Username  string
	CartCount int
	Flashes   []session.Flash
}

// startPage drains the notice queue and persists the session before the
// body is written. Every rendering handler goes through here so notices
// display at most once.
func (s *Server) startPage(w http.ResponseWriter, sess *session.Session) basePage {
	bp := basePage{
		Username: sess.UserID,
		Flashes:  sess.PopFlashes(),
	}
	if sess.LoggedIn() {
		bp.CartCount = sess.Cart.Len()
	}
	if err := s.Sessions.Save(w, sess); err != nil {
		s.Log.Error("save session", zap.Error(err))
	}
	return bp
}

func (s *Server) saveAndRedirect(w http.ResponseWriter, r *http.Request, sess *session.Session, target string) {
	if err := s.Sessions.Save(w, sess); err != nil {
		s.Log.Error("save session", zap.Error(err))
	}
	http.Redirect(w, r, target, http.StatusFound)
}

type productRow struct {
	catalog.Product
	InCart bool
}

type homePage struct {
	basePage
	Products []productRow
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	sess := s.Sessions.Load(r)

	products, err := s.Catalog.List(r.Context())
	if err != nil {
		s.Log.Error("list products failed", zap.Error(err))
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}

	page := homePage{Products: make([]productRow, 0, len(products))}
	for _, p := range products {
		page.Products = append(page.Products, productRow{
			Product: p,
			InCart:  sess.LoggedIn() && sess.Cart.Has(p.ID),
		})
	}

	page.basePage = s.startPage(w, sess)
	s.View.Render(w, http.StatusOK, "home.html", page)
}

type productPage struct {
	basePage
	Product productRow
}

func (s *Server) handleProductDetail(w http.ResponseWriter, r *http.Request) {
	sess := s.Sessions.Load(r)

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	p, ok, err := s.Catalog.Get(r.Context(), id)
	if err != nil {
		s.Log.Error("get product failed", zap.Error(err), zap.Int64("id", id))
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}
	if !ok {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	page := productPage{
		Product: productRow{Product: p, InCart: sess.LoggedIn() && sess.Cart.Has(p.ID)},
	}
	page.basePage = s.startPage(w, sess)
	s.View.Render(w, http.StatusOK, "product.html", page)
}

func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 1*time.Second)
	defer cancel()

	if err := s.Users.Ping(ctx); err != nil {
		s.Log.Warn("readyz failed: users", zap.Error(err))
		kit.WriteError(w, r, http.StatusServiceUnavailable, "not ready", nil)
		return
	}
	if err := s.Catalog.Ping(ctx); err != nil {
		s.Log.Warn("readyz failed: catalog", zap.Error(err))
		kit.WriteError(w, r, http.StatusServiceUnavailable, "not ready", nil)
		return
	}
	w.WriteHeader(http.StatusOK)
}
