package web

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"CatShop/internal/catalog"
	"CatShop/internal/session"
)

func (s *Server) handleToggleCart(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionFromContext(r.Context())
	if !ok {
		// Route is mounted behind RequireLogin; reaching here without a
		// session means a wiring bug, not a user error.
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	sess.Cart.Toggle(id)
	s.saveAndRedirect(w, r, sess, returnPath(r))
}

// returnPath sends the client back to the page the toggle came from,
// restricted to a same-site path.
func returnPath(r *http.Request) string {
	ref := r.Header.Get("Referer")
	if ref == "" {
		return "/"
	}

	u, err := url.Parse(ref)
	if err != nil {
		return "/"
	}
	if u.Host != "" && u.Host != r.Host {
		return "/"
	}
	if !strings.HasPrefix(u.Path, "/") {
		return "/"
	}
	return u.Path
}

type cartPage struct {
	basePage
	Items []catalog.Product
	Total int64
}

// cartContents resolves the session cart against the catalog, in catalog
// order. Ids that no longer resolve are skipped.
func (s *Server) cartContents(r *http.Request, sess *session.Session) ([]catalog.Product, int64, error) {
	if !sess.LoggedIn() || sess.Cart.Len() == 0 {
		return nil, 0, nil
	}

	products, err := s.Catalog.List(r.Context())
	if err != nil {
		return nil, 0, err
	}

	var (
		items []catalog.Product
		total int64
	)
	for _, p := range products {
		if sess.Cart.Has(p.ID) {
			items = append(items, p)
			total += p.Price
		}
	}
	return items, total, nil
}

func (s *Server) handleCart(w http.ResponseWriter, r *http.Request) {
	sess := s.Sessions.Load(r)

	items, total, err := s.cartContents(r, sess)
	if err != nil {
		s.Log.Error("list products failed", zap.Error(err))
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}

	page := cartPage{Items: items, Total: total}
	page.basePage = s.startPage(w, sess)
	s.View.Render(w, http.StatusOK, "cart.html", page)
}

func (s *Server) handleCheckout(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionFromContext(r.Context())
	if !ok {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}

	items, total, err := s.cartContents(r, sess)
	if err != nil {
		s.Log.Error("list products failed", zap.Error(err))
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}

	page := cartPage{Items: items, Total: total}
	page.basePage = s.startPage(w, sess)
	s.View.Render(w, http.StatusOK, "checkout.html", page)
}
