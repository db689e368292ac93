// Package session implements the per-client session carried in a signed
// cookie: the logged-in user, the shopping cart and the one-shot notice
// queue. Nothing is stored server side; the cookie is the session.
package session

import "CatShop/internal/cart"

// Flash is a one-shot notice shown on the next rendered page only.
// Category maps to a bootstrap alert class (success, warning, danger).
type Flash struct {
	Category string `json:"category"`
	Message  string `json:"message"`
}

type Session struct {
	UserID  string
	Cart    cart.Cart
	flashes []Flash
}

func (s *Session) LoggedIn() bool { return s.UserID != "" }

// Authenticate marks the session as belonging to username.
func (s *Session) Authenticate(username string) {
	s.UserID = username
}

// Clear resets the session to its anonymous state. Cart entries are only
// meaningful while a user is logged in, so they go too.
func (s *Session) Clear() {
	s.UserID = ""
	s.Cart = cart.New()
	s.flashes = nil
}

// Flash queues a notice for the next rendered page.
func (s *Session) Flash(category, message string) {
	s.flashes = append(s.flashes, Flash{Category: category, Message: message})
}

// PopFlashes drains the notice queue in FIFO order. Each notice is
// returned at most once.
func (s *Session) PopFlashes() []Flash {
	out := s.flashes
	s.flashes = nil
	return out
}
