package web

import (
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"CatShop/internal/user"
)

type loginPage struct {
	basePage
	Next         string
	FormUsername string
}

func (s *Server) handleLoginForm(w http.ResponseWriter, r *http.Request) {
	sess := s.Sessions.Load(r)

	page := loginPage{Next: r.URL.Query().Get("next")}
	page.basePage = s.startPage(w, sess)
	s.View.Render(w, http.StatusOK, "login.html", page)
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	sess := s.Sessions.Load(r)

	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	username := strings.TrimSpace(r.PostFormValue("username"))
	password := r.PostFormValue("password")
	next := r.URL.Query().Get("next")

	_, err := s.Users.Verify(r.Context(), username, password)
	if err != nil {
		if !errors.Is(err, user.ErrInvalidCredentials) {
			s.Log.Error("verify user failed", zap.Error(err))
			http.Error(w, "server error", http.StatusInternalServerError)
			return
		}

		sess.Flash("danger", "Invalid username or password.")
		page := loginPage{Next: next, FormUsername: username}
		page.basePage = s.startPage(w, sess)
		s.View.Render(w, http.StatusOK, "login.html", page)
		return
	}

	sess.Authenticate(username)
	sess.Flash("success", "Login successful!")

	// The next target is used verbatim so the caller lands exactly where
	// it asked to.
	target := next
	if target == "" {
		target = "/"
	}
	s.saveAndRedirect(w, r, sess, target)
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	sess := s.Sessions.Load(r)

	sess.Clear()
	sess.Flash("success", "You have been logged out.")
	s.saveAndRedirect(w, r, sess, "/")
}

type registerPage struct {
	basePage
	FormUsername string
}

func (s *Server) handleRegisterForm(w http.ResponseWriter, r *http.Request) {
	sess := s.Sessions.Load(r)

	page := registerPage{}
	page.basePage = s.startPage(w, sess)
	s.View.Render(w, http.StatusOK, "register.html", page)
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	sess := s.Sessions.Load(r)

	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	username := strings.TrimSpace(r.PostFormValue("username"))
	password := r.PostFormValue("password")
	confirm := r.PostFormValue("confirm")

	rerender := func(message string) {
		sess.Flash("danger", message)
		page := registerPage{FormUsername: username}
		page.basePage = s.startPage(w, sess)
		s.View.Render(w, http.StatusOK, "register.html", page)
	}

	if username == "" || password == "" {
		rerender("Username and password are required.")
		return
	}
	if password != confirm {
		rerender("Passwords do not match.")
		return
	}

	if err := s.Users.Create(r.Context(), username, password); err != nil {
		if errors.Is(err, user.ErrUsernameTaken) {
			rerender("That username is already taken.")
			return
		}
		s.Log.Error("create user failed", zap.Error(err))
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}

	sess.Flash("success", "Registration successful! Please log in.")
	s.saveAndRedirect(w, r, sess, "/login")
}
