package session

import (
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"CatShop/internal/cart"
)

const CookieName = "catshop_session"

const issuer = "catshop"

type claims struct {
	UserID  string  `json:"user_id,omitempty"`
	Cart    []int64 `json:"cart,omitempty"`
	Flashes []Flash `json:"flashes,omitempty"`
	jwt.RegisteredClaims
}

// Manager signs sessions into the cookie and parses them back. A missing,
// expired or tampered cookie is never an error: it simply means a fresh
// anonymous session.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

func NewManager(secret string, ttl time.Duration) *Manager {
	return &Manager{secret: []byte(secret), ttl: ttl}
}

func (m *Manager) Load(r *http.Request) *Session {
	c, err := r.Cookie(CookieName)
	if err != nil || c.Value == "" {
		return &Session{}
	}

	cl, err := m.parse(c.Value)
	if err != nil {
		return &Session{}
	}

	return &Session{
		UserID:  cl.UserID,
		Cart:    cart.New(cl.Cart...),
		flashes: cl.Flashes,
	}
}

func (m *Manager) Save(w http.ResponseWriter, s *Session) error {
	now := time.Now()

	cl := claims{
		UserID:  s.UserID,
		Cart:    s.Cart.IDs(),
		Flashes: s.flashes,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, cl).SignedString(m.secret)
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    tok,
		Path:     "/",
		MaxAge:   int(m.ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

func (m *Manager) parse(tokenStr string) (claims, error) {
	var cl claims

	token, err := jwt.ParseWithClaims(tokenStr, &cl, func(token *jwt.Token) (any, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, errors.New("unexpected signing method")
		}
		return m.secret, nil
	})
	if err != nil || token == nil || !token.Valid {
		return claims{}, errors.New("invalid session token")
	}

	if cl.Issuer != "" && cl.Issuer != issuer {
		return claims{}, errors.New("invalid issuer")
	}

	return cl, nil
}
