package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"strconv"

	"go.uber.org/zap"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageFiles = []string{
	"home.html",
	"product.html",
	"login.html",
	"register.html",
	"cart.html",
	"checkout.html",
}

// View holds the parsed template set: one layout, one template per page.
type View struct {
	pages map[string]*template.Template
	log   *zap.Logger
}

func NewView(log *zap.Logger) (*View, error) {
	funcs := template.FuncMap{"price": formatPrice}

	pages := make(map[string]*template.Template, len(pageFiles))
	for _, name := range pageFiles {
		t, err := template.New("base.html").Funcs(funcs).
			ParseFS(templateFS, "templates/base.html", "templates/"+name)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		pages[name] = t
	}

	return &View{pages: pages, log: log}, nil
}

// Render executes the page into a buffer first so a template error never
// leaks a half-written response.
func (v *View) Render(w http.ResponseWriter, status int, page string, data any) {
	t, ok := v.pages[page]
	if !ok {
		if v.log != nil {
			v.log.Error("unknown template", zap.String("page", page))
		}
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		if v.log != nil {
			v.log.Error("render failed", zap.String("page", page), zap.Error(err))
		}
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// formatPrice groups digits by thousands: 129000 -> "129,000".
func formatPrice(v int64) string {
	s := strconv.FormatInt(v, 10)
	if len(s) <= 3 {
		return s
	}

	n := len(s)
	out := make([]byte, 0, n+n/3)
	for i := 0; i < n; i++ {
		if i > 0 && (n-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, s[i])
	}
	return string(out)
}
