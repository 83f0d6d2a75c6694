package server

import (
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/UnitVectorY-Labs/ackpage/internal/generator"
	"github.com/UnitVectorY-Labs/ackpage/internal/theme"
)

// HandleIndex redirects to the acknowledgements page in the visitor's language.
func (s *Server) HandleIndex(w http.ResponseWriter, r *http.Request) {
	locale := s.locales.Match(r.Header.Get("Accept-Language"))
	w.Header().Add("Vary", "Accept-Language")
	http.Redirect(w, r, generator.LocalePath(locale), http.StatusFound)
}

// HandlePage serves the generated tree. Page directories resolve to the
// variant matching the request's color mode.
func (s *Server) HandlePage(w http.ResponseWriter, r *http.Request) {
	urlPath := path.Clean("/" + r.URL.Path)
	name := filepath.Join(s.root, filepath.FromSlash(urlPath))

	info, err := os.Stat(name)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			slog.Error("Failed to stat file", "path", urlPath, "error", err)
		}
		http.NotFound(w, r)
		return
	}

	if info.IsDir() {
		if !strings.HasSuffix(r.URL.Path, "/") {
			http.Redirect(w, r, urlPath+"/", http.StatusMovedPermanently)
			return
		}
		mode := theme.FromRequest(r)
		w.Header().Set("Accept-CH", "Sec-CH-Prefers-Color-Scheme")
		w.Header().Add("Vary", "Cookie, Sec-CH-Prefers-Color-Scheme")

		page := filepath.Join(name, generator.IndexFile(mode))
		if _, err := os.Stat(page); err != nil {
			page = filepath.Join(name, generator.IndexFile(theme.Light))
		}
		if _, err := os.Stat(page); err != nil {
			http.NotFound(w, r)
			return
		}
		http.ServeFile(w, r, page)
		return
	}

	http.ServeFile(w, r, name)
}

// HandleColorMode remembers the requested color mode in a cookie and sends
// the visitor back to the page they came from.
func (s *Server) HandleColorMode(w http.ResponseWriter, r *http.Request) {
	mode, err := theme.ParseColorMode(r.URL.Query().Get("mode"))
	if err != nil {
		http.Error(w, "invalid mode", http.StatusBadRequest)
		return
	}
	page := r.URL.Query().Get("page")
	if !s.servesPage(page) {
		http.Error(w, "invalid page", http.StatusBadRequest)
		return
	}
	http.SetCookie(w, theme.Cookie(mode))
	http.Redirect(w, r, page, http.StatusSeeOther)
}

// HandleFeedback records a yes/no answer for a page and sends the visitor
// back to the feedback card.
func (s *Server) HandleFeedback(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	page := r.FormValue("page")
	if !s.servesPage(page) {
		http.Error(w, "invalid page", http.StatusBadRequest)
		return
	}

	var helpful bool
	switch r.FormValue("answer") {
	case "yes":
		helpful = true
	case "no":
		helpful = false
	default:
		http.Error(w, "invalid answer", http.StatusBadRequest)
		return
	}

	tally := s.recordFeedback(page, helpful)
	slog.Info("Feedback received",
		slog.String("page", page),
		slog.Bool("helpful", helpful),
		slog.Int("yes", tally.Yes),
		slog.Int("no", tally.No))

	http.Redirect(w, r, page+"#feedback", http.StatusSeeOther)
}

// servesPage reports whether page is a plain local path to a page directory
// under the site root. Only such values are used as redirect targets.
func (s *Server) servesPage(page string) bool {
	if !strings.HasPrefix(page, "/") || strings.HasPrefix(page, "//") || strings.ContainsAny(page, "\\\r\n") {
		return false
	}
	u, err := url.Parse(page)
	if err != nil || u.Scheme != "" || u.Host != "" || u.User != nil || u.RawQuery != "" || u.Fragment != "" {
		return false
	}
	clean := path.Clean(u.Path)
	if clean != u.Path && clean+"/" != u.Path {
		return false
	}
	info, err := os.Stat(filepath.Join(s.root, filepath.FromSlash(clean)))
	return err == nil && info.IsDir()
}
