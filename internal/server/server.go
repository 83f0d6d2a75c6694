package server

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"
)

// LocaleMatcher picks the supported locale for an Accept-Language header.
type LocaleMatcher interface {
	Match(acceptLanguage string) string
}

// Server previews a generated site.
type Server struct {
	root    string
	locales LocaleMatcher
	server  *http.Server

	feedbackMu sync.Mutex
	feedback   map[string]*Tally
}

// Tally counts feedback answers for one page.
type Tally struct {
	Yes int
	No  int
}

// NewServer serves the generated tree in root on port.
func NewServer(root, port string, locales LocaleMatcher) *Server {
	s := &Server{
		root:     root,
		locales:  locales,
		feedback: make(map[string]*Tally),
	}

	s.server = &http.Server{
		Addr:              ":" + port,
		Handler:           s.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Start listens until the server is shut down.
func (s *Server) Start() error {
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// Feedback returns a copy of the tally for page.
func (s *Server) Feedback(page string) Tally {
	s.feedbackMu.Lock()
	defer s.feedbackMu.Unlock()
	if t, ok := s.feedback[page]; ok {
		return *t
	}
	return Tally{}
}

func (s *Server) recordFeedback(page string, helpful bool) Tally {
	s.feedbackMu.Lock()
	defer s.feedbackMu.Unlock()
	t, ok := s.feedback[page]
	if !ok {
		t = &Tally{}
		s.feedback[page] = t
	}
	if helpful {
		t.Yes++
	} else {
		t.No++
	}
	return *t
}
