// Package bibtest provides shared test doubles for exercising link
// validation against controlled HTTP endpoints.
package bibtest

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"time"
)

// PDFServer is a mock HTTP server for testing the PDF link checker. It
// answers HEAD probes with configurable per-path responses.
type PDFServer struct {
	server       *httptest.Server
	responses    map[string]Response
	requestCount int
	mu           sync.Mutex
}

// Response defines a mock response configuration for one path.
type Response struct {
	StatusCode  int
	ContentType string
	Delay       time.Duration
}

// NewPDFServer creates a new mock server. Paths without a configured
// response answer 404 with no content type.
func NewPDFServer() *PDFServer {
	s := &PDFServer{
		responses: make(map[string]Response),
	}
	s.server = httptest.NewServer(http.HandlerFunc(s.handler))
	return s
}

// URL returns the mock server's base URL.
func (s *PDFServer) URL() string {
	return s.server.URL
}

// Close closes the mock server.
func (s *PDFServer) Close() {
	s.server.Close()
}

// SetResponse sets the mock response for a specific path.
func (s *PDFServer) SetResponse(path string, response Response) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.responses[path] = response
}

// ServePDF makes the path answer like a directly downloadable PDF.
func (s *PDFServer) ServePDF(path string) {
	s.SetResponse(path, Response{
		StatusCode:  http.StatusOK,
		ContentType: "application/pdf",
	})
}

// ServeLandingPage makes the path answer like an HTML page in front of the
// PDF.
func (s *PDFServer) ServeLandingPage(path string) {
	s.SetResponse(path, Response{
		StatusCode:  http.StatusOK,
		ContentType: "text/html",
	})
}

// RequestCount returns the number of requests received.
func (s *PDFServer) RequestCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.requestCount
}

func (s *PDFServer) handler(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.requestCount++
	response, ok := s.responses[r.URL.Path]
	s.mu.Unlock()

	if !ok {
		http.NotFound(w, r)
		return
	}

	if response.Delay > 0 {
		time.Sleep(response.Delay)
	}
	if response.ContentType != "" {
		w.Header().Set("Content-Type", response.ContentType)
	}
	w.WriteHeader(response.StatusCode)
}
