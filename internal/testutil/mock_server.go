// Package testutil provides an httptest server for stubbing the draw feed.
package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
)

// MockServer routes requests by "METHOD path" to registered handlers and
// counts the hits per route.
type MockServer struct {
	server   *httptest.Server
	handlers map[string]http.HandlerFunc
	hits     map[string]int
	mu       sync.RWMutex
}

// NewMockServer starts a mock server. Unregistered routes answer 404.
func NewMockServer() *MockServer {
	ms := &MockServer{
		handlers: make(map[string]http.HandlerFunc),
		hits:     make(map[string]int),
	}

	ms.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.Method + " " + r.URL.Path

		ms.mu.Lock()
		handler, ok := ms.handlers[key]
		ms.hits[key]++
		ms.mu.Unlock()

		if ok {
			handler(w, r)
			return
		}

		http.NotFound(w, r)
	}))

	return ms
}

// URL returns the server's base URL.
func (ms *MockServer) URL() string {
	return ms.server.URL
}

// Close shuts down the server.
func (ms *MockServer) Close() {
	ms.server.Close()
}

// Handle registers a handler for a method and path.
func (ms *MockServer) Handle(method, path string, handler http.HandlerFunc) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.handlers[method+" "+path] = handler
}

// HandleJSON registers a handler that answers with status and response as JSON.
func (ms *MockServer) HandleJSON(method, path string, status int, response any) {
	ms.Handle(method, path, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(response)
	})
}

// HandleRaw registers a handler that writes body verbatim.
func (ms *MockServer) HandleRaw(method, path string, status int, body string) {
	ms.Handle(method, path, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	})
}

// Hits returns how many requests reached method and path.
func (ms *MockServer) Hits(method, path string) int {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	return ms.hits[method+" "+path]
}
