// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cloudiotest provides an in-process fake of the device-management
// API for tests. It records every call and can be told to fail a step with a
// given status.
package cloudiotest

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
)

// Step names used by [Server.FailStep] and [Call.Step].
const (
	StepCreate = "create"
	StepUpdate = "update"
	StepToken  = "token"
)

// Call is a request received by the fake.
type Call struct {
	Step         string
	Method       string
	Path         string
	FriendlyName string
	Username     string
	Password     string
	ContentType  string
	Body         []byte
}

// Server is a fake device-management API backed by httptest.
type Server struct {
	*httptest.Server

	Username string
	Password string

	// UUID is assigned to the endpoint created by the next create call.
	UUID string
	// Token is returned by the token call.
	Token string
	// CreateStatus is the success status of the create call (200 or 204).
	CreateStatus int

	mu       sync.Mutex
	calls    []Call
	failures map[string]int
}

// NewServer starts a fake API expecting the given Basic credentials. It is
// closed when the test ends.
func NewServer(t *testing.T, username, password string) *Server {
	t.Helper()
	return start(t, username, password, httptest.NewServer)
}

// NewTLSServer is like NewServer but serves HTTPS with a self-signed
// certificate.
func NewTLSServer(t *testing.T, username, password string) *Server {
	t.Helper()
	return start(t, username, password, httptest.NewTLSServer)
}

func start(t *testing.T, username, password string, serve func(http.Handler) *httptest.Server) *Server {
	s := &Server{
		Username:     username,
		Password:     password,
		UUID:         "3f2c9e5a-8a44-4c1e-9a53-0e1d2b7c6a10",
		Token:        "eyJlbmRwb2ludCI6InByb3Zpc2lvbmVkIn0",
		CreateStatus: http.StatusOK,
		failures:     make(map[string]int),
	}

	s.Server = serve(s.routes())
	t.Cleanup(s.Close)

	return s
}

// FailStep makes step answer with status from now on.
func (s *Server) FailStep(step string, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[step] = status
}

// Calls returns the calls received so far, in order.
func (s *Server) Calls() []Call {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Call(nil), s.calls...)
}

// CallsFor returns the calls received for step.
func (s *Server) CallsFor(step string) []Call {
	var out []Call
	for _, c := range s.Calls() {
		if c.Step == step {
			out = append(out, c)
		}
	}
	return out
}

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(s.basicAuth)

	r.Post("/api/v1/endpoints", s.record(StepCreate, s.createEndpoint))
	r.Put("/api/v1/endpoints/{uuid}", s.record(StepUpdate, s.updateEndpoint))
	r.Post("/api/v1/endpoints/{uuid}/provisionToken", s.record(StepToken, s.provisionToken))

	return r
}

func (s *Server) basicAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		if !ok || user != s.Username || pass != s.Password {
			http.Error(w, "bad credentials", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) record(step string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		user, pass, _ := r.BasicAuth()

		s.mu.Lock()
		s.calls = append(s.calls, Call{
			Step:         step,
			Method:       r.Method,
			Path:         r.URL.Path,
			FriendlyName: r.URL.Query().Get("friendlyName"),
			Username:     user,
			Password:     pass,
			ContentType:  r.Header.Get("Content-Type"),
			Body:         body,
		})
		status, fail := s.failures[step]
		s.mu.Unlock()

		if fail {
			http.Error(w, step+" failed", status)
			return
		}

		r.Body = io.NopCloser(bytes.NewReader(body))
		next(w, r)
	}
}

func (s *Server) createEndpoint(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(s.CreateStatus)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"uuid":             s.UUID,
		"friendlyName":     r.URL.Query().Get("friendlyName"),
		"banned":           false,
		"online":           false,
		"metaData":         map[string]any{},
		"groupMemberships": []string{},
		"dataModel":        map[string]any{"version": "v0.2", "nodes": map[string]any{}},
	})
}

func (s *Server) updateEndpoint(w http.ResponseWriter, r *http.Request) {
	if chi.URLParam(r, "uuid") != s.UUID {
		http.Error(w, "endpoint not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) provisionToken(w http.ResponseWriter, r *http.Request) {
	if chi.URLParam(r, "uuid") != s.UUID {
		http.Error(w, "endpoint not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, s.Token)
}
