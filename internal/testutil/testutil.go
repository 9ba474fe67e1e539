package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fieldstock/inventory-backend/internal/auth"
	"github.com/google/uuid"
)

// TestServer wraps an httptest server around a router under test
type TestServer struct {
	*httptest.Server
	DB *TestDatabase
}

// NewTestServer creates a test server over the given handler
func NewTestServer(t *testing.T, testDB *TestDatabase, handler http.Handler) *TestServer {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return &TestServer{
		Server: server,
		DB:     testDB,
	}
}

// Request represents a test HTTP request
type Request struct {
	Method      string
	Path        string
	Body        interface{}
	Headers     map[string]string
	QueryParams map[string]string
}

// Response represents a test HTTP response
type Response struct {
	*httptest.ResponseRecorder
	Body map[string]interface{}
}

// MakeRequest creates and executes a test HTTP request against the handler
func (ts *TestServer) MakeRequest(t *testing.T, req Request) *Response {
	var bodyReader *bytes.Reader

	if req.Body != nil {
		bodyBytes, err := json.Marshal(req.Body)
		if err != nil {
			t.Fatalf("Failed to marshal request body: %v", err)
		}
		bodyReader = bytes.NewReader(bodyBytes)
	}

	var httpReq *http.Request
	var err error

	if bodyReader != nil {
		httpReq, err = http.NewRequest(req.Method, req.Path, bodyReader)
	} else {
		httpReq, err = http.NewRequest(req.Method, req.Path, nil)
	}

	if err != nil {
		t.Fatalf("Failed to create request: %v", err)
	}

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	if req.QueryParams != nil {
		q := httpReq.URL.Query()
		for key, value := range req.QueryParams {
			q.Add(key, value)
		}
		httpReq.URL.RawQuery = q.Encode()
	}

	if req.Body != nil && httpReq.Header.Get("Content-Type") == "" {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	recorder := httptest.NewRecorder()

	ts.Server.Config.Handler.ServeHTTP(recorder, httpReq)

	var responseBody map[string]interface{}
	if recorder.Body.Len() > 0 {
		decoder := json.NewDecoder(recorder.Body)
		if err := decoder.Decode(&responseBody); err != nil {
			t.Logf("Failed to decode response body: %v", err)
		}
	}

	return &Response{
		ResponseRecorder: recorder,
		Body:             responseBody,
	}
}

// AuthenticatedRequest creates a request with a bearer token
func (ts *TestServer) AuthenticatedRequest(t *testing.T, req Request, token string) *Response {
	if req.Headers == nil {
		req.Headers = make(map[string]string)
	}
	req.Headers["Authorization"] = "Bearer " + token
	return ts.MakeRequest(t, req)
}

// ContextWithUser adds an authenticated principal to the context, the way
// the bearer middleware would have.
func ContextWithUser(ctx context.Context, user *auth.AuthenticatedUser) context.Context {
	ctx = context.WithValue(ctx, auth.UserIDKey, user.ID)
	ctx = context.WithValue(ctx, auth.UserClaimsKey, user)
	return ctx
}

// TimeNow returns a consistent time for testing
func TimeNow() time.Time {
	return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
}

// NewUUID returns a deterministic UUID for testing
func NewUUID() uuid.UUID {
	return uuid.MustParse("12345678-1234-5678-9012-123456789012")
}

// AssertJSON checks if the response body contains expected JSON fields
func AssertJSON(t *testing.T, resp *Response, field string, expected interface{}) {
	if resp.Body[field] != expected {
		t.Errorf("Expected %s to be %v, got %v", field, expected, resp.Body[field])
	}
}

// AssertJSONExists checks if a JSON field exists in the response
func AssertJSONExists(t *testing.T, resp *Response, field string) {
	if _, exists := resp.Body[field]; !exists {
		t.Errorf("Expected field %s to exist in response", field)
	}
}
