package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Verdier/homey-mcp-server/pkg/homey"
	"github.com/Verdier/homey-mcp-server/pkg/mcp"
)

func newTestRouter() *Router {
	provider := homey.NewNullProvider()
	server := mcp.NewServer(provider)
	return NewRouter(server, provider)
}

func TestHealth_DegradedWithoutConnection(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	router.Engine().ServeHTTP(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("expected 503 for degraded service, got %d", rec.Code)
	}

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body["status"] != "degraded" || body["homey"] != "disconnected" {
		t.Errorf("unexpected health body: %v", body)
	}
}

func TestRPC_ToolsList(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/rpc",
		strings.NewReader(`{"jsonrpc":"2.0","id":1,"method":"tools/list"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.Engine().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		ID     any `json:"id"`
		Result struct {
			Tools []struct {
				Name string `json:"name"`
			} `json:"tools"`
		} `json:"result"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.ID != float64(1) {
		t.Errorf("expected id 1, got %v", resp.ID)
	}
	if len(resp.Result.Tools) != 7 {
		t.Errorf("expected 7 tools, got %d", len(resp.Result.Tools))
	}
}

func TestRPC_ErrorsStillReturnHTTP200(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/rpc",
		strings.NewReader(`{"jsonrpc":"2.0","id":"x","method":"no/such"}`))
	rec := httptest.NewRecorder()
	router.Engine().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 with a JSON-RPC error, got %d", rec.Code)
	}

	var resp struct {
		Error *struct {
			Code int `json:"code"`
		} `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Error == nil || resp.Error.Code != -32601 {
		t.Errorf("expected method not found error, got %s", rec.Body.String())
	}
}

func TestRPC_UnreadableBody(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/rpc", strings.NewReader(`{not json`))
	rec := httptest.NewRecorder()
	router.Engine().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for unparseable body, got %d", rec.Code)
	}
}

func TestRequestID_HonorsCallerHeader(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "caller-supplied")
	rec := httptest.NewRecorder()
	router.Engine().ServeHTTP(rec, req)

	if got := rec.Header().Get("X-Request-ID"); got != "caller-supplied" {
		t.Errorf("expected caller-supplied request id to be echoed, got %q", got)
	}
}

func TestRequestID_GeneratedWhenAbsent(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	router.Engine().ServeHTTP(rec, req)

	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("expected a generated request id header")
	}
}
