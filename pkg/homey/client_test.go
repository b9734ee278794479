package homey

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewClient(ClientConfig{
		BaseURL: srv.URL,
		Token:   "test-token",
		HTTP:    srv.Client(),
	})
	if err != nil {
		t.Fatal(err)
	}
	return client, srv
}

func TestNewClient_RequiresBaseURL(t *testing.T) {
	if _, err := NewClient(ClientConfig{}); err == nil {
		t.Error("expected error for missing base URL")
	}
}

func TestNewClient_TrimsTrailingSlash(t *testing.T) {
	c, err := NewClient(ClientConfig{BaseURL: "http://homey.local/"})
	if err != nil {
		t.Fatal(err)
	}
	if c.baseURL != "http://homey.local" {
		t.Errorf("expected trimmed base URL, got %q", c.baseURL)
	}
}

func TestGetDevices(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/manager/devices/device" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-token" {
			t.Errorf("unexpected auth header %q", got)
		}
		json.NewEncoder(w).Encode(map[string]Device{
			"dev-1": {ID: "dev-1", Name: "Lamp", Class: ClassLight},
		})
	}))

	devices, err := client.GetDevices(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(devices) != 1 || devices["dev-1"].Name != "Lamp" {
		t.Errorf("unexpected devices: %+v", devices)
	}
}

func TestGetDevice_NotFound(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	_, err := client.GetDevice(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestGetDevice_Unauthorized(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))

	_, err := client.GetDevice(context.Background(), "dev-1")
	if !errors.Is(err, ErrUnauthorized) {
		t.Errorf("expected ErrUnauthorized, got %v", err)
	}
}

func TestSetCapabilityValue(t *testing.T) {
	var gotPath, gotMethod string
	var gotBody map[string]any

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotMethod = r.Method
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("failed to decode body: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))

	err := client.SetCapabilityValue(context.Background(), "dev-1", "dim", 0.5)
	if err != nil {
		t.Fatal(err)
	}
	if gotMethod != http.MethodPut {
		t.Errorf("expected PUT, got %s", gotMethod)
	}
	if gotPath != "/api/manager/devices/device/dev-1/capability/dim" {
		t.Errorf("unexpected path %q", gotPath)
	}
	if gotBody["value"] != 0.5 {
		t.Errorf("expected value 0.5 in body, got %v", gotBody)
	}
}

func TestGetCapabilityValue(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"value": 21.5})
	}))

	v, err := client.GetCapabilityValue(context.Background(), "dev-1", "target_temperature")
	if err != nil {
		t.Fatal(err)
	}
	if v != 21.5 {
		t.Errorf("expected 21.5, got %v", v)
	}
}

func TestGetZones(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/manager/zones/zone" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		json.NewEncoder(w).Encode(map[string]Zone{
			"z1": {ID: "z1", Name: "Kitchen"},
		})
	}))

	zones, err := client.GetZones(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if zones["z1"].Name != "Kitchen" {
		t.Errorf("unexpected zones: %+v", zones)
	}
}

func TestGetFlow_PathEscapesID(t *testing.T) {
	var gotPath string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		json.NewEncoder(w).Encode(Flow{ID: "a/b", Name: "Tricky"})
	}))

	if _, err := client.GetFlow(context.Background(), "a/b"); err != nil {
		t.Fatal(err)
	}
	if gotPath != "/api/manager/flow/flow/a%2Fb" {
		t.Errorf("expected escaped flow ID in path, got %q", gotPath)
	}
}

func TestDo_ServerErrorIncludesStatus(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))

	_, err := client.GetDevices(context.Background())
	if err == nil {
		t.Fatal("expected error for 500 response")
	}
}
