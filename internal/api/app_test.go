package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/kalambet/vizprefs/internal/session"
	"github.com/kalambet/vizprefs/internal/vizconfig"
)

const testToken = "test-token"

func newTestApp(t *testing.T) (http.Handler, *session.Manager) {
	t.Helper()
	m := newTestManager(t)
	return NewAppHandler(AppDeps{Sessions: m, Token: testToken}), m
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	req.Header.Set("Authorization", "Bearer "+testToken)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func errorType(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Error struct {
			Message string `json:"message"`
			Type    string `json:"type"`
		} `json:"error"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
		t.Fatalf("decoding error body: %v", err)
	}
	return body.Error.Type
}

func TestHealth(t *testing.T) {
	h, _ := newTestApp(t)

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	var body map[string]string
	json.NewDecoder(rr.Body).Decode(&body)
	if body["status"] != "ok" {
		t.Errorf("body = %v, want status=ok", body)
	}
}

func TestAuthRequired(t *testing.T) {
	h, _ := newTestApp(t)

	for _, auth := range []string{"", "Bearer wrong", "Basic " + testToken} {
		req := httptest.NewRequest(http.MethodGet, "/defaults", nil)
		if auth != "" {
			req.Header.Set("Authorization", auth)
		}
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)

		if rr.Code != http.StatusUnauthorized {
			t.Errorf("auth %q: status = %d, want %d", auth, rr.Code, http.StatusUnauthorized)
		}
		if got := errorType(t, rr); got != "authentication_error" {
			t.Errorf("auth %q: error type = %q", auth, got)
		}
	}
}

func TestDefaults(t *testing.T) {
	h, _ := newTestApp(t)

	rr := do(t, h, http.MethodGet, "/defaults", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	var body struct {
		Properties []Property `json:"properties"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if len(body.Properties) != len(vizconfig.Defaults()) {
		t.Errorf("got %d properties, want %d", len(body.Properties), len(vizconfig.Defaults()))
	}
}

func TestSessionLifecycle(t *testing.T) {
	h, m := newTestApp(t)

	rr := do(t, h, http.MethodPost, "/sessions", "")
	if rr.Code != http.StatusCreated {
		t.Fatalf("open: status = %d, want %d", rr.Code, http.StatusCreated)
	}
	var info session.Info
	if err := json.NewDecoder(rr.Body).Decode(&info); err != nil {
		t.Fatal(err)
	}
	if info.ID == "" {
		t.Fatal("open: empty session id")
	}

	rr = do(t, h, http.MethodGet, "/sessions", "")
	var list struct {
		Sessions []session.Info `json:"sessions"`
	}
	json.NewDecoder(rr.Body).Decode(&list)
	if len(list.Sessions) != 1 || list.Sessions[0].ID != info.ID {
		t.Errorf("list = %+v, want just %s", list.Sessions, info.ID)
	}

	rr = do(t, h, http.MethodDelete, "/sessions/"+info.ID, "")
	if rr.Code != http.StatusNoContent {
		t.Errorf("close: status = %d, want %d", rr.Code, http.StatusNoContent)
	}
	if m.Len() != 0 {
		t.Errorf("sessions after close = %d, want 0", m.Len())
	}

	rr = do(t, h, http.MethodDelete, "/sessions/"+info.ID, "")
	if rr.Code != http.StatusNotFound {
		t.Errorf("second close: status = %d, want %d", rr.Code, http.StatusNotFound)
	}
}

func TestGetProperty(t *testing.T) {
	h, m := newTestApp(t)
	sess, err := m.Open()
	if err != nil {
		t.Fatal(err)
	}

	rr := do(t, h, http.MethodGet, "/sessions/"+sess.ID+"/properties/"+vizconfig.SelectedEdgeBothColor, "")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	var p Property
	json.NewDecoder(rr.Body).Decode(&p)
	if p.Kind != vizconfig.KindColor || p.Value != "f8d753ff" {
		t.Errorf("property = %+v, want color f8d753ff", p)
	}

	rr = do(t, h, http.MethodGet, "/sessions/"+sess.ID+"/properties/no_such_property", "")
	if rr.Code != http.StatusNotFound {
		t.Errorf("unknown property: status = %d, want %d", rr.Code, http.StatusNotFound)
	}

	rr = do(t, h, http.MethodGet, "/sessions/missing/properties/"+vizconfig.ShowEdges, "")
	if rr.Code != http.StatusNotFound {
		t.Errorf("unknown session: status = %d, want %d", rr.Code, http.StatusNotFound)
	}
}

func TestListProperties(t *testing.T) {
	h, m := newTestApp(t)
	sess, err := m.Open()
	if err != nil {
		t.Fatal(err)
	}

	rr := do(t, h, http.MethodGet, "/sessions/"+sess.ID+"/properties", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	var body struct {
		Properties []Property `json:"properties"`
	}
	json.NewDecoder(rr.Body).Decode(&body)
	if len(body.Properties) != len(vizconfig.Defaults()) {
		t.Errorf("got %d properties, want %d", len(body.Properties), len(vizconfig.Defaults()))
	}
}

func TestSetProperty(t *testing.T) {
	h, m := newTestApp(t)
	sess, err := m.Open()
	if err != nil {
		t.Fatal(err)
	}
	path := "/sessions/" + sess.ID + "/properties/"

	rr := do(t, h, http.MethodPut, path+vizconfig.ZoomFactor, `{"value":"0.75"}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d: %s", rr.Code, http.StatusOK, rr.Body.String())
	}
	err = sess.View(func(s *vizconfig.Store) error {
		f, err := s.FloatProperty(vizconfig.ZoomFactor)
		if f != 0.75 {
			t.Errorf("zoom_factor = %v, want 0.75", f)
		}
		return err
	})
	if err != nil {
		t.Fatal(err)
	}

	// An explicit kind may change what the property holds.
	rr = do(t, h, http.MethodPut, path+vizconfig.ShowEdges, `{"kind":"int","value":"2"}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d: %s", rr.Code, http.StatusOK, rr.Body.String())
	}
	var p Property
	json.NewDecoder(rr.Body).Decode(&p)
	if p.Kind != vizconfig.KindInt {
		t.Errorf("kind = %v, want int", p.Kind)
	}

	// New properties need a kind.
	rr = do(t, h, http.MethodPut, path+"title", `{"kind":"string","value":"Les Misérables"}`)
	if rr.Code != http.StatusOK {
		t.Errorf("new property: status = %d, want %d", rr.Code, http.StatusOK)
	}
}

func TestSetProperty_BadRequests(t *testing.T) {
	h, m := newTestApp(t)
	sess, err := m.Open()
	if err != nil {
		t.Fatal(err)
	}
	path := "/sessions/" + sess.ID + "/properties/"

	tests := []struct {
		name, property, body string
	}{
		{"malformed json", vizconfig.ZoomFactor, `{"value":`},
		{"missing value", vizconfig.ZoomFactor, `{"kind":"float"}`},
		{"bad float", vizconfig.ZoomFactor, `{"value":"fast"}`},
		{"bad kind", vizconfig.ZoomFactor, `{"kind":"tuple","value":"1"}`},
		{"bad enum", vizconfig.NodeGlobalShape, `{"value":"HEXAGON"}`},
		{"new property without kind", "title", `{"value":"x"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := do(t, h, http.MethodPut, path+tt.property, tt.body)
			if rr.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want %d", rr.Code, http.StatusBadRequest)
			}
			if got := errorType(t, rr); got != "invalid_request_error" {
				t.Errorf("error type = %q, want invalid_request_error", got)
			}
		})
	}
}
