package dwapi

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c, err := NewClient("test-token")
	if err != nil {
		t.Fatal(err)
	}
	c.SetBaseURL(srv.URL)
	return c
}

func TestNewClientMissingToken(t *testing.T) {
	t.Setenv("DATAWRAPPER_ACCESS_TOKEN", "")
	if _, err := NewClient(""); !errors.Is(err, ErrMissingToken) {
		t.Fatalf("err = %v, want ErrMissingToken", err)
	}
}

func TestNewClientEnvFallback(t *testing.T) {
	t.Setenv("DATAWRAPPER_ACCESS_TOKEN", "from-env")
	c, err := NewClient("")
	if err != nil {
		t.Fatal(err)
	}
	if c.token != "from-env" {
		t.Errorf("token = %q", c.token)
	}
}

func TestRequestHeaders(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test-token" {
			t.Errorf("Authorization = %q", got)
		}
		if r.Header.Get("X-Request-Id") == "" {
			t.Error("X-Request-Id should be set")
		}
		io.WriteString(w, `{"ok":true}`)
	})
	resp, err := c.GetJSON(context.Background(), "/v3/me")
	if err != nil {
		t.Fatal(err)
	}
	if resp["ok"] != true {
		t.Errorf("resp = %v", resp)
	}
}

func TestRequestErrorSurfacesBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		io.WriteString(w, `{"message":"Chart not found"}`)
	})
	_, err := c.Chart(context.Background(), "nope00")
	if err == nil {
		t.Fatal("expected error on 404")
	}
	var re *RequestError
	if !errors.As(err, &re) {
		t.Fatalf("err = %T, want *RequestError", err)
	}
	if re.Status != http.StatusNotFound || re.Method != http.MethodGet {
		t.Errorf("RequestError = %+v", re)
	}
	if !strings.Contains(re.Body, "Chart not found") {
		t.Errorf("body = %q", re.Body)
	}
	if re.RateLimited() {
		t.Error("404 should not report rate limiting")
	}
}

func TestRateLimited(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})
	_, err := c.PublishChart(context.Background(), "abc123")
	var re *RequestError
	if !errors.As(err, &re) {
		t.Fatalf("err = %v", err)
	}
	if !re.RateLimited() {
		t.Error("429 should report rate limiting")
	}
}

func TestCreateChartPostsDocument(t *testing.T) {
	var gotMethod, gotPath, gotCT string
	var gotBody []byte
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.Path
		gotCT = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
		io.WriteString(w, `{"id":"new123"}`)
	})
	resp, err := c.CreateChart(context.Background(), map[string]any{"type": "d3-lines", "title": "t"})
	if err != nil {
		t.Fatal(err)
	}
	if gotMethod != http.MethodPost || gotPath != "/v3/charts" {
		t.Errorf("request = %s %s", gotMethod, gotPath)
	}
	if gotCT != "application/json" {
		t.Errorf("content type = %q", gotCT)
	}
	if !strings.Contains(string(gotBody), `"d3-lines"`) {
		t.Errorf("body = %s", gotBody)
	}
	if resp["id"] != "new123" {
		t.Errorf("resp = %v", resp)
	}
}

func TestPutChartData(t *testing.T) {
	var gotCT string
	var gotBody []byte
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/v3/charts/abc123/data" {
			t.Errorf("request = %s %s", r.Method, r.URL.Path)
		}
		gotCT = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusNoContent)
	})
	if err := c.PutChartData(context.Background(), "abc123", []byte("a,b\n1,2\n")); err != nil {
		t.Fatal(err)
	}
	if gotCT != "text/csv" {
		t.Errorf("content type = %q", gotCT)
	}
	if string(gotBody) != "a,b\n1,2\n" {
		t.Errorf("body = %q", gotBody)
	}
}

func TestDeleteChart(t *testing.T) {
	var gotMethod, gotPath string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	})
	if err := c.DeleteChart(context.Background(), "abc123"); err != nil {
		t.Fatal(err)
	}
	if gotMethod != http.MethodDelete || gotPath != "/v3/charts/abc123" {
		t.Errorf("request = %s %s", gotMethod, gotPath)
	}
}

func TestEmptyJSONResponseIsNil(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	resp, err := c.PostJSON(context.Background(), "/v3/charts/abc123/publish", nil)
	if err != nil {
		t.Fatal(err)
	}
	if resp != nil {
		t.Errorf("resp = %v, want nil", resp)
	}
}
