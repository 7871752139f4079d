package charts

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bytedance/sonic"

	"dwclient/pkg/dwapi"
	"dwclient/pkg/tabular"
)

func testClient(t *testing.T, handler http.HandlerFunc) *dwapi.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client, err := dwapi.NewClient("test-token")
	if err != nil {
		t.Fatal(err)
	}
	client.SetBaseURL(srv.URL)
	return client
}

func TestCreateUploadsData(t *testing.T) {
	var createBody Wire
	var csvBody string
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/v3/charts":
			b, _ := io.ReadAll(r.Body)
			if err := sonic.Unmarshal(b, &createBody); err != nil {
				t.Fatalf("decode create body: %v", err)
			}
			io.WriteString(w, `{"id":"new123"}`)
		case r.Method == http.MethodPut && r.URL.Path == "/v3/charts/new123/data":
			b, _ := io.ReadAll(r.Body)
			csvBody = string(b)
			w.WriteHeader(http.StatusNoContent)
		default:
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
			http.NotFound(w, r)
		}
	})

	chart := NewLineChart("Temperatures")
	chart.SetClient(client)
	chart.Data = tabular.FromRecords([]map[string]any{
		{"date": "2024-01-01", "value": 5},
	})

	id, err := Create(context.Background(), chart)
	if err != nil {
		t.Fatal(err)
	}
	if id != "new123" || chart.ID != "new123" {
		t.Errorf("id = %q, chart.ID = %q", id, chart.ID)
	}
	if createBody["type"] != "d3-lines" || createBody["title"] != "Temperatures" {
		t.Errorf("create payload = %v", createBody)
	}
	if _, ok := createBody["metadata"]; !ok {
		t.Error("create payload should carry metadata")
	}
	if !strings.HasPrefix(csvBody, "date,value\n") {
		t.Errorf("uploaded csv = %q", csvBody)
	}
}

func TestCreateSkipsUploadWithoutData(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPut {
			t.Errorf("no data upload expected, got %s %s", r.Method, r.URL.Path)
		}
		io.WriteString(w, `{"id":"new456"}`)
	})
	chart := NewBarChart("Empty")
	chart.SetClient(client)
	if _, err := Create(context.Background(), chart); err != nil {
		t.Fatal(err)
	}
}

func TestPublishReturnsPublicURL(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/v3/charts/abc123/publish" {
			t.Errorf("request = %s %s", r.Method, r.URL.Path)
		}
		io.WriteString(w, `{"data":{"publicUrl":"https://datawrapper.dwcdn.net/abc123/1/"}}`)
	})
	chart := NewColumnChart("Published")
	chart.ID = "abc123"
	chart.SetClient(client)
	url, err := Publish(context.Background(), chart)
	if err != nil {
		t.Fatal(err)
	}
	if url != "https://datawrapper.dwcdn.net/abc123/1/" {
		t.Errorf("url = %q", url)
	}
}

func TestDeleteClearsID(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	chart := NewAreaChart("Doomed")
	chart.ID = "abc123"
	chart.SetClient(client)
	if err := Delete(context.Background(), chart); err != nil {
		t.Fatal(err)
	}
	if chart.ID != "" {
		t.Errorf("ID = %q after delete", chart.ID)
	}
}

func TestDuplicateKeepsOriginalID(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/copy") {
			t.Errorf("path = %q", r.URL.Path)
		}
		io.WriteString(w, `{"id":"copy789"}`)
	})
	chart := NewScatterPlot("Original")
	chart.ID = "abc123"
	chart.SetClient(client)
	copyID, err := Duplicate(context.Background(), chart)
	if err != nil {
		t.Fatal(err)
	}
	if copyID != "copy789" {
		t.Errorf("copy id = %q", copyID)
	}
	if chart.ID != "abc123" {
		t.Errorf("original id changed to %q", chart.ID)
	}
}

func TestLifecycleRequiresPersistedChart(t *testing.T) {
	chart := NewLineChart("Unsaved")
	ctx := context.Background()
	if err := Update(ctx, chart); !errors.Is(err, ErrNotPersisted) {
		t.Errorf("Update err = %v", err)
	}
	if _, err := Publish(ctx, chart); !errors.Is(err, ErrNotPersisted) {
		t.Errorf("Publish err = %v", err)
	}
	if _, err := Export(ctx, chart, "png", dwapi.ExportOptions{}); !errors.Is(err, ErrNotPersisted) {
		t.Errorf("Export err = %v", err)
	}
	if err := Delete(ctx, chart); !errors.Is(err, ErrNotPersisted) {
		t.Errorf("Delete err = %v", err)
	}
	if _, err := Fork(ctx, chart); !errors.Is(err, ErrNotPersisted) {
		t.Errorf("Fork err = %v", err)
	}
}
