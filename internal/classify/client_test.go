package classify

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ayusman/handspell/internal/landmark"
)

func TestClient_Classify(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("parse multipart: %v", err)
		}

		file, header, err := r.FormFile("image")
		if err != nil {
			t.Fatalf("missing image field: %v", err)
		}
		file.Close()
		if header.Filename != "frame.jpg" {
			t.Errorf("filename = %q, want %q", header.Filename, "frame.jpg")
		}

		if r.Header.Get("X-Request-Id") == "" {
			t.Error("missing X-Request-Id header")
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"gesture": "A", "landmarks": [{"x": 0.1, "y": 0.2, "z": 0.3}]}`))
	}))
	defer ts.Close()

	client := NewClient(ts.URL, time.Second)
	result, err := client.Classify(context.Background(), []byte("fake-jpeg"))
	if err != nil {
		t.Fatalf("Classify() error = %v", err)
	}

	if result.Label != "A" {
		t.Errorf("label = %q, want %q", result.Label, "A")
	}
	if len(result.Landmarks) != 1 {
		t.Fatalf("landmarks count = %d, want 1", len(result.Landmarks))
	}
	want := landmark.Point{X: 0.1, Y: 0.2, Z: 0.3}
	if result.Landmarks[0] != want {
		t.Errorf("landmark = %v, want %v", result.Landmarks[0], want)
	}
}

func TestClient_Classify_MissingFields(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer ts.Close()

	client := NewClient(ts.URL, time.Second)
	result, err := client.Classify(context.Background(), []byte("fake-jpeg"))
	if err != nil {
		t.Fatalf("Classify() error = %v", err)
	}

	if result.Label != LabelUnavailable {
		t.Errorf("label = %q, want %q", result.Label, LabelUnavailable)
	}
	if len(result.Landmarks) != 0 {
		t.Errorf("landmarks count = %d, want 0", len(result.Landmarks))
	}
}

func TestClient_Classify_MalformedBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json at all`))
	}))
	defer ts.Close()

	client := NewClient(ts.URL, time.Second)
	result, err := client.Classify(context.Background(), []byte("fake-jpeg"))
	if err != nil {
		t.Fatalf("Classify() error = %v, want defaulted result", err)
	}
	if result.Label != LabelUnavailable {
		t.Errorf("label = %q, want %q", result.Label, LabelUnavailable)
	}
}

func TestClient_Classify_ServerError(t *testing.T) {
	// The service reports inference failures as a sentinel label with a
	// 500 status; the client must still surface the label.
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"gesture": "Prediction Error", "landmarks": []}`))
	}))
	defer ts.Close()

	client := NewClient(ts.URL, time.Second)
	result, err := client.Classify(context.Background(), []byte("fake-jpeg"))
	if err != nil {
		t.Fatalf("Classify() error = %v", err)
	}
	if result.Label != LabelPredictionError {
		t.Errorf("label = %q, want %q", result.Label, LabelPredictionError)
	}
}

func TestClient_Classify_TransportFailure(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	ts.Close() // connection refused

	client := NewClient(ts.URL, time.Second)
	if _, err := client.Classify(context.Background(), []byte("fake-jpeg")); err == nil {
		t.Error("expected transport error, got nil")
	}
}

func TestIsSentinel(t *testing.T) {
	tests := []struct {
		label string
		want  bool
	}{
		{LabelNoHand, true},
		{LabelUnavailable, true},
		{LabelPredictionError, true},
		{"ERROR: Model not loaded", true},
		{"", true},
		{"A", false},
		{"space", false},
	}

	for _, tt := range tests {
		if got := IsSentinel(tt.label); got != tt.want {
			t.Errorf("IsSentinel(%q) = %v, want %v", tt.label, got, tt.want)
		}
	}
}
