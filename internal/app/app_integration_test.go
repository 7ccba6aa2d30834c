package app

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ayusman/handspell/internal/capture"
	"github.com/ayusman/handspell/internal/classify"
	"github.com/ayusman/handspell/internal/speech"
	"gocv.io/x/gocv"
)

// TestApp_EndToEnd drives the full pipeline: mock camera frames are
// uploaded to an httptest classifier that holds the letter "H", the
// stability gate fires, and the letter lands in the word buffer while
// the render loop publishes annotated frames.
func TestApp_EndToEnd(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	frame := gocv.NewMatWithSize(capture.DefaultHeight, capture.DefaultWidth, gocv.MatTypeCV8UC3)
	defer frame.Close()

	camera := capture.NewMockCamera([]*gocv.Mat{&frame}, true)
	if err := camera.Open(); err != nil {
		t.Fatalf("camera.Open() error = %v", err)
	}
	defer camera.Close()

	var requests atomic.Int64
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		if _, _, err := r.FormFile("image"); err != nil {
			t.Errorf("missing image field: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"gesture": "H", "landmarks": [
			{"x":0.50,"y":0.80,"z":0}, {"x":0.55,"y":0.75,"z":0},
			{"x":0.58,"y":0.65,"z":0}, {"x":0.58,"y":0.50,"z":0},
			{"x":0.58,"y":0.35,"z":0}, {"x":0.55,"y":0.62,"z":0}
		]}`)
	}))
	defer ts.Close()

	speaker := speech.NewMockSpeaker()
	application := New(Config{
		Camera:       camera,
		Classifier:   classify.NewClient(ts.URL, time.Second),
		Speaker:      speaker,
		Threshold:    3,
		Cooldown:     time.Minute,
		Alpha:        0.2,
		PollInterval: 10 * time.Millisecond,
		JPEGQuality:  capture.UploadJPEGQuality,
		RenderFPS:    30,
	})

	application.Start()
	defer application.Stop()

	deadline := time.After(5 * time.Second)
	for application.Session().Snapshot().Word != "H" {
		select {
		case <-deadline:
			t.Fatalf("word buffer = %q after %d requests, want %q",
				application.Session().Snapshot().Word, requests.Load(), "H")
		case <-time.After(10 * time.Millisecond):
		}
	}

	// The stabilized letter was announced.
	found := false
	for _, u := range speaker.Utterances() {
		if u == "H" {
			found = true
		}
	}
	if !found {
		t.Errorf("utterances = %v, want announcement of %q", speaker.Utterances(), "H")
	}

	// The render loop published annotated frames.
	waitFrames := time.After(2 * time.Second)
	for {
		if jpeg, _ := application.Frames().Latest(); jpeg != nil {
			break
		}
		select {
		case <-waitFrames:
			t.Fatal("render loop never published a frame")
		case <-time.After(10 * time.Millisecond):
		}
	}

	// Pausing stops new classification requests.
	application.Session().SetPaused(true)
	time.Sleep(50 * time.Millisecond)
	before := requests.Load()
	time.Sleep(100 * time.Millisecond)
	if after := requests.Load(); after != before {
		t.Errorf("requests continued while paused: %d -> %d", before, after)
	}

	// Reset clears everything.
	application.Reset()
	state := application.Session().Snapshot()
	if state.Word != "" || state.Sentence != "" {
		t.Errorf("state after reset = %+v, want cleared", state)
	}
}
