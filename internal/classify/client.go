package classify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/ayusman/handspell/internal/landmark"
	"github.com/google/uuid"
)

// DefaultTimeout bounds a single classification round-trip. The polling
// driver retries on the next tick, so a slow request is simply dropped.
const DefaultTimeout = 5 * time.Second

// Client uploads camera frames to the classification endpoint.
type Client struct {
	endpoint string
	http     *http.Client
}

// NewClient creates a Client for the given endpoint URL
// (e.g. http://localhost:5000/classify_gesture).
func NewClient(endpoint string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		endpoint: endpoint,
		http:     &http.Client{Timeout: timeout},
	}
}

// responseBody mirrors the service's JSON shape. The service returns a
// label and a landmark list even for failure statuses.
type responseBody struct {
	Gesture   string `json:"gesture"`
	Landmarks []struct {
		X float64 `json:"x"`
		Y float64 `json:"y"`
		Z float64 `json:"z"`
	} `json:"landmarks"`
}

// Classify uploads one JPEG-encoded frame as a multipart "image" field
// and returns the predicted label and landmarks.
//
// Transport failures are returned as errors. A response body that cannot
// be decoded, or one with missing fields, degrades to the not-available
// label and an empty landmark set instead of failing.
func (c *Client) Classify(ctx context.Context, jpegFrame []byte) (Result, error) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	part, err := mw.CreateFormFile("image", "frame.jpg")
	if err != nil {
		return Result{}, fmt.Errorf("create form file: %w", err)
	}
	if _, err := part.Write(jpegFrame); err != nil {
		return Result{}, fmt.Errorf("write frame: %w", err)
	}
	if err := mw.Close(); err != nil {
		return Result{}, fmt.Errorf("close multipart writer: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, &body)
	if err != nil {
		return Result{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("X-Request-Id", uuid.New().String())

	resp, err := c.http.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("classify request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{}, fmt.Errorf("read response: %w", err)
	}

	// The service reports its own failures through the gesture field
	// (with a 4xx/5xx status), so the body is decoded regardless of
	// status code. Unparseable bodies degrade to the sentinel defaults.
	var parsed responseBody
	if err := json.Unmarshal(data, &parsed); err != nil {
		return Result{Label: LabelUnavailable}, nil
	}

	return parsed.toResult(), nil
}

func (r responseBody) toResult() Result {
	result := Result{Label: r.Gesture}
	if result.Label == "" {
		result.Label = LabelUnavailable
	}

	if len(r.Landmarks) > 0 {
		result.Landmarks = make(landmark.Set, len(r.Landmarks))
		for i, lm := range r.Landmarks {
			result.Landmarks[i] = landmark.Point{X: lm.X, Y: lm.Y, Z: lm.Z}
		}
	}

	return result
}
