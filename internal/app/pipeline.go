package app

import (
	"log"
	"time"

	"github.com/ayusman/handspell/internal/capture"
	"github.com/ayusman/handspell/internal/render"
)

// runRenderLoop is the display cadence: on every tick it reads a camera
// frame, steps the smoother toward the latest raw landmarks, draws the
// skeleton overlay, and publishes the annotated frame. It runs
// unconditionally while the app is up, independent of the polling
// cadence — a paused session keeps rendering the live video with the
// last (frozen) overlay.
func (a *App) runRenderLoop(stopCh chan struct{}) {
	defer a.wg.Done()

	interval := time.Second / time.Duration(a.config.RenderFPS)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			a.renderFrame()
		}
	}
}

// renderFrame draws one annotated frame. Camera hiccups are logged and
// skipped; the next tick retries.
func (a *App) renderFrame() {
	frame, err := a.config.Camera.ReadFrame()
	if err != nil {
		log.Printf("render: read frame: %v", err)
		return
	}
	defer frame.Close()

	smoothed := a.session.Smoothed()
	render.Draw(&render.MatSurface{Mat: frame}, smoothed)

	jpeg, err := capture.EncodeJPEG(frame, streamJPEGQuality)
	if err != nil {
		log.Printf("render: encode frame: %v", err)
		return
	}

	a.frames.Publish(jpeg)
}
