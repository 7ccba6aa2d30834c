package app

import (
	"sync"
	"time"

	"github.com/ayusman/handspell/internal/capture"
	"github.com/ayusman/handspell/internal/poll"
	"github.com/ayusman/handspell/internal/speech"
)

// Render loop constants.
const (
	// DefaultRenderFPS is the overlay refresh rate.
	DefaultRenderFPS = 30
	// streamJPEGQuality is the encoding quality for annotated display
	// frames. Higher than upload quality since these are shown to the
	// user.
	streamJPEGQuality = 80
)

// Config holds configuration options for the application.
type Config struct {
	Camera       capture.Camera
	Classifier   poll.Classifier
	Speaker      speech.Speaker
	Threshold    int
	Cooldown     time.Duration
	Alpha        float64
	PollInterval time.Duration
	JPEGQuality  int
	RenderFPS    int
}

// App runs the two pipeline cadences: the polling driver feeding the
// session, and the render loop drawing the smoothed overlay.
type App struct {
	config  Config
	session *Session
	frames  *FrameFeed
	driver  *poll.Driver

	mu     sync.Mutex
	stopCh chan struct{}
	wg     sync.WaitGroup
}

// New creates a new App instance with the given configuration.
func New(config Config) *App {
	if config.RenderFPS <= 0 {
		config.RenderFPS = DefaultRenderFPS
	}

	session := NewSession(SessionConfig{
		Speaker:   config.Speaker,
		Threshold: config.Threshold,
		Cooldown:  config.Cooldown,
		Alpha:     config.Alpha,
	})

	a := &App{
		config:  config,
		session: session,
		frames:  NewFrameFeed(),
	}

	a.driver = poll.New(poll.Config{
		Source:   capture.NewFrameSource(config.Camera, config.JPEGQuality),
		Client:   config.Classifier,
		Interval: config.PollInterval,
		Paused:   session.Paused,
		OnResult: session.HandleResult,
	})

	return a
}

// Session returns the pipeline session.
func (a *App) Session() *Session {
	return a.session
}

// Frames returns the annotated frame feed.
func (a *App) Frames() *FrameFeed {
	return a.frames
}

// Start launches the polling driver and the render loop. The camera
// must already be open.
func (a *App) Start() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.stopCh != nil {
		return
	}
	a.stopCh = make(chan struct{})

	a.driver.Start()

	a.wg.Add(1)
	go a.runRenderLoop(a.stopCh)
}

// Stop tears down both cadences. Stopping a stopped app is a no-op.
func (a *App) Stop() {
	a.mu.Lock()
	stopCh := a.stopCh
	a.stopCh = nil
	a.mu.Unlock()

	if stopCh == nil {
		return
	}

	a.driver.Stop()
	close(stopCh)
	a.wg.Wait()
}

// Reset clears the session buffers and the published overlay frame.
func (a *App) Reset() {
	a.session.Reset()
	a.frames.Clear()
}
