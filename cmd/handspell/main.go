package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/ayusman/handspell/internal/app"
	"github.com/ayusman/handspell/internal/capture"
	"github.com/ayusman/handspell/internal/classify"
	"github.com/ayusman/handspell/internal/config"
	"github.com/ayusman/handspell/internal/server"
	"github.com/ayusman/handspell/internal/speech"
	"github.com/ayusman/handspell/internal/tray"
)

func main() {
	fmt.Println("Handspell - Sign Language Letter Recognition")

	configPath := flag.String("config", "", "path to YAML config file")
	cameraID := flag.Int("camera", -1, "camera device ID (overrides config)")
	endpoint := flag.String("endpoint", "", "classifier endpoint URL (overrides config)")
	addr := flag.String("addr", "", "HTTP listen address (overrides config)")
	noSpeech := flag.Bool("no-speech", false, "disable spoken feedback")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *cameraID >= 0 {
		cfg.CameraID = *cameraID
	}
	if *endpoint != "" {
		cfg.Classifier.Endpoint = *endpoint
	}
	if *addr != "" {
		cfg.HTTP.Addr = *addr
	}
	if *noSpeech {
		cfg.Speech.Enabled = false
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	// No frames can ever arrive without a camera, so acquisition
	// failure is fatal: no retry.
	camera := capture.NewCamera(cfg.CameraID)
	if err := camera.Open(); err != nil {
		log.Fatalf("Failed to open camera %d: %v", cfg.CameraID, err)
	}
	defer camera.Close()

	var speaker speech.Speaker = speech.Discard
	if cfg.Speech.Enabled {
		s, err := speech.NewExecSpeaker(cfg.Speech.Command)
		if err != nil {
			log.Fatalf("Failed to set up speech: %v", err)
		}
		speaker = s
	}

	application := app.New(app.Config{
		Camera:       camera,
		Classifier:   classify.NewClient(cfg.Classifier.Endpoint, cfg.ClassifierTimeout()),
		Speaker:      speaker,
		Threshold:    cfg.Pipeline.StabilityThreshold,
		Cooldown:     cfg.Cooldown(),
		Alpha:        cfg.Pipeline.LerpAlpha,
		PollInterval: cfg.PollInterval(),
		JPEGQuality:  cfg.Classifier.JPEGQuality,
		RenderFPS:    cfg.Pipeline.RenderFPS,
	})
	application.Start()
	defer application.Stop()

	session := application.Session()
	log.Printf("Session %s: polling %s every %v", session.ID(), cfg.Classifier.Endpoint, cfg.PollInterval())

	srv := server.New(server.Config{
		StaticDir: cfg.HTTP.StaticDir,
		Session:   session,
		Frames:    application.Frames(),
	})

	go func() {
		fmt.Printf("Starting server on %s\n", cfg.HTTP.Addr)
		if err := srv.ListenAndServe(cfg.HTTP.Addr); err != nil {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	t := tray.New()
	t.OnToggle(session.SetPaused)
	t.OnReset(application.Reset)
	t.OnAdvanceWord(session.AdvanceWord)
	t.OnSpeakSentence(session.SpeakSentence)
	t.OnQuit(application.Stop)
	session.OnChange(func(word, sentence string) {
		t.SetWord(word)
	})

	// Blocks until the quit menu item is clicked.
	t.Run()
}
