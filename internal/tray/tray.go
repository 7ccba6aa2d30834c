// Package tray provides a system tray interface for the Handspell
// recognizer: pause/resume, the current word, and the buffer controls.
package tray

import (
	"sync"

	"github.com/getlantern/systray"
)

// Tray represents the system tray application.
type Tray struct {
	onToggle  func(paused bool)
	onReset   func()
	onAdvance func()
	onSpeak   func()
	onQuit    func()
	paused    bool
	mu        sync.RWMutex

	// Menu items stored for later updates
	menuToggle *systray.MenuItem
	menuWord   *systray.MenuItem
}

// New creates a new Tray instance with recognition running by default.
func New() *Tray {
	return &Tray{}
}

// OnToggle sets the callback for the pause/resume menu item.
func (t *Tray) OnToggle(fn func(paused bool)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onToggle = fn
}

// OnReset sets the callback for the reset menu item.
func (t *Tray) OnReset(fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onReset = fn
}

// OnAdvanceWord sets the callback for the next-word menu item.
func (t *Tray) OnAdvanceWord(fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onAdvance = fn
}

// OnSpeakSentence sets the callback for the speak-sentence menu item.
func (t *Tray) OnSpeakSentence(fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onSpeak = fn
}

// OnQuit sets the callback for the quit menu item.
func (t *Tray) OnQuit(fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onQuit = fn
}

// Run starts the system tray application.
// This function blocks until systray.Quit() is called.
func (t *Tray) Run() {
	systray.Run(t.onReady, t.onExit)
}

// onReady is called when the system tray is ready.
// It sets up the menu structure.
func (t *Tray) onReady() {
	systray.SetTitle("Handspell")
	systray.SetTooltip("Handspell Sign Letter Recognition")

	t.menuToggle = systray.AddMenuItem("● Recognizing", "Pause or resume recognition")
	systray.AddSeparator()

	t.menuWord = systray.AddMenuItem("Word: —", "Current word buffer")
	t.menuWord.Disable()
	systray.AddSeparator()

	menuAdvance := systray.AddMenuItem("Next Word", "Promote the word into the sentence")
	menuSpeak := systray.AddMenuItem("Speak Sentence", "Speak the sentence buffer")
	menuReset := systray.AddMenuItem("Reset", "Clear word and sentence buffers")
	systray.AddSeparator()

	menuQuit := systray.AddMenuItem("Quit", "Quit Handspell")

	// Handle menu item clicks in a separate goroutine
	go func() {
		for {
			select {
			case <-t.menuToggle.ClickedCh:
				t.handleToggle()
			case <-menuAdvance.ClickedCh:
				t.handleAdvance()
			case <-menuSpeak.ClickedCh:
				t.handleSpeak()
			case <-menuReset.ClickedCh:
				t.handleReset()
			case <-menuQuit.ClickedCh:
				t.handleQuit()
				return
			}
		}
	}()
}

// onExit is called when the system tray is about to exit.
func (t *Tray) onExit() {}

// handleToggle handles the pause/resume menu item click.
func (t *Tray) handleToggle() {
	t.mu.Lock()
	t.paused = !t.paused
	paused := t.paused

	if paused {
		t.menuToggle.SetTitle("○ Paused")
	} else {
		t.menuToggle.SetTitle("● Recognizing")
	}

	callback := t.onToggle
	t.mu.Unlock()

	// Call the callback outside the lock to prevent deadlocks
	if callback != nil {
		callback(paused)
	}
}

// handleAdvance handles the next-word menu item click.
func (t *Tray) handleAdvance() {
	t.mu.RLock()
	callback := t.onAdvance
	t.mu.RUnlock()

	if callback != nil {
		callback()
	}
}

// handleSpeak handles the speak-sentence menu item click.
func (t *Tray) handleSpeak() {
	t.mu.RLock()
	callback := t.onSpeak
	t.mu.RUnlock()

	if callback != nil {
		callback()
	}
}

// handleReset handles the reset menu item click.
func (t *Tray) handleReset() {
	t.mu.RLock()
	callback := t.onReset
	t.mu.RUnlock()

	if callback != nil {
		callback()
	}
}

// handleQuit handles the quit menu item click.
func (t *Tray) handleQuit() {
	t.mu.RLock()
	callback := t.onQuit
	t.mu.RUnlock()

	if callback != nil {
		callback()
	}

	systray.Quit()
}

// SetWord updates the current word display in the menu.
func (t *Tray) SetWord(word string) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if t.menuWord != nil {
		if word == "" {
			t.menuWord.SetTitle("Word: —")
		} else {
			t.menuWord.SetTitle("Word: " + word)
		}
	}
}

// IsPaused returns the current paused state.
func (t *Tray) IsPaused() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.paused
}
