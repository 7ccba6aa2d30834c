package app

import "sync"

// FrameFeed publishes the latest annotated JPEG frame from the render
// loop to any number of consumers (the MJPEG stream handler). Only the
// most recent frame is retained.
type FrameFeed struct {
	mu   sync.RWMutex
	jpeg []byte
	seq  uint64
}

// NewFrameFeed creates an empty feed.
func NewFrameFeed() *FrameFeed {
	return &FrameFeed{}
}

// Publish replaces the latest frame.
func (f *FrameFeed) Publish(jpeg []byte) {
	f.mu.Lock()
	f.jpeg = jpeg
	f.seq++
	f.mu.Unlock()
}

// Latest returns the most recent frame and its sequence number, or nil
// if nothing has been published yet. Consumers can use the sequence to
// avoid re-sending the same frame.
func (f *FrameFeed) Latest() ([]byte, uint64) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.jpeg, f.seq
}

// Clear drops the published frame.
func (f *FrameFeed) Clear() {
	f.mu.Lock()
	f.jpeg = nil
	f.mu.Unlock()
}
